// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	// DefaultTrialDivisionLimit bounds the divisor scan before the witness
	// tests take over.
	DefaultTrialDivisionLimit = 1000
	// DefaultRounds gives a false positive bound of 4^-40 for numbers beyond
	// the deterministic range.
	DefaultRounds = 40

	maxRounds = 10000
)

type (
	// Config carries the tuning knobs of the test pipeline. The zero value is
	// not usable; construct with NewConfig or DefaultConfig.
	Config struct {
		trialDivisionLimit uint64
		rounds             int
		seed               uint64
		seeded             bool
	}
)

// NewConfig validates and returns a Config. The optional seed fixes the
// witness sequence, making runs reproducible; without it witnesses are drawn
// from crypto/rand.
func NewConfig(trialDivisionLimit uint64, rounds int, optionalSeed ...uint64) (*Config, error) {
	cfg := &Config{
		trialDivisionLimit: trialDivisionLimit,
		rounds:             rounds,
	}
	if 0 < len(optionalSeed) {
		if 1 < len(optionalSeed) {
			return nil, errors.New("NewConfig: expected 0 or 1 item in `optionalSeed`")
		}
		cfg.seed, cfg.seeded = optionalSeed[0], true
	}
	return cfg, cfg.Validate()
}

// DefaultConfig returns the defaults: a divisor scan to 1000 and 40 witness
// rounds, unseeded.
func DefaultConfig() *Config {
	cfg, _ := NewConfig(DefaultTrialDivisionLimit, DefaultRounds)
	return cfg
}

// Validate collects every violation rather than stopping at the first.
func (cfg *Config) Validate() error {
	var result *multierror.Error
	if cfg.trialDivisionLimit < 2 {
		result = multierror.Append(result, errors.New("trial division limit must be at least 2"))
	}
	if cfg.rounds < 1 {
		result = multierror.Append(result, errors.New("rounds must be at least 1"))
	}
	if cfg.rounds > maxRounds {
		result = multierror.Append(result, errors.Errorf("rounds must be at most %d", maxRounds))
	}
	return result.ErrorOrNil()
}

func (cfg *Config) TrialDivisionLimit() uint64 {
	return cfg.trialDivisionLimit
}

func (cfg *Config) Rounds() int {
	return cfg.rounds
}

// Seed returns the witness seed and whether one was set.
func (cfg *Config) Seed() (uint64, bool) {
	return cfg.seed, cfg.seeded
}
