// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primality classifies natural numbers as prime, probably prime or
// composite. The pipeline runs cheap exact filters first and escalates to
// Miller-Rabin witness rounds only for the survivors; standalone testers
// (Fermat, Solovay-Strassen, Wilson) are exported for cross-checking and
// experimentation.
package primality

import (
	"github.com/JamesDevlin5/PrimeChecker/common"
	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/pkg/errors"
)

var (
	one   = big.NewNat(1)
	two   = big.NewNat(2)
	three = big.NewNat(3)
	four  = big.NewNat(4)
)

// Test classifies n through the staged pipeline: validation, bounded trial
// division, perfect power detection, then Miller-Rabin. Below the
// deterministic range the result is always exact; beyond it the witness
// source follows the config (seeded stream when a seed is set, crypto/rand
// otherwise) and a passing n is ProbablyPrime with bound 4^-rounds.
func Test(n *big.Nat, cfg *Config) (Verdict, error) {
	if n == nil {
		return Verdict{}, errors.Wrap(ErrInvalidInput, "nil input")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return Verdict{}, errors.Wrap(ErrInvalidInput, err.Error())
	}

	if v, ok := TrialDivision(n, cfg.TrialDivisionLimit()); ok {
		return v, nil
	}
	common.Logger.Debugf("trial division inconclusive for %s", common.FormatNat(n))

	if root, found := IsPerfectPower(n); found {
		common.Logger.Debugf("%s is a perfect power of %s", common.FormatNat(n), common.FormatNat(root))
		return newComposite(AlgPerfectPower, root, 0), nil
	}

	if n.Cmp(sorensonWebsterBound) < 0 {
		return MillerRabinDeterministic(n)
	}
	var witnesses WitnessSequence
	if seed, seeded := cfg.Seed(); seeded {
		witnesses = SeededWitnesses(n, seed)
	} else {
		witnesses = RandomWitnesses(n)
	}
	return MillerRabin(n, cfg.Rounds(), witnesses)
}

// TestParsed parses s (base prefixes accepted) and classifies it. Malformed
// or negative inputs come back as ErrInvalidInput.
func TestParsed(s string, cfg *Config) (Verdict, error) {
	n, err := big.ParseNat(s, 0)
	if err != nil {
		return Verdict{}, errors.Wrap(ErrInvalidInput, err.Error())
	}
	return Test(n, cfg)
}
