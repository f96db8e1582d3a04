// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"encoding/json"
	"fmt"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
)

// Classification is the outcome class of a primality test.
type Classification int

const (
	// Unknown is the zero value; no verdict was reached.
	Unknown Classification = iota
	// Composite means compositeness was proven.
	Composite
	// Prime means primality was proven.
	Prime
	// ProbablyPrime means every witness round passed; the false positive
	// probability is bounded by Verdict.FalsePositiveBound.
	ProbablyPrime
)

func (c Classification) String() string {
	switch c {
	case Composite:
		return "composite"
	case Prime:
		return "prime"
	case ProbablyPrime:
		return "probably prime"
	default:
		return "unknown"
	}
}

// Algorithm names recorded in verdicts.
const (
	AlgTrialDivision   = "trial-division"
	AlgMillerRabin     = "miller-rabin"
	AlgFermat          = "fermat"
	AlgSolovayStrassen = "solovay-strassen"
	AlgWilson          = "wilson"
	AlgPerfectPower    = "perfect-power"
)

// Verdict is the result of classifying one number. A composite verdict
// carries the evidence: either a dividing factor or the witness base that
// exposed the number.
type Verdict struct {
	classification Classification
	algorithm      string
	rounds         int
	bound          float64
	witness        *big.Nat
}

func newComposite(algorithm string, witness *big.Nat, rounds int) Verdict {
	return Verdict{classification: Composite, algorithm: algorithm, rounds: rounds, witness: witness}
}

func newPrime(algorithm string, rounds int) Verdict {
	return Verdict{classification: Prime, algorithm: algorithm, rounds: rounds}
}

func newProbablyPrime(algorithm string, rounds int, bound float64) Verdict {
	return Verdict{classification: ProbablyPrime, algorithm: algorithm, rounds: rounds, bound: bound}
}

func (v Verdict) Classification() Classification {
	return v.classification
}

// IsPrime reports whether the verdict asserts primality, exactly or
// probabilistically.
func (v Verdict) IsPrime() bool {
	return v.classification == Prime || v.classification == ProbablyPrime
}

// Algorithm names the test that settled the verdict.
func (v Verdict) Algorithm() string {
	return v.algorithm
}

// Rounds is the number of witness rounds completed before the verdict.
// Zero for verdicts that needed no witnesses.
func (v Verdict) Rounds() int {
	return v.rounds
}

// FalsePositiveBound bounds the probability that a composite number was
// classified ProbablyPrime. It is 0 for exact verdicts.
func (v Verdict) FalsePositiveBound() float64 {
	return v.bound
}

// Witness returns the evidence of compositeness: a dividing factor, or the
// base whose witness round failed. Nil when the verdict is not Composite.
func (v Verdict) Witness() *big.Nat {
	if v.witness == nil {
		return nil
	}
	return v.witness.Clone()
}

func (v Verdict) String() string {
	switch v.classification {
	case Composite:
		if v.witness != nil {
			return fmt.Sprintf("composite (witness %s, %s)", v.witness, v.algorithm)
		}
		return fmt.Sprintf("composite (%s)", v.algorithm)
	case Prime:
		return fmt.Sprintf("prime (%s)", v.algorithm)
	case ProbablyPrime:
		return fmt.Sprintf("probably prime (%s, %d rounds, error bound %.3g)", v.algorithm, v.rounds, v.bound)
	default:
		return "unknown"
	}
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Classification string   `json:"classification"`
		Algorithm      string   `json:"algorithm,omitempty"`
		Rounds         int      `json:"rounds,omitempty"`
		ErrorBound     float64  `json:"errorBound,omitempty"`
		Witness        *big.Nat `json:"witness,omitempty"`
	}{
		Classification: v.classification.String(),
		Algorithm:      v.algorithm,
		Rounds:         v.rounds,
		ErrorBound:     v.bound,
		Witness:        v.witness,
	})
}
