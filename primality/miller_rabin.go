// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/pkg/errors"
)

// Decompose factors n-1 as d * 2^s with d odd. n must be odd and >= 3.
func Decompose(n *big.Nat) (d *big.Nat, s uint, err error) {
	if n == nil || n.Cmp(three) < 0 || n.Bit(0) == 0 {
		return nil, 0, errors.Wrap(ErrInvalidInput, "decomposition requires an odd number >= 3")
	}
	nMinusOne, _ := n.Sub(one)
	s = nMinusOne.TrailingZeroBits()
	d = nMinusOne.Rsh(s)
	return d, s, nil
}

// MillerRabin runs up to rounds witness rounds against n with bases drawn
// from the sequence. A failing base proves compositeness and is recorded in
// the verdict; if every drawn base passes, the verdict is ProbablyPrime with
// false positive bound 4^-r for the r rounds actually run. The sequence may
// run dry early for tiny n, which only shrinks r.
//
// n below 5 and even n are settled exactly before any round runs: 0 and 1
// classify Composite, 2 and 3 Prime, and larger evens Composite with the
// factor 2 as witness.
func MillerRabin(n *big.Nat, rounds int, witnesses WitnessSequence) (Verdict, error) {
	if v, ok := millerRabinSmallInput(n); ok {
		return v, nil
	}
	witness, run, err := millerRabinRounds(n, rounds, witnesses)
	if err != nil {
		return Verdict{}, err
	}
	if witness != nil {
		return newComposite(AlgMillerRabin, witness, run), nil
	}
	return newProbablyPrime(AlgMillerRabin, run, math.Pow(0.25, float64(run))), nil
}

// MillerRabinDeterministic decides n exactly using the fixed small prime
// witness set. Inputs at or above sorensonWebsterBound are rejected with
// ErrInputTooLarge, since the set is only known to be complete below it.
func MillerRabinDeterministic(n *big.Nat) (Verdict, error) {
	if n != nil && n.Cmp(sorensonWebsterBound) >= 0 {
		return Verdict{}, errors.Wrapf(ErrInputTooLarge,
			"deterministic witness set is only valid below %s", sorensonWebsterBound)
	}
	if v, ok := millerRabinSmallInput(n); ok {
		return v, nil
	}
	witness, run, err := millerRabinRounds(n, len(deterministicWitnessSet), DeterministicWitnesses(n))
	if err != nil {
		return Verdict{}, err
	}
	if witness != nil {
		return newComposite(AlgMillerRabin, witness, run), nil
	}
	return newPrime(AlgMillerRabin, run), nil
}

// millerRabinSmallInput settles n below 5 and even n, which the witness
// rounds cannot classify. ok is false for nil and for odd n >= 5.
func millerRabinSmallInput(n *big.Nat) (v Verdict, ok bool) {
	if n == nil {
		return Verdict{}, false
	}
	if n.Cmp(two) < 0 {
		return newComposite(AlgMillerRabin, nil, 0), true
	}
	if n.Cmp(three) <= 0 {
		return newPrime(AlgMillerRabin, 0), true
	}
	if n.Bit(0) == 0 {
		return newComposite(AlgMillerRabin, two, 0), true
	}
	return Verdict{}, false
}

// millerRabinRounds performs the witness rounds and returns the base that
// proved n composite, or nil if all rounds passed.
func millerRabinRounds(n *big.Nat, rounds int, witnesses WitnessSequence) (witness *big.Nat, run int, err error) {
	d, s, err := Decompose(n)
	if err != nil {
		return nil, 0, err
	}
	nMinusOne, _ := n.Sub(one)
	modN, err := big.ModulusOf(n)
	if err != nil {
		return nil, 0, err
	}

	for run < rounds {
		a, ok := witnesses.Next()
		if !ok {
			break
		}
		run++

		// x = a^d mod n; a passes if x is 1 or n-1, or some square of x
		// reaches n-1 before the exponent hits (n-1)/2
		x := modN.Exp(a, d)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		passed := false
		for i := uint(1); i < s; i++ {
			x = modN.Mul(x, x)
			if x.Cmp(nMinusOne) == 0 {
				passed = true
				break
			}
			if x.Cmp(one) == 0 {
				// hit 1 from a value other than n-1: squaring can never
				// reach n-1 now
				break
			}
		}
		if !passed {
			return a.Clone(), run, nil
		}
	}
	return nil, run, nil
}
