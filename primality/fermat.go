// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/pkg/errors"
)

// Fermat applies Fermat's little theorem with bases from the sequence. A base
// sharing a factor with n proves compositeness and records that factor; a
// coprime base a with a^(n-1) != 1 (mod n) is itself the proof. A clean run
// yields ProbablyPrime with no usable error bound, because Carmichael numbers
// defeat every coprime base.
func Fermat(n *big.Nat, rounds int, witnesses WitnessSequence) (Verdict, error) {
	if n == nil || n.Cmp(two) < 0 {
		return Verdict{}, errors.Wrap(ErrInvalidInput, "fermat test requires n >= 2")
	}
	if n.Cmp(three) <= 0 {
		return newPrime(AlgFermat, 0), nil
	}
	nMinusOne, _ := n.Sub(one)
	modN, err := big.ModulusOf(n)
	if err != nil {
		return Verdict{}, err
	}

	run := 0
	for run < rounds {
		a, ok := witnesses.Next()
		if !ok {
			break
		}
		run++
		if g := big.GCD(a, n); g.Cmp(one) != 0 {
			return newComposite(AlgFermat, g, run), nil
		}
		if modN.Exp(a, nMinusOne).Cmp(one) != 0 {
			return newComposite(AlgFermat, a.Clone(), run), nil
		}
	}
	return newProbablyPrime(AlgFermat, run, 1), nil
}
