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

// SolovayStrassen tests n against Euler's criterion: for prime n and any base
// a, a^((n-1)/2) must equal the Jacobi symbol (a/n) mod n. A violating base
// proves compositeness. At most half the bases lie for any odd composite, so
// r clean rounds bound the false positive probability by 2^-r.
func SolovayStrassen(n *big.Nat, rounds int, witnesses WitnessSequence) (Verdict, error) {
	if n == nil || n.Cmp(two) < 0 {
		return Verdict{}, errors.Wrap(ErrInvalidInput, "solovay-strassen requires n >= 2")
	}
	if n.Cmp(three) <= 0 {
		return newPrime(AlgSolovayStrassen, 0), nil
	}
	if n.Bit(0) == 0 {
		return newComposite(AlgSolovayStrassen, two, 0), nil
	}
	nMinusOne, _ := n.Sub(one)
	exp := nMinusOne.Rsh(1) // (n-1)/2
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
		j, err := big.Jacobi(a, n)
		if err != nil {
			return Verdict{}, err
		}
		if j == 0 {
			// (a/n) == 0 means gcd(a, n) > 1
			return newComposite(AlgSolovayStrassen, big.GCD(a, n), run), nil
		}
		want := one
		if j == -1 {
			want = nMinusOne
		}
		if modN.Exp(a, exp).Cmp(want) != 0 {
			return newComposite(AlgSolovayStrassen, a.Clone(), run), nil
		}
	}
	return newProbablyPrime(AlgSolovayStrassen, run, math.Pow(0.5, float64(run))), nil
}
