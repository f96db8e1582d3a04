// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package int

import (
	"math/big"

	"github.com/pkg/errors"
)

var one = NewNat(1)

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm. GCD(x, 0) == x and GCD(0, 0) == 0.
func GCD(a, b *Nat) *Nat {
	x := new(big.Int).Set(a.big())
	y := new(big.Int).Set(b.big())
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return &Nat{vt: x}
}

// BinaryGCD returns the greatest common divisor of a and b by Stein's binary
// algorithm, which replaces divisions with shifts and subtractions.
func BinaryGCD(a, b *Nat) *Nat {
	x := new(big.Int).Set(a.big())
	y := new(big.Int).Set(b.big())
	if x.Sign() == 0 {
		return &Nat{vt: y}
	}
	if y.Sign() == 0 {
		return &Nat{vt: x}
	}
	// factor out the common power of two up front
	shift := x.TrailingZeroBits()
	if s := y.TrailingZeroBits(); s < shift {
		shift = s
	}
	x.Rsh(x, x.TrailingZeroBits())
	for y.Sign() != 0 {
		y.Rsh(y, y.TrailingZeroBits())
		if x.Cmp(y) > 0 {
			x, y = y, x
		}
		// both odd here, so the difference is even
		y.Sub(y, x)
	}
	return &Nat{vt: x.Lsh(x, shift)}
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *Nat) bool {
	return GCD(a, b).Cmp(one) == 0
}

// Jacobi returns the Jacobi symbol (x/y). The denominator must be odd.
func Jacobi(x, y *Nat) (int, error) {
	if y.Sign() == 0 || y.Bit(0) == 0 {
		return 0, errors.New("jacobi symbol requires an odd denominator")
	}
	return big.Jacobi(x.big(), y.big()), nil
}
