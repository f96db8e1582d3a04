// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"fmt"
	big2 "math/big"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/pkg/errors"
)

const (
	mustGetRandomIntMaxBits = 5000
)

var (
	zero = big.NewNat(0)
	one  = big.NewNat(1)
	two  = big.NewNat(2)
)

// MustGetRandomInt panics if it is unable to gather entropy from `rand.Reader` or when `bits` is <= 0
func MustGetRandomInt(bits int) *big.Nat {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(fmt.Errorf("MustGetRandomInt: bits should be positive, non-zero and less than %d", mustGetRandomIntMaxBits))
	}
	// Max random value e.g. 2^256 - 1
	max := new(big2.Int)
	max = max.Exp(two.Big(), big2.NewInt(int64(bits)), nil).Sub(max, one.Big())

	// Generate cryptographically strong pseudo-random int between 0 - max
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomInt!"))
	}
	return big.NatFromBytes(n.Bytes())
}

// GetRandomPositiveInt returns a uniform value in (0, upper), or nil when the
// bound leaves nothing to draw.
func GetRandomPositiveInt(upper *big.Nat) *big.Nat {
	if upper == nil || zero.Cmp(upper) != -1 {
		return nil
	}
	var try *big.Nat
	for {
		try = MustGetRandomInt(upper.BitLen())
		if try.Cmp(upper) < 0 && try.Cmp(zero) > 0 {
			break
		}
	}
	return try
}

// GetRandomIntInRange returns a uniform value in [lo, hi), or nil when the
// range is empty.
func GetRandomIntInRange(lo, hi *big.Nat) *big.Nat {
	if lo == nil || hi == nil {
		return nil
	}
	width, err := hi.Sub(lo)
	if err != nil || width.Sign() == 0 {
		return nil
	}
	// rejection sample an offset below width, then shift it up
	for {
		try := MustGetRandomInt(width.BitLen())
		if try.Cmp(width) < 0 {
			return lo.Add(try)
		}
	}
}
