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

// WilsonCeiling is the largest input IsPrimeWilson accepts. The factorial
// walk is linear in n, so the tester is a cross-check oracle, not a
// production path.
const WilsonCeiling = 10000

// IsPrimeWilson decides primality by Wilson's theorem: n is prime iff
// (n-1)! == n-1 (mod n). The product is reduced at every step so the
// accumulator never outgrows n. Inputs above WilsonCeiling are rejected with
// ErrInputTooLarge; n < 2 is composite by convention, matching the pipeline.
func IsPrimeWilson(n *big.Nat) (bool, error) {
	if n == nil {
		return false, errors.Wrap(ErrInvalidInput, "nil input")
	}
	if !n.IsUint64() || n.Uint64() > WilsonCeiling {
		return false, errors.Wrapf(ErrInputTooLarge, "wilson tester accepts n <= %d", WilsonCeiling)
	}
	v := n.Uint64()
	if v < 2 {
		return false, nil
	}
	// (n-1)! mod n; operands stay below 10^4 so uint64 products cannot overflow
	f := uint64(1)
	for k := uint64(2); k < v; k++ {
		f = (f * k) % v
	}
	return f == v-1, nil
}
