// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	big2 "math/big"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
)

// RejectionSample converts a hash digest to a value in [0, q) by keeping the
// first |q| bits of the digest and re-hashing until the result lands below q.
// Returns nil when q is zero.
func RejectionSample(q *big.Nat, eHash *big.Nat) *big.Nat { // e' = eHash
	if q == nil || zero.Cmp(q) != -1 {
		return nil
	}
	qBits := q.BitLen()
	e := firstBitsOf(qBits, eHash)
	for e.Cmp(q) != -1 {
		eHash = Blake2bNats(eHash)
		e = firstBitsOf(qBits, eHash)
	}
	return e
}

func firstBitsOf(bits int, v *big.Nat) *big.Nat {
	mask := new(big2.Int).Lsh(big2.NewInt(1), uint(bits))
	mask.Sub(mask, big2.NewInt(1))
	e, _ := big.Wrap(mask.And(v.Big(), mask))
	return e
}
