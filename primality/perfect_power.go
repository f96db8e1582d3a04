// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	big2 "math/big"

	"github.com/JamesDevlin5/PrimeChecker/common"
	big "github.com/JamesDevlin5/PrimeChecker/common/int"
)

// IsPerfectPower reports whether n == b^k for some b > 1, k > 1, and returns
// such a base b. Any perfect power above 1 is composite, so the pipeline can
// settle these without witness rounds. Numbers below 4 are never perfect
// powers.
func IsPerfectPower(n *big.Nat) (*big.Nat, bool) {
	if n == nil || n.Cmp(four) < 0 {
		return nil, false
	}
	// squares first: the most common case, and it covers every even exponent
	r := n.Sqrt()
	if r.Mul(r).Cmp(n) == 0 {
		return r, true
	}
	// odd prime exponents up to log2(n); a composite exponent ab implies the
	// number is also a perfect a-th power
	for _, k := range common.PrimesUpTo(uint64(n.BitLen())) {
		if k == 2 {
			continue
		}
		if root, found := kthRoot(n, k); found {
			return root, true
		}
	}
	return nil, false
}

// kthRoot binary-searches for an integer b >= 2 with b^k == n.
func kthRoot(n *big.Nat, k uint64) (*big.Nat, bool) {
	bitLen := uint64(n.BitLen())
	if k > bitLen {
		// the smallest admissible base already overshoots: 2^k > n
		return nil, false
	}
	nb := n.Big()
	low := big2.NewInt(2)
	high := new(big2.Int).Lsh(big2.NewInt(1), uint((bitLen+k-1)/k))
	kb := new(big2.Int).SetUint64(k)
	oneb := big2.NewInt(1)
	mid, pow := new(big2.Int), new(big2.Int)
	for low.Cmp(high) <= 0 {
		mid.Add(low, high)
		mid.Rsh(mid, 1)
		pow.Exp(mid, kb, nil)
		switch pow.Cmp(nb) {
		case 0:
			return big.NatFromBytes(mid.Bytes()), true
		case -1:
			low.Add(mid, oneb)
		case 1:
			high.Sub(mid, oneb)
		}
	}
	return nil, false
}
