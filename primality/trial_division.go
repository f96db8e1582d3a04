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

// TrialDivision scans n for factors up to min(limit, floor(sqrt(n))). When a
// factor divides n the verdict is Composite with that factor as witness. A
// clean scan is conclusive (Prime) only if it covered the full square root
// bound; otherwise ok is false and the caller must escalate. A fixed probe
// against the primes up to 53 runs first regardless of limit; it can only
// find genuine factors, so it never weakens the limit contract.
func TrialDivision(n *big.Nat, limit uint64) (v Verdict, ok bool) {
	if n == nil {
		return Verdict{}, false
	}
	if n.Cmp(two) < 0 {
		// 0 and 1 are neither prime nor units of interest here
		return newComposite(AlgTrialDivision, nil, 0), true
	}
	if n.Cmp(three) <= 0 {
		return newPrime(AlgTrialDivision, 0), true
	}
	if n.Bit(0) == 0 {
		return newComposite(AlgTrialDivision, two, 0), true
	}
	if f, found := common.HasSmallOddFactor(n); found {
		return newComposite(AlgTrialDivision, big.NewNat(f), 0), true
	}

	sqrtN := n.Sqrt()
	conclusive := sqrtN.IsUint64() && sqrtN.Uint64() <= limit
	bound := limit
	if conclusive {
		bound = sqrtN.Uint64()
	}

	// the probe covered the primes through 53; resume at the next odd divisor
	if n.IsUint64() {
		nn := n.Uint64()
		for d := uint64(55); d <= bound; d += 2 {
			if nn%d == 0 {
				return newComposite(AlgTrialDivision, big.NewNat(d), 0), true
			}
		}
	} else {
		nb := n.Big()
		db, rb := new(big2.Int), new(big2.Int)
		for d := uint64(55); d <= bound; d += 2 {
			db.SetUint64(d)
			if rb.Mod(nb, db).Sign() == 0 {
				return newComposite(AlgTrialDivision, big.NewNat(d), 0), true
			}
		}
	}

	if conclusive {
		return newPrime(AlgTrialDivision, 0), true
	}
	return Verdict{}, false
}
