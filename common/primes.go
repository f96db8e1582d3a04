// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
)

// smallOddPrimes are the odd primes whose product still fits in a uint64.
// They drive the cheap divisibility probe used before any serious testing.
var smallOddPrimes = []uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// smallOddPrimesProduct is the product of smallOddPrimes. Reducing a candidate
// by it once turns fifteen big-number divisibility checks into fifteen uint64
// remainders.
var smallOddPrimesProduct = big.NewNat(16294579238595022365)

// first25Primes covers every prime up to 97 so the common small requests
// never touch the sieve.
var first25Primes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
	59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// SmallOddPrimes returns a copy of the probe primes.
func SmallOddPrimes() []uint64 {
	return append([]uint64(nil), smallOddPrimes...)
}

// SmallOddPrimesProduct returns a copy of the probe primes' product.
func SmallOddPrimesProduct() *big.Nat {
	return smallOddPrimesProduct.Clone()
}

// HasSmallOddFactor reduces n once by the product of the probe primes and
// tests the remainder against each of them, returning the first that divides
// n. A prime equal to one of the probe primes is not reported as its own
// factor. Callers are expected to have handled n < 2 and even n already.
func HasSmallOddFactor(n *big.Nat) (factor uint64, found bool) {
	r, err := n.Mod(smallOddPrimesProduct)
	if err != nil {
		return 0, false
	}
	m := r.Uint64()
	for _, p := range smallOddPrimes {
		if m%p != 0 {
			continue
		}
		if n.IsUint64() && n.Uint64() == p {
			continue
		}
		return p, true
	}
	return 0, false
}

// PrimesUpTo returns all primes <= limit in ascending order, found with a
// sieve of Eratosthenes. The limit is bounded by available memory; callers
// pass values far below that in practice.
func PrimesUpTo(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	for p := uint64(2); p <= limit/p; p++ {
		if composite[p] {
			continue
		}
		for c := p * p; c <= limit; c += p {
			composite[c] = true
		}
	}
	primes := make([]uint64, 0, primeCountEstimate(limit))
	for i := uint64(2); i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// FirstNPrimes returns the first n primes in ascending order. Requests up to
// 25 are served from a fixed table; larger ones sieve to a bound derived from
// the prime number theorem, doubling it in the rare case the estimate
// undershoots.
func FirstNPrimes(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	if n <= len(first25Primes) {
		return append([]uint64(nil), first25Primes[:n]...)
	}
	// p_n < n*(ln n + ln ln n) for n >= 6
	f := float64(n)
	limit := uint64(f * (math.Log(f) + math.Log(math.Log(f))))
	for {
		primes := PrimesUpTo(limit)
		if len(primes) >= n {
			return primes[:n]
		}
		limit *= 2
	}
}

// primeCountEstimate overestimates pi(limit) slightly to size the result
// slice in one allocation.
func primeCountEstimate(limit uint64) int {
	if limit < 17 {
		return 8
	}
	return int(float64(limit)/math.Log(float64(limit))*1.3) + 1
}
