// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primegen

import (
	"sort"
	"sync"

	"github.com/JamesDevlin5/PrimeChecker/common"
)

// PrimeCache holds the primes found so far in ascending order and extends
// itself on demand. Safe for concurrent use.
type PrimeCache struct {
	mu     sync.RWMutex
	primes []uint64
	limit  uint64 // complete through this value
}

// NewPrimeCache seeds the cache with the primes up to 97.
func NewPrimeCache() *PrimeCache {
	return &PrimeCache{
		primes: common.FirstNPrimes(25),
		limit:  97,
	}
}

// EnsureUpTo extends the cache to cover every prime <= limit.
func (c *PrimeCache) EnsureUpTo(limit uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureUpToLocked(limit)
}

// ensureUpToLocked re-sieves from scratch rather than segmenting; at the
// scales the cache serves, a fresh sieve costs less than the bookkeeping.
// The primes slice is always replaced, never grown in place, so snapshots
// handed out under the lock stay valid after it is released.
func (c *PrimeCache) ensureUpToLocked(limit uint64) {
	if limit <= c.limit {
		return
	}
	c.primes = common.PrimesUpTo(limit)
	c.limit = limit
}

// Contains reports whether n is prime, extending the cache as needed.
func (c *PrimeCache) Contains(n uint64) bool {
	c.mu.Lock()
	c.ensureUpToLocked(n)
	primes := c.primes
	c.mu.Unlock()

	i := sort.Search(len(primes), func(i int) bool { return primes[i] >= n })
	return i < len(primes) && primes[i] == n
}

// Nth returns the i-th prime, zero-indexed: Nth(0) == 2. Panics on a
// negative index.
func (c *PrimeCache) Nth(i int) uint64 {
	if i < 0 {
		panic("PrimeCache.Nth: negative index")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.primes) <= i {
		c.ensureUpToLocked(c.limit * 2)
	}
	return c.primes[i]
}

// PrimesUpTo returns a copy of every prime <= limit, extending first.
func (c *PrimeCache) PrimesUpTo(limit uint64) []uint64 {
	c.mu.Lock()
	c.ensureUpToLocked(limit)
	primes := c.primes
	c.mu.Unlock()

	i := sort.Search(len(primes), func(i int) bool { return primes[i] > limit })
	return append([]uint64(nil), primes[:i]...)
}

// Len returns the number of primes currently cached.
func (c *PrimeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.primes)
}
