// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primegen searches for primes, vetting candidates with the
// primality engine. Random search follows the shape of crypto/rand.Prime
// with a combined small prime sieve layered on top, as described in
// https://eprint.iacr.org/2003/186.pdf: instead of drawing fresh random
// bytes per candidate, it steps a single random base through even deltas and
// rejects most composites with one modular reduction.
package primegen

import (
	"context"
	"crypto/rand"
	"io"
	"runtime"
	"sync"

	"github.com/JamesDevlin5/PrimeChecker/common"
	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/JamesDevlin5/PrimeChecker/primality"
	"github.com/pkg/errors"
)

const (
	// maxDeltaSearch is the number of 2-increment steps probed from one base
	// before drawing a fresh one.
	maxDeltaSearch = 1 << 20
	// witnessRounds vets candidates beyond the deterministic range.
	witnessRounds = 15
)

var (
	one = big.NewNat(1)
	two = big.NewNat(2)
)

// genConfig keeps the engine's own divisor scan short; the sieve here has
// already rejected candidates with small factors.
var genConfig, _ = primality.NewConfig(100, witnessRounds)

func isPrime(n *big.Nat) bool {
	v, err := primality.Test(n, genConfig)
	return err == nil && v.IsPrime()
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n *big.Nat) (*big.Nat, error) {
	if n == nil {
		return nil, errors.Wrap(primality.ErrInvalidInput, "nil input")
	}
	c := n.Add(one)
	if c.Cmp(two) <= 0 {
		return two.Clone(), nil
	}
	if c.Bit(0) == 0 {
		c = c.Add(one)
	}

	primes := common.SmallOddPrimes()
	product := common.SmallOddPrimesProduct()
	for {
		r, err := c.Mod(product)
		if err != nil {
			return nil, err
		}
		m := r.Uint64()
	NextDelta:
		for delta := uint64(0); delta < maxDeltaSearch; delta += 2 {
			mm := m + delta
			for _, p := range primes {
				// a remainder equal to p means the candidate may be the
				// prime p itself; anything else divisible by p is composite
				if mm%p == 0 && mm != p {
					continue NextDelta
				}
			}
			cand := c
			if delta > 0 {
				cand = c.Add(big.NewNat(delta))
			}
			if isPrime(cand) {
				return cand, nil
			}
		}
		// no prime in this window; prime gaps this wide are unreachable in
		// practice, but step the base along anyway
		c = c.Add(big.NewNat(maxDeltaSearch))
	}
}

// RandomPrime finds a random prime of exactly bitLen bits. The two most
// significant bits of every candidate are set, so the product of two
// generated primes never falls a bit short. Workers search independently;
// the first hit wins and the rest are cancelled. Cancel or add a deadline to
// ctx to bound the search. Concurrency defaults to the CPU count.
func RandomPrime(ctx context.Context, bitLen int, optionalConcurrency ...int) (*big.Nat, error) {
	if bitLen < 2 {
		return nil, errors.New("prime size must be at least 2 bits")
	}
	concurrency := runtime.NumCPU()
	if 0 < len(optionalConcurrency) {
		if 1 < len(optionalConcurrency) {
			return nil, errors.New("RandomPrime: expected 0 or 1 item in `optionalConcurrency`")
		}
		if concurrency = optionalConcurrency[0]; concurrency < 1 {
			return nil, errors.New("RandomPrime: concurrency must be positive")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, concurrency)
	primeCh := make(chan *big.Nat, concurrency)

	wg := &sync.WaitGroup{}
	wg.Add(concurrency)
	defer wg.Wait()
	defer cancel()
	for i := 0; i < concurrency; i++ {
		go searchRoutine(ctx, primeCh, errCh, wg, rand.Reader, bitLen)
	}

	select {
	case p := <-primeCh:
		return p, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// searchRoutine draws random odd bases of the requested length and walks
// them through even deltas, handing every sieve survivor to the engine.
func searchRoutine(
	ctx context.Context,
	primeCh chan<- *big.Nat,
	errCh chan<- error,
	wg *sync.WaitGroup,
	random io.Reader,
	bitLen int,
) {
	defer wg.Done()

	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}
	bytes := make([]byte, (bitLen+7)/8)
	primes := common.SmallOddPrimes()
	product := common.SmallOddPrimesProduct()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if _, err := io.ReadFull(random, bytes); err != nil {
			errCh <- err
			return
		}

		// Clear excess bits so the candidate has at most bitLen bits.
		bytes[0] &= uint8(int(1<<b) - 1)
		// Set the two most significant bits. Setting both, rather than just
		// the top bit, means the product of two of these values is never one
		// bit short.
		if b >= 2 {
			bytes[0] |= 3 << (b - 2)
		} else {
			// b == 1, because b cannot be zero
			bytes[0] |= 1
			if len(bytes) > 1 {
				bytes[1] |= 0x80
			}
		}
		// An even number this large certainly isn't prime.
		bytes[len(bytes)-1] |= 1

		base := big.NatFromBytes(bytes)
		r, err := base.Mod(product)
		if err != nil {
			errCh <- err
			return
		}
		m := r.Uint64()

	NextDelta:
		for delta := uint64(0); delta < maxDeltaSearch; delta += 2 {
			mm := m + delta
			for _, p := range primes {
				// Reject candidates divisible by a small prime. A remainder
				// equal to the prime itself is kept for short bit lengths,
				// where the candidate can actually be that prime.
				if mm%p == 0 && (mm != p || bitLen > 6) {
					continue NextDelta
				}
			}
			cand := base
			if delta > 0 {
				cand = base.Add(big.NewNat(delta))
			}
			// the delta walk may have pushed the value one bit too long
			if cand.BitLen() != bitLen {
				continue
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
			if isPrime(cand) {
				select {
				case primeCh <- cand:
				case <-ctx.Done():
				}
				return
			}
		}
	}
}
