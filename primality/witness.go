// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"github.com/JamesDevlin5/PrimeChecker/common"
	big "github.com/JamesDevlin5/PrimeChecker/common/int"
)

// WitnessSequence yields candidate bases for witness-based primality rounds.
// Sequences only produce values in [2, n-2], never repeat a base within one
// run, and rewind to their initial state on Reset. For n < 4 that interval is
// empty and sequences yield nothing.
type WitnessSequence interface {
	// Next returns the next base, or ok == false once the sequence is done.
	Next() (a *big.Nat, ok bool)
	Reset()
}

// deterministicWitnessSet is the fixed base set used below
// sorensonWebsterBound. Sorenson & Webster (2015) verified that the primes up
// to 37 form a complete Miller-Rabin witness set in that range.
var deterministicWitnessSet = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// sorensonWebsterBound is the exclusive ceiling under which
// deterministicWitnessSet decides primality exactly.
var sorensonWebsterBound = big.MustParseNat("318665857834031151167461")

// maxWitnessDraws caps the attempts a sampling sequence makes before
// declaring its pool exhausted. Only tiny n can realistically hit it.
const maxWitnessDraws = 100

type staticWitnesses struct {
	bases []*big.Nat
	idx   int
}

// StaticWitnesses yields the given bases in order, dropping duplicates and
// any outside [2, n-2].
func StaticWitnesses(n *big.Nat, bases ...*big.Nat) WitnessSequence {
	max, err := n.Sub(two)
	if err != nil {
		return &staticWitnesses{}
	}
	kept := make([]*big.Nat, 0, len(bases))
next:
	for _, a := range bases {
		if a.Cmp(two) < 0 || a.Cmp(max) > 0 {
			continue
		}
		for _, b := range kept {
			if a.Cmp(b) == 0 {
				continue next
			}
		}
		kept = append(kept, a)
	}
	return &staticWitnesses{bases: kept}
}

// DeterministicWitnesses yields the fixed small prime set, clipped to the
// admissible range for n.
func DeterministicWitnesses(n *big.Nat) WitnessSequence {
	bases := make([]*big.Nat, len(deterministicWitnessSet))
	for i, p := range deterministicWitnessSet {
		bases[i] = big.NewNat(p)
	}
	return StaticWitnesses(n, bases...)
}

func (w *staticWitnesses) Next() (*big.Nat, bool) {
	if w.idx >= len(w.bases) {
		return nil, false
	}
	a := w.bases[w.idx]
	w.idx++
	return a, true
}

func (w *staticWitnesses) Reset() {
	w.idx = 0
}

type seededWitnesses struct {
	n    *big.Nat
	span *big.Nat // size of [2, n-2]
	seed *big.Nat
	ctr  uint64
	seen map[string]struct{}
}

// SeededWitnesses derives a reproducible base stream from seed. Each draw
// hashes (seed, n, counter) and rejection-samples the digest into [2, n-2],
// so a fixed seed replays bit-for-bit across runs.
func SeededWitnesses(n *big.Nat, seed uint64) WitnessSequence {
	span, err := n.Sub(three)
	if err != nil || span.Sign() == 0 {
		return &staticWitnesses{}
	}
	return &seededWitnesses{
		n:    n,
		span: span,
		seed: big.NewNat(seed),
		seen: map[string]struct{}{},
	}
}

func (w *seededWitnesses) Next() (*big.Nat, bool) {
	for draws := 0; draws < maxWitnessDraws; draws++ {
		digest := common.Blake2bNats(w.seed, w.n, big.NewNat(w.ctr))
		w.ctr++
		a := two.Add(common.RejectionSample(w.span, digest))
		key := string(a.Bytes())
		if _, dup := w.seen[key]; dup {
			continue
		}
		w.seen[key] = struct{}{}
		return a, true
	}
	return nil, false
}

func (w *seededWitnesses) Reset() {
	w.ctr = 0
	w.seen = map[string]struct{}{}
}

type randomWitnesses struct {
	lo, hi *big.Nat // admissible half-open range [lo, hi)
	seen   map[string]struct{}
}

// RandomWitnesses draws uniform bases from [2, n-2] using crypto/rand.
func RandomWitnesses(n *big.Nat) WitnessSequence {
	hi, err := n.Sub(one)
	if err != nil || hi.Cmp(three) < 0 {
		return &staticWitnesses{}
	}
	return &randomWitnesses{lo: two, hi: hi, seen: map[string]struct{}{}}
}

func (w *randomWitnesses) Next() (*big.Nat, bool) {
	for draws := 0; draws < maxWitnessDraws; draws++ {
		a := common.GetRandomIntInRange(w.lo, w.hi)
		if a == nil {
			return nil, false
		}
		key := string(a.Bytes())
		if _, dup := w.seen[key]; dup {
			continue
		}
		w.seen[key] = struct{}{}
		return a, true
	}
	return nil, false
}

func (w *randomWitnesses) Reset() {
	w.seen = map[string]struct{}{}
}
