// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package int

// ModNat performs arithmetic with reduction by a fixed modulus. It is the hot
// path of the witness loops, where every product must be brought back below
// the modulus before the next step.
type ModNat struct {
	m *Nat
}

// ModulusOf fixes m as the modulus for subsequent operations.
func ModulusOf(m *Nat) (*ModNat, error) {
	if m.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return &ModNat{m: m.Clone()}, nil
}

func (mi *ModNat) Add(x, y *Nat) *Nat {
	r, _ := x.Add(y).Mod(mi.m)
	return r
}

func (mi *ModNat) Sub(x, y *Nat) *Nat {
	// lift x above y so the subtraction cannot underflow
	yr, _ := y.Mod(mi.m)
	d, _ := x.Add(mi.m).Sub(yr)
	r, _ := d.Mod(mi.m)
	return r
}

func (mi *ModNat) Mul(x, y *Nat) *Nat {
	r, _ := x.Mul(y).Mod(mi.m)
	return r
}

func (mi *ModNat) Exp(x, y *Nat) *Nat {
	r, _ := x.ExpMod(y, mi.m)
	return r
}

// Modulus returns a copy of the fixed modulus.
func (mi *ModNat) Modulus() *Nat {
	return mi.m.Clone()
}

func (mi *ModNat) BitLen() int {
	return mi.m.BitLen()
}
