// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Optionally constant time natural numbers (best effort)

package int

import (
	"math/big"
	"strings"

	big_const "github.com/cronokirby/saferith"
	"github.com/pkg/errors"
	"github.com/remyoudompheng/bigfft"
)

var (
	// ErrUnderflow is returned when a subtraction would produce a negative result.
	ErrUnderflow = errors.New("subtraction would underflow")
	// ErrDivisionByZero is returned when a division or modular reduction has a zero divisor.
	ErrDivisionByZero = errors.New("division or reduction by zero")
	// ErrNegative is returned when a negative value is offered where only naturals are representable.
	ErrNegative = errors.New("negative values cannot be represented")
)

type (
	// Nat is an arbitrary precision natural number. Values are immutable:
	// every operation leaves its operands untouched and returns a fresh value.
	// The zero value is ready to use and represents 0.
	Nat struct {
		ct *big_const.Int
		vt *big.Int
	}
)

var (
	constantTimeNatEnabled = false
)

// EnableConstantTimeArithmetic enables best-effort constant time arithmetic (experimental, probably slow)
// Must be called before any Nat is constructed, or behaviour may be unpredictable.
func EnableConstantTimeArithmetic() (enabled bool) {
	constantTimeNatEnabled = true
	return constantTimeNatEnabled
}

func NewNat(x uint64) *Nat {
	i := new(big_const.Int).SetUint64(x)
	return &Nat{i, i.Big()}
}

// NatFromBytes interprets data as a big-endian unsigned integer.
func NatFromBytes(data []byte) *Nat {
	if constantTimeNatEnabled {
		return &Nat{ct: new(big_const.Int).SetBytes(data)}
	}
	return &Nat{vt: new(big.Int).SetBytes(data)}
}

// Wrap copies a math/big value into a Nat. The argument is rejected with
// ErrNegative rather than silently clamped.
func Wrap(bi *big.Int) (*Nat, error) {
	if bi == nil {
		return nil, errors.Wrap(ErrNegative, "nil *big.Int")
	}
	if bi.Sign() < 0 {
		return nil, ErrNegative
	}
	return NatFromBytes(bi.Bytes()), nil
}

// ParseNat parses s in the given base (or with base prefixes when base is 0),
// in the manner of (*big.Int).SetString. Negative inputs are rejected.
func ParseNat(s string, base int) (*Nat, error) {
	bi, ok := new(big.Int).SetString(strings.TrimSpace(s), base)
	if !ok {
		return nil, errors.Errorf("cannot parse %q as a base %d integer", s, base)
	}
	return Wrap(bi)
}

// MustParseNat is a ParseNat (base 10) that panics on malformed input.
// Intended for literals in tests and package variables.
func MustParseNat(s string) *Nat {
	n, err := ParseNat(s, 10)
	if err != nil {
		panic(err)
	}
	return n
}

func (x *Nat) Add(y *Nat) *Nat {
	if constantTimeNatEnabled {
		return &Nat{ct: new(big_const.Int).Add(x.constTime(), y.constTime(), -1)}
	}
	return &Nat{vt: new(big.Int).Add(x.big(), y.big())}
}

// Sub returns x - y, or ErrUnderflow when y > x.
func (x *Nat) Sub(y *Nat) (*Nat, error) {
	if x.Cmp(y) < 0 {
		return nil, ErrUnderflow
	}
	return &Nat{vt: new(big.Int).Sub(x.big(), y.big())}, nil
}

// Mul returns x * y. The variable time path multiplies through bigfft, which
// switches to an FFT once the operands are large enough to benefit.
func (x *Nat) Mul(y *Nat) *Nat {
	if constantTimeNatEnabled {
		return &Nat{ct: new(big_const.Int).Mul(x.constTime(), y.constTime(), -1)}
	}
	return &Nat{vt: bigfft.Mul(x.big(), y.big())}
}

// DivMod returns the quotient and remainder of x / y.
func (x *Nat) DivMod(y *Nat) (*Nat, *Nat, error) {
	if y.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	q, r := new(big.Int).DivMod(x.big(), y.big(), new(big.Int))
	return &Nat{vt: q}, &Nat{vt: r}, nil
}

func (x *Nat) Div(y *Nat) (*Nat, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

func (x *Nat) Mod(m *Nat) (*Nat, error) {
	if m.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if constantTimeNatEnabled {
		i := new(big_const.Int).SetBytes(x.constTime().Mod(big_const.ModulusFromBytes(m.Bytes())).Bytes())
		return &Nat{ct: i}, nil
	}
	return &Nat{vt: new(big.Int).Mod(x.big(), m.big())}, nil
}

// ExpMod returns x^e mod m. Reduction by zero is an error; per the usual
// modular exponentiation conventions, x^e mod 1 == 0 and x^0 mod m == 1 mod m.
func (x *Nat) ExpMod(e, m *Nat) (*Nat, error) {
	if m.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return &Nat{vt: new(big.Int).Exp(x.big(), e.big(), m.big())}, nil
}

// Sqrt returns the integer square root of x, the largest r with r*r <= x.
func (x *Nat) Sqrt() *Nat {
	return &Nat{vt: new(big.Int).Sqrt(x.big())}
}

func (x *Nat) Lsh(n uint) *Nat {
	return &Nat{vt: new(big.Int).Lsh(x.big(), n)}
}

func (x *Nat) Rsh(n uint) *Nat {
	return &Nat{vt: new(big.Int).Rsh(x.big(), n)}
}

func (x *Nat) Cmp(y *Nat) (r int) {
	return x.big().Cmp(y.big())
}

func (x *Nat) Sign() int {
	return x.big().Sign()
}

func (x *Nat) BitLen() int {
	if constantTimeNatEnabled && x.ct != nil {
		// TrueLen leaks the magnitude, but announced lengths cannot drive the
		// scan bounds used by the primality testers.
		return x.ct.TrueLen()
	}
	return x.big().BitLen()
}

func (x *Nat) Bit(i int) uint {
	return x.big().Bit(i)
}

// TrailingZeroBits returns the number of consecutive zero bits above bit 0,
// i.e. the largest s such that 2^s divides x. Returns 0 when x is 0.
func (x *Nat) TrailingZeroBits() uint {
	if x.Sign() == 0 {
		return 0
	}
	return x.big().TrailingZeroBits()
}

func (x *Nat) Clone() *Nat {
	if x.ct != nil {
		return &Nat{ct: x.ct.Clone()}
	}
	return &Nat{vt: new(big.Int).Set(x.big())}
}

// getters
func (x *Nat) Uint64() uint64 {
	return x.big().Uint64()
}

func (x *Nat) IsUint64() bool {
	return x.big().IsUint64()
}

func (x *Nat) Bytes() []byte {
	return x.big().Bytes()
}

// Big returns the value as a math/big integer. The result is a copy; mutating
// it cannot reach back into the Nat.
func (x *Nat) Big() *big.Int {
	return new(big.Int).Set(x.big())
}

func (x *Nat) String() string {
	if x.ct != nil {
		return x.ct.String()
	}
	return x.big().String()
}

// -----

// big returns the backing math/big value without copying. Callers must not
// mutate the result.
func (x *Nat) big() *big.Int {
	if x.vt != nil {
		return x.vt
	}
	if x.ct != nil {
		return x.ct.Big()
	}
	return new(big.Int)
}

func (x *Nat) constTime() *big_const.Int {
	if x.ct != nil {
		return x.ct
	}
	if x.vt != nil {
		return new(big_const.Int).SetBytes(x.vt.Bytes())
	}
	return new(big_const.Int)
}
