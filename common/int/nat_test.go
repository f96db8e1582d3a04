// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package int_test

import (
	big2 "math/big"
	"testing"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/JamesDevlin5/PrimeChecker/internal"
	"github.com/stretchr/testify/assert"
)

func TestNewNat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0), big.NewNat(0).Uint64())
	assert.Equal(t, uint64(42), big.NewNat(42).Uint64())
	assert.Equal(t, "18446744073709551615", big.NewNat(1<<64-1).String())
	assert.True(t, big.NewNat(7).IsUint64())
}

func TestParseNat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		s       string
		base    int
		want    uint64
		wantErr bool
	}{{
		name: "decimal",
		s:    "7919",
		base: 10,
		want: 7919,
	}, {
		name: "hex prefix with base 0",
		s:    "0x1f",
		base: 0,
		want: 31,
	}, {
		name: "binary prefix with base 0",
		s:    "0b1011",
		base: 0,
		want: 11,
	}, {
		name: "surrounding whitespace",
		s:    " 561\n",
		base: 10,
		want: 561,
	}, {
		name:    "negative is rejected",
		s:       "-5",
		base:    10,
		wantErr: true,
	}, {
		name:    "garbage is rejected",
		s:       "twelve",
		base:    10,
		wantErr: true,
	}, {
		name:    "empty is rejected",
		s:       "",
		base:    10,
		wantErr: true,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := big.ParseNat(tt.s, tt.base)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, n.Uint64())
			}
		})
	}
}

func TestMustParseNat(t *testing.T) {
	t.Parallel()
	n := big.MustParseNat("318665857834031151167461")
	assert.Equal(t, "318665857834031151167461", n.String())
	assert.NoError(t, internal.ExpectPanic(nil, func() {
		big.MustParseNat("not a number")
	}))
}

func TestWrapRejectsNegatives(t *testing.T) {
	t.Parallel()
	_, err := big.Wrap(big2.NewInt(-1))
	assert.ErrorIs(t, err, big.ErrNegative)
	_, err = big.Wrap(nil)
	assert.ErrorIs(t, err, big.ErrNegative)
	n, err := big.Wrap(big2.NewInt(561))
	assert.NoError(t, err)
	assert.Equal(t, uint64(561), n.Uint64())
}

func TestNatArithmetic(t *testing.T) {
	t.Parallel()
	a, b := big.NewNat(100), big.NewNat(42)

	assert.Equal(t, uint64(142), a.Add(b).Uint64())

	d, err := a.Sub(b)
	assert.NoError(t, err)
	assert.Equal(t, uint64(58), d.Uint64())
	_, err = b.Sub(a)
	assert.ErrorIs(t, err, big.ErrUnderflow)

	assert.Equal(t, uint64(4200), a.Mul(b).Uint64())
	assert.Equal(t, 0, a.Mul(big.NewNat(0)).Sign())

	q, r, err := a.DivMod(b)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), q.Uint64())
	assert.Equal(t, uint64(16), r.Uint64())
	_, _, err = a.DivMod(big.NewNat(0))
	assert.ErrorIs(t, err, big.ErrDivisionByZero)

	m, err := a.Mod(b)
	assert.NoError(t, err)
	assert.Equal(t, uint64(16), m.Uint64())
}

func TestNatMulLarge(t *testing.T) {
	t.Parallel()
	// (2^61 - 1) * (2^89 - 1), checked against math/big
	m61 := big.MustParseNat("2305843009213693951")
	m89 := big.MustParseNat("618970019642690137449562111")
	want := new(big2.Int).Mul(m61.Big(), m89.Big())
	assert.Equal(t, want.String(), m61.Mul(m89).String())
}

func TestNatExpMod(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		x, e, m uint64
		want    uint64
	}{{
		name: "small power",
		x:    2, e: 10, m: 1000,
		want: 24,
	}, {
		name: "fermat little theorem",
		x:    2, e: 340, m: 341,
		want: 1,
	}, {
		name: "zero exponent",
		x:    7, e: 0, m: 13,
		want: 1,
	}, {
		name: "zero base zero exponent",
		x:    0, e: 0, m: 13,
		want: 1,
	}, {
		name: "modulus one collapses everything",
		x:    9, e: 9, m: 1,
		want: 0,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := big.NewNat(tt.x).ExpMod(big.NewNat(tt.e), big.NewNat(tt.m))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Uint64())
		})
	}
	_, err := big.NewNat(2).ExpMod(big.NewNat(2), big.NewNat(0))
	assert.ErrorIs(t, err, big.ErrDivisionByZero)
}

func TestNatSqrt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0), big.NewNat(0).Sqrt().Uint64())
	assert.Equal(t, uint64(31), big.NewNat(961).Sqrt().Uint64())
	assert.Equal(t, uint64(31), big.NewNat(1023).Sqrt().Uint64())
	assert.Equal(t, uint64(32), big.NewNat(1024).Sqrt().Uint64())
}

func TestNatShifts(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(96), big.NewNat(3).Lsh(5).Uint64())
	assert.Equal(t, uint64(3), big.NewNat(96).Rsh(5).Uint64())
	assert.Equal(t, uint64(0), big.NewNat(1).Rsh(64).Uint64())
}

func TestNatBits(t *testing.T) {
	t.Parallel()
	n := big.NewNat(96) // 0b1100000
	assert.Equal(t, 7, n.BitLen())
	assert.Equal(t, uint(0), n.Bit(0))
	assert.Equal(t, uint(1), n.Bit(5))
	assert.Equal(t, uint(5), n.TrailingZeroBits())
	assert.Equal(t, uint(0), big.NewNat(0).TrailingZeroBits())
	assert.Equal(t, uint(0), big.NewNat(7).TrailingZeroBits())
	assert.Equal(t, 0, big.NewNat(0).BitLen())
}

func TestNatCmpSign(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, big.NewNat(2).Cmp(big.NewNat(3)))
	assert.Equal(t, 0, big.NewNat(3).Cmp(big.NewNat(3)))
	assert.Equal(t, 1, big.NewNat(4).Cmp(big.NewNat(3)))
	assert.Equal(t, 0, big.NewNat(0).Sign())
	assert.Equal(t, 1, big.NewNat(1).Sign())
}

func TestNatBytesRoundTrip(t *testing.T) {
	t.Parallel()
	n := big.MustParseNat("147573952589676412927")
	back := big.NatFromBytes(n.Bytes())
	assert.Zero(t, n.Cmp(back))
	assert.Empty(t, big.NewNat(0).Bytes())
}

func TestNatBigIsACopy(t *testing.T) {
	t.Parallel()
	n := big.NewNat(17)
	n.Big().SetUint64(99)
	assert.Equal(t, uint64(17), n.Uint64())
}

func TestNatZeroValue(t *testing.T) {
	t.Parallel()
	var n big.Nat
	assert.Equal(t, 0, n.Sign())
	assert.Equal(t, "0", n.String())
	assert.Equal(t, uint64(1), n.Add(big.NewNat(1)).Uint64())
}
