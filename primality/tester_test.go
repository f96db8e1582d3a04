// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality_test

import (
	"testing"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/JamesDevlin5/PrimeChecker/primality"
	"github.com/stretchr/testify/assert"
	"modernc.org/mathutil"
)

func TestTestPipeline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		n       *big.Nat
		want    primality.Classification
		alg     string
		witness uint64 // 0 means no witness check
	}{{
		name: "zero",
		n:    big.NewNat(0),
		want: primality.Composite,
		alg:  primality.AlgTrialDivision,
	}, {
		name: "one",
		n:    big.NewNat(1),
		want: primality.Composite,
		alg:  primality.AlgTrialDivision,
	}, {
		name: "two",
		n:    big.NewNat(2),
		want: primality.Prime,
		alg:  primality.AlgTrialDivision,
	}, {
		name: "seventeen",
		n:    big.NewNat(17),
		want: primality.Prime,
		alg:  primality.AlgTrialDivision,
	}, {
		name:    "carmichael 561",
		n:       big.NewNat(561),
		want:    primality.Composite,
		alg:     primality.AlgTrialDivision,
		witness: 3,
	}, {
		name: "997",
		n:    big.NewNat(997),
		want: primality.Prime,
		alg:  primality.AlgTrialDivision,
	}, {
		name: "7919",
		n:    big.NewNat(7919),
		want: primality.Prime,
		alg:  primality.AlgTrialDivision,
	}, {
		name:    "square of a prime beyond the scan",
		n:       big.NewNat(1018081), // 1009^2
		want:    primality.Composite,
		alg:     primality.AlgPerfectPower,
		witness: 1009,
	}, {
		name: "mersenne prime 2^61 - 1",
		n:    big.MustParseNat("2305843009213693951"),
		want: primality.Prime,
		alg:  primality.AlgMillerRabin,
	}, {
		name: "cole's mersenne composite 2^67 - 1",
		n:    big.MustParseNat("147573952589676412927"),
		want: primality.Composite,
		alg:  primality.AlgMillerRabin,
	}, {
		name: "mersenne prime 2^89 - 1, beyond the deterministic range",
		n:    big.MustParseNat("618970019642690137449562111"),
		want: primality.ProbablyPrime,
		alg:  primality.AlgMillerRabin,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := primality.Test(tt.n, nil)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, v.Classification())
			assert.Equal(t, tt.alg, v.Algorithm())
			if tt.witness != 0 {
				if assert.NotNil(t, v.Witness()) {
					assert.Equal(t, tt.witness, v.Witness().Uint64())
				}
			}
		})
	}
}

func TestTestMatchesOracle(t *testing.T) {
	t.Parallel()
	// the tiny scan limit pushes every odd prime past trial division and
	// into the deterministic witness rounds
	cfg, err := primality.NewConfig(2, 10)
	assert.NoError(t, err)
	for n := uint64(0); n < 10000; n++ {
		v, err := primality.Test(big.NewNat(n), cfg)
		assert.NoError(t, err)
		if got, want := v.IsPrime(), n >= 2 && mathutil.IsPrime(uint32(n)); got != want {
			t.Fatalf("n = %d: pipeline says %v, oracle says %v", n, got, want)
		}
	}
}

func TestTestProbablyPrimeBound(t *testing.T) {
	t.Parallel()
	m89 := big.MustParseNat("618970019642690137449562111")
	cfg, err := primality.NewConfig(1000, 10, 42)
	assert.NoError(t, err)
	v, err := primality.Test(m89, cfg)
	assert.NoError(t, err)
	assert.Equal(t, primality.ProbablyPrime, v.Classification())
	assert.Equal(t, 10, v.Rounds())
	assert.InDelta(t, 9.5367431640625e-07, v.FalsePositiveBound(), 1e-18) // 4^-10
}

func TestTestSeededReproducible(t *testing.T) {
	t.Parallel()
	// a composite beyond the deterministic range: m61 * m89
	n := big.MustParseNat("2305843009213693951").Mul(big.MustParseNat("618970019642690137449562111"))
	cfg, err := primality.NewConfig(1000, 20, 7)
	assert.NoError(t, err)

	v1, err := primality.Test(n, cfg)
	assert.NoError(t, err)
	v2, err := primality.Test(n, cfg)
	assert.NoError(t, err)

	assert.Equal(t, primality.Composite, v1.Classification())
	assert.Equal(t, v1.Rounds(), v2.Rounds())
	if assert.NotNil(t, v1.Witness()) && assert.NotNil(t, v2.Witness()) {
		assert.Zero(t, v1.Witness().Cmp(v2.Witness()))
	}
}

func TestTestUnseededBeyondRange(t *testing.T) {
	t.Parallel()
	// m61 * m89 again, with witnesses from crypto/rand
	n := big.MustParseNat("2305843009213693951").Mul(big.MustParseNat("618970019642690137449562111"))
	v, err := primality.Test(n, nil)
	assert.NoError(t, err)
	assert.Equal(t, primality.Composite, v.Classification())
	assert.NotNil(t, v.Witness())
}

func TestTestRejectsBadInput(t *testing.T) {
	t.Parallel()
	_, err := primality.Test(nil, nil)
	assert.ErrorIs(t, err, primality.ErrInvalidInput)

	badCfg, err := primality.NewConfig(1000, 0)
	assert.Error(t, err)
	_, err = primality.Test(big.NewNat(5), badCfg)
	assert.ErrorIs(t, err, primality.ErrInvalidInput)
}

func TestTestParsed(t *testing.T) {
	t.Parallel()
	v, err := primality.TestParsed("0x1f", nil)
	assert.NoError(t, err)
	assert.Equal(t, primality.Prime, v.Classification())

	v, err = primality.TestParsed("7919", nil)
	assert.NoError(t, err)
	assert.True(t, v.IsPrime())

	for _, s := range []string{"-5", "twelve", ""} {
		_, err := primality.TestParsed(s, nil)
		assert.ErrorIsf(t, err, primality.ErrInvalidInput, "input %q", s)
	}
}
