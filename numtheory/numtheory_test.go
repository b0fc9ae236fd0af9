package numtheory

// Copyright (c) 2025 Colin McRae

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	testCases := []struct {
		a, m, expected int64
	}{
		{0, 5, 5},
		{5, 0, 5},
		{12, 18, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{-1, 11, 1},
		{7, 1, 1},
		{0, 1, 1},
	}
	for _, tc := range testCases {
		actual := GCD(big.NewInt(tc.a), big.NewInt(tc.m))
		require.Equalf(t, tc.expected, actual.Int64(), "gcd(%d, %d)", tc.a, tc.m)
	}
}

func TestMod(t *testing.T) {
	require.Equal(t, int64(4), Mod(big.NewInt(-7), big.NewInt(11)).Int64())
	require.Equal(t, int64(0), Mod(big.NewInt(-55), big.NewInt(11)).Int64())
	require.Equal(t, int64(3), Mod(big.NewInt(3), big.NewInt(5)).Int64())
	require.Equal(t, int64(0), Mod(big.NewInt(12345), big.NewInt(1)).Int64())
}

func TestEGCD(t *testing.T) {
	const (
		maxEntry = 1000
		numTests = 1000
	)

	// Base case
	g, s, tt := EGCD(big.NewInt(0), big.NewInt(17))
	require.Equal(t, int64(17), g.Int64())
	require.Equal(t, int64(0), s.Int64())
	require.Equal(t, int64(1), tt.Int64())

	// One step of the recursion: egcd(3, 7) -> egcd(1, 3) -> egcd(0, 1)
	g, s, tt = EGCD(big.NewInt(3), big.NewInt(7))
	require.Equal(t, int64(1), g.Int64())
	require.Equal(t, int64(-2), s.Int64())
	require.Equal(t, int64(1), tt.Int64())

	rng := rand.New(rand.NewSource(2718))
	for testNbr := 0; testNbr < numTests; testNbr++ {
		a := big.NewInt(rng.Int63n(maxEntry))
		m := big.NewInt(rng.Int63n(maxEntry) + 1)
		g, s, tt = EGCD(a, m)
		requireBezout(t, a, m, g, s, tt)
	}
}

func TestEGCD_Large(t *testing.T) {
	// 2^127 - 1 and 2^89 - 1 are Mersenne primes
	one := big.NewInt(1)
	p := new(big.Int).Sub(new(big.Int).Lsh(one, 127), one)
	q := new(big.Int).Sub(new(big.Int).Lsh(one, 89), one)
	g, s, tt := EGCD(q, p)
	require.Equal(t, 0, g.Cmp(one))
	requireBezout(t, q, p, g, s, tt)

	// A common factor survives
	a := new(big.Int).Mul(p, big.NewInt(6))
	m := new(big.Int).Mul(p, big.NewInt(10))
	g, s, tt = EGCD(a, m)
	require.Equal(t, 0, g.Cmp(new(big.Int).Mul(p, big.NewInt(2))))
	requireBezout(t, a, m, g, s, tt)
}

func TestModInv(t *testing.T) {
	const (
		maxModulus = 500
		numTests   = 1000
	)

	rng := rand.New(rand.NewSource(31415))
	invertibleCount, notInvertibleCount := 0, 0
	for testNbr := 0; testNbr < numTests; testNbr++ {
		a := big.NewInt(rng.Int63n(4*maxModulus) - 2*maxModulus)
		m := big.NewInt(rng.Int63n(maxModulus) + 1)
		actual, err := ModInv(a, m)
		if GCD(a, m).Cmp(big.NewInt(1)) != 0 {
			notInvertibleCount++
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInverseNotFound))
			require.Nil(t, actual)
			continue
		}
		invertibleCount++
		require.NoError(t, err)
		require.GreaterOrEqual(t, actual.Sign(), 0)
		require.Equal(t, -1, actual.Cmp(m))
		product := new(big.Int).Mul(a, actual)
		require.Equal(t, Mod(big.NewInt(1), m).Int64(), Mod(product, m).Int64())

		// Agrees with the standard library when m > 1
		if m.Cmp(big.NewInt(1)) > 0 {
			expected := new(big.Int).ModInverse(Mod(a, m), m)
			require.Equal(t, 0, expected.Cmp(actual))
		}
	}
	t.Logf("invertible: %d, not invertible: %d\n", invertibleCount, notInvertibleCount)
}

func TestModInv_NotFound(t *testing.T) {
	actual, err := ModInv(big.NewInt(4), big.NewInt(8))
	require.Nil(t, actual)
	require.True(t, errors.Is(err, ErrInverseNotFound))
	var notFound *InverseNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, int64(4), notFound.A.Int64())
	require.Equal(t, int64(8), notFound.M.Int64())
	require.Equal(t, int64(4), notFound.GCD.Int64())
	require.Contains(t, err.Error(), "gcd(4, 8) = 4")
}

func TestModInv_Modulus(t *testing.T) {
	// Everything is invertible modulo 1, and the inverse is 0
	actual, err := ModInv(big.NewInt(7), big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, int64(0), actual.Int64())

	_, err = ModInv(big.NewInt(7), big.NewInt(0))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInverseNotFound))
	_, err = ModInv(big.NewInt(7), big.NewInt(-5))
	require.Error(t, err)
}

func TestModInv_DoesNotMutate(t *testing.T) {
	a, m := big.NewInt(-7), big.NewInt(11)
	actual, err := ModInv(a, m)
	require.NoError(t, err)
	require.Equal(t, int64(3), actual.Int64())
	require.Equal(t, int64(-7), a.Int64())
	require.Equal(t, int64(11), m.Int64())
}

func requireBezout(t *testing.T, a, m, g, s, tt *big.Int) {
	t.Helper()
	require.Equal(t, 0, g.Cmp(GCD(a, m)))
	lhs := new(big.Int).Mul(a, s)
	lhs.Add(lhs, new(big.Int).Mul(m, tt))
	require.Equalf(t, 0, lhs.Cmp(g), "%s*%s + %s*%s != %s", a, s, m, tt, g)
}
