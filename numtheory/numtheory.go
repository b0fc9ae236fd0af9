package numtheory

// Copyright (c) 2025 Colin McRae

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInverseNotFound is matched by every InverseNotFoundError
var ErrInverseNotFound = errors.New("modular inverse does not exist")

// InverseNotFoundError reports that A has no inverse modulo M because
// gcd(A, M) = GCD is not 1.
type InverseNotFoundError struct {
	A   *big.Int
	M   *big.Int
	GCD *big.Int
}

func (e *InverseNotFoundError) Error() string {
	return fmt.Sprintf(
		"%s: gcd(%s, %s) = %s", ErrInverseNotFound.Error(), e.A.String(), e.M.String(), e.GCD.String(),
	)
}

func (e *InverseNotFoundError) Is(target error) bool {
	return target == ErrInverseNotFound
}

// GCD returns the non-negative greatest common divisor of a and m. Either
// argument may be negative or zero, and gcd(0, m) = |m|.
func GCD(a, m *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, m)
}

// Mod returns the residue of a modulo m in [0, m). m must be positive.
func Mod(a, m *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, which is floor modulo when m > 0
	return new(big.Int).Mod(a, m)
}

// EGCD returns g = gcd(a, m) along with Bezout coefficients s and t such that
//
//	a*s + m*t == g
//
// a must be non-negative. When a is 0 the result is (m, 0, 1). Otherwise EGCD
// recurses on (m mod a, a), which bounds the recursion depth by O(log a).
func EGCD(a, m *big.Int) (g, s, t *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(m), big.NewInt(0), big.NewInt(1)
	}

	// With a > 0, Euclidean division of m by a is floor division
	q, r := new(big.Int).DivMod(m, a, new(big.Int))
	g, sR, tR := EGCD(r, a)

	// r*sR + a*tR = g and r = m - q*a, so a*(tR - q*sR) + m*sR = g
	s = new(big.Int).Mul(q, sR)
	s.Sub(tR, s)
	return g, s, sR
}

// ModInv returns x in [0, m) with a*x = 1 (mod m). a may be any integer; it is
// reduced modulo m first. If gcd(a, m) != 1 the error is an *InverseNotFoundError.
func ModInv(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("ModInv: modulus %s is not positive", m.String())
	}
	aModM := Mod(a, m)
	g, s, _ := EGCD(aModM, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, &InverseNotFoundError{
			A:   new(big.Int).Set(a),
			M:   new(big.Int).Set(m),
			GCD: g,
		}
	}
	return Mod(s, m), nil
}
