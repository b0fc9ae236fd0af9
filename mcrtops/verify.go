package mcrtops

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"

	"github.com/predrag3141/MCRT/util"
)

// ValidateSystem checks that a is n x n, b and m have n entries, no entry is
// nil and every modulus is at least 1. Errors wrap ErrDimensionMismatch or
// ErrNonPositiveModulus.
func ValidateSystem(a [][]*big.Int, b, m []*big.Int) error {
	return validateSystem(a, b, m, "ValidateSystem")
}

func validateSystem(a [][]*big.Int, b, m []*big.Int, caller string) error {
	caller = fmt.Sprintf("%s-validateSystem", caller)
	numRows := len(a)
	if len(b) != numRows {
		return fmt.Errorf(
			"%s: %d equations but %d targets: %w", caller, numRows, len(b), ErrDimensionMismatch,
		)
	}
	if len(m) != numRows {
		return fmt.Errorf(
			"%s: %d equations but %d moduli: %w", caller, numRows, len(m), ErrDimensionMismatch,
		)
	}
	for i := 0; i < numRows; i++ {
		if len(a[i]) != numRows {
			return fmt.Errorf(
				"%s: row %d has %d coefficients in a system of %d equations: %w",
				caller, i, len(a[i]), numRows, ErrDimensionMismatch,
			)
		}
		for j := 0; j < numRows; j++ {
			if a[i][j] == nil {
				return fmt.Errorf("%s: coefficient (%d,%d) is nil", caller, i, j)
			}
		}
		if b[i] == nil {
			return fmt.Errorf("%s: target %d is nil", caller, i)
		}
		if m[i] == nil {
			return fmt.Errorf("%s: modulus %d is nil", caller, i)
		}
		if m[i].Sign() <= 0 {
			return fmt.Errorf(
				"%s: modulus %d is %s: %w", caller, i, m[i].String(), ErrNonPositiveModulus,
			)
		}
	}
	return nil
}

// IsSol returns whether a x = b (mod m) row by row, i.e. whether m[i] divides
// a[i] . x - b[i] for every i. It returns false for malformed input.
func IsSol(a [][]*big.Int, x, b, m []*big.Int) bool {
	if validateSystem(a, b, m, "IsSol") != nil {
		return false
	}
	if len(x) != len(a) {
		return false
	}
	for k := 0; k < len(x); k++ {
		if x[k] == nil {
			return false
		}
	}
	residue := new(big.Int)
	for i := 0; i < len(a); i++ {
		residue.Sub(util.DotProduct(a[i], x), b[i])
		if residue.Mod(residue, m[i]).Sign() != 0 {
			return false
		}
	}
	return true
}
