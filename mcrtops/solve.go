package mcrtops

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/predrag3141/MCRT/numtheory"
	"github.com/predrag3141/MCRT/util"
)

// Solve returns x with a x = b (mod m), where equation i is taken modulo m[i].
//
// Equations are processed in order. Row i adds a multiple of the product of
// m[0],...,m[i-1] to x[p], p being the pivot of row i (see Pivot). That leaves
// the earlier equations unchanged modulo their own moduli, and the multiple is
// chosen so that row i holds modulo m[i]. This requires a[i][p] times the
// running product to be invertible modulo m[i].
//
// Solve fails with a *NoPivotAvailableError before doing any arithmetic if some
// row has no pivot, and with an error wrapping *numtheory.InverseNotFoundError
// if an inversion fails. No partial solution is returned. a, b and m are not
// modified.
func Solve(a [][]*big.Int, b, m []*big.Int) ([]*big.Int, error) {
	caller := "Solve"
	err := validateSystem(a, b, m, caller)
	if err != nil {
		return nil, err
	}

	// Every row needs a pivot
	numRows := len(a)
	piv := Pivot(a, m)
	for i := 0; i < numRows; i++ {
		if piv[i] == NoPivot {
			return nil, fmt.Errorf(
				"%s: %w", caller, &NoPivotAvailableError{Row: i, Modulus: new(big.Int).Set(m[i])},
			)
		}
	}

	// Build x one equation at a time
	x := make([]*big.Int, numRows)
	for k := 0; k < numRows; k++ {
		x[k] = big.NewInt(0)
	}
	mProd := big.NewInt(1)
	for i := 0; i < numRows; i++ {
		var inverse *big.Int
		tot := util.DotProduct(a[i], x)
		scaledPivot := new(big.Int).Mul(mProd, a[i][piv[i]])
		inverse, err = numtheory.ModInv(scaledPivot, m[i])
		if err != nil {
			return nil, fmt.Errorf(
				"%s: could not invert %s times the pivot in row %d (column %d): %w",
				caller, mProd.String(), i, piv[i], err,
			)
		}

		// tmp = inverse * (b[i] - tot) mod m[i], in [0, m[i])
		tmp := new(big.Int).Sub(b[i], tot)
		tmp.Mul(tmp, inverse)
		tmp = numtheory.Mod(tmp, m[i])

		x[piv[i]].Add(x[piv[i]], tmp.Mul(tmp, mProd))
		mProd.Mul(mProd, m[i])
	}
	return x, nil
}

// SolveInts is Solve for machine-integer input. The solution is returned as
// big integers since it can exceed the product of the moduli.
func SolveInts[T constraints.Integer](a [][]T, b, m []T) ([]*big.Int, error) {
	return Solve(util.BigMatrix(a), util.BigVector(b), util.BigVector(m))
}

// IsSolInts is IsSol for machine-integer input
func IsSolInts[T constraints.Integer](a [][]T, x, b, m []T) bool {
	return IsSol(util.BigMatrix(a), util.BigVector(x), util.BigVector(b), util.BigVector(m))
}
