package util

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// BigVector converts a vector of machine integers to a vector of big integers
func BigVector[T constraints.Integer](input []T) []*big.Int {
	retVal := make([]*big.Int, len(input))
	for i := 0; i < len(input); i++ {
		retVal[i] = bigFromInteger(input[i])
	}
	return retVal
}

// BigMatrix converts a matrix of machine integers to a matrix of big integers.
// Rows need not have the same length.
func BigMatrix[T constraints.Integer](input [][]T) [][]*big.Int {
	retVal := make([][]*big.Int, len(input))
	for i := 0; i < len(input); i++ {
		retVal[i] = BigVector(input[i])
	}
	return retVal
}

// Int64Vector converts a vector of big integers to int64, returning an error
// if any entry is nil or does not fit.
func Int64Vector(input []*big.Int) ([]int64, error) {
	retVal := make([]int64, len(input))
	for i := 0; i < len(input); i++ {
		if input[i] == nil {
			return []int64{}, fmt.Errorf("Int64Vector: entry %d is nil", i)
		}
		if !input[i].IsInt64() {
			return []int64{}, fmt.Errorf(
				"Int64Vector: entry %d = %s does not fit in an int64", i, input[i].String(),
			)
		}
		retVal[i] = input[i].Int64()
	}
	return retVal, nil
}

// Flatten returns the entries of a rectangular matrix in row-major order, the
// layout expected by the PSLQ util matrix routines.
func Flatten(input [][]int64) ([]int64, error) {
	if len(input) == 0 {
		return []int64{}, nil
	}
	numCols := len(input[0])
	retVal := make([]int64, 0, len(input)*numCols)
	for i := 0; i < len(input); i++ {
		if len(input[i]) != numCols {
			return []int64{}, fmt.Errorf(
				"Flatten: row %d has %d entries but row 0 has %d", i, len(input[i]), numCols,
			)
		}
		retVal = append(retVal, input[i]...)
	}
	return retVal, nil
}

// DotProduct returns the sum of row[k] * x[k]. row and x must have the same length.
func DotProduct(row, x []*big.Int) *big.Int {
	retVal := big.NewInt(0)
	term := new(big.Int)
	for k := 0; k < len(row); k++ {
		retVal.Add(retVal, term.Mul(row[k], x[k]))
	}
	return retVal
}

// bigFromInteger converts any machine integer without overflowing through int64
func bigFromInteger[T constraints.Integer](input T) *big.Int {
	if input < 0 {
		return big.NewInt(int64(input))
	}
	return new(big.Int).SetUint64(uint64(input))
}
