package mcrtops

// Copyright (c) 2025 Colin McRae

import (
	"math/big"

	"github.com/predrag3141/MCRT/numtheory"
)

// NoPivot marks a row in which no coefficient is coprime to the row's modulus
const NoPivot = -1

// Pivot returns, for each row i of a, the column that row i solves for: the
// highest-indexed column j with gcd(a[i][j], m[i]) = 1, or NoPivot if there is
// none. Rows without a modulus in m, or with a nil modulus, get NoPivot. Nil
// coefficients are never chosen.
func Pivot(a [][]*big.Int, m []*big.Int) []int {
	one := big.NewInt(1)
	retVal := make([]int, len(a))
	for i := 0; i < len(a); i++ {
		retVal[i] = NoPivot
		if (len(m) <= i) || (m[i] == nil) {
			continue
		}
		for j := 0; j < len(a[i]); j++ {
			if a[i][j] == nil {
				continue
			}

			// Later columns overwrite earlier ones
			if numtheory.GCD(a[i][j], m[i]).Cmp(one) == 0 {
				retVal[i] = j
			}
		}
	}
	return retVal
}
