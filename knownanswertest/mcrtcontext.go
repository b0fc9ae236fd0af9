package knownanswertest

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"
	"math/rand"
	"time"

	pslqutil "github.com/predrag3141/PSLQ/util"

	"github.com/predrag3141/MCRT/mcrtops"
	"github.com/predrag3141/MCRT/util"
)

// Moduli are drawn from these primes, so the running product of the moduli
// seen so far is always coprime to the next one.
var primeModuli = []int64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// MCRTContext holds a randomly generated system a x = b (mod m) with a known
// solution, and the outcome of solving it.
type MCRTContext struct {
	Seed          int64     `json:"seed"`
	Dim           int       `json:"dim"`
	A             [][]int64 `json:"a"`
	B             []int64   `json:"b"`
	M             []int64   `json:"m"`
	KnownSolution []int64   `json:"knownSolution"`
	Pivots        []int     `json:"pivots"`
	Solution      []string  `json:"solution,omitempty"` // decimal strings; entries can exceed int64
	Solved        bool      `json:"solved"`
	Verified      bool      `json:"verified"`
	Error         string    `json:"error,omitempty"`
	ElapsedNanos  int64     `json:"elapsedNanos"`
}

// NewMCRTContext generates a dim x dim system that Solve can solve. Coefficients
// are in [-maxCoefficient, maxCoefficient] and the known solution's entries are
// in [-maxSolutionEntry, maxSolutionEntry]. The same seed gives the same system.
func NewMCRTContext(dim, maxCoefficient, maxSolutionEntry int, seed int64) (*MCRTContext, error) {
	caller := "NewMCRTContext"
	if (dim < 1) || (len(primeModuli) < dim) {
		return nil, fmt.Errorf("%s: dimension %d is not in [1, %d]", caller, dim, len(primeModuli))
	}
	if (maxCoefficient < 1) || (maxSolutionEntry < 0) {
		return nil, fmt.Errorf(
			"%s: invalid ranges maxCoefficient = %d, maxSolutionEntry = %d",
			caller, maxCoefficient, maxSolutionEntry,
		)
	}
	rng := rand.New(rand.NewSource(seed))
	retVal := &MCRTContext{
		Seed:          seed,
		Dim:           dim,
		A:             make([][]int64, dim),
		M:             make([]int64, dim),
		KnownSolution: make([]int64, dim),
	}

	// Moduli
	perm := rng.Perm(len(primeModuli))
	for i := 0; i < dim; i++ {
		retVal.M[i] = primeModuli[perm[i]]
	}

	// Coefficients. A row that is all multiples of its modulus gets a 1 somewhere.
	for i := 0; i < dim; i++ {
		retVal.A[i] = make([]int64, dim)
		hasPivot := false
		for j := 0; j < dim; j++ {
			retVal.A[i][j] = int64(rng.Intn(2*maxCoefficient+1) - maxCoefficient)
			if retVal.A[i][j]%retVal.M[i] != 0 {
				hasPivot = true
			}
		}
		if !hasPivot {
			retVal.A[i][rng.Intn(dim)] = 1
		}
	}

	// Known solution and b = A times the known solution
	for j := 0; j < dim; j++ {
		retVal.KnownSolution[j] = int64(rng.Intn(2*maxSolutionEntry+1) - maxSolutionEntry)
	}
	flatA, err := util.Flatten(retVal.A)
	if err != nil {
		return nil, fmt.Errorf("%s: could not flatten A: %q", caller, err.Error())
	}
	retVal.B, err = pslqutil.MultiplyIntInt(flatA, retVal.KnownSolution, dim)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: could not multiply A by the known solution: %q", caller, err.Error(),
		)
	}
	return retVal, nil
}

// Run solves the system and records the result
func (mc *MCRTContext) Run() error {
	a, b, m := util.BigMatrix(mc.A), util.BigVector(mc.B), util.BigVector(mc.M)
	mc.Pivots = mcrtops.Pivot(a, m)
	start := time.Now()
	x, err := mcrtops.Solve(a, b, m)
	mc.ElapsedNanos = time.Since(start).Nanoseconds()
	if err != nil {
		mc.Solved, mc.Verified, mc.Solution = false, false, nil
		mc.Error = err.Error()
		return fmt.Errorf("Run: could not solve a system of dimension %d: %w", mc.Dim, err)
	}
	mc.Solved, mc.Error = true, ""
	mc.Solution = make([]string, len(x))
	for i := 0; i < len(x); i++ {
		mc.Solution[i] = x[i].String()
	}
	mc.Verified = mcrtops.IsSol(a, x, b, m)
	if !mc.Verified {
		return fmt.Errorf("Run: solution %v does not satisfy the system", mc.Solution)
	}
	return nil
}

// SolutionAsBigInt parses the recorded solution
func (mc *MCRTContext) SolutionAsBigInt() ([]*big.Int, error) {
	retVal := make([]*big.Int, len(mc.Solution))
	for i := 0; i < len(mc.Solution); i++ {
		var ok bool
		retVal[i], ok = new(big.Int).SetString(mc.Solution[i], 10)
		if !ok {
			return nil, fmt.Errorf("SolutionAsBigInt: entry %d = %q is not an integer", i, mc.Solution[i])
		}
	}
	return retVal, nil
}
