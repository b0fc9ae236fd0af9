package knownanswertest

// Copyright (c) 2025 Colin McRae

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/predrag3141/MCRT/mcrtops"
	"github.com/predrag3141/MCRT/numtheory"
)

// Expected error kinds in a Vector
const (
	expectInverseNotFound    = "inverse_not_found"
	expectNoPivot            = "no_pivot"
	expectDimensionMismatch  = "dimension_mismatch"
	expectNonPositiveModulus = "non_positive_modulus"
)

var expectedErrors = map[string]error{
	expectInverseNotFound:    numtheory.ErrInverseNotFound,
	expectNoPivot:            mcrtops.ErrNoPivotAvailable,
	expectDimensionMismatch:  mcrtops.ErrDimensionMismatch,
	expectNonPositiveModulus: mcrtops.ErrNonPositiveModulus,
}

// Vector is a known-answer test case. Integers are decimal strings so that
// they are not limited to 64 bits. If X is empty and Error is empty, the case
// only requires that the solution satisfies the system.
type Vector struct {
	Name  string     `yaml:"name"`
	A     [][]string `yaml:"a"`
	B     []string   `yaml:"b"`
	M     []string   `yaml:"m"`
	X     []string   `yaml:"x,omitempty"`
	Error string     `yaml:"error,omitempty"`
}

type vectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

// LoadVectors reads known-answer vectors from a YAML file with a top-level
// "vectors" list.
func LoadVectors(path string) ([]Vector, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadVectors: could not read %s: %q", path, err.Error())
	}
	var vf vectorFile
	err = yaml.Unmarshal(contents, &vf)
	if err != nil {
		return nil, fmt.Errorf("LoadVectors: could not parse %s: %q", path, err.Error())
	}
	for i := 0; i < len(vf.Vectors); i++ {
		if vf.Vectors[i].Error == "" {
			continue
		}
		if _, ok := expectedErrors[vf.Vectors[i].Error]; !ok {
			return nil, fmt.Errorf(
				"LoadVectors: vector %q expects unknown error %q", vf.Vectors[i].Name, vf.Vectors[i].Error,
			)
		}
	}
	return vf.Vectors, nil
}

// Check solves the vector's system and compares the outcome with the expected
// solution or error.
func (v Vector) Check() error {
	caller := fmt.Sprintf("Check(%s)", v.Name)
	a := make([][]*big.Int, len(v.A))
	for i := 0; i < len(v.A); i++ {
		var err error
		a[i], err = parseBigVector(v.A[i], caller)
		if err != nil {
			return err
		}
	}
	b, err := parseBigVector(v.B, caller)
	if err != nil {
		return err
	}
	var m []*big.Int
	m, err = parseBigVector(v.M, caller)
	if err != nil {
		return err
	}

	// Failure cases
	x, err := mcrtops.Solve(a, b, m)
	if v.Error != "" {
		if err == nil {
			return fmt.Errorf("%s: expected error %q but got solution %v", caller, v.Error, x)
		}
		if !errors.Is(err, expectedErrors[v.Error]) {
			return fmt.Errorf("%s: expected error %q but got %q", caller, v.Error, err.Error())
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: unexpected error: %w", caller, err)
	}

	// Success cases
	if !mcrtops.IsSol(a, x, b, m) {
		return fmt.Errorf("%s: solution %v does not satisfy the system", caller, x)
	}
	if len(v.X) == 0 {
		return nil
	}
	var expected []*big.Int
	expected, err = parseBigVector(v.X, caller)
	if err != nil {
		return err
	}
	if len(expected) != len(x) {
		return fmt.Errorf("%s: expected %d entries but got %d", caller, len(expected), len(x))
	}
	for i := 0; i < len(x); i++ {
		if expected[i].Cmp(x[i]) != 0 {
			return fmt.Errorf("%s: x[%d] = %s but expected %s", caller, i, x[i].String(), expected[i].String())
		}
	}
	return nil
}

func parseBigVector(input []string, caller string) ([]*big.Int, error) {
	retVal := make([]*big.Int, len(input))
	for i := 0; i < len(input); i++ {
		var ok bool
		retVal[i], ok = new(big.Int).SetString(input[i], 10)
		if !ok {
			return nil, fmt.Errorf("%s-parseBigVector: %q is not an integer", caller, input[i])
		}
	}
	return retVal, nil
}
