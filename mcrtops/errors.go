package mcrtops

// Copyright (c) 2025 Colin McRae

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrDimensionMismatch  = errors.New("dimension mismatch")
	ErrNonPositiveModulus = errors.New("modulus is not positive")
	ErrNoPivotAvailable   = errors.New("no pivot available")
)

// NoPivotAvailableError reports a row none of whose coefficients is coprime to
// the row's modulus.
type NoPivotAvailableError struct {
	Row     int
	Modulus *big.Int
}

func (e *NoPivotAvailableError) Error() string {
	return fmt.Sprintf(
		"%s: no coefficient in row %d is coprime to %s",
		ErrNoPivotAvailable.Error(), e.Row, e.Modulus.String(),
	)
}

func (e *NoPivotAvailableError) Is(target error) bool {
	return target == ErrNoPivotAvailable
}
