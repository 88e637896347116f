// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"fmt"

	"cogentcore.org/lowess/base/errors"
)

var (
	// ErrInsufficientData is returned for a point whose neighborhood has
	// fewer observations than the polynomial degree plus one.
	ErrInsufficientData = errors.New("lowess: insufficient data for the polynomial degree")

	// ErrDegenerateFit is returned for a point whose weighted design
	// matrix is singular, for example when all neighbors with a nonzero
	// weight share the same X.
	ErrDegenerateFit = errors.New("lowess: degenerate local fit")

	// ErrNoData is returned when there are no observations with both X and Y.
	ErrNoData = errors.New("lowess: no valid observations")

	// ErrInfinity is returned for infinite observation or query values.
	ErrInfinity = errors.New("lowess: infinite value")

	// ErrParams is returned for invalid [Params].
	ErrParams = errors.New("lowess: invalid parameters")
)

// PointError is the error for one query point. It wraps
// [ErrInsufficientData] or [ErrDegenerateFit].
type PointError struct {
	// X is the query point.
	X float64

	// Err is the underlying error.
	Err error
}

func (pe *PointError) Error() string {
	return fmt.Sprintf("%s at x = %g", pe.Err.Error(), pe.X)
}

func (pe *PointError) Unwrap() error {
	return pe.Err
}
