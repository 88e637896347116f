// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"fmt"
	"math"
)

// Params are the parameters for a local regression smoother.
// Call Defaults to get the standard settings, which match the
// defaults of common statistical plotting libraries.
type Params struct {

	// Span is the fraction of the observations included in each local fit.
	// Larger values give smoother curves. Must be in (0, 1].
	Span float64 `default:"0.75" min:"0" max:"1"`

	// Count is the number of observations included in each local fit.
	// If nonzero, it overrides Span, and must not exceed the number
	// of observations.
	Count int `min:"0"`

	// Degree of the local polynomial: 1 = linear, 2 = quadratic.
	Degree int `default:"2" min:"1" max:"2"`

	// Family selects least squares (Gaussian) or robust (Symmetric) fitting.
	Family Families `default:"Gaussian"`

	// Iterations is the total number of fits for the Symmetric family,
	// including the initial one. Ignored for Gaussian.
	Iterations int `default:"4" min:"1"`

	// SE determines whether standard errors and the confidence band are computed.
	SE bool `default:"true"`

	// SEMethod selects how the residual variance behind the standard
	// errors is estimated.
	SEMethod SEMethods `default:"Global"`

	// Level is the confidence level of the band.
	Level float64 `default:"0.95" min:"0" max:"1"`

	// OnFailure is the policy for points where a local fit fails.
	OnFailure Policies `default:"Mean"`

	// Threads is the number of concurrent point fits. 0 = GOMAXPROCS.
	Threads int

	// MaxExactN is the largest number of observations for which the
	// degrees of freedom are computed from the full smoothing operator.
	// Above it, a cheaper approximation is used.
	MaxExactN int `default:"1000"`
}

// NewParams returns new Params with defaults set.
func NewParams() *Params {
	p := &Params{}
	p.Defaults()
	return p
}

func (p *Params) Defaults() {
	p.Span = 0.75
	p.Count = 0
	p.Degree = 2
	p.Family = Gaussian
	p.Iterations = 4
	p.SE = true
	p.SEMethod = Global
	p.Level = 0.95
	p.OnFailure = Mean
	p.Threads = 0
	p.MaxExactN = 1000
}

// Validate returns an error wrapping [ErrParams] if any parameter
// is out of range.
func (p *Params) Validate() error {
	switch {
	case !(p.Span > 0 && p.Span <= 1):
		return fmt.Errorf("%w: Span %g must be in (0, 1]", ErrParams, p.Span)
	case p.Count < 0:
		return fmt.Errorf("%w: Count %d must not be negative", ErrParams, p.Count)
	case p.Degree < 1 || p.Degree > 2:
		return fmt.Errorf("%w: Degree %d must be 1 or 2", ErrParams, p.Degree)
	case p.Family < Gaussian || p.Family > Symmetric:
		return fmt.Errorf("%w: invalid Family %d", ErrParams, p.Family)
	case p.Family == Symmetric && p.Iterations < 1:
		return fmt.Errorf("%w: Iterations %d must be at least 1", ErrParams, p.Iterations)
	case p.SEMethod < Global || p.SEMethod > Local:
		return fmt.Errorf("%w: invalid SEMethod %d", ErrParams, p.SEMethod)
	case p.SE && !(p.Level > 0 && p.Level < 1):
		return fmt.Errorf("%w: Level %g must be in (0, 1)", ErrParams, p.Level)
	case p.OnFailure < Mean || p.OnFailure > Fail:
		return fmt.Errorf("%w: invalid OnFailure %d", ErrParams, p.OnFailure)
	case p.Threads < 0:
		return fmt.Errorf("%w: Threads %d must not be negative", ErrParams, p.Threads)
	}
	return nil
}

// NeighborCount returns the number of observations in each local
// neighborhood for n observations: Count if set, and otherwise
// ceil(Span * n), clamped to [1, n].
func (p *Params) NeighborCount(n int) int {
	if p.Count > 0 {
		return min(p.Count, n)
	}
	// the small offset keeps products like 0.6 * 5 from rounding up
	k := int(math.Ceil(p.Span*float64(n) - 1e-9))
	return min(max(k, 1), n)
}

// Families of local regression fitting.
type Families int32 //enums:enum

const (
	// Gaussian is plain weighted least squares.
	Gaussian Families = iota

	// Symmetric adds robustness iterations with bisquare
	// weights on the residuals, for heavy-tailed errors.
	Symmetric
)

// SEMethods are the ways of estimating the residual variance
// behind the standard errors.
type SEMethods int32 //enums:enum

const (
	// Global uses the residual sum of squares of the whole fit, divided by
	// the equivalent residual degrees of freedom of the smoothing operator.
	Global SEMethods = iota

	// Local uses the weighted residual variance of the local fit at each point.
	Local
)

// Policies for points where the local fit fails.
type Policies int32 //enums:enum

const (
	// Mean substitutes the weighted mean of the neighborhood, and
	// reports the failure in [Estimate.Err].
	Mean Policies = iota

	// Skip omits the point from the results.
	Skip

	// Fail aborts the whole call with the point's error.
	Fail
)
