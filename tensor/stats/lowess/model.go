// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"context"
	"fmt"
	"math"

	"cogentcore.org/lowess/base/errors"
)

// Estimate is the smoothed value at one query point.
type Estimate struct {
	// X is the query point.
	X float64

	// Y is the smoothed value at X.
	Y float64

	// SE is the standard error of Y, or NaN if not computed.
	SE float64

	// Low and High are the limits of the confidence band at
	// [Params.Level], or NaN if not computed.
	Low, High float64

	// Err is a [*PointError] if the local fit failed and Y is the
	// weighted mean of the neighborhood, otherwise nil.
	Err error
}

// Result is the output of smoothing at a sequence of query points.
type Result struct {
	// Estimates in the order of the query points. Points skipped
	// under the [Skip] policy are omitted.
	Estimates []Estimate

	// Stats are the statistics of the fitted model.
	Stats Statistics
}

// XYs returns the X and Y values of the estimates.
func (rs *Result) XYs() (x, y []float64) {
	x = make([]float64, len(rs.Estimates))
	y = make([]float64, len(rs.Estimates))
	for i, e := range rs.Estimates {
		x[i], y[i] = e.X, e.Y
	}
	return
}

// Failed returns the estimates that have a point error.
func (rs *Result) Failed() []Estimate {
	var fl []Estimate
	for _, e := range rs.Estimates {
		if e.Err != nil {
			fl = append(fl, e)
		}
	}
	return fl
}

// Model is a fitted local regression smoother. It is immutable
// and safe for concurrent use.
type Model struct {
	// Params used for the fit.
	Params Params

	obs    *sorted
	nInput int
	k      int

	// robust are the robustness weights in sorted order, nil for Gaussian.
	robust []float64

	// fitted values and fit failures at the sorted observations.
	fitted []float64
	failed []bool

	stats Statistics

	// tq is the t quantile for the band.
	tq float64
}

// Fit returns a [Model] fit to the given observations. Observations with
// a NaN X or Y are excluded. Local fits at the observations follow
// [Params.OnFailure]: under [Fail] the first failure is returned as the error.
func Fit(ctx context.Context, obs []Observation, p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	so, err := sortObservations(obs)
	if err != nil {
		return nil, err
	}
	n := len(so.x)
	if p.Count > n {
		return nil, fmt.Errorf("%w: Count %d exceeds the %d observations", ErrParams, p.Count, n)
	}
	md := &Model{Params: p, obs: so, nInput: len(obs), k: p.NeighborCount(n)}
	md.stats.N = n
	md.stats.K = md.k

	iters := 1
	if p.Family == Symmetric {
		iters = p.Iterations
	}
	var fits []localFit
	for it := range iters {
		fits, err = md.fitObservations(ctx)
		if err != nil {
			return nil, err
		}
		if it == iters-1 {
			break
		}
		res := make([]float64, n)
		for i := range fits {
			res[i] = so.y[i] - fits[i].y
		}
		rw, ok := robustnessWeights(res)
		if !ok {
			break
		}
		md.robust = rw
		md.stats.RobustIterations++
	}
	md.fitted = make([]float64, n)
	md.failed = make([]bool, n)
	for i := range fits {
		md.fitted[i] = fits[i].y
		if fits[i].err != nil {
			md.failed[i] = true
			md.stats.Failures++
		}
	}
	if p.SE {
		md.computeStats(fits)
	}
	return md, nil
}

// fitObservations fits at each of the sorted observations with the current
// robustness weights.
func (md *Model) fitObservations(ctx context.Context) ([]localFit, error) {
	so := md.obs
	fits := make([]localFit, len(so.x))
	local := md.Params.SE && md.Params.SEMethod == Local
	err := parallel(ctx, len(so.x), md.Params.Threads, func(i int) error {
		fits[i] = fitAt(so.x, so.y, so.x[i], md.k, md.Params.Degree, md.robust, local)
		if fits[i].err != nil && md.Params.OnFailure == Fail {
			return &PointError{X: so.x[i], Err: fits[i].err}
		}
		return nil
	})
	return fits, err
}

// exactFitTol is the largest RSS, relative to the sum of squares
// of Y, for which the fit is treated as exact.
const exactFitTol = 1.0e-20

// computeStats computes the operator traces, residual standard
// error and degrees of freedom from the fits at the observations.
func (md *Model) computeStats(fits []localFit) {
	n := len(fits)
	ot := newOperatorTraces(n, n <= md.Params.MaxExactN)
	rss, ss := 0.0, 0.0
	for i := range fits {
		ot.setRow(i, &fits[i])
		ot.add(i, &fits[i])
		r := md.obs.y[i] - fits[i].y
		rss += r * r
		ss += md.obs.y[i] * md.obs.y[i]
	}
	st := &md.stats
	st.EquivalentParams = ot.trace
	st.Delta1, st.Delta2 = ot.deltas()
	st.ResidualSE = math.NaN()
	st.DF = math.NaN()
	switch {
	case rss <= exactFitTol*ss:
		// an exact fit, including L = I where Delta1 is 0
		st.ResidualSE = 0
	case st.Delta1 > 0:
		st.ResidualSE = math.Sqrt(rss / st.Delta1)
	}
	if st.Delta2 > 0 {
		st.DF = st.Delta1 * st.Delta1 / st.Delta2
	}
	md.tq = tQuantile(md.Params.Level, st.DF)
}

// Stats returns the statistics of the fit.
func (md *Model) Stats() Statistics {
	return md.stats
}

// Fitted returns the fitted values at the observations, in the
// original input order. Excluded observations are NaN, as are
// failed fits under the [Skip] policy.
func (md *Model) Fitted() []float64 {
	out := make([]float64, md.nInput)
	for i := range out {
		out[i] = math.NaN()
	}
	for j, i := range md.obs.index {
		if md.failed[j] && md.Params.OnFailure == Skip {
			continue
		}
		out[i] = md.fitted[j]
	}
	return out
}

// Residuals returns Y minus the fitted values, in the original input order,
// with NaN where [Model.Fitted] is NaN.
func (md *Model) Residuals() []float64 {
	out := md.Fitted()
	for j, i := range md.obs.index {
		out[i] = md.obs.y[j] - out[i]
	}
	return out
}

// XRange returns the smallest and largest X of the valid observations.
func (md *Model) XRange() (lo, hi float64) {
	return md.obs.x[0], md.obs.x[len(md.obs.x)-1]
}

// Predict returns the smoothed values at the given query points, in the
// same order. Failed points follow [Params.OnFailure].
// The context is checked between points, and the whole batch is
// abandoned with the context error if it is done.
func (md *Model) Predict(ctx context.Context, xs []float64) (Result, error) {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Result{}, fmt.Errorf("%w: query point %g", ErrInfinity, x)
		}
	}
	p := &md.Params
	local := p.SE && p.SEMethod == Local
	ests := make([]Estimate, len(xs))
	skip := make([]bool, len(xs))
	so := md.obs
	err := parallel(ctx, len(xs), p.Threads, func(i int) error {
		lf := fitAt(so.x, so.y, xs[i], md.k, p.Degree, md.robust, local)
		est := Estimate{X: xs[i], Y: lf.y, SE: math.NaN(), Low: math.NaN(), High: math.NaN()}
		if lf.err != nil {
			perr := &PointError{X: xs[i], Err: lf.err}
			switch p.OnFailure {
			case Fail:
				return perr
			case Skip:
				skip[i] = true
				return nil
			}
			est.Err = perr
		}
		if p.SE {
			sigma := md.stats.ResidualSE
			if local {
				sigma = math.Sqrt(lf.variance)
			}
			est.SE = sigma * lf.norm()
			if est.SE == 0 {
				est.Low, est.High = est.Y, est.Y
			} else {
				est.Low = est.Y - md.tq*est.SE
				est.High = est.Y + md.tq*est.SE
			}
		}
		ests[i] = est
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	rs := Result{Estimates: make([]Estimate, 0, len(xs)), Stats: md.stats}
	for i := range ests {
		if !skip[i] {
			rs.Estimates = append(rs.Estimates, ests[i])
		}
	}
	return rs, nil
}

// Smooth fits the observations and returns the smoothed values at each
// distinct X of the valid observations, in order of first appearance.
func Smooth(ctx context.Context, obs []Observation, p Params) (Result, error) {
	md, err := Fit(ctx, obs, p)
	if err != nil {
		return Result{}, err
	}
	return md.Predict(ctx, distinctX(obs))
}

// SmoothGrid fits the observations and returns the smoothed values at
// n evenly spaced points spanning the X range of the valid observations.
func SmoothGrid(ctx context.Context, obs []Observation, p Params, n int) (Result, error) {
	if n < 1 {
		return Result{}, fmt.Errorf("%w: grid size %d must be at least 1", ErrParams, n)
	}
	md, err := Fit(ctx, obs, p)
	if err != nil {
		return Result{}, err
	}
	lo, hi := md.XRange()
	return md.Predict(ctx, Grid(lo, hi, n))
}

// Grid returns n evenly spaced values from lo to hi inclusive.
// A single value grid is just lo.
func Grid(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	g := make([]float64, n)
	if n == 1 {
		g[0] = lo
		return g
	}
	step := (hi - lo) / float64(n-1)
	for i := range g {
		g[i] = lo + float64(i)*step
	}
	g[n-1] = hi
	return g
}

// IsPointError returns true if err is a failure of a single local fit,
// rather than an invalid input or a cancellation.
func IsPointError(err error) bool {
	var pe *PointError
	return errors.As(err, &pe)
}
