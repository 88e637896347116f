// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxCondition is the largest condition number of the weighted design
// matrix that is accepted as a regular local fit.
const maxCondition = 1e12

// localFit is the result of one local regression at a query point.
type localFit struct {
	// x0 is the query point.
	x0 float64

	// y is the fitted value at x0.
	y float64

	// lo, hi is the neighborhood range in the sorted observations.
	lo, hi int

	// row is the smoothing operator row over the neighborhood:
	// y = sum(row[j] * ys[lo+j]).
	row []float64

	// variance is the weighted residual variance of the local fit,
	// only computed when requested.
	variance float64

	// err is ErrInsufficientData or ErrDegenerateFit if the polynomial
	// fit failed, in which case y and row are the weighted mean fallback.
	err error
}

// norm returns the Euclidean norm of the operator row.
func (lf *localFit) norm() float64 {
	ss := 0.0
	for _, r := range lf.row {
		ss += r * r
	}
	return math.Sqrt(ss)
}

// fitAt performs the local regression at x0 over the sorted
// observations xs, ys using k neighbors. robust are the
// robustness weights, or nil.
func fitAt(xs, ys []float64, x0 float64, k, degree int, robust []float64, variance bool) localFit {
	lo, hi, dmax := Neighborhood(xs, x0, k)
	lf := localFit{x0: x0, lo: lo, hi: hi}
	nx := xs[lo:hi]
	ny := ys[lo:hi]
	var rw []float64
	if robust != nil {
		rw = robust[lo:hi]
	}
	w := make([]float64, len(nx))
	neighborWeights(w, nx, x0, dmax, rw)

	np := degree + 1
	if len(nx) < np {
		lf.err = ErrInsufficientData
		lf.meanFallback(ny, w, variance)
		return lf
	}
	scale := dmax
	if scale == 0 {
		scale = 1
	}
	// design in units of the neighborhood size centered at x0, so that
	// the intercept is the fitted value at x0
	a := mat.NewDense(len(nx), np, nil)
	for j, x := range nx {
		sw := math.Sqrt(w[j])
		u := (x - x0) / scale
		pw := sw
		for c := range np {
			a.Set(j, c, pw)
			pw *= u
		}
	}
	var qr mat.QR
	qr.Factorize(a)
	if c := qr.Cond(); math.IsNaN(c) || c > maxCondition {
		lf.err = ErrDegenerateFit
		lf.meanFallback(ny, w, variance)
		return lf
	}
	// the operator row is sqrt(w) * t, where t is the minimum norm
	// solution of A^T t = e1.
	e1 := mat.NewVecDense(np, nil)
	e1.SetVec(0, 1)
	var t mat.VecDense
	if err := qr.SolveVecTo(&t, true, e1); err != nil {
		lf.err = ErrDegenerateFit
		lf.meanFallback(ny, w, variance)
		return lf
	}
	lf.row = make([]float64, len(nx))
	for j := range nx {
		lf.row[j] = math.Sqrt(w[j]) * t.AtVec(j)
		lf.y += lf.row[j] * ny[j]
	}
	if !variance {
		return lf
	}
	b := mat.NewVecDense(len(nx), nil)
	for j := range nx {
		b.SetVec(j, math.Sqrt(w[j])*ny[j])
	}
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, b); err != nil {
		lf.variance = math.NaN()
		return lf
	}
	res := make([]float64, len(nx))
	for j, x := range nx {
		u := (x - x0) / scale
		f, pw := 0.0, 1.0
		for c := range np {
			f += beta.AtVec(c) * pw
			pw *= u
		}
		res[j] = ny[j] - f
	}
	lf.variance = weightedVariance(res, w, np)
	return lf
}

// meanFallback sets the fitted value and operator row to those of the
// weighted mean of the neighborhood. Equal weights are used if all of
// the weights are zero.
func (lf *localFit) meanFallback(ny, w []float64, variance bool) {
	sw := 0.0
	for _, v := range w {
		sw += v
	}
	lf.row = make([]float64, len(w))
	if len(w) == 0 {
		lf.y = math.NaN()
		lf.variance = math.NaN()
		return
	}
	for j := range w {
		if sw > 0 {
			lf.row[j] = w[j] / sw
		} else {
			lf.row[j] = 1 / float64(len(w))
		}
		lf.y += lf.row[j] * ny[j]
	}
	if !variance {
		return
	}
	res := make([]float64, len(w))
	for j := range w {
		res[j] = ny[j] - lf.y
	}
	if sw > 0 {
		lf.variance = weightedVariance(res, w, 1)
	} else {
		lf.variance = weightedVariance(res, lf.row, 1)
	}
}

// weightedVariance returns the weighted mean squared residual, corrected
// for the np fitted parameters using the number of nonzero weights.
// Returns NaN if there are not more nonzero weights than parameters.
func weightedVariance(res, w []float64, np int) float64 {
	sw, swr := 0.0, 0.0
	nz := 0
	for j, r := range res {
		if w[j] <= 0 {
			continue
		}
		nz++
		sw += w[j]
		swr += w[j] * r * r
	}
	if nz <= np {
		return math.NaN()
	}
	return (swr / sw) * float64(nz) / float64(nz-np)
}
