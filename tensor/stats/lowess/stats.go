// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Statistics are the summary statistics of a fitted [Model].
type Statistics struct {

	// N is the number of valid observations used in the fit.
	N int

	// K is the number of observations in each local neighborhood.
	K int

	// EquivalentParams is the trace of the smoothing operator L,
	// the equivalent number of parameters of the fit.
	EquivalentParams float64

	// Delta1 is trace((I-L)^T (I-L)), the equivalent residual
	// degrees of freedom.
	Delta1 float64

	// Delta2 is trace(((I-L)^T (I-L))^2). It equals Delta1 when
	// N is above [Params.MaxExactN].
	Delta2 float64

	// ResidualSE is the residual standard error, sqrt(RSS / Delta1).
	// It is 0 for an exact fit, where RSS vanishes relative to the
	// sum of squares of Y, and NaN when Delta1 is not positive.
	ResidualSE float64

	// DF is the look-up degrees of freedom Delta1^2 / Delta2 of the
	// t distribution used for the confidence band.
	DF float64

	// RobustIterations is the number of robustness reweightings
	// performed for the Symmetric family.
	RobustIterations int

	// Failures is the number of observations whose local fit failed
	// and used the weighted mean instead.
	Failures int
}

// operatorTraces accumulates the traces of the smoothing operator from
// its rows, and optionally the dense operator itself.
type operatorTraces struct {
	n      int
	trace  float64
	trace2 float64
	dense  []float64
}

func newOperatorTraces(n int, exact bool) *operatorTraces {
	ot := &operatorTraces{n: n}
	if exact {
		ot.dense = make([]float64, n*n)
	}
	return ot
}

// setRow records row i of the operator. Rows must be set from one goroutine
// or for distinct i; trace sums are added by the caller afterwards.
func (ot *operatorTraces) setRow(i int, lf *localFit) {
	if ot.dense == nil {
		return
	}
	copy(ot.dense[i*ot.n+lf.lo:i*ot.n+lf.hi], lf.row)
}

// add adds the trace contributions of row i.
func (ot *operatorTraces) add(i int, lf *localFit) {
	if i >= lf.lo && i < lf.hi {
		ot.trace += lf.row[i-lf.lo]
	}
	for _, r := range lf.row {
		ot.trace2 += r * r
	}
}

// deltas returns delta1 and delta2. delta2 is computed from the
// dense operator if present, and otherwise approximated by delta1.
func (ot *operatorTraces) deltas() (delta1, delta2 float64) {
	delta1 = float64(ot.n) - 2*ot.trace + ot.trace2
	if ot.dense == nil {
		return delta1, delta1
	}
	m := mat.NewDense(ot.n, ot.n, ot.dense)
	m.Scale(-1, m)
	for i := range ot.n {
		m.Set(i, i, 1+m.At(i, i))
	}
	var b mat.Dense
	b.Mul(m.T(), m)
	f := mat.Norm(&b, 2)
	return delta1, f * f
}

// tQuantile returns the two-sided t quantile for the confidence level
// with df degrees of freedom, or NaN if df is not positive.
func tQuantile(level, df float64) float64 {
	if !(df > 0) || math.IsInf(df, 0) {
		return math.NaN()
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return t.Quantile(0.5 + level/2)
}
