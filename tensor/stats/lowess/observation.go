// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"fmt"
	"math"
	"sort"
)

// Observation is one (X, Y) data point. A NaN in either value marks
// the observation as missing: it is excluded from fitting.
type Observation struct {
	X, Y float64
}

// Valuer is a column of float64 values. It is satisfied by plot.Values
// and table columns.
type Valuer interface {
	Len() int
	Float1D(i int) float64
}

// Observations returns the observations paired from the given X and Y columns,
// which must have the same length.
func Observations(x, y Valuer) ([]Observation, error) {
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("lowess.Observations: X has %d values and Y has %d", x.Len(), y.Len())
	}
	obs := make([]Observation, x.Len())
	for i := range obs {
		obs[i] = Observation{X: x.Float1D(i), Y: y.Float1D(i)}
	}
	return obs, nil
}

// sorted is the valid observations in ascending order of X, with ties in
// input order, and the input index of each one.
type sorted struct {
	x, y  []float64
	index []int
}

// sortObservations drops missing observations and stable sorts the rest by X.
func sortObservations(obs []Observation) (*sorted, error) {
	idx := make([]int, 0, len(obs))
	for i, o := range obs {
		if math.IsNaN(o.X) || math.IsNaN(o.Y) {
			continue
		}
		if math.IsInf(o.X, 0) || math.IsInf(o.Y, 0) {
			return nil, fmt.Errorf("%w: observation %d is (%g, %g)", ErrInfinity, i, o.X, o.Y)
		}
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return nil, ErrNoData
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return obs[idx[a]].X < obs[idx[b]].X
	})
	so := &sorted{x: make([]float64, len(idx)), y: make([]float64, len(idx)), index: idx}
	for j, i := range idx {
		so.x[j] = obs[i].X
		so.y[j] = obs[i].Y
	}
	return so, nil
}

// distinctX returns the distinct X values of the valid observations,
// in order of first appearance in the input.
func distinctX(obs []Observation) []float64 {
	seen := make(map[float64]bool)
	var xs []float64
	for _, o := range obs {
		if math.IsNaN(o.X) || math.IsNaN(o.Y) || seen[o.X] {
			continue
		}
		seen[o.X] = true
		xs = append(xs, o.X)
	}
	return xs
}
