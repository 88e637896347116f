// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import "math"

// Tricube returns the tricube weight (1 - |u|^3)^3 for |u| < 1, else 0,
// where u is the distance scaled by the neighborhood size.
func Tricube(u float64) float64 {
	u = math.Abs(u)
	if u >= 1 {
		return 0
	}
	t := 1 - u*u*u
	return t * t * t
}

// Bisquare returns the bisquare weight (1 - u^2)^2 for |u| < 1, else 0,
// used for the robustness weights of scaled residuals.
func Bisquare(u float64) float64 {
	u = math.Abs(u)
	if u >= 1 {
		return 0
	}
	t := 1 - u*u
	return t * t
}

// neighborWeights sets the tricube weights of the neighbors xs relative to
// x0 and dmax into w, multiplied by the robustness weights if non-nil.
// All distance weights are 1 when dmax is 0.
func neighborWeights(w, xs []float64, x0, dmax float64, robust []float64) {
	for j, x := range xs {
		if dmax == 0 {
			w[j] = 1
		} else {
			w[j] = Tricube((x - x0) / dmax)
		}
		if robust != nil {
			w[j] *= robust[j]
		}
	}
}
