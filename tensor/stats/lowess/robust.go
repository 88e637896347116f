// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"math"

	"github.com/montanaflynn/stats"
)

// robustnessWeights returns the bisquare weights of the residuals scaled by
// six times their median absolute value. ok is false when the residuals
// are all (numerically) zero, in which case there is nothing to reweight.
func robustnessWeights(res []float64) (w []float64, ok bool) {
	abs := make(stats.Float64Data, len(res))
	mean := 0.0
	for i, r := range res {
		abs[i] = math.Abs(r)
		mean += abs[i]
	}
	mean /= float64(len(res))
	mad, err := stats.Median(abs)
	if err != nil || mad <= 1e-7*mean {
		return nil, false
	}
	w = make([]float64, len(res))
	for i, r := range res {
		w[i] = Bisquare(r / (6 * mad))
	}
	return w, true
}
