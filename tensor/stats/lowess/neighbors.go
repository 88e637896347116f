// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"math"
	"sort"
)

// Neighborhood returns the half-open index range [lo, hi) of the k values
// in the ascending sorted xs that are nearest to x0, and the largest
// distance from x0 within that range. Equal X values are distinct
// observations. When distances tie, the lower index is taken first.
// If all k values equal x0 (dmax is 0), the range is extended to every
// value equal to x0, so that the result does not depend on input order.
func Neighborhood(xs []float64, x0 float64, k int) (lo, hi int, dmax float64) {
	n := len(xs)
	k = min(k, n)
	if k <= 0 {
		return 0, 0, 0
	}
	lo = sort.SearchFloat64s(xs, x0)
	hi = lo
	for hi-lo < k {
		switch {
		case lo == 0:
			hi++
		case hi == n:
			lo--
		case x0-xs[lo-1] <= xs[hi]-x0:
			lo--
		default:
			hi++
		}
	}
	dmax = math.Max(math.Abs(x0-xs[lo]), math.Abs(xs[hi-1]-x0))
	if dmax == 0 {
		for lo > 0 && xs[lo-1] == x0 {
			lo--
		}
		for hi < n && xs[hi] == x0 {
			hi++
		}
	}
	return
}
