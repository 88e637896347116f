// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides structs that hold Min and Max values.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// SetInfinity sets the Min to +Inf, Max to -Inf, suitable for
// iteratively calling FitValInRange.
func (mr *F64) SetInfinity() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range.
// NaN values are ignored. Returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	if math.IsNaN(val) {
		return false
	}
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// Range64 represents a range of values for plotting, where the min or max
// can optionally be fixed to a specific value.
type Range64 struct {
	// Min is the minimum value, used if FixMin is set.
	Min float64

	// Max is the maximum value, used if FixMax is set.
	Max float64

	// FixMin fixes the minimum end of the range.
	FixMin bool

	// FixMax fixes the maximum end of the range.
	FixMax bool
}

// Clamp returns the min, max values replaced by the fixed
// ends of the range, where set.
func (rr *Range64) Clamp(mn, mx float64) (float64, float64) {
	if rr.FixMin {
		mn = rr.Min
	}
	if rr.FixMax {
		mx = rr.Max
	}
	return mn, mx
}
