// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	var r F64
	r.SetInfinity()
	assert.False(t, r.FitValInRange(math.NaN()))
	for _, v := range []float64{3, -1, math.NaN(), 7} {
		r.FitValInRange(v)
	}
	assert.Equal(t, F64{-1, 7}, r)
	assert.True(t, r.FitValInRange(-2))
	assert.False(t, r.FitValInRange(5))
	assert.Equal(t, F64{-2, 7}, r)
}

func TestRange64(t *testing.T) {
	var rr Range64
	mn, mx := rr.Clamp(1, 2)
	assert.Equal(t, 1.0, mn)
	assert.Equal(t, 2.0, mx)
	rr.Min, rr.FixMin = 0, true
	mn, mx = rr.Clamp(1, 2)
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 2.0, mx)
	rr.Max, rr.FixMax = 60, true
	mn, mx = rr.Clamp(1, 2)
	assert.Equal(t, 60.0, mx)
}
