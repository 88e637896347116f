// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"context"
	"math"
	"testing"

	"cogentcore.org/lowess/math32/minmax"
	"cogentcore.org/lowess/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadratic(n int) plot.Data {
	x := make(plot.Values, n)
	y := make(plot.Values, n)
	for i := range n {
		x[i] = float64(i)
		y[i] = 0.5*x[i]*x[i] - 3*x[i] + 2
	}
	return plot.Data{plot.X: x, plot.Y: y}
}

func TestNewSmooth(t *testing.T) {
	data := quadratic(10)
	data[plot.Y].(plot.Values)[3] = math.NaN()
	sm, err := NewSmooth(data)
	require.NoError(t, err)
	assert.Len(t, sm.X, 9)
	assert.Len(t, sm.Y, 9)
	assert.NotContains(t, sm.X, 3.0)
	assert.Equal(t, DefaultGrid, sm.Grid)
	assert.Equal(t, 0.75, sm.Params.Span)

	data[plot.X].(plot.Values)[5] = math.Inf(1)
	_, err = NewSmooth(data)
	assert.ErrorIs(t, err, plot.ErrInfinity)

	_, err = NewSmooth(plot.Data{plot.X: plot.Values{1, 2}})
	assert.ErrorIs(t, err, plot.ErrNoData)

	_, err = NewSmooth(plot.Data{plot.X: plot.Values{1, 2}, plot.Y: plot.Values{1}})
	assert.Error(t, err)
}

func TestSmoothRun(t *testing.T) {
	sm, err := NewSmooth(quadratic(30))
	require.NoError(t, err)
	sm.Grid = 10
	require.NoError(t, sm.Run(context.Background()))

	require.Len(t, sm.CurveX, 10)
	assert.Equal(t, 0.0, sm.CurveX[0])
	assert.Equal(t, 29.0, sm.CurveX[9])
	for i, x := range sm.CurveX {
		assert.InDelta(t, 0.5*x*x-3*x+2, sm.CurveY[i], 1e-6)
		assert.InDelta(t, sm.CurveY[i], sm.Low[i], 1e-6)
		assert.InDelta(t, sm.CurveY[i], sm.High[i], 1e-6)
	}

	dt := sm.Data()
	assert.Len(t, dt, 4)
	assert.Contains(t, dt, plot.Low)
	assert.Contains(t, dt, plot.High)
	assert.Len(t, sm.Points(), 2)

	sm.Grid = 0
	require.NoError(t, sm.Run(context.Background()))
	assert.Len(t, sm.CurveX, 30)
}

func TestSmoothBand(t *testing.T) {
	sm, err := NewSmooth(quadratic(20))
	require.NoError(t, err)
	sm.Styler(func(s *plot.Style) {
		s.Band.On = false
	})
	require.NoError(t, sm.Run(context.Background()))
	assert.False(t, sm.HasBand())
	assert.Len(t, sm.Data(), 2)

	sm.Styler(func(s *plot.Style) {
		s.Band.On = true
	})
	sm.Params.SE = false
	require.NoError(t, sm.Run(context.Background()))
	assert.False(t, sm.HasBand())
	assert.True(t, math.IsNaN(sm.Low[0]))
}

func TestSmoothUpdateRange(t *testing.T) {
	sm, err := NewSmooth(quadratic(11))
	require.NoError(t, err)
	require.NoError(t, sm.Run(context.Background()))

	var xr, yr minmax.F64
	xr.SetInfinity()
	yr.SetInfinity()
	sm.UpdateRange(&xr, &yr)
	assert.Equal(t, 0.0, xr.Min)
	assert.Equal(t, 10.0, xr.Max)
	assert.InDelta(t, -2.5, yr.Min, 1e-6)
	assert.InDelta(t, 22, yr.Max, 1e-6)

	sm.Style.Y.Range.Min, sm.Style.Y.Range.FixMin = -10, true
	xr.SetInfinity()
	yr.SetInfinity()
	sm.UpdateRange(&xr, &yr)
	assert.Equal(t, -10.0, yr.Min)
}

func TestSmoothRegistered(t *testing.T) {
	assert.Contains(t, plot.PlotterNames(), SmoothType)
	pl, err := plot.NewPlotter(SmoothType, quadratic(15))
	require.NoError(t, err)
	sm := pl.(*Smooth)
	assert.Len(t, sm.CurveX, DefaultGrid)
	assert.Same(t, sm.Stylers(), pl.Stylers())

	_, err = plot.NewPlotter(SmoothType, plot.Data{plot.X: plot.Values{1}})
	assert.Error(t, err)
	_, err = plot.NewPlotter("Bogus", quadratic(3))
	assert.Error(t, err)
}
