// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"context"
	"math"

	"cogentcore.org/lowess/math32/minmax"
	"cogentcore.org/lowess/plot"
	"cogentcore.org/lowess/tensor/stats/lowess"
)

// SmoothType is used for specifying the type name.
const SmoothType = "Smooth"

// DefaultGrid is the default number of points at which the curve is evaluated.
const DefaultGrid = 80

func init() {
	plot.RegisterPlotter(SmoothType, "fits a locally weighted regression (LOWESS) curve to X, Y data, with a confidence band in the Low, High roles.", []plot.Roles{plot.X, plot.Y}, []plot.Roles{}, func(data plot.Data) (plot.Plotter, error) {
		sm, err := NewSmooth(data)
		if err != nil {
			return nil, err
		}
		return sm, sm.Run(context.Background())
	})
}

// Smooth fits a locally weighted regression curve to X, Y data.
// The fitted curve is in the X, Y roles of [Smooth.Data], and the
// confidence band in the Low, High roles, ready for a renderer to draw
// the points, the line and the shaded band.
type Smooth struct {
	// X, Y are copies of the observations, without missing pairs.
	X, Y plot.Values

	// Params are the local regression parameters.
	Params lowess.Params

	// Grid is the number of evenly spaced points across the X range at
	// which the curve is evaluated. 0 evaluates at each distinct X.
	Grid int

	// CurveX, CurveY are the fitted curve, set by Run.
	CurveX, CurveY plot.Values

	// SE, Low, High are the standard errors and the confidence
	// band of the curve, set by Run.
	SE, Low, High plot.Values

	// Result is the full result of the last Run.
	Result lowess.Result

	// Style is the style for plotting.
	Style plot.Style

	stylers plot.Stylers
}

// NewSmooth returns a new Smooth plotter for the X, Y roles of the data,
// with default parameters. Pairs with a missing (NaN) value are dropped.
// Call Run to fit the curve.
func NewSmooth(data plot.Data) (*Smooth, error) {
	n, err := data.Len()
	if err != nil {
		return nil, err
	}
	xd, ok := data[plot.X]
	yd, oky := data[plot.Y]
	if !ok || !oky {
		return nil, plot.ErrNoData
	}
	sm := &Smooth{}
	for i := range n {
		x, y := xd.Float1D(i), yd.Float1D(i)
		if plot.CheckNaNs(x, y) {
			continue
		}
		if err := plot.CheckFloats(x, y); err != nil {
			return nil, err
		}
		sm.X = append(sm.X, x)
		sm.Y = append(sm.Y, y)
	}
	if len(sm.X) == 0 {
		return nil, plot.ErrNoData
	}
	sm.Defaults()
	return sm, nil
}

func (sm *Smooth) Defaults() {
	sm.Params.Defaults()
	sm.Grid = DefaultGrid
	sm.Style.Defaults()
}

// Styler adds a style function to set style parameters.
func (sm *Smooth) Styler(f func(s *plot.Style)) *Smooth {
	sm.stylers.Add(f)
	return sm
}

func (sm *Smooth) Stylers() *plot.Stylers { return &sm.stylers }

// ApplyStyle runs the stylers on the Style.
func (sm *Smooth) ApplyStyle() {
	sm.stylers.Run(&sm.Style)
}

// Run applies the stylers and fits the curve with the current Params.
func (sm *Smooth) Run(ctx context.Context) error {
	sm.ApplyStyle()
	obs, err := lowess.Observations(sm.X, sm.Y)
	if err != nil {
		return err
	}
	var rs lowess.Result
	if sm.Grid > 0 {
		rs, err = lowess.SmoothGrid(ctx, obs, sm.Params, sm.Grid)
	} else {
		rs, err = lowess.Smooth(ctx, obs, sm.Params)
	}
	if err != nil {
		return err
	}
	sm.Result = rs
	ne := len(rs.Estimates)
	sm.CurveX = make(plot.Values, ne)
	sm.CurveY = make(plot.Values, ne)
	sm.SE = make(plot.Values, ne)
	sm.Low = make(plot.Values, ne)
	sm.High = make(plot.Values, ne)
	for i, e := range rs.Estimates {
		sm.CurveX[i] = e.X
		sm.CurveY[i] = e.Y
		sm.SE[i] = e.SE
		sm.Low[i] = e.Low
		sm.High[i] = e.High
	}
	return nil
}

// HasBand returns true if the band is turned on and there
// are standard errors to draw it from.
func (sm *Smooth) HasBand() bool {
	if !sm.Style.Band.On || !sm.Params.SE {
		return false
	}
	for _, v := range sm.Low {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Data returns the fitted curve in the X, Y roles, and the band in
// the Low, High roles if [Smooth.HasBand].
func (sm *Smooth) Data() plot.Data {
	data := plot.Data{}
	data[plot.X] = sm.CurveX
	data[plot.Y] = sm.CurveY
	if sm.HasBand() {
		data[plot.Low] = sm.Low
		data[plot.High] = sm.High
	}
	return data
}

// Points returns the observations in the X, Y roles.
func (sm *Smooth) Points() plot.Data {
	return plot.Data{plot.X: sm.X, plot.Y: sm.Y}
}

// UpdateRange updates the given ranges to include the observations,
// the curve and the band, and applies the fixed axis ranges of the Style.
func (sm *Smooth) UpdateRange(xr, yr *minmax.F64) {
	plot.Range(sm.X, xr)
	plot.Range(sm.Y, yr)
	if sm.HasBand() {
		plot.Range(sm.Low, yr)
		plot.Range(sm.High, yr)
	}
	plot.RangeClamp(sm.CurveX, xr, &sm.Style.X.Range)
	plot.RangeClamp(sm.CurveY, yr, &sm.Style.Y.Range)
}
