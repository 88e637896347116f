// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"math"
	"testing"

	"cogentcore.org/lowess/base/reflectx"
	"cogentcore.org/lowess/math32/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData(t *testing.T) {
	nan := math.NaN()
	dt := Data{X: Values{1, 2, 3}, Y: Values{4, nan, 6}}
	n, err := dt.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, dt.CheckLengths())

	dt[Label] = Values{1, 2}
	assert.ErrorIs(t, dt.CheckLengths(), ErrLengths)

	n, err = Data{}.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.ErrorIs(t, CheckFloats(1, math.Inf(-1)), ErrInfinity)
	assert.NoError(t, CheckFloats(1, nan))
	assert.ErrorIs(t, CheckFloats(nan, nan), ErrNoData)
	assert.True(t, CheckNaNs(1, nan))
	assert.False(t, CheckNaNs(1, 2))

	assert.Equal(t, "2.5", Values{2.5}.String1D(0))
}

func TestRange(t *testing.T) {
	var r minmax.F64
	r.SetInfinity()
	Range(Values{3, math.NaN(), -1, 2}, &r)
	assert.Equal(t, -1.0, r.Min)
	assert.Equal(t, 3.0, r.Max)

	var sr minmax.Range64
	sr.Max, sr.FixMax = 10, true
	r.SetInfinity()
	RangeClamp(Values{3, 4}, &r, &sr)
	assert.Equal(t, 3.0, r.Min)
	assert.Equal(t, 10.0, r.Max)
}

func TestStyle(t *testing.T) {
	st := NewStyle()
	assert.Equal(t, Gray, st.Theme)
	assert.Equal(t, "#3366FF", st.Line.Color)
	assert.Equal(t, 1.0, st.Line.Width)
	assert.True(t, st.Point.On)
	assert.Equal(t, Circle, st.Point.Shape)
	assert.Equal(t, 1.5, st.Point.Size)
	assert.True(t, st.Band.On)
	assert.Equal(t, 0.4, st.Band.Opacity)
	assert.NoError(t, st.Validate())

	// the default tags agree with Defaults
	tg := &Style{}
	require.NoError(t, reflectx.SetFromDefaultTags(tg))
	assert.Equal(t, st, tg)

	fc, err := st.Band.FillColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 102}, fc)

	st.Band.Opacity = 1.5
	assert.Error(t, st.Validate())
	st.Band.Opacity = 0.4
	st.Line.Color = "blue"
	assert.Error(t, st.Validate())
	st.Line.Color = "#00F"
	st.Point.Size = -1
	assert.Error(t, st.Validate())

	var sts Stylers
	sts.Add(func(s *Style) { s.Title = "Ozone" })
	sts.Add(func(s *Style) { s.Point.Shape = Triangle })
	ns := sts.NewStyle()
	assert.Equal(t, "Ozone", ns.Title)
	assert.Equal(t, Triangle, ns.Point.Shape)
	assert.Equal(t, "#3366FF", ns.Line.Color)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#00F")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, c)
	c, err = ParseColor("3366ff80")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x33, G: 0x66, B: 0xff, A: 0x80}, c)
	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#GGGGGG")
	assert.Error(t, err)

	c, err = ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)
	c, err = ParseColor("SteelBlue")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 70, G: 130, B: 180, A: 255}, c)
	_, err = ParseColor("notacolor")
	assert.Error(t, err)
	_, err = ParseColor("#red")
	assert.Error(t, err)

	st := NewStyle()
	st.Line.Color = "darkorange"
	assert.NoError(t, st.Validate())
	st.Band.Fill = "greyish"
	assert.Error(t, st.Validate())
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "Low", Low.String())
	var r Roles
	require.NoError(t, r.UnmarshalText([]byte("high")))
	assert.Equal(t, High, r)
	assert.Len(t, RolesValues(), 8)

	var th Themes
	require.NoError(t, th.SetString("Dark"))
	assert.Equal(t, Dark, th)
	b, err := Minimal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Minimal", string(b))

	var sh Shapes
	assert.Error(t, sh.SetString("star"))
	assert.Equal(t, "Cross", Cross.String())
}

type testPlotter struct {
	data    Data
	stylers Stylers
}

func (tp *testPlotter) Data() Data { return tp.data }
func (tp *testPlotter) UpdateRange(xr, yr *minmax.F64) {
	Range(tp.data[X], xr)
	Range(tp.data[Y], yr)
}
func (tp *testPlotter) Stylers() *Stylers { return &tp.stylers }

func TestRegistry(t *testing.T) {
	RegisterPlotter("Test", "a test plotter", []Roles{X, Y}, []Roles{Label}, func(data Data) (Plotter, error) {
		return &testPlotter{data: data}, nil
	})
	defer delete(Plotters, "Test")
	assert.Contains(t, PlotterNames(), "Test")

	pt, err := PlotterByType("Test")
	require.NoError(t, err)
	assert.Equal(t, "a test plotter", pt.Doc)

	dt := Data{X: Values{1, 2}, Y: Values{3, 4}, Label: Values{5, 6}}
	pl, err := NewPlotter("Test", dt)
	require.NoError(t, err)
	var xr, yr minmax.F64
	xr.SetInfinity()
	yr.SetInfinity()
	pl.UpdateRange(&xr, &yr)
	assert.Equal(t, 2.0, xr.Max)
	assert.Equal(t, 3.0, yr.Min)

	_, err = NewPlotter("Test", Data{X: Values{1}})
	assert.Error(t, err)
	_, err = NewPlotter("Test", Data{X: Values{1}, Y: Values{1}, Size: Values{1}})
	assert.Error(t, err)
	_, err = PlotterByType("Nothing")
	assert.Error(t, err)
}
