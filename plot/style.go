// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/lowess/math32/minmax"
	"golang.org/x/image/colornames"
)

// Style contains the plot styling properties for a smoothed scatter plot:
// the overall title and theme, the two axes, and the styles of the
// points, the fitted line and the confidence band. It is a plain
// configuration object: a renderer reads it, nothing here draws.
type Style struct {

	// Title is the overall plot title.
	Title string

	// Theme is the overall look of the plot background, grid and fonts.
	Theme Themes `default:"Gray"`

	// X has the properties of the X axis.
	X AxisStyle

	// Y has the properties of the Y axis.
	Y AxisStyle

	// Line has style properties for drawing the fitted curve.
	Line LineStyle

	// Point has style properties for drawing the observations.
	Point PointStyle

	// Band has style properties for drawing the confidence band.
	Band BandStyle
}

// NewStyle returns a new Style object with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.Theme = Gray
	st.Line.Defaults()
	st.Point.Defaults()
	st.Band.Defaults()
}

// Validate returns an error if any of the colors cannot be parsed,
// or if sizes are negative.
func (st *Style) Validate() error {
	for _, c := range []string{st.Line.Color, st.Point.Color, st.Band.Fill} {
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	if st.Line.Width < 0 || st.Point.Size < 0 {
		return fmt.Errorf("plot.Style: negative line width %g or point size %g", st.Line.Width, st.Point.Size)
	}
	if st.Band.Opacity < 0 || st.Band.Opacity > 1 {
		return fmt.Errorf("plot.Style: band opacity %g must be between 0 and 1", st.Band.Opacity)
	}
	return nil
}

// AxisStyle has the properties of one axis.
type AxisStyle struct {

	// Label is the axis label.
	Label string

	// Range is the range of data to show, where either end can be fixed.
	Range minmax.Range64

	// Breaks are explicit tick positions; automatic ticks are used if empty.
	Breaks []float64
}

// LineStyle has style properties for lines.
type LineStyle struct {

	// Color is the line color, as a color name or hex string.
	Color string `default:"#3366FF"`

	// Width is the line width in points.
	Width float64 `default:"1"`
}

func (ls *LineStyle) Defaults() {
	ls.Color = "#3366FF"
	ls.Width = 1
}

// PointStyle has style properties for points.
type PointStyle struct {

	// On specifies whether to draw the observations at all.
	On bool `default:"true"`

	// Shape is the shape drawn for each point.
	Shape Shapes `default:"Circle"`

	// Size is the point size in points.
	Size float64 `default:"1.5"`

	// Color is the point color, as a color name or hex string.
	Color string `default:"#000000"`
}

func (ps *PointStyle) Defaults() {
	ps.On = true
	ps.Shape = Circle
	ps.Size = 1.5
	ps.Color = "#000000"
}

// BandStyle has style properties for a shaded region between
// the Low and High data roles.
type BandStyle struct {

	// On specifies whether to draw the band.
	On bool `default:"true"`

	// Fill is the band fill color, as a color name or hex string.
	Fill string `default:"#999999"`

	// Opacity of the fill, between 0 and 1.
	Opacity float64 `default:"0.4"`
}

func (bs *BandStyle) Defaults() {
	bs.On = true
	bs.Fill = "#999999"
	bs.Opacity = 0.4
}

// FillColor returns the band fill with the Opacity applied as alpha.
func (bs *BandStyle) FillColor() (color.RGBA, error) {
	c, err := ParseColor(bs.Fill)
	if err != nil {
		return c, err
	}
	c.A = uint8(bs.Opacity*255 + 0.5)
	return c, nil
}

// Stylers is a list of styling functions that set Style properties.
// These are called in the order added.
type Stylers []func(s *Style)

// Add Adds a styling function to the list.
func (st *Stylers) Add(f func(s *Style)) {
	*st = append(*st, f)
}

// Run runs the list of styling functions on given [Style] object.
func (st *Stylers) Run(s *Style) {
	for _, f := range *st {
		f(s)
	}
}

// NewStyle returns a new Style object with styling functions applied
// on top of Style defaults.
func (st *Stylers) NewStyle() *Style {
	s := NewStyle()
	st.Run(s)
	return s
}

// ParseColor parses a color name from the SVG 1.1 set (case-insensitive,
// for example "steelblue"), or a hex color string of the form #RGB,
// #RRGGBB or #RRGGBBAA (the leading # is optional).
func ParseColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
	}
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("plot.ParseColor: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("plot.ParseColor: invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Themes are the overall plot looks.
type Themes int32 //enums:enum

const (
	// Gray has a gray panel with white grid lines.
	Gray Themes = iota

	// Light has light gray grid lines and axes on white.
	Light

	// Minimal has no background annotations.
	Minimal

	// Classic has axis lines and no grid.
	Classic

	// Dark has a dark panel.
	Dark
)

// Shapes are the shapes that can be drawn for points.
type Shapes int32 //enums:enum

const (
	// Ring is the outline of a circle
	Ring Shapes = iota

	// Circle is a solid circle
	Circle

	// Square is the outline of a square
	Square

	// Box is a filled square
	Box

	// Triangle is the outline of a triangle
	Triangle

	// Pyramid is a filled triangle
	Pyramid

	// Plus is a plus sign
	Plus

	// Cross is a big X
	Cross
)
