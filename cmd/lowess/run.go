// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"os"

	"cogentcore.org/lowess/base/errors"
	"cogentcore.org/lowess/datasets/airquality"
	"cogentcore.org/lowess/plot"
	"cogentcore.org/lowess/plot/plots"
	"cogentcore.org/lowess/tensor/stats/lowess"
	"cogentcore.org/lowess/tensor/table"
)

// Run loads the input, smooths Y against X, and writes the curve
// to the Output, using stdout for -.
func Run(ctx context.Context, cfg *Config, stdout io.Writer) error {
	dt, err := openInput(cfg)
	if err != nil {
		return err
	}
	xc, err := dt.ColumnByName(cfg.X)
	if err != nil {
		return err
	}
	yc, err := dt.ColumnByName(cfg.Y)
	if err != nil {
		return err
	}
	sm, err := plots.NewSmooth(plot.Data{plot.X: xc.Values, plot.Y: yc.Values})
	if err != nil {
		return err
	}
	sm.Params = cfg.Params
	sm.Grid = cfg.Grid
	sm.Style = cfg.Style
	if err := sm.Run(ctx); err != nil {
		return err
	}
	rs := sm.Result
	for _, e := range rs.Failed() {
		slog.Warn("local fit failed, using the weighted mean", "x", e.X, "err", e.Err)
	}
	st := rs.Stats
	slog.Info("smoothed", "x", cfg.X, "y", cfg.Y, "n", st.N, "k", st.K, "enp", st.EquivalentParams, "residualSE", st.ResidualSE, "df", st.DF, "failures", st.Failures)

	if cfg.Output == "" || cfg.Output == "-" {
		return write(cfg, rs, stdout)
	}
	fp, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = write(cfg, rs, bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

func openInput(cfg *Config) (*table.Table, error) {
	if cfg.Input == "" {
		slog.Debug("using builtin dataset", "dataset", "airquality")
		return airquality.Open()
	}
	return table.OpenCSV(cfg.Input, cfg.Delim)
}

func write(cfg *Config, rs lowess.Result, w io.Writer) error {
	if cfg.Format == JSON {
		return WriteJSON(cfg, rs, w)
	}
	return errors.Log(CurveTable(rs).WriteCSV(w, table.Comma))
}

// CurveTable returns a table with the x, y, se, low, high columns
// of the estimates.
func CurveTable(rs lowess.Result) *table.Table {
	n := len(rs.Estimates)
	cols := make([]plot.Values, 5)
	for i := range cols {
		cols[i] = make(plot.Values, n)
	}
	for i, e := range rs.Estimates {
		cols[0][i] = e.X
		cols[1][i] = e.Y
		cols[2][i] = e.SE
		cols[3][i] = e.Low
		cols[4][i] = e.High
	}
	dt := table.NewTable()
	for i, nm := range []string{"x", "y", "se", "low", "high"} {
		errors.Must1(dt.AddColumn(nm, cols[i]))
	}
	return dt
}

// number is a float64 that is written to JSON as null if it is NaN or infinite.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

type jsonEstimate struct {
	X     number `json:"x"`
	Y     number `json:"y"`
	SE    number `json:"se"`
	Low   number `json:"low"`
	High  number `json:"high"`
	Error string `json:"error,omitempty"`
}

type jsonStats struct {
	N                int    `json:"n"`
	K                int    `json:"k"`
	EquivalentParams number `json:"enp"`
	Delta1           number `json:"delta1"`
	Delta2           number `json:"delta2"`
	ResidualSE       number `json:"residualSE"`
	DF               number `json:"df"`
	RobustIterations int    `json:"robustIterations"`
	Failures         int    `json:"failures"`
}

type jsonDoc struct {
	X         string         `json:"x"`
	Y         string         `json:"y"`
	Params    lowess.Params  `json:"params"`
	Style     plot.Style     `json:"style"`
	Stats     jsonStats      `json:"stats"`
	Estimates []jsonEstimate `json:"estimates"`
}

// WriteJSON writes the estimates, the statistics and the parameters
// of the result as an indented JSON document.
func WriteJSON(cfg *Config, rs lowess.Result, w io.Writer) error {
	st := rs.Stats
	doc := jsonDoc{
		X:      cfg.X,
		Y:      cfg.Y,
		Params: cfg.Params,
		Style:  cfg.Style,
		Stats: jsonStats{
			N: st.N, K: st.K, EquivalentParams: number(st.EquivalentParams),
			Delta1: number(st.Delta1), Delta2: number(st.Delta2),
			ResidualSE: number(st.ResidualSE), DF: number(st.DF),
			RobustIterations: st.RobustIterations, Failures: st.Failures,
		},
		Estimates: make([]jsonEstimate, len(rs.Estimates)),
	}
	for i, e := range rs.Estimates {
		je := jsonEstimate{X: number(e.X), Y: number(e.Y), SE: number(e.SE), Low: number(e.Low), High: number(e.High)}
		if e.Err != nil {
			je.Error = e.Err.Error()
		}
		doc.Estimates[i] = je
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
