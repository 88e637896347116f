// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/lowess/base/enums"
	"cogentcore.org/lowess/base/errors"
	"cogentcore.org/lowess/cli"
	"cogentcore.org/lowess/plot"
	"cogentcore.org/lowess/tensor/stats/lowess"
	"cogentcore.org/lowess/tensor/table"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// Config is the configuration for the lowess command.
type Config struct {

	// Config is a TOML file with configuration settings,
	// which are overridden by any command line flags.
	Config string `toml:"-"`

	// Input is the CSV file to read. The builtin
	// airquality dataset is used if it is empty.
	Input string

	// Delim is the delimiter of the Input file.
	Delim table.Delims `default:"Detect"`

	// X is the name of the predictor column.
	X string `default:"Temp"`

	// Y is the name of the response column.
	Y string `default:"Ozone"`

	// Grid is the number of evenly spaced points at which the curve
	// is evaluated. 0 evaluates at each distinct X.
	Grid int `default:"80" min:"0"`

	// Output is the file to write the curve to, or - for standard output.
	Output string `default:"-"`

	// Format is the output format.
	Format Formats `default:"CSV"`

	// LogLevel is the minimum level of log messages.
	LogLevel slog.Level `default:"INFO"`

	// Params are the smoothing parameters.
	Params lowess.Params

	// Style is the plot style of the curve, which is included in
	// the JSON output for a renderer.
	Style plot.Style
}

// Formats are the output formats.
type Formats int32 //enums:enum

const (
	// CSV writes one row per estimate: x, y, se, low, high.
	CSV Formats = iota

	// JSON writes a document with the parameters, statistics and estimates.
	JSON
)

var _FormatsNames = []string{"CSV", "JSON"}

// String returns the string representation of this Formats value.
func (i Formats) String() string { return enums.String(i, _FormatsNames) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Formats) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Formats) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, _FormatsNames, "Formats")
}

// newFlagSet returns the flags of the command, bound to the fields of cfg.
func newFlagSet(cfg *Config, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("lowess", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: lowess [flags]\n\nSmooths column Y against column X of a CSV file with a local regression curve.\n\n%s", fs.FlagUsages())
	}
	p := &cfg.Params
	fs.StringVarP(&cfg.Config, "config", "c", cfg.Config, "TOML config `file`")
	fs.StringVarP(&cfg.Input, "input", "i", cfg.Input, "input CSV `file` (default builtin airquality)")
	cli.TextVar(fs, &cfg.Delim, "delim", "input delimiter: Tab, Comma, Space, Detect")
	fs.StringVarP(&cfg.X, "x", "x", cfg.X, "predictor column")
	fs.StringVarP(&cfg.Y, "y", "y", cfg.Y, "response column")
	fs.IntVarP(&cfg.Grid, "grid", "n", cfg.Grid, "number of grid points, 0 for each distinct x")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output `file`, - for standard output")
	cli.TextVar(fs, &cfg.Format, "format", "output format: CSV, JSON")
	cli.TextVar(fs, &cfg.LogLevel, "log-level", "log level: DEBUG, INFO, WARN, ERROR")
	fs.Float64Var(&p.Span, "span", p.Span, "fraction of observations in each local fit")
	fs.IntVar(&p.Count, "count", p.Count, "number of observations in each local fit, overriding span if nonzero")
	fs.IntVar(&p.Degree, "degree", p.Degree, "degree of the local polynomial, 1 or 2")
	cli.TextVar(fs, &p.Family, "family", "fitting family: Gaussian, Symmetric")
	fs.IntVar(&p.Iterations, "iterations", p.Iterations, "total number of fits for the Symmetric family")
	fs.BoolVar(&p.SE, "se", p.SE, "compute standard errors and the confidence band")
	cli.TextVar(fs, &p.SEMethod, "se-method", "residual variance method: Global, Local")
	fs.Float64Var(&p.Level, "level", p.Level, "confidence level of the band")
	cli.TextVar(fs, &p.OnFailure, "on-failure", "policy for failed local fits: Mean, Skip, Fail")
	fs.IntVar(&p.Threads, "threads", p.Threads, "number of concurrent point fits, 0 for all CPUs")
	fs.IntVar(&p.MaxExactN, "max-exact-n", p.MaxExactN, "largest number of observations for exact degrees of freedom")
	fs.StringVar(&cfg.Style.Title, "title", cfg.Style.Title, "plot title")
	fs.StringVar(&cfg.Style.Line.Color, "color", cfg.Style.Line.Color, "curve color, as a name or hex")
	fs.StringVar(&cfg.Style.Band.Fill, "fill", cfg.Style.Band.Fill, "confidence band fill color, as a name or hex")
	return fs
}

// Parse returns the configuration from `default:` tags, then the
// config file given by the config flag if any, then the command line flags.
// Usage messages and flag errors are written to output.
func Parse(args []string, output io.Writer) (*Config, error) {
	cfg, err := parse(args, output, "")
	if err != nil {
		return nil, err
	}
	if cfg.Config == "" {
		return cfg, nil
	}
	file, err := homedir.Expand(cfg.Config)
	if err != nil {
		return nil, err
	}
	return parse(args, output, file)
}

func parse(args []string, output io.Writer, file string) (*Config, error) {
	cfg := &Config{}
	if err := cli.SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if file != "" {
		if err := cli.OpenTOML(cfg, file); err != nil {
			return nil, err
		}
	}
	fs := newFlagSet(cfg, output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("lowess: unexpected arguments %v", fs.Args())
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	return cfg, errors.Log(cfg.Validate())
}

// expandPaths expands a leading ~ in the file paths to the home directory.
func (cfg *Config) expandPaths() error {
	var err error
	if cfg.Input, err = homedir.Expand(cfg.Input); err != nil {
		return err
	}
	if cfg.Output != "-" {
		if cfg.Output, err = homedir.Expand(cfg.Output); err != nil {
			return err
		}
	}
	return nil
}

// Validate returns an error if the configuration is not valid.
func (cfg *Config) Validate() error {
	if cfg.Grid < 0 {
		return fmt.Errorf("lowess: grid %d must not be negative", cfg.Grid)
	}
	if cfg.X == "" || cfg.Y == "" {
		return fmt.Errorf("lowess: x and y columns must be named")
	}
	if err := cfg.Style.Validate(); err != nil {
		return err
	}
	return cfg.Params.Validate()
}
