// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/lowess/tensor/stats/lowess"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name   string `default:"smooth"`
	Grid   int    `default:"80"`
	Params lowess.Params
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "smooth", cfg.Name)
	assert.Equal(t, 80, cfg.Grid)
	assert.Equal(t, *lowess.NewParams(), cfg.Params)
}

func TestTOML(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	src := `
Name = "ozone"

[Params]
Span = 0.5
Family = "Symmetric"
SEMethod = "local"
`
	require.NoError(t, ReadTOML(cfg, strings.NewReader(src)))
	assert.Equal(t, "ozone", cfg.Name)
	assert.Equal(t, 80, cfg.Grid)
	assert.Equal(t, 0.5, cfg.Params.Span)
	assert.Equal(t, lowess.Symmetric, cfg.Params.Family)
	assert.Equal(t, lowess.Local, cfg.Params.SEMethod)
	assert.Equal(t, 2, cfg.Params.Degree)

	assert.Error(t, ReadTOML(cfg, strings.NewReader(`Bogus = 1`)))
	assert.Error(t, ReadTOML(cfg, strings.NewReader("[Params]\nFamily = \"Cauchy\"\n")))

	var b bytes.Buffer
	require.NoError(t, WriteTOML(cfg, &b))
	assert.Contains(t, b.String(), "[Params]")
	assert.Contains(t, b.String(), "Symmetric")

	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveTOML(cfg, fn))
	rt := &testConfig{}
	require.NoError(t, OpenTOML(rt, fn))
	assert.Equal(t, cfg, rt)

	assert.Error(t, OpenTOML(rt, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestTextVar(t *testing.T) {
	p := lowess.NewParams()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	TextVar(fs, &p.Family, "family", "fitting family")
	fl := fs.Lookup("family")
	require.NotNil(t, fl)
	assert.Equal(t, "Gaussian", fl.DefValue)
	assert.Equal(t, "Families", fl.Value.Type())

	require.NoError(t, fs.Parse([]string{"--family", "symmetric"}))
	assert.Equal(t, lowess.Symmetric, p.Family)
	assert.Error(t, fs.Parse([]string{"--family=uniform"}))
}
