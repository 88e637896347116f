// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cogentcore.org/lowess/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// ReadTOML reads the config struct from the given TOML reader.
// Keys that do not match a field are an error.
func ReadTOML(cfg any, r io.Reader) error {
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg)
	if err != nil {
		return fmt.Errorf("cli.ReadTOML: %w", err)
	}
	return nil
}

// OpenTOML reads the config struct from the given TOML file.
// Errors are automatically logged in addition to being returned.
func OpenTOML(cfg any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return errors.Log(ReadTOML(cfg, bufio.NewReader(fp)))
}

// WriteTOML writes the config struct to the given writer in TOML format.
func WriteTOML(cfg any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// SaveTOML writes the config struct to the given TOML file.
// Errors are automatically logged in addition to being returned.
func SaveTOML(cfg any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = WriteTOML(cfg, bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return errors.Log(err)
}
