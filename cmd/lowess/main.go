// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lowess smooths one column of a CSV file against another
// with a locally weighted regression curve and its confidence band,
// writing the curve as CSV or JSON.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/lowess/base/errors"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := Run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("lowess", "err", err)
		os.Exit(1)
	}
}
