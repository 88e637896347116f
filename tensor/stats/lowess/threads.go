// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of points fit by one goroutine.
const chunkSize = 32

// parallel calls fun for each index in [0, n), using up to threads
// goroutines (GOMAXPROCS if threads is 0). The context is checked
// before each call. The first error returned by fun, or the context
// error, stops the remaining calls and is returned.
func parallel(ctx context.Context, n, threads int, fun func(i int) error) error {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads == 1 || n <= chunkSize {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fun(i); err != nil {
				return err
			}
		}
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for st := 0; st < n; st += chunkSize {
		ed := min(st+chunkSize, n)
		g.Go(func() error {
			for i := st; i < ed; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fun(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
