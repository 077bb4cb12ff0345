// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package timing

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Verify checks that all engines agree on every vector. Vectors are checked
// concurrently by up to workers goroutines (unbounded when workers <= 0);
// engines are shared between them, so their Sum must be safe for concurrent
// use, which holds for Engines and ReferenceEngines.
//
// The first disagreement cancels the remaining work and is returned as a
// *MismatchError.
func Verify(ctx context.Context, vectors [][]byte, engines []Engine, workers int) error {
	if len(engines) == 0 {
		return errNoEngines
	}
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, v := range vectors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results := Checksums(v, engines)
			if err := Agree(results); err != nil {
				return &MismatchError{Vector: i, Results: results}
			}
			return nil
		})
	}
	return g.Wait()
}
