// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package timing measures and cross checks CRC-8 engines.
//
// The engines are compared on the same input: they must agree on the
// checksum and they differ in how long they take to compute it.
package timing

import (
	"context"
	"fmt"
	"time"
)

// DefaultIterations is the number of repetitions Measure runs per engine
// when none is specified.
const DefaultIterations = 10000

// Result is the outcome of running one engine on one input.
type Result struct {
	Name       string
	Checksum   byte
	Iterations int
	// Bytes is the input length.
	Bytes   int
	Elapsed time.Duration
}

// PerOp returns the average duration of one checksum.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

// Throughput returns the processed bytes per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) * float64(r.Iterations) / r.Elapsed.Seconds()
}

// Milliseconds returns Elapsed as fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %02X %d x %d bytes in %s", r.Name, r.Checksum, r.Iterations, r.Bytes, r.Elapsed)
}

// Checksums runs every engine once on data.
func Checksums(data []byte, engines []Engine) []Result {
	out := make([]Result, len(engines))
	for i, e := range engines {
		out[i] = Result{Name: e.Name, Checksum: e.Sum(data), Iterations: 1, Bytes: len(data)}
	}
	return out
}

// Measure runs every engine iterations times on data and records the wall
// time taken. The engines run one after the other so their timings do not
// interfere. ctx is checked between engines.
func Measure(ctx context.Context, data []byte, iterations int, engines []Engine) ([]Result, error) {
	if len(engines) == 0 {
		return nil, errNoEngines
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	results := make([]Result, 0, len(engines))
	for _, e := range engines {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("timing: measuring %s %w", e.Name, err)
		}
		r := Result{Name: e.Name, Checksum: e.Sum(data), Iterations: iterations, Bytes: len(data)}
		start := time.Now()
		for range iterations {
			e.Sum(data)
		}
		r.Elapsed = time.Since(start)
		results = append(results, r)
	}
	return results, nil
}

// Agree returns a *MismatchError unless every result has the same checksum.
func Agree(results []Result) error {
	for _, r := range results[min(1, len(results)):] {
		if r.Checksum != results[0].Checksum {
			return &MismatchError{Vector: -1, Results: results}
		}
	}
	return nil
}
