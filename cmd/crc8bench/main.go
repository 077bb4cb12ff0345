// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// crc8bench computes the CRC-8 of a test vector with the four crc8 engines,
// checks that they agree and times them.
//
// The default vector is the 125 bytes of rand()%256 after srand(1).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/GermanBionicSystems/crc8lab/chart"
	"github.com/GermanBionicSystems/crc8lab/testvec"
	"github.com/GermanBionicSystems/crc8lab/timing"
)

// config is the command line.
type config struct {
	seed       uint
	n          int
	random     bool
	iterations int
	reference  bool
	verify     int
	workers    int
	bars       bool
	png        string
}

func (c *config) vector() []byte {
	if c.random {
		return testvec.Random(uint64(c.seed), c.n)
	}
	return testvec.Bytes(uint32(c.seed), c.n)
}

func (c *config) engines() []timing.Engine {
	e := timing.Engines()
	if c.reference {
		e = append(e, timing.ReferenceEngines()...)
	}
	return e
}

func run(ctx context.Context, c *config, w io.Writer) error {
	data := c.vector()
	engines := c.engines()

	sums := timing.Checksums(data, engines)
	for _, r := range sums {
		fmt.Fprintf(w, "CRC (%s): %02X\n", r.Name, r.Checksum)
	}
	if err := timing.Agree(sums); err != nil {
		return err
	}

	results, err := timing.Measure(ctx, data, c.iterations, engines)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s Time: %.3f ms\n", r.Name, r.Milliseconds())
	}

	if c.bars {
		if err := chart.NewTerminal(w, 40, nil).Draw(results); err != nil {
			return err
		}
	}
	if c.png != "" {
		if err := chart.SavePNG(c.png, results, &chart.DefaultOpts); err != nil {
			return err
		}
		fmt.Fprintf(w, "Chart written to %s\n", c.png)
	}

	if c.verify > 0 {
		vectors := testvec.Batch(uint64(c.seed), c.verify, 4*max(c.n, 1))
		if err := timing.Verify(ctx, vectors, engines, c.workers); err != nil {
			return err
		}
		fmt.Fprintf(w, "Verified %d vectors with %d engines\n", len(vectors), len(engines))
	}
	return nil
}

// stdout returns a writer that renders ANSI colors on a terminal and strips
// them otherwise.
func stdout() io.Writer {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return colorable.NewColorableStdout()
	}
	return colorable.NewNonColorable(os.Stdout)
}

func main() {
	c := config{}
	flag.UintVar(&c.seed, "seed", uint(testvec.DefaultSeed), "seed of the test vector generator")
	flag.IntVar(&c.n, "n", testvec.DefaultLength, "length of the test vector in bytes")
	flag.BoolVar(&c.random, "random", false, "use a PCG generator instead of the C library one")
	flag.IntVar(&c.iterations, "iterations", timing.DefaultIterations, "repetitions per engine")
	flag.BoolVar(&c.reference, "reference", false, "also run published CRC-8 packages")
	flag.IntVar(&c.verify, "verify", 0, "cross check this many random vectors")
	flag.IntVar(&c.workers, "workers", runtime.GOMAXPROCS(0), "goroutines used by -verify")
	flag.BoolVar(&c.bars, "bars", false, "draw the timings as a bar chart")
	flag.StringVar(&c.png, "png", "", "write the timings chart to this PNG file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("crc8bench: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, &c, stdout()); err != nil {
		stop()
		log.Fatal(err)
	}
}
