// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/GermanBionicSystems/crc8lab/timing"
)

// Terminal draws bar charts to a console using ANSI color codes.
type Terminal struct {
	w       io.Writer
	width   int
	palette *ansi256.Palette

	buf bytes.Buffer
}

// NewTerminal returns a Terminal writing to w. When w is nil, stdout is used.
// width is the length in cells of the longest bar. A nil palette selects
// ansi256.Default.
func NewTerminal(w io.Writer, width int, palette *ansi256.Palette) *Terminal {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	if palette == nil {
		palette = ansi256.Default
	}
	return &Terminal{w: w, width: max(width, 1), palette: palette}
}

func (t *Terminal) String() string {
	return "Terminal"
}

// Halt resets the terminal colors.
func (t *Terminal) Halt() error {
	_, err := t.w.Write([]byte("\033[0m"))
	return err
}

// Draw writes one line per result: the engine name, a bar proportional to its
// elapsed time and the elapsed time.
func (t *Terminal) Draw(results []timing.Result) error {
	if len(results) == 0 {
		return errNoResults
	}
	nameWidth := 0
	for _, r := range results {
		nameWidth = max(nameWidth, len(r.Name))
	}
	longest := slowest(results)

	t.buf.Reset()
	for i, r := range results {
		cells := t.cells(r, longest)
		block := t.palette.Block(barColor(i))
		_, _ = fmt.Fprintf(&t.buf, "%-*s ", nameWidth, r.Name)
		for range cells {
			_, _ = t.buf.WriteString(block)
		}
		_, _ = t.buf.WriteString("\033[0m")
		_, _ = fmt.Fprintf(&t.buf, " %.3f ms\n", r.Milliseconds())
	}
	_, err := t.buf.WriteTo(t.w)
	return err
}

// cells returns the bar length of r. A non zero duration always gets at least
// one cell.
func (t *Terminal) cells(r timing.Result, longest time.Duration) int {
	n := int(math.Round(scale(r.Elapsed, longest, float64(t.width))))
	if n == 0 && r.Elapsed > 0 {
		n = 1
	}
	return n
}
