// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package chart draws timing.Result sets as horizontal bar charts, either as
// an image or on an ANSI terminal.
//
// Bars are scaled to the slowest engine.
package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/GermanBionicSystems/crc8lab/timing"
)

// Opts represents the options available for RenderPNG.
type Opts struct {
	Width    int
	Height   int
	Title    string
	FontSize float64

	_ struct{}
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Width:    640,
	Height:   240,
	Title:    "CRC-8 engines",
	FontSize: 14,
}

var errNoResults = errors.New("chart: no results")

// barColors is cycled through, one color per result.
var barColors = []color.NRGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
}

func barColor(i int) color.NRGBA {
	return barColors[i%len(barColors)]
}

var regular = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

func fontFace(size float64) (font.Face, error) {
	f, err := regular()
	if err != nil {
		return nil, fmt.Errorf("chart: parsing font %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// slowest returns the largest Elapsed in results.
func slowest(results []timing.Result) time.Duration {
	var m time.Duration
	for _, r := range results {
		m = max(m, r.Elapsed)
	}
	return m
}

// scale returns the length of the bar for d, out of full.
func scale(d, longest time.Duration, full float64) float64 {
	if longest <= 0 {
		return 0
	}
	return full * float64(d) / float64(longest)
}

// layout is the geometry of a rendered chart.
type layout struct {
	margin float64
	top    float64 // y of the first row
	row    float64 // row height
	barX   float64 // x where bars start
	barMax float64 // length of the longest bar
}

func newLayout(o *Opts, rows int) layout {
	l := layout{margin: 10, top: 2.5 * o.FontSize}
	l.row = (float64(o.Height) - l.top - l.margin) / float64(rows)
	l.barX = 0.35 * float64(o.Width)
	l.barMax = float64(o.Width) - l.barX - 8*o.FontSize
	return l
}

// bar returns the rectangle of the bar in row i.
func (l layout) bar(i int, length float64) (x, y, w, h float64) {
	return l.barX, l.top + float64(i)*l.row + 0.2*l.row, length, 0.6 * l.row
}

// RenderPNG draws results as an image.
func RenderPNG(results []timing.Result, opts *Opts) (image.Image, error) {
	dc, err := render(results, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG draws results and writes the image to path.
func SavePNG(path string, results []timing.Result, opts *Opts) error {
	dc, err := render(results, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("chart: saving %s %w", path, err)
	}
	return nil
}

func render(results []timing.Result, opts *Opts) (*gg.Context, error) {
	if len(results) == 0 {
		return nil, errNoResults
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 0 || opts.Height <= 0 || opts.FontSize <= 0 {
		return nil, fmt.Errorf("chart: invalid size %dx%d font %g", opts.Width, opts.Height, opts.FontSize)
	}
	face, err := fontFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	l := newLayout(opts, len(results))
	longest := slowest(results)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(opts.Title, float64(opts.Width)/2, l.margin+opts.FontSize/2, 0.5, 0.5)

	for i, r := range results {
		x, y, w, h := l.bar(i, scale(r.Elapsed, longest, l.barMax))
		dc.SetColor(barColor(i))
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(r.Name, x-l.margin, y+h/2, 1, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%.3f ms", r.Milliseconds()), x+w+l.margin, y+h/2, 0, 0.5)
	}
	return dc, nil
}
