// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crcword

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/GermanBionicSystems/crc8lab/crc8"
)

// FrameSize is the number of bytes of one word and its CRC.
const FrameSize = 3

// Both tables are built once and only read afterwards.
var (
	table          = crc8.MakeTable(crc8.Polynomial)
	reflectedTable = crc8.MakeTableReflected(crc8.ReflectedPolynomial)
)

func checksum(b []byte, reflected bool) byte {
	if reflected {
		return crc8.ChecksumReflected(b, reflectedTable)
	}
	return crc8.Checksum(b, table)
}

// Encode returns the frame of words.
func Encode(words ...uint16) []byte {
	return appendWords(nil, false, words)
}

// Decode verifies every CRC of frame and returns its words.
func Decode(frame []byte) ([]uint16, error) {
	return decode(frame, false)
}

func appendWords(b []byte, reflected bool, words []uint16) []byte {
	for _, w := range words {
		word := []byte{byte(w >> 8), byte(w)}
		b = append(b, word[0], word[1], checksum(word, reflected))
	}
	return b
}

func decode(frame []byte, reflected bool) ([]uint16, error) {
	if len(frame)%FrameSize != 0 {
		return nil, ErrFrameLength
	}
	words := make([]uint16, len(frame)/FrameSize)
	for i := range words {
		f := frame[i*FrameSize : (i+1)*FrameSize]
		if crc := checksum(f[:2], reflected); crc != f[2] {
			return nil, &ChecksumError{Word: i, Got: f[2], Want: crc}
		}
		words[i] = uint16(f[0])<<8 | uint16(f[1])
	}
	return words, nil
}

// Opts represents the options available for a Dev.
type Opts struct {
	// Reflected selects the reflected table engine. The checksums are
	// identical, only the computation differs.
	Reflected bool
	// Delay is the time between writing a command and reading its response.
	Delay time.Duration

	_ struct{}
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Delay: time.Millisecond,
}

// Dev is a device that exchanges CRC protected words.
type Dev struct {
	c    conn.Conn
	opts Opts
	mu   sync.Mutex
}

// New returns a Dev on an I²C bus.
func New(bus i2c.Bus, addr i2c.Addr, opts *Opts) (*Dev, error) {
	return NewConn(&i2c.Dev{Bus: bus, Addr: uint16(addr)}, opts)
}

// NewSPI returns a Dev on an SPI port, in mode 0 at 1MHz.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("crcword: %w", err)
	}
	return NewConn(c, opts)
}

// NewConn returns a Dev using an already opened connection.
func NewConn(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Delay < 0 {
		return nil, errors.New("crcword: negative delay")
	}
	return &Dev{c: c, opts: *opts}, nil
}

// ReadWords writes cmd, waits for the configured delay and reads n words.
// An empty cmd skips the write.
func (d *Dev) ReadWords(cmd []byte, n int) ([]uint16, error) {
	if n <= 0 {
		return nil, fmt.Errorf("crcword: invalid word count %d", n)
	}
	r := make([]byte, n*FrameSize)
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(cmd) > 0 {
		if err := d.c.Tx(cmd, nil); err != nil {
			return nil, fmt.Errorf("crcword: error transmitting %w", err)
		}
		time.Sleep(d.opts.Delay)
	}
	if err := d.c.Tx(nil, r); err != nil {
		return nil, fmt.Errorf("crcword: error reading %w", err)
	}
	return decode(r, d.opts.Reflected)
}

// WriteWords writes cmd followed by the frame of words.
func (d *Dev) WriteWords(cmd []byte, words ...uint16) error {
	w := appendWords(append([]byte(nil), cmd...), d.opts.Reflected, words)
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.c.Tx(w, nil); err != nil {
		return fmt.Errorf("crcword: error transmitting %w", err)
	}
	return nil
}

// Halt implements conn.Resource. There is nothing to stop.
func (d *Dev) Halt() error {
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("crcword{%s}", d.c)
}

var _ conn.Resource = &Dev{}
