// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crcword

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/spi/spitest"
)

const addr = 0x44

// 0xbeef, 0x0102, 0x1234 and their CRCs.
var frame = []byte{0xbe, 0xef, 0x34, 0x01, 0x02, 0xbb, 0x12, 0x34, 0x40}
var words = []uint16{0xbeef, 0x0102, 0x1234}

var noDelay = Opts{}

func TestEncode(t *testing.T) {
	if diff := cmp.Diff(Encode(words...), frame); diff != "" {
		t.Errorf("Encode() difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(appendWords(nil, true, words), frame); diff != "" {
		t.Errorf("reflected encode difference (-got +want):\n%s", diff)
	}
	if b := Encode(); len(b) != 0 {
		t.Errorf("Encode()=%#v expected empty", b)
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode(frame)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, words); diff != "" {
		t.Errorf("Decode() difference (-got +want):\n%s", diff)
	}
	if got, err := decode(frame, true); err != nil || !cmp.Equal(got, words) {
		t.Errorf("reflected decode()=%v, %v", got, err)
	}
	if got, err := Decode(nil); err != nil || len(got) != 0 {
		t.Errorf("Decode(nil)=%v, %v", got, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(frame[:4]); !errors.Is(err, ErrFrameLength) {
		t.Errorf("Decode() short frame error %v", err)
	}
	corrupt := append([]byte(nil), frame...)
	corrupt[5] = 0xbc
	_, err := Decode(corrupt)
	var ce *ChecksumError
	if !errors.As(err, &ce) {
		t.Fatalf("Decode() error %v is not a *ChecksumError", err)
	}
	if diff := cmp.Diff(*ce, ChecksumError{Word: 1, Got: 0xbc, Want: 0xbb}); diff != "" {
		t.Errorf("ChecksumError difference (-got +want):\n%s", diff)
	}
	if want := "crcword: word 1 crc error, received 0xbc computed 0xbb"; err.Error() != want {
		t.Errorf("Error()=%q", err.Error())
	}
}

func TestReadWords(t *testing.T) {
	bus := i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: addr, W: []byte{0xe0, 0x00}},
			{Addr: addr, R: frame},
		},
		DontPanic: true,
	}
	dev, err := New(&bus, addr, &noDelay)
	if err != nil {
		t.Fatal(err)
	}
	got, err := dev.ReadWords([]byte{0xe0, 0x00}, len(words))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, words); diff != "" {
		t.Errorf("ReadWords() difference (-got +want):\n%s", diff)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadWordsChecksumError(t *testing.T) {
	bus := i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: addr, R: []byte{0x01, 0x02, 0x00}}},
		DontPanic: true,
	}
	dev, err := New(&bus, addr, &noDelay)
	if err != nil {
		t.Fatal(err)
	}
	_, err = dev.ReadWords(nil, 1)
	var ce *ChecksumError
	if !errors.As(err, &ce) || ce.Word != 0 || ce.Want != 0xbb {
		t.Errorf("ReadWords() error %v", err)
	}
}

func TestReadWordsBusError(t *testing.T) {
	dev, err := New(&i2ctest.Playback{DontPanic: true}, addr, &noDelay)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dev.ReadWords([]byte{0x01}, 1); err == nil || !strings.HasPrefix(err.Error(), "crcword: error transmitting") {
		t.Errorf("ReadWords() error %v", err)
	}
	if _, err := dev.ReadWords(nil, 1); err == nil || !strings.HasPrefix(err.Error(), "crcword: error reading") {
		t.Errorf("ReadWords() error %v", err)
	}
	if _, err := dev.ReadWords(nil, 0); err == nil {
		t.Error("ReadWords() with zero words did not return an error")
	}
	if err := dev.WriteWords([]byte{0x01}, 2); err == nil {
		t.Error("WriteWords() on an empty playback did not return an error")
	}
}

func TestWriteWords(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: addr, W: []byte{0x36, 0x2f, 0x03, 0xe8, 0x84}}},
		DontPanic: true,
	}
	record := &i2ctest.Record{Bus: pb}
	dev, err := New(record, addr, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.WriteWords([]byte{0x36, 0x2f}, 1000); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
	if len(record.Ops) != 1 {
		t.Fatalf("recorded %d operations", len(record.Ops))
	}
	if diff := cmp.Diff(record.Ops[0].W, pb.Ops[0].W); diff != "" {
		t.Errorf("written difference (-got +want):\n%s", diff)
	}
}

func TestReflectedConn(t *testing.T) {
	pb := &conntest.Playback{
		Ops: []conntest.IO{
			{W: []byte{0x01}},
			{R: frame},
			{W: append([]byte{0x02}, frame...)},
		},
		DontPanic: true,
	}
	dev, err := NewConn(pb, &Opts{Reflected: true})
	if err != nil {
		t.Fatal(err)
	}
	got, err := dev.ReadWords([]byte{0x01}, len(words))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, words); diff != "" {
		t.Errorf("ReadWords() difference (-got +want):\n%s", diff)
	}
	if err := dev.WriteWords([]byte{0x02}, words...); err != nil {
		t.Fatal(err)
	}
	if pb.Count != len(pb.Ops) {
		t.Errorf("played %d of %d operations", pb.Count, len(pb.Ops))
	}
	if err := dev.Halt(); err != nil {
		t.Error(err)
	}
}

func TestNewSPI(t *testing.T) {
	record := &spitest.Record{}
	dev, err := NewSPI(record, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.WriteWords(nil, 0xbeef); err != nil {
		t.Fatal(err)
	}
	want := []conntest.IO{{W: []byte{0xbe, 0xef, 0x34}}}
	if len(record.Ops) != 1 || !cmp.Equal(record.Ops[0].W, want[0].W) {
		t.Errorf("recorded %#v expected %#v", record.Ops, want)
	}
}

func TestNewConnErrors(t *testing.T) {
	if _, err := NewConn(&conntest.Playback{}, &Opts{Delay: -1}); err == nil {
		t.Error("NewConn() with negative delay did not return an error")
	}
}

func TestString(t *testing.T) {
	dev, err := NewConn(&conntest.Playback{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s := dev.String(); !strings.HasPrefix(s, "crcword{") {
		t.Errorf("String()=%q", s)
	}
}
