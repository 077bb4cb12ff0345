// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc8

// Convention is the bit order a table was built for.
type Convention int

const (
	// Normal processes the most significant bit first.
	Normal Convention = iota
	// Reflected processes the least significant bit first.
	Reflected
)

func (c Convention) String() string {
	switch c {
	case Normal:
		return "normal"
	case Reflected:
		return "reflected"
	default:
		return "unknown"
	}
}

// Table maps every byte value to its CRC-8 remainder, most significant bit
// first. It is only valid with Checksum.
type Table [256]byte

// ReflectedTable maps every byte value to its CRC-8 remainder, least
// significant bit first. It is only valid with ChecksumReflected.
//
// Table and ReflectedTable are distinct types so a table cannot be handed to
// the engine of the other convention.
type ReflectedTable [256]byte

// Convention returns Normal.
func (t *Table) Convention() Convention { return Normal }

// Convention returns Reflected.
func (t *ReflectedTable) Convention() Convention { return Reflected }

// MakeTable returns the Table for poly. Build it once and reuse it; Checksum
// does not modify it.
func MakeTable(poly byte) *Table {
	t := new(Table)
	for i := range t {
		t[i] = shiftLeft(byte(i), poly)
	}
	return t
}

// MakeTableReflected returns the ReflectedTable for rpoly, which must already
// be reflected (see ReflectedPolynomial).
func MakeTableReflected(rpoly byte) *ReflectedTable {
	t := new(ReflectedTable)
	for i := range t {
		t[i] = shiftRight(byte(i), rpoly)
	}
	return t
}

// Checksum calculates the CRC-8 of data one byte at a time using t.
func Checksum(data []byte, t *Table) byte {
	var crc byte
	for _, val := range data {
		crc = t[crc^val]
	}
	return crc
}

// ChecksumReflected calculates the CRC-8 of data one byte at a time using the
// reflected table t. The result is identical to Checksum.
func ChecksumReflected(data []byte, t *ReflectedTable) byte {
	var crc byte
	for _, val := range data {
		crc = t[crc^Reflect8(val)]
	}
	return Reflect8(crc)
}
