// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package crc8 computes the 8-bit CRC of a byte slice with the generator
// polynomial 0x9B.
//
// Four equivalent engines are provided. Sequential and SequentialReflected
// process one bit at a time, most significant bit first and least
// significant bit first respectively. Checksum and ChecksumReflected process
// one byte at a time using a 256 entry table built by MakeTable or
// MakeTableReflected. For every input, all four return the same value.
//
// The accumulator starts at zero and no final XOR is applied, so the checksum
// of an empty slice is 0.
//
// All functions are pure. Tables are never modified after construction and
// can be shared between goroutines.
package crc8

// Polynomial is the generator polynomial x^8 + x^7 + x^4 + x^3 + x + 1. The
// x^8 term is omitted due to byte size.
//
// It is the low byte of 0b0110011011.
const Polynomial byte = 0x9B

// ReflectedPolynomial is Reflect8(Polynomial), the generator used by the
// least significant bit first engines.
const ReflectedPolynomial byte = 0xD9

// Sequential calculates the CRC-8 of data one bit at a time, most
// significant bit first.
func Sequential(data []byte) byte {
	var crc byte
	for _, val := range data {
		crc = shiftLeft(crc^val, Polynomial)
	}
	return crc
}

// SequentialReflected calculates the CRC-8 of data one bit at a time, least
// significant bit first. Each input byte and the final accumulator are
// reflected, so the result is identical to Sequential.
func SequentialReflected(data []byte) byte {
	rpoly := Reflect8(Polynomial)
	var crc byte
	for _, val := range data {
		crc = shiftRight(crc^Reflect8(val), rpoly)
	}
	return Reflect8(crc)
}

// shiftLeft runs the eight division rounds of the most significant bit first
// convention. Bits shifted out past bit 7 are discarded.
func shiftLeft(crc, poly byte) byte {
	for range 8 {
		if (crc & 0x80) == 0 {
			crc <<= 1
		} else {
			crc = (crc << 1) ^ poly
		}
	}
	return crc
}

// shiftRight is the least significant bit first counterpart of shiftLeft.
func shiftRight(crc, rpoly byte) byte {
	for range 8 {
		if (crc & 0x01) == 0 {
			crc >>= 1
		} else {
			crc = (crc >> 1) ^ rpoly
		}
	}
	return crc
}
