// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package crcword reads and writes 16 bit words protected by a CRC-8 over an
// I²C or SPI connection.
//
// Each word travels big endian and is followed by the CRC-8 of its two bytes,
// the framing used by Sensirion and TI sensors. The checksum is computed by
// the crc8 table engines with polynomial 0x9B:
//
//	| MSB | LSB | CRC | MSB | LSB | CRC | ...
package crcword
