// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package timing

import (
	daq "github.com/go-daq/crc8"
	sigurn "github.com/sigurn/crc8"

	"github.com/GermanBionicSystems/crc8lab/crc8"
)

// Names of the engines returned by Engines and ReferenceEngines.
const (
	SimpleSequential    = "Simple Sequential"
	TableBased          = "Table-based"
	ReflectedSequential = "Reflected Sequential"
	ReflectedTableBased = "Reflected Table-based"
	SigurnTable         = "sigurn/crc8"
	DaqHash             = "go-daq/crc8"
)

// Engine is a named CRC-8 implementation.
type Engine struct {
	Name string
	Sum  func(data []byte) byte
}

// Engines returns the four crc8 engines. The two tables are built once here
// and shared, read only, by every call to Sum.
func Engines() []Engine {
	table := crc8.MakeTable(crc8.Polynomial)
	reflected := crc8.MakeTableReflected(crc8.Reflect8(crc8.Polynomial))
	return []Engine{
		{Name: SimpleSequential, Sum: crc8.Sequential},
		{Name: TableBased, Sum: func(data []byte) byte { return crc8.Checksum(data, table) }},
		{Name: ReflectedSequential, Sum: crc8.SequentialReflected},
		{Name: ReflectedTableBased, Sum: func(data []byte) byte { return crc8.ChecksumReflected(data, reflected) }},
	}
}

// sigurnParams describes crc8.Polynomial with a zero initial value and no
// reflection or final XOR.
var sigurnParams = sigurn.Params{
	Poly:   crc8.Polynomial,
	Init:   0x00,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x00,
	Check:  0xEA,
	Name:   "CRC-8/9B",
}

// ReferenceEngines returns published table driven CRC-8 implementations
// configured like crc8, for comparison.
func ReferenceEngines() []Engine {
	st := sigurn.MakeTable(sigurnParams)
	dt := daq.MakeTable(crc8.Polynomial)
	return []Engine{
		{Name: SigurnTable, Sum: func(data []byte) byte { return sigurn.Checksum(data, st) }},
		{Name: DaqHash, Sum: func(data []byte) byte {
			h := daq.New(dt)
			_, _ = h.Write(data)
			return h.Sum8()
		}},
	}
}
