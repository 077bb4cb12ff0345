// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package testvec generates input vectors for the crc8 engines.
//
// Bytes and Legacy reproduce, bit for bit, the vectors produced by
// rand()%256 after srand(seed) in the GNU C library. Random and Batch
// produce arbitrary vectors from a seeded PCG for property checks where the
// exact values do not matter.
package testvec

import (
	"math/rand/v2"
)

const (
	// DefaultSeed is the seed of the legacy vector.
	DefaultSeed uint32 = 1
	// DefaultLength is the length of the legacy vector: 1000 bits.
	DefaultLength = 125
)

// Bytes returns n bytes from the C library generator seeded with seed.
func Bytes(seed uint32, n int) []byte {
	b := make([]byte, max(n, 0))
	_, _ = NewGlibc(seed).Read(b)
	return b
}

// Legacy returns the 125 byte vector of seed 1.
func Legacy() []byte {
	return Bytes(DefaultSeed, DefaultLength)
}

// Random returns n bytes from a PCG generator seeded with seed.
func Random(seed uint64, n int) []byte {
	return fill(rand.New(rand.NewPCG(seed, seed)), max(n, 0))
}

// Batch returns count vectors of random length in [0, maxLen]. Empty vectors
// are included on purpose, the checksum of an empty vector is 0.
func Batch(seed uint64, count, maxLen int) [][]byte {
	rng := rand.New(rand.NewPCG(seed, seed))
	maxLen = max(maxLen, 0)
	out := make([][]byte, max(count, 0))
	for i := range out {
		out[i] = fill(rng, rng.IntN(maxLen+1))
	}
	return out
}

func fill(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Uint32())
	}
	return b
}
