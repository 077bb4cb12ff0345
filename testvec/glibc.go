// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package testvec

import "io"

const (
	// Degree and separation of the TYPE_3 additive feedback generator.
	glibcDegree = 31
	glibcSep    = 3
	// Outputs discarded after seeding.
	glibcWarmup = 10 * glibcDegree
)

// Glibc is the srand/rand generator of the GNU C library. It is not safe for
// concurrent use.
type Glibc struct {
	state [glibcDegree]uint32
	f, r  int
}

// NewGlibc returns a generator seeded as srand(seed) would. A seed of 0 is
// replaced by 1.
func NewGlibc(seed uint32) *Glibc {
	g := &Glibc{}
	g.Seed(seed)
	return g
}

// Seed resets the generator.
func (g *Glibc) Seed(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	g.state[0] = seed
	for i := 1; i < glibcDegree; i++ {
		// 16807 * state[i-1] % 2147483647, using Schrage's method.
		prev := int64(int32(g.state[i-1]))
		hi := prev / 127773
		lo := prev % 127773
		word := int32(16807*lo - 2836*hi)
		if word < 0 {
			word += 2147483647
		}
		g.state[i] = uint32(word)
	}
	g.f, g.r = glibcSep, 0
	for range glibcWarmup {
		g.Int31()
	}
}

// Int31 returns the next value in [0, 2^31).
func (g *Glibc) Int31() int32 {
	g.state[g.f] += g.state[g.r]
	v := int32(g.state[g.f] >> 1)
	g.f++
	if g.f >= glibcDegree {
		g.f = 0
		g.r++
	} else {
		g.r++
		if g.r >= glibcDegree {
			g.r = 0
		}
	}
	return v
}

// Read fills p with Int31() % 256. It never fails.
func (g *Glibc) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(g.Int31() % 256)
	}
	return len(p), nil
}

var _ io.Reader = &Glibc{}
