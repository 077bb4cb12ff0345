// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc8

// Reflect8 returns b with its bit order reversed: bit 0 becomes bit 7, bit 1
// becomes bit 6 and so on.
func Reflect8(b byte) byte {
	var r byte
	for i := range 8 {
		if b&(1<<i) != 0 {
			r |= 1 << (7 - i)
		}
	}
	return r
}
