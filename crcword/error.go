// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crcword

import (
	"errors"
	"fmt"
)

// ErrFrameLength is returned when a frame is not a whole number of words.
var ErrFrameLength = errors.New("crcword: frame length is not a multiple of 3")

// ChecksumError is returned when a received CRC does not match its word.
type ChecksumError struct {
	// Word is the index of the corrupt word in the frame.
	Word int
	// Got is the CRC received, Want the one computed.
	Got, Want byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("crcword: word %d crc error, received 0x%02x computed 0x%02x", e.Word, e.Got, e.Want)
}
