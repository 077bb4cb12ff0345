// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package timing

import (
	"errors"
	"fmt"
	"strings"
)

var errNoEngines = errors.New("timing: no engines")

// MismatchError is returned when engines disagree on a checksum.
type MismatchError struct {
	// Vector is the index of the offending input in Verify, -1 otherwise.
	Vector  int
	Results []Result
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	b.WriteString("timing: checksum mismatch")
	if e.Vector >= 0 {
		fmt.Fprintf(&b, " in vector %d", e.Vector)
	}
	for i, r := range e.Results {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%02X", r.Name, r.Checksum)
	}
	return b.String()
}
