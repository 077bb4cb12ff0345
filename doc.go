// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package crc8lab is a container for CRC-8 engines and the tools around them.
//
// The engines live in package crc8. testvec generates inputs, timing
// compares and times the engines, chart draws the timings and crcword uses
// the engines to protect words exchanged with sensors.
package crc8lab
