// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metering

import (
	"time"
)

// Monotime returns a monotonic timestamp in nanoseconds.
func Monotime() int64 {
	return int64(time.Since(processStart)) + processStartNs
}

var (
	processStart   = time.Now()
	processStartNs = processStart.UnixNano()
)

// Stopwatch measures elapsed time since the last Reset.
type Stopwatch struct {
	startNs int64
}

// NewStopwatch returns a started Stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{startNs: Monotime()}
}

// Reset restarts the measurement and returns the new start timestamp.
func (s *Stopwatch) Reset() int64 {
	s.startNs = Monotime()
	return s.startNs
}

// Elapsed returns the time since the last Reset.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Duration(Monotime() - s.startNs)
}
