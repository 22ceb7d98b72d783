// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import (
	"testing"
	"time"
)

// WaitForValue returns the first value received on channel and true, or the
// zero value and false if nothing arrives within timeout.
func WaitForValue[T any](channel <-chan T, timeout time.Duration) (T, bool) {
	select {
	case v := <-channel:
		return v, true
	case <-time.After(timeout):
		var zero T
		return zero, false
	}
}

// Eventually retries testFunc with a linearly growing pause until it succeeds
// or retries are exhausted.
func Eventually(t *testing.T, testFunc func() (bool, error), pollingIntervalMultiple time.Duration, retries int) bool {
	for try := 0; try < retries; try++ {
		success, err := testFunc()
		if success {
			return true
		}
		if err != nil {
			t.Logf("try %d: %v", try, err)
		}
		time.Sleep(time.Duration(try) * pollingIntervalMultiple)
	}
	return false
}
