// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	// DefaultMinCycle is the shortest time a phase is held.
	DefaultMinCycle = 4000 * time.Millisecond
	// DefaultMaxCycle is the longest time a phase is held.
	DefaultMaxCycle = 6000 * time.Millisecond
	// DefaultPollInterval is the sleep between two elapsed-time checks of the loop.
	DefaultPollInterval = time.Millisecond
)

// ErrInvalidConfig is returned by CycleConfig.Validate.
var ErrInvalidConfig = errors.New("invalid cycle config")

// CycleConfig controls the timing of the phase cycling loop.
type CycleConfig struct {
	MinCycle     time.Duration
	MaxCycle     time.Duration
	PollInterval time.Duration
}

// DefaultCycleConfig returns the 4-6s cycle polled every millisecond.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		MinCycle:     DefaultMinCycle,
		MaxCycle:     DefaultMaxCycle,
		PollInterval: DefaultPollInterval,
	}
}

// Validate checks that all durations are positive and MinCycle <= MaxCycle.
func (c CycleConfig) Validate() error {
	if c.MinCycle <= 0 || c.MaxCycle <= 0 || c.PollInterval <= 0 {
		return fmt.Errorf("%w: durations must be positive (min=%s, max=%s, poll=%s)", ErrInvalidConfig, c.MinCycle, c.MaxCycle, c.PollInterval)
	}
	if c.MinCycle > c.MaxCycle {
		return fmt.Errorf("%w: min cycle %s exceeds max cycle %s", ErrInvalidConfig, c.MinCycle, c.MaxCycle)
	}
	return nil
}

// drawCycle picks a cycle duration uniformly from [MinCycle, MaxCycle] with
// millisecond granularity. Sub-millisecond bounds fall back to nanoseconds.
func (c CycleConfig) drawCycle(rng *rand.Rand) time.Duration {
	unit := time.Millisecond
	if c.MinCycle%unit != 0 || c.MaxCycle%unit != 0 {
		unit = time.Nanosecond
	}

	lo := int64(c.MinCycle / unit)
	hi := int64(c.MaxCycle / unit)
	return time.Duration(lo+rng.Int64N(hi-lo+1)) * unit
}
