// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"time"

	"github.com/google/uuid"
)

// PhaseChangedEvent is fired on the cycler's event manager after every toggle.
// Handlers run on a single dispatch goroutine, in toggle order. A slow
// handler delays later events but never the toggles; events are dropped when
// the backlog fills up. Events still queued when the cycler stops are not
// fired.
type PhaseChangedEvent struct {
	CyclerID uuid.UUID
	Previous Phase
	Current  Phase
	// Toggle is the 1-based sequence number of this transition.
	Toggle uint64
	// Held is how long Previous was held.
	Held time.Duration
	// NextCycle is the drawn duration for Current.
	NextCycle time.Duration
	At        time.Time
}
