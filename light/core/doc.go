// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package core provides the phase cycler of a simulated traffic light.

# Cycler

A Cycler holds a Phase, red or green, starting at red. Start launches a loop
that holds each phase for a random duration drawn from [MinCycle, MaxCycle],
toggles it and publishes the new phase on a transfer channel:

	red --(4..6s)--> green --(4..6s)--> red --> ...

The loop checks elapsed time every PollInterval, so a transition is late by at
most one poll interval plus scheduling jitter.

# Waiting for a phase

WaitForTarget receives from the transfer channel until the wanted phase shows
up. Every receive consumes a value, so two waiters share one stream of
transitions:

	loop:     send(green)          send(red)   send(green)
	waiter A: receive -> green, returns
	waiter B:                      receive -> red, discards
	waiter B:                                  receive -> green, returns

Waiter B returns one full red/green cycle later than A. Both return
eventually; nothing is lost for good because the loop republishes the phase on
every toggle.

The default channel is a stack (the last value sent is received first).
WithMailbox switches to a single slot that keeps only the latest phase.

# Current phase

CurrentPhase is an atomic load, free of data races, but advisory: the value
may change right after it is read. Transitions are authoritative only as
observed through the channel or a PhaseChangedEvent.

# Shutdown

Stop cancels the loops, waits for them and releases all waiters with
ErrStopped. Without Stop the loops run until the process exits.
*/
package core
