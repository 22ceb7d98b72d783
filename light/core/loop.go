// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"math/rand/v2"
	"time"

	log "github.com/sirupsen/logrus"

	"go.trafficlight.dev/light/metering"
)

// cycleThroughPhases toggles the phase every drawn cycle until ctx is done.
// Elapsed time is checked every PollInterval.
func (c *Cycler) cycleThroughPhases(ctx context.Context, rng *rand.Rand) {
	cycle := c.config.drawCycle(rng)
	stopwatch := metering.NewStopwatch()

	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	logger := log.WithField("cycler", c.id)
	logger.WithField("cycle", cycle).Debug("Cycle loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Cycle loop exited")
			return
		case <-ticker.C:
		}

		held := stopwatch.Elapsed()
		if held < cycle {
			continue
		}

		previous := c.CurrentPhase()
		current := previous.Next()
		c.currentPhase.Store(int32(current))
		toggle := c.toggles.Inc()
		now := time.Now()
		c.lastModified.Store(now)

		c.queue.Send(current)

		stopwatch.Reset()
		cycle = c.config.drawCycle(rng)

		logger.WithField("phase", current).WithField("held", held).WithField("next", cycle).Debug("Phase changed")

		e := &PhaseChangedEvent{
			CyclerID:  c.id,
			Previous:  previous,
			Current:   current,
			Toggle:    toggle,
			Held:      held,
			NextCycle: cycle,
			At:        now,
		}
		select {
		case c.events <- e:
		default:
			logger.WithField("toggle", toggle).Warn("Event backlog full, dropping PhaseChangedEvent")
		}
	}
}

// dispatchEvents fires queued PhaseChangedEvents in toggle order until ctx
// is done. It runs outside the loops so that handlers may call Stop.
func (c *Cycler) dispatchEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-c.events:
			c.eventMgr.Fire(e)
		}
	}
}
