// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"go.trafficlight.dev/light/core"
)

type options struct {
	LogLevel     string        `long:"log-level" env:"TRAFFICLIGHT_LOG_LEVEL" default:"info" description:"log level"`
	MinCycle     time.Duration `long:"min-cycle" env:"TRAFFICLIGHT_MIN_CYCLE" default:"4s" description:"shortest time a phase is held"`
	MaxCycle     time.Duration `long:"max-cycle" env:"TRAFFICLIGHT_MAX_CYCLE" default:"6s" description:"longest time a phase is held"`
	PollInterval time.Duration `long:"poll-interval" env:"TRAFFICLIGHT_POLL_INTERVAL" default:"1ms" description:"sleep between two elapsed-time checks of the cycle loop"`
	Mailbox      bool          `long:"mailbox" env:"TRAFFICLIGHT_MAILBOX" description:"publish phases through a single-slot mailbox instead of a stack"`
	Waiters      int           `long:"waiters" env:"TRAFFICLIGHT_WAITERS" default:"1" description:"number of goroutines waiting for the target phase"`
	Target       string        `long:"target" env:"TRAFFICLIGHT_TARGET" default:"green" choice:"red" choice:"green" description:"phase the waiters wait for"`
	Crossings    uint64        `long:"crossings" env:"TRAFFICLIGHT_CROSSINGS" default:"0" description:"exit once every waiter observed the target this many times (0 runs forever)"`
	Listen       string        `long:"listen" env:"TRAFFICLIGHT_LISTEN" description:"address of the debug HTTP server, disabled when empty"`
}

func (o options) cycleConfig() core.CycleConfig {
	return core.CycleConfig{
		MinCycle:     o.MinCycle,
		MaxCycle:     o.MaxCycle,
		PollInterval: o.PollInterval,
	}
}
