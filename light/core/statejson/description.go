// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package statejson

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
)

// PhaseDescription ...
type PhaseDescription struct {
	Name         string `json:"name"`
	LastModified int64  `json:"lastModified"`
}

// ConfigDescription ...
type ConfigDescription struct {
	MinCycleMs     int64 `json:"minCycleMs"`
	MaxCycleMs     int64 `json:"maxCycleMs"`
	PollIntervalMs int64 `json:"pollIntervalMs"`
}

// CyclerDescription describes internal state of a cycler for debugging purposes
type CyclerDescription struct {
	ID              string            `json:"id"`
	Phase           PhaseDescription  `json:"phase"`
	Toggles         uint64            `json:"toggles"`
	RunningLoops    int32             `json:"runningLoops"`
	PendingMessages int               `json:"pendingMessages"`
	Stopped         bool              `json:"stopped"`
	Config          ConfigDescription `json:"config"`
}

func (s *CyclerDescription) AsJSON() []byte {
	bytes, err := json.Marshal(s)
	if err != nil {
		log.Panicf("Failed to marshall cycler state: %s", err)
	}
	return bytes
}
