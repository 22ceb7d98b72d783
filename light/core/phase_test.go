// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseNext(t *testing.T) {
	assert.Equal(t, Green, Red.Next())
	assert.Equal(t, Red, Green.Next())
}

func TestPhaseZeroValueIsRed(t *testing.T) {
	var p Phase
	assert.Equal(t, Red, p)
	assert.Equal(t, "red", p.String())
}

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase(" Green ")
	require.NoError(t, err)
	assert.Equal(t, Green, p)

	p, err = ParsePhase("RED")
	require.NoError(t, err)
	assert.Equal(t, Red, p)

	_, err = ParsePhase("amber")
	assert.ErrorIs(t, err, ErrInvalidPhase)
}

func TestPhaseJSON(t *testing.T) {
	type payload struct {
		Phase Phase `json:"phase"`
	}

	bytes, err := json.Marshal(payload{Phase: Green})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"green"}`, string(bytes))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"phase":"red"}`), &decoded))
	assert.Equal(t, Red, decoded.Phase)

	assert.Error(t, json.Unmarshal([]byte(`{"phase":"blue"}`), &decoded))
	_, err = json.Marshal(payload{Phase: Phase(7)})
	assert.Error(t, err)
	assert.Equal(t, "Phase(7)", Phase(7).String())
}
