// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Phase is the observable state of a traffic light.
type Phase int32

// Phases, Red is the initial one.
const (
	Red Phase = iota
	Green
)

// ErrInvalidPhase is returned when a phase name cannot be parsed.
var ErrInvalidPhase = errors.New("invalid phase")

const (
	redName   = "red"
	greenName = "green"
)

func (p Phase) String() string {
	switch p {
	case Red:
		return redName
	case Green:
		return greenName
	}
	return fmt.Sprintf("Phase(%d)", int32(p))
}

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == Red {
		return Green
	}
	return Red
}

// ParsePhase returns the phase named s (case-insensitive).
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case redName:
		return Red, nil
	case greenName:
		return Green, nil
	}
	return Red, fmt.Errorf("%w: %q", ErrInvalidPhase, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	if p != Red && p != Green {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPhase, int32(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
