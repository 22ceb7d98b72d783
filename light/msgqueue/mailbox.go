// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package msgqueue

import (
	"context"
	"sync"
)

// Mailbox is a single-slot Transfer. Send overwrites whatever value is
// pending, so a receiver always gets the latest value and intermediate
// values are dropped.
type Mailbox[T any] struct {
	value    T
	full     bool
	cond     *sync.Cond
	canceled bool
	err      error
}

// Send replaces the pending value and wakes one suspended receiver.
func (m *Mailbox[T]) Send(value T) {
	m.cond.L.Lock()
	m.value = value
	m.full = true
	m.cond.L.Unlock()

	m.cond.Signal()
}

// Receive suspends the caller until the slot is filled and empties it.
// It returns the zero value once the mailbox is canceled.
func (m *Mailbox[T]) Receive() T {
	value, _ := m.ReceiveContext(context.Background())
	return value
}

// ReceiveContext is Receive bounded by ctx and cancellation.
func (m *Mailbox[T]) ReceiveContext(ctx context.Context) (T, error) {
	var zero T

	stop := wakeOnDone(ctx, m.cond)
	defer stop()

	m.cond.L.Lock()
	defer m.cond.L.Unlock()

	for !m.full && !m.canceled && ctx.Err() == nil {
		m.cond.Wait()
	}

	if m.canceled {
		if m.err != nil {
			return zero, m.err
		}
		return zero, ErrCanceled
	}
	if !m.full {
		return zero, ctx.Err()
	}

	value := m.value
	m.value = zero
	m.full = false
	return value, nil
}

// Len returns 1 if a value is pending, 0 otherwise.
func (m *Mailbox[T]) Len() int {
	m.cond.L.Lock()
	defer m.cond.L.Unlock()
	if m.full {
		return 1
	}
	return 0
}

// CancelWithError cancels the mailbox with error and awakes suspended receivers.
func (m *Mailbox[T]) CancelWithError(err error) {
	m.cond.L.Lock()
	defer m.cond.L.Unlock()
	m.canceled = true
	m.err = err
	m.cond.Broadcast()
}

// NewMailbox returns new Mailbox instance.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{
		cond: sync.NewCond(&sync.Mutex{}),
	}
}
