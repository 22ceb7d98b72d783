// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package msgqueue hands values from producer goroutines to blocked consumers.
package msgqueue

import (
	"context"
	"errors"
	"sync"
)

// ErrCanceled is returned to receivers of a transfer canceled without an error.
var ErrCanceled = errors.New("ErrCanceled")

// Transfer moves values between goroutines.
type Transfer[T any] interface {
	Send(value T)
	Receive() T
	ReceiveContext(ctx context.Context) (T, error)
	Len() int
	CancelWithError(error)
}

// Channel is a blocking hand-off queue. Send never blocks; Receive suspends
// the caller until a value is available and pops the most recently sent one.
type Channel[T any] struct {
	messages []T
	cond     *sync.Cond
	canceled bool
	err      error
}

// Send appends value and wakes exactly one suspended receiver.
func (c *Channel[T]) Send(value T) {
	c.cond.L.Lock()
	c.messages = append(c.messages, value)
	c.cond.L.Unlock()

	c.cond.Signal()
}

// Receive suspends the calling goroutine until a value is available and
// returns the last value sent. It returns the zero value once the channel
// is canceled.
func (c *Channel[T]) Receive() T {
	value, _ := c.ReceiveContext(context.Background())
	return value
}

// ReceiveContext is Receive that also gives up when ctx is done or the
// channel is canceled. Cancellation takes precedence over pending values, a
// pending value takes precedence over ctx.
func (c *Channel[T]) ReceiveContext(ctx context.Context) (T, error) {
	var zero T

	stop := wakeOnDone(ctx, c.cond)
	defer stop()

	c.cond.L.Lock()
	defer c.cond.L.Unlock()

	for len(c.messages) == 0 && !c.canceled && ctx.Err() == nil {
		c.cond.Wait()
	}

	if c.canceled {
		return zero, c.cancelErr()
	}
	if len(c.messages) == 0 {
		return zero, ctx.Err()
	}

	last := len(c.messages) - 1
	value := c.messages[last]
	c.messages[last] = zero
	c.messages = c.messages[:last]
	return value, nil
}

// Len returns the number of pending values.
func (c *Channel[T]) Len() int {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()
	return len(c.messages)
}

// CancelWithError cancels the channel with error and awakes suspended receivers.
func (c *Channel[T]) CancelWithError(err error) {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()
	c.canceled = true
	c.err = err
	c.cond.Broadcast()
}

func (c *Channel[T]) cancelErr() error {
	if c.err != nil {
		return c.err
	}
	return ErrCanceled
}

// NewChannel returns new Channel instance.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{
		cond: sync.NewCond(&sync.Mutex{}),
	}
}

// wakeOnDone broadcasts on cond when ctx is done so that waiters re-check
// their predicate. The broadcast is made under the lock so it cannot land
// between a waiter's predicate check and its cond.Wait.
func wakeOnDone(ctx context.Context, cond *sync.Cond) (stop func() bool) {
	if ctx.Done() == nil {
		return func() bool { return false }
	}
	return context.AfterFunc(ctx, func() {
		cond.L.Lock()
		defer cond.L.Unlock()
		cond.Broadcast()
	})
}
