// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package msgqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var _ Transfer[int] = (*Channel[int])(nil)
var _ Transfer[int] = (*Mailbox[int])(nil)

func TestMailboxKeepsLatest(t *testing.T) {
	m := NewMailbox[int]()
	m.Send(1)
	m.Send(2)
	m.Send(3)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 3, m.Receive())
	assert.Equal(t, 0, m.Len())
}

func TestMailboxReceiveBlocksUntilSend(t *testing.T) {
	m := NewMailbox[string]()
	received := make(chan string)
	go func() { received <- m.Receive() }()

	select {
	case <-received:
		t.Fatal("receive returned on an empty mailbox")
	case <-time.After(30 * time.Millisecond):
	}

	m.Send("green")
	select {
	case v := <-received:
		assert.Equal(t, "green", v)
	case <-time.After(time.Second):
		t.Fatal("receive did not return after send")
	}
}

func TestMailboxCancel(t *testing.T) {
	m := NewMailbox[int]()
	err := errors.New("MyErr")
	go m.CancelWithError(err)

	_, got := m.ReceiveContext(context.Background())
	assert.Equal(t, err, got)

	m = NewMailbox[int]()
	m.Send(1)
	m.CancelWithError(nil)
	_, got = m.ReceiveContext(context.Background())
	assert.Equal(t, ErrCanceled, got)
}

func TestMailboxReceiveContextCanceled(t *testing.T) {
	m := NewMailbox[int]()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := m.ReceiveContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
