// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robinbraemer/event"
	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"go.trafficlight.dev/light/core/statejson"
	"go.trafficlight.dev/light/msgqueue"
)

// ErrStopped is returned to waiters once the cycler has been stopped.
var ErrStopped = errors.New("cycler stopped")

// Cycler toggles a Phase between red and green at random intervals and
// publishes every new phase on its transfer channel.
type Cycler struct {
	id       uuid.UUID
	config   CycleConfig
	queue    msgqueue.Transfer[Phase]
	eventMgr event.Manager
	events   chan *PhaseChangedEvent
	seed     *uint64

	currentPhase atomic.Int32
	toggles      atomic.Uint64
	lastModified atomic.Time
	runningLoops atomic.Int32
	loopSeq      atomic.Uint64

	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.Mutex
	stopped      bool
	stopOnce     sync.Once
	dispatchOnce sync.Once
	loops        sync.WaitGroup
}

// eventBacklog is the number of PhaseChangedEvents buffered between the
// loops and the dispatch goroutine. Events beyond it are dropped.
const eventBacklog = 64

// Option configures a Cycler.
type Option func(*Cycler)

// WithConfig overrides the default cycle timing.
func WithConfig(config CycleConfig) Option {
	return func(c *Cycler) { c.config = config }
}

// WithMailbox makes the cycler publish through a single-slot mailbox that
// keeps only the latest phase instead of the default stack.
func WithMailbox() Option {
	return func(c *Cycler) { c.queue = msgqueue.NewMailbox[Phase]() }
}

// WithTransfer makes the cycler publish through t.
func WithTransfer(t msgqueue.Transfer[Phase]) Option {
	return func(c *Cycler) { c.queue = t }
}

// WithEventManager fires a PhaseChangedEvent on mgr after every toggle.
func WithEventManager(mgr event.Manager) Option {
	return func(c *Cycler) { c.eventMgr = mgr }
}

// WithSeed makes cycle durations reproducible. Each loop started on the
// cycler derives its own random stream from seed.
func WithSeed(seed uint64) Option {
	return func(c *Cycler) { c.seed = &seed }
}

// NewCycler returns a cycler in the red phase. The loop is not running until
// Start is called.
func NewCycler(opts ...Option) (*Cycler, error) {
	c := &Cycler{
		id:       uuid.New(),
		config:   DefaultCycleConfig(),
		queue:    msgqueue.NewChannel[Phase](),
		eventMgr: event.Nop,
		events:   make(chan *PhaseChangedEvent, eventBacklog),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	c.currentPhase.Store(int32(Red))
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c, nil
}

// ID identifies the cycler in logs and events.
func (c *Cycler) ID() uuid.UUID { return c.id }

// Config returns the cycle timing in use.
func (c *Cycler) Config() CycleConfig { return c.config }

// Start launches one cycling loop. Every call launches another loop; loops
// started on the same cycler race on the phase. Start after Stop is a no-op.
func (c *Cycler) Start() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		log.WithField("cycler", c.id).Warn("Start called on a stopped cycler")
		return
	}
	c.loops.Add(1)
	c.mu.Unlock()

	running := c.runningLoops.Inc()
	if running > 1 {
		log.WithField("cycler", c.id).WithField("loops", running).Warn("Multiple cycle loops running on one cycler")
	}

	c.dispatchOnce.Do(func() { go c.dispatchEvents(c.ctx) })

	rng := c.newRand()
	go func() {
		defer c.loops.Done()
		defer c.runningLoops.Dec()
		c.cycleThroughPhases(c.ctx, rng)
	}()
}

// CurrentPhase returns the last phase stored by the loop. It is advisory:
// the phase may change right after the call returns.
func (c *Cycler) CurrentPhase() Phase {
	return Phase(c.currentPhase.Load())
}

// Toggles returns the number of transitions made so far.
func (c *Cycler) Toggles() uint64 {
	return c.toggles.Load()
}

// LastModified returns the time of the last transition, zero if none.
func (c *Cycler) LastModified() time.Time {
	return c.lastModified.Load()
}

// RunningLoops returns the number of loops currently cycling.
func (c *Cycler) RunningLoops() int32 {
	return c.runningLoops.Load()
}

// WaitForTarget suspends the caller until target is published. Published
// values that are not target are consumed and discarded, so concurrent
// waiters may steal each other's transitions and return a cycle later.
// It returns without target only when the cycler is stopped.
func (c *Cycler) WaitForTarget(target Phase) {
	if err := c.AwaitTarget(context.Background(), target); err != nil {
		log.WithError(err).WithField("target", target).Debug("Stopped waiting for phase")
	}
}

// AwaitTarget is WaitForTarget bounded by ctx. It returns ctx.Err() when ctx
// ends and ErrStopped when the cycler is stopped.
func (c *Cycler) AwaitTarget(ctx context.Context, target Phase) error {
	for {
		phase, err := c.queue.ReceiveContext(ctx)
		if err != nil {
			return err
		}
		if phase == target {
			return nil
		}
	}
}

// Stop releases waiters with ErrStopped, cancels every loop and waits for
// them to exit. Stop is idempotent and may be called from a
// PhaseChangedEvent handler.
func (c *Cycler) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		c.mu.Unlock()

		c.cancel()
		c.queue.CancelWithError(ErrStopped)
		c.loops.Wait()

		log.WithField("cycler", c.id).WithField("toggles", c.toggles.Load()).Info("Cycler stopped")
	})
}

// Stopped reports whether Stop has been called.
func (c *Cycler) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// Description returns the cycler state for debugging.
func (c *Cycler) Description() *statejson.CyclerDescription {
	var lastModified int64
	if t := c.LastModified(); !t.IsZero() {
		lastModified = t.UnixMilli()
	}

	return &statejson.CyclerDescription{
		ID: c.id.String(),
		Phase: statejson.PhaseDescription{
			Name:         c.CurrentPhase().String(),
			LastModified: lastModified,
		},
		Toggles:         c.Toggles(),
		RunningLoops:    c.RunningLoops(),
		PendingMessages: c.queue.Len(),
		Stopped:         c.Stopped(),
		Config: statejson.ConfigDescription{
			MinCycleMs:     c.config.MinCycle.Milliseconds(),
			MaxCycleMs:     c.config.MaxCycle.Milliseconds(),
			PollIntervalMs: c.config.PollInterval.Milliseconds(),
		},
	}
}

func (c *Cycler) newRand() *rand.Rand {
	seq := c.loopSeq.Inc()
	if c.seed != nil {
		return rand.New(rand.NewPCG(*c.seed, seq))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
