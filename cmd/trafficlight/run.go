// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/robinbraemer/event"
	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"go.trafficlight.dev/light/core"
	"go.trafficlight.dev/light/standalone"
)

const serverShutdownTimeout = 5 * time.Second

// run starts the cycler, the waiters and the optional debug server and
// blocks until ctx is done, the server asks for shutdown or every waiter
// reached its crossing count.
func run(ctx context.Context, opts options) error {
	target, err := core.ParsePhase(opts.Target)
	if err != nil {
		return err
	}
	if opts.Waiters < 0 {
		return fmt.Errorf("invalid waiter count %d", opts.Waiters)
	}

	eventMgr := event.New()
	event.Subscribe(eventMgr, 0, func(e *core.PhaseChangedEvent) {
		log.WithField("phase", e.Current).WithField("held", e.Held).WithField("toggle", e.Toggle).Info("Traffic light changed")
	})

	cyclerOpts := []core.Option{core.WithConfig(opts.cycleConfig()), core.WithEventManager(eventMgr)}
	if opts.Mailbox {
		cyclerOpts = append(cyclerOpts, core.WithMailbox())
	}
	cycler, err := core.NewCycler(cyclerOpts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	cycler.Start()
	log.WithField("cycler", cycler.ID()).WithField("phase", cycler.CurrentPhase()).Info("Traffic light started")

	g.Go(func() error {
		<-ctx.Done()
		cycler.Stop()
		return nil
	})

	if opts.Waiters > 0 {
		var finished atomic.Int32
		for i := 0; i < opts.Waiters; i++ {
			g.Go(func() error {
				err := runWaiter(ctx, cycler, target, opts.Crossings)
				if err == nil && opts.Crossings > 0 && int(finished.Inc()) == opts.Waiters {
					log.WithField("crossings", opts.Crossings).Info("All waiters done")
					cancel()
				}
				return err
			})
		}
	}

	if opts.Listen != "" {
		srv := &http.Server{
			Addr:    opts.Listen,
			Handler: standalone.NewHTTPRouter(cycler, cancel),
		}
		g.Go(func() error {
			log.Warnf("Listening on %s", opts.Listen)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

// runWaiter waits for target over and over until crossings observations are
// made (0 means forever), ctx is done or the cycler is stopped.
func runWaiter(ctx context.Context, cycler *core.Cycler, target core.Phase, crossings uint64) error {
	logger := log.WithField("waiter", uuid.New())

	for n := uint64(1); crossings == 0 || n <= crossings; n++ {
		start := time.Now()
		if err := cycler.AwaitTarget(ctx, target); err != nil {
			if errors.Is(err, core.ErrStopped) || ctx.Err() != nil {
				logger.Debug("Waiter exited")
				return nil
			}
			return err
		}
		logger.WithField("phase", target).WithField("waited", time.Since(start)).WithField("crossing", n).Info("Target phase observed")
	}
	return nil
}
