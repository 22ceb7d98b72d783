// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"go.trafficlight.dev/light/core"
	"go.trafficlight.dev/light/core/statejson"
)

const timeoutMsParam = "timeoutMs"

// PhaseReply is returned once a waited-for phase is published.
type PhaseReply struct {
	Phase    core.Phase                   `json:"phase"`
	WaitedMs int64                        `json:"waitedMs"`
	State    *statejson.CyclerDescription `json:"state"`
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

func InternalStateHandler(w http.ResponseWriter, r *http.Request, c PhaseCycler) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(c.Description().AsJSON())
}

func StartHandler(w http.ResponseWriter, r *http.Request, c PhaseCycler) {
	if c.Stopped() {
		newErrorReply(CyclerStopped, http.StatusServiceUnavailable, "Cycler is stopped, no loop started").Send(w, r)
		return
	}
	c.Start()
	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, c.Description())
}

// WaitForPhaseHandler blocks until the phase named in the URL is published.
// The wait is bounded by the request context and the optional timeoutMs
// query parameter.
func WaitForPhaseHandler(w http.ResponseWriter, r *http.Request, c PhaseCycler) {
	var target core.Phase
	if err := target.UnmarshalText([]byte(chi.URLParam(r, "phase"))); err != nil {
		newErrorReply(ClientInvalidRequest, http.StatusBadRequest, err.Error()).Send(w, r)
		return
	}

	ctx := r.Context()
	if raw := r.URL.Query().Get(timeoutMsParam); raw != "" {
		timeoutMs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || timeoutMs <= 0 {
			newErrorReply(ClientInvalidRequest, http.StatusBadRequest, fmt.Sprintf("Invalid %s %q", timeoutMsParam, raw)).Send(w, r)
			return
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
	}

	start := time.Now()
	err := c.AwaitTarget(ctx, target)
	switch {
	case err == nil:
		waited := time.Since(start)
		log.WithField("phase", target).WithField("waited", waited).Debug("Phase observed over HTTP")
		render.JSON(w, r, &PhaseReply{Phase: target, WaitedMs: waited.Milliseconds(), State: c.Description()})
	case errors.Is(err, core.ErrStopped):
		newErrorReply(CyclerStopped, http.StatusServiceUnavailable, err.Error()).Send(w, r)
	case errors.Is(err, context.DeadlineExceeded):
		newErrorReply(PhaseWaitTimeout, http.StatusGatewayTimeout, fmt.Sprintf("%s not observed within %s", target, time.Since(start).Round(time.Millisecond))).Send(w, r)
	default:
		// client went away
		log.WithError(err).WithField("phase", target).Debug("Phase wait abandoned")
	}
}

func ShutdownHandler(w http.ResponseWriter, r *http.Request, c PhaseCycler, shutdownFunc context.CancelFunc) {
	c.Stop()
	w.Header().Set("Content-Type", "application/json")
	w.Write(c.Description().AsJSON())
	if shutdownFunc != nil {
		shutdownFunc()
	}
}
