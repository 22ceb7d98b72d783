// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"go.trafficlight.dev/light/core"
	"go.trafficlight.dev/light/core/statejson"
)

// PhaseCycler is the cycler surface served over HTTP.
type PhaseCycler interface {
	Start()
	Stop()
	Stopped() bool
	CurrentPhase() core.Phase
	AwaitTarget(ctx context.Context, target core.Phase) error
	Description() *statejson.CyclerDescription
}

func NewHTTPRouter(cycler PhaseCycler, shutdownFunc context.CancelFunc) *chi.Mux {
	r := chi.NewRouter()
	r.Use(standaloneAccessLogDecorator)

	r.Get("/test/ping", func(w http.ResponseWriter, r *http.Request) { PingHandler(w, r) })
	r.Get("/test/internalState", func(w http.ResponseWriter, r *http.Request) { InternalStateHandler(w, r, cycler) })
	r.Post("/test/start", func(w http.ResponseWriter, r *http.Request) { StartHandler(w, r, cycler) })
	r.Post("/test/waitForPhase/{phase}", func(w http.ResponseWriter, r *http.Request) { WaitForPhaseHandler(w, r, cycler) })
	r.Post("/test/shutdown", func(w http.ResponseWriter, r *http.Request) { ShutdownHandler(w, r, cycler, shutdownFunc) })
	return r
}
