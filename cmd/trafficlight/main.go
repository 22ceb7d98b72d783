// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"go.trafficlight.dev/light/logging"
)

func main() {
	opts, err := getCLIArgs(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}

	if err := logging.SetLogLevel(opts.LogLevel); err != nil {
		log.WithError(err).Fatal("Failed to set log level")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go signalHandler(cancel)

	if err := run(ctx, opts); err != nil {
		log.WithError(err).Fatal("Traffic light failed")
	}
}

func getCLIArgs(args []string) (options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	_, err := parser.ParseArgs(args)
	return opts, err
}

// Trap SIGINT and SIGTERM signals and call shutdown function
func signalHandler(shutdownFunc context.CancelFunc) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	sigReceived := <-sig
	log.WithField("signal", sigReceived.String()).Info("Received signal")
	shutdownFunc()
}
