// Package main starts the browser-facing web service.
//
// This process owns HTTP serving: module routing, session resolution, and
// static assets for the homeschool planner.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	servercmd "github.com/schooldesk/theschooldesk.app/internal/cmd/server"
	platformcmd "github.com/schooldesk/theschooldesk.app/internal/platform/cmd"
)

func main() {
	log.SetPrefix("[SERVER] ")
	cfg, err := servercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceServer, func(ctx context.Context) error {
		return servercmd.Run(ctx, cfg)
	})
	if err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
