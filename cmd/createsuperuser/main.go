// Package main ensures the administrative account exists.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	superusercmd "github.com/schooldesk/theschooldesk.app/internal/cmd/createsuperuser"
	platformcmd "github.com/schooldesk/theschooldesk.app/internal/platform/cmd"
)

func main() {
	log.SetPrefix("[SUPERUSER] ")
	cfg, err := superusercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceCreateSuperuser, func(ctx context.Context) error {
		return superusercmd.Run(ctx, cfg)
	})
	if err != nil {
		log.Fatalf("superuser bootstrap failed: %v", err)
	}
}
