// Package main applies the bundled database migrations.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	migratecmd "github.com/schooldesk/theschooldesk.app/internal/cmd/migrate"
	platformcmd "github.com/schooldesk/theschooldesk.app/internal/platform/cmd"
)

func main() {
	log.SetPrefix("[MIGRATE] ")
	cfg, err := migratecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMigrate, func(ctx context.Context) error {
		return migratecmd.Run(ctx, cfg)
	})
	if err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
}
