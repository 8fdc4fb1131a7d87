// Package main boots the container: migrations, the superuser bootstrap,
// then the HTTP server, in that fixed order.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	entrypointcmd "github.com/schooldesk/theschooldesk.app/internal/cmd/entrypoint"
	platformcmd "github.com/schooldesk/theschooldesk.app/internal/platform/cmd"
)

func main() {
	log.SetPrefix("[ENTRYPOINT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := 0
	err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceEntrypoint, func(ctx context.Context) error {
		code = entrypointcmd.Run(ctx, entrypointcmd.DefaultConfig())
		return nil
	})
	stop()
	if err != nil {
		log.Fatalf("entrypoint failed: %v", err)
	}
	os.Exit(code)
}
