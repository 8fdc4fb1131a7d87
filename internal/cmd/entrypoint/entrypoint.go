// Package entrypoint runs the container boot sequence: migrations, the
// superuser bootstrap, then the HTTP server, as three child processes with
// inherited stdio.
package entrypoint

import (
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/platform/timeouts"
)

// Config names the binaries the sequence runs, in order.
type Config struct {
	MigratePath   string
	SuperuserPath string
	ServerPath    string
	// ShutdownGrace is how long a signaled child may take to exit before it
	// is killed. Defaults to timeouts.ChildShutdown.
	ShutdownGrace time.Duration
}

// DefaultConfig points at the binaries as laid out in the container image.
func DefaultConfig() Config {
	return Config{
		MigratePath:   "/app/migrate",
		SuperuserPath: "/app/createsuperuser",
		ServerPath:    "/app/server",
	}
}

func (c Config) grace() time.Duration {
	if c.ShutdownGrace > 0 {
		return c.ShutdownGrace
	}
	return timeouts.ChildShutdown
}

// Run executes the boot sequence and returns the exit code the process
// should report. Setup steps that fail are logged and the sequence
// continues, so the server still starts when a migration or the superuser
// bootstrap misbehaves; the exit code mirrors the server's.
func Run(ctx context.Context, cfg Config) int {
	steps := []struct {
		name string
		path string
	}{
		{"migrate", cfg.MigratePath},
		{"createsuperuser", cfg.SuperuserPath},
	}
	for _, step := range steps {
		if ctx.Err() != nil {
			log.Printf("shutdown requested, aborting boot sequence")
			return 0
		}
		if code := runChild(ctx, step.name, step.path, cfg.grace()); code != 0 {
			log.Printf("%s exited with code %d, continuing", step.name, code)
		}
	}
	if ctx.Err() != nil {
		log.Printf("shutdown requested, aborting boot sequence")
		return 0
	}
	return runChild(ctx, "server", cfg.ServerPath, cfg.grace())
}

// runChild runs one binary with inherited stdio. On context cancellation it
// forwards SIGTERM and kills the child after the grace period.
func runChild(ctx context.Context, name, path string, grace time.Duration) int {
	child := exec.Command(path)
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Start(); err != nil {
		log.Printf("start %s: %v", name, err)
		return 1
	}

	done := make(chan error, 1)
	go func() { done <- child.Wait() }()

	select {
	case err := <-done:
		return exitCode(err)
	case <-ctx.Done():
		log.Printf("forwarding termination to %s", name)
		_ = child.Process.Signal(syscall.SIGTERM)
		select {
		case err := <-done:
			return exitCode(err)
		case <-time.After(grace):
			log.Printf("killing %s after %s", name, grace)
			_ = child.Process.Kill()
			return exitCode(<-done)
		}
	}
}

// exitCode maps a wait error to the shell convention, including 128+signal
// for signaled children.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return 128 + int(status.Signal())
		}
		return exitErr.ExitCode()
	}
	return 1
}
