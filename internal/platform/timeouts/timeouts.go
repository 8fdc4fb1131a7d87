// Package timeouts defines shared timeout constants used across commands.
// Centralizing these values prevents drift between process boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ChildShutdown is how long the entrypoint waits for a child process to
// exit after a termination signal before killing it.
const ChildShutdown = 10 * time.Second

// ManagementCommand caps a single run of a management command such as the
// migration runner or the superuser bootstrap.
const ManagementCommand = 2 * time.Minute
