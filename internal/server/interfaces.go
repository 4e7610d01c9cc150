package server

import "context"

// Server defines the lifecycle contract of the note server.
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received and the server has drained.
	RunServer()

	// Run serves until ctx is done, then shuts down gracefully. It returns
	// early with an error if the listener cannot be opened.
	Run(ctx context.Context) error
}
