// Package sigctx provides a context that is canceled by an interrupt or
// termination signal.
package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// New returns a context canceled on SIGINT or SIGTERM.
func New() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx
}
