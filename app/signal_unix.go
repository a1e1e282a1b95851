// +build !windows

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// withInterrupt returns a context canceled on SIGINT, SIGTERM or when the
// returned function is called.
func withInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(c)
	}()
	return ctx, cancel
}
