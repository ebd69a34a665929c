package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"adframe/internal/cli"
)

// main runs the adframe command tree. SIGINT and SIGTERM cancel the command
// context so serve can shut down gracefully; the exit code then reflects
// the signal.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var caught atomic.Int32
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		value := <-quit
		if s, ok := value.(syscall.Signal); ok {
			caught.Store(int32(s))
		}
		cancel()
	}()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "adframe:", err)
		os.Exit(1)
	}
	if s := caught.Load(); s != 0 {
		os.Exit(128 + int(s))
	}
}
