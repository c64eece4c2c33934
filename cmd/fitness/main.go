// ABOUTME: Entry point for fitness CLI.
// ABOUTME: Invokes the root Cobra command and renders errors for humans.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ %s", describeError(err)))
		os.Exit(1)
	}
}
