// internal/appshell/shell.go
// Process wrapper for the ztab binary: signal-aware context, default help
// on bare invocation, normalized exit codes.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs the app entry point with OS plumbing attached. Table
// generation is CPU-bound but can take a while at large interval counts,
// so interrupts cancel through the context.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
