package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/hwdbkit/hwdbcheck/internal/cli"
	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(hwdbcheck.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(hwdbcheck.ExitCodeForError(err))
	}
}
