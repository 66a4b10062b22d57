package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/cairotools/scarb-eject/internal/cli"
	"github.com/cairotools/scarb-eject/pkg/eject"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(eject.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(eject.ExitCodeForError(err))
	}
}
