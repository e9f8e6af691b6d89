package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ag14774/monoranger/internal/poetry"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode passes the underlying tool's exit code through; everything else
// maps to 1.
func exitCode(err error) int {
	var cmdErr *poetry.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return 1
}
