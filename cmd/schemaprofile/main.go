// Package main provides the schemaprofile binary entry point.
// Schemaprofile extracts minimal, self-consistent profiles from schema
// documents given a set of seed class names.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/c360studio/schemaprofile/commands"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
