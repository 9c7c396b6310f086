// intercept - projectile interception solver
// Solves, verifies and converts engagement scenarios from the terminal.
//
// Commands:
//
//	solve    - Solve the scenarios in one file
//	batch    - Solve many files concurrently
//	verify   - Replay every solution frame by frame and check it hits
//	demo     - Track a spring-driven target with a turret
//	convert  - Convert between YAML scenarios and glTF scenes
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
)

func main() {
	// Context for clean shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}
