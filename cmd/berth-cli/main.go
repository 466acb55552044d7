// Package main provides the entry point for berth-cli.
//
// berth-cli talks to a berth-server over its unix socket.
package main

import (
	"fmt"
	"os"

	"github.com/harborui/berth/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
