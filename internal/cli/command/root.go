// Package command provides CLI command definitions for berth-cli.
package command

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/harborui/berth/internal/cli/connection"
	"github.com/harborui/berth/internal/infra/buildinfo"
	"github.com/harborui/berth/internal/server/config"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "berth-cli",
		Usage:   "Berth command-line tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			StatusCommand(),
			IncrementCommand(),
			PingCommand(),
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "socket",
			Aliases: []string{"s"},
			Usage:   "Path to the server unix socket",
			EnvVars: []string{"HARBOR_SOCKET", "BERTH_SOCKET"},
			Value:   config.DefaultSocketPath,
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Usage:   "Request timeout",
			Value:   10 * time.Second,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json",
			Value:   "text",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Socket  string
	Timeout time.Duration
	Output  string // text, json
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Socket:  c.String("socket"),
		Timeout: c.Duration("timeout"),
		Output:  c.String("output"),
	}
}

// NewClient builds a socket client from the global flags.
func NewClient(c *cli.Context) *connection.Client {
	flags := ParseGlobalFlags(c)
	return connection.NewClient(flags.Socket, flags.Timeout)
}

// PrintJSON writes v to stdout as indented JSON.
func PrintJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
