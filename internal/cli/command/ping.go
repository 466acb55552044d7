// Package command provides CLI command definitions for berth-cli.
package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

// PingCommand returns the ping command.
func PingCommand() *cli.Command {
	return &cli.Command{
		Name:   "ping",
		Usage:  "Check that a server is listening on the socket",
		Action: pingAction,
	}
}

func pingAction(c *cli.Context) error {
	client := NewClient(c)
	flags := ParseGlobalFlags(c)

	ctx, cancel := context.WithTimeout(context.Background(), flags.Timeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		PrintError("ping failed: %v", err)
		return fmt.Errorf("no server listening on %s", client.SocketPath())
	}

	// The dial only proves something accepted the connection; the health
	// endpoint proves it is this server and it is serving.
	var health struct {
		Status string `json:"status"`
	}
	if err := client.Get(ctx, "/api/healthz", &health); err != nil {
		return fmt.Errorf("socket accepts connections but health check failed: %w", err)
	}

	fmt.Printf("server is healthy on %s\n", client.SocketPath())
	return nil
}
