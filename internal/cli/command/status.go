// Package command provides CLI command definitions for berth-cli.
package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

// statusResult mirrors the server's /api/status response.
type statusResult struct {
	Status    string `json:"status"`
	Counter   int64  `json:"counter"`
	Hostname  string `json:"hostname"`
	Timestamp string `json:"timestamp"`
}

// StatusCommand returns the status command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:    "status",
		Aliases: []string{"st"},
		Usage:   "Show server status",
		Action:  statusAction,
	}
}

func statusAction(c *cli.Context) error {
	client := NewClient(c)
	flags := ParseGlobalFlags(c)

	ctx, cancel := context.WithTimeout(context.Background(), flags.Timeout)
	defer cancel()

	var result statusResult
	if err := client.Get(ctx, "/api/status", &result); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if flags.Output == "json" {
		return PrintJSON(result)
	}

	fmt.Printf("Server Status\n")
	fmt.Printf("=============\n\n")
	fmt.Printf("Status:    %s\n", result.Status)
	fmt.Printf("Counter:   %d\n", result.Counter)
	fmt.Printf("Hostname:  %s\n", result.Hostname)
	fmt.Printf("Timestamp: %s\n", result.Timestamp)
	fmt.Printf("Socket:    %s\n", client.SocketPath())
	return nil
}
