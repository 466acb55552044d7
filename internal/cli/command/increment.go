// Package command provides CLI command definitions for berth-cli.
package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

// incrementResult mirrors the server's /api/increment response.
type incrementResult struct {
	Count int64 `json:"count"`
}

// IncrementCommand returns the increment command.
func IncrementCommand() *cli.Command {
	return &cli.Command{
		Name:    "increment",
		Aliases: []string{"inc"},
		Usage:   "Increment the server counter",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "times",
				Usage: "Number of increments to perform",
				Value: 1,
			},
		},
		Action: incrementAction,
	}
}

func incrementAction(c *cli.Context) error {
	times := c.Int("times")
	if times < 1 {
		return fmt.Errorf("--times must be at least 1, got %d", times)
	}

	client := NewClient(c)
	flags := ParseGlobalFlags(c)

	ctx, cancel := context.WithTimeout(context.Background(), flags.Timeout)
	defer cancel()

	var result incrementResult
	for i := 0; i < times; i++ {
		if err := client.Post(ctx, "/api/increment", &result); err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
	}

	if flags.Output == "json" {
		return PrintJSON(result)
	}

	fmt.Printf("count: %d\n", result.Count)
	return nil
}
