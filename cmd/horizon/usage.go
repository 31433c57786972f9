package main

import (
	"context"
	"fmt"

	"github.com/m-mizutani/horizon/store"
	"github.com/urfave/cli/v3"
)

func usageCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "usage",
		Usage: "Show the number of single prompts run",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "Reset the counter to 0",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runUsage(ctx, a, cmd.Bool("reset"))
		},
	}
}

func runUsage(ctx context.Context, a *app, reset bool) error {
	usage := a.store.Usage()
	if reset {
		if err := usage.Reset(); err != nil {
			return err
		}
		a.out.Success("Usage counter reset.")
		return nil
	}

	count := usage.Get()
	a.out.Println(fmt.Sprintf("Single prompts used: %d (advisory threshold %d)", count, store.WarningThreshold))
	if store.InWarningBand(count) {
		a.out.Warn("You are close to the advisory threshold.")
	}
	return nil
}
