package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon/store"
	"github.com/urfave/cli/v3"
)

func executeCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "execute",
		Usage:     "Run a single prompt and exit",
		ArgsUsage: "<prompt...>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			prompt := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(prompt) == "" {
				return goerr.New("prompt is required")
			}

			conv, err := a.newConversation(ctx)
			if err != nil {
				return err
			}
			return runSingleShot(ctx, a, conv, prompt)
		},
	}
}

// runSingleShot counts the invocation, then runs one full turn. A failed turn is reported but is not
// an error of the command.
func runSingleShot(ctx context.Context, a *app, conv conversation, prompt string) error {
	count, err := a.store.Usage().Increment()
	if err != nil {
		a.logger.Warn("failed to update usage counter", "error", err)
	} else if store.InWarningBand(count) {
		a.out.Warn(fmt.Sprintf("Notice: %d single prompts used (advisory threshold %d). Run `horizon usage --reset` to reset the counter.",
			count, store.WarningThreshold))
	}

	a.out.Info(fmt.Sprintf("Executing single prompt: %q...", prompt))

	text, err := conv.Send(ctx, prompt)
	if err != nil {
		a.logger.Info("turn failed", "error", err)
		a.out.Failure(err)
		return nil
	}

	a.out.Reply(text)
	return nil
}
