package main

import (
	"context"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func chatCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:   "chat",
		Usage:  "Start an interactive chat session with Horizon",
		Action: chatAction(a),
	}
}

func chatAction(a *app) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		conv, err := a.newConversation(ctx)
		if err != nil {
			return err
		}

		if !a.noBanner {
			printBanner(a.out.w)
		}
		a.out.Start("Starting interactive LLM chat loop...")
		return runInteractive(ctx, a, conv)
	}
}

func isExitCommand(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	}
	return false
}

// runInteractive reads one line at a time and runs a turn for each. It returns on exit, quit or end of input.
// A failed turn is reported and the loop goes on.
func runInteractive(ctx context.Context, a *app, conv conversation) error {
	for {
		a.out.Prompt("You: ")

		line, err := a.readLine()
		if err == io.EOF {
			a.out.Println()
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to read input")
		}

		line = strings.TrimSpace(line)
		if isExitCommand(line) {
			a.out.Warn("Goodbye!")
			return nil
		}
		if line == "" {
			continue
		}

		text, err := conv.Send(ctx, line)
		if err != nil {
			a.logger.Info("turn failed", "error", err)
			a.out.Failure(err)
			continue
		}

		a.out.Reply(text)
		a.out.Println()
	}
}
