package main

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
	"github.com/m-mizutani/horizon/store"
	"github.com/urfave/cli/v3"
)

func newCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "horizon",
		Usage:   "Horizon CLI - Your personal AI terminal assistant",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "provider",
				Value:   providerGemini,
				Sources: cli.EnvVars("HORIZON_PROVIDER"),
				Usage:   "LLM provider (gemini, claude, openai)",
			},
			&cli.StringFlag{
				Name:    "model",
				Sources: cli.EnvVars("HORIZON_MODEL"),
				Usage:   "Model name. Empty selects the provider default",
			},
			&cli.IntFlag{
				Name:    "loop-limit",
				Value:   horizon.DefaultLoopLimit,
				Sources: cli.EnvVars("HORIZON_LOOP_LIMIT"),
				Usage:   "Maximum model requests in one turn",
			},
			&cli.StringFlag{
				Name:    "config",
				Sources: cli.EnvVars("HORIZON_CONFIG"),
				Usage:   "Path of the credential and usage store (default: <user config dir>/horizon-cli/config.yaml)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Sources: cli.EnvVars("HORIZON_LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Sources: cli.EnvVars("HORIZON_LOG_FORMAT"),
				Usage:   "Log format (text, json)",
			},
			&cli.BoolFlag{
				Name:    "no-banner",
				Sources: cli.EnvVars("HORIZON_NO_BANNER"),
				Usage:   "Do not print the banner when a chat starts",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return a.configure(ctx, cmd)
		},
		Action: chatAction(a),
		Commands: []*cli.Command{
			authCommand(a),
			removeAuthCommand(a),
			chatCommand(a),
			executeCommand(a),
			usageCommand(a),
		},
	}
}

// configure fills app from the parsed flags.
func (a *app) configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logger, err := newLogger(cmd.String("log-level"), cmd.String("log-format"), os.Stderr)
	if err != nil {
		return ctx, err
	}
	a.logger = logger
	ctx = ctxlog.With(ctx, logger)

	a.provider = cmd.String("provider")
	if err := validateProvider(a.provider); err != nil {
		return ctx, err
	}
	a.model = cmd.String("model")
	a.noBanner = cmd.Bool("no-banner")

	a.loopLimit = cmd.Int("loop-limit")
	if a.loopLimit < 1 {
		return ctx, goerr.New("loop-limit must be 1 or greater", goerr.V("loop_limit", a.loopLimit))
	}

	path := cmd.String("config")
	if path == "" {
		if path, err = store.DefaultPath(); err != nil {
			return ctx, err
		}
	}
	if a.store, err = store.Open(path); err != nil {
		return ctx, err
	}

	logger.Debug("configured",
		"provider", a.provider,
		"model", a.model,
		"loop_limit", a.loopLimit,
		"store", path,
	)
	return ctx, nil
}
