package main

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func authCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Configure the API key of the selected provider",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runAuth(ctx, a)
		},
	}
}

func removeAuthCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "remove-auth",
		Usage: "Remove the stored API key of the selected provider",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runRemoveAuth(ctx, a)
		},
	}
}

// runAuth asks for a key until a non-blank one is entered and stores it.
func runAuth(ctx context.Context, a *app) error {
	a.out.Notice("Welcome to Horizon CLI Authentication")

	cred := a.store.Credential(a.provider)
	if cred.Get() != "" {
		a.out.Warn("An API key is already configured. Entering a new one will overwrite it.")
	}

	for {
		a.out.Prompt("Enter your " + providerLabels[a.provider] + " API key: ")
		key, err := a.readSecret()
		if err != nil {
			return goerr.Wrap(err, "failed to read API key")
		}

		if strings.TrimSpace(key) == "" {
			a.out.Error("API key cannot be empty")
			continue
		}

		if err := cred.Set(key); err != nil {
			return err
		}
		a.out.Success("✅ API key securely saved locally.")
		a.logger.Debug("credential stored", "provider", a.provider, "path", a.store.Path())
		return nil
	}
}

func runRemoveAuth(ctx context.Context, a *app) error {
	cred := a.store.Credential(a.provider)
	if cred.Get() == "" {
		a.out.Warn("No API key is configured.")
		return nil
	}

	if err := cred.Delete(); err != nil {
		return err
	}
	a.out.Success("API key removed.")
	return nil
}
