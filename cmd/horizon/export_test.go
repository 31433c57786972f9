package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/horizon"
	"github.com/m-mizutani/horizon/store"
)

type App = app

var (
	RunInteractive = runInteractive
	RunSingleShot  = runSingleShot
	RunAuth        = runAuth
	RunRemoveAuth  = runRemoveAuth
	RunUsage       = runUsage
	NewCommand     = newCommand
	Run            = run
)

// NewTestApp builds an app reading input, writing to the returned buffer and backed by a store in a
// temporary directory. client is returned by the factory for every provider.
func NewTestApp(t *testing.T, input string, client horizon.LLMClient) (*App, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	a := newApp(strings.NewReader(input), &out)

	s, err := store.Open(filepath.Join(t.TempDir(), "config.yaml"))
	gt.NoError(t, err)
	a.store = s

	a.newClient = func(ctx context.Context, provider, apiKey, model string) (horizon.LLMClient, error) {
		return client, nil
	}
	return a, &out
}

func (a *App) Store() *store.File {
	return a.store
}

func (a *App) NewConversation(ctx context.Context) (*horizon.Conversation, error) {
	return a.newConversation(ctx)
}
