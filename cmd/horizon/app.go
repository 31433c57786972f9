package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
	"github.com/m-mizutani/horizon/store"
	"github.com/m-mizutani/horizon/tools"
)

const systemPrompt = `You are Horizon, a highly capable AI CLI assistant.
You help the user navigate their terminal, write code, and solve problems.
You have access to tools to read and write files, and execute shell commands.
Be concise and helpful.`

// conversation is what the drivers need from horizon.Conversation.
type conversation interface {
	Send(ctx context.Context, prompt string) (string, error)
}

// app carries every collaborator of a command. Flags fill it in before the action runs.
type app struct {
	store     *store.File
	provider  string
	model     string
	loopLimit int
	noBanner  bool

	input  *bufio.Reader
	out    *printer
	logger *slog.Logger

	newClient clientFactory

	// readSecret reads an API key. It echoes input unless stdin is a terminal.
	readSecret func() (string, error)
}

func newApp(in io.Reader, out io.Writer) *app {
	a := &app{
		provider:  providerGemini,
		loopLimit: horizon.DefaultLoopLimit,
		input:     bufio.NewReader(in),
		out:       newPrinter(out),
		logger:    slog.New(slog.DiscardHandler),
		newClient: newLLMClient,
	}
	a.readSecret = a.readLine
	return a
}

// readLine returns the next input line without its line break. io.EOF is returned only when no data is left.
func (a *app) readLine() (string, error) {
	line, err := a.input.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// requireCredential returns the stored key of the selected provider. When none is stored it tells the
// user how to add one and returns ErrMissingCredential.
func (a *app) requireCredential() (string, error) {
	key := a.store.Credential(a.provider).Get()
	if key == "" {
		a.out.Error("❌ Missing API key. Please run `horizon auth` first.")
		return "", goerr.Wrap(horizon.ErrMissingCredential, "no API key stored", goerr.V("provider", a.provider))
	}
	return key, nil
}

// newConversation builds a Conversation over the selected provider with the built-in tools.
func (a *app) newConversation(ctx context.Context) (*horizon.Conversation, error) {
	key, err := a.requireCredential()
	if err != nil {
		return nil, err
	}

	client, err := a.newClient(ctx, a.provider, key, a.model)
	if err != nil {
		return nil, err
	}

	registry, err := horizon.NewRegistry(tools.Default()...)
	if err != nil {
		return nil, err
	}

	return horizon.New(client,
		horizon.WithSystemPrompt(systemPrompt),
		horizon.WithInvoker(registry),
		horizon.WithLoopLimit(a.loopLimit),
		horizon.WithLogger(a.logger),
		horizon.WithToolBatchHook(func(ctx context.Context, calls []*horizon.FunctionCall) error {
			a.out.Progress("[Horizon is thinking and using tools...]")
			return nil
		}),
		horizon.WithToolRequestHook(func(ctx context.Context, call horizon.FunctionCall) error {
			a.out.Progress("  Running " + call.Name + "...")
			return nil
		}),
	), nil
}
