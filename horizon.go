package horizon

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

//go:generate go tool moq -out mock/mock_gen.go -pkg mock . LLMClient Session

// Conversation is core structure of the package. It owns one model session and drives the
// tool-calling loop for every message sent to it.
type Conversation struct {
	llm LLMClient

	config

	// session is created on the first Send and reused afterwards.
	session Session
}

const (
	DefaultLoopLimit = 32
)

type config struct {
	loopLimit    int
	systemPrompt string
	invoker      Invoker

	toolBatchHook    ToolBatchHook
	toolRequestHook  ToolRequestHook
	toolResponseHook ToolResponseHook
	logger           *slog.Logger
}

// New creates a new Conversation.
func New(llmClient LLMClient, options ...Option) *Conversation {
	emptyRegistry, _ := NewRegistry()

	x := &Conversation{
		llm: llmClient,
		config: config{
			loopLimit: DefaultLoopLimit,
			invoker:   emptyRegistry,

			toolBatchHook:    defaultToolBatchHook,
			toolRequestHook:  defaultToolRequestHook,
			toolResponseHook: defaultToolResponseHook,
			logger:           slog.New(slog.DiscardHandler),
		},
	}

	for _, opt := range options {
		opt(&x.config)
	}

	x.logger.Debug("conversation created",
		"loop_limit", x.loopLimit,
		"tools_count", len(x.invoker.Specs()),
	)

	return x
}

// Option is the type for the options of the Conversation.
type Option func(*config)

// WithLoopLimit sets the maximum number of model requests in one turn (the first message plus every
// tool-result round trip). Values below 1 are ignored.
func WithLoopLimit(loopLimit int) Option {
	return func(c *config) {
		if loopLimit > 0 {
			c.loopLimit = loopLimit
		}
	}
}

// WithSystemPrompt sets the system instruction. Default is no system prompt.
func WithSystemPrompt(systemPrompt string) Option {
	return func(c *config) {
		c.systemPrompt = systemPrompt
	}
}

// WithInvoker sets the tool capability. Default is an empty Registry.
func WithInvoker(invoker Invoker) Option {
	return func(c *config) {
		c.invoker = invoker
	}
}

// WithToolBatchHook sets a callback invoked when the model requests one or more tools, before any of
// them runs. An error aborts the turn.
func WithToolBatchHook(hook ToolBatchHook) Option {
	return func(c *config) {
		c.toolBatchHook = hook
	}
}

// WithToolRequestHook sets a callback invoked just before each tool call. An error aborts the turn.
func WithToolRequestHook(hook ToolRequestHook) Option {
	return func(c *config) {
		c.toolRequestHook = hook
	}
}

// WithToolResponseHook sets a callback invoked after each tool call, including failed ones.
// An error aborts the turn.
func WithToolResponseHook(hook ToolResponseHook) Option {
	return func(c *config) {
		c.toolResponseHook = hook
	}
}

// WithLogger sets the logger. Default is discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Send runs one full turn: it sends prompt, answers every tool call the model makes, and returns
// the model's final text. When the turn fails, the session history is rolled back to where it was
// before the turn so no tool call is left unanswered.
func (x *Conversation) Send(ctx context.Context, prompt string) (string, error) {
	logger := x.logger.With("horizon.turn_id", uuid.New().String())
	ctx = ctxWithLogger(ctx, logger)
	logger.Info("starting turn", "prompt", prompt, "has_session", x.session != nil)

	if x.session == nil {
		ssn, err := x.llm.NewSession(ctx,
			WithSessionSystemPrompt(x.systemPrompt),
			WithSessionTools(x.invoker.Specs()...),
		)
		if err != nil {
			return "", goerr.Wrap(err, "failed to create session")
		}
		x.session = ssn
	}

	checkpoint := x.session.Checkpoint()
	text, err := x.runTurn(ctx, prompt)
	if err != nil {
		x.session.Rollback(checkpoint)
		logger.Info("turn failed", "error", err)
		return "", err
	}

	return text, nil
}

func (x *Conversation) runTurn(ctx context.Context, prompt string) (string, error) {
	logger := LoggerFromContext(ctx)
	input := []Input{Text(prompt)}

	for i := 0; i < x.loopLimit; i++ {
		logger.Debug("sending input", "loop", i, "input", input)

		resp, err := x.session.GenerateContent(ctx, input...)
		if err != nil {
			return "", err
		}

		if len(resp.FunctionCalls) == 0 {
			logger.Info("turn completed", "loop", i, "input_token", resp.InputToken, "output_token", resp.OutputToken)
			return resp.Text(), nil
		}

		input, err = x.invokeTools(ctx, resp.FunctionCalls)
		if err != nil {
			return "", err
		}
	}

	return "", goerr.Wrap(ErrLoopLimitExceeded, "conversation stopped", goerr.V("loop_limit", x.loopLimit))
}

// invokeTools runs calls sequentially in arrival order and returns one response per call, in the same order.
func (x *Conversation) invokeTools(ctx context.Context, calls []*FunctionCall) ([]Input, error) {
	if err := x.toolBatchHook(ctx, calls); err != nil {
		return nil, goerr.Wrap(err, "failed to call ToolBatchHook")
	}

	results := make([]Input, 0, len(calls))
	for _, call := range calls {
		if err := x.toolRequestHook(ctx, *call); err != nil {
			return nil, goerr.Wrap(err, "failed to call ToolRequestHook", goerr.V("call", call))
		}

		result := x.invoker.Invoke(ctx, *call)

		if err := x.toolResponseHook(ctx, result); err != nil {
			return nil, goerr.Wrap(err, "failed to call ToolResponseHook", goerr.V("call", call))
		}

		results = append(results, result.FunctionResponse())
	}

	return results, nil
}
