package claude

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
)

const (
	DefaultModel = "claude-sonnet-4-20250514"
)

var (
	claudePromptScope   = ctxlog.NewScope("claude_prompt", ctxlog.EnabledBy("HORIZON_LOGGING_CLAUDE_PROMPT"))
	claudeResponseScope = ctxlog.NewScope("claude_response", ctxlog.EnabledBy("HORIZON_LOGGING_CLAUDE_RESPONSE"))
)

// generationParameters represents the parameters for text generation.
type generationParameters struct {
	// Temperature controls randomness in the output. Negative means the API default.
	Temperature float64

	// TopP controls diversity via nucleus sampling. Negative means the API default.
	TopP float64

	// MaxTokens limits the number of tokens to generate.
	MaxTokens int64
}

// Client is a client for the Claude API.
type Client struct {
	// client is the underlying Claude client.
	client *anthropic.Client

	// defaultModel is the model to use for chat completions.
	// It can be overridden using WithModel option.
	defaultModel string

	// generation parameters
	params generationParameters
}

// Option is a function that configures a Client.
type Option func(*Client)

// WithModel sets the default model to use for chat completions.
// Default: claude-sonnet-4-20250514
func WithModel(modelName string) Option {
	return func(c *Client) {
		if modelName != "" {
			c.defaultModel = modelName
		}
	}
}

// WithTemperature sets the temperature parameter for text generation.
// Range: 0.0 to 1.0
func WithTemperature(temp float64) Option {
	return func(c *Client) {
		c.params.Temperature = temp
	}
}

// WithTopP sets the top_p parameter for text generation.
// Range: 0.0 to 1.0
func WithTopP(topP float64) Option {
	return func(c *Client) {
		c.params.TopP = topP
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
// Default: 8192
func WithMaxTokens(maxTokens int64) Option {
	return func(c *Client) {
		c.params.MaxTokens = maxTokens
	}
}

// New creates a new client for the Claude API.
func New(ctx context.Context, apiKey string, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(horizon.ErrMissingCredential, "claude API key is required")
	}

	client := &Client{
		defaultModel: DefaultModel,
		params: generationParameters{
			Temperature: -1.0,
			TopP:        -1.0,
			MaxTokens:   8192,
		},
	}

	for _, option := range options {
		option(client)
	}

	newClient := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	client.client = &newClient

	return client, nil
}

// NewSession creates a new session for the Claude API.
func (c *Client) NewSession(ctx context.Context, options ...horizon.SessionOption) (horizon.Session, error) {
	cfg := horizon.NewSessionConfig(options...)
	return newSession(&realAPIClient{client: c.client}, cfg, c.defaultModel, c.params), nil
}

func newSession(client apiClient, cfg horizon.SessionConfig, model string, params generationParameters) *Session {
	tools := make([]anthropic.ToolUnionParam, 0, len(cfg.Tools()))
	for _, spec := range cfg.Tools() {
		tools = append(tools, convertTool(spec))
	}

	return &Session{
		apiClient:    client,
		defaultModel: model,
		system:       createSystemPrompt(cfg.SystemPrompt()),
		tools:        tools,
		params:       params,
	}
}

// Session is a session for the Claude chat. It keeps the message history and sends it on every request.
type Session struct {
	apiClient apiClient

	defaultModel string
	system       []anthropic.TextBlockParam
	tools        []anthropic.ToolUnionParam
	params       generationParameters

	messages []anthropic.MessageParam
}

// Checkpoint returns the current history length.
func (s *Session) Checkpoint() int {
	return len(s.messages)
}

// Rollback drops every message recorded after checkpoint.
func (s *Session) Rollback(checkpoint int) {
	if checkpoint >= 0 && checkpoint < len(s.messages) {
		s.messages = s.messages[:checkpoint]
	}
}

func (s *Session) createRequest(messages []anthropic.MessageParam) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.defaultModel),
		MaxTokens: s.params.MaxTokens,
		System:    s.system,
		Tools:     s.tools,
		Messages:  messages,
	}
	if s.params.Temperature >= 0 {
		params.Temperature = anthropic.Float(s.params.Temperature)
	}
	if s.params.TopP >= 0 {
		params.TopP = anthropic.Float(s.params.TopP)
	}
	return params
}

// GenerateContent sends input with the message history. The input and the reply are appended to
// the history only when the request succeeds.
func (s *Session) GenerateContent(ctx context.Context, input ...horizon.Input) (*horizon.Response, error) {
	userMessage, err := convertInputs(input...)
	if err != nil {
		return nil, err
	}

	messages := make([]anthropic.MessageParam, 0, len(s.messages)+1)
	messages = append(messages, s.messages...)
	messages = append(messages, userMessage)

	params := s.createRequest(messages)
	if logger := ctxlog.From(ctx, claudePromptScope); logger.Enabled(ctx, slog.LevelInfo) {
		logger.Info("Claude prompt", "model", s.defaultModel, "messages", messages)
	}

	resp, err := s.apiClient.MessagesNew(ctx, params)
	if err != nil {
		return nil, wrapAPIError(err)
	}

	response, err := processResponse(resp)
	if err != nil {
		return nil, err
	}

	if logger := ctxlog.From(ctx, claudeResponseScope); logger.Enabled(ctx, slog.LevelInfo) {
		logger.Info("Claude response",
			"stop_reason", resp.StopReason,
			"texts", response.Texts,
			"function_calls", response.FunctionCalls,
			"usage", map[string]any{
				"input_tokens":  resp.Usage.InputTokens,
				"output_tokens": resp.Usage.OutputTokens,
			},
		)
	}

	s.messages = append(s.messages, userMessage, resp.ToParam())
	return response, nil
}

// processResponse converts Claude response to horizon.Response
func processResponse(resp *anthropic.Message) (*horizon.Response, error) {
	response := &horizon.Response{
		InputToken:  int(resp.Usage.InputTokens),
		OutputToken: int(resp.Usage.OutputTokens),
	}

	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			response.Texts = append(response.Texts, block.Text)

		case "tool_use":
			args := map[string]any{}
			if len(block.Input) > 0 {
				if err := json.Unmarshal(block.Input, &args); err != nil {
					return nil, goerr.Wrap(err, "failed to unmarshal function arguments",
						goerr.V("tool_name", block.Name),
						goerr.V("input", string(block.Input)))
				}
			}

			response.FunctionCalls = append(response.FunctionCalls, &horizon.FunctionCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: args,
			})
		}
	}

	return response, nil
}

func wrapAPIError(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return goerr.Wrap(err, "failed to create message")
	}

	opts := []goerr.Option{goerr.V("status_code", apiErr.StatusCode)}
	if horizon.IsRateLimitStatus(apiErr.StatusCode) {
		opts = append(opts, goerr.Tag(horizon.ErrTagRateLimit))
	}
	return goerr.Wrap(err, "failed to create message", opts...)
}
