package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
	"github.com/sashabaranov/go-openai"
)

const (
	DefaultModel = "gpt-5"
)

var (
	openaiPromptScope   = ctxlog.NewScope("openai_prompt", ctxlog.EnabledBy("HORIZON_LOGGING_OPENAI_PROMPT"))
	openaiResponseScope = ctxlog.NewScope("openai_response", ctxlog.EnabledBy("HORIZON_LOGGING_OPENAI_RESPONSE"))
)

// generationParameters represents the parameters for text generation.
type generationParameters struct {
	Temperature     float32
	TopP            float32
	MaxTokens       int
	ReasoningEffort string
}

// Client is a client for the OpenAI API.
type Client struct {
	// client is the underlying OpenAI client.
	client *openai.Client

	// defaultModel is the model to use for chat completions.
	// It can be overridden using WithModel option.
	defaultModel string

	// baseURL is the base URL for the API. Empty means the official endpoint.
	baseURL string

	// generation parameters
	params generationParameters
}

// Option is a function that configures a Client.
type Option func(*Client)

// WithModel sets the default model to use for chat completions.
// Default: gpt-5
func WithModel(modelName string) Option {
	return func(c *Client) {
		if modelName != "" {
			c.defaultModel = modelName
		}
	}
}

// WithTemperature sets the temperature parameter for text generation.
// Range: 0.0 to 2.0
func WithTemperature(temp float32) Option {
	return func(c *Client) {
		c.params.Temperature = temp
	}
}

// WithTopP sets the top_p parameter for text generation.
func WithTopP(topP float32) Option {
	return func(c *Client) {
		c.params.TopP = topP
	}
}

// WithMaxTokens sets the maximum number of completion tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(c *Client) {
		c.params.MaxTokens = maxTokens
	}
}

// WithReasoningEffort sets the reasoning effort of reasoning models ("minimal", "low", "medium", "high").
func WithReasoningEffort(effort string) Option {
	return func(c *Client) {
		c.params.ReasoningEffort = effort
	}
}

// WithBaseURL sets the API base URL, for OpenAI compatible endpoints.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// New creates a new client for the OpenAI API.
func New(ctx context.Context, apiKey string, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(horizon.ErrMissingCredential, "openai API key is required")
	}

	client := &Client{
		defaultModel: DefaultModel,
	}

	for _, option := range options {
		option(client)
	}

	config := openai.DefaultConfig(apiKey)
	if client.baseURL != "" {
		config.BaseURL = client.baseURL
	}
	client.client = openai.NewClientWithConfig(config)

	return client, nil
}

// NewSession creates a new session for the OpenAI API.
func (c *Client) NewSession(ctx context.Context, options ...horizon.SessionOption) (horizon.Session, error) {
	cfg := horizon.NewSessionConfig(options...)
	return newSession(&realAPIClient{client: c.client}, cfg, c.defaultModel, c.params), nil
}

func newSession(client apiClient, cfg horizon.SessionConfig, model string, params generationParameters) *Session {
	tools := make([]openai.Tool, 0, len(cfg.Tools()))
	for _, spec := range cfg.Tools() {
		tools = append(tools, convertTool(spec))
	}

	return &Session{
		apiClient:    client,
		defaultModel: model,
		systemPrompt: cfg.SystemPrompt(),
		tools:        tools,
		params:       params,
	}
}

// Session is a session for the OpenAI chat. It keeps the message history and sends it on every request.
type Session struct {
	apiClient apiClient

	defaultModel string
	systemPrompt string
	tools        []openai.Tool
	params       generationParameters

	// messages holds the history without the system message.
	messages []openai.ChatCompletionMessage
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

func (s *Session) createRequest(messages []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	all := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	if s.systemPrompt != "" {
		all = append(all, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: s.systemPrompt,
		})
	}
	all = append(all, messages...)

	req := openai.ChatCompletionRequest{
		Model:               s.defaultModel,
		Messages:            all,
		Temperature:         s.params.Temperature,
		TopP:                s.params.TopP,
		MaxCompletionTokens: s.params.MaxTokens,
		ReasoningEffort:     s.params.ReasoningEffort,
	}
	if len(s.tools) > 0 {
		req.Tools = s.tools
	}
	return req
}

// GenerateContent sends input with the message history. The input and the reply are appended to
// the history only when the request succeeds.
func (s *Session) GenerateContent(ctx context.Context, input ...horizon.Input) (*horizon.Response, error) {
	inputMessages, err := convertInputs(input...)
	if err != nil {
		return nil, err
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(s.messages)+len(inputMessages))
	messages = append(messages, s.messages...)
	messages = append(messages, inputMessages...)

	req := s.createRequest(messages)
	if logger := ctxlog.From(ctx, openaiPromptScope); logger.Enabled(ctx, slog.LevelInfo) {
		logger.Info("OpenAI prompt", "model", req.Model, "messages", req.Messages)
	}

	resp, err := s.apiClient.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, wrapAPIError(err)
	}

	response := &horizon.Response{
		InputToken:  resp.Usage.PromptTokens,
		OutputToken: resp.Usage.CompletionTokens,
	}
	if len(resp.Choices) == 0 {
		s.messages = messages
		return response, nil
	}

	message := resp.Choices[0].Message
	if message.Content != "" {
		response.Texts = append(response.Texts, message.Content)
	}

	for _, toolCall := range message.ToolCalls {
		args := map[string]any{}
		if toolCall.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
				return nil, goerr.Wrap(err, "failed to unmarshal function arguments",
					goerr.V("tool_name", toolCall.Function.Name),
					goerr.V("arguments", toolCall.Function.Arguments))
			}
		}

		response.FunctionCalls = append(response.FunctionCalls, &horizon.FunctionCall{
			ID:        toolCall.ID,
			Name:      toolCall.Function.Name,
			Arguments: args,
		})
	}

	if logger := ctxlog.From(ctx, openaiResponseScope); logger.Enabled(ctx, slog.LevelInfo) {
		logger.Info("OpenAI response",
			"finish_reason", resp.Choices[0].FinishReason,
			"texts", response.Texts,
			"function_calls", response.FunctionCalls,
			"usage", resp.Usage,
		)
	}

	s.messages = append(messages, message)
	return response, nil
}

func wrapAPIError(err error) error {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError

	status := 0
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	opts := []goerr.Option{goerr.V("status_code", status)}
	if horizon.IsRateLimitStatus(status) {
		opts = append(opts, goerr.Tag(horizon.ErrTagRateLimit))
	}
	return goerr.Wrap(err, "failed to create chat completion", opts...)
}
