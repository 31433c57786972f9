package gemini

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-2.5-flash"
)

var (
	// geminiPromptScope is the logging scope for Gemini prompts
	geminiPromptScope = ctxlog.NewScope("gemini_prompt", ctxlog.EnabledBy("HORIZON_LOGGING_GEMINI_PROMPT"))

	// geminiResponseScope is the logging scope for Gemini responses
	geminiResponseScope = ctxlog.NewScope("gemini_response", ctxlog.EnabledBy("HORIZON_LOGGING_GEMINI_RESPONSE"))
)

// Client is a client for the Gemini API.
type Client struct {
	// client is the underlying Gemini client.
	client *genai.Client

	// defaultModel is the model to use for chat completions.
	// It can be overridden using WithModel option.
	defaultModel string

	// generationConfig contains the default generation parameters
	generationConfig *genai.GenerateContentConfig
}

// Option is a configuration option for the Gemini client.
type Option func(*Client)

// WithModel sets the model to use for text generation.
// Default: "gemini-2.5-flash"
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.defaultModel = model
		}
	}
}

// WithTemperature sets the temperature parameter for text generation.
// Range: 0.0 to 2.0
func WithTemperature(temp float32) Option {
	return func(c *Client) {
		c.generationConfig.Temperature = &temp
	}
}

// WithTopP sets the top_p parameter for text generation.
func WithTopP(topP float32) Option {
	return func(c *Client) {
		c.generationConfig.TopP = &topP
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(maxTokens int32) Option {
	return func(c *Client) {
		c.generationConfig.MaxOutputTokens = maxTokens
	}
}

// WithThinkingBudget sets the thinking budget for text generation.
// A value of -1 enables automatic thinking budget allocation. Default is 0 (thinking disabled).
func WithThinkingBudget(budget int32) Option {
	return func(c *Client) {
		c.generationConfig.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: &budget,
		}
	}
}

// New creates a new client for the Gemini API with an API key.
func New(ctx context.Context, apiKey string, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(horizon.ErrMissingCredential, "gemini API key is required")
	}

	var budget int32 = 0
	client := &Client{
		defaultModel: DefaultModel,
		generationConfig: &genai.GenerateContentConfig{
			ThinkingConfig: &genai.ThinkingConfig{
				ThinkingBudget: &budget,
			},
		},
	}

	for _, option := range options {
		option(client)
	}

	newClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gemini client")
	}

	client.client = newClient
	return client, nil
}

// NewSession creates a new session for the Gemini API.
// The system prompt and tool declarations are fixed for the lifetime of the session.
func (c *Client) NewSession(ctx context.Context, options ...horizon.SessionOption) (horizon.Session, error) {
	cfg := horizon.NewSessionConfig(options...)
	return newSession(&realAPIClient{client: c.client}, cfg, c.defaultModel, c.generationConfig), nil
}

func newSession(client apiClient, cfg horizon.SessionConfig, model string, base *genai.GenerateContentConfig) *Session {
	config := &genai.GenerateContentConfig{}
	if base != nil {
		*config = *base
	}

	if cfg.SystemPrompt() != "" {
		config.SystemInstruction = &genai.Content{
			Role:  "user",
			Parts: []*genai.Part{{Text: cfg.SystemPrompt()}},
		}
	}

	if len(cfg.Tools()) > 0 {
		decls := make([]*genai.FunctionDeclaration, len(cfg.Tools()))
		for i, spec := range cfg.Tools() {
			decls[i] = convertTool(spec)
		}
		config.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	return &Session{
		apiClient:    client,
		model:        model,
		config:       config,
		generatedIDs: make(map[string]struct{}),
	}
}

// Session is a session for the Gemini chat. It keeps the whole content history and sends it on every request.
type Session struct {
	apiClient apiClient
	model     string
	config    *genai.GenerateContentConfig

	history []*genai.Content

	// generatedIDs holds call IDs assigned locally to calls the model sent without one.
	// They are stripped again before the results go back.
	generatedIDs map[string]struct{}
}

// Checkpoint returns the current history length.
func (s *Session) Checkpoint() int {
	return len(s.history)
}

// Rollback drops every content recorded after checkpoint.
func (s *Session) Rollback(checkpoint int) {
	if checkpoint >= 0 && checkpoint < len(s.history) {
		s.history = s.history[:checkpoint]
	}
}

// GenerateContent sends input with the whole history. The input and the reply are appended to the
// history only when the request succeeds.
func (s *Session) GenerateContent(ctx context.Context, input ...horizon.Input) (*horizon.Response, error) {
	parts, err := convertInputs(input...)
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		if part.FunctionResponse == nil {
			continue
		}
		if _, ok := s.generatedIDs[part.FunctionResponse.ID]; ok {
			part.FunctionResponse.ID = ""
		}
	}

	userContent := &genai.Content{Role: "user", Parts: parts}
	contents := make([]*genai.Content, 0, len(s.history)+1)
	contents = append(contents, s.history...)
	contents = append(contents, userContent)

	logPrompt(ctx, s.config, contents)

	result, err := s.apiClient.GenerateContent(ctx, s.model, contents, s.config)
	if err != nil {
		return nil, wrapAPIError(err)
	}

	response, reply, err := processResponse(result)
	if err != nil {
		return nil, err
	}
	for _, fc := range response.FunctionCalls {
		if fc.ID == "" {
			fc.ID = fc.Name + "_" + uuid.New().String()
			s.generatedIDs[fc.ID] = struct{}{}
		}
	}

	logResponse(ctx, result, response)

	s.history = append(s.history, userContent)
	if reply != nil {
		s.history = append(s.history, reply)
	}

	return response, nil
}

// processResponse converts the first candidate into horizon.Response and returns the candidate content for the history.
func processResponse(resp *genai.GenerateContentResponse) (*horizon.Response, *genai.Content, error) {
	response := &horizon.Response{}
	if resp == nil || len(resp.Candidates) == 0 {
		return response, nil, nil
	}

	if resp.UsageMetadata != nil {
		response.InputToken = int(resp.UsageMetadata.PromptTokenCount)
		response.OutputToken = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	candidate := resp.Candidates[0]
	switch candidate.FinishReason {
	case genai.FinishReasonMalformedFunctionCall:
		return nil, nil, goerr.New("model returned a malformed function call",
			goerr.V("finish_reason", candidate.FinishReason),
			goerr.V("finish_message", candidate.FinishMessage))
	case genai.FinishReasonProhibitedContent, genai.FinishReasonSafety:
		return nil, nil, goerr.New("response blocked by safety filter",
			goerr.V("finish_reason", candidate.FinishReason))
	}

	if candidate.Content == nil {
		return response, nil, nil
	}

	for _, part := range candidate.Content.Parts {
		if part.Thought {
			continue
		}
		if part.Text != "" {
			response.Texts = append(response.Texts, part.Text)
		}
		if part.FunctionCall != nil {
			response.FunctionCalls = append(response.FunctionCalls, &horizon.FunctionCall{
				ID:        part.FunctionCall.ID,
				Name:      part.FunctionCall.Name,
				Arguments: part.FunctionCall.Args,
			})
		}
	}

	reply := candidate.Content
	if reply.Role == "" {
		reply.Role = "model"
	}

	return response, reply, nil
}

// wrapAPIError wraps an API error and tags it when the service rejected the request for rate or quota reasons.
func wrapAPIError(err error) error {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError

	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return goerr.Wrap(err, "failed to generate content")
	}

	opts := []goerr.Option{
		goerr.V("code", apiErr.Code),
		goerr.V("status", apiErr.Status),
	}
	if horizon.IsRateLimitStatus(apiErr.Code) || apiErr.Status == "RESOURCE_EXHAUSTED" {
		opts = append(opts, goerr.Tag(horizon.ErrTagRateLimit))
	}
	return goerr.Wrap(err, "failed to generate content", opts...)
}

func logPrompt(ctx context.Context, config *genai.GenerateContentConfig, contents []*genai.Content) {
	logger := ctxlog.From(ctx, geminiPromptScope)
	if !logger.Enabled(ctx, slog.LevelInfo) {
		return
	}

	var messages []map[string]any
	for _, content := range contents {
		for _, part := range content.Parts {
			switch {
			case part.Text != "":
				messages = append(messages, map[string]any{
					"role":    content.Role,
					"type":    "text",
					"content": part.Text,
				})
			case part.FunctionCall != nil:
				messages = append(messages, map[string]any{
					"role":      content.Role,
					"type":      "function_call",
					"name":      part.FunctionCall.Name,
					"arguments": part.FunctionCall.Args,
				})
			case part.FunctionResponse != nil:
				messages = append(messages, map[string]any{
					"role":     content.Role,
					"type":     "function_response",
					"name":     part.FunctionResponse.Name,
					"response": part.FunctionResponse.Response,
				})
			}
		}
	}

	systemPrompt := ""
	if config.SystemInstruction != nil && len(config.SystemInstruction.Parts) > 0 {
		systemPrompt = config.SystemInstruction.Parts[0].Text
	}

	logger.Info("Gemini prompt",
		"system_prompt", systemPrompt,
		"messages", messages,
	)
}

func logResponse(ctx context.Context, result *genai.GenerateContentResponse, response *horizon.Response) {
	logger := ctxlog.From(ctx, geminiResponseScope)
	if !logger.Enabled(ctx, slog.LevelInfo) {
		return
	}

	var finishReason string
	if len(result.Candidates) > 0 {
		finishReason = string(result.Candidates[0].FinishReason)
	}

	logger.Info("Gemini response",
		"finish_reason", finishReason,
		"texts", response.Texts,
		"function_calls", response.FunctionCalls,
		"usage", map[string]any{
			"prompt_tokens":     response.InputToken,
			"candidates_tokens": response.OutputToken,
		},
	)
}
