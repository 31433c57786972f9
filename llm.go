package horizon

import (
	"context"
	"log/slog"
	"strings"
)

// LLMClient is a client for each LLM service.
type LLMClient interface {
	NewSession(ctx context.Context, options ...SessionOption) (Session, error)
}

// Session is a single ongoing exchange with a model. The session keeps the conversation history;
// callers only send new inputs.
type Session interface {
	// GenerateContent sends inputs and returns the model's reply. The inputs and the reply are
	// appended to the history only when the call succeeds.
	GenerateContent(ctx context.Context, input ...Input) (*Response, error)

	// Checkpoint returns a marker of the current history length.
	Checkpoint() int

	// Rollback drops every history entry recorded after checkpoint.
	Rollback(checkpoint int)
}

// FunctionCall is a tool invocation requested by the model.
type FunctionCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// LogValue returns a slog.Value for the FunctionCall
func (x FunctionCall) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", x.ID),
		slog.String("name", x.Name),
		slog.Any("arguments", x.Arguments),
	)
}

// Response is a general response type for each LLM.
type Response struct {
	Texts         []string
	FunctionCalls []*FunctionCall
	InputToken    int
	OutputToken   int
}

// Text returns all text parts joined in order.
func (r *Response) Text() string {
	return strings.Join(r.Texts, "")
}

// Input is a message sent to the model: either Text or a FunctionResponse.
type Input interface {
	isInput() restrictedValue
	LogValue() slog.Value
	String() string
}

type restrictedValue struct{}

// Text is a text input as prompt.
type Text string

func (t Text) isInput() restrictedValue {
	return restrictedValue{}
}

func (t Text) LogValue() slog.Value {
	return slog.StringValue(string(t))
}

func (t Text) String() string {
	return string(t)
}

// FunctionResponse answers one FunctionCall. Result is always the text shown to the model;
// IsError marks results that describe a failure.
type FunctionResponse struct {
	ID      string
	Name    string
	Result  string
	IsError bool
}

func (f FunctionResponse) isInput() restrictedValue {
	return restrictedValue{}
}

// String returns a string representation of the FunctionResponse
func (f FunctionResponse) String() string {
	if f.IsError {
		return f.Name + " (error)"
	}
	return f.Name + " (success)"
}

// LogValue returns a slog.Value for the FunctionResponse
func (f FunctionResponse) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", f.ID),
		slog.String("name", f.Name),
		slog.Int("result_bytes", len(f.Result)),
		slog.Bool("is_error", f.IsError),
	)
}

// SessionOption configures a new Session.
type SessionOption func(*SessionConfig)

// SessionConfig is the configuration handed to LLMClient.NewSession.
type SessionConfig struct {
	systemPrompt string
	tools        []ToolSpec
}

// NewSessionConfig builds a SessionConfig from options.
func NewSessionConfig(options ...SessionOption) SessionConfig {
	cfg := SessionConfig{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

func (c SessionConfig) SystemPrompt() string {
	return c.systemPrompt
}

func (c SessionConfig) Tools() []ToolSpec {
	return c.tools
}

// WithSessionSystemPrompt sets the system instruction of the session.
func WithSessionSystemPrompt(prompt string) SessionOption {
	return func(cfg *SessionConfig) {
		cfg.systemPrompt = prompt
	}
}

// WithSessionTools sets the tool declarations advertised to the model. Order is preserved.
func WithSessionTools(specs ...ToolSpec) SessionOption {
	return func(cfg *SessionConfig) {
		cfg.tools = append(cfg.tools, specs...)
	}
}
