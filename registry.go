package horizon

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Invoker is the capability the Conversation uses to reach local tools. Registry is the default
// implementation; a guarded implementation (allow-lists, confirmation prompts) can wrap it.
type Invoker interface {
	Specs() []ToolSpec
	Invoke(ctx context.Context, call FunctionCall) ToolResult
}

// ToolResult is the outcome of one tool call. Text is what the model sees. Err is set when the
// call failed and is kept for diagnostics only.
type ToolResult struct {
	ID   string
	Name string
	Text string
	Err  error
}

// Failed reports whether the tool call failed.
func (x ToolResult) Failed() bool {
	return x.Err != nil
}

// FunctionResponse converts the result into an input for the next model request.
func (x ToolResult) FunctionResponse() FunctionResponse {
	return FunctionResponse{
		ID:      x.ID,
		Name:    x.Name,
		Result:  x.Text,
		IsError: x.Failed(),
	}
}

// Registry holds the tools available to the model in a stable order.
type Registry struct {
	tools []Tool
	index map[string]Tool
}

// NewRegistry validates the tools and builds a Registry. Tool names must be unique.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		index: make(map[string]Tool, len(tools)),
	}

	for _, tool := range tools {
		spec := tool.Spec()
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.index[spec.Name]; ok {
			return nil, goerr.Wrap(ErrToolNameConflict, "tool is already registered", goerr.V("tool_name", spec.Name))
		}
		r.index[spec.Name] = tool
		r.tools = append(r.tools, tool)
	}

	return r, nil
}

// Specs returns the tool declarations in registration order.
func (r *Registry) Specs() []ToolSpec {
	specs := make([]ToolSpec, len(r.tools))
	for i, tool := range r.tools {
		specs[i] = tool.Spec()
	}
	return specs
}

// Invoke runs the named tool. It never returns an error: every failure is rendered into
// ToolResult.Text so the model can react to it.
func (r *Registry) Invoke(ctx context.Context, call FunctionCall) ToolResult {
	logger := LoggerFromContext(ctx)
	result := ToolResult{ID: call.ID, Name: call.Name}

	tool, ok := r.index[call.Name]
	if !ok {
		logger.Info("unknown tool requested", "call", call)
		result.Text = "Unknown tool: " + call.Name
		result.Err = goerr.Wrap(ErrUnknownTool, "tool is not registered", goerr.V("tool_name", call.Name))
		return result
	}

	spec := tool.Spec()
	if err := checkRequired(&spec, call.Arguments); err != nil {
		result.Text = toolErrorText(call.Name, err)
		result.Err = err
		return result
	}

	out, err := runTool(ctx, tool, call.Arguments)
	if err != nil {
		logger.Info("tool failed", "call", call, "error", err)
		result.Text = toolErrorText(call.Name, err)
		result.Err = err
		return result
	}

	logger.Debug("tool succeeded", "call", call, "result_bytes", len(out))
	result.Text = out
	return result
}

func runTool(ctx context.Context, tool Tool, args map[string]any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.New(fmt.Sprintf("tool panicked: %v", r))
		}
	}()
	return tool.Run(ctx, args)
}

func checkRequired(spec *ToolSpec, args map[string]any) error {
	for _, name := range spec.RequiredParameters() {
		if v, ok := args[name]; !ok || v == nil {
			return goerr.Wrap(ErrInvalidParameter, name+" is required", goerr.V("tool_name", spec.Name))
		}
	}
	return nil
}

func toolErrorText(name string, err error) string {
	return fmt.Sprintf("Error executing tool %s: %s", name, err.Error())
}
