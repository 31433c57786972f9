package horizon_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/horizon"
)

type panicTool struct{}

func (t *panicTool) Spec() horizon.ToolSpec {
	return horizon.ToolSpec{Name: "panic", Description: "always panics"}
}

func (t *panicTool) Run(ctx context.Context, args map[string]any) (string, error) {
	panic("boom")
}

type requiredTool struct{}

func (t *requiredTool) Spec() horizon.ToolSpec {
	return horizon.ToolSpec{
		Name: "needsPath",
		Parameters: map[string]*horizon.Parameter{
			"path": {Type: horizon.TypeString, Required: true},
		},
	}
}

func (t *requiredTool) Run(ctx context.Context, args map[string]any) (string, error) {
	return "ran", nil
}

func TestRegistryUnknownTool(t *testing.T) {
	r := newRegistry(t, &echoTool{name: "alpha"})

	result := r.Invoke(context.Background(), horizon.FunctionCall{Name: "nope"})
	gt.Equal(t, result.Text, "Unknown tool: nope")
	gt.True(t, result.Failed())
	gt.True(t, errors.Is(result.Err, horizon.ErrUnknownTool))
}

func TestRegistryNameConflict(t *testing.T) {
	_, err := horizon.NewRegistry(&echoTool{name: "alpha"}, &echoTool{name: "alpha"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, horizon.ErrToolNameConflict))
}

func TestRegistryInvalidSpec(t *testing.T) {
	_, err := horizon.NewRegistry(&echoTool{name: ""})
	gt.True(t, errors.Is(err, horizon.ErrInvalidTool))
}

func TestRegistryPanicIsContained(t *testing.T) {
	r := newRegistry(t, &panicTool{})

	result := r.Invoke(context.Background(), horizon.FunctionCall{Name: "panic"})
	gt.True(t, result.Failed())
	gt.True(t, strings.HasPrefix(result.Text, "Error executing tool panic:"))
	gt.S(t, result.Text).Contains("boom")
}

func TestRegistryRequiredParameter(t *testing.T) {
	r := newRegistry(t, &requiredTool{})

	result := r.Invoke(context.Background(), horizon.FunctionCall{Name: "needsPath", Arguments: map[string]any{}})
	gt.True(t, result.Failed())
	gt.S(t, result.Text).Contains("path is required")

	result = r.Invoke(context.Background(), horizon.FunctionCall{Name: "needsPath", Arguments: map[string]any{"path": "x"}})
	gt.False(t, result.Failed())
	gt.Equal(t, result.Text, "ran")
}

func TestRegistrySpecsOrder(t *testing.T) {
	r := newRegistry(t, &echoTool{name: "c"}, &echoTool{name: "a"}, &echoTool{name: "b"})

	var names []string
	for _, spec := range r.Specs() {
		names = append(names, spec.Name)
	}
	gt.Equal(t, names, []string{"c", "a", "b"})
}

func TestToolResultFunctionResponse(t *testing.T) {
	ok := horizon.ToolResult{ID: "1", Name: "a", Text: "fine"}
	gt.Equal(t, ok.FunctionResponse(), horizon.FunctionResponse{ID: "1", Name: "a", Result: "fine"})

	ng := horizon.ToolResult{ID: "2", Name: "a", Text: "Error executing tool a: x", Err: errors.New("x")}
	gt.True(t, ng.FunctionResponse().IsError)
}
