package horizon

import "context"

type (
	ToolBatchHook    func(ctx context.Context, calls []*FunctionCall) error
	ToolRequestHook  func(ctx context.Context, call FunctionCall) error
	ToolResponseHook func(ctx context.Context, result ToolResult) error
)

func defaultToolBatchHook(ctx context.Context, calls []*FunctionCall) error {
	return nil
}

func defaultToolRequestHook(ctx context.Context, call FunctionCall) error {
	return nil
}

func defaultToolResponseHook(ctx context.Context, result ToolResult) error {
	return nil
}
