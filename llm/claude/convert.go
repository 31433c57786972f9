package claude

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
	"github.com/m-mizutani/horizon/internal/schema"
)

func convertTool(spec horizon.ToolSpec) anthropic.ToolUnionParam {
	tool := &anthropic.ToolParam{
		Name: spec.Name,
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: schema.PropertiesToJSONSchema(spec.Parameters),
			Required:   schema.CollectRequired(spec.Parameters),
		},
	}
	if spec.Description != "" {
		tool.Description = anthropic.String(spec.Description)
	}

	return anthropic.ToolUnionParam{OfTool: tool}
}

// emptyResult stands in for a tool result with no text. The API rejects empty text blocks.
const emptyResult = "(no output)"

func toolResultBlock(resp horizon.FunctionResponse) anthropic.ContentBlockParamUnion {
	text := resp.Result
	if text == "" {
		text = emptyResult
	}

	return anthropic.ContentBlockParamUnion{
		OfToolResult: &anthropic.ToolResultBlockParam{
			ToolUseID: resp.ID,
			IsError:   anthropic.Bool(resp.IsError),
			Content: []anthropic.ToolResultBlockParamContentUnion{
				{OfText: &anthropic.TextBlockParam{Text: text}},
			},
		},
	}
}

func createSystemPrompt(prompt string) []anthropic.TextBlockParam {
	if prompt == "" {
		return nil
	}
	return []anthropic.TextBlockParam{{Text: prompt}}
}

// convertInputs builds one user message. All tool results of a batch go into the same message.
func convertInputs(input ...horizon.Input) (anthropic.MessageParam, error) {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(input))

	for _, in := range input {
		switch v := in.(type) {
		case horizon.Text:
			blocks = append(blocks, anthropic.NewTextBlock(string(v)))

		case horizon.FunctionResponse:
			blocks = append(blocks, toolResultBlock(v))

		default:
			return anthropic.MessageParam{}, goerr.Wrap(horizon.ErrInvalidParameter, "invalid input", goerr.V("input", in))
		}
	}

	return anthropic.NewUserMessage(blocks...), nil
}
