package openai

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
	"github.com/m-mizutani/horizon/internal/schema"
	"github.com/sashabaranov/go-openai"
)

// convertTool converts horizon.ToolSpec to openai.Tool
func convertTool(spec horizon.ToolSpec) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        spec.Name,
			Description: spec.Description,
			Parameters:  schema.ToolParameters(spec),
		},
	}
}

// emptyResult stands in for a tool result with no text. An empty content field is dropped from the
// request, and the API requires it on tool messages.
const emptyResult = "(no output)"

// convertInputs converts inputs to chat messages. Each tool result becomes its own tool message, in order.
func convertInputs(input ...horizon.Input) ([]openai.ChatCompletionMessage, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(input))

	for _, in := range input {
		switch v := in.(type) {
		case horizon.Text:
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: string(v),
			})

		case horizon.FunctionResponse:
			content := v.Result
			if content == "" {
				content = emptyResult
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    content,
				Name:       v.Name,
				ToolCallID: v.ID,
			})

		default:
			return nil, goerr.Wrap(horizon.ErrInvalidParameter, "invalid input", goerr.V("input", in))
		}
	}

	return messages, nil
}
