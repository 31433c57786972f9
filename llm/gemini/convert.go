package gemini

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
	"github.com/m-mizutani/horizon/internal/schema"
	"google.golang.org/genai"
)

func convertTool(spec horizon.ToolSpec) *genai.FunctionDeclaration {
	parameters := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema),
		// Gemini requires an empty slice, not nil
		Required: schema.CollectRequired(spec.Parameters),
	}

	for name, param := range spec.Parameters {
		parameters.Properties[name] = convertParameterToSchema(param)
	}

	return &genai.FunctionDeclaration{
		Name:        spec.Name,
		Description: spec.Description,
		Parameters:  parameters,
	}
}

func convertParameterToSchema(param *horizon.Parameter) *genai.Schema {
	s := &genai.Schema{
		Type:        getGenaiType(param.Type),
		Description: param.Description,
	}

	if len(param.Enum) > 0 {
		s.Enum = param.Enum
	}

	if param.Properties != nil {
		s.Properties = make(map[string]*genai.Schema)
		for name, prop := range param.Properties {
			s.Properties[name] = convertParameterToSchema(prop)
		}
		s.Required = schema.CollectRequired(param.Properties)
	}

	if param.Items != nil {
		s.Items = convertParameterToSchema(param.Items)
	}

	if param.Type == horizon.TypeString && param.Pattern != "" {
		s.Pattern = param.Pattern
	}

	return s
}

func getGenaiType(paramType horizon.ParameterType) genai.Type {
	switch paramType {
	case horizon.TypeString:
		return genai.TypeString
	case horizon.TypeNumber:
		return genai.TypeNumber
	case horizon.TypeInteger:
		return genai.TypeInteger
	case horizon.TypeBoolean:
		return genai.TypeBoolean
	case horizon.TypeArray:
		return genai.TypeArray
	case horizon.TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// convertInputs builds the parts of one user content. Every tool result of a batch goes into the same content.
func convertInputs(input ...horizon.Input) ([]*genai.Part, error) {
	parts := make([]*genai.Part, 0, len(input))

	for _, in := range input {
		switch v := in.(type) {
		case horizon.Text:
			parts = append(parts, &genai.Part{Text: string(v)})

		case horizon.FunctionResponse:
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:   v.ID,
					Name: v.Name,
					Response: map[string]any{
						"result": v.Result,
					},
				},
			})

		default:
			return nil, goerr.Wrap(horizon.ErrInvalidParameter, "invalid input", goerr.V("input", in))
		}
	}

	return parts, nil
}
