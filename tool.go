package horizon

import (
	"context"
	"maps"
	"regexp"
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// ToolSpec is the specification of a tool.
// It is advertised to the LLM once, when the session is created.
type ToolSpec struct {
	// Name is the unique identifier for the tool.
	Name string

	// Description is a human-readable description of what the tool does.
	Description string

	// Parameters defines the input parameters that the tool accepts.
	Parameters map[string]*Parameter
}

// Validate validates the tool specification.
func (s *ToolSpec) Validate() error {
	eb := goerr.NewBuilder(goerr.V("tool", s.Name))
	if s.Name == "" {
		return eb.Wrap(ErrInvalidTool, "name is required")
	}

	for name, param := range s.Parameters {
		if err := param.Validate(); err != nil {
			return eb.Wrap(err, "invalid parameter", goerr.V("parameter", name))
		}
	}

	return nil
}

// RequiredParameters returns the names of parameters marked as required, sorted by name.
func (s *ToolSpec) RequiredParameters() []string {
	var required []string
	for _, name := range slices.Sorted(maps.Keys(s.Parameters)) {
		if s.Parameters[name].Required {
			required = append(required, name)
		}
	}
	return required
}

// ParameterType is the type of a parameter.
type ParameterType string

const (
	TypeString  ParameterType = "string"
	TypeNumber  ParameterType = "number"
	TypeInteger ParameterType = "integer"
	TypeBoolean ParameterType = "boolean"
	TypeArray   ParameterType = "array"
	TypeObject  ParameterType = "object"
)

// Parameter is a parameter of a tool.
type Parameter struct {
	// Type is the type of the parameter.
	Type ParameterType

	// Description is the description of the parameter.
	// It should explain the purpose and expected format of the parameter.
	Description string

	// Required marks the parameter as mandatory. The registry rejects calls that omit it.
	Required bool

	// Enum is the list of allowed values for the parameter.
	Enum []string

	// Properties is the properties of the parameter. Used only for TypeObject.
	Properties map[string]*Parameter

	// Items is the element type. Used only for TypeArray.
	Items *Parameter

	// Pattern is a regular expression a string parameter must match.
	Pattern string
}

// Validate validates the parameter.
func (p *Parameter) Validate() error {
	eb := goerr.NewBuilder(goerr.V("type", p.Type))

	switch p.Type {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean:
	case TypeObject:
		if p.Properties == nil {
			return eb.Wrap(ErrInvalidParameter, "properties is required for object type")
		}
		for _, prop := range p.Properties {
			if err := prop.Validate(); err != nil {
				return eb.Wrap(err, "invalid property")
			}
		}
	case TypeArray:
		if p.Items == nil {
			return eb.Wrap(ErrInvalidParameter, "items is required for array type")
		}
		if err := p.Items.Validate(); err != nil {
			return eb.Wrap(err, "invalid items")
		}
	case "":
		return eb.Wrap(ErrInvalidParameter, "type is required")
	default:
		return eb.Wrap(ErrInvalidParameter, "unsupported type")
	}

	if p.Pattern != "" {
		if p.Type != TypeString {
			return eb.Wrap(ErrInvalidParameter, "pattern is only allowed for string type")
		}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return eb.Wrap(ErrInvalidParameter, "invalid pattern", goerr.V("pattern", p.Pattern))
		}
	}

	return nil
}

// Tool is specification and execution of an action that can be called by the LLM.
type Tool interface {
	// Spec returns the specification of the tool.
	Spec() ToolSpec

	// Run is the execution of the tool. A returned error does not abort the conversation;
	// it is rendered as text and handed back to the LLM.
	Run(ctx context.Context, args map[string]any) (string, error)
}
