package schema

import (
	"maps"
	"slices"

	"github.com/m-mizutani/horizon"
)

// CollectRequired returns the names of required properties, sorted by name.
func CollectRequired(properties map[string]*horizon.Parameter) []string {
	required := []string{}
	for _, name := range slices.Sorted(maps.Keys(properties)) {
		if properties[name].Required {
			required = append(required, name)
		}
	}
	return required
}

// ParameterToJSONSchema converts horizon.Parameter to a JSON Schema map.
func ParameterToJSONSchema(param *horizon.Parameter) map[string]any {
	schema := map[string]any{
		"type": string(param.Type),
	}

	if param.Description != "" {
		schema["description"] = param.Description
	}

	if param.Type == horizon.TypeObject && param.Properties != nil {
		schema["properties"] = PropertiesToJSONSchema(param.Properties)
		if required := CollectRequired(param.Properties); len(required) > 0 {
			schema["required"] = required
		}
	}

	if param.Type == horizon.TypeArray && param.Items != nil {
		schema["items"] = ParameterToJSONSchema(param.Items)
	}

	if param.Enum != nil {
		schema["enum"] = param.Enum
	}
	if param.Pattern != "" {
		schema["pattern"] = param.Pattern
	}

	return schema
}

// PropertiesToJSONSchema converts a parameter set to the "properties" member of an object schema.
func PropertiesToJSONSchema(params map[string]*horizon.Parameter) map[string]any {
	props := make(map[string]any, len(params))
	for name, param := range params {
		props[name] = ParameterToJSONSchema(param)
	}
	return props
}

// ToolParameters renders the whole argument object of a tool as a JSON Schema map.
func ToolParameters(spec horizon.ToolSpec) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": PropertiesToJSONSchema(spec.Parameters),
		"required":   CollectRequired(spec.Parameters),
	}
}
