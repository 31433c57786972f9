// Package tools provides the built-in local tools offered to the model: readFile, writeFile and
// runCommand. They run with the privileges of the invoking user and apply no path or command
// restrictions; wrap the registry with a custom horizon.Invoker to add guardrails.
package tools

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
)

// Default returns the built-in tools in declaration order.
func Default() []horizon.Tool {
	return []horizon.Tool{
		&ReadFile{},
		&WriteFile{},
		&RunCommand{},
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", goerr.Wrap(horizon.ErrInvalidParameter, name+" is required")
	}
	s, ok := v.(string)
	if !ok {
		return "", goerr.Wrap(horizon.ErrInvalidParameter, name+" must be a string", goerr.V("value", v))
	}
	return s, nil
}
