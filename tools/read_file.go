package tools

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
)

// ReadFile returns the whole content of a local file as text.
type ReadFile struct{}

func (t *ReadFile) Spec() horizon.ToolSpec {
	return horizon.ToolSpec{
		Name:        "readFile",
		Description: "Read the contents of a local file",
		Parameters: map[string]*horizon.Parameter{
			"path": {
				Type:        horizon.TypeString,
				Description: "The absolute or relative path to the file",
				Required:    true,
			},
		},
	}
}

func (t *ReadFile) Run(ctx context.Context, args map[string]any) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}

	return string(data), nil
}
