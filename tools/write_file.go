package tools

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
)

// WriteFile creates or overwrites a local file.
type WriteFile struct{}

func (t *WriteFile) Spec() horizon.ToolSpec {
	return horizon.ToolSpec{
		Name:        "writeFile",
		Description: "Write content to a local file",
		Parameters: map[string]*horizon.Parameter{
			"path": {
				Type:        horizon.TypeString,
				Description: "The path where the file will be written",
				Required:    true,
			},
			"content": {
				Type:        horizon.TypeString,
				Description: "The content to write to the file",
				Required:    true,
			},
		},
	}
}

func (t *WriteFile) Run(ctx context.Context, args map[string]any) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}
	content, err := stringArg(args, "content")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write file", goerr.V("path", path))
	}

	return "Successfully wrote to " + path, nil
}
