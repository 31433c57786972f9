package tools

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
)

// RunCommand executes a command line through the system shell.
type RunCommand struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

func (t *RunCommand) Spec() horizon.ToolSpec {
	return horizon.ToolSpec{
		Name:        "runCommand",
		Description: "Execute a shell command in the terminal",
		Parameters: map[string]*horizon.Parameter{
			"command": {
				Type:        horizon.TypeString,
				Description: "The shell command to execute",
				Required:    true,
			},
		},
	}
}

// Run returns stdout. When stdout is empty and stderr is not, it returns "stderr: <stderr>".
// A command that cannot start or exits non-zero is an error carrying its stderr.
func (t *RunCommand) Run(ctx context.Context, args map[string]any) (string, error) {
	command, err := stringArg(args, "command")
	if err != nil {
		return "", err
	}

	cmd := shellCommand(ctx, command)
	cmd.Dir = t.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	horizon.LoggerFromContext(ctx).Debug("running command", "command", command)

	if err := cmd.Run(); err != nil {
		msg := "command failed"
		if s := strings.TrimSpace(stderr.String()); s != "" {
			msg += ": " + s
		}
		return "", goerr.Wrap(err, msg, goerr.V("command", command))
	}

	if stdout.Len() == 0 && stderr.Len() > 0 {
		return "stderr: " + stderr.String(), nil
	}
	return stdout.String(), nil
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "/bin/sh", "-c", command)
}
