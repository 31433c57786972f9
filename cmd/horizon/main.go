package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/horizon"
	"golang.org/x/term"
)

var version = "dev"

func main() {
	// .env is optional
	_ = godotenv.Load()

	a := newApp(os.Stdin, os.Stdout)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		a.readSecret = func() (string, error) {
			return readHiddenLine(fd, a.out)
		}
	}

	os.Exit(run(context.Background(), a, os.Args, os.Stderr))
}

// run executes the command line and returns the exit code. A failure is reported once on stderr; the
// configured logger gets the error with its values at debug level.
func run(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	if err := newCommand(a).Run(ctx, args); err != nil {
		a.logger.Debug("command failed", "error", err)
		if !errors.Is(err, horizon.ErrMissingCredential) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
