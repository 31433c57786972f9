package main

import (
	"golang.org/x/term"
)

// readHiddenLine reads a line from the terminal without echoing it.
func readHiddenLine(fd int, out *printer) (string, error) {
	raw, err := term.ReadPassword(fd)
	out.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
