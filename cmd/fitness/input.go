// ABOUTME: Terminal input helpers for reading the login password.
// ABOUTME: Passwords come from FITNESS_PASSWORD or a no-echo prompt.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

func resolvePassword(w io.Writer) (string, error) {
	if pw := os.Getenv("FITNESS_PASSWORD"); pw != "" {
		return pw, nil
	}
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return "", errors.New("no password given: set FITNESS_PASSWORD or run in a terminal")
	}
	fmt.Fprint(w, "Password: ")
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(string(pw), "\r\n"), nil
}
