package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when there is nothing to convert and no
// editor to ask for content.
var ErrNoEditor = errors.New("no input file, stdin is a terminal, and $EDITOR is not set")

// launchEditor opens $EDITOR on a scratch Markdown file and returns
// whatever was saved. The scratch file is removed afterwards.
func launchEditor() (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return "", ErrNoEditor
	}

	tmp, err := os.CreateTemp("", "md2wiki-*.md")
	if err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	path := tmp.Name()
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	defer os.Remove(path)

	// $EDITOR may carry arguments ("code --wait").
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...) // #nosec G204 -- $EDITOR is the user's own command
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w", parts[0], err)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- scratch file created above
	if err != nil {
		return "", fmt.Errorf("reading scratch file: %w", err)
	}
	return string(content), nil
}
