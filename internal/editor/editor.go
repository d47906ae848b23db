// Package editor opens a note file in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// fallback is used when $EDITOR is unset.
const fallback = "nano"

// Open launches the editor on path, wiring the terminal through, and waits
// for it to exit.
func Open(path string) error {
	name := os.Getenv("EDITOR")
	if name == "" {
		name = fallback
	}
	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", name, err)
	}
	return nil
}
