// Package share hands commentary to the world outside the terminal: the
// system clipboard, or a user-configured share command.
package share

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable means no share target is configured on this machine.
var ErrUnavailable = errors.New("sharing is not available")

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// Copy writes text to the system clipboard.
func Copy(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// Sharer sends a titled piece of text to a share target.
type Sharer interface {
	Share(ctx context.Context, title, text string) error
}

// New returns a Sharer for the configured command line. An empty command
// yields a Sharer that always reports ErrUnavailable.
//
// The command is split on whitespace; the token {title} is replaced by the
// share title and the text is written to the command's stdin.
func New(command string) Sharer {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return unavailable{}
	}
	return &CommandSharer{Argv: argv}
}

type unavailable struct{}

func (unavailable) Share(context.Context, string, string) error { return ErrUnavailable }

// CommandSharer pipes the text into an external program.
type CommandSharer struct {
	Argv []string
}

// Share runs the command and waits for it to exit.
func (s *CommandSharer) Share(ctx context.Context, title, text string) error {
	if s == nil || len(s.Argv) == 0 {
		return ErrUnavailable
	}
	args := make([]string, len(s.Argv)-1)
	for i, a := range s.Argv[1:] {
		args[i] = strings.ReplaceAll(a, "{title}", title)
	}

	cmd := exec.CommandContext(ctx, s.Argv[0], args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("share via %s: %w: %s", s.Argv[0], err, msg)
		}
		return fmt.Errorf("share via %s: %w", s.Argv[0], err)
	}
	return nil
}
