// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const pandocBin = "pandoc"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PandocStrategy converts documents to Markdown by running the pandoc
// binary found on PATH. pandoc handles .docx, .doc, .odt and passes
// .md and .txt through essentially unchanged.
type PandocStrategy struct {
	exec executor
}

// NewPandocStrategy returns a strategy using the system pandoc binary.
func NewPandocStrategy() *PandocStrategy {
	return &PandocStrategy{exec: &osExecutor{}}
}

// Convert runs pandoc over the file and returns its Markdown output.
// Availability is checked per call so a pandoc installed after startup
// is picked up without a restart.
func (s *PandocStrategy) Convert(ctx context.Context, path string) (string, error) {
	bin, err := s.exec.LookPath(pandocBin)
	if err != nil {
		return "", fmt.Errorf("pandoc not found on PATH: %w", err)
	}

	out, err := s.exec.Output(ctx, bin, path, "-t", "markdown")
	if err != nil {
		// Output captures pandoc's stderr on the exit error; surface
		// it so the caller-visible message carries the diagnostic, not
		// just "exit status N".
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("converting %s with pandoc: %v: %s",
				path, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("converting %s with pandoc: %w", path, err)
	}
	return string(out), nil
}
