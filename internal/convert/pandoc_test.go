// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor implements executor with canned results and records the
// invocation for inspection.
type fakeExecutor struct {
	lookErr  error
	output   []byte
	runErr   error
	gotName  string
	gotArgs  []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.gotName = name
	f.gotArgs = args
	if f.runErr != nil {
		return nil, f.runErr
	}
	return f.output, nil
}

func TestPandocStrategyConvert(t *testing.T) {
	fe := &fakeExecutor{output: []byte("# Jane Doe\n")}
	s := &PandocStrategy{exec: fe}

	got, err := s.Convert(context.Background(), "cv.docx")
	require.NoError(t, err)
	assert.Equal(t, "# Jane Doe\n", got)
	assert.Equal(t, "/usr/bin/pandoc", fe.gotName)
	assert.Equal(t, []string{"cv.docx", "-t", "markdown"}, fe.gotArgs)
}

func TestPandocStrategyBinaryMissing(t *testing.T) {
	s := &PandocStrategy{exec: &fakeExecutor{lookErr: errors.New("executable file not found")}}

	_, err := s.Convert(context.Background(), "cv.odt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pandoc not found on PATH")
}

func TestPandocStrategyRunFailure(t *testing.T) {
	s := &PandocStrategy{exec: &fakeExecutor{runErr: errors.New("exit status 64")}}

	_, err := s.Convert(context.Background(), "cv.doc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 64")
}

func TestPandocStrategyIncludesStderr(t *testing.T) {
	exitErr := &exec.ExitError{Stderr: []byte("pandoc: cv.doc: withBinaryFile: does not exist\n")}
	s := &PandocStrategy{exec: &fakeExecutor{runErr: exitErr}}

	_, err := s.Convert(context.Background(), "cv.doc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "withBinaryFile: does not exist")
}
