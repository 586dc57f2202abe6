// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"resume.pdf", KindPDF},
		{"Resume.PDF", KindPDF},
		{"cv.docx", KindConvertible},
		{"cv.doc", KindConvertible},
		{"cv.odt", KindConvertible},
		{"resume.md", KindConvertible},
		{"resume.txt", KindConvertible},
		{"resume.rtf", KindUnknown},
		{"resume", KindUnknown},
		{"archive.tar.gz", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(existing, []byte("hello"), 0o644))

	f, ok := Resolve(existing)
	require.True(t, ok)
	assert.Equal(t, existing, f.Path)
	assert.Equal(t, KindConvertible, f.Kind)

	missing := filepath.Join(dir, "nope.pdf")
	f, ok = Resolve(missing)
	assert.False(t, ok)
	// The expanded path must survive for the not-found message.
	assert.Equal(t, missing, f.Path)
	assert.Equal(t, KindPDF, f.Kind)
}

func TestResolveExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	target := filepath.Join(home, "resume.md")
	require.NoError(t, os.WriteFile(target, []byte("# me"), 0o644))

	f, ok := Resolve("~/resume.md")
	require.True(t, ok)
	assert.Equal(t, target, f.Path)
}
