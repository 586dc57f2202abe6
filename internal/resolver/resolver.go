// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolver locates the resume file and classifies it by
// extension so the converter can pick a strategy.
package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind is the conversion category of a resume file.
type Kind string

const (
	// KindPDF routes to direct page-text extraction.
	KindPDF Kind = "pdf"
	// KindConvertible routes to the generic document-to-Markdown
	// converter (.docx, .doc, .odt, .md, .txt).
	KindConvertible Kind = "convertible"
	// KindUnknown gets a best-effort generic conversion with a raw
	// text fallback.
	KindUnknown Kind = "unknown"
)

// convertibleExts are the extensions handled by the generic converter.
var convertibleExts = map[string]bool{
	".docx": true,
	".doc":  true,
	".odt":  true,
	".md":   true,
	".txt":  true,
}

// File is a resolved resume file: the expanded path and its kind.
type File struct {
	Path string
	Kind Kind
}

// Resolve expands user-relative notation in path and checks that the
// file exists. The expanded path is returned in both outcomes so the
// caller can embed it in a not-found message.
func Resolve(path string) (File, bool) {
	expanded := expandUser(path)
	f := File{Path: expanded, Kind: Classify(expanded)}
	if _, err := os.Stat(expanded); err != nil {
		return f, false
	}
	return f, true
}

// Classify maps the lowercase file extension to a Kind.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return KindPDF
	case convertibleExts[ext]:
		return KindConvertible
	default:
		return KindUnknown
	}
}

// expandUser replaces a leading "~" with the current user's home
// directory, mirroring shell tilde expansion. Paths without the prefix
// and lookups that fail are returned unchanged.
func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
