// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a resolved resume file into a single Markdown
// string. Classification happens first (internal/resolver); this
// package then invokes exactly one of three strategies: direct PDF
// page-text extraction, the generic pandoc converter, or a raw UTF-8
// read used as the fallback when the generic converter errors.
package convert

import (
	"context"

	"github.com/pdiddy/resume-mcp/internal/resolver"
)

// Strategy converts one file into Markdown text. All strategies share
// this contract so the dispatcher can swap them freely.
type Strategy interface {
	Convert(ctx context.Context, path string) (string, error)
}

// Converter dispatches a resolved file to the strategy for its kind.
type Converter struct {
	pdf     Strategy
	generic Strategy
	raw     Strategy
}

// New returns a Converter wired with the production strategies.
func New() *Converter {
	return &Converter{
		pdf:     &PDFStrategy{},
		generic: NewPandocStrategy(),
		raw:     &RawStrategy{},
	}
}

// ToMarkdown produces Markdown from the resolved file.
//
// PDF files go through page-text extraction with no fallback: a broken
// PDF is a conversion failure. Convertible and unknown kinds try the
// generic converter first and fall back to a raw UTF-8 read when it
// errors, so the tool stays usable on hosts without pandoc installed.
func (c *Converter) ToMarkdown(ctx context.Context, f resolver.File) (string, error) {
	if f.Kind == resolver.KindPDF {
		return c.pdf.Convert(ctx, f.Path)
	}

	md, err := c.generic.Convert(ctx, f.Path)
	if err != nil {
		return c.raw.Convert(ctx, f.Path)
	}
	return md, nil
}
