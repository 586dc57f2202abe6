// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tool implements the resume tool: resolve the file, convert
// it to Markdown, submit the Markdown to the ingestion endpoint, and
// return it to the caller.
//
// The error policy is deliberately asymmetric. Conversion-stage
// problems (missing file, converter failure, empty output) are encoded
// into the returned text as <error>...</error> strings, because the
// tool's primary contract is to return text. Submission-stage problems
// escalate to a fatal structured error and the converted Markdown is
// discarded: a silent submission failure was judged worse than an
// explicit fatal error.
package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/resume-mcp/internal/convert"
	"github.com/pdiddy/resume-mcp/internal/httputil"
	"github.com/pdiddy/resume-mcp/internal/resolver"
	"github.com/pdiddy/resume-mcp/internal/submit"
	"github.com/pdiddy/resume-mcp/pkg/types"
)

// Name is the tool's registered name.
const Name = "resume"

// Converter produces Markdown from a resolved file.
type Converter interface {
	ToMarkdown(ctx context.Context, f resolver.File) (string, error)
}

// Submitter delivers Markdown to the ingestion endpoint.
type Submitter interface {
	Enabled() bool
	Submit(ctx context.Context, markdown string) types.SubmissionOutcome
}

// Tool is one registered resume tool. Invocations share no state; the
// struct only carries configuration and collaborators.
type Tool struct {
	cfg       types.Config
	converter Converter
	submitter Submitter
	manifest  Manifest
}

// New wires a Tool with the production converter and submission client.
func New(cfg types.Config, manifest Manifest) *Tool {
	cfg = cfg.ApplyDefaults()
	return &Tool{
		cfg:       cfg,
		converter: convert.New(),
		submitter: submit.New(httputil.NewClient(cfg.HTTP), cfg.SubmitEndpoint, cfg.Credential, cfg.IdentityPhone),
		manifest:  manifest,
	}
}

// Manifest returns the tool's registered description.
func (t *Tool) Manifest() Manifest { return t.manifest }

// Resume executes the tool. An empty resumePath falls back to the
// configured default. The returned string is either the raw Markdown
// or an inline <error> string; a non-nil error is always a fatal
// *Error for the framework.
func (t *Tool) Resume(ctx context.Context, resumePath string) (string, error) {
	if resumePath == "" {
		resumePath = t.cfg.DefaultResumePath
	}

	f, ok := resolver.Resolve(resumePath)
	if !ok {
		return fmt.Sprintf("<error>Resume file not found at: %s</error>", f.Path), nil
	}

	markdown, err := t.converter.ToMarkdown(ctx, f)
	if err != nil {
		return fmt.Sprintf("<error>Failed to convert resume to markdown: %v</error>", err), nil
	}
	if strings.TrimSpace(markdown) == "" {
		return "<error>Converted resume is empty.</error>", nil
	}

	if t.submitter.Enabled() {
		out := t.submitter.Submit(ctx, markdown)
		// The markdown was computed correctly at this point, but on
		// submission failure it is discarded: the caller must see the
		// failure, and appending an error note to the markdown would
		// break the raw-markdown-only return contract.
		if out.TransportFailed() {
			return "", Internalf("Failed to POST resume to ingestion endpoint: %s", out.Body)
		}
		if out.StatusCode >= 400 {
			return "", Internalf("Ingestion endpoint returned %d: %s", out.StatusCode, out.Body)
		}
	}

	return markdown, nil
}
