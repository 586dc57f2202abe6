// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP client plumbing shared by components
// that make network requests.
package httputil

import (
	"net/http"

	"github.com/pdiddy/resume-mcp/pkg/types"
)

// userAgentTransport stamps a fixed User-Agent header on every request
// before delegating to the base round-tripper.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// NewClient builds an *http.Client with the configured timeout and a
// User-Agent round-tripper. There is deliberately no retry layer: a
// failed request surfaces immediately to the caller.
func NewClient(cfg types.HTTPConfig) *http.Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = types.DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = types.DefaultUserAgent
	}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			base:      http.DefaultTransport,
			userAgent: cfg.UserAgent,
		},
	}
}
