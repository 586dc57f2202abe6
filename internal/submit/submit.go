// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package submit POSTs the converted resume Markdown to the configured
// ingestion endpoint.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/resume-mcp/pkg/types"
)

// payload is the JSON wire format of a submission.
type payload struct {
	Phone          string `json:"phone"`
	ResumeMarkdown string `json:"resume_markdown"`
}

// Client submits resume Markdown to one fixed endpoint with a bearer
// credential and a phone-number identity. The zero value is not usable;
// construct with New.
type Client struct {
	httpClient *http.Client
	endpoint   string
	credential string
	phone      string
}

// New builds a submission client. httpClient carries the request
// timeout (see httputil.NewClient).
func New(httpClient *http.Client, endpoint, credential, phone string) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		credential: credential,
		phone:      phone,
	}
}

// Enabled reports whether submission should be attempted at all: the
// endpoint must be non-empty and start with "http".
func (c *Client) Enabled() bool {
	return c.endpoint != "" && strings.HasPrefix(c.endpoint, "http")
}

// Submit POSTs {phone, resume_markdown} to the endpoint and returns the
// status code and response body. Transport-level failures (DNS,
// connection refused, timeout) never propagate as errors; they come
// back as the sentinel outcome (0, stringified error) so the caller can
// tell "no response" apart from any real HTTP status.
func (c *Client) Submit(ctx context.Context, markdown string) types.SubmissionOutcome {
	body, err := json.Marshal(payload{Phone: c.phone, ResumeMarkdown: markdown})
	if err != nil {
		return types.SubmissionOutcome{StatusCode: types.StatusTransportFailure, Body: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return types.SubmissionOutcome{StatusCode: types.StatusTransportFailure, Body: err.Error()}
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.credential))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.SubmissionOutcome{StatusCode: types.StatusTransportFailure, Body: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.SubmissionOutcome{StatusCode: types.StatusTransportFailure, Body: err.Error()}
	}

	return types.SubmissionOutcome{StatusCode: resp.StatusCode, Body: string(respBody)}
}
