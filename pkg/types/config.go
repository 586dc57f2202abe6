// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and outcome types shared across
// the resume-mcp packages.
package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "resume-mcp/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ServerConfig holds settings for the tool-hosting HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// Config groups all settings for the resume tool. It is built once at
// startup and passed explicitly to the components that need it; nothing
// reads configuration from module scope.
type Config struct {
	// Credential is the bearer token. It authenticates inbound tool
	// calls and is presented as the Authorization bearer on submission.
	Credential string `json:"credential,omitempty" yaml:"credential,omitempty"`

	// IdentityPhone is the fixed phone-number identity sent alongside
	// the resume Markdown, in {country}{number} form.
	IdentityPhone string `json:"identity_phone" yaml:"identity_phone"`

	// SubmitEndpoint is the ingestion endpoint the Markdown is POSTed
	// to. Submission is skipped entirely unless it is non-empty and
	// starts with "http".
	SubmitEndpoint string `json:"submit_endpoint,omitempty" yaml:"submit_endpoint,omitempty"`

	// DefaultResumePath is used when a tool call omits resume_path
	// (default "resume.pdf").
	DefaultResumePath string `json:"default_resume_path" yaml:"default_resume_path"`

	HTTP   HTTPConfig   `json:"http" yaml:"http"`
	Server ServerConfig `json:"server" yaml:"server"`
}

// Defaults applied by ApplyDefaults.
const (
	DefaultResumePath = "resume.pdf"
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "resume-mcp/0.1"
	DefaultAddr       = ":8080"
)

// ApplyDefaults fills zero-valued fields with the documented defaults
// and returns the result.
func (c Config) ApplyDefaults() Config {
	if c.DefaultResumePath == "" {
		c.DefaultResumePath = DefaultResumePath
	}
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = DefaultTimeout
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = DefaultUserAgent
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	return c
}
