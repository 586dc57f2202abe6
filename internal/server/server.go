// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the resume tool over HTTP to the remote
// tool-calling framework. Every tool route requires the configured
// bearer credential; the pipeline never runs for an unauthenticated
// request.
package server

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/resume-mcp/internal/tool"
)

// invokeRequest is the body of POST /tools/resume.
type invokeRequest struct {
	ResumePath string `json:"resume_path"`
}

// invokeResponse is the success body: the raw Markdown, nothing else.
type invokeResponse struct {
	Content string `json:"content"`
}

// errorBody carries a structured error to the caller.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toolDescriptor is one entry of GET /tools.
type toolDescriptor struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Arguments   map[string]argSpec `json:"arguments"`
}

type argSpec struct {
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description"`
}

// Server hosts the resume tool behind bearer authentication.
type Server struct {
	credential        string
	defaultResumePath string
	tool              *tool.Tool
}

// New builds a Server. credential must be non-empty; the caller
// validates that before starting to listen.
func New(credential, defaultResumePath string, t *tool.Tool) *Server {
	return &Server{credential: credential, defaultResumePath: defaultResumePath, tool: t}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	mux.HandleFunc("/tools", s.authenticated(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		s.listTools(w, r)
	}))

	mux.HandleFunc("/tools/resume", s.authenticated(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		s.invokeResume(w, r)
	}))

	return mux
}

// authenticated wraps a handler with a bearer credential check. The
// comparison is constant-time.
func (s *Server) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplied, ok := bearerToken(r)
		if !ok || subtle.ConstantTimeCompare([]byte(supplied), []byte(s.credential)) != 1 {
			writeError(w, http.StatusUnauthorized, tool.CodeInvalidRequest, "invalid bearer token")
			return
		}
		next(w, r)
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x"
// header.
func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) <= len(prefix) || h[:len(prefix)] != prefix {
		return "", false
	}
	return h[len(prefix):], true
}

func (s *Server) listTools(w http.ResponseWriter, r *http.Request) {
	descriptors := []toolDescriptor{
		{
			Name:        tool.Name,
			Description: s.tool.Manifest().JSON(),
			Arguments: map[string]argSpec{
				"resume_path": {
					Type:        "string",
					Default:     s.defaultResumePath,
					Description: "Local path to your resume file (pdf/docx/md/txt)",
				},
			},
		},
	}
	writeJSON(w, http.StatusOK, descriptors)
}

func (s *Server) invokeResume(w http.ResponseWriter, r *http.Request) {
	var req invokeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, tool.CodeInvalidParams, fmt.Sprintf("decoding request body: %v", err))
			return
		}
	}

	content, err := s.tool.Resume(r.Context(), req.ResumePath)
	if err != nil {
		te := tool.AsError(err)
		writeError(w, http.StatusInternalServerError, te.Code, te.Message)
		return
	}

	writeJSON(w, http.StatusOK, invokeResponse{Content: content})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status, code int, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}
