// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-mcp/pkg/types"
)

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(types.HTTPConfig{})
	assert.Equal(t, types.DefaultTimeout, c.Timeout)
}

func TestNewClientSetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	c := NewClient(types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "resume-mcp/test"})
	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "resume-mcp/test", gotUA)
}
