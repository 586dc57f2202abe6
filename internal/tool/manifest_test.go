// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifestMissingFileUsesDefaults(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultManifest(), m)
}

func TestLoadManifestOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("description: Custom resume tool.\n"), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom resume tool.", m.Description)
	// Absent fields keep the defaults.
	assert.Equal(t, DefaultManifest().SideEffects, m.SideEffects)
}

func TestLoadManifestBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("description: [unterminated"), 0o644))

	_, err := LoadManifest(path)
	assert.Error(t, err)
}

func TestManifestJSON(t *testing.T) {
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(DefaultManifest().JSON()), &decoded))
	assert.Contains(t, decoded["side_effects"], "POST the resume markdown")
}
