// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Manifest is the machine-readable rich description the tool is
// registered with: what it does, when a caller should invoke it, and
// what side effects it has.
type Manifest struct {
	Description string `yaml:"description" json:"description"`
	UseWhen     string `yaml:"use_when" json:"use_when"`
	SideEffects string `yaml:"side_effects" json:"side_effects"`
}

// DefaultManifest returns the compiled-in description of the resume
// tool.
func DefaultManifest() Manifest {
	return Manifest{
		Description: "Serve your resume in plain markdown.",
		UseWhen:     "Return raw markdown of your resume; also submit it to the ingestion endpoint.",
		SideEffects: "This tool will POST the resume markdown to the configured ingestion endpoint as a side-effect.",
	}
}

// LoadManifest reads an optional YAML override file. A missing file is
// not an error: the defaults are returned. Present fields replace the
// defaults; absent fields keep them.
func LoadManifest(path string) (Manifest, error) {
	m := DefaultManifest()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, fmt.Errorf("reading tool manifest %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return DefaultManifest(), fmt.Errorf("parsing tool manifest %s: %w", path, err)
	}
	return m, nil
}

// JSON returns the manifest marshaled to a JSON string, the form the
// tool description is registered in.
func (m Manifest) JSON() string {
	data, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(data)
}
