// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the tool's credentials from a directory of
// plain-text files. Each file holds one value: the filename is the key
// and the trimmed contents are the value.
//
// Recognized keys: app-credential (the bearer token), identity-phone
// (the submission identity). Unrecognized files are loaded too and
// simply ignored by the caller.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where the root command looks for secrets.
const DefaultDir = ".secrets/"

// Well-known key filenames.
const (
	KeyCredential    = "app-credential"
	KeyIdentityPhone = "identity-phone"
)

// Load reads every regular file in dir into a key/value map. A missing
// directory is not an error: the tool can be configured entirely via
// config file and environment. Dotfiles, empty values and unreadable
// files are skipped; unreadable files additionally warn on stderr.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	values := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if v := strings.TrimSpace(string(data)); v != "" {
			values[name] = v
		}
	}

	return values, nil
}
