// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// RawStrategy reads the file as UTF-8 text, dropping invalid byte
// sequences. It is the last-resort fallback when the generic converter
// cannot handle a file.
type RawStrategy struct{}

func (s *RawStrategy) Convert(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
