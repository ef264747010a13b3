// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

package expak

import (
	"fmt"
	"os"
	"path/filepath"
)

// Extract writes selected resources verbatim to the current directory,
// treating slash-separated name segments as nested directories.
func Extract(sources []string, sel Selection) error {
	return ExtractTo(".", sources, sel)
}

// ExtractTo writes selected resources verbatim under dir. It is Process
// with WriteTransform(dir): result and selection semantics are identical.
func ExtractTo(dir string, sources []string, sel Selection) error {
	return Process(sources, WriteTransform(dir), sel)
}

// WriteTransform returns a Transform that writes each resource payload
// unmodified to a path derived from the resolved name, rooted at dir.
// Intermediate directories are created as needed. Resource names that are
// absolute or escape the root are rejected as per-resource faults.
func WriteTransform(dir string) Transform {
	return func(data []byte, name string) (bool, error) {
		rel, err := normalizeEntryPath(name)
		if err != nil {
			return false, fmt.Errorf("%w: %q", err, name)
		}

		outPath := filepath.Join(dir, filepath.FromSlash(rel))
		if parent := filepath.Dir(outPath); parent != "." {
			if err := os.MkdirAll(parent, 0o750); err != nil {
				return false, fmt.Errorf("create output directory: %w", err)
			}
		}

		if err := os.WriteFile(outPath, data, 0o600); err != nil {
			return false, fmt.Errorf("write %s: %w", name, err)
		}

		return true, nil
	}
}
