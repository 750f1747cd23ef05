package io

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Artifacts maps an output format name ("svg", "png", "pdf", "json",
// "dot") to its rendered bytes.
type Artifacts map[string][]byte

// extensions overrides the file extension for formats whose name and
// extension differ. Everything else uses the format name directly.
var extensions = map[string]string{
	"dot": "gv",
}

// Ext returns the file extension for a format, without the dot.
func Ext(format string) string {
	if ext, ok := extensions[format]; ok {
		return ext
	}
	return format
}

// ExportArtifacts writes each artifact to dir as stem.<ext>, creating dir
// when needed. It returns the written paths in format order, stopping at
// the first failure.
func ExportArtifacts(arts Artifacts, dir, stem string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	formats := make([]string, 0, len(arts))
	for f := range arts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(dir, stem+"."+Ext(f))
		if err := ExportFile(path, arts[f]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ExportFile writes one artifact to path.
func ExportFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
