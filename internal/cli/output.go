package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	pkgio "github.com/dominauta/padring/pkg/io"
	"github.com/dominauta/padring/pkg/pipeline"
)

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., amp.svg, amp.json, amp.gv).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // input file path, used to derive default output names
	output    string // explicit output path or base path, may be empty
	cacheHit  bool
	padCount  int
	routes    int
}

// writeArtifacts writes each rendered format to disk and reports the results.
// A single format with an explicit output goes exactly there; otherwise each
// format lands at <base>.<ext> next to the input.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	var paths []string
	if len(p.formats) == 1 && p.output != "" && filepath.Ext(p.output) != "" {
		data, ok := p.artifacts[p.formats[0]]
		if !ok {
			return fmt.Errorf("renderer produced no %s output", p.formats[0])
		}
		if err := pkgio.ExportFile(p.output, data); err != nil {
			return err
		}
		paths = []string{p.output}
	} else {
		dir := filepath.Dir(base)
		stem := filepath.Base(base)
		arts := make(pkgio.Artifacts, len(p.formats))
		for _, f := range p.formats {
			data, ok := p.artifacts[f]
			if !ok {
				return fmt.Errorf("renderer produced no %s output", f)
			}
			arts[f] = data
		}
		var err error
		paths, err = pkgio.ExportArtifacts(arts, dir, stem)
		if err != nil {
			return err
		}
	}

	printSuccess("Fan-out complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.padCount, p.routes, p.cacheHit)
	return nil
}
