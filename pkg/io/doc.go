// Package io moves devices and rendered artifacts across the filesystem
// boundary.
//
// # Overview
//
// The package has two halves:
//
//   - Import: read a device description from JSON and validate the
//     contracts the placement core assumes before any geometry is built.
//   - Export: write a batch of rendered artifacts (SVG, PNG, PDF, JSON,
//     DOT) next to each other under a shared file stem.
//
// # Device Format
//
// A device is a JSON object with a name, an outline, and a port map:
//
//	{
//	  "name": "amp",
//	  "outline": {"min": {"x": -100, "y": -100}, "max": {"x": 100, "y": 100}},
//	  "ports": {
//	    "in":  {"center": {"x": -100, "y": 0}, "class": "electrical"},
//	    "out": {"center": {"x": 100, "y": 0}, "class": "electrical", "orientation": 0}
//	  }
//	}
//
// Port names may be omitted in the entries; they then inherit the map key.
// A port whose name disagrees with its key is rejected.
//
// # Import
//
// Use [ImportDevice] to read from a file path, or [ReadDevice] to read
// from any io.Reader:
//
//	dev, err := io.ImportDevice("amp.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Failures carry machine-readable codes from [errors]: FILE_NOT_FOUND,
// INVALID_FORMAT, INVALID_DEVICE.
//
// # Export
//
// Use [ExportArtifacts] to write one file per format:
//
//	paths, err := io.ExportArtifacts(arts, "out", "amp")
//	// out/amp.svg, out/amp.png, ...
//
// The DOT format writes with a .gv extension; every other format uses its
// own name as the extension.
//
// [errors]: github.com/dominauta/padring/pkg/errors
package io
