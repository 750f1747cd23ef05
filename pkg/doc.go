// Package pkg provides the core libraries for padring pad fan-out placement.
//
// # Overview
//
// Padring takes a device description, classifies its boundary ports by the
// edge they sit on, places a connector pad array below the device, and
// routes every selected port to its pad. The pkg directory is organized
// into three main areas:
//
//  1. Domain logic (geometry, circuit model, pad prototypes, fan-out, routing)
//  2. Infrastructure (caching, layout persistence, error codes, observability)
//  3. Orchestration (pipeline, rendering, import/export)
//
// # Architecture
//
// The typical data flow through padring:
//
//	Device JSON
//	     ↓
//	[io] package (import + validation)
//	     ↓
//	[fanout] package (port selection, ordering, pad placement)
//	     ↓
//	[route] package (port-to-pad wire paths)
//	     ↓
//	[render] package (board views and netlists)
//	     ↓
//	SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Compute a fan-out and render it:
//
//	import (
//	    "github.com/dominauta/padring/pkg/fanout"
//	    "github.com/dominauta/padring/pkg/io"
//	    "github.com/dominauta/padring/pkg/pad"
//	    "github.com/dominauta/padring/pkg/render"
//	    "github.com/dominauta/padring/pkg/route"
//	)
//
//	// 1. Load the device
//	dev, _ := io.ImportDevice("amp.json")
//
//	// 2. Compute placement and routing
//	layout, _ := fanout.Compute(dev, pad.Instance(pad.DC()),
//	    &route.Electrical{BendRadius: 0.1}, fanout.Options{
//	        Spacing: 150, FanoutLength: 20, Separation: 4, Rows: 1,
//	        PadRotation: -90, PadPort: pad.DCPort,
//	    })
//
//	// 3. Render to SVG
//	svg := render.RenderSVG(dev, layout)
//
// # Main Packages
//
// ## Domain Logic
//
// [geometry] - Points, rectangles, sizes, rotation, and edge directions.
// All placement math happens in this vocabulary.
//
// [circuit] - The device, port, ref, and layout model shared by every
// stage. Layouts serialize to JSON and BSON.
//
// [pad] - Connector pad prototypes: the built-in DC probe pad and TOML
// pad library files.
//
// [fanout] - The placement core: port selection, perimeter-walk ordering,
// pad array placement, and port-to-pad pairing.
//
// [route] - Wire path generation between paired ports and pads.
//
// ## Infrastructure
//
// [cache] - Content-addressed result caching with file, Redis, and null
// backends, plus the key derivation shared by CLI and server.
//
// [store] - Layout persistence. MongoDB for the HTTP API, a null store
// for everything else.
//
// [errors] - Coded errors that map cleanly onto HTTP statuses and CLI
// messages.
//
// [observability] - Pipeline and store lifecycle hooks.
//
// ## Orchestration
//
// [pipeline] - Complete fan-out pipeline (load → fanout → render) used by
// the CLI and the HTTP API. Ensures consistent behavior across all entry
// points.
//
// [render] - Board view SVG rendering, format conversion (PDF/PNG), and
// Graphviz netlist diagrams in [render/netlist].
//
// [io] - Device import with validation and artifact export.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/fanout/...             # Specific package
//	go test -tags integration ./pkg/...  # Include integration tests
//
// [geometry]: https://pkg.go.dev/github.com/dominauta/padring/pkg/geometry
// [circuit]: https://pkg.go.dev/github.com/dominauta/padring/pkg/circuit
// [pad]: https://pkg.go.dev/github.com/dominauta/padring/pkg/pad
// [fanout]: https://pkg.go.dev/github.com/dominauta/padring/pkg/fanout
// [route]: https://pkg.go.dev/github.com/dominauta/padring/pkg/route
// [cache]: https://pkg.go.dev/github.com/dominauta/padring/pkg/cache
// [store]: https://pkg.go.dev/github.com/dominauta/padring/pkg/store
// [errors]: https://pkg.go.dev/github.com/dominauta/padring/pkg/errors
// [observability]: https://pkg.go.dev/github.com/dominauta/padring/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/dominauta/padring/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/dominauta/padring/pkg/render
// [render/netlist]: https://pkg.go.dev/github.com/dominauta/padring/pkg/render/netlist
// [io]: https://pkg.go.dev/github.com/dominauta/padring/pkg/io
package pkg
