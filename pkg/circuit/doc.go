// Package circuit provides the device model and serialization types for pad
// fan-out computations.
//
// This package defines the canonical wire format for padring's data, used
// for JSON files, API responses, caching, and persistence.
//
// # Architecture
//
// The package sits at the serialization boundary between the placement core
// and external formats:
//
//   - [Device], [Port]: the component model the core reads
//   - [Ref]: placed geometry instances the core emits
//   - [Layout], [Pair]: the computed fan-out result
//
// pkg/fanout consumes devices and produces layouts; pkg/render consumes
// layouts.
//
// # Device Documents
//
// Devices use a JSON object format with ports keyed by name:
//
//	{
//	  "name": "mzi_heater",
//	  "outline": {"min": {"x": 0, "y": 0}, "max": {"x": 400, "y": 200}},
//	  "ports": {
//	    "e1": {"center": {"x": 0, "y": 100}, "orientation": 180},
//	    "e2": {"center": {"x": 200, "y": 200}, "orientation": 90}
//	  }
//	}
//
// Port names are filled from the mapping keys on read; a missing net class
// defaults to electrical. Common operations:
//
//	dev, _ := circuit.ReadDeviceFile("device.json")   // File → Device
//	circuit.WriteDeviceFile(dev, "out.json")          // Device → File
//	data, _ := circuit.MarshalDevice(dev)             // Device → []byte
//
// # Layout Documents
//
// A Layout carries the placed pad rows, the accumulated route geometry, and
// the baseline y of the pad array. BSON tags make the same struct the Mongo
// storage document. [UnmarshalLayout] enforces the structural invariants
// (equal row lengths, pairs referencing known pads).
//
// # Edge Classification
//
// [Classify] is the single classification primitive: given a port and a
// bounding box it returns the device edge the port belongs to. Orientation
// wins when present; otherwise the nearest box edge decides, with ties
// resolving west, east, south, north. It is a pure function so ordering
// rules can be tested without placing any geometry.
//
// # Concurrency
//
// All types are safe for concurrent reads. Nothing in this package mutates
// a Device after decode.
package circuit
