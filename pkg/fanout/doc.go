// Package fanout computes pad-array placement and port-to-pad routing for
// a device's boundary ports.
//
// Given a device, a pad prototype source, and a router, [Compute] runs a
// single-pass pipeline with four stages:
//
//  1. Select: narrow the full port mapping by explicit labels or a
//     predicate, minus exclusions.
//  2. Classify: bucket the selected ports by the device edge they sit on.
//  3. Order: linearize the buckets along the perimeter walk.
//  4. Place and pair: compute the pad-array geometry, place one pad per
//     slot, and route each ordered port to its pad.
//
// # Perimeter Walk
//
// The walk starts at the middle of the north edge, descends the west edge,
// crosses the south edge left to right, climbs the east edge, and finishes
// with the remaining north ports right to left:
//
//	      6 5      4 3
//	   ┌───┴┴──────┴┴───┐
//	 7─┤                ├─2
//	 8─┤                ├─1
//	   └───┬┬──────┬┬───┘
//	       9 10   11 12       (slots 5..12 filled left to right below)
//
// For rectangular devices this ordering keeps the fanned-out wiring free
// of crossings without any search. Collision avoidance between the
// generated wires is explicitly out of scope; the router draws each pair
// independently.
//
// # Array Geometry
//
// Pad slots sit on a common baseline below the device. The baseline
// reserves the fan-out clearance, the pad anchor offset, and one
// separation lane per two ports (odd counts round up). Pad x positions
// form an arithmetic sequence with the configured pitch, centered on the
// mean x of the selected ports. All published coordinates are rounded to
// one decimal.
//
// # Known Limitation: Multi-Row Pairing
//
// With Options.Rows > 1 every row indexes the one ordered port sequence
// and only the last constructed row is retained and paired; remainder
// ports stay unrouted. This mirrors long-standing behavior that callers
// depend on. The per-row split is documented on [Options.Rows] and pinned
// by the package tests; call [Compute] once per port subset to get full
// multi-row pairing.
//
// # Determinism
//
// Results are a pure function of the device, the prototype, and the
// options. Ordering never depends on map iteration or input slice order;
// ties resolve by port name. Repeated calls produce geometrically
// identical output with fresh reference IDs.
package fanout
