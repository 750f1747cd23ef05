package circuit

import (
	"github.com/google/uuid"

	"github.com/dominauta/padring/pkg/geometry"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Net classes a port can belong to.
const (
	ClassElectrical = "electrical"
	ClassOptical    = "optical"
	ClassRF         = "rf"
)

// Cell names for generated geometry.
const (
	CellWire = "wire"
)

// =============================================================================
// Port - Boundary Connection Point
// =============================================================================

// Port is a named connection point on a device or pad boundary.
//
// Orientation is the facing angle in degrees (0 east, 90 north), nil when
// unknown. The facing edge is always derived through [Classify], never
// stored.
type Port struct {
	Name        string         `json:"name" bson:"name"`
	Center      geometry.Point `json:"center" bson:"center"`
	Width       float64        `json:"width,omitempty" bson:"width,omitempty"`
	Orientation *float64       `json:"orientation,omitempty" bson:"orientation,omitempty"`
	Class       string         `json:"class,omitempty" bson:"class,omitempty"`
}

// Facing returns the port orientation, ok=false when none is set.
func (p *Port) Facing() (float64, bool) {
	if p.Orientation == nil {
		return 0, false
	}
	return *p.Orientation, true
}

// WithOrientation returns a copy of p facing deg degrees.
func (p Port) WithOrientation(deg float64) *Port {
	a := geometry.NormalizeAngle(deg)
	p.Orientation = &a
	return &p
}

// =============================================================================
// Ref - Placed Geometry Instance
// =============================================================================

// Ref is a placed instance of a prototype cell. Pads and wire segments are
// emitted as refs; prototypes themselves are never mutated. Every ref gets
// a fresh ID so repeated computations yield distinct instances with
// identical coordinates.
type Ref struct {
	ID       string           `json:"id" bson:"id"`
	Cell     string           `json:"cell" bson:"cell"`
	Origin   geometry.Point   `json:"origin" bson:"origin"`
	Rotation float64          `json:"rotation,omitempty" bson:"rotation,omitempty"`
	Ports    map[string]*Port `json:"ports,omitempty" bson:"ports,omitempty"`
	Path     []geometry.Point `json:"path,omitempty" bson:"path,omitempty"`
	Width    float64          `json:"width,omitempty" bson:"width,omitempty"`
}

// NewRef returns a Ref for the named cell with a fresh ID.
func NewRef(cell string) *Ref {
	return &Ref{ID: uuid.NewString(), Cell: cell}
}

// Port returns the named transformed port of the ref.
func (r *Ref) Port(name string) (*Port, bool) {
	p, ok := r.Ports[name]
	return p, ok
}

// IsWire reports whether the ref is generated wire geometry. Wire refs
// carry their centerline in Path; pad refs carry their body outline there.
func (r *Ref) IsWire() bool { return r.Cell == CellWire }

// BBox returns the extent of the ref's path and port centers around its
// origin.
func (r *Ref) BBox() geometry.Rect {
	box := geometry.Rect{Min: r.Origin, Max: r.Origin}
	for _, p := range r.Path {
		box = box.Expand(p)
	}
	for _, p := range r.Ports {
		box = box.Expand(p.Center)
	}
	return box
}
