package fanout

import "errors"

var (
	// ErrNilDevice is returned by [Compute] when no device is supplied.
	ErrNilDevice = errors.New("nil device")

	// ErrNilSource is returned by [Compute] when no pad source is supplied.
	// Pass pad.Instance or a pad.Factory; there is no implicit default.
	ErrNilSource = errors.New("nil pad source")

	// ErrNilRouter is returned by [Compute] when no router is supplied.
	// Route construction is always injected; there is no implicit default.
	ErrNilRouter = errors.New("nil router")

	// ErrPortNotFound is returned when an explicit port label, a connection
	// id, or the designated pad port does not exist. Lookups fail fast and
	// no pads or routes are produced.
	ErrPortNotFound = errors.New("port not found")

	// ErrSlotCount is returned by [Compute] when Options.SlotIndices is set
	// but its length differs from the computed per-row slot count. This is
	// a contract violation: the caller promised one index per slot.
	ErrSlotCount = errors.New("slot index count mismatch")

	// ErrOverrideCount is returned by [Compute] when
	// Options.ConnectionIDs is set but its length differs from the number
	// of selected ports, which would leave pads or ports unpaired.
	ErrOverrideCount = errors.New("connection id count mismatch")

	// ErrRowCount is returned by [Compute] when Options.Rows is not at
	// least one.
	ErrRowCount = errors.New("row count must be at least one")
)
