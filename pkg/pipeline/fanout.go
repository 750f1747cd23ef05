package pipeline

import (
	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/fanout"
)

// =============================================================================
// Fan-Out Computation
// =============================================================================

// ComputeFanout runs the placement core for the device: select the
// boundary ports, order them along the perimeter, place the pad array,
// and route each port to its pad.
//
// A selection that does not divide evenly across the rows leaves the
// remainder ports unpaired; that is logged at warn level rather than
// failing, matching the placement core's contract.
func ComputeFanout(dev *circuit.Device, opts Options) (*fanout.Result, error) {
	source, err := resolveSource(opts)
	if err != nil {
		return nil, err
	}

	res, err := fanout.ComputeResult(dev, source, resolveRouter(opts), opts.FanoutOptions())
	if err != nil {
		return nil, err
	}

	// With more than one row, only the deepest row is retained and
	// paired, so a slice of the selection stays unrouted.
	if opts.Rows > 1 && len(res.Layout.Pairs) > 0 {
		opts.Logger.Warn("multi-row fan-out pairs only the last row",
			"paired", len(res.Layout.Pairs),
			"rows", opts.Rows)
	}

	return res, nil
}
