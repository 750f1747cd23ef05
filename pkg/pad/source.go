package pad

// Source supplies the pad prototype for one computation. The two
// implementations realize the factory-or-instance choice explicitly; the
// placement core resolves a Source exactly once per call, at entry.
type Source interface {
	Pad() (*Pad, error)
}

// Factory defers prototype construction until the computation runs.
type Factory func() (*Pad, error)

// Pad builds the prototype.
func (f Factory) Pad() (*Pad, error) {
	if f == nil {
		return nil, ErrNilPad
	}
	p, err := f()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNilPad
	}
	return p, nil
}

// Instance wraps an already built prototype.
func Instance(p *Pad) Source { return instance{pad: p} }

type instance struct {
	pad *Pad
}

func (s instance) Pad() (*Pad, error) {
	if s.pad == nil {
		return nil, ErrNilPad
	}
	return s.pad, nil
}
