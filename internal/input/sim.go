package input

// SimQuadrature is a drivable quadrature source for bench rigs and tests:
// Turn plays the role of the hardware decoder interrupt.
type SimQuadrature struct {
	cb func(delta int)
}

// NewSimQuadrature returns an unattached source; NewEncoder attaches it.
func NewSimQuadrature() *SimQuadrature {
	return &SimQuadrature{}
}

func (s *SimQuadrature) Attach(fn func(delta int)) { s.cb = fn }

// Turn feeds a raw signed delta to the attached encoder.
func (s *SimQuadrature) Turn(delta int) {
	if s.cb != nil {
		s.cb(delta)
	}
}
