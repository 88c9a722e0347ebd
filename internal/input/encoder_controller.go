package input

import (
	"log"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
)

// SourceFactory produces the quadrature source for one encoder definition.
// It returns nil when the hardware cannot provide the pins, in which case
// that encoder is skipped.
type SourceFactory func(def config.EncoderDef) QuadratureSource

// EncoderController owns every encoder instance for the lifetime of the
// process and maps logical IDs to them.
type EncoderController struct {
	encoders  []*Encoder
	idToIndex map[config.EncoderID]int
}

// NewEncoderController constructs all encoders from their definitions.
// Invalid definitions are skipped, the rest of the system proceeds.
func NewEncoderController(defs []config.EncoderDef, sources SourceFactory, events *bus.Bus) *EncoderController {
	c := &EncoderController{
		encoders:  make([]*Encoder, 0, len(defs)),
		idToIndex: make(map[config.EncoderID]int, len(defs)),
	}

	for _, def := range defs {
		if !def.PinA.Valid() || !def.PinB.Valid() {
			log.Printf("[EncoderController] Invalid pins for encoder %d, skipping", def.ID)
			continue
		}
		enc := NewEncoder(def, sources(def), events)
		if enc == nil {
			continue
		}
		c.idToIndex[def.ID] = len(c.encoders)
		c.encoders = append(c.encoders, enc)
	}
	return c
}

// FlushAll drains every encoder's pending slot, once per tick.
func (c *EncoderController) FlushAll() {
	for _, enc := range c.encoders {
		enc.FlushEvents()
	}
}

// ResetPosition forwards to the encoder with the given ID, if any.
func (c *EncoderController) ResetPosition(id config.EncoderID, normalized float64) {
	if enc := c.Get(id); enc != nil {
		enc.ResetPosition(normalized)
	}
}

// SetDiscreteSteps forwards to the encoder with the given ID, if any.
func (c *EncoderController) SetDiscreteSteps(id config.EncoderID, steps uint8) {
	if enc := c.Get(id); enc != nil {
		enc.SetDiscreteSteps(steps)
	}
}

// SetContinuous forwards to the encoder with the given ID, if any.
func (c *EncoderController) SetContinuous(id config.EncoderID) {
	if enc := c.Get(id); enc != nil {
		enc.SetContinuous()
	}
}

// Get returns the encoder with the given ID, or nil.
func (c *EncoderController) Get(id config.EncoderID) *Encoder {
	if i, ok := c.idToIndex[id]; ok {
		return c.encoders[i]
	}
	return nil
}
