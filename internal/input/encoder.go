// Package input turns raw hardware activity into bus events and dispatches
// them to registered action bindings: quadrature decoding with dual-mode
// virtual positions, debounced button state, and the scoped/global binding
// service.
package input

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
)

// QuadratureSource is the hardware quadrature decoder handle for one encoder.
// The attached callback receives signed raw deltas and may run asynchronously
// with respect to the main loop (interrupt context on real hardware).
type QuadratureSource interface {
	Attach(func(delta int))
}

// Encoder is the runtime state machine for one rotary encoder.
//
// In absolute mode it tracks a virtual position inside [0, virtualRange),
// clamped at the bounds and reported as a normalized float in [0, 1], with
// optional discrete quantization. In relative mode it accumulates raw deltas
// and reports a cumulative position advancing by ±1.0 per detent.
//
// The quadrature callback and the main loop share exactly one pending event
// slot: the callback overwrites it, FlushEvents drains it once per tick.
// Last value wins; at most one EncoderChanged event per encoder per tick.
type Encoder struct {
	id             config.EncoderID
	mode           config.EncoderMode
	ppr            uint16
	stepsPerDetent uint8

	virtualRange    int
	virtualPosition int
	lastNormalized  float64

	accumulatedDelta int
	relativePosition float64

	discreteSteps uint8
	lastQuantized float64

	// Single-producer/single-consumer slot between the quadrature callback
	// and FlushEvents. Value is written before the flag, read after it.
	pendingBits atomic.Uint64
	hasPending  atomic.Bool

	events *bus.Bus
}

// NewEncoder wires an encoder onto its quadrature source. Returns nil for
// definitions the hardware cannot support (zero PPR would collapse the
// virtual range).
func NewEncoder(def config.EncoderDef, source QuadratureSource, events *bus.Bus) *Encoder {
	if def.PPR == 0 || source == nil {
		log.Printf("[Encoder] Skipping invalid definition for encoder %d", def.ID)
		return nil
	}

	e := &Encoder{
		id:             def.ID,
		mode:           def.Mode,
		ppr:            def.PPR,
		stepsPerDetent: def.StepsPerDetent,
		lastNormalized: 0.5,
		lastQuantized:  -1,
		events:         events,
	}
	e.virtualRange = e.defaultVirtualRange()
	e.virtualPosition = e.virtualRange / 2

	source.Attach(e.handleChange)
	return e
}

// ID returns the encoder's hardware identifier.
func (e *Encoder) ID() config.EncoderID { return e.id }

// Mode returns the mode fixed at construction.
func (e *Encoder) Mode() config.EncoderMode { return e.mode }

// defaultVirtualRange derives the position range from full quadrature decode
// over the assumed 270-degree mechanical sweep.
func (e *Encoder) defaultVirtualRange() int {
	return int(float64(e.ppr) * config.QuadratureTicks * (config.FullRangeAngle / 360.0))
}

// handleChange is the quadrature callback. It only touches the pending slot
// and per-encoder accumulators; emission happens in FlushEvents.
func (e *Encoder) handleChange(delta int) {
	if delta == 0 {
		return
	}
	if e.mode == config.EncoderRelative {
		e.handleRelative(delta)
	} else {
		e.handleAbsolute(delta)
	}
}

func (e *Encoder) handleRelative(delta int) {
	e.accumulatedDelta += delta

	if abs(e.accumulatedDelta) < int(e.stepsPerDetent) {
		return
	}

	step := 1.0
	if e.accumulatedDelta < 0 {
		step = -1.0
	}
	e.relativePosition += step
	// Overshoot beyond the detent threshold within one burst is discarded.
	e.accumulatedDelta = 0

	e.setPending(e.relativePosition)
}

func (e *Encoder) handleAbsolute(delta int) {
	movement := 1
	if delta > 0 {
		movement = -1
	}
	e.virtualPosition = clampInt(e.virtualPosition+movement, 0, e.virtualRange-1)

	normalized := float64(e.virtualPosition) / float64(e.virtualRange-1)
	if normalized == e.lastNormalized {
		return
	}
	e.lastNormalized = normalized

	if value, ok := e.quantize(normalized); ok {
		e.setPending(value)
	}
}

// quantize snaps the value to the configured discrete levels and suppresses
// repeats of the same level. With no steps configured it passes through.
func (e *Encoder) quantize(normalized float64) (float64, bool) {
	if e.discreteSteps == 0 {
		return normalized, true
	}

	// A single level has nowhere to move; snap to 0 once and stay quiet.
	if e.discreteSteps == 1 {
		if e.lastQuantized == 0 {
			return 0, false
		}
		e.lastQuantized = 0
		return 0, true
	}

	levels := float64(e.discreteSteps - 1)
	quantized := math.Round(normalized*levels) / levels
	if quantized == e.lastQuantized {
		return 0, false
	}
	e.lastQuantized = quantized
	return quantized, true
}

func (e *Encoder) setPending(value float64) {
	e.pendingBits.Store(math.Float64bits(value))
	e.hasPending.Store(true)
}

// FlushEvents drains the pending slot, emitting at most one EncoderChanged
// event no matter how many physical transitions occurred since the last tick.
func (e *Encoder) FlushEvents() {
	if !e.hasPending.Swap(false) {
		return
	}
	value := math.Float64frombits(e.pendingBits.Load())
	e.events.Emit(bus.EncoderChangedEvent{EncoderID: e.id, Value: value})
}

// ResetPosition resynchronizes the encoder with an external source of truth
// (a DAW parameter, typically) and discards any pending event.
func (e *Encoder) ResetPosition(normalized float64) {
	if e.mode == config.EncoderRelative {
		e.relativePosition = normalized
		e.accumulatedDelta = 0
		e.hasPending.Store(false)
		return
	}

	normalized = clampFloat(normalized, 0, 1)
	e.virtualPosition = int(normalized * float64(e.virtualRange-1))
	e.lastNormalized = normalized
	e.hasPending.Store(false)
}

// SetDiscreteSteps quantizes output to n evenly spaced levels in [0, 1],
// widening the virtual range if needed so each discrete step keeps at least
// 1/sensitivity raw ticks of travel. Absolute mode only.
func (e *Encoder) SetDiscreteSteps(steps uint8) {
	if e.mode != config.EncoderAbsolute {
		return
	}

	e.discreteSteps = steps
	e.lastQuantized = -1

	defaultRange := e.defaultVirtualRange()
	minRange := int(float64(steps) / config.DiscreteSensitivity)
	if steps > 0 && minRange > defaultRange {
		e.virtualRange = minRange
	} else {
		e.virtualRange = defaultRange
	}

	e.virtualPosition = int(e.lastNormalized * float64(e.virtualRange-1))
}

// SetContinuous clears quantization.
func (e *Encoder) SetContinuous() {
	e.SetDiscreteSteps(0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
