package input

import (
	"math"
	"testing"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
)

type fakeSource struct {
	cb func(delta int)
}

func (s *fakeSource) Attach(fn func(delta int)) { s.cb = fn }

func (s *fakeSource) turn(delta int) { s.cb(delta) }

func newTestEncoder(t *testing.T, def config.EncoderDef) (*Encoder, *fakeSource, *[]float64) {
	t.Helper()
	events := bus.New()
	values := &[]float64{}
	events.Subscribe(bus.CategoryInput, bus.TypeEncoderChanged, func(e bus.Event) {
		*values = append(*values, e.(bus.EncoderChangedEvent).Value)
	})

	source := &fakeSource{}
	enc := NewEncoder(def, source, events)
	if enc == nil {
		t.Fatalf("NewEncoder returned nil for %+v", def)
	}
	return enc, source, values
}

func absoluteDef() config.EncoderDef {
	return config.EncoderDef{ID: config.EncoderMacro1, PPR: 24, StepsPerDetent: 1}
}

func TestNewEncoderRejectsZeroPPR(t *testing.T) {
	def := absoluteDef()
	def.PPR = 0
	if enc := NewEncoder(def, &fakeSource{}, bus.New()); enc != nil {
		t.Fatal("expected nil encoder for zero PPR")
	}
}

func TestEncoderAbsoluteDirectionAndCenter(t *testing.T) {
	enc, source, values := newTestEncoder(t, absoluteDef())

	// PPR 24 with x4 decode over 270 degrees: range 72, starting centered.
	source.turn(-1)
	enc.FlushEvents()
	if len(*values) != 1 {
		t.Fatalf("expected 1 event, got %d", len(*values))
	}
	if got, want := (*values)[0], 37.0/71.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("value = %v, want %v", got, want)
	}

	// Positive raw delta moves the position down.
	source.turn(1)
	source.turn(1)
	enc.FlushEvents()
	if got, want := (*values)[1], 35.0/71.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("value = %v, want %v", got, want)
	}
}

func TestEncoderCoalescesToOneEventPerFlush(t *testing.T) {
	enc, source, values := newTestEncoder(t, absoluteDef())

	for i := 0; i < 10; i++ {
		source.turn(-1)
	}
	enc.FlushEvents()

	if len(*values) != 1 {
		t.Fatalf("expected 1 coalesced event, got %d", len(*values))
	}
	if got, want := (*values)[0], 46.0/71.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("value = %v, want %v", got, want)
	}

	// Nothing pending, flush is a no-op.
	enc.FlushEvents()
	if len(*values) != 1 {
		t.Fatalf("flush without activity emitted an event")
	}
}

func TestEncoderClampsAtBounds(t *testing.T) {
	enc, source, values := newTestEncoder(t, absoluteDef())

	for i := 0; i < 200; i++ {
		source.turn(-1)
	}
	enc.FlushEvents()
	if got := (*values)[len(*values)-1]; got != 1.0 {
		t.Fatalf("value at upper stop = %v, want 1.0", got)
	}

	// Further turns at the stop change nothing and emit nothing.
	before := len(*values)
	source.turn(-1)
	enc.FlushEvents()
	if len(*values) != before {
		t.Errorf("turn at the stop emitted an event")
	}
}

func TestEncoderDiscreteQuantization(t *testing.T) {
	enc, source, values := newTestEncoder(t, absoluteDef())
	enc.SetDiscreteSteps(5)

	source.turn(-1)
	enc.FlushEvents()
	if got := (*values)[0]; got != 0.5 {
		t.Fatalf("quantized value = %v, want 0.5", got)
	}

	// Next tick stays on the same level; the repeat is suppressed.
	source.turn(-1)
	enc.FlushEvents()
	if len(*values) != 1 {
		t.Fatalf("repeated quantized level emitted an event")
	}

	// Keep turning until the next level.
	for i := 0; i < 10; i++ {
		source.turn(-1)
	}
	enc.FlushEvents()
	if got := (*values)[len(*values)-1]; got != 0.75 {
		t.Errorf("next level = %v, want 0.75", got)
	}
}

func TestEncoderSingleDiscreteStep(t *testing.T) {
	enc, source, values := newTestEncoder(t, absoluteDef())
	enc.SetDiscreteSteps(1)

	source.turn(-1)
	enc.FlushEvents()
	if len(*values) != 1 || (*values)[0] != 0 {
		t.Fatalf("values = %v, want exactly [0]", *values)
	}

	// The lone level never re-fires, and never produces NaN.
	for i := 0; i < 5; i++ {
		source.turn(-1)
		enc.FlushEvents()
	}
	if len(*values) != 1 {
		t.Errorf("single-level encoder emitted %d events, want 1", len(*values))
	}
}

func TestEncoderSetContinuousClearsQuantization(t *testing.T) {
	enc, source, values := newTestEncoder(t, absoluteDef())
	enc.SetDiscreteSteps(3)
	enc.SetContinuous()

	source.turn(-1)
	enc.FlushEvents()
	got := (*values)[0]
	if got == 0.0 || got == 0.5 || got == 1.0 {
		t.Errorf("value %v still snapped after SetContinuous", got)
	}
}

func TestEncoderRelativeDetentAccumulation(t *testing.T) {
	def := config.EncoderDef{
		ID: config.EncoderNav, PPR: 24, StepsPerDetent: 4, Mode: config.EncoderRelative,
	}
	enc, source, values := newTestEncoder(t, def)

	for i := 0; i < 3; i++ {
		source.turn(1)
	}
	enc.FlushEvents()
	if len(*values) != 0 {
		t.Fatalf("sub-detent movement emitted an event")
	}

	source.turn(1)
	enc.FlushEvents()
	if len(*values) != 1 || (*values)[0] != 1.0 {
		t.Fatalf("first detent = %v, want [1]", *values)
	}

	for i := 0; i < 4; i++ {
		source.turn(1)
	}
	enc.FlushEvents()
	if got := (*values)[1]; got != 2.0 {
		t.Errorf("second detent = %v, want 2.0", got)
	}

	for i := 0; i < 4; i++ {
		source.turn(-1)
	}
	enc.FlushEvents()
	if got := (*values)[2]; got != 1.0 {
		t.Errorf("reverse detent = %v, want 1.0", got)
	}
}

func TestEncoderResetPositionDiscardsPending(t *testing.T) {
	enc, source, values := newTestEncoder(t, absoluteDef())

	source.turn(-1)
	enc.ResetPosition(0.25)
	enc.FlushEvents()
	if len(*values) != 0 {
		t.Fatalf("reset did not discard the pending event")
	}

	// The next turn reports relative to the reset position.
	source.turn(-1)
	enc.FlushEvents()
	if len(*values) != 1 {
		t.Fatalf("expected 1 event after reset, got %d", len(*values))
	}
	if got := (*values)[0]; got <= 0.25 || got > 0.27 {
		t.Errorf("value after reset = %v, want just above 0.25", got)
	}
}

func TestEncoderControllerSkipsInvalidDefinitions(t *testing.T) {
	defs := []config.EncoderDef{
		absoluteDef(),
		{ID: config.EncoderMacro2, PPR: 24}, // zero-value pins are valid MCU pins
	}
	defs[1].PinA.Number = 200 // out of range, skipped

	factory := func(config.EncoderDef) QuadratureSource { return &fakeSource{} }
	c := NewEncoderController(defs, factory, bus.New())

	if c.Get(config.EncoderMacro1) == nil {
		t.Error("valid encoder missing")
	}
	if c.Get(config.EncoderMacro2) != nil {
		t.Error("invalid encoder was kept")
	}
}
