package input

import (
	"testing"
	"time"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
)

type fakeScope struct {
	visible bool
}

func (s *fakeScope) Visible() bool { return s.visible }

type bindingRig struct {
	events   *bus.Bus
	bindings *Bindings
	clock    time.Time
}

func newBindingRig() *bindingRig {
	rig := &bindingRig{
		events: bus.New(),
		clock:  time.Unix(1000, 0),
	}
	rig.bindings = NewBindings(rig.events)
	rig.bindings.now = func() time.Time { return rig.clock }
	return rig
}

func (r *bindingRig) advance(d time.Duration) { r.clock = r.clock.Add(d) }

func (r *bindingRig) press(id config.ButtonID) {
	r.events.Emit(bus.ButtonPressEvent{ButtonID: id, Pressed: true})
}

func (r *bindingRig) release(id config.ButtonID) {
	r.events.Emit(bus.ButtonReleaseEvent{ButtonID: id})
}

func (r *bindingRig) turn(id config.EncoderID, value float64) {
	r.events.Emit(bus.EncoderChangedEvent{EncoderID: id, Value: value})
}

func TestBindingPressAndRelease(t *testing.T) {
	rig := newBindingRig()
	var pressed, released int
	rig.bindings.OnPressed(config.ButtonNav, func() { pressed++ })
	rig.bindings.OnReleased(config.ButtonNav, func() { released++ })

	rig.press(config.ButtonNav)
	rig.release(config.ButtonNav)
	rig.press(config.ButtonMacro1) // different button, no handler

	if pressed != 1 || released != 1 {
		t.Errorf("pressed=%d released=%d, want 1/1", pressed, released)
	}
}

func TestBindingScopedSuppressesGlobal(t *testing.T) {
	rig := newBindingRig()
	scope := &fakeScope{visible: true}
	var scoped, global int
	rig.bindings.OnPressedScoped(scope, config.ButtonNav, func() { scoped++ })
	rig.bindings.OnPressed(config.ButtonNav, func() { global++ })

	rig.press(config.ButtonNav)
	if scoped != 1 || global != 0 {
		t.Fatalf("visible scope: scoped=%d global=%d, want 1/0", scoped, global)
	}

	scope.visible = false
	rig.press(config.ButtonNav)
	if scoped != 1 || global != 1 {
		t.Fatalf("hidden scope: scoped=%d global=%d, want 1/1", scoped, global)
	}
}

func TestBindingLongPressFiresOnceOnTime(t *testing.T) {
	rig := newBindingRig()
	var fired int
	rig.bindings.OnLongPress(config.ButtonNav, 0, func() { fired++ })

	rig.press(config.ButtonNav)
	rig.advance(config.LongPressDefault - time.Millisecond)
	rig.bindings.ProcessTick()
	if fired != 0 {
		t.Fatalf("long press fired early")
	}

	rig.advance(2 * time.Millisecond)
	rig.bindings.ProcessTick()
	rig.bindings.ProcessTick()
	if fired != 1 {
		t.Fatalf("fired=%d, want exactly 1 per hold", fired)
	}

	// A new hold arms it again.
	rig.release(config.ButtonNav)
	rig.advance(time.Second)
	rig.press(config.ButtonNav)
	rig.advance(config.LongPressDefault)
	rig.bindings.ProcessTick()
	if fired != 2 {
		t.Errorf("fired=%d after second hold, want 2", fired)
	}
}

func TestBindingDoubleTapWithinWindow(t *testing.T) {
	rig := newBindingRig()
	var fired int
	rig.bindings.OnDoubleTap(config.ButtonMacro1, func() { fired++ })

	rig.press(config.ButtonMacro1)
	rig.release(config.ButtonMacro1)
	rig.advance(100 * time.Millisecond)
	rig.press(config.ButtonMacro1)
	if fired != 0 {
		t.Fatalf("double tap fired before the second release")
	}
	rig.release(config.ButtonMacro1)
	if fired != 1 {
		t.Fatalf("fired=%d, want 1", fired)
	}

	// Taps spaced beyond the window do not pair up.
	rig.advance(time.Second)
	rig.press(config.ButtonMacro1)
	rig.release(config.ButtonMacro1)
	rig.advance(config.DoubleTapWindow + time.Millisecond)
	rig.press(config.ButtonMacro1)
	rig.release(config.ButtonMacro1)
	if fired != 1 {
		t.Errorf("slow taps fired a double tap")
	}
}

func TestBindingDoubleTapWindowRunsFromRelease(t *testing.T) {
	rig := newBindingRig()
	var fired int
	rig.bindings.OnDoubleTap(config.ButtonMacro2, func() { fired++ })

	// A long first hold must not eat into the window: the gap that counts is
	// release-to-press.
	rig.press(config.ButtonMacro2)
	rig.advance(100 * time.Millisecond)
	rig.release(config.ButtonMacro2)

	rig.advance(250 * time.Millisecond)
	rig.press(config.ButtonMacro2)
	rig.advance(20 * time.Millisecond)
	rig.release(config.ButtonMacro2)

	if fired != 1 {
		t.Fatalf("fired=%d, want 1 (first hold 100ms, release-to-press gap 250ms)", fired)
	}
}

func TestBindingComboFiresOnceOnFirstRelease(t *testing.T) {
	rig := newBindingRig()
	var fired int
	rig.bindings.OnCombo(config.ButtonLeftTop, config.ButtonLeftBottom, func() { fired++ })

	rig.press(config.ButtonLeftTop)
	rig.press(config.ButtonLeftBottom)
	if fired != 0 {
		t.Fatalf("combo fired before any release")
	}

	rig.release(config.ButtonLeftBottom)
	if fired != 1 {
		t.Fatalf("fired=%d on first release, want 1", fired)
	}
	rig.release(config.ButtonLeftTop)
	if fired != 1 {
		t.Fatalf("fired=%d after second release, want still 1", fired)
	}

	// A lone press of either member never fires it.
	rig.press(config.ButtonLeftTop)
	rig.release(config.ButtonLeftTop)
	if fired != 1 {
		t.Errorf("combo fired from a single button")
	}
}

func TestBindingTurned(t *testing.T) {
	rig := newBindingRig()
	var got []float64
	rig.bindings.OnTurned(config.EncoderMacro1, func(v float64) { got = append(got, v) })

	rig.turn(config.EncoderMacro1, 0.25)
	rig.turn(config.EncoderMacro2, 0.9) // different encoder
	if len(got) != 1 || got[0] != 0.25 {
		t.Errorf("got %v, want [0.25]", got)
	}
}

func TestBindingTurnedWhilePressed(t *testing.T) {
	rig := newBindingRig()
	var fired int
	rig.bindings.OnTurnedWhilePressed(config.EncoderNav, config.ButtonNav, func(float64) { fired++ })

	rig.turn(config.EncoderNav, 1.0)
	if fired != 0 {
		t.Fatalf("fired without the required button held")
	}

	rig.press(config.ButtonNav)
	rig.turn(config.EncoderNav, 2.0)
	if fired != 1 {
		t.Fatalf("fired=%d with button held, want 1", fired)
	}

	rig.release(config.ButtonNav)
	rig.turn(config.EncoderNav, 3.0)
	if fired != 1 {
		t.Errorf("fired after the button was released")
	}
}

func TestBindingDisabledTracksStateSilently(t *testing.T) {
	rig := newBindingRig()
	var fired int
	rig.bindings.OnPressed(config.ButtonNav, func() { fired++ })

	rig.bindings.SetEnabled(false)
	rig.press(config.ButtonNav)
	if fired != 0 {
		t.Fatalf("disabled bindings dispatched a handler")
	}
	if !rig.bindings.IsPressed(config.ButtonNav) {
		t.Fatal("pressed state lost while disabled")
	}

	rig.bindings.SetEnabled(true)
	rig.release(config.ButtonNav)
	rig.press(config.ButtonNav)
	if fired != 1 {
		t.Errorf("fired=%d after re-enable, want 1", fired)
	}
}

func TestBindingClearScope(t *testing.T) {
	rig := newBindingRig()
	scope := &fakeScope{visible: true}
	var scoped, global int
	rig.bindings.OnPressedScoped(scope, config.ButtonNav, func() { scoped++ })
	rig.bindings.OnTurnedScoped(scope, config.EncoderNav, func(float64) { scoped++ })
	rig.bindings.OnPressed(config.ButtonNav, func() { global++ })

	rig.bindings.ClearScope(scope)
	rig.press(config.ButtonNav)
	rig.turn(config.EncoderNav, 1.0)

	if scoped != 0 {
		t.Errorf("cleared scope still fired %d times", scoped)
	}
	if global != 1 {
		t.Errorf("global=%d after ClearScope, want 1", global)
	}
}

func TestBindingClearBindings(t *testing.T) {
	rig := newBindingRig()
	var fired int
	rig.bindings.OnPressed(config.ButtonNav, func() { fired++ })
	rig.bindings.OnTurned(config.EncoderNav, func(float64) { fired++ })

	rig.bindings.ClearBindings()
	rig.press(config.ButtonNav)
	rig.turn(config.EncoderNav, 1.0)
	if fired != 0 {
		t.Errorf("cleared bindings fired %d times", fired)
	}
}
