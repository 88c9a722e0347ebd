package input

import (
	"time"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
)

// Scope gates a binding on some visible surface. A binding with a scope only
// fires while its scope reports visible, and visible scoped bindings take
// priority over global ones for the same gesture.
type Scope interface {
	Visible() bool
}

// ButtonTrigger names the gesture a button binding reacts to.
type ButtonTrigger uint8

const (
	TriggerPressed ButtonTrigger = iota
	TriggerReleased
	TriggerLongPress
	TriggerDoubleTap
	TriggerCombo
)

type buttonBinding struct {
	trigger  ButtonTrigger
	button   config.ButtonID
	partner  config.ButtonID // combo only
	duration time.Duration   // long press only
	scope    Scope
	handler  func()
}

type encoderBinding struct {
	encoder       config.EncoderID
	requireButton bool
	button        config.ButtonID
	scope         Scope
	handler       func(value float64)
}

// buttonState is the per-button gesture tracking the service keeps from the
// debounced press/release stream.
type buttonState struct {
	pressed        bool
	pressedAt      time.Time
	longPressFired bool
	tapCount       int
	lastReleaseAt  time.Time
}

// Bindings routes debounced input events to registered action handlers. It
// subscribes to the bus once at construction; registration happens through
// the On* methods, typically from plugin initialization.
//
// Dispatch is two-pass per gesture: bindings whose scope is currently visible
// fire first, and if any did, global bindings for the same gesture are
// suppressed. Long presses are driven by ProcessTick since they fire on time,
// not on an edge.
type Bindings struct {
	buttonBindings  []buttonBinding
	encoderBindings []encoderBinding

	states  map[config.ButtonID]*buttonState
	enabled bool

	now func() time.Time
}

// NewBindings wires the service onto the event bus.
func NewBindings(events *bus.Bus) *Bindings {
	b := &Bindings{
		states:  make(map[config.ButtonID]*buttonState),
		enabled: true,
		now:     time.Now,
	}

	events.Subscribe(bus.CategoryInput, bus.TypeButtonPress, func(e bus.Event) {
		if ev, ok := e.(bus.ButtonPressEvent); ok {
			b.handlePress(ev.ButtonID)
		}
	})
	events.Subscribe(bus.CategoryInput, bus.TypeButtonRelease, func(e bus.Event) {
		if ev, ok := e.(bus.ButtonReleaseEvent); ok {
			b.handleRelease(ev.ButtonID)
		}
	})
	events.Subscribe(bus.CategoryInput, bus.TypeEncoderChanged, func(e bus.Event) {
		if ev, ok := e.(bus.EncoderChangedEvent); ok {
			b.handleTurn(ev.EncoderID, ev.Value)
		}
	})
	return b
}

// SetEnabled gates handler dispatch. Gesture state keeps tracking while
// disabled so re-enabling does not see stale pressed flags.
func (b *Bindings) SetEnabled(enabled bool) { b.enabled = enabled }

// ClearBindings drops every registered binding. Gesture state survives.
func (b *Bindings) ClearBindings() {
	b.buttonBindings = nil
	b.encoderBindings = nil
}

// ClearScope drops every binding registered against the given scope.
func (b *Bindings) ClearScope(scope Scope) {
	if scope == nil {
		return
	}
	kept := b.buttonBindings[:0]
	for _, bb := range b.buttonBindings {
		if bb.scope != scope {
			kept = append(kept, bb)
		}
	}
	b.buttonBindings = kept

	keptEnc := b.encoderBindings[:0]
	for _, eb := range b.encoderBindings {
		if eb.scope != scope {
			keptEnc = append(keptEnc, eb)
		}
	}
	b.encoderBindings = keptEnc
}

// OnPressed fires on every debounced press of the button.
func (b *Bindings) OnPressed(id config.ButtonID, fn func()) {
	b.OnPressedScoped(nil, id, fn)
}

func (b *Bindings) OnPressedScoped(scope Scope, id config.ButtonID, fn func()) {
	b.addButton(buttonBinding{trigger: TriggerPressed, button: id, scope: scope, handler: fn})
}

// OnReleased fires on every debounced release of the button.
func (b *Bindings) OnReleased(id config.ButtonID, fn func()) {
	b.OnReleasedScoped(nil, id, fn)
}

func (b *Bindings) OnReleasedScoped(scope Scope, id config.ButtonID, fn func()) {
	b.addButton(buttonBinding{trigger: TriggerReleased, button: id, scope: scope, handler: fn})
}

// OnLongPress fires once per hold after the button has stayed pressed for the
// given duration. Zero duration means the default hold time.
func (b *Bindings) OnLongPress(id config.ButtonID, duration time.Duration, fn func()) {
	b.OnLongPressScoped(nil, id, duration, fn)
}

func (b *Bindings) OnLongPressScoped(scope Scope, id config.ButtonID, duration time.Duration, fn func()) {
	if duration <= 0 {
		duration = config.LongPressDefault
	}
	b.addButton(buttonBinding{trigger: TriggerLongPress, button: id, duration: duration, scope: scope, handler: fn})
}

// OnDoubleTap fires on the release of the second press when both presses land
// inside the double-tap window.
func (b *Bindings) OnDoubleTap(id config.ButtonID, fn func()) {
	b.OnDoubleTapScoped(nil, id, fn)
}

func (b *Bindings) OnDoubleTapScoped(scope Scope, id config.ButtonID, fn func()) {
	b.addButton(buttonBinding{trigger: TriggerDoubleTap, button: id, scope: scope, handler: fn})
}

// OnCombo fires when either button is released while both are held.
func (b *Bindings) OnCombo(first, second config.ButtonID, fn func()) {
	b.OnComboScoped(nil, first, second, fn)
}

func (b *Bindings) OnComboScoped(scope Scope, first, second config.ButtonID, fn func()) {
	b.addButton(buttonBinding{trigger: TriggerCombo, button: first, partner: second, scope: scope, handler: fn})
}

// OnTurned fires on every coalesced encoder value change.
func (b *Bindings) OnTurned(id config.EncoderID, fn func(value float64)) {
	b.OnTurnedScoped(nil, id, fn)
}

func (b *Bindings) OnTurnedScoped(scope Scope, id config.EncoderID, fn func(value float64)) {
	b.encoderBindings = append(b.encoderBindings, encoderBinding{encoder: id, scope: scope, handler: fn})
}

// OnTurnedWhilePressed fires on encoder changes only while the named button
// is held.
func (b *Bindings) OnTurnedWhilePressed(enc config.EncoderID, btn config.ButtonID, fn func(value float64)) {
	b.OnTurnedWhilePressedScoped(nil, enc, btn, fn)
}

func (b *Bindings) OnTurnedWhilePressedScoped(scope Scope, enc config.EncoderID, btn config.ButtonID, fn func(value float64)) {
	b.encoderBindings = append(b.encoderBindings, encoderBinding{
		encoder: enc, requireButton: true, button: btn, scope: scope, handler: fn,
	})
}

func (b *Bindings) addButton(bb buttonBinding) {
	if bb.handler == nil {
		return
	}
	b.buttonBindings = append(b.buttonBindings, bb)
}

// IsPressed reports the tracked debounced state of a button.
func (b *Bindings) IsPressed(id config.ButtonID) bool {
	if s, ok := b.states[id]; ok {
		return s.pressed
	}
	return false
}

func (b *Bindings) state(id config.ButtonID) *buttonState {
	s, ok := b.states[id]
	if !ok {
		s = &buttonState{}
		b.states[id] = s
	}
	return s
}

func (b *Bindings) handlePress(id config.ButtonID) {
	now := b.now()
	s := b.state(id)
	s.pressed = true
	s.pressedAt = now
	s.longPressFired = false

	// Taps are counted on press, the double tap fires on release. The window
	// runs from the previous release to this press, so how long the first
	// tap was held does not eat into it.
	if now.Sub(s.lastReleaseAt) <= config.DoubleTapWindow {
		s.tapCount++
	} else {
		s.tapCount = 1
	}

	if b.enabled {
		b.dispatchButton(TriggerPressed, id, nil)
	}
}

func (b *Bindings) handleRelease(id config.ButtonID) {
	s := b.state(id)
	s.lastReleaseAt = b.now()

	// Combos are checked before this button's state is cleared, so releasing
	// either member of a held pair fires the combo exactly once.
	if b.enabled {
		b.dispatchCombos(id)
	}

	doubleTap := s.tapCount >= 2
	if doubleTap {
		s.tapCount = 0
	}
	s.pressed = false
	s.longPressFired = false

	if !b.enabled {
		return
	}
	if doubleTap {
		b.dispatchButton(TriggerDoubleTap, id, nil)
	}
	b.dispatchButton(TriggerReleased, id, nil)
}

func (b *Bindings) handleTurn(id config.EncoderID, value float64) {
	if !b.enabled {
		return
	}

	fired := false
	for _, eb := range b.encoderBindings {
		if eb.scope == nil || !b.encoderMatches(eb, id) {
			continue
		}
		if !eb.scope.Visible() {
			continue
		}
		eb.handler(value)
		fired = true
	}
	if fired {
		return
	}
	for _, eb := range b.encoderBindings {
		if eb.scope != nil || !b.encoderMatches(eb, id) {
			continue
		}
		eb.handler(value)
	}
}

func (b *Bindings) encoderMatches(eb encoderBinding, id config.EncoderID) bool {
	if eb.encoder != id {
		return false
	}
	if eb.requireButton && !b.IsPressed(eb.button) {
		return false
	}
	return true
}

// ProcessTick advances time-driven gestures. Call once per main-loop tick.
func (b *Bindings) ProcessTick() {
	now := b.now()
	for id, s := range b.states {
		if !s.pressed || s.longPressFired {
			continue
		}
		if b.fireLongPress(id, now.Sub(s.pressedAt)) {
			s.longPressFired = true
		}
	}
}

// fireLongPress dispatches matured long-press bindings for one held button.
// It reports whether anything fired so the hold only triggers once.
func (b *Bindings) fireLongPress(id config.ButtonID, held time.Duration) bool {
	if !b.enabled {
		return false
	}
	matured := func(bb buttonBinding) bool { return held >= bb.duration }
	return b.dispatchButton(TriggerLongPress, id, matured)
}

// dispatchButton runs the two-pass scoped-then-global dispatch for one
// gesture. The optional filter narrows candidates (long-press maturity).
func (b *Bindings) dispatchButton(trigger ButtonTrigger, id config.ButtonID, filter func(buttonBinding) bool) bool {
	fired := false
	for _, bb := range b.buttonBindings {
		if bb.scope == nil || bb.trigger != trigger || bb.button != id {
			continue
		}
		if filter != nil && !filter(bb) {
			continue
		}
		if !bb.scope.Visible() {
			continue
		}
		bb.handler()
		fired = true
	}
	if fired {
		return true
	}
	for _, bb := range b.buttonBindings {
		if bb.scope != nil || bb.trigger != trigger || bb.button != id {
			continue
		}
		if filter != nil && !filter(bb) {
			continue
		}
		bb.handler()
		fired = true
	}
	return fired
}

// dispatchCombos fires combo bindings where the releasing button is either
// member and both members are still flagged pressed.
func (b *Bindings) dispatchCombos(id config.ButtonID) {
	fired := false
	for _, bb := range b.buttonBindings {
		if bb.scope == nil || !b.comboMatches(bb, id) {
			continue
		}
		if !bb.scope.Visible() {
			continue
		}
		bb.handler()
		fired = true
	}
	if fired {
		return
	}
	for _, bb := range b.buttonBindings {
		if bb.scope != nil || !b.comboMatches(bb, id) {
			continue
		}
		bb.handler()
	}
}

func (b *Bindings) comboMatches(bb buttonBinding, releasing config.ButtonID) bool {
	if bb.trigger != TriggerCombo {
		return false
	}
	if releasing != bb.button && releasing != bb.partner {
		return false
	}
	return b.IsPressed(bb.button) && b.IsPressed(bb.partner)
}
