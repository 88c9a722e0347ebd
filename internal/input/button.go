package input

import (
	"github.com/PixPMusic/midi-studio/internal/config"
	"github.com/PixPMusic/midi-studio/internal/gpio"
)

// Button couples one pin reader with a logical pressed/released state.
// Pull-up wiring means the electrical level is inverted: low = pressed.
type Button struct {
	id      config.ButtonID
	reader  gpio.PinReader
	pressed bool
}

// NewButton initializes the reader and captures the initial state. A nil
// reader means the control could not be wired; the caller skips it.
func NewButton(def config.ButtonDef, reader gpio.PinReader) *Button {
	if reader == nil {
		return nil
	}
	b := &Button{id: def.ID, reader: reader}
	reader.Initialize()
	b.pressed = b.readState()
	return b
}

// Update refreshes the reader's debounce sampling and the logical state.
func (b *Button) Update() {
	b.reader.Update()
	b.pressed = b.readState()
}

// IsPressed returns the logical state as of the last Update.
func (b *Button) IsPressed() bool { return b.pressed }

// ID returns the button's hardware identifier.
func (b *Button) ID() config.ButtonID { return b.id }

func (b *Button) readState() bool {
	return !b.reader.Read()
}
