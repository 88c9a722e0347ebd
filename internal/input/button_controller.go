package input

import (
	"log"
	"time"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
	"github.com/PixPMusic/midi-studio/internal/gpio"
)

// ButtonController owns every button instance, polls them once per tick and
// emits press/release events after level debouncing: a logical change is
// reported only if the debounce window has passed since the last reported
// change. Faster toggling is absorbed; the button catches up to its latest
// real state once the window reopens.
type ButtonController struct {
	buttons    []*Button
	lastStates []bool
	lastChange []time.Time
	idToIndex  map[config.ButtonID]int

	events *bus.Bus
	now    func() time.Time
}

// NewButtonController constructs all buttons from their definitions. Buttons
// whose pin reader cannot be built are skipped; the rest proceed.
func NewButtonController(defs []config.ButtonDef, mux *gpio.Multiplexer, lines LineProvider, events *bus.Bus) *ButtonController {
	c := &ButtonController{
		idToIndex: make(map[config.ButtonID]int, len(defs)),
		events:    events,
		now:       time.Now,
	}

	for _, def := range defs {
		reader := NewPinReader(def.Pin, mux, lines)
		btn := NewButton(def, reader)
		if btn == nil {
			log.Printf("[ButtonController] Failed to create button %d, skipping", def.ID)
			continue
		}
		c.idToIndex[def.ID] = len(c.buttons)
		c.buttons = append(c.buttons, btn)
		c.lastStates = append(c.lastStates, false)
		c.lastChange = append(c.lastChange, time.Time{})
	}
	return c
}

// UpdateAll polls every button and emits debounced transitions.
func (c *ButtonController) UpdateAll() {
	now := c.now()

	for i, btn := range c.buttons {
		btn.Update()

		current := btn.IsPressed()
		if current == c.lastStates[i] {
			continue
		}
		if now.Sub(c.lastChange[i]) < config.ButtonDebounce {
			// Too soon after the last reported change; absorbed.
			continue
		}

		c.lastStates[i] = current
		c.lastChange[i] = now

		if current {
			c.events.Emit(bus.ButtonPressEvent{ButtonID: btn.ID(), Pressed: true})
		} else {
			c.events.Emit(bus.ButtonReleaseEvent{ButtonID: btn.ID()})
		}
	}
}

// Get returns the button with the given ID, or nil.
func (c *ButtonController) Get(id config.ButtonID) *Button {
	if i, ok := c.idToIndex[id]; ok {
		return c.buttons[i]
	}
	return nil
}
