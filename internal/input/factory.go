package input

import (
	"log"

	"github.com/PixPMusic/midi-studio/internal/gpio"
)

// LineProvider hands out the raw digital line behind a direct MCU pin number.
// It returns nil when the pin cannot be acquired.
type LineProvider func(pin uint8) gpio.Line

// NewPinReader builds the reader appropriate for a pin's source: a debounced
// direct reader for MCU pins, a channel reader on the shared multiplexer for
// multiplexed ones. Returns nil for pins that cannot be wired; the caller
// skips the control.
func NewPinReader(pin gpio.Pin, mux *gpio.Multiplexer, lines LineProvider) gpio.PinReader {
	if !pin.Valid() {
		log.Printf("[Input] Invalid pin %d (source %d)", pin.Number, pin.Source)
		return nil
	}

	if pin.IsMultiplexed() {
		if mux == nil {
			log.Printf("[Input] No multiplexer for channel %d", pin.Number)
			return nil
		}
		return gpio.NewMuxReader(pin.Number, mux)
	}

	if lines == nil {
		return nil
	}
	line := lines(pin.Number)
	if line == nil {
		log.Printf("[Input] No line for MCU pin %d", pin.Number)
		return nil
	}
	return gpio.NewDirectReader(line)
}
