// Package gpio models the digital input side of the controller hardware:
// pin descriptions, debounced pin readers, and the 16-channel multiplexer.
//
// Actual electrical access is abstracted behind the Line and MuxPort
// interfaces so the input pipeline stays testable off-hardware; simulated
// implementations live in sim.go.
package gpio

import "time"

// Electrical constants for the reference hardware.
const (
	// MaxChannels is the channel count of the CD74HC4067 multiplexer.
	MaxChannels = 16
	// MaxMCUPin is the highest direct pin number accepted from a hardware
	// definition. Anything above it is a wiring mistake and the control is
	// skipped at construction.
	MaxMCUPin = 99
	// SettleTime is how long the multiplexer signal line needs after a
	// channel switch before it can be trusted.
	SettleTime = 20 * time.Microsecond
	// DebounceInterval is the raw electrical bounce filter applied by
	// direct-pin readers.
	DebounceInterval = 5 * time.Millisecond
)

// Pull selects the input bias wiring for a pin.
type Pull uint8

const (
	PullUp Pull = iota
	PullDown
	PullNone
)

// Source tells whether a pin is wired straight to the MCU or through a
// multiplexer channel.
type Source uint8

const (
	SourceMCU Source = iota
	SourceMux
)

// Pin describes one digital input: either a direct MCU pin or a multiplexer
// channel, plus its pull mode. Immutable hardware-definition data.
type Pin struct {
	Source Source
	Number uint8
	Pull   Pull
}

// MCUPin describes a direct microcontroller pin with pull-up wiring.
func MCUPin(n uint8) Pin {
	return Pin{Source: SourceMCU, Number: n, Pull: PullUp}
}

// MuxPin describes a multiplexer channel with pull-up wiring.
func MuxPin(channel uint8) Pin {
	return Pin{Source: SourceMux, Number: channel, Pull: PullUp}
}

// Valid reports whether the pin number is inside the range its source
// supports: channel <= 15 for multiplexed pins, pin <= 99 for direct ones.
func (p Pin) Valid() bool {
	if p.Source == SourceMux {
		return p.Number < MaxChannels
	}
	return p.Number <= MaxMCUPin
}

// IsMultiplexed reports whether the pin goes through the multiplexer.
func (p Pin) IsMultiplexed() bool {
	return p.Source == SourceMux
}
