package config

import "github.com/PixPMusic/midi-studio/internal/gpio"

// EncoderMode fixes an encoder's behavior at construction.
//
// Absolute: normalized value [0.0, 1.0] with software stops (parameter
// control). Relative: infinite rotation, emits cumulative ±1.0 per detent
// (menu navigation).
type EncoderMode uint8

const (
	EncoderAbsolute EncoderMode = iota
	EncoderRelative
)

// EncoderDef is the static hardware configuration for one rotary encoder.
// Created at compile time, read-only thereafter.
type EncoderDef struct {
	ID             EncoderID
	PinA, PinB     gpio.Pin
	PPR            uint16
	StepsPerDetent uint8
	Mode           EncoderMode
}

// ButtonDef is the static hardware configuration for one button.
type ButtonDef struct {
	ID  ButtonID
	Pin gpio.Pin
}

// Buttons lists every physical button on the device.
var Buttons = []ButtonDef{
	// Navigation buttons (left side)
	{ID: ButtonLeftTop, Pin: gpio.MuxPin(9)},
	{ID: ButtonLeftCenter, Pin: gpio.MuxPin(10)},
	{ID: ButtonLeftBottom, Pin: gpio.MuxPin(11)},

	// Navigation buttons (bottom)
	{ID: ButtonBottomLeft, Pin: gpio.MuxPin(14)},
	{ID: ButtonBottomCenter, Pin: gpio.MuxPin(13)},
	{ID: ButtonBottomRight, Pin: gpio.MuxPin(12)},

	// Navigation encoder button
	{ID: ButtonNav, Pin: gpio.MCUPin(32)},

	// Encoder macro buttons
	{ID: ButtonMacro1, Pin: gpio.MuxPin(7)},
	{ID: ButtonMacro2, Pin: gpio.MuxPin(4)},
	{ID: ButtonMacro3, Pin: gpio.MuxPin(2)},
	{ID: ButtonMacro4, Pin: gpio.MuxPin(0)},
	{ID: ButtonMacro5, Pin: gpio.MuxPin(6)},
	{ID: ButtonMacro6, Pin: gpio.MuxPin(5)},
	{ID: ButtonMacro7, Pin: gpio.MuxPin(3)},
	{ID: ButtonMacro8, Pin: gpio.MuxPin(1)},
}

// Encoders lists every physical rotary encoder on the device.
var Encoders = []EncoderDef{
	// Main encoder matrix (2x4 grid), absolute mode for parameter control.
	{ID: EncoderMacro1, PinA: gpio.MCUPin(22), PinB: gpio.MCUPin(23), PPR: 24, StepsPerDetent: 1},
	{ID: EncoderMacro2, PinA: gpio.MCUPin(18), PinB: gpio.MCUPin(19), PPR: 24, StepsPerDetent: 1},
	{ID: EncoderMacro3, PinA: gpio.MCUPin(40), PinB: gpio.MCUPin(41), PPR: 24, StepsPerDetent: 1},
	{ID: EncoderMacro4, PinA: gpio.MCUPin(36), PinB: gpio.MCUPin(37), PPR: 24, StepsPerDetent: 1},
	{ID: EncoderMacro5, PinA: gpio.MCUPin(20), PinB: gpio.MCUPin(21), PPR: 24, StepsPerDetent: 1},
	{ID: EncoderMacro6, PinA: gpio.MCUPin(16), PinB: gpio.MCUPin(17), PPR: 24, StepsPerDetent: 1},
	{ID: EncoderMacro7, PinA: gpio.MCUPin(14), PinB: gpio.MCUPin(15), PPR: 24, StepsPerDetent: 1},
	{ID: EncoderMacro8, PinA: gpio.MCUPin(38), PinB: gpio.MCUPin(39), PPR: 24, StepsPerDetent: 1},

	// Navigation encoder: relative mode, one ±1.0 step per physical detent.
	{ID: EncoderNav, PinA: gpio.MCUPin(31), PinB: gpio.MCUPin(30), PPR: 24, StepsPerDetent: 4, Mode: EncoderRelative},

	// High-precision parameter encoder.
	{ID: EncoderOpt, PinA: gpio.MCUPin(34), PinB: gpio.MCUPin(33), PPR: 600, StepsPerDetent: 1},
}
