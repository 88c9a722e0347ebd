package config

// ButtonID identifies a physical button. IDs live in the 0-99 range so they
// never collide with EncoderID values when both are stored in one wider key
// (the MIDI mapping table does exactly that).
//
// Ranges:
//
//	10-19  navigation buttons (left side)
//	20-29  navigation buttons (bottom)
//	30-39  encoder integrated buttons (main matrix)
//	40-49  special encoder buttons
type ButtonID uint16

const (
	ButtonLeftTop    ButtonID = 10
	ButtonLeftCenter ButtonID = 11
	ButtonLeftBottom ButtonID = 12

	ButtonBottomLeft   ButtonID = 20
	ButtonBottomCenter ButtonID = 21
	ButtonBottomRight  ButtonID = 22

	ButtonMacro1 ButtonID = 31
	ButtonMacro2 ButtonID = 32
	ButtonMacro3 ButtonID = 33
	ButtonMacro4 ButtonID = 34
	ButtonMacro5 ButtonID = 35
	ButtonMacro6 ButtonID = 36
	ButtonMacro7 ButtonID = 37
	ButtonMacro8 ButtonID = 38

	ButtonNav ButtonID = 40
)

// EncoderID identifies a physical rotary encoder. IDs live in the 300-999
// range, disjoint from ButtonID.
//
// Ranges:
//
//	301-308  main encoder matrix (2x4 grid)
//	400-499  special encoders
type EncoderID uint16

const (
	EncoderMacro1 EncoderID = 301
	EncoderMacro2 EncoderID = 302
	EncoderMacro3 EncoderID = 303
	EncoderMacro4 EncoderID = 304
	EncoderMacro5 EncoderID = 305
	EncoderMacro6 EncoderID = 306
	EncoderMacro7 EncoderID = 307
	EncoderMacro8 EncoderID = 308

	EncoderNav EncoderID = 400
	EncoderOpt EncoderID = 410
)

// Ranges used by the MIDI mapper to tell the two ID spaces apart inside a
// single uint16 key.
const (
	ButtonIDMin  uint16 = 10
	ButtonIDMax  uint16 = 100
	EncoderIDMin uint16 = 300
	EncoderIDMax uint16 = 500
)
