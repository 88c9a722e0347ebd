package config

// CCMapping wires one hardware control to a MIDI Control Change message.
// InputID holds either a ButtonID or an EncoderID; the disjoint numeric
// ranges keep them apart.
type CCMapping struct {
	InputID uint16
	Channel uint8
	CC      uint8
}

// ButtonCC builds a mapping entry for a button.
func ButtonCC(id ButtonID, channel, cc uint8) CCMapping {
	return CCMapping{InputID: uint16(id), Channel: channel, CC: cc}
}

// EncoderCC builds a mapping entry for an encoder.
func EncoderCC(id EncoderID, channel, cc uint8) CCMapping {
	return CCMapping{InputID: uint16(id), Channel: channel, CC: cc}
}

// MidiMappings is the default control-to-CC table, used when no plugin has
// taken over a control. All entries send on channel 0.
//
// CC ranges: 1-10 main encoders, 11-18 encoder buttons, 19-25 navigation
// buttons.
var MidiMappings = []CCMapping{
	// Main encoders (CC 1-10)
	EncoderCC(EncoderMacro1, 0, 1),
	EncoderCC(EncoderMacro2, 0, 2),
	EncoderCC(EncoderMacro3, 0, 3),
	EncoderCC(EncoderMacro4, 0, 4),
	EncoderCC(EncoderMacro5, 0, 5),
	EncoderCC(EncoderMacro6, 0, 6),
	EncoderCC(EncoderMacro7, 0, 7),
	EncoderCC(EncoderMacro8, 0, 8),
	EncoderCC(EncoderNav, 0, 9),
	EncoderCC(EncoderOpt, 0, 10),

	// Encoder buttons (CC 11-18)
	ButtonCC(ButtonMacro1, 0, 11),
	ButtonCC(ButtonMacro2, 0, 12),
	ButtonCC(ButtonMacro3, 0, 13),
	ButtonCC(ButtonMacro4, 0, 14),
	ButtonCC(ButtonMacro5, 0, 15),
	ButtonCC(ButtonMacro6, 0, 16),
	ButtonCC(ButtonMacro7, 0, 17),
	ButtonCC(ButtonMacro8, 0, 18),

	// Navigation buttons (CC 19-25)
	ButtonCC(ButtonLeftTop, 0, 19),
	ButtonCC(ButtonLeftCenter, 0, 20),
	ButtonCC(ButtonLeftBottom, 0, 21),
	ButtonCC(ButtonBottomLeft, 0, 22),
	ButtonCC(ButtonBottomCenter, 0, 23),
	ButtonCC(ButtonBottomRight, 0, 24),
	ButtonCC(ButtonNav, 0, 25),
}
