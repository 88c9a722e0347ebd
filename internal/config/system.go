package config

import "time"

// Application identification.
const (
	AppName    = "MIDI Studio"
	AppID      = "com.pixpmusic.midistudio"
	AppVersion = "0.9.0"
)

// Hardware counts. Electrical timing (multiplexer settle, raw bounce
// filtering) lives with the gpio package.
const (
	EncoderCount = 10
	ButtonCount  = 15
)

// Input timing.
const (
	// ButtonDebounce is the level-debounce window applied by the button
	// controller: a logical state change is reported only once this much
	// time has passed since the last reported change.
	ButtonDebounce = 50 * time.Millisecond

	LongPressDefault = 500 * time.Millisecond
	DoubleTapWindow  = 300 * time.Millisecond
)

// Encoder feel. The default virtual range assumes full quadrature decode (x4)
// over a 270-degree mechanical sweep; DiscreteSensitivity guarantees at least
// two raw ticks per discrete step when quantization widens the range. Both
// are tuned for the reference hardware (PPR 24-600); retune when retargeting.
const (
	QuadratureTicks     = 4
	FullRangeAngle      = 270.0
	DiscreteSensitivity = 0.5
)

// MIDI parameters.
const (
	MidiDefaultChannel = 0
	MidiCCValueMax     = 127
	MaxActiveNotes     = 16

	// MidiInQueueSize bounds the pending queue between the driver callback
	// goroutine and the main loop drain.
	MidiInQueueSize = 32
)

// Memory limits for the fixed-capacity collections.
const (
	MaxMidiMappings = EncoderCount + ButtonCount
)

// Main loop.
const (
	TickPeriod = 1 * time.Millisecond
)
