package bus

import "github.com/PixPMusic/midi-studio/internal/config"

// Category is the coarse event grouping; Type is the fine-grained code.
// Together they form the bus key, so type codes only need to be unique
// within their category (they are kept globally unique anyway for log
// readability).
type (
	Category uint8
	Type     uint16
)

const (
	CategorySystem      Category = 0
	CategoryInput       Category = 1
	CategoryMIDI        Category = 2
	CategoryUI          Category = 3
	CategoryIntegration Category = 4
)

const (
	TypeEncoderChanged Type = 100
	TypeButtonPress    Type = 101
	TypeButtonRelease  Type = 102
)

const (
	TypeMidiNoteOn  Type = 2000
	TypeMidiNoteOff Type = 2001
	TypeMidiCC      Type = 2002
	TypeMidiSysEx   Type = 2006
)

const (
	TypeViewChange       Type = 4000
	TypeSystemError      Type = 4002
	TypeBootComplete     Type = 4003
	TypePluginRegistered Type = 4004
)

// Event is a transient value dispatched synchronously; events are never
// stored by the bus.
type Event interface {
	Category() Category
	Type() Type
}

// EncoderChangedEvent carries an encoder's flushed value: normalized [0,1]
// in absolute mode, cumulative ±1.0 steps in relative mode.
type EncoderChangedEvent struct {
	EncoderID config.EncoderID
	Value     float64
}

func (EncoderChangedEvent) Category() Category { return CategoryInput }
func (EncoderChangedEvent) Type() Type         { return TypeEncoderChanged }

// ButtonPressEvent reports a debounced transition to pressed.
type ButtonPressEvent struct {
	ButtonID config.ButtonID
	Pressed  bool
}

func (ButtonPressEvent) Category() Category { return CategoryInput }
func (ButtonPressEvent) Type() Type         { return TypeButtonPress }

// ButtonReleaseEvent reports a debounced transition to released.
type ButtonReleaseEvent struct {
	ButtonID config.ButtonID
}

func (ButtonReleaseEvent) Category() Category { return CategoryInput }
func (ButtonReleaseEvent) Type() Type         { return TypeButtonRelease }

// MidiCCEvent is a Control Change, either received from the transport or
// republished by the mapper after an outbound send. Source is the originating
// control ID for mapper traffic, 0 for external messages.
type MidiCCEvent struct {
	Channel    uint8
	Controller uint8
	Value      uint8
	Source     uint16
}

func (MidiCCEvent) Category() Category { return CategoryMIDI }
func (MidiCCEvent) Type() Type         { return TypeMidiCC }

// MidiNoteOnEvent is an incoming Note On.
type MidiNoteOnEvent struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
}

func (MidiNoteOnEvent) Category() Category { return CategoryMIDI }
func (MidiNoteOnEvent) Type() Type         { return TypeMidiNoteOn }

// MidiNoteOffEvent is an incoming Note Off.
type MidiNoteOffEvent struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
}

func (MidiNoteOffEvent) Category() Category { return CategoryMIDI }
func (MidiNoteOffEvent) Type() Type         { return TypeMidiNoteOff }

// SysExEvent is a complete incoming System Exclusive message. Data is owned
// by the emitter for the duration of the dispatch only; subscribers must copy
// what they keep.
type SysExEvent struct {
	Data []byte
}

func (SysExEvent) Category() Category { return CategoryMIDI }
func (SysExEvent) Type() Type         { return TypeMidiSysEx }

// ViewChangeEvent announces which window surface is now frontmost.
type ViewChangeEvent struct {
	View string
}

func (ViewChangeEvent) Category() Category { return CategoryUI }
func (ViewChangeEvent) Type() Type         { return TypeViewChange }

// BootCompleteEvent is emitted once, when the splash screen finishes.
type BootCompleteEvent struct{}

func (BootCompleteEvent) Category() Category { return CategorySystem }
func (BootCompleteEvent) Type() Type         { return TypeBootComplete }

// PluginRegisteredEvent announces a successfully initialized plugin.
type PluginRegisteredEvent struct {
	Name string
}

func (PluginRegisteredEvent) Category() Category { return CategorySystem }
func (PluginRegisteredEvent) Type() Type         { return TypePluginRegistered }

// SystemErrorEvent reports a recoverable subsystem error for optional
// debug display.
type SystemErrorEvent struct {
	Code    uint16
	Message string
}

func (SystemErrorEvent) Category() Category { return CategorySystem }
func (SystemErrorEvent) Type() Type         { return TypeSystemError }
