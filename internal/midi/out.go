package midi

import (
	"fmt"
	"log"

	"gitlab.com/gomidi/midi/v2"

	"github.com/PixPMusic/midi-studio/internal/config"
)

// Sender is the outbound MIDI surface the mapper and plugins depend on. A nil
// Out satisfies callers holding the interface through explicit nil checks at
// the call sites that hand it out.
type Sender interface {
	SendCC(channel, controller, value uint8) error
	SendNoteOn(channel, note, velocity uint8) error
	SendNoteOff(channel, note uint8) error
	SendSysEx(data []byte) error
}

type noteKey struct {
	channel uint8
	note    uint8
}

// Out sends messages to one output port and remembers which notes are
// sounding so Silence can close them all on shutdown or plugin teardown.
type Out struct {
	portName string
	send     func(midi.Message) error

	activeNotes map[noteKey]struct{}
}

func newOut(portName string, send func(midi.Message) error) *Out {
	return &Out{
		portName:    portName,
		send:        send,
		activeNotes: make(map[noteKey]struct{}, config.MaxActiveNotes),
	}
}

// PortName returns the attached output port's name.
func (o *Out) PortName() string { return o.portName }

// SendCC sends a Control Change.
func (o *Out) SendCC(channel, controller, value uint8) error {
	if err := o.send(midi.ControlChange(channel, controller, value)); err != nil {
		return fmt.Errorf("failed to send CC %d on %s: %w", controller, o.portName, err)
	}
	return nil
}

// SendNoteOn sends a Note On and tracks the note as sounding. Tracking is
// capped; notes beyond the cap still sound but will not be silenced.
func (o *Out) SendNoteOn(channel, note, velocity uint8) error {
	if err := o.send(midi.NoteOn(channel, note, velocity)); err != nil {
		return fmt.Errorf("failed to send note on %d on %s: %w", note, o.portName, err)
	}

	k := noteKey{channel: channel, note: note}
	if _, ok := o.activeNotes[k]; !ok && len(o.activeNotes) >= config.MaxActiveNotes {
		log.Printf("[MidiOut] Active note table full, note %d untracked", note)
		return nil
	}
	o.activeNotes[k] = struct{}{}
	return nil
}

// SendNoteOff sends a Note Off and clears the tracking entry.
func (o *Out) SendNoteOff(channel, note uint8) error {
	delete(o.activeNotes, noteKey{channel: channel, note: note})
	if err := o.send(midi.NoteOff(channel, note)); err != nil {
		return fmt.Errorf("failed to send note off %d on %s: %w", note, o.portName, err)
	}
	return nil
}

// SendProgramChange sends a Program Change.
func (o *Out) SendProgramChange(channel, program uint8) error {
	if err := o.send(midi.ProgramChange(channel, program)); err != nil {
		return fmt.Errorf("failed to send program change on %s: %w", o.portName, err)
	}
	return nil
}

// SendPitchBend sends a pitch bend, relative to center.
func (o *Out) SendPitchBend(channel uint8, value int16) error {
	if err := o.send(midi.Pitchbend(channel, value)); err != nil {
		return fmt.Errorf("failed to send pitch bend on %s: %w", o.portName, err)
	}
	return nil
}

// SendChannelPressure sends a channel pressure (aftertouch) message.
func (o *Out) SendChannelPressure(channel, pressure uint8) error {
	if err := o.send(midi.AfterTouch(channel, pressure)); err != nil {
		return fmt.Errorf("failed to send channel pressure on %s: %w", o.portName, err)
	}
	return nil
}

// SendSysEx sends a System Exclusive message. Data excludes the F0/F7 framing.
func (o *Out) SendSysEx(data []byte) error {
	if err := o.send(midi.SysEx(data)); err != nil {
		return fmt.Errorf("failed to send sysex on %s: %w", o.portName, err)
	}
	return nil
}

// Silence sends Note Off for every tracked sounding note.
func (o *Out) Silence() {
	for k := range o.activeNotes {
		if err := o.send(midi.NoteOff(k.channel, k.note)); err != nil {
			log.Printf("[MidiOut] Failed to silence note %d: %v", k.note, err)
		}
	}
	o.activeNotes = make(map[noteKey]struct{}, config.MaxActiveNotes)
}

// ActiveNoteCount reports how many notes are tracked as sounding.
func (o *Out) ActiveNoteCount() int {
	return len(o.activeNotes)
}
