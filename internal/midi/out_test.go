package midi

import (
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/PixPMusic/midi-studio/internal/config"
)

func captureOut() (*Out, *[]gomidi.Message) {
	sent := &[]gomidi.Message{}
	out := newOut("test", func(msg gomidi.Message) error {
		*sent = append(*sent, msg)
		return nil
	})
	return out, sent
}

func TestOutTracksActiveNotes(t *testing.T) {
	out, _ := captureOut()

	out.SendNoteOn(0, 60, 100)
	out.SendNoteOn(0, 64, 100)
	out.SendNoteOn(0, 60, 110) // retrigger, no new entry
	if got := out.ActiveNoteCount(); got != 2 {
		t.Fatalf("ActiveNoteCount = %d, want 2", got)
	}

	out.SendNoteOff(0, 60)
	if got := out.ActiveNoteCount(); got != 1 {
		t.Fatalf("ActiveNoteCount after off = %d, want 1", got)
	}
}

func TestOutSilenceClosesEverything(t *testing.T) {
	out, sent := captureOut()

	out.SendNoteOn(0, 60, 100)
	out.SendNoteOn(1, 72, 100)
	before := len(*sent)

	out.Silence()
	if got := len(*sent) - before; got != 2 {
		t.Fatalf("Silence sent %d messages, want 2", got)
	}
	if out.ActiveNoteCount() != 0 {
		t.Error("notes still tracked after Silence")
	}

	// Idempotent.
	out.Silence()
	if got := len(*sent) - before; got != 2 {
		t.Errorf("second Silence sent more messages")
	}
}

func TestOutTrackingCap(t *testing.T) {
	out, _ := captureOut()

	for n := 0; n < config.MaxActiveNotes+5; n++ {
		out.SendNoteOn(0, uint8(n), 100)
	}
	if got := out.ActiveNoteCount(); got != config.MaxActiveNotes {
		t.Errorf("ActiveNoteCount = %d, want cap %d", got, config.MaxActiveNotes)
	}
}
