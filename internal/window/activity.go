package window

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/PixPMusic/midi-studio/internal/bus"
)

// activityLines caps the rolling traffic display.
const activityLines = 12

// ActivityPanel shows recent MIDI traffic and subsystem errors on the core
// surface. Bus events arrive on the main loop goroutine, so widget updates
// are marshalled through fyne.Do.
type ActivityPanel struct {
	label *widget.Label
	lines []string
	debug bool
}

// NewActivityPanel subscribes to the traffic it displays.
func NewActivityPanel(events *bus.Bus, debug bool) *ActivityPanel {
	p := &ActivityPanel{
		label: widget.NewLabel(""),
		debug: debug,
	}
	p.label.TextStyle = fyne.TextStyle{Monospace: true}

	events.Subscribe(bus.CategoryMIDI, bus.TypeMidiCC, func(e bus.Event) {
		ev := e.(bus.MidiCCEvent)
		if ev.Source != 0 {
			p.append(fmt.Sprintf("CC %3d = %3d  <- control %d", ev.Controller, ev.Value, ev.Source))
		} else {
			p.append(fmt.Sprintf("CC %3d = %3d  (in)", ev.Controller, ev.Value))
		}
	})
	events.Subscribe(bus.CategorySystem, bus.TypePluginRegistered, func(e bus.Event) {
		p.append("plugin: " + e.(bus.PluginRegisteredEvent).Name)
	})
	events.Subscribe(bus.CategorySystem, bus.TypeSystemError, func(e bus.Event) {
		ev := e.(bus.SystemErrorEvent)
		p.append(fmt.Sprintf("error %d: %s", ev.Code, ev.Message))
	})
	if debug {
		events.Subscribe(bus.CategoryInput, bus.TypeEncoderChanged, func(e bus.Event) {
			ev := e.(bus.EncoderChangedEvent)
			p.append(fmt.Sprintf("encoder %d -> %.3f", ev.EncoderID, ev.Value))
		})
		events.Subscribe(bus.CategoryInput, bus.TypeButtonPress, func(e bus.Event) {
			p.append(fmt.Sprintf("button %d pressed", e.(bus.ButtonPressEvent).ButtonID))
		})
	}
	return p
}

// Content returns the panel's widget.
func (p *ActivityPanel) Content() fyne.CanvasObject { return p.label }

func (p *ActivityPanel) append(line string) {
	p.lines = append(p.lines, line)
	if len(p.lines) > activityLines {
		p.lines = p.lines[len(p.lines)-activityLines:]
	}
	text := strings.Join(p.lines, "\n")
	fyne.Do(func() {
		p.label.SetText(text)
	})
}
