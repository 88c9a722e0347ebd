package midi

import (
	"log"
	"math"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
)

// Mapper translates control events into Control Change messages. Controls
// without a table entry are silently ignored; that is how plugins claim a
// control for themselves. After a successful send the mapper republishes the
// message as a MidiCCEvent with Source set to the originating control, so
// UI surfaces can mirror outbound traffic without touching the transport.
type Mapper struct {
	sender Sender
	events *bus.Bus

	buttonCCs  map[config.ButtonID]config.CCMapping
	encoderCCs map[config.EncoderID]config.CCMapping
}

// NewMapper builds the lookup tables from the mapping list and subscribes to
// the input streams. Entries whose InputID falls outside both ID ranges are
// rejected at construction.
func NewMapper(mappings []config.CCMapping, sender Sender, events *bus.Bus) *Mapper {
	m := &Mapper{
		sender:     sender,
		events:     events,
		buttonCCs:  make(map[config.ButtonID]config.CCMapping, len(mappings)),
		encoderCCs: make(map[config.EncoderID]config.CCMapping, len(mappings)),
	}

	for _, mapping := range mappings {
		switch {
		case mapping.InputID >= config.ButtonIDMin && mapping.InputID < config.ButtonIDMax:
			m.buttonCCs[config.ButtonID(mapping.InputID)] = mapping
		case mapping.InputID >= config.EncoderIDMin && mapping.InputID < config.EncoderIDMax:
			m.encoderCCs[config.EncoderID(mapping.InputID)] = mapping
		default:
			log.Printf("[Mapper] Mapping for unknown input ID %d rejected", mapping.InputID)
		}
	}

	events.Subscribe(bus.CategoryInput, bus.TypeEncoderChanged, func(e bus.Event) {
		if ev, ok := e.(bus.EncoderChangedEvent); ok {
			m.handleEncoder(ev)
		}
	})
	events.Subscribe(bus.CategoryInput, bus.TypeButtonPress, func(e bus.Event) {
		if ev, ok := e.(bus.ButtonPressEvent); ok {
			m.handleButton(uint16(ev.ButtonID), config.MidiCCValueMax)
		}
	})
	events.Subscribe(bus.CategoryInput, bus.TypeButtonRelease, func(e bus.Event) {
		if ev, ok := e.(bus.ButtonReleaseEvent); ok {
			m.handleButton(uint16(ev.ButtonID), 0)
		}
	})
	return m
}

func (m *Mapper) handleEncoder(ev bus.EncoderChangedEvent) {
	mapping, ok := m.encoderCCs[ev.EncoderID]
	if !ok {
		return
	}
	m.sendCC(mapping, ccValue(ev.Value), uint16(ev.EncoderID))
}

func (m *Mapper) handleButton(id uint16, value uint8) {
	mapping, ok := m.buttonCCs[config.ButtonID(id)]
	if !ok {
		return
	}
	m.sendCC(mapping, value, id)
}

func (m *Mapper) sendCC(mapping config.CCMapping, value uint8, source uint16) {
	if m.sender == nil {
		return
	}
	if err := m.sender.SendCC(mapping.Channel, mapping.CC, value); err != nil {
		log.Printf("[Mapper] %v", err)
		return
	}
	m.events.Emit(bus.MidiCCEvent{
		Channel:    mapping.Channel,
		Controller: mapping.CC,
		Value:      value,
		Source:     source,
	})
}

// ccValue scales a normalized value onto the 7-bit CC range. Values outside
// [0, 1] (relative encoders) clamp to the ends.
func ccValue(normalized float64) uint8 {
	if normalized <= 0 {
		return 0
	}
	if normalized >= 1 {
		return config.MidiCCValueMax
	}
	return uint8(math.Round(normalized * config.MidiCCValueMax))
}
