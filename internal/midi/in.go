package midi

import (
	"fmt"
	"log"

	"gitlab.com/gomidi/midi/v2"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
)

// In listens on one input port. The driver delivers messages on its own
// goroutine; they are parked in a bounded queue and dispatched onto the bus
// by Drain, which the main loop calls once per tick. The bus itself is never
// touched off the main goroutine.
type In struct {
	portName string
	events   *bus.Bus
	queue    chan midi.Message
	stop     func()
}

// OpenIn starts listening on the named input port and routing messages to the
// bus. An empty name is a deliberate "no input" configuration and returns nil
// without error.
func (m *Manager) OpenIn(name string, events *bus.Bus) (*In, error) {
	if name == "" {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	port := m.findInPort(name)
	if port == nil {
		return nil, fmt.Errorf("input port not found: %s", name)
	}

	in := &In{
		portName: name,
		events:   events,
		queue:    make(chan midi.Message, config.MidiInQueueSize),
	}
	stop, err := midi.ListenTo(port, in.receive, midi.UseSysEx())
	if err != nil {
		return nil, fmt.Errorf("failed to start listening on %s: %w", name, err)
	}
	in.stop = stop
	return in, nil
}

// receive runs on the driver goroutine. It never blocks; when the queue is
// full the oldest traffic wins and the new message is dropped.
func (in *In) receive(msg midi.Message, timestampms int32) {
	select {
	case in.queue <- msg:
	default:
		log.Printf("[MidiIn] Queue full, dropped %s", msg.String())
	}
}

// Drain dispatches every queued message onto the bus. Main loop only.
func (in *In) Drain() {
	for {
		select {
		case msg := <-in.queue:
			in.dispatch(msg)
		default:
			return
		}
	}
}

func (in *In) dispatch(msg midi.Message) {
	var channel, key, velocity uint8
	var data []byte

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		// Velocity zero is a note off in disguise.
		if velocity == 0 {
			in.events.Emit(bus.MidiNoteOffEvent{Channel: channel, Note: key})
			return
		}
		in.events.Emit(bus.MidiNoteOnEvent{Channel: channel, Note: key, Velocity: velocity})
	case msg.GetNoteOff(&channel, &key, &velocity):
		in.events.Emit(bus.MidiNoteOffEvent{Channel: channel, Note: key, Velocity: velocity})
	case msg.GetControlChange(&channel, &key, &velocity):
		in.events.Emit(bus.MidiCCEvent{Channel: channel, Controller: key, Value: velocity})
	case msg.GetSysEx(&data):
		in.events.Emit(bus.SysExEvent{Data: data})
	}
}

// Close stops the listener. Queued but undrained messages are discarded.
func (in *In) Close() {
	if in.stop != nil {
		in.stop()
		in.stop = nil
	}
}
