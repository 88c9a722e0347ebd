// Package midi is the controller's MIDI transport and mapping layer: port
// discovery, the outbound sender with active-note tracking, the inbound
// listener feeding the event bus, and the control-to-CC mapper.
package midi

import (
	"fmt"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// Manager handles MIDI port discovery and driver lifetime.
type Manager struct {
	mu sync.RWMutex
}

// NewManager creates a new MIDI manager.
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver.
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports.
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListOutPorts returns the names of available MIDI output ports.
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

func (m *Manager) findInPort(name string) drivers.In {
	ins := midi.GetInPorts()
	for _, in := range ins {
		if in.String() == name {
			return in
		}
	}
	return nil
}

func (m *Manager) findOutPort(name string) drivers.Out {
	outs := midi.GetOutPorts()
	for _, out := range outs {
		if out.String() == name {
			return out
		}
	}
	return nil
}

// OpenOut attaches a sender to the named output port. An empty name is a
// deliberate "no output" configuration and returns nil without error.
func (m *Manager) OpenOut(name string) (*Out, error) {
	if name == "" {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	port := m.findOutPort(name)
	if port == nil {
		return nil, fmt.Errorf("output port not found: %s", name)
	}
	send, err := midi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender for %s: %w", name, err)
	}
	return newOut(name, send), nil
}
