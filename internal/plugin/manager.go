package plugin

import (
	"fmt"
	"log"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/input"
)

// Manager owns the registered plugins and drives them from the main loop.
type Manager struct {
	api      *API
	events   *bus.Bus
	bindings *input.Bindings

	plugins []Plugin
	byName  map[string]Plugin
}

// NewManager creates an empty registry around the shared API.
func NewManager(api *API, bindings *input.Bindings) *Manager {
	return &Manager{
		api:      api,
		events:   api.Events(),
		bindings: bindings,
		byName:   make(map[string]Plugin),
	}
}

// Register initializes the plugin and adds it to the registry. Duplicate
// names and failed initializations are rejected; the plugin is not retained
// in either case.
func (m *Manager) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("nil plugin")
	}
	name := p.Name()
	if _, exists := m.byName[name]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}
	if !p.Initialize(m.api) {
		return fmt.Errorf("plugin %q failed to initialize", name)
	}

	m.byName[name] = p
	m.plugins = append(m.plugins, p)
	log.Printf("[PluginManager] Registered %q", name)
	m.events.Emit(bus.PluginRegisteredEvent{Name: name})
	return nil
}

// Update runs one tick: time-driven gestures first, then every enabled
// plugin in registration order.
func (m *Manager) Update() {
	m.bindings.ProcessTick()
	for _, p := range m.plugins {
		if p.IsEnabled() {
			p.Update()
		}
	}
}

// Get returns a registered plugin by name, or nil.
func (m *Manager) Get(name string) Plugin {
	return m.byName[name]
}

// Names returns the registered plugin names in registration order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.plugins))
	for _, p := range m.plugins {
		names = append(names, p.Name())
	}
	return names
}

// CleanupAll tears every plugin down in reverse registration order and
// empties the registry.
func (m *Manager) CleanupAll() {
	for i := len(m.plugins) - 1; i >= 0; i-- {
		m.plugins[i].Cleanup()
	}
	m.plugins = nil
	m.byName = make(map[string]Plugin)
}
