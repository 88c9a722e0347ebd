// Package plugin hosts the controller's feature modules. A plugin owns a set
// of input bindings, optionally a UI surface, and gets a slice of every main
// loop tick while enabled.
package plugin

// Plugin is one feature module. Initialize receives the controller API and
// reports whether the plugin is usable; a false return keeps it out of the
// registry entirely.
type Plugin interface {
	Name() string
	Initialize(api *API) bool
	Update()
	Cleanup()
	IsEnabled() bool
	SetEnabled(enabled bool)
}

// Base carries the enabled flag so plugins only implement what they care
// about. Plugins embed it and start enabled.
type Base struct {
	disabled bool
}

func (b *Base) IsEnabled() bool         { return !b.disabled }
func (b *Base) SetEnabled(enabled bool) { b.disabled = !enabled }

// Update is a no-op for plugins that are purely event driven.
func (b *Base) Update() {}

// Cleanup is a no-op for plugins without external resources.
func (b *Base) Cleanup() {}
