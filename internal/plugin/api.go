package plugin

import (
	"fyne.io/fyne/v2"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
	"github.com/PixPMusic/midi-studio/internal/input"
	"github.com/PixPMusic/midi-studio/internal/midi"
)

// ViewHost is the slice of the window layer plugins may touch: the container
// reserved for plugin UI.
type ViewHost interface {
	PluginSurface() *fyne.Container
}

// API is the single dependency handed to plugins at Initialize. It bundles
// the shared services; everything here lives for the process lifetime.
type API struct {
	events   *bus.Bus
	bindings *input.Bindings
	encoders *input.EncoderController
	sender   midi.Sender
	host     ViewHost
	settings *config.Settings
}

// NewAPI bundles the shared services. sender and host may be nil when the
// transport or the window is not configured; the accessors pass that through
// and the guarded helpers absorb it.
func NewAPI(events *bus.Bus, bindings *input.Bindings, encoders *input.EncoderController, sender midi.Sender, host ViewHost, settings *config.Settings) *API {
	return &API{
		events:   events,
		bindings: bindings,
		encoders: encoders,
		sender:   sender,
		host:     host,
		settings: settings,
	}
}

// Events exposes the bus for subscriptions and custom emits.
func (a *API) Events() *bus.Bus { return a.events }

// Bindings exposes gesture registration.
func (a *API) Bindings() *input.Bindings { return a.bindings }

// Encoders exposes runtime encoder reconfiguration.
func (a *API) Encoders() *input.EncoderController { return a.encoders }

// Midi returns the outbound transport, nil when none is attached.
func (a *API) Midi() midi.Sender { return a.sender }

// Settings returns the loaded host settings.
func (a *API) Settings() *config.Settings { return a.settings }

// PluginSurface returns the container plugins may populate, nil when the
// controller runs headless.
func (a *API) PluginSurface() *fyne.Container {
	if a.host == nil {
		return nil
	}
	return a.host.PluginSurface()
}

// SendCC sends a Control Change if a transport is attached.
func (a *API) SendCC(channel, controller, value uint8) error {
	if a.sender == nil {
		return nil
	}
	return a.sender.SendCC(channel, controller, value)
}

// SendNoteOn sends a Note On if a transport is attached.
func (a *API) SendNoteOn(channel, note, velocity uint8) error {
	if a.sender == nil {
		return nil
	}
	return a.sender.SendNoteOn(channel, note, velocity)
}

// SendNoteOff sends a Note Off if a transport is attached.
func (a *API) SendNoteOff(channel, note uint8) error {
	if a.sender == nil {
		return nil
	}
	return a.sender.SendNoteOff(channel, note)
}
