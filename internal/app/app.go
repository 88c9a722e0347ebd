// Package app wires every subsystem together and drives the main loop.
package app

import (
	"log"
	"time"

	"fyne.io/fyne/v2"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
	"github.com/PixPMusic/midi-studio/internal/gpio"
	"github.com/PixPMusic/midi-studio/internal/input"
	"github.com/PixPMusic/midi-studio/internal/midi"
	"github.com/PixPMusic/midi-studio/internal/plugin"
	"github.com/PixPMusic/midi-studio/internal/window"
)

// Options carries the hardware and host hooks the orchestrator cannot build
// itself: where digital lines and quadrature sources come from, and which
// toolkit app to hang the window on.
type Options struct {
	Settings *config.Settings

	// Sources provides quadrature decoders per encoder definition.
	Sources input.SourceFactory
	// Lines provides raw digital lines for direct MCU pins.
	Lines input.LineProvider
	// MuxPort is the multiplexer hardware face; nil means no multiplexed
	// inputs are available.
	MuxPort gpio.MuxPort

	// FyneApp hosts the window and tray. Nil runs headless (bench rigs).
	FyneApp fyne.App

	// Sender overrides the transport derived from the settings port names.
	// Bench rigs use this to capture outbound traffic.
	Sender midi.Sender
}

// App owns every subsystem for the process lifetime and runs the tick loop.
type App struct {
	events   *bus.Bus
	settings *config.Settings

	midiManager *midi.Manager
	out         *midi.Out
	in          *midi.In
	mapper      *midi.Mapper

	encoders *input.EncoderController
	buttons  *input.ButtonController
	bindings *input.Bindings
	plugins  *plugin.Manager
	views    *window.ViewManager

	stop chan struct{}
	done chan struct{}
}

// New builds the full system in dependency order: bus, transport, input
// pipeline, mapper, window, plugin host. A missing MIDI port degrades to
// running without that side of the transport; it never aborts startup.
func New(opts Options) *App {
	events := bus.New()

	a := &App{
		events:      events,
		settings:    opts.Settings,
		midiManager: midi.NewManager(),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	sender := opts.Sender
	if sender == nil {
		out, err := a.midiManager.OpenOut(opts.Settings.MidiOutPort)
		if err != nil {
			log.Printf("[App] MIDI out unavailable: %v", err)
			events.Emit(bus.SystemErrorEvent{Code: 1, Message: err.Error()})
		}
		a.out = out
		if out != nil {
			sender = out
		}
	}

	in, err := a.midiManager.OpenIn(opts.Settings.MidiInPort, events)
	if err != nil {
		log.Printf("[App] MIDI in unavailable: %v", err)
		events.Emit(bus.SystemErrorEvent{Code: 2, Message: err.Error()})
	}
	a.in = in

	var mux *gpio.Multiplexer
	if opts.MuxPort != nil {
		mux = gpio.NewMultiplexer(opts.MuxPort)
	}

	a.encoders = input.NewEncoderController(config.Encoders, opts.Sources, events)
	a.buttons = input.NewButtonController(config.Buttons, mux, opts.Lines, events)
	a.bindings = input.NewBindings(events)
	a.mapper = midi.NewMapper(config.MidiMappings, sender, events)

	var host plugin.ViewHost
	if opts.FyneApp != nil {
		a.views = window.NewViewManager(opts.FyneApp, events, opts.Settings)
		host = a.views
	}

	api := plugin.NewAPI(events, a.bindings, a.encoders, sender, host, opts.Settings)
	a.plugins = plugin.NewManager(api, a.bindings)

	return a
}

// Tick runs one main-loop iteration. The order is the system's total order:
// incoming MIDI first, then encoder flush, then buttons, then plugins.
func (a *App) Tick() {
	if a.in != nil {
		a.in.Drain()
	}
	a.encoders.FlushAll()
	a.buttons.UpdateAll()
	a.plugins.Update()
}

// Start launches the tick loop on its own goroutine and finishes the boot
// sequence. Call after plugin registration.
func (a *App) Start() {
	if a.views != nil {
		a.views.FinishBoot()
	} else {
		a.events.Emit(bus.BootCompleteEvent{})
	}

	go func() {
		defer close(a.done)
		ticker := time.NewTicker(config.TickPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-a.stop:
				return
			case <-ticker.C:
				a.Tick()
			}
		}
	}()
}

// Shutdown stops the loop and tears everything down: plugins first, then any
// sounding notes, then the transport.
func (a *App) Shutdown() {
	close(a.stop)
	<-a.done

	a.plugins.CleanupAll()
	if a.out != nil {
		a.out.Silence()
	}
	if a.in != nil {
		a.in.Close()
	}
	a.midiManager.Close()
	log.Printf("[App] Shutdown complete")
}

// Events returns the shared bus.
func (a *App) Events() *bus.Bus { return a.events }

// Bindings returns the input binding service.
func (a *App) Bindings() *input.Bindings { return a.bindings }

// Encoders returns the encoder controller.
func (a *App) Encoders() *input.EncoderController { return a.encoders }

// Plugins returns the plugin registry.
func (a *App) Plugins() *plugin.Manager { return a.plugins }

// Views returns the window layer, nil when headless.
func (a *App) Views() *window.ViewManager { return a.views }
