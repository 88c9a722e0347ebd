package main

import (
	"log"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/PixPMusic/midi-studio/internal/app"
	"github.com/PixPMusic/midi-studio/internal/config"
	"github.com/PixPMusic/midi-studio/internal/gpio"
	"github.com/PixPMusic/midi-studio/internal/input"
	"github.com/PixPMusic/midi-studio/internal/tray"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	// Persist generated defaults (rig ID) on first launch.
	if err := settings.Save(); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}

	fyneApp := fyneapp.NewWithID(config.AppID)

	// Simulated control surface until a hardware transport is attached; the
	// input pipeline only sees the Line/MuxPort/QuadratureSource interfaces.
	muxPort := gpio.NewSimMuxPort()
	lines := make(map[uint8]*gpio.SimLine)

	controller := app.New(app.Options{
		Settings: settings,
		Sources: func(def config.EncoderDef) input.QuadratureSource {
			return input.NewSimQuadrature()
		},
		Lines: func(pin uint8) gpio.Line {
			if _, ok := lines[pin]; !ok {
				lines[pin] = gpio.NewSimLine()
			}
			return lines[pin]
		},
		MuxPort: muxPort,
		FyneApp: fyneApp,
	})

	tray.Setup(fyneApp, settings, tray.Callbacks{
		OnOpen: func() {
			controller.Views().Window().Show()
		},
		OnQuit: func() {
			fyneApp.Quit()
		},
	})

	controller.Start()
	defer controller.Shutdown()

	if settings.ShowWindow {
		controller.Views().Window().Show()
	}

	// Blocks until Quit is chosen from the tray.
	fyneApp.Run()
}
