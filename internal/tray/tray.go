// Package tray puts the controller in the system tray so closing the window
// keeps the hardware alive.
package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"github.com/PixPMusic/midi-studio/internal/config"
	"github.com/PixPMusic/midi-studio/internal/startup"
)

// Callbacks for tray menu actions.
type Callbacks struct {
	OnOpen func()
	OnQuit func()
}

// Setup initializes the system tray using Fyne's built-in support. On
// platforms without a tray this is a no-op and the window stays the only
// surface.
func Setup(app fyne.App, settings *config.Settings, callbacks Callbacks) {
	desk, ok := app.(desktop.App)
	if !ok {
		return
	}

	openItem := fyne.NewMenuItem("Open "+config.AppName, func() {
		if callbacks.OnOpen != nil {
			callbacks.OnOpen()
		}
	})

	startupItem := fyne.NewMenuItem("Open at Startup", nil)
	startupItem.Checked = settings.OpenAtStartup

	quitItem := fyne.NewMenuItem("Quit", func() {
		if callbacks.OnQuit != nil {
			callbacks.OnQuit()
		}
	})

	menu := fyne.NewMenu(config.AppName,
		openItem,
		fyne.NewMenuItemSeparator(),
		startupItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	// Set the action after menu creation so the toggle can refresh it.
	startupItem.Action = func() {
		if startupItem.Checked {
			startupItem.Checked = false
			settings.OpenAtStartup = false
			_ = startup.Disable()
		} else {
			startupItem.Checked = true
			settings.OpenAtStartup = true
			_ = startup.Enable()
		}
		_ = settings.Save()
		menu.Refresh()
	}

	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.MediaMusicIcon())
}
