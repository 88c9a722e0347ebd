// Package window is the controller's on-screen surface: a status/activity
// view, a container plugins may populate, and the boot splash. The window is
// a monitor, not the primary interface; the hardware is.
package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/PixPMusic/midi-studio/internal/bus"
	"github.com/PixPMusic/midi-studio/internal/config"
)

// Surface names carried by ViewChange events.
const (
	ViewCore   = "core"
	ViewPlugin = "plugin"
)

// ViewManager owns the main window and its two surfaces. Containers are
// fyne.CanvasObjects, so either surface can gate scoped input bindings
// directly through its Visible state.
type ViewManager struct {
	app    fyne.App
	window fyne.Window
	events *bus.Bus

	coreView   *fyne.Container
	pluginView *fyne.Container
	activity   *ActivityPanel

	booted bool
}

// NewViewManager builds the window with the splash up. FinishBoot swaps in
// the real layout once startup is done.
func NewViewManager(app fyne.App, events *bus.Bus, settings *config.Settings) *ViewManager {
	win := app.NewWindow(config.AppName)

	vm := &ViewManager{
		app:      app,
		window:   win,
		events:   events,
		activity: NewActivityPanel(events, settings.Debug),
	}

	vm.coreView = container.NewBorder(
		widget.NewLabel(config.AppName+" "+config.AppVersion),
		nil, nil, nil,
		vm.activity.Content(),
	)
	vm.pluginView = container.NewStack()
	vm.pluginView.Hide()

	win.SetContent(container.NewCenter(newSplash()))
	win.Resize(fyne.NewSize(480, 360))
	win.CenterOnScreen()

	// Closing hides to the tray; Quit is a tray action.
	win.SetCloseIntercept(func() {
		win.Hide()
	})

	return vm
}

// FinishBoot replaces the splash with the live layout and announces that the
// system is ready for deferred plugin setup. Safe to call once; later calls
// are no-ops.
func (vm *ViewManager) FinishBoot() {
	if vm.booted {
		return
	}
	vm.booted = true

	vm.window.SetContent(container.NewStack(vm.coreView, vm.pluginView))
	vm.events.Emit(bus.BootCompleteEvent{})
}

// ShowCore brings the status surface to the front.
func (vm *ViewManager) ShowCore() {
	vm.pluginView.Hide()
	vm.coreView.Show()
	vm.events.Emit(bus.ViewChangeEvent{View: ViewCore})
}

// ShowPlugin brings the plugin surface to the front.
func (vm *ViewManager) ShowPlugin() {
	vm.coreView.Hide()
	vm.pluginView.Show()
	vm.events.Emit(bus.ViewChangeEvent{View: ViewPlugin})
}

// PluginSurface returns the container plugins populate.
func (vm *ViewManager) PluginSurface() *fyne.Container { return vm.pluginView }

// CoreSurface returns the status surface, usable as a binding scope.
func (vm *ViewManager) CoreSurface() *fyne.Container { return vm.coreView }

// Window returns the underlying window for show/hide from the tray.
func (vm *ViewManager) Window() fyne.Window { return vm.window }
