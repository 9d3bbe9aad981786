package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"ringtimer/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWindow  func()
	OnPreferences func()
	OnQuickStart  func(minutes int)
	OnCancel      func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	quickStart  *fyne.MenuItem
	cancelItem  *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	quickStartItems := make([]*fyne.MenuItem, 0, len(model.DurationChoices))
	for _, minutes := range model.DurationChoices {
		choice := minutes
		quickStartItems = append(quickStartItems, fyne.NewMenuItem(fmt.Sprintf("%d minutes", choice), func() {
			if manager.callbacks.OnQuickStart != nil {
				manager.callbacks.OnQuickStart(choice)
			}
		}))
	}
	manager.quickStart = fyne.NewMenuItem("Start countdown...", nil)
	manager.quickStart.ChildMenu = fyne.NewMenu("", quickStartItems...)

	manager.cancelItem = fyne.NewMenuItem("Cancel countdown", func() {
		if manager.callbacks.OnCancel != nil {
			manager.callbacks.OnCancel()
		}
	})
	manager.cancelItem.Disabled = true

	app.SetSystemTrayMenu(manager.buildMenu())

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetRunning toggles the countdown-related menu items.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	manager.cancelItem.Disabled = !running
	manager.quickStart.Disabled = running
	manager.refreshMenu()
}

func (manager *Manager) buildMenu() *fyne.Menu {
	showWindow := fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShowWindow != nil {
			manager.callbacks.OnShowWindow()
		}
	})
	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	return fyne.NewMenu("RingTimer",
		manager.statusItem,
		showWindow,
		manager.quickStart,
		manager.cancelItem,
		preferences,
		quit,
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}
