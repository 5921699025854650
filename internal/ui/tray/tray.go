package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"

	"animclock/internal/core/easing"
)

// SlowMotionDurations are the choices offered by the slow motion submenu.
var SlowMotionDurations = []time.Duration{2 * time.Second, 5 * time.Second, 10 * time.Second}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnTogglePause func()
	OnSlowMotion  func(time.Duration)
	OnCurve       func(easing.Kind)
	OnRestart     func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	slowItem    *fyne.MenuItem
	slowDefault *fyne.MenuItem
	curveItem   *fyne.MenuItem
	curveItems  map[easing.Kind]*fyne.MenuItem
	restartItem *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	paused      bool
	statusLabel string
	setTooltip  func(string)
}

// New creates a tray manager with the provided callbacks. app may be nil,
// in which case no menu is installed.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:        app,
		callbacks:  callbacks,
		curveItems: make(map[easing.Kind]*fyne.MenuItem),
		setTooltip: systray.SetTooltip,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	slowItems := make([]*fyne.MenuItem, 0, len(SlowMotionDurations))
	for _, duration := range SlowMotionDurations {
		duration := duration
		slowItems = append(slowItems, fyne.NewMenuItem(fmt.Sprintf("%d seconds", int(duration.Seconds())), func() {
			if manager.callbacks.OnSlowMotion != nil {
				manager.callbacks.OnSlowMotion(duration)
			}
		}))
	}
	// Zero asks for the duration configured in preferences.
	manager.slowDefault = fyne.NewMenuItem(configuredLabel(0), func() {
		if manager.callbacks.OnSlowMotion != nil {
			manager.callbacks.OnSlowMotion(0)
		}
	})
	slowItems = append(slowItems, fyne.NewMenuItemSeparator(), manager.slowDefault)
	manager.slowItem = fyne.NewMenuItem("Slow motion for...", nil)
	manager.slowItem.ChildMenu = fyne.NewMenu("", slowItems...)

	curveItems := make([]*fyne.MenuItem, 0, len(easing.Kinds()))
	for _, kind := range easing.Kinds() {
		kind := kind
		item := fyne.NewMenuItem(string(kind), func() {
			if manager.callbacks.OnCurve != nil {
				manager.callbacks.OnCurve(kind)
			}
		})
		manager.curveItems[kind] = item
		curveItems = append(curveItems, item)
	}
	manager.curveItem = fyne.NewMenuItem("Curve", nil)
	manager.curveItem.ChildMenu = fyne.NewMenu("", curveItems...)

	manager.restartItem = fyne.NewMenuItem("Restart animation", func() {
		if manager.callbacks.OnRestart != nil {
			manager.callbacks.OnRestart()
		}
	})

	manager.prefsItem = fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshStatus()
}

// SetSlowMotionDefault shows the configured slow motion duration.
func (manager *Manager) SetSlowMotionDefault(duration time.Duration) {
	manager.slowDefault.Label = configuredLabel(duration)
	manager.refreshMenu()
}

// SetCurve marks the active curve in the curve submenu.
func (manager *Manager) SetCurve(kind easing.Kind) {
	for itemKind, item := range manager.curveItems {
		item.Checked = itemKind == kind
	}
	manager.refreshMenu()
}

// SetTooltip updates the tray icon tooltip.
func (manager *Manager) SetTooltip(text string) {
	if manager.app == nil || manager.setTooltip == nil {
		return
	}
	manager.setTooltip(text)
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("AnimClock",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		manager.slowItem,
		manager.curveItem,
		manager.restartItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	)
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = statusText(manager.statusLabel, manager.paused)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func configuredLabel(duration time.Duration) string {
	if duration <= 0 {
		return "Configured duration"
	}
	return fmt.Sprintf("Configured (%s)", duration)
}

func statusText(status string, paused bool) string {
	if status == "" {
		status = "running"
	}
	if paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return fmt.Sprintf("Status: %s", status)
}
