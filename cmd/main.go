package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"animclock/internal/core/easing"
	"animclock/internal/platform"
	"animclock/internal/storage"
	"animclock/internal/ui/animation"
	"animclock/internal/ui/overlay"
	"animclock/internal/ui/preferences"
	"animclock/internal/ui/tray"
	"animclock/resources"
)

const (
	appName       = "AnimClock"
	statusEvery   = 15
	overlayAlpha  = 220
	settingsDirID = "animclock"
)

type cli struct {
	Config     string        `help:"Settings file to use instead of the per-user one." type:"path"`
	Headless   bool          `help:"Run without a window and log frames."`
	Run        time.Duration `help:"How long a headless run lasts; 0 runs until interrupted." default:"3s"`
	SlowMotion bool          `help:"Start a headless run in slow motion for the configured duration."`
	Debug      bool          `help:"Enable debug logging."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("animclock"),
		kong.Description("Pausable game clock with eased animation timers."),
		kong.UsageOnError(),
	)

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if args.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	settingsPath, err := resolveSettingsPath(args.Config)
	if err != nil {
		logrus.WithError(err).Warn("settings will not be saved")
	}
	settings := preferences.DefaultSettings()
	if settingsPath != "" {
		loaded, err := storage.LoadSettingsFile(settingsPath)
		if err != nil {
			logrus.WithError(err).Warn("using default settings")
		} else {
			settings = loaded
		}
	}

	current := newSession(nil, settings, settingsPath, platform.NewIdleProvider())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if args.Headless {
		if args.Run > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, args.Run)
			defer cancel()
		}
		runHeadless(ctx, current, args.SlowMotion)
		return
	}

	if err := runGUI(ctx, current); err != nil {
		logrus.WithError(err).Error("animclock stopped")
		os.Exit(1)
	}
}

func resolveSettingsPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return storage.SettingsPath(settingsDirID)
}

func runGUI(ctx context.Context, current *session) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.animclock.app")
	activeIcon := resources.MustTrayIcon(resources.IconActive)
	pausedIcon := resources.MustTrayIcon(resources.IconPaused)
	slowIcon := resources.MustTrayIcon(resources.IconSlow)
	fyneApp.SetIcon(activeIcon)

	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return fmt.Errorf("system tray unsupported on this platform")
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("AnimClock is running in the system tray."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	overlayWindow := overlay.New(fyneApp, overlay.Config{Opacity: overlayAlpha, Title: appName})

	var trayManager *tray.Manager
	prefsWindow := preferences.New(fyneApp, current.currentSettings(), func(updated preferences.Settings) {
		if err := current.applySettings(updated); err != nil {
			logrus.WithError(err).Warn("settings rejected")
			return
		}
		if err := current.save(); err != nil {
			logrus.WithError(err).Warn("save settings")
		}
		trayManager.SetSlowMotionDefault(updated.SlowMotionDuration)
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnTogglePause: func() {
			trayManager.SetPaused(current.togglePause())
		},
		OnSlowMotion: func(duration time.Duration) {
			current.slowMotion(duration)
		},
		OnCurve: func(kind easing.Kind) {
			if err := current.selectCurve(kind); err != nil {
				logrus.WithError(err).Warn("select curve")
				return
			}
			trayManager.SetCurve(kind)
			prefsWindow.UpdateSettings(current.currentSettings())
			if err := current.save(); err != nil {
				logrus.WithError(err).Warn("save settings")
			}
		},
		OnRestart: func() {
			current.engine.Restart()
		},
		OnPreferences: func() {
			prefsWindow.UpdateSettings(current.currentSettings())
			prefsWindow.Show()
		},
		OnQuit: func() {
			current.stop()
			fyneApp.Quit()
		},
	})
	trayManager.SetCurve(current.currentSettings().Curve)
	trayManager.SetSlowMotionDefault(current.currentSettings().SlowMotionDuration)
	desktopApp.SetSystemTrayIcon(activeIcon)

	shownIcon := activeIcon
	current.engine.SetRenderer(func(frame animation.Frame) {
		overlayWindow.Render(frame)
		if frame.Index%statusEvery != 0 {
			return
		}
		icon := activeIcon
		switch {
		case frame.Paused:
			icon = pausedIcon
		case current.slowMotionActive():
			icon = slowIcon
		}
		status := fmt.Sprintf("game %s", overlay.FormatGameTime(frame.GameTime))
		fyne.Do(func() {
			trayManager.SetStatus(status)
			trayManager.SetTooltip(fmt.Sprintf("%s: %s", appName, status))
			if icon != shownIcon {
				shownIcon = icon
				desktopApp.SetSystemTrayIcon(icon)
			}
		})
	})
	current.watchIdleEvents(func(paused bool) {
		fyne.Do(func() {
			trayManager.SetPaused(paused)
		})
	})

	overlayWindow.SetOnClosed(nil)
	overlayWindow.Show()

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	current.start(ctx)
	fyneApp.Run()
	current.stop()
	return nil
}
