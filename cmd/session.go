package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"animclock/internal/core/animtimer"
	"animclock/internal/core/autopause"
	"animclock/internal/core/clock"
	"animclock/internal/core/easing"
	"animclock/internal/core/timesystem"
	"animclock/internal/storage"
	"animclock/internal/ui/animation"
	"animclock/internal/ui/preferences"
)

// session owns the timers and keeps them in line with the settings.
type session struct {
	mu           sync.Mutex
	settings     preferences.Settings
	settingsPath string

	timer   *animtimer.Timer
	system  *timesystem.TimeSystem
	engine  *animation.Engine
	watcher *autopause.Watcher
	log     *logrus.Entry
}

func newSession(clk clock.Clock, settings preferences.Settings, settingsPath string, checker autopause.IdleChecker) *session {
	curve, err := settings.EasingCurve()
	if err != nil {
		logrus.WithError(err).Warn("falling back to linear curve")
		curve = easing.MakeLinear()
		settings.Curve = easing.KindLinear
	}

	timer := animtimer.New(clk, settings.AnimationDuration, curve)
	system := timesystem.New(clk)
	engine := animation.New(animation.ConfigFrom(settings.AnimationConfig()), timer, system, nil)

	autoPauseOptions := autopause.Config{}
	if clk != nil {
		autoPauseOptions.Now = clk.Now
	}
	watcher := autopause.New(settings.AutoPauseConfig(), autoPauseOptions, system, checker)

	return &session{
		settings:     settings,
		settingsPath: settingsPath,
		timer:        timer,
		system:       system,
		engine:       engine,
		watcher:      watcher,
		log:          logrus.WithField("component", "session"),
	}
}

// start runs the frame loop and the idle watcher until stop or ctx ends.
func (session *session) start(ctx context.Context) {
	session.system.Start()
	session.engine.Start(ctx)
	session.watcher.Start()
	session.log.WithFields(logrus.Fields{
		"curve":    session.timer.Curve(),
		"duration": session.timer.Duration(),
	}).Info("session started")
}

func (session *session) stop() {
	session.engine.Stop()
	session.watcher.Stop()
}

// togglePause flips the game clock and reports whether it is now paused.
func (session *session) togglePause() bool {
	session.watcher.ReleaseHold()
	if session.system.IsPaused() {
		session.system.Resume()
		session.log.Info("resumed")
		return false
	}
	session.system.Pause()
	session.log.Info("paused")
	return true
}

// slowMotion scales game time by the configured factor for duration. A
// non-positive duration uses the configured one.
func (session *session) slowMotion(duration time.Duration) timesystem.RevertID {
	session.mu.Lock()
	config := session.settings.SlowMotionConfig()
	session.mu.Unlock()

	if duration <= 0 {
		duration = config.Duration
	}
	factor := config.Factor
	id := session.system.SetTransducerFor(timesystem.Scale{Factor: factor}, duration)
	session.log.WithFields(logrus.Fields{
		"factor":   factor,
		"duration": duration,
	}).Info("slow motion")
	return id
}

// slowMotionActive reports whether game time is currently scaled.
func (session *session) slowMotionActive() bool {
	_, identity := session.system.Transducer().(timesystem.Identity)
	return !identity
}

// selectCurve switches to kind with its default parameter.
func (session *session) selectCurve(kind easing.Kind) error {
	session.mu.Lock()
	settings := session.settings
	session.mu.Unlock()

	settings.Curve = kind
	settings.CurveParam = 0
	return session.applySettings(settings)
}

// applySettings pushes settings into the running components.
func (session *session) applySettings(settings preferences.Settings) error {
	curve, err := settings.EasingCurve()
	if err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}

	session.mu.Lock()
	session.settings = settings
	session.mu.Unlock()

	session.engine.SetCurve(curve)
	session.engine.SetDuration(settings.AnimationDuration)
	session.engine.SetLoop(settings.Loop)
	session.watcher.UpdateConfig(settings.AutoPauseConfig())
	return nil
}

// save writes the current settings to disk.
func (session *session) save() error {
	session.mu.Lock()
	settings := session.settings
	path := session.settingsPath
	session.mu.Unlock()

	if path == "" {
		return nil
	}
	if err := storage.SaveSettingsFile(path, settings); err != nil {
		return err
	}
	session.log.WithField("path", path).Debug("settings saved")
	return nil
}

func (session *session) currentSettings() preferences.Settings {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.settings
}

// watchIdleEvents logs watcher events and forwards pause changes.
func (session *session) watchIdleEvents(onPauseChange func(paused bool)) {
	events := session.watcher.Subscribe(4)
	go func() {
		for event := range events {
			entry := session.log.WithFields(logrus.Fields{
				"event": event.Type,
				"idle":  event.Idle,
			})
			switch event.Type {
			case autopause.EventIdlePause:
				entry.Info("idle, game time paused")
				if onPauseChange != nil {
					onPauseChange(true)
				}
			case autopause.EventIdleResume:
				entry.Info("activity, game time resumed")
				if onPauseChange != nil {
					onPauseChange(false)
				}
			case autopause.EventIdleError:
				entry.Warn(event.Message)
			}
		}
	}()
}
