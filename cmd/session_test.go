package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animclock/internal/core/clock"
	"animclock/internal/core/easing"
	"animclock/internal/core/timesystem"
	"animclock/internal/storage"
	"animclock/internal/ui/preferences"
)

type noIdle struct{}

func (noIdle) IdleDuration() (time.Duration, error) { return 0, nil }

func newTestSession(t *testing.T, settings preferences.Settings) (*session, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	current := newSession(fake, settings, path, noIdle{})
	current.system.Start()
	current.timer.Start()
	return current, fake
}

func TestNewSessionFallsBackToLinear(t *testing.T) {
	settings := preferences.DefaultSettings()
	settings.Curve = "zigzag"

	current, _ := newTestSession(t, settings)

	assert.Equal(t, easing.Linear{}, current.timer.Curve())
	assert.Equal(t, easing.KindLinear, current.currentSettings().Curve)
}

func TestTogglePause(t *testing.T) {
	current, _ := newTestSession(t, preferences.DefaultSettings())

	assert.True(t, current.togglePause())
	assert.True(t, current.system.IsPaused())
	assert.False(t, current.togglePause())
	assert.False(t, current.system.IsPaused())
}

func TestSlowMotionReverts(t *testing.T) {
	settings := preferences.DefaultSettings()
	settings.SlowMotionFactor = 0.5
	current, fake := newTestSession(t, settings)

	current.slowMotion(time.Second)
	assert.True(t, current.slowMotionActive())
	fake.Advance(400 * time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, current.system.Elapsed())

	fake.Advance(600 * time.Millisecond)
	assert.False(t, current.slowMotionActive())
	assert.Equal(t, timesystem.Identity{}, current.system.Transducer())
	assert.Equal(t, time.Second, current.system.Elapsed())
}

func TestSelectCurveUsesDefaultParam(t *testing.T) {
	current, fake := newTestSession(t, preferences.DefaultSettings())

	require.NoError(t, current.selectCurve(easing.KindEaseIn))
	assert.Equal(t, easing.EaseIn{Strength: 1}, current.timer.Curve())
	assert.Equal(t, easing.KindEaseIn, current.currentSettings().Curve)

	fake.Advance(750 * time.Millisecond)
	assert.Equal(t, 375*time.Millisecond, current.timer.ElapsedTime())
}

func TestApplySettingsRejectsUnknownCurve(t *testing.T) {
	current, _ := newTestSession(t, preferences.DefaultSettings())
	before := current.currentSettings()

	updated := before
	updated.Curve = "zigzag"
	assert.ErrorIs(t, current.applySettings(updated), easing.ErrUnknownCurve)
	assert.Equal(t, before, current.currentSettings())
}

func TestApplySettingsUpdatesTimer(t *testing.T) {
	current, _ := newTestSession(t, preferences.DefaultSettings())

	updated := current.currentSettings()
	updated.AnimationDuration = 400 * time.Millisecond
	updated.Curve = easing.KindLinear
	require.NoError(t, current.applySettings(updated))

	assert.Equal(t, 400*time.Millisecond, current.timer.Duration())
	assert.Equal(t, easing.Linear{}, current.timer.Curve())
}

func TestSaveWritesSettings(t *testing.T) {
	current, _ := newTestSession(t, preferences.DefaultSettings())

	updated := current.currentSettings()
	updated.AnimationDuration = 900 * time.Millisecond
	require.NoError(t, current.applySettings(updated))
	require.NoError(t, current.save())

	loaded, err := storage.LoadSettingsFile(current.settingsPath)
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)
}

func TestSaveWithoutPathIsNoop(t *testing.T) {
	current := newSession(clock.NewFake(), preferences.DefaultSettings(), "", noIdle{})
	assert.NoError(t, current.save())
}

func TestResolveSettingsPath(t *testing.T) {
	path, err := resolveSettingsPath("/tmp/custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestSlowMotionUsesConfiguredDuration(t *testing.T) {
	settings := preferences.DefaultSettings()
	settings.SlowMotionFactor = 0.5
	settings.SlowMotionDuration = 2 * time.Second
	current, fake := newTestSession(t, settings)

	current.slowMotion(0)
	fake.Advance(1999 * time.Millisecond)
	assert.True(t, current.slowMotionActive())

	fake.Advance(time.Millisecond)
	assert.False(t, current.slowMotionActive())
}

func TestTogglePauseLeavesNoIdleHold(t *testing.T) {
	current, _ := newTestSession(t, preferences.DefaultSettings())

	current.togglePause()
	assert.False(t, current.watcher.IdlePaused())
	current.togglePause()
	assert.False(t, current.watcher.IdlePaused())
}
