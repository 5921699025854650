package autopause

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animclock/internal/core/clock"
	"animclock/internal/core/model"
	"animclock/internal/core/timesystem"
)

type stubChecker struct {
	mu    sync.Mutex
	idle  time.Duration
	err   error
	calls int
}

func (checker *stubChecker) IdleDuration() (time.Duration, error) {
	checker.mu.Lock()
	defer checker.mu.Unlock()
	checker.calls++
	return checker.idle, checker.err
}

func (checker *stubChecker) set(idle time.Duration, err error) {
	checker.mu.Lock()
	defer checker.mu.Unlock()
	checker.idle = idle
	checker.err = err
}

func newFixture(t *testing.T) (*Watcher, *stubChecker, *timesystem.TimeSystem, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake()
	system := timesystem.New(fake)
	system.Start()
	checker := &stubChecker{}
	watcher := New(model.AutoPauseConfig{
		Enabled:       true,
		PauseAfter:    time.Minute,
		CheckInterval: time.Second,
	}, Config{Now: fake.Now}, system, checker)
	return watcher, checker, system, fake
}

func TestIdlePausesAndResumes(t *testing.T) {
	watcher, checker, system, fake := newFixture(t)
	events := watcher.Subscribe(4)

	checker.set(2*time.Minute, nil)
	watcher.check(fake.Now())
	require.True(t, system.IsPaused())
	require.True(t, watcher.IdlePaused())

	event := <-events
	assert.Equal(t, EventIdlePause, event.Type)
	assert.Equal(t, 2*time.Minute, event.Idle)

	fake.Advance(time.Minute)
	checker.set(time.Second, nil)
	watcher.check(fake.Now())

	assert.False(t, system.IsPaused())
	assert.False(t, watcher.IdlePaused())
	event = <-events
	assert.Equal(t, EventIdleResume, event.Type)
	assert.Zero(t, system.Elapsed(), "paused span is excluded after resume")
}

func TestBelowThresholdDoesNothing(t *testing.T) {
	watcher, checker, system, fake := newFixture(t)
	events := watcher.Subscribe(1)

	checker.set(30*time.Second, nil)
	watcher.check(fake.Now())

	assert.False(t, system.IsPaused())
	assert.Empty(t, events)
}

func TestManualPauseIsNotResumed(t *testing.T) {
	watcher, checker, system, fake := newFixture(t)

	system.Pause()
	checker.set(2*time.Minute, nil)
	watcher.check(fake.Now())
	assert.False(t, watcher.IdlePaused())

	checker.set(0, nil)
	watcher.check(fake.Now())
	assert.True(t, system.IsPaused())
}

func TestManualPauseAfterIdleResumeIsKept(t *testing.T) {
	watcher, checker, system, fake := newFixture(t)

	checker.set(2*time.Minute, nil)
	watcher.check(fake.Now())
	require.True(t, watcher.IdlePaused())

	system.Resume()
	watcher.ReleaseHold()
	system.Pause()
	watcher.ReleaseHold()

	checker.set(0, nil)
	watcher.check(fake.Now())
	assert.True(t, system.IsPaused())
	assert.False(t, watcher.IdlePaused())
}

func TestExternalResumeDropsHold(t *testing.T) {
	watcher, checker, system, fake := newFixture(t)
	events := watcher.Subscribe(4)

	checker.set(2*time.Minute, nil)
	watcher.check(fake.Now())
	<-events

	system.Resume()
	checker.set(90*time.Second, nil)
	watcher.check(fake.Now())
	assert.True(t, system.IsPaused(), "still idle, so the clock is paused again")
	assert.Equal(t, EventIdlePause, (<-events).Type)

	system.Resume()
	checker.set(30*time.Second, nil)
	watcher.check(fake.Now())
	assert.False(t, watcher.IdlePaused())
	assert.Empty(t, events)

	system.Pause()
	watcher.check(fake.Now())
	assert.True(t, system.IsPaused())
}

func TestUnsupportedDisablesChecks(t *testing.T) {
	watcher, checker, _, fake := newFixture(t)
	events := watcher.Subscribe(4)

	checker.set(0, ErrIdleUnsupported)
	watcher.check(fake.Now())
	watcher.check(fake.Now())

	assert.Equal(t, 1, checker.calls)
	event := <-events
	assert.Equal(t, EventIdleError, event.Type)
	assert.Equal(t, ErrIdleUnsupported.Error(), event.Message)
}

func TestTransientErrorKeepsChecking(t *testing.T) {
	watcher, checker, _, fake := newFixture(t)
	events := watcher.Subscribe(4)

	checker.set(0, errors.New("xprintidle: exit status 1"))
	watcher.check(fake.Now())
	watcher.check(fake.Now())

	assert.Equal(t, 2, checker.calls)
	assert.Len(t, events, 2)
}

func TestDisabledConfigSkipsChecks(t *testing.T) {
	watcher, checker, _, fake := newFixture(t)
	watcher.UpdateConfig(model.AutoPauseConfig{Enabled: false})

	watcher.check(fake.Now())

	assert.Zero(t, checker.calls)
}

func TestDisablingReleasesHeldPause(t *testing.T) {
	watcher, checker, system, fake := newFixture(t)

	checker.set(time.Hour, nil)
	watcher.check(fake.Now())
	require.True(t, system.IsPaused())

	watcher.UpdateConfig(model.AutoPauseConfig{Enabled: false})

	assert.False(t, system.IsPaused())
	assert.False(t, watcher.IdlePaused())
}

func TestDefaults(t *testing.T) {
	watcher := New(model.AutoPauseConfig{Enabled: true}, Config{}, timesystem.New(nil), nil)

	assert.Equal(t, 5*time.Second, watcher.config.CheckInterval)
	assert.Equal(t, time.Minute, watcher.config.PauseAfter)
	assert.NotNil(t, watcher.options.Now)
}

func TestStartStopClosesSubscribers(t *testing.T) {
	checker := &stubChecker{idle: time.Hour}
	system := timesystem.New(nil)
	system.Start()
	watcher := New(model.AutoPauseConfig{
		Enabled:       true,
		PauseAfter:    time.Minute,
		CheckInterval: time.Millisecond,
	}, Config{}, system, checker)
	events := watcher.Subscribe(4)

	watcher.Start()
	watcher.Start()

	select {
	case event := <-events:
		assert.Equal(t, EventIdlePause, event.Type)
	case <-time.After(time.Second):
		t.Fatal("expected an idle pause event")
	}

	watcher.Stop()
	watcher.Stop()
	for range events {
	}
	assert.True(t, system.IsPaused())
}
