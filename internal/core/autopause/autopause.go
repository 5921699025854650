// Package autopause pauses game time while the user is away.
package autopause

import (
	"errors"
	"sync"
	"time"

	"animclock/internal/core/model"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Pauser is the clock being paused; *timesystem.TimeSystem satisfies it.
type Pauser interface {
	Pause()
	Resume()
	IsPaused() bool
}

// Config contains runtime options for the Watcher.
type Config struct {
	Now func() time.Time
}

// Watcher polls an IdleChecker and pauses its target while the user is idle.
// It only resumes pauses it caused itself.
type Watcher struct {
	mu         sync.Mutex
	config     model.AutoPauseConfig
	options    Config
	target     Pauser
	checker    IdleChecker
	events     []chan Event
	stopCh     chan struct{}
	running    bool
	idlePaused bool
	disabled   bool
}

// New creates a Watcher for target.
func New(config model.AutoPauseConfig, options Config, target Pauser, checker IdleChecker) *Watcher {
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Watcher{
		config:  withDefaults(config),
		options: options,
		target:  target,
		checker: checker,
	}
}

// Subscribe registers a new observer channel.
func (watcher *Watcher) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	watcher.mu.Lock()
	watcher.events = append(watcher.events, ch)
	watcher.mu.Unlock()
	return ch
}

// Start launches the polling loop.
func (watcher *Watcher) Start() {
	watcher.mu.Lock()
	if watcher.running {
		watcher.mu.Unlock()
		return
	}
	watcher.running = true
	watcher.stopCh = make(chan struct{})
	stopCh := watcher.stopCh
	interval := watcher.config.CheckInterval
	watcher.mu.Unlock()

	go watcher.run(interval, stopCh)
}

// Stop terminates the polling loop and closes observers.
func (watcher *Watcher) Stop() {
	watcher.mu.Lock()
	if !watcher.running {
		watcher.mu.Unlock()
		return
	}
	close(watcher.stopCh)
	watcher.running = false
	events := watcher.events
	watcher.events = nil
	watcher.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// UpdateConfig replaces the runtime configuration. Disabling releases a
// pause the watcher is holding.
func (watcher *Watcher) UpdateConfig(config model.AutoPauseConfig) {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	watcher.config = withDefaults(config)
	watcher.disabled = false
	if !watcher.config.Enabled && watcher.idlePaused {
		watcher.idlePaused = false
		watcher.target.Resume()
	}
}

// ReleaseHold forgets a pause the watcher is holding without resuming the
// target. Call it whenever the user pauses or resumes by hand, so that the
// pause now belongs to the user.
func (watcher *Watcher) ReleaseHold() {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	watcher.idlePaused = false
}

// IdlePaused reports whether the watcher is holding a pause.
func (watcher *Watcher) IdlePaused() bool {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	return watcher.idlePaused
}

func (watcher *Watcher) run(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			watcher.check(watcher.options.Now())
		}
	}
}

func (watcher *Watcher) check(now time.Time) {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()

	if !watcher.config.Enabled || watcher.disabled || watcher.checker == nil {
		return
	}

	idleDuration, err := watcher.checker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			watcher.disabled = true
		}
		watcher.emitLocked(Event{
			Type:    EventIdleError,
			Message: err.Error(),
			At:      now,
		})
		return
	}

	// Resumed by someone else since the last check.
	if watcher.idlePaused && !watcher.target.IsPaused() {
		watcher.idlePaused = false
	}

	if idleDuration >= watcher.config.PauseAfter {
		if watcher.idlePaused || watcher.target.IsPaused() {
			return
		}
		watcher.target.Pause()
		watcher.idlePaused = true
		watcher.emitLocked(Event{
			Type:    EventIdlePause,
			Idle:    idleDuration,
			Message: "idle pause",
			At:      now,
		})
		return
	}

	if watcher.idlePaused {
		watcher.idlePaused = false
		watcher.target.Resume()
		watcher.emitLocked(Event{
			Type:    EventIdleResume,
			Idle:    idleDuration,
			Message: "idle resume",
			At:      now,
		})
	}
}

func (watcher *Watcher) emitLocked(event Event) {
	events := append([]chan Event(nil), watcher.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

func withDefaults(config model.AutoPauseConfig) model.AutoPauseConfig {
	if config.CheckInterval <= 0 {
		config.CheckInterval = 5 * time.Second
	}
	if config.PauseAfter <= 0 {
		config.PauseAfter = time.Minute
	}
	return config
}
