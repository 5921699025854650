// Package timesystem provides a pausable game clock with swappable
// transducers.
//
// Pausing does not freeze the reading. Elapsed keeps advancing while paused
// and the paused span is subtracted when Resume is called.
package timesystem

import (
	"sync"
	"time"

	"animclock/internal/core/clock"
	"animclock/internal/core/stopwatch"
)

// RevertID identifies a scheduled transducer revert.
type RevertID uint64

// TimeSystem is the pausable game clock. All methods are safe for
// concurrent use; scheduled reverts fire from the clock's goroutine.
type TimeSystem struct {
	mu            sync.Mutex
	clock         clock.Clock
	gate          *stopwatch.Stopwatch
	startTime     time.Time
	adjustedStart time.Time
	paused        bool
	pausedAt      time.Time
	transducer    Transducer
	reverts       map[RevertID]clock.Timer
	lastRevert    RevertID
}

// New creates an idle time system. A nil clock selects the system clock.
func New(clk clock.Clock) *TimeSystem {
	clk = clock.OrSystem(clk)
	return &TimeSystem{
		clock:      clk,
		gate:       stopwatch.New(clk),
		transducer: Identity{},
		reverts:    make(map[RevertID]clock.Timer),
	}
}

// Start begins game time from now. Calling it again restarts the clock.
func (system *TimeSystem) Start() {
	system.mu.Lock()
	defer system.mu.Unlock()

	system.startTime = system.clock.Now()
	system.adjustedStart = system.startTime
	system.paused = false
	system.pausedAt = time.Time{}
	system.gate.Start()
}

// Pause marks the beginning of a paused span. It is a no-op while paused.
func (system *TimeSystem) Pause() {
	system.mu.Lock()
	defer system.mu.Unlock()

	if system.paused {
		return
	}
	system.pausedAt = system.clock.Now()
	system.paused = true
}

// Resume ends the paused span and moves the reference start time forward by
// its length. It is a no-op while not paused.
func (system *TimeSystem) Resume() {
	system.mu.Lock()
	defer system.mu.Unlock()

	if !system.paused {
		return
	}
	pausedElapsed := system.clock.Now().Sub(system.pausedAt)
	system.paused = false
	system.pausedAt = time.Time{}
	system.adjustedStart = system.adjustedStart.Add(pausedElapsed)
}

// Elapsed returns the compensated game time passed through the active
// transducer, or zero before Start.
func (system *TimeSystem) Elapsed() time.Duration {
	system.mu.Lock()
	defer system.mu.Unlock()

	if !system.gate.IsRunning() {
		return 0
	}
	elapsed := system.clock.Now().Sub(system.adjustedStart)
	if system.transducer != nil {
		elapsed = system.transducer.Transform(elapsed)
	}
	return elapsed
}

// SetTransducer replaces the active transducer. Nil selects Identity.
func (system *TimeSystem) SetTransducer(transducer Transducer) {
	system.mu.Lock()
	defer system.mu.Unlock()
	system.transducer = orIdentity(transducer)
}

// SetTransducerFor replaces the active transducer and schedules a revert
// after duration to the transducer that was active at this call. Each call
// captures its own predecessor, so overlapping overrides settle in the order
// their reverts fire. Negative durations revert as soon as possible.
func (system *TimeSystem) SetTransducerFor(transducer Transducer, duration time.Duration) RevertID {
	if duration < 0 {
		duration = 0
	}

	system.mu.Lock()
	defer system.mu.Unlock()

	previous := system.transducer
	system.transducer = orIdentity(transducer)
	system.lastRevert++
	id := system.lastRevert
	system.reverts[id] = system.clock.AfterFunc(duration, func() {
		system.revert(id, previous)
	})
	return id
}

// CancelRevert stops a pending revert. It returns false when the revert has
// already fired or was cancelled.
func (system *TimeSystem) CancelRevert(id RevertID) bool {
	system.mu.Lock()
	timer, ok := system.reverts[id]
	delete(system.reverts, id)
	system.mu.Unlock()

	if !ok {
		return false
	}
	timer.Stop()
	return true
}

// PendingReverts returns the number of scheduled reverts still waiting.
func (system *TimeSystem) PendingReverts() int {
	system.mu.Lock()
	defer system.mu.Unlock()
	return len(system.reverts)
}

// Transducer returns the active transducer.
func (system *TimeSystem) Transducer() Transducer {
	system.mu.Lock()
	defer system.mu.Unlock()
	return system.transducer
}

// IsPaused reports whether a paused span is open.
func (system *TimeSystem) IsPaused() bool {
	system.mu.Lock()
	defer system.mu.Unlock()
	return system.paused
}

// IsRunning reports whether Start has been called.
func (system *TimeSystem) IsRunning() bool {
	system.mu.Lock()
	defer system.mu.Unlock()
	return system.gate.IsRunning()
}

// StartTime returns the time of the last Start.
func (system *TimeSystem) StartTime() time.Time {
	system.mu.Lock()
	defer system.mu.Unlock()
	return system.startTime
}

// AdjustedStartTime returns the start time shifted forward by every
// completed paused span. It is never before StartTime.
func (system *TimeSystem) AdjustedStartTime() time.Time {
	system.mu.Lock()
	defer system.mu.Unlock()
	return system.adjustedStart
}

// PausedAt returns the start of the open paused span, or the zero time.
func (system *TimeSystem) PausedAt() time.Time {
	system.mu.Lock()
	defer system.mu.Unlock()
	return system.pausedAt
}

func (system *TimeSystem) revert(id RevertID, previous Transducer) {
	system.mu.Lock()
	defer system.mu.Unlock()

	if _, ok := system.reverts[id]; !ok {
		return
	}
	delete(system.reverts, id)
	system.transducer = previous
}

func orIdentity(transducer Transducer) Transducer {
	if transducer == nil {
		return Identity{}
	}
	return transducer
}
