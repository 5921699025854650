// Package stopwatch measures raw wall-clock durations.
package stopwatch

import (
	"time"

	"animclock/internal/core/assert"
	"animclock/internal/core/clock"
)

// Stopwatch tracks start/stop and elapsed wall-clock time.
// It is not safe for concurrent use; owners synchronize access.
type Stopwatch struct {
	clock     clock.Clock
	startTime time.Time
	running   bool
	elapsed   time.Duration
}

// New creates an idle stopwatch. A nil clock selects the system clock.
func New(clk clock.Clock) *Stopwatch {
	return &Stopwatch{clock: clock.OrSystem(clk)}
}

// Start discards any previous reading and begins timing from now.
func (watch *Stopwatch) Start() {
	watch.startTime = watch.clock.Now()
	watch.running = true
	watch.elapsed = 0
}

// Stop halts timing and freezes the elapsed duration.
// Stopping a stopped watch recomputes the reading from the old start time.
func (watch *Stopwatch) Stop() {
	assert.That(watch.running, "stopwatch: stop while not running")
	watch.running = false
	watch.elapsed = watch.clock.Now().Sub(watch.startTime)
}

// ElapsedTime returns the live duration while running, the frozen one otherwise.
func (watch *Stopwatch) ElapsedTime() time.Duration {
	if watch.running {
		return watch.clock.Now().Sub(watch.startTime)
	}
	return watch.elapsed
}

// Reset restarts timing from now without changing the running state.
func (watch *Stopwatch) Reset() {
	watch.startTime = watch.clock.Now()
	watch.elapsed = 0
}

// IsRunning reports whether the watch is running.
func (watch *Stopwatch) IsRunning() bool {
	return watch.running
}

// StartTime returns the time of the last Start or Reset.
func (watch *Stopwatch) StartTime() time.Time {
	return watch.startTime
}
