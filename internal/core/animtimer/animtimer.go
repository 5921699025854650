// Package animtimer drives a single animation segment.
//
// A Timer reports elapsed time distorted by an easing curve: the curve is
// applied multiplicatively to real elapsed time, so callers still work in
// time units while the rate of progress follows the curve.
package animtimer

import (
	"math"
	"time"

	"animclock/internal/core/assert"
	"animclock/internal/core/clock"
	"animclock/internal/core/easing"
	"animclock/internal/core/stopwatch"
)

// DefaultDuration is used when a timer is created without a positive duration.
const DefaultDuration = time.Second

// Timer is a stopwatch whose reading passes through an easing curve.
type Timer struct {
	watch    *stopwatch.Stopwatch
	duration time.Duration
	curve    easing.Curve
}

// New creates an idle timer. A nil clock selects the system clock, a
// non-positive duration selects DefaultDuration and a nil curve is linear.
func New(clk clock.Clock, duration time.Duration, curve easing.Curve) *Timer {
	timer := &Timer{watch: stopwatch.New(clk)}
	timer.SetDuration(duration)
	timer.SetCurve(curve)
	return timer
}

// Start begins the segment from zero.
func (timer *Timer) Start() {
	timer.watch.Start()
}

// Stop halts the segment.
func (timer *Timer) Stop() {
	timer.watch.Stop()
}

// Reset restarts timing from now without changing the running state.
func (timer *Timer) Reset() {
	timer.watch.Reset()
}

// IsRunning reports whether the segment is running.
func (timer *Timer) IsRunning() bool {
	return timer.watch.IsRunning()
}

// ElapsedTime returns the eased elapsed time. A stopped timer reports zero
// no matter what the underlying stopwatch froze.
func (timer *Timer) ElapsedTime() time.Duration {
	if !timer.watch.IsRunning() {
		return 0
	}
	elapsed := timer.watch.ElapsedTime()
	percent := float64(elapsed) / float64(timer.duration)
	if percent == 0 {
		return 0
	}

	eased := float64(elapsed) * (timer.curve.Transform(percent) / percent)
	if math.IsNaN(eased) || math.IsInf(eased, 0) {
		assert.That(false, "animtimer: curve %v produced %v at p=%v", timer.curve, eased, percent)
		return 0
	}
	return saturate(eased)
}

// saturate converts nanoseconds to a Duration, clamping to the int64 range
// so strong curves polled long after expiry stay expired.
func saturate(nanos float64) time.Duration {
	switch {
	case nanos >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case nanos <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(nanos)
}

// IsExpired reports whether the eased elapsed time has passed the duration.
func (timer *Timer) IsExpired() bool {
	return timer.ElapsedTime() > timer.duration
}

// Progress returns ElapsedTime as a fraction of the duration. The value is
// not clamped and exceeds 1 after expiry.
func (timer *Timer) Progress() float64 {
	return float64(timer.ElapsedTime()) / float64(timer.duration)
}

// Duration returns the target segment length.
func (timer *Timer) Duration() time.Duration {
	return timer.duration
}

// SetDuration changes the target segment length.
func (timer *Timer) SetDuration(duration time.Duration) {
	assert.That(duration > 0, "animtimer: non-positive duration %v", duration)
	if duration <= 0 {
		duration = DefaultDuration
	}
	timer.duration = duration
}

// Curve returns the active easing curve.
func (timer *Timer) Curve() easing.Curve {
	return timer.curve
}

// SetCurve swaps the easing curve; nil selects linear.
func (timer *Timer) SetCurve(curve easing.Curve) {
	if curve == nil {
		curve = easing.MakeLinear()
	}
	timer.curve = curve
}
