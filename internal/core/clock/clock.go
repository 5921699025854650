package clock

import "time"

// Timer is a scheduled function call that can be cancelled.
type Timer interface {
	// Stop prevents the call from running. It returns false if the call
	// already ran or was stopped before.
	Stop() bool
}

// Clock provides the current time and deferred calls.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

// System returns a Clock backed by the time package.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// OrSystem returns clk, or the system clock when clk is nil.
func OrSystem(clk Clock) Clock {
	if clk == nil {
		return System()
	}
	return clk
}
