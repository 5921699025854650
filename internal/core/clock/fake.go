package clock

import (
	"sync"
	"time"
)

// Fake is a manually driven Clock for deterministic tests.
// All methods are safe for concurrent use.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	fake     *Fake
	deadline time.Time
	seq      uint64
	call     func()
	done     bool
}

// NewFake returns a Fake starting at a fixed epoch.
func NewFake() *Fake {
	return &Fake{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (fake *Fake) Now() time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.now
}

// Set moves the clock to t without running scheduled calls.
func (fake *Fake) Set(t time.Time) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.now = t
}

// AfterFunc schedules f to run once the clock has been advanced by d.
func (fake *Fake) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.seq++
	timer := &fakeTimer{
		fake:     fake,
		deadline: fake.now.Add(d),
		seq:      fake.seq,
		call:     f,
	}
	fake.timers = append(fake.timers, timer)
	return timer
}

// Advance moves the clock forward by d, running every scheduled call whose
// deadline is reached. Calls run in deadline order, ties in scheduling
// order, with Now reporting the deadline while each call runs.
func (fake *Fake) Advance(d time.Duration) {
	fake.mu.Lock()
	target := fake.now.Add(d)
	for {
		next := fake.nextDueLocked(target)
		if next == nil {
			break
		}
		next.done = true
		fake.removeLocked(next)
		if next.deadline.After(fake.now) {
			fake.now = next.deadline
		}
		fake.mu.Unlock()
		next.call()
		fake.mu.Lock()
	}
	if target.After(fake.now) {
		fake.now = target
	}
	fake.mu.Unlock()
}

// Pending returns the number of scheduled calls that have not run or been
// stopped.
func (fake *Fake) Pending() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return len(fake.timers)
}

func (fake *Fake) nextDueLocked(target time.Time) *fakeTimer {
	var next *fakeTimer
	for _, timer := range fake.timers {
		if timer.deadline.After(target) {
			continue
		}
		if next == nil || timer.deadline.Before(next.deadline) ||
			(timer.deadline.Equal(next.deadline) && timer.seq < next.seq) {
			next = timer
		}
	}
	return next
}

func (fake *Fake) removeLocked(target *fakeTimer) {
	for index, timer := range fake.timers {
		if timer == target {
			fake.timers = append(fake.timers[:index], fake.timers[index+1:]...)
			return
		}
	}
}

func (timer *fakeTimer) Stop() bool {
	timer.fake.mu.Lock()
	defer timer.fake.mu.Unlock()
	if timer.done {
		return false
	}
	timer.done = true
	timer.fake.removeLocked(timer)
	return true
}
