package autopause

import "time"

// EventType defines the type of watcher event.
type EventType string

const (
	EventIdlePause  EventType = "idle_pause"
	EventIdleResume EventType = "idle_resume"
	EventIdleError  EventType = "idle_error"
)

// Event represents a watcher update for observers.
type Event struct {
	Type    EventType
	Idle    time.Duration
	Message string
	At      time.Time
}
