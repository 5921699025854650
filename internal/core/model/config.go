package model

import "time"

// CurveConfig selects an easing curve by name.
type CurveConfig struct {
	Kind  string
	Param float64
}

// AnimationConfig describes the animation segment driven by the frame loop.
type AnimationConfig struct {
	Duration      time.Duration
	Curve         CurveConfig
	Loop          bool
	FrameInterval time.Duration
}

// SlowMotionConfig describes a temporary time-scale override.
type SlowMotionConfig struct {
	Factor   float64
	Duration time.Duration
}

// AutoPauseConfig contains runtime settings for idle-driven pausing.
type AutoPauseConfig struct {
	Enabled       bool
	PauseAfter    time.Duration
	CheckInterval time.Duration
}
