package animation

import (
	"time"

	"animclock/internal/core/model"
)

const defaultFrameInterval = 16 * time.Millisecond

// ConfigFrom extracts engine options from an AnimationConfig.
func ConfigFrom(config model.AnimationConfig) Config {
	return Config{
		FrameInterval: config.FrameInterval,
		Loop:          config.Loop,
	}
}
