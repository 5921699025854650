package preferences

import (
	"time"

	"animclock/internal/core/easing"
	"animclock/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	AnimationDuration time.Duration
	Curve             easing.Kind
	CurveParam        float64
	Loop              bool
	FrameInterval     time.Duration

	SlowMotionFactor   float64
	SlowMotionDuration time.Duration

	IdlePauseEnabled bool
	IdlePauseAfter   time.Duration
}

// DefaultSettings returns default settings for AnimClock.
func DefaultSettings() Settings {
	return Settings{
		AnimationDuration:  1500 * time.Millisecond,
		Curve:              easing.KindBounce,
		CurveParam:         3,
		Loop:               true,
		FrameInterval:      16 * time.Millisecond,
		SlowMotionFactor:   0.25,
		SlowMotionDuration: 3 * time.Second,
		IdlePauseEnabled:   true,
		IdlePauseAfter:     2 * time.Minute,
	}
}

// AnimationConfig converts settings to an AnimationConfig.
func (settings Settings) AnimationConfig() model.AnimationConfig {
	return model.AnimationConfig{
		Duration: settings.AnimationDuration,
		Curve: model.CurveConfig{
			Kind:  string(settings.Curve),
			Param: settings.CurveParam,
		},
		Loop:          settings.Loop,
		FrameInterval: settings.FrameInterval,
	}
}

// SlowMotionConfig converts settings to a SlowMotionConfig.
func (settings Settings) SlowMotionConfig() model.SlowMotionConfig {
	return model.SlowMotionConfig{
		Factor:   settings.SlowMotionFactor,
		Duration: settings.SlowMotionDuration,
	}
}

// AutoPauseConfig converts settings to an AutoPauseConfig.
func (settings Settings) AutoPauseConfig() model.AutoPauseConfig {
	return model.AutoPauseConfig{
		Enabled:       settings.IdlePauseEnabled,
		PauseAfter:    settings.IdlePauseAfter,
		CheckInterval: 5 * time.Second,
	}
}

// EasingCurve builds the configured curve.
func (settings Settings) EasingCurve() (easing.Curve, error) {
	return easing.New(settings.Curve, settings.CurveParam)
}
