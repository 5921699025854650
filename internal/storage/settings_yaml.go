package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"animclock/internal/core/easing"
	"animclock/internal/platform"
	"animclock/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	AnimationDurationMs   int     `yaml:"animation_duration_ms"`
	Curve                 string  `yaml:"curve"`
	CurveParam            float64 `yaml:"curve_param"`
	Loop                  *bool   `yaml:"loop"`
	FrameIntervalMs       int     `yaml:"frame_interval_ms"`
	SlowMotionFactor      float64 `yaml:"slow_motion_factor"`
	SlowMotionSeconds     float64 `yaml:"slow_motion_seconds"`
	IdlePauseEnabled      *bool   `yaml:"idle_pause_enabled"`
	IdlePauseAfterSeconds int     `yaml:"idle_pause_after_seconds"`
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettingsFile reads user preferences from a YAML file. Missing or
// out-of-range fields keep their defaults.
func LoadSettingsFile(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return preferences.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettingsFile writes user preferences to a YAML file, creating parent
// directories as needed.
func SaveSettingsFile(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	loop := settings.Loop
	idle := settings.IdlePauseEnabled
	fileData := yamlSettings{
		AnimationDurationMs:   int(settings.AnimationDuration / time.Millisecond),
		Curve:                 string(settings.Curve),
		CurveParam:            settings.CurveParam,
		Loop:                  &loop,
		FrameIntervalMs:       int(settings.FrameInterval / time.Millisecond),
		SlowMotionFactor:      settings.SlowMotionFactor,
		SlowMotionSeconds:     settings.SlowMotionDuration.Seconds(),
		IdlePauseEnabled:      &idle,
		IdlePauseAfterSeconds: int(settings.IdlePauseAfter / time.Second),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) error {
	if fileData.Curve != "" {
		kind := easing.Kind(fileData.Curve)
		if _, err := easing.New(kind, fileData.CurveParam); err != nil {
			return fmt.Errorf("parse settings yaml: %w", err)
		}
		settings.Curve = kind
		settings.CurveParam = fileData.CurveParam
	}

	if fileData.AnimationDurationMs > 0 {
		settings.AnimationDuration = time.Duration(fileData.AnimationDurationMs) * time.Millisecond
	}
	if fileData.FrameIntervalMs > 0 {
		settings.FrameInterval = time.Duration(fileData.FrameIntervalMs) * time.Millisecond
	}
	if fileData.SlowMotionFactor > 0 && fileData.SlowMotionFactor <= 4 {
		settings.SlowMotionFactor = fileData.SlowMotionFactor
	}
	if fileData.SlowMotionSeconds > 0 {
		settings.SlowMotionDuration = time.Duration(fileData.SlowMotionSeconds * float64(time.Second))
	}
	if fileData.IdlePauseAfterSeconds > 0 {
		settings.IdlePauseAfter = time.Duration(fileData.IdlePauseAfterSeconds) * time.Second
	}

	if fileData.Loop != nil {
		settings.Loop = *fileData.Loop
	}
	if fileData.IdlePauseEnabled != nil {
		settings.IdlePauseEnabled = *fileData.IdlePauseEnabled
	}
	return nil
}
