//go:build !linux && !darwin && !windows

package platform

import (
	"time"

	"animclock/internal/core/autopause"
)

type idleProvider struct{}

func newIdleProvider() autopause.IdleChecker {
	return idleProvider{}
}

func (idleProvider) IdleDuration() (time.Duration, error) {
	return 0, autopause.ErrIdleUnsupported
}
