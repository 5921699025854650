package platform

import "animclock/internal/core/autopause"

// NewIdleProvider returns a platform-specific idle checker.
// Unsupported systems report autopause.ErrIdleUnsupported.
func NewIdleProvider() autopause.IdleChecker {
	return newIdleProvider()
}
