//go:build !windows

package overlay

// Other platforms rely on the translucent canvas background.
func (overlay *Window) applyNativeOpacity(uint8) {}
