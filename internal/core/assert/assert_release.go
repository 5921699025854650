//go:build !debug

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// That is a no-op without the debug build tag.
func That(cond bool, format string, args ...any) {}
