//go:build debug

package assert

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Enabled reports whether assertions are compiled in.
const Enabled = true

// That logs a warning with the caller position when cond is false.
func That(cond bool, format string, args ...any) {
	if cond {
		return
	}
	entry := logrus.WithField("assert", true)
	if _, file, line, ok := runtime.Caller(1); ok {
		entry = entry.WithField("at", fmt.Sprintf("%s:%d", file, line))
	}
	entry.Warnf(format, args...)
}
