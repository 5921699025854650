package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"animclock/internal/ui/animation"
)

const headlessLogEvery = 30

// runHeadless logs frames until ctx is done, optionally starting in slow
// motion for the configured duration.
func runHeadless(ctx context.Context, session *session, slowMotion bool) {
	session.engine.SetRenderer(func(frame animation.Frame) {
		entry := logrus.WithFields(logrus.Fields{
			"frame":    frame.Index,
			"elapsed":  frame.Elapsed,
			"progress": frame.Progress,
			"game":     frame.GameTime,
			"paused":   frame.Paused,
		})
		if frame.Expired {
			entry.Info("animation segment finished")
			return
		}
		if frame.Index%headlessLogEvery == 0 {
			entry.Info("frame")
			return
		}
		entry.Debug("frame")
	})
	session.watchIdleEvents(nil)

	session.start(ctx)
	if slowMotion {
		session.slowMotion(0)
	}
	<-ctx.Done()
	session.stop()

	logrus.WithFields(logrus.Fields{
		"frames": session.engine.Frames(),
		"game":   session.system.Elapsed(),
	}).Info("headless run finished")
}
