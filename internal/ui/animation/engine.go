package animation

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"animclock/internal/core/animtimer"
	"animclock/internal/core/easing"
	"animclock/internal/core/timesystem"
)

// Frame is a single poll of the animation timer and the game clock.
type Frame struct {
	Index    uint64
	Elapsed  time.Duration
	Progress float64
	GameTime time.Duration
	Expired  bool
	Paused   bool
	Curve    easing.Curve
}

// Config contains frame loop options.
type Config struct {
	FrameInterval time.Duration
	Loop          bool
}

// Engine polls an animation timer and a time system once per frame and
// hands the result to a renderer.
type Engine struct {
	mu     sync.Mutex
	config Config
	timer  *animtimer.Timer
	system *timesystem.TimeSystem
	render func(Frame)
	cancel context.CancelFunc
	frames uint64
	log    *logrus.Entry
}

// New creates a frame loop engine. render may be nil.
func New(config Config, timer *animtimer.Timer, system *timesystem.TimeSystem, render func(Frame)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = defaultFrameInterval
	}
	return &Engine{
		config: config,
		timer:  timer,
		system: system,
		render: render,
		log:    logrus.WithField("component", "animation"),
	}
}

// Start starts the timers if needed and runs the frame loop until ctx is
// cancelled or Stop is called. A running loop is replaced.
func (engine *Engine) Start(ctx context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	if !engine.timer.IsRunning() {
		engine.timer.Start()
	}
	interval := engine.config.FrameInterval
	engine.mu.Unlock()

	if !engine.system.IsRunning() {
		engine.system.Start()
	}

	engine.log.WithField("interval", interval).Debug("frame loop started")
	go engine.run(runCtx, interval)
}

// Stop terminates the frame loop.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Step polls the timers once and renders the resulting frame. With Loop
// set, an expired animation restarts for the next frame.
func (engine *Engine) Step() Frame {
	engine.mu.Lock()
	engine.frames++
	elapsed := engine.timer.ElapsedTime()
	duration := engine.timer.Duration()
	frame := Frame{
		Index:    engine.frames,
		Elapsed:  elapsed,
		Progress: float64(elapsed) / float64(duration),
		Expired:  elapsed > duration,
		Curve:    engine.timer.Curve(),
	}
	if frame.Expired && engine.config.Loop {
		engine.timer.Start()
		engine.log.WithField("frame", frame.Index).Debug("animation looped")
	}
	render := engine.render
	engine.mu.Unlock()

	frame.GameTime = engine.system.Elapsed()
	frame.Paused = engine.system.IsPaused()

	if render != nil {
		render(frame)
	}
	return frame
}

// Restart begins the animation segment again from zero.
func (engine *Engine) Restart() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.timer.Start()
}

// SetCurve swaps the easing curve of the running animation.
func (engine *Engine) SetCurve(curve easing.Curve) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.timer.SetCurve(curve)
	engine.log.WithField("curve", engine.timer.Curve()).Info("curve changed")
}

// SetDuration changes the animation segment length.
func (engine *Engine) SetDuration(duration time.Duration) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.timer.SetDuration(duration)
}

// SetLoop toggles restarting on expiry.
func (engine *Engine) SetLoop(loop bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config.Loop = loop
}

// SetRenderer replaces the frame consumer.
func (engine *Engine) SetRenderer(render func(Frame)) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.render = render
}

// Frames returns the number of frames polled so far.
func (engine *Engine) Frames() uint64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.frames
}

func (engine *Engine) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			engine.log.Debug("frame loop stopped")
			return
		case <-ticker.C:
			engine.Step()
		}
	}
}
