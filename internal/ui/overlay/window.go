package overlay

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"animclock/internal/ui/animation"
)

// Config defines overlay visuals.
type Config struct {
	Opacity uint8
	Title   string
}

// Window draws a ball travelling along a track, driven by animation frames.
type Window struct {
	app        fyne.App
	window     fyne.Window
	config     Config
	background *canvas.Rectangle
	track      *canvas.Rectangle
	ball       *canvas.Circle
	titleLabel *canvas.Text
	gameLabel  *canvas.Text
	curveLabel *canvas.Text
	stateLabel *canvas.Text
	scene      *fyne.Container
	layout     *trackLayout
}

const (
	windowWidth  = float32(520)
	windowHeight = float32(200)
	ballDiameter = float32(28)
	trackHeight  = float32(4)

	// Elastic curves overshoot; leave room on both sides of the track.
	overshoot = 0.35
)

var (
	ballColor   = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	pausedColor = color.NRGBA{R: 140, G: 140, B: 140, A: 255}
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// New creates the overlay window. It is not shown until Show is called.
func New(app fyne.App, config Config) *Window {
	if config.Title == "" {
		config.Title = "AnimClock"
	}
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{A: config.Opacity})
	track := canvas.NewRectangle(color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	ball := canvas.NewCircle(ballColor)

	titleLabel := canvas.NewText(config.Title, textColor)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 18

	gameLabel := canvas.NewText(FormatGameTime(0), ballColor)
	gameLabel.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	gameLabel.TextSize = 16

	curveLabel := canvas.NewText("", textColor)
	curveLabel.TextSize = 13

	stateLabel := canvas.NewText("", textColor)
	stateLabel.Alignment = fyne.TextAlignTrailing
	stateLabel.TextSize = 13

	sceneLayout := &trackLayout{}
	scene := container.New(sceneLayout, track, ball)
	header := container.NewGridWithColumns(2, titleLabel, stateLabel)
	footer := container.NewGridWithColumns(2, gameLabel, curveLabel)
	content := container.NewBorder(header, footer, nil, nil, scene)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))

	overlay := &Window{
		app:        app,
		window:     window,
		config:     config,
		background: background,
		track:      track,
		ball:       ball,
		titleLabel: titleLabel,
		gameLabel:  gameLabel,
		curveLabel: curveLabel,
		stateLabel: stateLabel,
		scene:      scene,
		layout:     sceneLayout,
	}
	overlay.applyNativeOpacity(config.Opacity)
	return overlay
}

// Show displays the window.
func (overlay *Window) Show() {
	overlay.window.Show()
	overlay.window.CenterOnScreen()
	overlay.applyNativeOpacity(overlay.config.Opacity)
}

// Hide hides the window.
func (overlay *Window) Hide() {
	overlay.window.Hide()
}

// SetOnClosed hides instead of closing and calls handler, if any.
func (overlay *Window) SetOnClosed(handler func()) {
	overlay.window.SetCloseIntercept(func() {
		overlay.window.Hide()
		if handler != nil {
			handler()
		}
	})
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	if config.Title == "" {
		config.Title = overlay.config.Title
	}
	overlay.config = config
	overlay.background.FillColor = color.NRGBA{A: config.Opacity}
	overlay.titleLabel.Text = config.Title
	canvas.Refresh(overlay.background)
	overlay.titleLabel.Refresh()
	overlay.applyNativeOpacity(config.Opacity)
}

// Render draws a frame. Safe to call from any goroutine.
func (overlay *Window) Render(frame animation.Frame) {
	fyne.Do(func() {
		overlay.renderUnsafe(frame)
	})
}

func (overlay *Window) renderUnsafe(frame animation.Frame) {
	overlay.layout.progress = frame.Progress
	overlay.scene.Refresh()

	fill := ballColor
	state := ""
	if frame.Paused {
		fill = pausedColor
		state = "paused"
	}
	if overlay.ball.FillColor != fill {
		overlay.ball.FillColor = fill
		overlay.ball.Refresh()
	}

	overlay.gameLabel.Text = FormatGameTime(frame.GameTime)
	overlay.gameLabel.Refresh()
	overlay.stateLabel.Text = state
	overlay.stateLabel.Refresh()
	if frame.Curve != nil {
		overlay.curveLabel.Text = fmt.Sprint(frame.Curve)
		overlay.curveLabel.Refresh()
	}
}

// FormatGameTime renders a game clock reading as mm:ss.mmm.
func FormatGameTime(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	millis := value.Milliseconds()
	minutes := millis / 60000
	seconds := (millis / 1000) % 60
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis%1000)
}

// ballOffset maps animation progress to the ball's x position inside a
// scene of the given width.
func ballOffset(progress float64, width, diameter float32) float32 {
	if progress < -overshoot {
		progress = -overshoot
	}
	if progress > 1+overshoot {
		progress = 1 + overshoot
	}
	span := width - diameter
	if span <= 0 {
		return 0
	}
	margin := span * overshoot / (1 + 2*overshoot)
	travel := span - 2*margin
	return margin + travel*float32(progress)
}

// trackLayout places the track across the middle and the ball at progress.
type trackLayout struct {
	progress float64
}

func (layout *trackLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	track := objects[0]
	ball := objects[1]

	centerY := size.Height / 2
	track.Move(fyne.NewPos(ballDiameter/2, centerY-trackHeight/2))
	track.Resize(fyne.NewSize(max(size.Width-ballDiameter, 0), trackHeight))

	ball.Move(fyne.NewPos(ballOffset(layout.progress, size.Width, ballDiameter), centerY-ballDiameter/2))
	ball.Resize(fyne.NewSize(ballDiameter, ballDiameter))
}

func (layout *trackLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(ballDiameter*4, ballDiameter*1.5)
}
