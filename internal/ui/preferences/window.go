package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"animclock/internal/core/easing"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	onCancel   func()
	duration   *widget.Entry
	curve      *widget.Select
	curveParam *widget.Entry
	loop       *widget.Check
	slowFactor *widget.Slider
	slowLabel  *widget.Label
	slowFor    *widget.Entry
	idleCheck  *widget.Check
	idleAfter  *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("AnimClock Settings")

	kinds := easing.Kinds()
	options := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		options = append(options, string(kind))
	}

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		duration:   widget.NewEntry(),
		curve:      widget.NewSelect(options, nil),
		curveParam: widget.NewEntry(),
		loop:       widget.NewCheck("Loop animation", nil),
		slowFactor: widget.NewSlider(0.05, 1),
		slowLabel:  widget.NewLabel(""),
		slowFor:    widget.NewEntry(),
		idleCheck:  widget.NewCheck("Pause game time when idle", nil),
		idleAfter:  widget.NewEntry(),
	}
	prefs.slowFactor.Step = 0.05
	prefs.slowFactor.OnChanged = func(value float64) {
		prefs.slowLabel.SetText(fmt.Sprintf("x%.2f", value))
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Animation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Duration"), prefs.duration, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Curve"), prefs.curve, widget.NewLabel("param"), prefs.curveParam),
		prefs.loop,
		widget.NewLabelWithStyle("Slow motion", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Speed"), prefs.slowLabel, prefs.slowFactor),
		container.NewHBox(widget.NewLabel("Revert after"), prefs.slowFor, widget.NewLabel("sec")),
		widget.NewLabelWithStyle("Idle", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.idleCheck,
		container.NewHBox(widget.NewLabel("Idle for"), prefs.idleAfter, widget.NewLabel("sec")),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(440, 420))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// SetOnCancel sets the handler called when editing is abandoned.
func (prefs *Window) SetOnCancel(handler func()) {
	prefs.onCancel = handler
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.duration.SetText(strconv.FormatInt(settings.AnimationDuration.Milliseconds(), 10))
	prefs.curve.SetSelected(string(settings.Curve))
	prefs.curveParam.SetText(strconv.FormatFloat(settings.CurveParam, 'g', -1, 64))
	prefs.loop.SetChecked(settings.Loop)
	prefs.slowFactor.SetValue(settings.SlowMotionFactor)
	prefs.slowFor.SetText(strconv.FormatFloat(settings.SlowMotionDuration.Seconds(), 'g', -1, 64))
	prefs.idleCheck.SetChecked(settings.IdlePauseEnabled)
	prefs.idleAfter.SetText(strconv.Itoa(int(settings.IdlePauseAfter.Seconds())))
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect reads the form. Unparseable fields keep their previous values.
func (prefs *Window) collect() Settings {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.duration.Text); ok {
		settings.AnimationDuration = time.Duration(millis) * time.Millisecond
	}
	if kind := easing.Kind(prefs.curve.Selected); kind != "" {
		settings.Curve = kind
	}
	if param, err := strconv.ParseFloat(prefs.curveParam.Text, 64); err == nil && param >= 0 {
		settings.CurveParam = param
	}
	settings.Loop = prefs.loop.Checked
	if prefs.slowFactor.Value > 0 {
		settings.SlowMotionFactor = prefs.slowFactor.Value
	}
	if seconds, err := strconv.ParseFloat(prefs.slowFor.Text, 64); err == nil && seconds > 0 {
		settings.SlowMotionDuration = time.Duration(seconds * float64(time.Second))
	}
	settings.IdlePauseEnabled = prefs.idleCheck.Checked
	if seconds, ok := parsePositiveInt(prefs.idleAfter.Text); ok {
		settings.IdlePauseAfter = time.Duration(seconds) * time.Second
	}
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
