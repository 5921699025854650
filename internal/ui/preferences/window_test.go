package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animclock/internal/core/easing"
)

func TestWindowShowsSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil)

	assert.Equal(t, "1500", prefs.duration.Text)
	assert.Equal(t, string(easing.KindBounce), prefs.curve.Selected)
	assert.Equal(t, "3", prefs.curveParam.Text)
	assert.True(t, prefs.loop.Checked)
	assert.InDelta(t, 0.25, prefs.slowFactor.Value, 1e-9)
	assert.Equal(t, "3", prefs.slowFor.Text)
	assert.True(t, prefs.idleCheck.Checked)
	assert.Equal(t, "120", prefs.idleAfter.Text)
}

func TestWindowSave(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.duration.SetText("800")
	prefs.curve.SetSelected(string(easing.KindElastic))
	prefs.curveParam.SetText("5")
	prefs.loop.SetChecked(false)
	prefs.slowFor.SetText("1.5")
	prefs.idleCheck.SetChecked(false)
	prefs.idleAfter.SetText("30")
	prefs.handleSave()

	require.Len(t, saved, 1)
	got := saved[0]
	assert.Equal(t, 800*time.Millisecond, got.AnimationDuration)
	assert.Equal(t, easing.KindElastic, got.Curve)
	assert.Equal(t, 5.0, got.CurveParam)
	assert.False(t, got.Loop)
	assert.Equal(t, 1500*time.Millisecond, got.SlowMotionDuration)
	assert.False(t, got.IdlePauseEnabled)
	assert.Equal(t, 30*time.Second, got.IdlePauseAfter)
}

func TestWindowKeepsPreviousValuesOnBadInput(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	defaults := DefaultSettings()
	prefs := New(app, defaults, nil)

	prefs.duration.SetText("soon")
	prefs.curveParam.SetText("-1")
	prefs.slowFor.SetText("0")
	prefs.idleAfter.SetText("")

	got := prefs.collect()
	assert.Equal(t, defaults.AnimationDuration, got.AnimationDuration)
	assert.Equal(t, defaults.CurveParam, got.CurveParam)
	assert.Equal(t, defaults.SlowMotionDuration, got.SlowMotionDuration)
	assert.Equal(t, defaults.IdlePauseAfter, got.IdlePauseAfter)
}

func TestParsePositiveInt(t *testing.T) {
	value, ok := parsePositiveInt("42")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	for _, raw := range []string{"", "0", "-3", "1.5", "x"} {
		_, ok := parsePositiveInt(raw)
		assert.False(t, ok, raw)
	}
}
