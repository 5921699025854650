package easing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestBoundaryValues(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
	}{
		{"linear", MakeLinear()},
		{"ease in", MakeEaseIn(1)},
		{"ease in strong", MakeEaseIn(3)},
		{"ease out", MakeEaseOut(1)},
		{"ease out strong", MakeEaseOut(2.5)},
		{"ease in out", MakeEaseInOut()},
		{"elastic", MakeElastic(3)},
		{"elastic even", MakeElastic(4)},
		{"bounce", MakeBounce(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0, tt.curve.Transform(0), tolerance)
			assert.InDelta(t, 1, tt.curve.Transform(1), tolerance)
		})
	}
}

func TestBounceEndsAtOneForAnyCount(t *testing.T) {
	for _, bounces := range []float64{1, 2, 3, 5, 8, 0.5} {
		assert.InDelta(t, 1, MakeBounce(bounces).Transform(1), tolerance, "bounces %v", bounces)
	}
}

func TestFormulas(t *testing.T) {
	p := 0.3

	assert.InDelta(t, p, MakeLinear().Transform(p), tolerance)
	assert.InDelta(t, math.Pow(p, 4), MakeEaseIn(2).Transform(p), tolerance)
	assert.InDelta(t, 1-math.Pow(1-p, 2), MakeEaseOut(1).Transform(p), tolerance)
	assert.InDelta(t, p-math.Sin(2*math.Pi*p)/(2*math.Pi), MakeEaseInOut().Transform(p), tolerance)
	assert.InDelta(t, (1-math.Cos(p*math.Pi*3))*(1-p)+p, MakeElastic(3).Transform(p), tolerance)
}

func TestEaseInOutMidpoint(t *testing.T) {
	assert.InDelta(t, 0.5, MakeEaseInOut().Transform(0.5), tolerance)
}

func TestBounceFoldsOvershoot(t *testing.T) {
	elastic := MakeElastic(3)
	bounce := MakeBounce(3)

	overshoot := false
	for step := 0; step <= 100; step++ {
		p := float64(step) / 100
		q := elastic.Transform(p)
		got := bounce.Transform(p)
		if q > 1 {
			overshoot = true
			assert.InDelta(t, 2-q, got, tolerance)
		} else {
			assert.InDelta(t, q, got, tolerance)
		}
		assert.LessOrEqual(t, got, 1+tolerance)
	}
	require.True(t, overshoot, "elastic(3) should overshoot somewhere in [0,1]")
}

func TestOvershootInputAllowed(t *testing.T) {
	assert.InDelta(t, 1.5, MakeLinear().Transform(1.5), tolerance)
	assert.False(t, math.IsNaN(MakeEaseOut(1).Transform(1.2)))
}

func TestZeroParametersUseDefaults(t *testing.T) {
	assert.Equal(t, EaseIn{Strength: 1}, MakeEaseIn(0))
	assert.Equal(t, EaseOut{Strength: 1}, MakeEaseOut(0))
	assert.Equal(t, Elastic{Passes: 3}, MakeElastic(0))
	assert.Equal(t, Bounce{Bounces: 3}, MakeBounce(0))
}

func TestNew(t *testing.T) {
	for _, kind := range Kinds() {
		curve, err := New(kind, 0)
		require.NoError(t, err, kind)
		require.NotNil(t, curve, kind)
	}

	curve, err := New("", 0)
	require.NoError(t, err)
	assert.Equal(t, Linear{}, curve)

	curve, err = New(KindEaseIn, 2)
	require.NoError(t, err)
	assert.Equal(t, EaseIn{Strength: 2}, curve)

	_, err = New("wobble", 1)
	require.ErrorIs(t, err, ErrUnknownCurve)
}

func TestCurveFunc(t *testing.T) {
	double := CurveFunc(func(p float64) float64 { return p * 2 })
	assert.Equal(t, 0.8, double.Transform(0.4))
}

func TestString(t *testing.T) {
	assert.Equal(t, "linear", Linear{}.String())
	assert.Equal(t, "ease_in(2)", EaseIn{Strength: 2}.String())
	assert.Equal(t, "bounce(3)", Bounce{Bounces: 3}.String())
}
