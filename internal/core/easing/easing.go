// Package easing provides percent-complete transducers for animation pacing.
//
// A curve maps linear progress p, nominally in [0, 1], to a distorted
// progress value. Inputs beyond 1 are allowed so timers polled after expiry
// keep producing values.
package easing

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownCurve indicates an unrecognized curve name.
var ErrUnknownCurve = errors.New("unknown easing curve")

// Curve transforms percent-complete values.
type Curve interface {
	Transform(p float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(p float64) float64

// Transform calls fn(p).
func (fn CurveFunc) Transform(p float64) float64 {
	return fn(p)
}

// Kind names a curve family.
type Kind string

const (
	KindLinear    Kind = "linear"
	KindEaseIn    Kind = "ease_in"
	KindEaseOut   Kind = "ease_out"
	KindEaseInOut Kind = "ease_in_out"
	KindElastic   Kind = "elastic"
	KindBounce    Kind = "bounce"
)

const (
	defaultStrength = 1
	defaultPasses   = 3
	defaultBounces  = 3
)

// Kinds lists every curve family in menu order.
func Kinds() []Kind {
	return []Kind{KindLinear, KindEaseIn, KindEaseOut, KindEaseInOut, KindElastic, KindBounce}
}

// New builds a curve of the given kind. param is the strength for ease-in
// and ease-out, passes for elastic, bounces for bounce, and ignored
// otherwise. Zero selects the default.
func New(kind Kind, param float64) (Curve, error) {
	switch kind {
	case KindLinear, "":
		return MakeLinear(), nil
	case KindEaseIn:
		return MakeEaseIn(param), nil
	case KindEaseOut:
		return MakeEaseOut(param), nil
	case KindEaseInOut:
		return MakeEaseInOut(), nil
	case KindElastic:
		return MakeElastic(param), nil
	case KindBounce:
		return MakeBounce(param), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, kind)
	}
}

// Linear leaves progress unchanged.
type Linear struct{}

// MakeLinear returns the identity curve.
func MakeLinear() Curve {
	return Linear{}
}

func (Linear) Transform(p float64) float64 {
	return p
}

func (Linear) String() string {
	return string(KindLinear)
}

// EaseIn starts slowly and accelerates: p^(2*strength).
type EaseIn struct {
	Strength float64
}

// MakeEaseIn returns an ease-in curve. Zero strength means 1.
func MakeEaseIn(strength float64) Curve {
	if strength == 0 {
		strength = defaultStrength
	}
	return EaseIn{Strength: strength}
}

func (curve EaseIn) Transform(p float64) float64 {
	return math.Pow(p, curve.Strength*2)
}

func (curve EaseIn) String() string {
	return fmt.Sprintf("%s(%g)", KindEaseIn, curve.Strength)
}

// EaseOut starts quickly and decelerates: 1 - (1-p)^(2*strength).
type EaseOut struct {
	Strength float64
}

// MakeEaseOut returns an ease-out curve. Zero strength means 1.
func MakeEaseOut(strength float64) Curve {
	if strength == 0 {
		strength = defaultStrength
	}
	return EaseOut{Strength: strength}
}

func (curve EaseOut) Transform(p float64) float64 {
	return 1 - math.Pow(1-p, curve.Strength*2)
}

func (curve EaseOut) String() string {
	return fmt.Sprintf("%s(%g)", KindEaseOut, curve.Strength)
}

// EaseInOut is slow at both ends: p - sin(2πp)/(2π).
type EaseInOut struct{}

// MakeEaseInOut returns the ease-in-out curve.
func MakeEaseInOut() Curve {
	return EaseInOut{}
}

func (EaseInOut) Transform(p float64) float64 {
	return p - math.Sin(p*2*math.Pi)/(2*math.Pi)
}

func (EaseInOut) String() string {
	return string(KindEaseInOut)
}

// Elastic oscillates around the linear path: (1 - cos(pπ·passes))(1-p) + p.
type Elastic struct {
	Passes float64
}

// MakeElastic returns an elastic curve. Zero passes means 3.
func MakeElastic(passes float64) Curve {
	if passes == 0 {
		passes = defaultPasses
	}
	return Elastic{Passes: passes}
}

func (curve Elastic) Transform(p float64) float64 {
	return (1-math.Cos(p*math.Pi*curve.Passes))*(1-p) + p
}

func (curve Elastic) String() string {
	return fmt.Sprintf("%s(%g)", KindElastic, curve.Passes)
}

// Bounce folds elastic overshoot back below 1.
type Bounce struct {
	Bounces float64
}

// MakeBounce returns a bounce curve. Zero bounces means 3.
func MakeBounce(bounces float64) Curve {
	if bounces == 0 {
		bounces = defaultBounces
	}
	return Bounce{Bounces: bounces}
}

func (curve Bounce) Transform(p float64) float64 {
	q := Elastic{Passes: curve.Bounces}.Transform(p)
	if q <= 1 {
		return q
	}
	return 2 - q
}

func (curve Bounce) String() string {
	return fmt.Sprintf("%s(%g)", KindBounce, curve.Bounces)
}
