package timesystem

import (
	"fmt"
	"math"
	"time"
)

// Transducer distorts the elapsed game time.
type Transducer interface {
	Transform(elapsed time.Duration) time.Duration
}

// TransducerFunc adapts a plain function to Transducer.
type TransducerFunc func(elapsed time.Duration) time.Duration

// Transform calls fn(elapsed).
func (fn TransducerFunc) Transform(elapsed time.Duration) time.Duration {
	return fn(elapsed)
}

// Identity reports elapsed time unchanged.
type Identity struct{}

func (Identity) Transform(elapsed time.Duration) time.Duration {
	return elapsed
}

func (Identity) String() string {
	return "identity"
}

// Scale multiplies elapsed time by Factor. Factors below 1 give slow motion.
type Scale struct {
	Factor float64
}

func (scale Scale) Transform(elapsed time.Duration) time.Duration {
	scaled := float64(elapsed) * scale.Factor
	switch {
	case scaled >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case scaled <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(scaled)
}

func (scale Scale) String() string {
	return fmt.Sprintf("scale(%g)", scale.Factor)
}
