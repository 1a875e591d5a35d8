// Package scroll maps normalized scroll input onto playback progress.
package scroll

import (
	"math"

	"github.com/fogleman/ease"

	"github.com/Faultbox/splinecast/internal/config"
)

// Func shapes a normalized position in [0, 1].
type Func func(float64) float64

var easings = map[string]Func{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"out-expo":     ease.OutExpo,
	"in-out-sine":  ease.InOutSine,
}

// EasingByName resolves an easing function by its configuration name.
// Unknown names fall back to linear.
func EasingByName(name string) Func {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.Linear
}

// DefaultSmoothing is applied when the configured factor is out of range.
const DefaultSmoothing = 0.15

// Driver converts scroll input into eased, smoothed playback progress.
// SetTarget records raw positions as they arrive; Step advances a smoothed
// position toward the target every tick so jumpy input still produces fluid
// motion. Like the player it drives, a Driver is single-threaded.
type Driver struct {
	easing    Func
	smoothing float64

	target  float64
	current float64
}

// NewDriver builds a driver from configuration.
func NewDriver(cfg config.ScrollConfig) *Driver {
	smoothing := cfg.Smoothing
	if smoothing <= 0 || smoothing > 1 {
		smoothing = DefaultSmoothing
	}
	return &Driver{
		easing:    EasingByName(cfg.Easing),
		smoothing: smoothing,
	}
}

// SetTarget records the latest scroll position, clamped to [0, 1].
func (d *Driver) SetTarget(v float64) {
	d.target = clamp(v)
}

// Target returns the most recent raw scroll position.
func (d *Driver) Target() float64 {
	return d.target
}

// Step moves the smoothed position toward the target and returns the eased
// progress for this tick. The approach is exponential, normalized to a 60 Hz
// reference so the smoothing feel does not change with tick rate.
func (d *Driver) Step(dt float64) float64 {
	k := 1 - math.Pow(1-d.smoothing, dt*60)
	d.current += (d.target - d.current) * k
	return d.easing(d.current)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
