// Package palette assigns glow materials to spline tracks.
package palette

import (
	"fmt"
	"hash/fnv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/splinecast/internal/config"
	"github.com/Faultbox/splinecast/pkg/spline"
)

// Glow is the material attached to a track: a display colour plus an
// emissive intensity multiplier.
type Glow struct {
	Color     colorful.Color
	Intensity float32
}

// GradientTable stores a look-up table of hues interpolated by position.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, c, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		g1 := g[i]
		g2 := g[i+1]
		if g1.Pos <= t && t <= g2.Pos {
			h := (((t - g1.Pos) / (g2.Pos - g1.Pos)) * (g2.Hue - g1.Hue)) + g1.Hue
			return colorful.Hcl(h, c, l)
		}
	}

	// At or past the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, c, l)
}

// DefaultGradient sweeps the hue wheel so unconfigured tracks land on
// visually distinct colours.
var DefaultGradient = GradientTable{
	{0.0, 0.0},    // Red
	{45.0, 0.15},  // Orange
	{90.0, 0.30},  // Yellow-green
	{160.0, 0.45}, // Green
	{220.0, 0.60}, // Cyan
	{265.0, 0.75}, // Blue
	{310.0, 0.88}, // Violet
	{360.0, 1.0},  // Red wrap
}

const (
	gradientChroma = 0.65
	gradientLum    = 0.6
)

// Palette resolves a Glow for every track in a scene. Explicitly configured
// track colours win; unmatched tracks get a gradient colour derived from
// their name, so the same scene always colours the same way.
type Palette struct {
	colors    map[string]colorful.Color
	gradient  GradientTable
	intensity float32
}

// FromConfig builds a palette from configuration.
func FromConfig(cfg config.PaletteConfig) (*Palette, error) {
	colors := make(map[string]colorful.Color, len(cfg.Colors))
	for name, hex := range cfg.Colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette colour for track %s: %w", name, err)
		}
		colors[name] = c
	}

	intensity := cfg.Intensity
	if intensity <= 0 {
		intensity = 1
	}

	return &Palette{
		colors:    colors,
		gradient:  DefaultGradient,
		intensity: intensity,
	}, nil
}

// Glow returns the material for the named track.
func (p *Palette) Glow(name string) Glow {
	if c, ok := p.colors[name]; ok {
		return Glow{Color: c, Intensity: p.intensity}
	}
	c := p.gradient.GetColor(hashPos(name), gradientChroma, gradientLum)
	return Glow{Color: c, Intensity: p.intensity}
}

// Apply assigns a Glow material to every track of the player.
func (p *Palette) Apply(player *spline.Player) {
	for _, tr := range player.Tracks() {
		tr.SetMaterial(p.Glow(tr.Name))
	}
}

// hashPos maps a track name onto [0, 1) deterministically.
func hashPos(name string) float64 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return float64(h.Sum32()) / (1 << 32)
}
