package palette

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/splinecast/internal/config"
	"github.com/Faultbox/splinecast/pkg/oati"
	"github.com/Faultbox/splinecast/pkg/spline"
)

func TestFromConfigExplicitColor(t *testing.T) {
	p, err := FromConfig(config.PaletteConfig{
		Colors:    map[string]string{"Path001": "#ff0000"},
		Intensity: 2,
	})
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}

	g := p.Glow("Path001")
	if g.Intensity != 2 {
		t.Errorf("expected intensity 2, got %f", g.Intensity)
	}
	if math.Abs(g.Color.R-1) > 1e-9 || g.Color.G != 0 || g.Color.B != 0 {
		t.Errorf("expected pure red, got %+v", g.Color)
	}
}

func TestFromConfigInvalidColor(t *testing.T) {
	_, err := FromConfig(config.PaletteConfig{
		Colors: map[string]string{"Path001": "not-a-color"},
	})
	if err == nil {
		t.Error("expected error for invalid hex color, got nil")
	}
}

func TestFromConfigIntensityDefault(t *testing.T) {
	p, err := FromConfig(config.PaletteConfig{})
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}
	if g := p.Glow("anything"); g.Intensity != 1 {
		t.Errorf("expected intensity fallback 1, got %f", g.Intensity)
	}
}

func TestGlowDeterministic(t *testing.T) {
	p, err := FromConfig(config.PaletteConfig{Intensity: 1})
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}

	a := p.Glow("Path001")
	b := p.Glow("Path001")
	if a != b {
		t.Error("same name should always map to the same glow")
	}

	c := p.Glow("Path002")
	if a.Color == c.Color {
		t.Error("different names should usually map to different colours")
	}
}

func TestGradientTableEndpoints(t *testing.T) {
	g := GradientTable{
		{0.0, 0.0},
		{360.0, 1.0},
	}

	end := g.GetColor(1, 0.5, 0.5)
	past := g.GetColor(2, 0.5, 0.5)
	if end != past {
		t.Error("positions past the table end should clamp to the last hue")
	}

	mid := g.GetColor(0.5, 0.5, 0.5)
	want := colorful.Hcl(180, 0.5, 0.5)
	if mid != want {
		t.Errorf("midpoint colour = %+v, want %+v", mid, want)
	}
}

func TestHashPosRange(t *testing.T) {
	names := []string{"Path001", "Path002", "helix", "orbit", ""}
	for _, name := range names {
		pos := hashPos(name)
		if pos < 0 || pos >= 1 {
			t.Errorf("hashPos(%q) = %f, want [0, 1)", name, pos)
		}
	}
}

func TestApply(t *testing.T) {
	asset := &oati.Asset{
		Metadata: oati.Metadata{FrameRate: 30},
		Splines: []oati.Spline{
			{
				Name: "Path001",
				Frames: []oati.Frame{
					{Frame: 0, Points: []oati.Point{{0, 0, 0}, {1, 0, 0}}},
				},
			},
			{
				Name: "Path002",
				Frames: []oati.Frame{
					{Frame: 0, Points: []oati.Point{{0, 1, 0}, {1, 1, 0}}},
				},
			},
		},
	}

	player, err := spline.New(asset)
	if err != nil {
		t.Fatalf("building player: %v", err)
	}

	p, err := FromConfig(config.PaletteConfig{
		Colors:    map[string]string{"Path001": "#00ff00"},
		Intensity: 1.5,
	})
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}

	p.Apply(player)

	for _, tr := range player.Tracks() {
		g, ok := tr.Material().(Glow)
		if !ok {
			t.Fatalf("track %s has material %T, want Glow", tr.Name, tr.Material())
		}
		if g.Intensity != 1.5 {
			t.Errorf("track %s intensity = %f, want 1.5", tr.Name, g.Intensity)
		}
	}

	g := player.Track("Path001").Material().(Glow)
	if g.Color.G != 1 || g.Color.R != 0 {
		t.Errorf("Path001 should use the configured green, got %+v", g.Color)
	}
}
