package spline

import "github.com/Faultbox/splinecast/pkg/math"

// Track is one named animated spline. Name, Closed and Frames are read-only
// after construction; the derived position buffer is rebuilt every time
// playback time changes and is the only high-churn state.
type Track struct {
	Name   string
	Closed bool
	Frames []Keyframe

	visible  bool
	material Material
	buffer   []float32
	version  uint64
}

// Buffer returns the current flat xyz position buffer. The slice is replaced
// wholesale on every rebuild; callers must treat it as read-only and re-fetch
// it whenever Version changes.
func (t *Track) Buffer() []float32 {
	return t.buffer
}

// Version counts buffer rebuilds. A consumer re-binds the buffer when the
// version moves past the one it last uploaded.
func (t *Track) Version() uint64 {
	return t.version
}

// PositionCount returns the number of 3D positions in the buffer.
func (t *Track) PositionCount() int {
	return len(t.buffer) / 3
}

// Visible reports the externally controlled visibility flag.
func (t *Track) Visible() bool {
	return t.visible
}

// SetVisible sets the visibility flag. The flag is bookkeeping for rendering
// collaborators; it does not affect buffer rebuilds.
func (t *Track) SetVisible(v bool) {
	t.visible = v
}

// Material returns the externally owned material reference.
func (t *Track) Material() Material {
	return t.material
}

// SetMaterial stores an externally owned material reference.
func (t *Track) SetMaterial(m Material) {
	t.material = m
}

// MaxFrame returns the highest frame number on the track, 0 when it has no
// keyframes. Frames are sorted at construction so the last entry holds it.
func (t *Track) MaxFrame() int {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Frame
}

// refresh rebuilds the position buffer for the given fractional frame
// position. A track with no keyframes keeps its previous buffer so a stale
// shape never flickers to nothing mid-playback.
func (t *Track) refresh(target float64, resolution int) {
	prev, next := resolveBracket(t.Frames, target)
	if prev == nil {
		return
	}
	f := bracketFactor(prev, next, target)
	curves, points := interpolate(prev, next, f)
	if len(curves) > 0 {
		points = Tessellate(curves, resolution)
	}
	t.buffer = flatten(points, t.Closed)
	t.version++
}

// flatten packs positions into a flat xyz buffer, appending a duplicate of
// the first position when the track is closed.
func flatten(pts []math.Vec3, closed bool) []float32 {
	if len(pts) == 0 {
		return nil
	}
	n := len(pts)
	if closed {
		n++
	}
	buf := make([]float32, 0, n*3)
	for _, p := range pts {
		buf = append(buf, p.X, p.Y, p.Z)
	}
	if closed {
		first := pts[0]
		buf = append(buf, first.X, first.Y, first.Z)
	}
	return buf
}
