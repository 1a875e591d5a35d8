// Package spline animates keyframed 3D splines. It resolves the pair of
// keyframes bracketing a playback position, blends their control geometry,
// tessellates Bezier curves into polylines and maintains a flat position
// buffer per track for rendering collaborators to bind.
//
// The package is single-threaded by design: a Player and its Tracks must be
// driven from one goroutine, the same one that ticks Update. Nothing here
// locks.
package spline

import "github.com/Faultbox/splinecast/pkg/math"

// FrameKind tags which geometry a keyframe carries.
type FrameKind uint8

const (
	// FramePoints marks a keyframe holding raw polyline points.
	FramePoints FrameKind = iota
	// FrameCurves marks a keyframe holding Bezier curve segments.
	FrameCurves
)

// String returns the kind name.
func (k FrameKind) String() string {
	if k == FrameCurves {
		return "curves"
	}
	return "points"
}

// ControlPoint is one Bezier control point: the on-curve knot plus the
// incoming and outgoing tangent handles.
type ControlPoint struct {
	Knot math.Vec3
	In   math.Vec3
	Out  math.Vec3
}

// Curve is one sub-curve of a track's shape. Index is the 1-based sub-curve
// id from the source document; 0 or negative means unassigned and positional
// order applies.
type Curve struct {
	Index  int
	Points []ControlPoint
}

// Keyframe is the captured geometry of a track at one frame number. Kind
// selects which slice is authoritative; a curve keyframe may still carry raw
// points, used only when its bracket partner lacks curve data.
type Keyframe struct {
	Frame  int
	Kind   FrameKind
	Points []math.Vec3
	Curves []Curve
}

// Material is an externally owned rendering material reference. The package
// stores and returns it untouched.
type Material any

// Scene is implemented by rendering collaborators that host track polylines
// as renderable primitives.
type Scene interface {
	AddTrack(*Track)
	RemoveTrack(*Track)
}
