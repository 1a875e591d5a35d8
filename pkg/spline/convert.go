package spline

import (
	"sort"

	"github.com/Faultbox/splinecast/pkg/math"
	"github.com/Faultbox/splinecast/pkg/oati"
)

// newTrack builds a Track from a parsed spline. Frames are sorted ascending
// by frame number so bracket resolution is well-defined even for documents
// exported out of order.
func newTrack(s *oati.Spline, closed bool) *Track {
	tr := &Track{
		Name:    s.Name,
		Closed:  closed,
		Frames:  make([]Keyframe, 0, len(s.Frames)),
		visible: true,
	}
	for i := range s.Frames {
		tr.Frames = append(tr.Frames, newKeyframe(&s.Frames[i]))
	}
	sort.SliceStable(tr.Frames, func(i, j int) bool {
		return tr.Frames[i].Frame < tr.Frames[j].Frame
	})
	return tr
}

// newKeyframe converts one document frame. Curve data wins the kind tag when
// both representations are present; raw points are kept either way for the
// mixed-bracket fallback.
func newKeyframe(f *oati.Frame) Keyframe {
	kf := Keyframe{Frame: f.Frame}
	if len(f.Points) > 0 {
		kf.Points = make([]math.Vec3, len(f.Points))
		for i, p := range f.Points {
			kf.Points[i] = vec3(p)
		}
	}
	if f.HasCurves() {
		kf.Kind = FrameCurves
		kf.Curves = make([]Curve, len(f.Curves))
		for i := range f.Curves {
			c := &f.Curves[i]
			pts := make([]ControlPoint, len(c.Points))
			for j := range c.Points {
				cp := &c.Points[j]
				pts[j] = ControlPoint{
					Knot: vec3(cp.Knot),
					In:   vec3(cp.InHandle),
					Out:  vec3(cp.OutHandle),
				}
			}
			kf.Curves[i] = Curve{Index: c.SplineIndex, Points: pts}
		}
	}
	return kf
}

func vec3(p oati.Point) math.Vec3 {
	return math.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}
