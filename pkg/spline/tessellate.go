package spline

import "github.com/Faultbox/splinecast/pkg/math"

// DefaultResolution is the sample count per Bezier arc when none is
// configured.
const DefaultResolution = 20

// Tessellate converts curve segments into an ordered polyline. Each
// consecutive control-point pair becomes one cubic Bezier arc (start knot,
// start out-handle, end in-handle, end knot) sampled at resolution+1 evenly
// spaced parameter values. Arcs concatenate in segment order, then pair
// order, then sample order; adjacent arcs repeat their shared knot. A
// segment with a single control point contributes just that knot. The
// polyline is regenerated in full on every call.
func Tessellate(curves []Curve, resolution int) []math.Vec3 {
	if resolution < 1 {
		resolution = DefaultResolution
	}
	var out []math.Vec3
	for i := range curves {
		pts := curves[i].Points
		switch {
		case len(pts) == 0:
		case len(pts) == 1:
			out = append(out, pts[0].Knot)
		default:
			for j := 0; j+1 < len(pts); j++ {
				cur, nxt := &pts[j], &pts[j+1]
				out = math.SampleCubicBezier(out, cur.Knot, cur.Out, nxt.In, nxt.Knot, resolution)
			}
		}
	}
	return out
}
