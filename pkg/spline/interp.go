package spline

import "github.com/Faultbox/splinecast/pkg/math"

// interpolate blends two bracketing keyframes at factor t into synthetic
// control geometry. Curve blending runs only when both frames carry curve
// data; everything else falls back to blending the frames' raw point sets.
// Identity brackets return the keyframe's own slices unchanged, so returned
// slices may alias keyframe data and must not be mutated.
func interpolate(prev, next *Keyframe, t float32) ([]Curve, []math.Vec3) {
	if prev == next {
		return prev.Curves, prev.Points
	}
	if prev.Kind == FrameCurves && next.Kind == FrameCurves {
		return blendCurves(prev.Curves, next.Curves, t), nil
	}
	return nil, blendPoints(prev.Points, next.Points, t)
}

// blendCurves pairs curves by position up to the shorter side's count and
// blends each pair's control points the same way. Excess segments or points
// on the longer side are dropped.
func blendCurves(a, b []Curve, t float32) []Curve {
	n := min(len(a), len(b))
	out := make([]Curve, n)
	for i := 0; i < n; i++ {
		ca, cb := &a[i], &b[i]
		m := min(len(ca.Points), len(cb.Points))
		pts := make([]ControlPoint, m)
		for j := 0; j < m; j++ {
			pa, pb := &ca.Points[j], &cb.Points[j]
			pts[j] = ControlPoint{
				Knot: pa.Knot.Lerp(pb.Knot, t),
				In:   pa.In.Lerp(pb.In, t),
				Out:  pa.Out.Lerp(pb.Out, t),
			}
		}
		out[i] = Curve{Index: curveIndex(ca, cb, i), Points: pts}
	}
	return out
}

// curveIndex picks the sub-curve id for a blended pair: the first frame's,
// else the second's, else the 1-based positional fallback.
func curveIndex(a, b *Curve, pos int) int {
	if a.Index > 0 {
		return a.Index
	}
	if b.Index > 0 {
		return b.Index
	}
	return pos + 1
}

func blendPoints(a, b []math.Vec3, t float32) []math.Vec3 {
	n := min(len(a), len(b))
	if n == 0 {
		return nil
	}
	out := make([]math.Vec3, n)
	for i := 0; i < n; i++ {
		out[i] = a[i].Lerp(b[i], t)
	}
	return out
}
