package math

// CubicBezier evaluates a cubic Bezier segment at t in [0,1] with control
// points p0..p3 (p0 and p3 are the endpoints, p1 and p2 the handles).
func CubicBezier(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	return Vec3{
		mt3*p0.X + 3*mt2*t*p1.X + 3*mt*t2*p2.X + t3*p3.X,
		mt3*p0.Y + 3*mt2*t*p1.Y + 3*mt*t2*p2.Y + t3*p3.Y,
		mt3*p0.Z + 3*mt2*t*p1.Z + 3*mt*t2*p2.Z + t3*p3.Z,
	}
}

// SampleCubicBezier evaluates the segment at segments+1 evenly spaced
// parameter values from t=0 to t=1 inclusive and appends the results to dst.
func SampleCubicBezier(dst []Vec3, p0, p1, p2, p3 Vec3, segments int) []Vec3 {
	if segments < 1 {
		segments = 1
	}
	for i := 0; i <= segments; i++ {
		t := float32(i) / float32(segments)
		dst = append(dst, CubicBezier(p0, p1, p2, p3, t))
	}
	return dst
}
