package spline

// resolveBracket finds the keyframes bracketing the target frame position:
// prev is the last frame whose number is <= target, next the first whose
// number is >= target, scanning in stored order and stopping at next. Frames
// must be sorted ascending by frame number (enforced at construction).
// Before the first frame or past the last, both returns clamp to the
// boundary frame. An empty track yields (nil, nil).
func resolveBracket(frames []Keyframe, target float64) (prev, next *Keyframe) {
	if len(frames) == 0 {
		return nil, nil
	}
	prev = &frames[0]
	for i := range frames {
		f := &frames[i]
		if float64(f.Frame) <= target {
			prev = f
		}
		next = f
		if float64(f.Frame) >= target {
			break
		}
	}
	return prev, next
}

// bracketFactor computes the interpolation factor for a bracket at target.
// Identity brackets and equal frame numbers yield 0 (direct copy, no blend).
func bracketFactor(prev, next *Keyframe, target float64) float32 {
	if prev == next || next.Frame == prev.Frame {
		return 0
	}
	return float32((target - float64(prev.Frame)) / float64(next.Frame-prev.Frame))
}
