package drag

import "github.com/1broseidon/altdrag/internal/platform"

// Compute returns the geometry for a pointer at (x, y) during session s.
//
// The delta is always taken from the press point and applied to the
// baseline, never to the previous result. When the move bit is absent from
// state the position is the baseline position, and when the resize bit is
// absent the size is the baseline size. Sizes never drop below 1.
func Compute(s Session, x, y int, state, moveMask, resizeMask uint16) platform.Rect {
	dx := x - s.PressX
	dy := y - s.PressY

	out := s.Baseline
	if moveMask != 0 && state&moveMask != 0 {
		out.X = s.Baseline.X + dx
		out.Y = s.Baseline.Y + dy
	}
	if resizeMask != 0 && state&resizeMask != 0 {
		out.Width = max(1, s.Baseline.Width+dx)
		out.Height = max(1, s.Baseline.Height+dy)
	}
	return out
}
