package geometry

import "math"

// CircleOverlap reports whether two discs of radius r1 and r2, whose
// centers are separation d apart, overlap at all (including one fully
// containing the other).
func CircleOverlap(d, r1, r2 float64) bool {
	return d < r1+r2
}

// BoundingBox returns the axis-aligned box [xmin, xmax] x [ymin, ymax]
// covering the disc of radius r centered at (cx, cy).
func BoundingBox(cx, cy, r float64) (xmin, xmax, ymin, ymax float64) {
	return cx - r, cx + r, cy - r, cy + r
}

// InsideDisc reports whether point (x, y) lies within radius r of (cx, cy).
func InsideDisc(x, y, cx, cy, r float64) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// TighterBox returns the bounding box of whichever of the two discs
// (center1,r1) or (center2,r2) has the smaller radius — mutual_eclipse
// samples the smaller disc's box since the correction region can never
// exceed it.
func TighterBox(x1, y1, r1, x2, y2, r2 float64) (xmin, xmax, ymin, ymax float64) {
	if r1 <= r2 {
		return BoundingBox(x1, y1, r1)
	}
	return BoundingBox(x2, y2, r2)
}

// Separation returns the Euclidean distance between (x1,y1) and (x2,y2).
func Separation(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}

// OverlapArea returns the area of intersection of two discs of radius r1
// and r2 whose centers are separation d apart.
func OverlapArea(d, r1, r2 float64) float64 {
	if d >= r1+r2 {
		return 0
	}
	lo, hi := r1, r2
	if lo > hi {
		lo, hi = hi, lo
	}
	if d <= hi-lo {
		return math.Pi * lo * lo
	}
	a1 := math.Acos(clamp((d*d+r1*r1-r2*r2)/(2*d*r1), -1, 1))
	a2 := math.Acos(clamp((d*d+r2*r2-r1*r1)/(2*d*r2), -1, 1))
	term := (-d + r1 + r2) * (d + r1 - r2) * (d - r1 + r2) * (d + r1 + r2)
	if term < 0 {
		term = 0
	}
	return r1*r1*a1 + r2*r2*a2 - 0.5*math.Sqrt(term)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
