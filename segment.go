package gslice

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gslice/internal/d2"
)

// Segment is a parametric line segment, the point set {P + t*D : t in [0,1]}.
type Segment struct {
	// P is the segment origin.
	P r3.Vec
	// D is the direction; P+D is the far endpoint.
	D r3.Vec
}

// SegmentBetween returns the segment from p1 to p2.
func SegmentBetween(p1, p2 r3.Vec) Segment {
	return Segment{P: p1, D: r3.Sub(p2, p1)}
}

// End returns the far endpoint P+D.
func (s Segment) End() r3.Vec {
	return r3.Add(s.P, s.D)
}

// Length returns the 3d euclidean length of the segment.
func (s Segment) Length() float64 {
	return r3.Norm(s.D)
}

// Flip reverses the traversal direction. The point set is unchanged.
func (s Segment) Flip() Segment {
	return Segment{P: s.End(), D: r3.Scale(-1, s.D)}
}

// ShortenBy trims a millimetres off both ends of the segment. The caller must
// ensure 2*a is smaller than the segment length.
func (s Segment) ShortenBy(a float64) Segment {
	k := a / r3.Norm(s.D)
	return Segment{
		P: r3.Add(s.P, r3.Scale(k, s.D)),
		D: r3.Scale(1-2*k, s.D),
	}
}

// PointAtX returns the point on the segment with the given x coordinate.
// The second return value is false when no such point exists, including for
// segments running parallel to the x plane.
func (s Segment) PointAtX(v float64) (r3.Vec, bool) {
	return s.pointAt(v, s.P.X, s.D.X)
}

// PointAtY is PointAtX for the y axis.
func (s Segment) PointAtY(v float64) (r3.Vec, bool) {
	return s.pointAt(v, s.P.Y, s.D.Y)
}

// PointAtZ is PointAtX for the z axis.
func (s Segment) PointAtZ(v float64) (r3.Vec, bool) {
	return s.pointAt(v, s.P.Z, s.D.Z)
}

func (s Segment) pointAt(v, origin, dir float64) (r3.Vec, bool) {
	if dir == 0 {
		return r3.Vec{}, false
	}
	t := (v - origin) / dir
	if t < 0 || t > 1 {
		return r3.Vec{}, false
	}
	return r3.Add(s.P, r3.Scale(t, s.D)), true
}

// Intersect computes the 2d intersection of two segments, ignoring z.
// Parallel and collinear segments uniformly yield no intersection. Touching
// endpoints count as an intersection.
func (s Segment) Intersect(o Segment) (r3.Vec, bool) {
	r := d2.FromR3(s.D)
	q := d2.FromR3(o.D)
	denom := d2.Cross(r, q)
	if denom == 0 {
		return r3.Vec{}, false
	}
	pq := d2.FromR3(r3.Sub(o.P, s.P))
	t := d2.Cross(pq, q) / denom
	u := d2.Cross(pq, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return r3.Vec{}, false
	}
	return r3.Add(s.P, r3.Scale(t, s.D)), true
}
