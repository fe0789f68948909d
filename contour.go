package gslice

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gslice/internal/d2"
)

// Contour is a closed polygonal cross section at a fixed z. The path closes
// implicitly from the last point back to the first; consecutive points always
// differ.
type Contour []r3.Vec

// ErrOpenChain reports a segment chain that never returned to its starting
// point, the symptom of a non-manifold or otherwise malformed mesh.
var ErrOpenChain = errors.New("gslice: contour chain does not close")

// Assemble chains an unordered bag of cross-section segments into closed
// contours. Segment endpoints must already be rounded so equal endpoints
// compare exactly; CutLayer guarantees this. When a chain fails to close,
// Assemble returns the contours completed so far along with ErrOpenChain.
func Assemble(segs []Segment) ([]Contour, error) {
	pool := append([]Segment(nil), segs...)
	var contours []Contour
	for len(pool) > 0 {
		s := pool[0]
		pool = pool[1:]
		c := Contour{s.P, s.End()}
		for {
			i := matchIndex(pool, c[len(c)-1])
			if i < 0 {
				break
			}
			next := pool[i]
			pool = append(pool[:i], pool[i+1:]...)
			if next.P == c[len(c)-1] {
				c = append(c, next.End())
			} else {
				c = append(c, next.P)
			}
		}
		if c[len(c)-1] != c[0] {
			return contours, ErrOpenChain
		}
		contours = append(contours, c[:len(c)-1])
	}
	return contours, nil
}

// matchIndex finds the first pool segment with an endpoint equal to p.
func matchIndex(pool []Segment, p r3.Vec) int {
	for i, s := range pool {
		if s.P == p || s.End() == p {
			return i
		}
	}
	return -1
}

// Edges returns the contour's edge segments, including the closing edge from
// the last point back to the first.
func (c Contour) Edges() []Segment {
	edges := make([]Segment, 0, len(c))
	for i := range c {
		edges = append(edges, SegmentBetween(c[i], c[(i+1)%len(c)]))
	}
	return edges
}

// bounds returns the xy bounding box over a set of contours.
func bounds(contours []Contour) (min, max r2.Vec) {
	var set d2.Set
	for _, c := range contours {
		for _, p := range c {
			set = append(set, d2.FromR3(p))
		}
	}
	return set.Min(), set.Max()
}
