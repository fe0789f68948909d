package gslice

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gslice/internal/d3"
)

// facetEdges recovers the three directed edges of a facet.
func facetEdges(f r3.Triangle) [3]Segment {
	return [3]Segment{
		SegmentBetween(f[0], f[1]),
		SegmentBetween(f[1], f[2]),
		SegmentBetween(f[2], f[0]),
	}
}

// CutFacet intersects one facet with the plane at z. It returns the distinct
// intersection points rounded to 5 decimal places, or nil when the facet does
// not cross the plane. A single-point touch at a vertex is not a cross
// section, so the result is never one point.
func CutFacet(f r3.Triangle, z float64) []r3.Vec {
	var pts []r3.Vec
	for _, e := range facetEdges(f) {
		p, ok := e.PointAtZ(z)
		if !ok {
			continue
		}
		p = d3.Round5(p)
		if !containsPoint(pts, p) {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return nil
	}
	return pts
}

func containsPoint(pts []r3.Vec, p r3.Vec) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

// CutLayer intersects every facet with the plane at z and returns the
// unordered cross-section segments of that layer. Facets yielding fewer than
// two distinct points contribute nothing.
func CutLayer(facets []r3.Triangle, z float64) []Segment {
	var segs []Segment
	for _, f := range facets {
		pts := CutFacet(f, z)
		if pts == nil {
			continue
		}
		segs = append(segs, SegmentBetween(pts[0], pts[1]))
	}
	return segs
}
