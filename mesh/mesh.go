package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gslice/internal/d3"
)

// Bounds returns the axis-aligned bounding box over all facet vertices.
func Bounds(facets []r3.Triangle) d3.Box {
	bb := d3.Box{Min: d3.Elem(math.MaxFloat64), Max: d3.Elem(-math.MaxFloat64)}
	for _, f := range facets {
		for _, v := range f {
			bb = bb.Include(v)
		}
	}
	return bb
}

// Center translates the facets in place so the xy center of their bounding
// box lands on the bed center and the lowest vertex rests on the bed at z=0.
func Center(facets []r3.Triangle, bedX, bedY float64) {
	bb := Bounds(facets)
	c := bb.Center()
	shift := r3.Vec{
		X: bedX/2 - c.X,
		Y: bedY/2 - c.Y,
		Z: -bb.Min.Z,
	}
	for i := range facets {
		for j := range facets[i] {
			facets[i][j] = r3.Add(facets[i][j], shift)
		}
	}
}

// ZMax returns the height of the tallest vertex.
func ZMax(facets []r3.Triangle) float64 {
	z := 0.0
	for _, f := range facets {
		for _, v := range f {
			if v.Z > z {
				z = v.Z
			}
		}
	}
	return z
}
