package gslice

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gslice/internal/d2"
	"github.com/soypat/gslice/internal/d3"
)

// Raster line families spanning the whole bed. Diagonal lines are long enough
// to cross the full bed regardless of offset.

// upLines are the 45 degree raster lines at height z.
func upLines(z float64) []Segment {
	const reach = BedSizeX + BedSizeY
	var lines []Segment
	for v := -BedSizeX; v <= BedSizeY; v += lineThickness {
		lines = append(lines, Segment{
			P: r3.Vec{X: 0, Y: v, Z: z},
			D: r3.Vec{X: reach, Y: reach, Z: 0},
		})
	}
	return lines
}

// downLines are the -45 degree raster lines at height z.
func downLines(z float64) []Segment {
	const reach = BedSizeX + BedSizeY
	var lines []Segment
	for v := 0.0; v <= reach; v += lineThickness {
		lines = append(lines, Segment{
			P: r3.Vec{X: 0, Y: v, Z: z},
			D: r3.Vec{X: reach, Y: -reach, Z: 0},
		})
	}
	return lines
}

// sparseLines keeps every n-th line of both families where n = 100/percent.
// Zero percent yields no lines.
func sparseLines(percent int, z float64) []Segment {
	if percent <= 0 {
		return nil
	}
	n := 100 / percent
	if n < 1 {
		n = 1
	}
	var lines []Segment
	for _, family := range [][]Segment{upLines(z), downLines(z)} {
		for i := 0; i < len(family); i += n {
			lines = append(lines, family[i])
		}
	}
	return lines
}

// patternLines returns the raster family for a layer kind.
func patternLines(kind LayerKind, infillPercent int, z float64) []Segment {
	switch kind {
	case KindBaseEven:
		return upLines(z)
	case KindBaseOdd:
		return downLines(z)
	}
	return sparseLines(infillPercent, z)
}

// ClipToContours clips one raster line against a set of contours. The
// intersections of the line with every contour edge are deduplicated, sorted
// along the line by x then y, and paired off: the even pairs are the
// interior-covered sub-segments of a simple polygon.
func ClipToContours(line Segment, contours []Contour) []Segment {
	var pts []r3.Vec
	for _, c := range contours {
		for _, e := range c.Edges() {
			p, ok := line.Intersect(e)
			if !ok {
				continue
			}
			p = d3.Round5(p)
			if !containsPoint(pts, p) {
				pts = append(pts, p)
			}
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		return d2.LessXY(d2.FromR3(pts[i]), d2.FromR3(pts[j]))
	})
	var segs []Segment
	for i := 0; i+1 < len(pts); i += 2 {
		segs = append(segs, SegmentBetween(pts[i], pts[i+1]))
	}
	return segs
}

// Infill generates the fill segments covering the interior of a layer's
// contours, using the raster pattern selected by the layer's kind.
func Infill(layer Layer, opts Options) []Segment {
	kind := ClassifyLayer(layer.FromBottom, layer.FromTop, opts.Thickness)
	var fill []Segment
	for _, line := range patternLines(kind, opts.Infill, layer.Z) {
		fill = append(fill, ClipToContours(line, layer.Contours)...)
	}
	return fill
}
