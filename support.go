package gslice

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Support generates scaffolding segments for a layer. A rectangle is formed
// from the layer's xy bounding box inset by supportInset on every side, a
// fixed 20% raster is clipped against the rectangle together with the model
// contours, and every resulting segment is trimmed at both ends so support
// never fuses to the model walls.
func Support(layer Layer) []Segment {
	if len(layer.Contours) == 0 {
		return nil
	}
	min, max := bounds(layer.Contours)
	min.X += supportInset
	min.Y += supportInset
	max.X -= supportInset
	max.Y -= supportInset
	if min.X >= max.X || min.Y >= max.Y {
		return nil
	}
	rect := Contour{
		r3.Vec{X: min.X, Y: min.Y, Z: layer.Z},
		r3.Vec{X: max.X, Y: min.Y, Z: layer.Z},
		r3.Vec{X: max.X, Y: max.Y, Z: layer.Z},
		r3.Vec{X: min.X, Y: max.Y, Z: layer.Z},
	}
	clipSet := append(append([]Contour(nil), layer.Contours...), rect)

	var support []Segment
	for _, line := range sparseLines(supportFill, layer.Z) {
		for _, seg := range ClipToContours(line, clipSet) {
			if seg.Length() <= 2*supportTrim {
				continue
			}
			support = append(support, seg.ShortenBy(supportTrim))
		}
	}
	return support
}
