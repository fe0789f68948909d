package gslice

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Layer is the slicing plan of a single z plane.
type Layer struct {
	// Z is the height of the cutting plane.
	Z float64
	// Contours are the closed cross sections of the model at Z.
	Contours []Contour
	// FromBottom and FromTop are the layer's 1-based positions counted from
	// either end of the print.
	FromBottom, FromTop int
}

// Slice cuts the facets into layers from the top of the model down to the
// bed and returns the plans in bottom-to-top order, ready for emission.
// Planes that miss the model are discarded. A layer whose segments cannot be
// chained into any closed contour is skipped and reported through warn; a
// layer that closes at least one contour is kept. warn may be nil.
func Slice(facets []r3.Triangle, opts Options, warn func(z float64, err error)) []Layer {
	zmax := 0.0
	for _, f := range facets {
		for _, v := range f {
			if v.Z > zmax {
				zmax = v.Z
			}
		}
	}

	var layers []Layer
	for i := 0; ; i++ {
		z := zmax - float64(i)*opts.Thickness
		if z <= 0 {
			break
		}
		segs := CutLayer(facets, z)
		if len(segs) == 0 {
			continue
		}
		contours, err := Assemble(segs)
		if err != nil && warn != nil {
			warn(z, err)
		}
		if len(contours) == 0 {
			continue
		}
		layers = append(layers, Layer{Z: z, Contours: contours})
	}

	// Layers were cut top-down; emission and extruder accounting run
	// bottom-up.
	for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
		layers[i], layers[j] = layers[j], layers[i]
	}
	for i := range layers {
		layers[i].FromBottom = i + 1
		layers[i].FromTop = len(layers) - i
	}
	return layers
}
