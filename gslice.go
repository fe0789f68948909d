// Package gslice slices triangulated surface meshes into layered
// fused-filament-fabrication tool paths. The pipeline cuts every facet with a
// family of horizontal planes, chains the resulting segments into closed
// cross-section contours, fills contour interiors with raster infill and a
// bounding-box support pattern, and hands the per-layer plan to the gcode
// package for emission.
package gslice

// Machine and process constants. These are fixed characteristics of the
// target printer and filament, not user options.
const (
	// BedSizeX and BedSizeY are the usable print bed dimensions in mm.
	// Meshes are centered over (BedSizeX/2, BedSizeY/2) before slicing.
	BedSizeX = 150.0
	BedSizeY = 150.0

	// lineThickness is the spacing between adjacent raster infill lines in mm.
	lineThickness = 0.6
	// bottomTopThickness is the total height of solid top and bottom shells in mm.
	bottomTopThickness = 0.8
	// supportInset is how far the support bounding rectangle sits inside the
	// model's bounding box, per side, in mm.
	supportInset = 1.0
	// supportTrim is removed from both ends of every support segment so
	// support lines do not fuse to the model walls.
	supportTrim = 0.4
	// supportFill is the fixed support raster density in percent.
	supportFill = 20
)

// Options are the user-tunable process parameters.
type Options struct {
	// Perimeters is the requested number of wall loops per contour. It is
	// validated and carried, but the emitter traces each contour once
	// regardless of its value.
	Perimeters int
	// Infill is the interior fill density for middle layers, in percent [0,100].
	Infill int
	// Thickness is the layer height in mm.
	Thickness float64
}

// DefaultOptions returns the slicing defaults: 2 perimeters, 20% infill,
// 0.2 mm layers.
func DefaultOptions() Options {
	return Options{Perimeters: 2, Infill: 20, Thickness: 0.2}
}

// Sanitize builds Options from raw user input. Out of range values fall back
// to the corresponding default rather than failing, infill above 100 is
// clamped.
func Sanitize(perimeters, infill int, thickness float64) Options {
	opts := DefaultOptions()
	if perimeters > 0 {
		opts.Perimeters = perimeters
	}
	if infill >= 0 {
		if infill > 100 {
			infill = 100
		}
		opts.Infill = infill
	}
	if thickness > 0 {
		opts.Thickness = thickness
	}
	return opts
}
