package gcode

import (
	"github.com/soypat/gslice"
)

// Emit serializes the layer plans, already ordered bottom to top, into
// G-code lines. Each layer traces its contours, then its infill, then its
// support. Infill and support runs alternate direction so consecutive
// segments chain end to start with minimal travel.
func Emit(layers []gslice.Layer, opts gslice.Options) []string {
	w := NewWriter(opts.Thickness)
	for i, layer := range layers {
		if i > 0 && len(layer.Contours) > 0 && len(layer.Contours[0]) > 0 {
			w.Write(Travel(layer.Contours[0][0]))
		}
		for _, c := range layer.Contours {
			emitContour(w, c)
		}
		emitRuns(w, gslice.Infill(layer, opts))
		emitRuns(w, gslice.Support(layer))
	}
	return w.Lines()
}

// emitContour positions at the first point, extrudes through the rest and
// closes the loop.
func emitContour(w *Writer, c gslice.Contour) {
	if len(c) == 0 {
		return
	}
	w.Write(Travel(c[0]))
	for _, p := range c[1:] {
		w.Write(Extrude(p))
	}
	w.Write(Extrude(c[0]))
}

// emitRuns writes a batch of fill segments, flipping every other segment so
// the head zigzags across the pattern. The hop onto each segment is a travel;
// the segment itself extrudes.
func emitRuns(w *Writer, segs []gslice.Segment) {
	for i, s := range segs {
		if i%2 == 1 {
			s = s.Flip()
		}
		w.Write(Travel(s.P))
		w.Write(Extrude(s.End()))
	}
}
