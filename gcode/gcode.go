// Package gcode serializes layer plans into G-code moves with absolute
// extrusion accounting.
package gcode

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Fixed machine constants in mm.
const (
	// NozzleDiameter is the extrusion nozzle bore.
	NozzleDiameter = 0.4
	// FilamentDiameter is the raw filament diameter feeding the hotend.
	FilamentDiameter = 1.75
)

// Move is one motion target. Travel moves position the head without feeding
// filament; extruding moves advance the E axis by the move's extrusion
// amount.
type Move struct {
	To      r3.Vec
	Extrude bool
}

// Travel returns a positioning move to p.
func Travel(p r3.Vec) Move { return Move{To: p} }

// Extrude returns an extruding move to p.
func Extrude(p r3.Vec) Move { return Move{To: p, Extrude: true} }

// Writer accumulates G-code lines. The E value is absolute and monotonically
// non-decreasing across the entire print, so one Writer must serialize all
// layers in emission order.
type Writer struct {
	thickness float64
	pos       r3.Vec
	e         float64
	started   bool
	lines     []string
}

// NewWriter returns a Writer for the given layer thickness.
func NewWriter(thickness float64) *Writer {
	return &Writer{thickness: thickness}
}

// Extrusion returns the filament feed for a move from p1 to p2: nozzle
// diameter times layer thickness times 2/filament diameter times the 3d move
// distance, divided by pi.
func (w *Writer) Extrusion(p1, p2 r3.Vec) float64 {
	d := r3.Norm(r3.Sub(p2, p1))
	return NozzleDiameter * w.thickness * (2 / FilamentDiameter) * d / math.Pi
}

// Write appends the G-code line for one move. The first move ever written
// only establishes position and is always emitted as a travel.
func (w *Writer) Write(m Move) {
	if m.Extrude && w.started {
		w.e += w.Extrusion(w.pos, m.To)
		w.lines = append(w.lines, "G1 "+xyz(m.To)+" E"+num(w.e))
	} else {
		w.lines = append(w.lines, "G1 "+xyz(m.To))
	}
	w.pos = m.To
	w.started = true
}

// Lines returns every line written so far.
func (w *Writer) Lines() []string { return w.lines }

// E returns the cumulative extrusion value.
func (w *Writer) E() float64 { return w.e }

func xyz(p r3.Vec) string {
	return "X" + num(p.X) + " Y" + num(p.Y) + " Z" + num(p.Z)
}

// num serializes a 5-decimal-rounded value in its shortest decimal form,
// keeping a trailing .0 on whole numbers.
func num(v float64) string {
	v = math.Round(v*1e5) / 1e5
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// LastE scans lines in reverse for a token beginning with E and returns its
// numeric tail. It reports false when no extrusion has been emitted yet.
func LastE(lines []string) (float64, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		fields := strings.Fields(lines[i])
		for j := len(fields) - 1; j >= 0; j-- {
			if !strings.HasPrefix(fields[j], "E") {
				continue
			}
			e, err := strconv.ParseFloat(fields[j][1:], 64)
			if err != nil {
				continue
			}
			return e, true
		}
	}
	return 0, false
}
