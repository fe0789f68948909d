package gslice

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gslice/mesh"
)

// boxMesh triangulates an axis-aligned box, two facets per face.
func boxMesh(min, max r3.Vec) []r3.Triangle {
	p := func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }
	quad := func(a, b, c, d r3.Vec) []r3.Triangle {
		return []r3.Triangle{{a, b, c}, {a, c, d}}
	}
	var tris []r3.Triangle
	// bottom, top
	tris = append(tris, quad(p(min.X, min.Y, min.Z), p(max.X, min.Y, min.Z), p(max.X, max.Y, min.Z), p(min.X, max.Y, min.Z))...)
	tris = append(tris, quad(p(min.X, min.Y, max.Z), p(max.X, min.Y, max.Z), p(max.X, max.Y, max.Z), p(min.X, max.Y, max.Z))...)
	// front, back
	tris = append(tris, quad(p(min.X, min.Y, min.Z), p(max.X, min.Y, min.Z), p(max.X, min.Y, max.Z), p(min.X, min.Y, max.Z))...)
	tris = append(tris, quad(p(min.X, max.Y, min.Z), p(max.X, max.Y, min.Z), p(max.X, max.Y, max.Z), p(min.X, max.Y, max.Z))...)
	// left, right
	tris = append(tris, quad(p(min.X, min.Y, min.Z), p(min.X, max.Y, min.Z), p(min.X, max.Y, max.Z), p(min.X, min.Y, max.Z))...)
	tris = append(tris, quad(p(max.X, min.Y, min.Z), p(max.X, max.Y, min.Z), p(max.X, max.Y, max.Z), p(max.X, min.Y, max.Z))...)
	return tris
}

func unitCube(center r3.Vec) []r3.Triangle {
	half := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	return boxMesh(r3.Sub(center, half), r3.Add(center, half))
}

func TestSliceUnitCube(t *testing.T) {
	cube := unitCube(r3.Vec{})
	mesh.Center(cube, BedSizeX, BedSizeY)
	layers := Slice(cube, DefaultOptions(), func(z float64, err error) {
		t.Fatalf("unexpected warning at z=%g: %v", z, err)
	})
	if len(layers) != 5 {
		t.Fatalf("got %d layers, want 5", len(layers))
	}
	for i, layer := range layers {
		wantZ := 0.2 * float64(i+1)
		if math.Abs(layer.Z-wantZ) > 1e-9 {
			t.Errorf("layer %d at z=%g, want %g", i, layer.Z, wantZ)
		}
		if layer.FromBottom != i+1 || layer.FromTop != len(layers)-i {
			t.Errorf("layer %d indices (%d, %d), want (%d, %d)",
				i, layer.FromBottom, layer.FromTop, i+1, len(layers)-i)
		}
		if len(layer.Contours) != 1 {
			t.Fatalf("layer %d has %d contours, want 1", i, len(layer.Contours))
		}
		// Every cross-section point lies on the centered cube's walls.
		for _, p := range layer.Contours[0] {
			onX := math.Abs(p.X-74.5) < 1e-6 || math.Abs(p.X-75.5) < 1e-6
			onY := math.Abs(p.Y-74.5) < 1e-6 || math.Abs(p.Y-75.5) < 1e-6
			if !onX && !onY {
				t.Errorf("layer %d point %+v off the cube walls", i, p)
			}
		}
	}
}

func TestSliceSingleLayerSlab(t *testing.T) {
	slab := boxMesh(r3.Vec{X: 70, Y: 70, Z: 0}, r3.Vec{X: 80, Y: 80, Z: 0.2})
	layers := Slice(slab, DefaultOptions(), nil)
	if len(layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(layers))
	}
	l := layers[0]
	if l.FromBottom != 1 || l.FromTop != 1 {
		t.Fatalf("indices (%d, %d), want (1, 1)", l.FromBottom, l.FromTop)
	}
	if kind := ClassifyLayer(l.FromBottom, l.FromTop, 0.2); kind != KindBaseOdd {
		t.Errorf("single layer classified %v, want base odd", kind)
	}
}

func TestSliceWarnsOnUnchainableLayer(t *testing.T) {
	// A lone triangle is not a closed surface: every cut yields one segment
	// that cannot close into a contour.
	facets := []r3.Triangle{{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 1},
		{X: 0, Y: 10, Z: 1},
	}}
	warned := 0
	layers := Slice(facets, DefaultOptions(), func(z float64, err error) { warned++ })
	if len(layers) != 0 {
		t.Errorf("degenerate mesh produced %d layers", len(layers))
	}
	if warned == 0 {
		t.Error("no warning for unchainable layers")
	}
}

func TestSliceSkipsEmptyPlanes(t *testing.T) {
	// A model floating above the bed still slices only where it has material.
	box := boxMesh(r3.Vec{X: 70, Y: 70, Z: 0.5}, r3.Vec{X: 80, Y: 80, Z: 1})
	layers := Slice(box, DefaultOptions(), nil)
	for _, l := range layers {
		if l.Z < 0.5 {
			t.Errorf("layer at z=%g below the model", l.Z)
		}
	}
	if len(layers) == 0 {
		t.Fatal("no layers for floating box")
	}
}
