package mesh_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gslice/mesh"
)

func TestReadPermissive(t *testing.T) {
	// Mixed case, stray whitespace, unknown tokens: all must be tolerated.
	const src = `solid   shape
  FACET normal 0 0 1
   outer loop
	VERTEX  0 0 0
	vertex 10   0 0
	Vertex 0 10 0
   endloop
  ENDFACET
endsolid shape
`
	facets, err := mesh.Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(facets) != 1 {
		t.Fatalf("got %d facets, want 1", len(facets))
	}
	want := r3.Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 0, Y: 10, Z: 0},
	}
	if facets[0] != want {
		t.Errorf("facet = %+v, want %+v", facets[0], want)
	}
}

func TestReadTooFewVertices(t *testing.T) {
	const src = `solid broken
facet normal 0 0 1
vertex 0 0 0
vertex 1 0 0
endfacet
endsolid broken
`
	if _, err := mesh.Read(strings.NewReader(src)); err == nil {
		t.Fatal("two-vertex facet accepted")
	}
}

func TestReadBadCoordinate(t *testing.T) {
	const src = `vertex 0 zero 0
endfacet
`
	if _, err := mesh.Read(strings.NewReader(src)); err == nil {
		t.Fatal("non-numeric coordinate accepted")
	}
}

func TestReadUnterminatedFacet(t *testing.T) {
	const src = `vertex 0 0 0
vertex 1 0 0
vertex 0 1 0
`
	if _, err := mesh.Read(strings.NewReader(src)); err == nil {
		t.Fatal("facet without endfacet accepted")
	}
}

// writeCubeSTL writes a 12-facet ASCII cube spanning min..max on every axis.
func writeCubeSTL(t *testing.T, path string, min, max float32) {
	t.Helper()
	p := func(x, y, z float32) stl.Vec3 { return stl.Vec3{x, y, z} }
	quad := func(a, b, c, d stl.Vec3) []stl.Triangle {
		return []stl.Triangle{
			{Vertices: [3]stl.Vec3{a, b, c}},
			{Vertices: [3]stl.Vec3{a, c, d}},
		}
	}
	var tris []stl.Triangle
	tris = append(tris, quad(p(min, min, min), p(max, min, min), p(max, max, min), p(min, max, min))...)
	tris = append(tris, quad(p(min, min, max), p(max, min, max), p(max, max, max), p(min, max, max))...)
	tris = append(tris, quad(p(min, min, min), p(max, min, min), p(max, min, max), p(min, min, max))...)
	tris = append(tris, quad(p(min, max, min), p(max, max, min), p(max, max, max), p(min, max, max))...)
	tris = append(tris, quad(p(min, min, min), p(min, max, min), p(min, max, max), p(min, min, max))...)
	tris = append(tris, quad(p(max, min, min), p(max, max, min), p(max, max, max), p(max, min, max))...)
	solid := stl.Solid{
		Name:      "cube",
		IsAscii:   true,
		Triangles: tris,
	}
	if err := solid.WriteFile(path); err != nil {
		t.Fatal(err)
	}
}

func TestReadFileCubeFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	writeCubeSTL(t, path, -0.5, 0.5)

	facets, err := mesh.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(facets) != 12 {
		t.Fatalf("got %d facets, want 12", len(facets))
	}

	mesh.Center(facets, 150, 150)
	bb := mesh.Bounds(facets)
	for name, got := range map[string][2]float64{
		"x": {bb.Min.X, bb.Max.X},
		"y": {bb.Min.Y, bb.Max.Y},
	} {
		if math.Abs(got[0]-74.5) > 1e-6 || math.Abs(got[1]-75.5) > 1e-6 {
			t.Errorf("%s bounds [%g, %g], want [74.5, 75.5]", name, got[0], got[1])
		}
	}
	if math.Abs(bb.Min.Z) > 1e-6 {
		t.Errorf("min z = %g after centering, want 0", bb.Min.Z)
	}
	if zmax := mesh.ZMax(facets); math.Abs(zmax-1) > 1e-6 {
		t.Errorf("zmax = %g, want 1", zmax)
	}
}
