// Package mesh reads ASCII STL surface meshes and normalizes them onto the
// print bed.
package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Read parses an ASCII STL stream into facets. The parser is deliberately
// permissive: lines are tokenized by whitespace, runs of lines delimited by
// "endfacet" (any case) form one facet, and within a run only lines whose
// first token is "vertex" contribute coordinates. Normals, loop markers and
// any other tokens are ignored. A facet that does not contribute exactly
// three vertices is an error.
func Read(r io.Reader) ([]r3.Triangle, error) {
	var (
		facets []r3.Triangle
		verts  []r3.Vec
		nfacet int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: facet %d: vertex line with %d coordinates", nfacet+1, len(fields)-1)
			}
			v, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("mesh: facet %d: %w", nfacet+1, err)
			}
			verts = append(verts, v)
		case "endfacet":
			nfacet++
			if len(verts) != 3 {
				return nil, fmt.Errorf("mesh: facet %d has %d vertices, want 3", nfacet, len(verts))
			}
			facets = append(facets, r3.Triangle{verts[0], verts[1], verts[2]})
			verts = verts[:0]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read STL: %w", err)
	}
	if len(verts) != 0 {
		return nil, fmt.Errorf("mesh: trailing facet with %d vertices not closed by endfacet", len(verts))
	}
	return facets, nil
}

// ReadFile reads an ASCII STL file.
func ReadFile(path string) ([]r3.Triangle, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(fp)
}

func parseVertex(tok []string) (r3.Vec, error) {
	var c [3]float64
	for i, t := range tok {
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("bad coordinate %q", t)
		}
		c[i] = f
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}
