// Command gslice converts an ASCII STL mesh into fused-filament G-code.
//
//	gslice [-p N] [-i N] [-t X] [-o FILE] [-preview FILE] [-plot N:FILE] model.stl
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/gslice"
	"github.com/soypat/gslice/gcode"
	"github.com/soypat/gslice/mesh"
	"github.com/soypat/gslice/preview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gslice: ")

	var (
		perimeters  int
		infill      int
		thickness   float64
		output      string
		previewPath string
		plotSpec    string
	)
	def := gslice.DefaultOptions()
	flag.IntVar(&perimeters, "p", def.Perimeters, "number of perimeter layers")
	flag.IntVar(&perimeters, "perimeter", def.Perimeters, "number of perimeter layers")
	flag.IntVar(&infill, "i", def.Infill, "infill percentage [0,100]")
	flag.IntVar(&infill, "infill", def.Infill, "infill percentage [0,100]")
	flag.Float64Var(&thickness, "t", def.Thickness, "layer thickness in mm")
	flag.Float64Var(&thickness, "thickness", def.Thickness, "layer thickness in mm")
	flag.StringVar(&output, "o", "sampleGcode.g", "output G-code file")
	flag.StringVar(&output, "output", "sampleGcode.g", "output G-code file")
	flag.StringVar(&previewPath, "preview", "", "render the input mesh to this PNG file")
	flag.StringVar(&plotSpec, "plot", "", "plot a layer as N:file.png")
	flag.Parse()

	if flag.Arg(0) == "" {
		fmt.Fprintln(os.Stderr, "Usage: gslice [-p N] [-i N] [-t X] model.stl")
		flag.PrintDefaults()
		os.Exit(1)
	}
	opts := gslice.Sanitize(perimeters, infill, thickness)

	facets, err := mesh.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if len(facets) == 0 {
		log.Fatalf("%s: no facets found", flag.Arg(0))
	}
	mesh.Center(facets, gslice.BedSizeX, gslice.BedSizeY)

	if previewPath != "" {
		if err := preview.RenderSTL(flag.Arg(0), previewPath, preview.DefaultView()); err != nil {
			log.Fatalf("preview: %v", err)
		}
		log.Printf("mesh preview written to %s", previewPath)
	}

	layers := gslice.Slice(facets, opts, func(z float64, err error) {
		log.Printf("warning: layer at z=%g skipped or incomplete: %v", z, err)
	})
	if len(layers) == 0 {
		log.Fatal("model produced no layers")
	}

	if plotSpec != "" {
		if err := plotLayer(layers, opts, plotSpec); err != nil {
			log.Fatalf("plot: %v", err)
		}
	}

	lines := gcode.Emit(layers, opts)
	if err := writeLines(output, lines); err != nil {
		log.Fatal(err)
	}

	bb := mesh.Bounds(facets)
	log.Printf("%d facets, %d layers, %d G-code lines -> %s", len(facets), len(layers), len(lines), output)
	log.Printf("bounds X %.2f..%.2f  Y %.2f..%.2f  Z %.2f..%.2f",
		bb.Min.X, bb.Max.X, bb.Min.Y, bb.Max.Y, bb.Min.Z, bb.Max.Z)
	if e, ok := gcode.LastE(lines); ok {
		log.Printf("total extrusion %.2f mm of filament", e)
	}
}

func plotLayer(layers []gslice.Layer, opts gslice.Options, arg string) error {
	nstr, file, ok := cut(arg, ':')
	if !ok {
		return fmt.Errorf("bad -plot %q, want N:file.png", arg)
	}
	n, err := strconv.Atoi(nstr)
	if err != nil || n < 1 || n > len(layers) {
		return fmt.Errorf("bad -plot layer %q, print has %d layers", nstr, len(layers))
	}
	if err := preview.PlotLayer(layers[n-1], opts, file); err != nil {
		return err
	}
	log.Printf("layer %d plotted to %s", n, file)
	return nil
}

func cut(s string, sep byte) (before, after string, found bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

func writeLines(path string, lines []string) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return nil
}
