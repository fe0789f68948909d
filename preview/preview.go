// Package preview renders debug images of the model and of individual layer
// plans.
package preview

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soypat/gslice"
	"github.com/soypat/gslice/internal/d3"
)

// View configures the camera for RenderSTL.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	EyePos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView is an isometric view of the model.
func DefaultView() View {
	return View{
		Up:     r3.Vec{Z: 1},
		EyePos: d3.Elem(2.4),
		Near:   1,
		Far:    10,
	}
}

// RenderSTL renders an STL file to a shaded PNG.
func RenderSTL(stlName, outputname string, view View) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const (
		width  = 800
		height = 600
		scale  = 2  // supersampling
		fovy   = 30 // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.EyePos.X, view.EyePos.Y, view.EyePos.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(uint(width), uint(height), image, resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}

// PlotLayer draws one layer's contours and infill to an image file. The
// format follows the output extension, png or svg.
func PlotLayer(layer gslice.Layer, opts gslice.Options, outputname string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("layer %d  z=%g mm", layer.FromBottom, layer.Z)
	p.X.Label.Text = "x / mm"
	p.Y.Label.Text = "y / mm"

	for _, c := range layer.Contours {
		xys := make(plotter.XYs, 0, len(c)+1)
		for _, pt := range c {
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}
		xys = append(xys, plotter.XY{X: c[0].X, Y: c[0].Y})
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		p.Add(line)
	}
	for _, s := range gslice.Infill(layer, opts) {
		end := s.End()
		line, err := plotter.NewLine(plotter.XYs{
			{X: s.P.X, Y: s.P.Y},
			{X: end.X, Y: end.Y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(0.5)
		p.Add(line)
	}
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, outputname)
}
