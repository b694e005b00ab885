// Package render рисует построенный DCEL в PNG: внутренние грани заливкой,
// ребра линиями, вершины точками.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/0x0FACED/go-dcel/pkg/dcel"
	"github.com/jbeda/geom"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/pkg/errors"
)

const (
	padding      = 0.05
	edgeWidth    = 2
	vertexRadius = 3
)

var (
	background  = color.RGBA{0x1f, 0x1f, 0x1f, 0xff}
	edgeColor   = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	vertexColor = color.RGBA{0x90, 0xee, 0x90, 0xff}

	// цвета граней по кругу
	palette = []color.RGBA{
		{0x2e, 0x5e, 0x8e, 0xff},
		{0x8e, 0x4e, 0x2e, 0xff},
		{0x3e, 0x7e, 0x4e, 0xff},
		{0x6e, 0x3e, 0x7e, 0xff},
		{0x7e, 0x6e, 0x2e, 0xff},
	}
)

func PNG(w io.Writer, d *dcel.DCEL, width, height int) error {
	m, err := Image(d, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, m)
}

func Image(d *dcel.DCEL, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("render: bad image size %dx%d", width, height)
	}

	vp := newViewport(d, width, height)
	m := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(m, m.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(m)

	for f := range d.Faces() {
		if f.Outer {
			continue
		}
		gc.SetFillColor(palette[int(f.ID)%len(palette)])
		first := true
		for v := range d.FaceVertices(f.ID) {
			x, y := vp.project(v.Point)
			if first {
				gc.MoveTo(x, y)
				first = false
			} else {
				gc.LineTo(x, y)
			}
		}
		gc.Close()
		gc.Fill()
	}

	gc.SetStrokeColor(edgeColor)
	gc.SetLineWidth(edgeWidth)
	// у каждого ребра два полуребра, рисуем только четные
	for h := range d.HalfEdges() {
		if h.ID%2 != 0 {
			continue
		}
		ax, ay := vp.project(d.Vertex(h.Origin).Point)
		bx, by := vp.project(d.Vertex(d.Destination(h.ID)).Point)
		gc.MoveTo(ax, ay)
		gc.LineTo(bx, by)
		gc.Stroke()
	}

	gc.SetFillColor(vertexColor)
	for v := range d.Vertices() {
		x, y := vp.project(v.Point)
		draw2dkit.Circle(gc, x, y, vertexRadius)
		gc.Fill()
	}

	return m, nil
}

// viewport переводит координаты DCEL в пиксели: ось Y вверх, отступ padding с каждой стороны.
type viewport struct {
	bounds  geom.Rect
	scale   float64
	marginX float64
	marginY float64
	height  float64
}

func newViewport(d *dcel.DCEL, width, height int) viewport {
	var r geom.Rect
	first := true
	for v := range d.Vertices() {
		c := geom.Coord{X: v.Point.X, Y: v.Point.Y}
		if first {
			r = geom.Rect{Min: c, Max: c}
			first = false
		} else {
			r.ExpandToContainCoord(c)
		}
	}

	w, h := float64(width), float64(height)
	scale := math.Inf(1)
	if r.Width() > 0 {
		scale = math.Min(scale, w*(1-2*padding)/r.Width())
	}
	if r.Height() > 0 {
		scale = math.Min(scale, h*(1-2*padding)/r.Height())
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	return viewport{
		bounds:  r,
		scale:   scale,
		marginX: (w - r.Width()*scale) / 2,
		marginY: (h - r.Height()*scale) / 2,
		height:  h,
	}
}

func (v viewport) project(p dcel.Point) (float64, float64) {
	x := (p.X-v.bounds.Min.X)*v.scale + v.marginX
	y := v.height - ((p.Y-v.bounds.Min.Y)*v.scale + v.marginY)
	return x, y
}
