package dcel

import (
	"iter"
	"math"

	"github.com/golang/geo/r2"
)

type FaceID int

const NoFace FaceID = -1

// Face - грань, ограниченная циклом полуребер по Next.
// Внутренние грани обходятся против часовой стрелки, внешняя - по часовой.
type Face struct {
	ID       FaceID
	Boundary HalfEdgeID
	Outer    bool
}

func (d *DCEL) Face(id FaceID) Face {
	return d.faces[id]
}

func (d *DCEL) OuterFace() Face {
	return d.faces[d.outer]
}

func (d *DCEL) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for _, f := range d.faces {
			if !yield(f) {
				return
			}
		}
	}
}

func (d *DCEL) FaceHalfEdges(id FaceID) iter.Seq[HalfEdge] {
	return func(yield func(HalfEdge) bool) {
		start := d.faces[id].Boundary
		if start == NoHalfEdge {
			return
		}
		h := start
		for {
			if !yield(d.halfEdges[h]) {
				return
			}
			h = d.halfEdges[h].Next
			if h == start {
				return
			}
		}
	}
}

func (d *DCEL) FaceVertices(id FaceID) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for h := range d.FaceHalfEdges(id) {
			if !yield(d.vertices[h.Origin]) {
				return
			}
		}
	}
}

// BoundarySize - число полуребер на границе грани.
func (d *DCEL) BoundarySize(id FaceID) int {
	n := 0
	for range d.FaceHalfEdges(id) {
		n++
	}
	return n
}

// SignedArea считается по формуле шнурков при построении.
func (d *DCEL) SignedArea(id FaceID) float64 {
	return d.areas[id]
}

func (d *DCEL) Area(id FaceID) float64 {
	return math.Abs(d.areas[id])
}

func (d *DCEL) Perimeter(id FaceID) float64 {
	var sum float64
	for h := range d.FaceHalfEdges(id) {
		sum += d.Length(h.ID)
	}
	return sum
}

// Centroid - центр масс многоугольника грани. false, если площадь нулевая.
func (d *DCEL) Centroid(id FaceID) (Point, bool) {
	area := d.areas[id]
	if area == 0 {
		return Point{}, false
	}

	var cx, cy float64
	for h := range d.FaceHalfEdges(id) {
		a := d.vertices[h.Origin].Point
		b := d.vertices[d.Destination(h.ID)].Point
		factor := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * factor
		cy += (a.Y + b.Y) * factor
	}

	factor := 1 / (6 * area)
	return Point{cx * factor, cy * factor}, true
}

func (d *DCEL) Bounds(id FaceID) r2.Rect {
	rect := r2.EmptyRect()
	for v := range d.FaceVertices(id) {
		rect = rect.AddPoint(v.Point.R2())
	}
	return rect
}

// Contains - попадает ли p в многоугольник границы грани (по числу оборотов).
// Точки на границе считаются внутри.
func (d *DCEL) Contains(id FaceID, p Point) bool {
	if d.faces[id].Boundary == NoHalfEdge {
		return d.faces[id].Outer
	}
	if !d.Bounds(id).ContainsPoint(p.R2()) {
		return d.faces[id].Outer
	}

	winding := 0
	for h := range d.FaceHalfEdges(id) {
		a := d.vertices[h.Origin].Point
		b := d.vertices[d.Destination(h.ID)].Point
		if onSegment(a, b, p) {
			return true
		}
		if a.Y <= p.Y {
			if b.Y > p.Y && orientation(a, b, p) > 0 {
				winding++
			}
		} else if b.Y <= p.Y && orientation(a, b, p) < 0 {
			winding--
		}
	}

	// у внешней грани обход по часовой, поэтому внутренние точки дают -1
	if d.faces[id].Outer {
		return winding == 0
	}
	return winding != 0
}

// Locate возвращает внутреннюю грань наименьшей площади, содержащую p,
// или внешнюю грань.
func (d *DCEL) Locate(p Point) FaceID {
	best := d.outer
	bestArea := math.Inf(1)
	for _, f := range d.faces {
		if f.Outer {
			continue
		}
		if area := d.areas[f.ID]; area < bestArea && d.Contains(f.ID, p) {
			best, bestArea = f.ID, area
		}
	}
	return best
}

func onSegment(a, b, p Point) bool {
	if p.X < math.Min(a.X, b.X) || p.X > math.Max(a.X, b.X) ||
		p.Y < math.Min(a.Y, b.Y) || p.Y > math.Max(a.Y, b.Y) {
		return false
	}
	return math.Abs(orientation(a, b, p)) <= 1e-10*math.Max(1, a.DistanceTo(b))
}
