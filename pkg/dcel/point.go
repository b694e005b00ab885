package dcel

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point - неизменяемая точка на плоскости. Сравнима, поэтому годится как ключ мапы.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

func (p Point) DistanceTo(o Point) float64 {
	return p.R2().Sub(o.R2()).Norm()
}

// Less упорядочивает точки по X, затем по Y.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func pointFromR2(p r2.Point) Point {
	return Point{p.X, p.Y}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// orientation - удвоенная знаковая площадь треугольника abc.
// > 0 если c слева от ab, < 0 если справа.
func orientation(a, b, c Point) float64 {
	return b.Sub(a).R2().Cross(c.Sub(a).R2())
}
