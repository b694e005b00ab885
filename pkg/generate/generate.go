// Package generate строит входные данные для DCEL: многоугольники, колеса, сетки.
package generate

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-dcel/pkg/dcel"
)

// RegularPolygon - правильный n-угольник, вершины против часовой стрелки.
func RegularPolygon(n int, center dcel.Point, radius float64) ([]dcel.Point, []dcel.Edge) {
	points := make([]dcel.Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = dcel.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return points, ring(n)
}

// RandomStarPolygon - простой многоугольник, звездный относительно center:
// углы равномерные, радиусы случайные из [minR, maxR).
func RandomStarPolygon(rnd *rand.Rand, n int, center dcel.Point, minR, maxR float64) ([]dcel.Point, []dcel.Edge) {
	points := make([]dcel.Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := minR + rnd.Float64()*(maxR-minR)
		points[i] = dcel.Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		}
	}
	return points, ring(n)
}

// Wheel - правильный n-угольник и центр (индекс n), соединенный со всеми вершинами.
// Дает n треугольных граней плюс внешнюю.
func Wheel(n int, center dcel.Point, radius float64) ([]dcel.Point, []dcel.Edge) {
	points, edges := RegularPolygon(n, center, radius)
	points = append(points, center)
	for i := 0; i < n; i++ {
		edges = append(edges, dcel.Edge{A: n, B: i})
	}
	return points, edges
}

// Grid - решетка rows x cols клеток со стороной step, левый нижний угол в (0, 0).
// Вершина (r, c) имеет индекс r*(cols+1)+c.
func Grid(rows, cols int, step float64) ([]dcel.Point, []dcel.Edge) {
	idx := func(r, c int) int { return r*(cols+1) + c }

	points := make([]dcel.Point, 0, (rows+1)*(cols+1))
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			points = append(points, dcel.Point{X: float64(c) * step, Y: float64(r) * step})
		}
	}

	var edges []dcel.Edge
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			if c < cols {
				edges = append(edges, dcel.Edge{A: idx(r, c), B: idx(r, c+1)})
			}
			if r < rows {
				edges = append(edges, dcel.Edge{A: idx(r, c), B: idx(r+1, c)})
			}
		}
	}
	return points, edges
}

// Shuffle перемешивает ребра и меняет местами концы части из них.
// Структура графа не меняется.
func Shuffle(rnd *rand.Rand, edges []dcel.Edge) []dcel.Edge {
	out := make([]dcel.Edge, len(edges))
	copy(out, edges)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	for i := range out {
		if rnd.Intn(2) == 0 {
			out[i].A, out[i].B = out[i].B, out[i].A
		}
	}
	return out
}

func ring(n int) []dcel.Edge {
	edges := make([]dcel.Edge, n)
	for i := range edges {
		edges[i] = dcel.Edge{A: i, B: (i + 1) % n}
	}
	return edges
}
