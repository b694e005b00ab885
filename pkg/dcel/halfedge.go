package dcel

import (
	"iter"
	"math"
)

type HalfEdgeID int

const NoHalfEdge HalfEdgeID = -1

// Edge - неориентированное входное ребро, A и B - индексы во входном списке точек.
type Edge struct {
	A int
	B int
}

// HalfEdge - направленное ребро. Ребро k входного списка дает полуребра 2k (из A) и 2k+1 (из B).
// Next начинается в конце этого полуребра и идет по той же грани, Face лежит слева.
type HalfEdge struct {
	ID     HalfEdgeID
	Origin VertexID
	Twin   HalfEdgeID
	Next   HalfEdgeID
	Prev   HalfEdgeID
	Face   FaceID
}

func (d *DCEL) HalfEdge(id HalfEdgeID) HalfEdge {
	return d.halfEdges[id]
}

func (d *DCEL) HalfEdges() iter.Seq[HalfEdge] {
	return func(yield func(HalfEdge) bool) {
		for _, h := range d.halfEdges {
			if !yield(h) {
				return
			}
		}
	}
}

func (d *DCEL) Destination(id HalfEdgeID) VertexID {
	return d.halfEdges[d.halfEdges[id].Twin].Origin
}

// Angle - угол направления полуребра от оси +X против часовой, в [0, 2π).
func (d *DCEL) Angle(id HalfEdgeID) float64 {
	return angleOf(d.vertices[d.halfEdges[id].Origin].Point, d.vertices[d.Destination(id)].Point)
}

func (d *DCEL) Length(id HalfEdgeID) float64 {
	return d.vertices[d.halfEdges[id].Origin].Point.DistanceTo(d.vertices[d.Destination(id)].Point)
}

func (d *DCEL) Midpoint(id HalfEdgeID) Point {
	a := d.vertices[d.halfEdges[id].Origin].Point
	b := d.vertices[d.Destination(id)].Point
	return pointFromR2(a.R2().Add(b.R2()).Mul(0.5))
}

func angleOf(from, to Point) float64 {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}
