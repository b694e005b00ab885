package dcel

import "iter"

type VertexID int

const NoVertex VertexID = -1

// Vertex - вершина и одно из исходящих из нее полуребер.
// Incident - исходящее полуребро с наименьшим углом, NoHalfEdge у изолированной вершины.
type Vertex struct {
	ID       VertexID
	Point    Point
	Incident HalfEdgeID
}

func (d *DCEL) Vertex(id VertexID) Vertex {
	return d.vertices[id]
}

func (d *DCEL) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, v := range d.vertices {
			if !yield(v) {
				return
			}
		}
	}
}

// Outgoing перебирает исходящие полуребра вершины против часовой стрелки,
// начиная с направления с наименьшим углом.
func (d *DCEL) Outgoing(id VertexID) iter.Seq[HalfEdge] {
	return func(yield func(HalfEdge) bool) {
		start := d.vertices[id].Incident
		if start == NoHalfEdge {
			return
		}
		h := start
		for {
			if !yield(d.halfEdges[h]) {
				return
			}
			// следующее против часовой: twin от prev
			h = d.halfEdges[d.halfEdges[h].Prev].Twin
			if h == start {
				return
			}
		}
	}
}

func (d *DCEL) Degree(id VertexID) int {
	return len(d.outgoing[id])
}
