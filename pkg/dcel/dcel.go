// Package dcel строит двусвязный список ребер (half-edge структуру) планарного
// графа по списку точек и неориентированных ребер.
//
// Готовая структура неизменяема: все методы только читают, поэтому
// ее можно обходить из нескольких горутин без синхронизации.
package dcel

import "fmt"

// DCEL владеет всеми вершинами, полуребрами и гранями.
// Ссылки между ними - индексы в эти слайсы.
type DCEL struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face

	// исходящие полуребра каждой вершины в порядке возрастания угла
	outgoing [][]HalfEdgeID
	// знаковая площадь каждой грани
	areas []float64
	outer FaceID
}

func (d *DCEL) NumVertices() int  { return len(d.vertices) }
func (d *DCEL) NumHalfEdges() int { return len(d.halfEdges) }
func (d *DCEL) NumEdges() int     { return len(d.halfEdges) / 2 }
func (d *DCEL) NumFaces() int     { return len(d.faces) }

// Stats - сводка по структуре. Внешняя грань входит в Faces, но не в InternalFaces,
// TotalArea и TotalPerimeter.
type Stats struct {
	Vertices       int     `json:"vertices"`
	Edges          int     `json:"edges"`
	HalfEdges      int     `json:"half_edges"`
	Faces          int     `json:"faces"`
	InternalFaces  int     `json:"internal_faces"`
	TotalArea      float64 `json:"total_area"`
	TotalPerimeter float64 `json:"total_perimeter"`
}

func (d *DCEL) Stats() Stats {
	s := Stats{
		Vertices:  d.NumVertices(),
		Edges:     d.NumEdges(),
		HalfEdges: d.NumHalfEdges(),
		Faces:     d.NumFaces(),
	}
	for _, f := range d.faces {
		if f.Outer {
			continue
		}
		s.InternalFaces++
		s.TotalArea += d.Area(f.ID)
		s.TotalPerimeter += d.Perimeter(f.ID)
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("DCEL(vertices=%d, edges=%d, faces=%d)", s.Vertices, s.Edges, s.Faces)
}
