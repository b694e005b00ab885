package dcel

import (
	"sort"

	"github.com/0x0FACED/go-dcel/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type builder struct {
	points []Point
	edges  []Edge
	d      *DCEL

	Logger *logger.ZapLogger
}

// Build строит DCEL по точкам (индекс = id вершины) и неориентированным ребрам.
// Граф должен быть связным и без кратных ребер и петель. При ошибке
// структура не возвращается. log может быть nil.
func Build(points []Point, edges []Edge, log *logger.ZapLogger) (*DCEL, error) {
	if log == nil {
		log = logger.NewNop()
	}

	b := &builder{
		points: points,
		edges:  edges,
		d:      &DCEL{outer: NoFace},
		Logger: log,
	}

	log.Info("[b] Построение DCEL запущено", zap.Int("points", len(points)), zap.Int("edges", len(edges)))

	steps := []struct {
		name string
		run  func() error
	}{
		{"points", b.validatePoints},
		{"edges", b.validateEdges},
		{"connectivity", b.checkConnected},
		{"half-edges", b.createHalfEdges},
		{"angular-order", b.sortOutgoing},
		{"linkage", b.link},
		{"faces", b.discoverFaces},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Error("[b] Построение прервано", zap.String("step", step.name), zap.Error(err))
			return nil, err
		}
		log.Debug("[b] Шаг выполнен", zap.String("step", step.name))
	}

	log.Info("[b] Построение завершено", zap.Any("stats", b.d.Stats()))

	return b.d, nil
}

func (b *builder) validatePoints() error {
	if len(b.points) == 0 {
		return ErrEmptyGraph
	}

	// +0 и -0 совпадают как ключи, это и нужно
	seen := make(map[Point]int, len(b.points))
	for i, p := range b.points {
		if !p.finite() {
			return errors.Wrapf(ErrDegenerateGeometry, "point %d has non-finite coordinates %v", i, p)
		}
		if j, ok := seen[p]; ok {
			return errors.Wrapf(ErrDuplicatePoint, "points %d and %d at (%g, %g)", j, i, p.X, p.Y)
		}
		seen[p] = i
	}
	return nil
}

func (b *builder) validateEdges() error {
	n := len(b.points)
	seen := make(map[Edge]int, len(b.edges))
	for i, e := range b.edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return errors.Wrapf(ErrInvalidEdge, "edge %d (%d, %d): vertex index out of range [0, %d)", i, e.A, e.B, n)
		}
		if e.A == e.B {
			return errors.Wrapf(ErrInvalidEdge, "edge %d (%d, %d): self-loop", i, e.A, e.B)
		}
		key := e
		if key.A > key.B {
			key.A, key.B = key.B, key.A
		}
		if j, ok := seen[key]; ok {
			return errors.Wrapf(ErrDuplicateEdge, "edges %d and %d both join %d and %d", j, i, key.A, key.B)
		}
		seen[key] = i
	}
	return nil
}

func (b *builder) checkConnected() error {
	parent := make([]int, len(b.points))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	components := len(b.points)
	for _, e := range b.edges {
		ra, rb := find(e.A), find(e.B)
		if ra != rb {
			parent[ra] = rb
			components--
		}
	}

	b.Logger.Debug("[b-conn] Компоненты связности", zap.Int("components", components))
	if components > 1 {
		return errors.Wrapf(ErrDisconnectedGraph, "%d connected components", components)
	}
	return nil
}

// Ребро k дает полуребра 2k (из A) и 2k+1 (из B).
func (b *builder) createHalfEdges() error {
	d := b.d
	d.vertices = make([]Vertex, len(b.points))
	d.outgoing = make([][]HalfEdgeID, len(b.points))
	for i, p := range b.points {
		d.vertices[i] = Vertex{ID: VertexID(i), Point: p, Incident: NoHalfEdge}
	}

	d.halfEdges = make([]HalfEdge, 0, 2*len(b.edges))
	for _, e := range b.edges {
		h := HalfEdgeID(len(d.halfEdges))
		d.halfEdges = append(d.halfEdges,
			HalfEdge{ID: h, Origin: VertexID(e.A), Twin: h + 1, Next: NoHalfEdge, Prev: NoHalfEdge, Face: NoFace},
			HalfEdge{ID: h + 1, Origin: VertexID(e.B), Twin: h, Next: NoHalfEdge, Prev: NoHalfEdge, Face: NoFace},
		)
		d.outgoing[e.A] = append(d.outgoing[e.A], h)
		d.outgoing[e.B] = append(d.outgoing[e.B], h+1)
	}

	b.Logger.Info("[b-he] Полуребра созданы", zap.Int("half-edges", len(d.halfEdges)))
	return nil
}

type outgoingByAngle struct {
	ids    []HalfEdgeID
	angles []float64
}

func (s outgoingByAngle) Len() int           { return len(s.ids) }
func (s outgoingByAngle) Less(i, j int) bool { return s.angles[i] < s.angles[j] }
func (s outgoingByAngle) Swap(i, j int) {
	s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
	s.angles[i], s.angles[j] = s.angles[j], s.angles[i]
}

func (b *builder) sortOutgoing() error {
	d := b.d
	for v, out := range d.outgoing {
		if len(out) == 0 {
			continue
		}

		angles := make([]float64, len(out))
		for i, h := range out {
			angles[i] = d.Angle(h)
		}
		// при равных углах сохраняем порядок вставки
		sort.Stable(outgoingByAngle{out, angles})

		// одинаковые направления после сортировки стоят рядом (или на стыке 2π и 0)
		if len(out) > 1 {
			for i := range out {
				h, g := out[i], out[(i+1)%len(out)]
				if b.sameDirection(h, g) {
					return errors.Wrapf(ErrDegenerateGeometry,
						"vertex %d: half-edges to %d and %d leave in the same direction",
						v, d.Destination(h), d.Destination(g))
				}
			}
		}

		d.vertices[v].Incident = out[0]
		b.Logger.Debug("[b-sort] Исходящие отсортированы", zap.Int("vertex", v), zap.Any("order", out))
	}
	return nil
}

func (b *builder) sameDirection(h, g HalfEdgeID) bool {
	d := b.d
	o := d.vertices[d.halfEdges[h].Origin].Point
	u := d.vertices[d.Destination(h)].Point.Sub(o).R2()
	w := d.vertices[d.Destination(g)].Point.Sub(o).R2()
	return u.Cross(w) == 0 && u.Dot(w) > 0
}

// Для исходящего h и следующего за ним против часовой s: s.twin.next = h, h.prev = s.twin.
// Так грань каждого полуребра остается слева.
func (b *builder) link() error {
	d := b.d
	for _, out := range d.outgoing {
		k := len(out)
		for i, h := range out {
			s := out[(i+1)%k]
			in := d.halfEdges[s].Twin
			d.halfEdges[in].Next = h
			d.halfEdges[h].Prev = in
		}
	}

	if err := b.checkLinkage(); err != nil {
		return err
	}
	b.Logger.Info("[b-link] Связи next/prev установлены")
	return nil
}

func (b *builder) checkLinkage() error {
	d := b.d
	for _, h := range d.halfEdges {
		switch {
		case h.Next == NoHalfEdge || h.Prev == NoHalfEdge:
			return errors.Wrapf(ErrInconsistentLinkage, "half-edge %d has no next or prev", h.ID)
		case d.halfEdges[h.Twin].Twin != h.ID:
			return errors.Wrapf(ErrInconsistentLinkage, "half-edge %d: twin.twin != self", h.ID)
		case d.halfEdges[h.Next].Prev != h.ID:
			return errors.Wrapf(ErrInconsistentLinkage, "half-edge %d: next.prev != self", h.ID)
		case d.halfEdges[h.Prev].Next != h.ID:
			return errors.Wrapf(ErrInconsistentLinkage, "half-edge %d: prev.next != self", h.ID)
		case d.halfEdges[h.Next].Origin != d.halfEdges[h.Twin].Origin:
			return errors.Wrapf(ErrInconsistentLinkage, "half-edge %d: next does not start at destination", h.ID)
		}
	}
	return nil
}

func (b *builder) discoverFaces() error {
	d := b.d

	// одна вершина без ребер: только внешняя грань без границы
	if len(d.halfEdges) == 0 {
		d.faces = []Face{{ID: 0, Boundary: NoHalfEdge, Outer: true}}
		d.areas = []float64{0}
		d.outer = 0
		return nil
	}

	for start := range d.halfEdges {
		if d.halfEdges[start].Face != NoFace {
			continue
		}

		f := FaceID(len(d.faces))
		var area float64
		steps := 0
		h := HalfEdgeID(start)
		for {
			if steps > len(d.halfEdges) {
				return errors.Wrapf(ErrInconsistentLinkage, "face walk from half-edge %d does not close", start)
			}
			if d.halfEdges[h].Face != NoFace {
				return errors.Wrapf(ErrInconsistentLinkage, "half-edge %d reached twice during face walk", h)
			}
			d.halfEdges[h].Face = f

			a := d.vertices[d.halfEdges[h].Origin].Point
			c := d.vertices[d.Destination(h)].Point
			area += a.X*c.Y - c.X*a.Y

			steps++
			h = d.halfEdges[h].Next
			if h == HalfEdgeID(start) {
				break
			}
		}

		d.faces = append(d.faces, Face{ID: f, Boundary: HalfEdgeID(start)})
		d.areas = append(d.areas, area/2)
		b.Logger.Debug("[b-face] Грань найдена", zap.Int("face", int(f)), zap.Int("size", steps), zap.Float64("area", area/2))
	}

	// внешняя грань - с наименьшей знаковой площадью, при равенстве - с меньшим id
	outer := FaceID(0)
	for i, area := range d.areas {
		if area < d.areas[outer] {
			outer = FaceID(i)
		}
	}
	d.faces[outer].Outer = true
	d.outer = outer

	b.Logger.Info("[b-face] Грани найдены", zap.Int("faces", len(d.faces)), zap.Int("outer", int(outer)))
	return nil
}
