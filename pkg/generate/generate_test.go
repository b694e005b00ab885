package generate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-dcel/pkg/dcel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularPolygon(t *testing.T) {
	points, edges := RegularPolygon(6, dcel.Point{X: 1, Y: 1}, 2)
	require.Len(t, points, 6)
	require.Len(t, edges, 6)
	for _, p := range points {
		assert.InDelta(t, 2, p.DistanceTo(dcel.Point{X: 1, Y: 1}), 1e-12)
	}
	assert.Equal(t, dcel.Edge{A: 5, B: 0}, edges[5])
}

func TestGrid(t *testing.T) {
	points, edges := Grid(2, 3, 1)
	assert.Len(t, points, 12)
	assert.Len(t, edges, 2*4+3*3)
	assert.Equal(t, dcel.Point{X: 3, Y: 2}, points[len(points)-1])
}

func TestWheel(t *testing.T) {
	points, edges := Wheel(5, dcel.Point{}, 1)
	assert.Len(t, points, 6)
	assert.Len(t, edges, 10)
	assert.Equal(t, dcel.Point{}, points[5])
}

func TestRandomStarPolygon(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	points, edges := RandomStarPolygon(rnd, 20, dcel.Point{}, 1, 3)
	require.Len(t, points, 20)
	require.Len(t, edges, 20)
	for _, p := range points {
		r := math.Hypot(p.X, p.Y)
		assert.GreaterOrEqual(t, r, 1-1e-12)
		assert.Less(t, r, 3.0)
	}
}

func TestShuffleKeepsEdgeSet(t *testing.T) {
	_, edges := Grid(3, 3, 1)
	shuffled := Shuffle(rand.New(rand.NewSource(1)), edges)
	require.Len(t, shuffled, len(edges))

	norm := func(e dcel.Edge) dcel.Edge {
		if e.A > e.B {
			e.A, e.B = e.B, e.A
		}
		return e
	}
	want := make(map[dcel.Edge]bool)
	for _, e := range edges {
		want[norm(e)] = true
	}
	for _, e := range shuffled {
		assert.True(t, want[norm(e)], "unexpected edge %v", e)
	}
}
