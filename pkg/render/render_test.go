package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/0x0FACED/go-dcel/pkg/dcel"
	"github.com/0x0FACED/go-dcel/pkg/generate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewport(t *testing.T) {
	points, edges := generate.Grid(1, 2, 1)
	d, err := dcel.Build(points, edges, nil)
	require.NoError(t, err)

	vp := newViewport(d, 220, 220)
	// ширина 2 определяет масштаб: 220 * 0.9 / 2
	assert.InDelta(t, 99, vp.scale, 1e-9)

	x, y := vp.project(dcel.Point{X: 0, Y: 0})
	assert.InDelta(t, 11, x, 1e-9)
	assert.InDelta(t, 159.5, y, 1e-9)

	x, y = vp.project(dcel.Point{X: 2, Y: 1})
	assert.InDelta(t, 209, x, 1e-9)
	assert.InDelta(t, 60.5, y, 1e-9)
}

func TestViewportSinglePoint(t *testing.T) {
	d, err := dcel.Build([]dcel.Point{{X: 5, Y: 5}}, nil, nil)
	require.NoError(t, err)

	vp := newViewport(d, 100, 50)
	x, y := vp.project(dcel.Point{X: 5, Y: 5})
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 25, y, 1e-9)
}

func TestPNG(t *testing.T) {
	points, edges := generate.Wheel(6, dcel.Point{}, 1)
	d, err := dcel.Build(points, edges, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, d, 160, 120))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	br, bg, bb, _ := background.RGBA()
	assert.Equal(t, []uint32{br, bg, bb}, []uint32{r, g, b})

	// центр колеса - вершина
	cx, cy := newViewport(d, 160, 120).project(dcel.Point{})
	r, g, b, _ = img.At(int(cx), int(cy)).RGBA()
	assert.NotEqual(t, []uint32{br, bg, bb}, []uint32{r, g, b})
}

func TestBadSize(t *testing.T) {
	d, err := dcel.Build([]dcel.Point{{}}, nil, nil)
	require.NoError(t, err)
	_, err = Image(d, 0, 10)
	assert.Error(t, err)
}
