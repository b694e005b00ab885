package main

import (
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/0x0FACED/go-dcel/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, req)
	return rec
}

func TestParseRequestDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?shape=bogus&sides=1&rows=x", nil)
	q := parseRequest(req)
	assert.Equal(t, "polygon", q.Shape)
	assert.Equal(t, 3, q.Sides)
	assert.Equal(t, 3, q.Rows)
	assert.Equal(t, 800, q.Width)
}

func TestRequestInput(t *testing.T) {
	for _, tc := range []struct {
		q      request
		points int
		edges  int
	}{
		{request{Shape: "polygon", Sides: 5}, 5, 5},
		{request{Shape: "star", Sides: 7, Seed: 3}, 7, 7},
		{request{Shape: "wheel", Sides: 4}, 5, 8},
		{request{Shape: "grid", Rows: 2, Cols: 2}, 9, 12},
		{request{Shape: "custom", Points: "(0,0)\n(1,0)", Edges: "(0,1)"}, 2, 1},
	} {
		t.Run(tc.q.Shape, func(t *testing.T) {
			points, edges, err := tc.q.input()
			require.NoError(t, err)
			assert.Len(t, points, tc.points)
			assert.Len(t, edges, tc.edges)
		})
	}

	_, _, err := request{Shape: "custom", Points: "(0,0,0)"}.input()
	assert.Error(t, err)
}

func TestDiagramPage(t *testing.T) {
	rec := post(t, "/", url.Values{"shape": {"wheel"}, "sides": {"5"}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `value="wheel" selected`)
	assert.Contains(t, body, "<td>Граней (с внешней)</td><td>6</td>")
	assert.Contains(t, body, "Построение завершено")
	assert.NotContains(t, body, `class="error"`)
}

func TestDiagramPageShowsBuildError(t *testing.T) {
	rec := post(t, "/", url.Values{
		"shape":  {"custom"},
		"points": {"(0,0)\n(1,0)\n(0,1)"},
		"edges":  {"(0,1)\n(1,2)\n(2,1)"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `class="error"`)
	assert.Contains(t, body, "duplicate edge")
	// textarea сохраняют ввод пользователя
	assert.Contains(t, body, "(2,1)")
}

func TestPNGEndpoint(t *testing.T) {
	rec := post(t, "/png", url.Values{"shape": {"grid"}, "rows": {"2"}, "cols": {"3"}, "width": {"300"}, "height": {"200"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestPNGEndpointErrors(t *testing.T) {
	rec := post(t, "/png", url.Values{"shape": {"custom"}, "points": {"(0"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, "/png", url.Values{"shape": {"custom"}, "points": {"(0,0)\n(1,1)"}, "edges": {"(0,0)"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// brokenWriter отказывает в каждой записи тела.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.Wrap(io.ErrClosedPipe, "client gone")
}

func TestPNGWriteErrorIsLogged(t *testing.T) {
	log := logger.New()
	defer log.ClearLogs()

	w := brokenWriter{httptest.NewRecorder()}
	writePNG(w, request{Shape: "polygon", Sides: 4, Width: 120, Height: 120}, log)

	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	out := log.String()
	assert.Contains(t, out, "Построение завершено")
	assert.Contains(t, out, "Ошибка рендеринга PNG")
	assert.Contains(t, out, "client gone")
}
