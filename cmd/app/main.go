package main

import (
	"flag"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-dcel/pkg/dcel"
	"github.com/0x0FACED/go-dcel/pkg/generate"
	"github.com/0x0FACED/go-dcel/pkg/input"
	"github.com/0x0FACED/go-dcel/pkg/logger"
	"github.com/0x0FACED/go-dcel/pkg/render"
	"github.com/0x0FACED/go-dcel/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Параметры построения из формы или query.
type request struct {
	Shape  string
	Sides  int
	Rows   int
	Cols   int
	Seed   int64
	Width  int
	Height int
	Points string
	Edges  string
}

var shapes = map[string]bool{"polygon": true, "star": true, "wheel": true, "grid": true, "custom": true}

func intValue(r *http.Request, key string, def, lo, hi int) int {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func parseRequest(r *http.Request) request {
	r.ParseForm()

	q := request{
		Shape:  r.FormValue("shape"),
		Sides:  intValue(r, "sides", 6, 3, 500),
		Rows:   intValue(r, "rows", 3, 1, 50),
		Cols:   intValue(r, "cols", 3, 1, 50),
		Width:  intValue(r, "width", 800, 100, 4000),
		Height: intValue(r, "height", 600, 100, 4000),
		Points: r.FormValue("points"),
		Edges:  r.FormValue("edges"),
	}
	if !shapes[q.Shape] {
		q.Shape = "polygon"
	}
	q.Seed, _ = strconv.ParseInt(r.FormValue("seed"), 10, 64)
	return q
}

// input возвращает точки и ребра: сгенерированные или разобранные из текста.
func (q request) input() ([]dcel.Point, []dcel.Edge, error) {
	switch q.Shape {
	case "star":
		rnd := rand.New(rand.NewSource(q.Seed))
		points, edges := generate.RandomStarPolygon(rnd, q.Sides, dcel.Point{}, 50, 100)
		return points, edges, nil
	case "wheel":
		points, edges := generate.Wheel(q.Sides, dcel.Point{}, 100)
		return points, edges, nil
	case "grid":
		points, edges := generate.Grid(q.Rows, q.Cols, 10)
		return points, edges, nil
	case "custom":
		points, err := input.ParsePoints(strings.NewReader(q.Points))
		if err != nil {
			return nil, nil, errors.Wrap(err, "points")
		}
		edges, err := input.ParseEdges(strings.NewReader(q.Edges))
		if err != nil {
			return nil, nil, errors.Wrap(err, "edges")
		}
		return points, edges, nil
	default:
		points, edges := generate.RegularPolygon(q.Sides, dcel.Point{}, 100)
		return points, edges, nil
	}
}

func prepareScatter(scatter *charts.Scatter, q request) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: strconv.Itoa(q.Height) + "px",
			Width:  strconv.Itoa(q.Width) + "px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "DCEL",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Вершины, ребра и центры внутренних граней для Echarts
func dcelToEcharts(d *dcel.DCEL, q request) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, q)

	vertices := make([]opts.ScatterData, 0, d.NumVertices())
	for v := range d.Vertices() {
		vertices = append(vertices, opts.ScatterData{
			Name:  fmt.Sprintf("v%d", v.ID),
			Value: []float64{v.Point.X, v.Point.Y},
		})
	}
	scatter.AddSeries("Вершины", vertices).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	centroids := make([]opts.ScatterData, 0, d.NumFaces())
	for f := range d.Faces() {
		if f.Outer {
			continue
		}
		if c, ok := d.Centroid(f.ID); ok {
			centroids = append(centroids, opts.ScatterData{
				Name:  fmt.Sprintf("f%d", f.ID),
				Value: []float64{c.X, c.Y},
			})
		}
	}
	scatter.AddSeries("Грани", centroids).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "orange",
			}),
		)

	for h := range d.HalfEdges() {
		// одно ребро - два полуребра
		if h.ID%2 != 0 {
			continue
		}
		a := d.Vertex(h.Origin).Point
		b := d.Vertex(d.Destination(h.ID)).Point

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries("Ребра", []opts.LineData{
			{Value: []float64{a.X, a.Y}},
			{Value: []float64{b.X, b.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}

func writeStats(w http.ResponseWriter, s dcel.Stats) {
	fmt.Fprintln(w, `<table class="stats">`)
	fmt.Fprintf(w, "<tr><td>Вершин</td><td>%d</td></tr>\n", s.Vertices)
	fmt.Fprintf(w, "<tr><td>Ребер</td><td>%d</td></tr>\n", s.Edges)
	fmt.Fprintf(w, "<tr><td>Полуребер</td><td>%d</td></tr>\n", s.HalfEdges)
	fmt.Fprintf(w, "<tr><td>Граней (с внешней)</td><td>%d</td></tr>\n", s.Faces)
	fmt.Fprintf(w, "<tr><td>Внутренних граней</td><td>%d</td></tr>\n", s.InternalFaces)
	fmt.Fprintf(w, "<tr><td>Площадь</td><td>%.4g</td></tr>\n", s.TotalArea)
	fmt.Fprintf(w, "<tr><td>Периметр</td><td>%.4g</td></tr>\n", s.TotalPerimeter)
	fmt.Fprintln(w, `</table>`)
}

func writeForm(w http.ResponseWriter, q request, points []dcel.Point, edges []dcel.Edge) {
	fmt.Fprintln(w, strings.Replace(static.Head, `value="`+q.Shape+`"`, `value="`+q.Shape+`" selected`, 1))

	// textarea заполняются текущим входом, чтобы его можно было поправить и отправить как custom
	var pts, eds strings.Builder
	if q.Shape == "custom" {
		pts.WriteString(q.Points)
		eds.WriteString(q.Edges)
	} else {
		input.WritePoints(&pts, points)
		input.WriteEdges(&eds, edges)
	}
	fmt.Fprintf(w, `<textarea name="points" placeholder="(x, y)">%s</textarea>`+"\n", html.EscapeString(pts.String()))
	fmt.Fprintf(w, `<textarea name="edges" placeholder="(i, j)">%s</textarea>`+"\n", html.EscapeString(eds.String()))
	fmt.Fprintf(w, `<input type="hidden" name="width" value="%d"><input type="hidden" name="height" value="%d">`+"\n", q.Width, q.Height)

	fmt.Fprintln(w, static.FormEnd)
}

// http обработчик страницы с DCEL и формой для ввода данных
func dcelHandler(w http.ResponseWriter, r *http.Request) {
	q := parseRequest(r)

	logger := logger.New()
	defer logger.ClearLogs()

	points, edges, err := q.input()
	if err == nil {
		logger.Info("[app] Вход получен", zap.String("shape", q.Shape), zap.Int("points", len(points)), zap.Int("edges", len(edges)))
	} else {
		logger.Error("[app] Вход не разобран", zap.Error(err))
	}

	writeForm(w, q, points, edges)

	if err == nil {
		var d *dcel.DCEL
		d, err = dcel.Build(points, edges, logger)
		if err == nil {
			writeStats(w, d.Stats())
			if rerr := dcelToEcharts(d, q).Render(w); rerr != nil {
				logger.Error("[app] Ошибка рендеринга диаграммы", zap.Error(rerr))
			}
		}
	}
	if err != nil {
		fmt.Fprintf(w, `<p class="error">%s</p>`+"\n", html.EscapeString(err.Error()))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, logger.HTML())

	fmt.Fprintln(w, static.Part3)
}

// pngHandler отдает тот же DCEL картинкой
func pngHandler(w http.ResponseWriter, r *http.Request) {
	logger := logger.New()
	defer logger.ClearLogs()

	writePNG(w, parseRequest(r), logger)
}

func writePNG(w http.ResponseWriter, q request, log *logger.ZapLogger) {
	points, edges, err := q.input()
	if err != nil {
		log.Error("[app] Вход не разобран", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d, err := dcel.Build(points, edges, log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, d, q.Width, q.Height); err != nil {
		log.Error("[app] Ошибка рендеринга PNG", zap.Error(err))
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", dcelHandler)
	mux.HandleFunc("/png", pngHandler)
	return mux
}

func main() {
	addr := flag.String("addr", ":8080", "адрес HTTP сервера")
	flag.Parse()

	fmt.Printf("Сервер запущен на http://localhost%s\n", *addr)
	err := http.ListenAndServe(*addr, newMux())
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
