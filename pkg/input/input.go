// Package input читает и пишет текстовые списки точек и ребер для DCEL.
//
// Одна или несколько пар на строку: "(x, y)", "x, y" или "x y".
// Пустые строки и все после '#' пропускаются.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/0x0FACED/go-dcel/pkg/dcel"
	"github.com/pkg/errors"
)

var ErrSyntax = errors.New("input: syntax error")

func ParsePoints(r io.Reader) ([]dcel.Point, error) {
	var points []dcel.Point
	err := scanTuples(r, func(line int, a, b string) error {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return errors.Wrapf(ErrSyntax, "line %d: bad x coordinate %q", line, a)
		}
		y, err := strconv.ParseFloat(b, 64)
		if err != nil {
			return errors.Wrapf(ErrSyntax, "line %d: bad y coordinate %q", line, b)
		}
		points = append(points, dcel.Point{X: x, Y: y})
		return nil
	})
	return points, err
}

func ParseEdges(r io.Reader) ([]dcel.Edge, error) {
	var edges []dcel.Edge
	err := scanTuples(r, func(line int, a, b string) error {
		i, err := strconv.Atoi(a)
		if err != nil {
			return errors.Wrapf(ErrSyntax, "line %d: bad vertex index %q", line, a)
		}
		j, err := strconv.Atoi(b)
		if err != nil {
			return errors.Wrapf(ErrSyntax, "line %d: bad vertex index %q", line, b)
		}
		edges = append(edges, dcel.Edge{A: i, B: j})
		return nil
	})
	return edges, err
}

// WritePoints пишет точки по одной на строку в формате, который читает ParsePoints.
func WritePoints(w io.Writer, points []dcel.Point) error {
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "(%s, %s)\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return err
		}
	}
	return nil
}

func WriteEdges(w io.Writer, edges []dcel.Edge) error {
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "(%d, %d)\n", e.A, e.B); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Пользователь может вставить весь список одной строкой.
const maxLineSize = 16 << 20

func scanTuples(r io.Reader, fn func(line int, a, b string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		tuples, err := splitTuples(text)
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		for _, t := range tuples {
			if err := fn(line, t[0], t[1]); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "line %d", line+1)
	}
	return nil
}

func splitTuples(text string) ([][2]string, error) {
	if !strings.ContainsAny(text, "()") {
		t, err := pair(text)
		if err != nil {
			return nil, err
		}
		return [][2]string{t}, nil
	}

	var tuples [][2]string
	for {
		text = strings.TrimLeft(text, " \t,;")
		if text == "" {
			return tuples, nil
		}
		if text[0] != '(' {
			return nil, errors.Wrapf(ErrSyntax, "expected '(' but encountered %q", text)
		}
		end := strings.IndexByte(text, ')')
		if end < 0 {
			return nil, errors.Wrapf(ErrSyntax, "expected ')' after %q", text)
		}
		t, err := pair(text[1:end])
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, t)
		text = text[end+1:]
	}
}

func pair(s string) ([2]string, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) != 2 {
		return [2]string{}, errors.Wrapf(ErrSyntax, "expected 2 values but got %d in %q", len(parts), s)
	}
	return [2]string{parts[0], parts[1]}, nil
}
