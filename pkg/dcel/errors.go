package dcel

import "github.com/pkg/errors"

// Ошибки построения. Возвращаемые ошибки оборачивают одну из них,
// проверять через errors.Is.
var (
	ErrEmptyGraph          = errors.New("dcel: no vertices")
	ErrInvalidEdge         = errors.New("dcel: invalid edge")
	ErrDuplicateEdge       = errors.New("dcel: duplicate edge")
	ErrDuplicatePoint      = errors.New("dcel: duplicate point")
	ErrDegenerateGeometry  = errors.New("dcel: degenerate geometry")
	ErrInconsistentLinkage = errors.New("dcel: inconsistent half-edge linkage")
	ErrDisconnectedGraph   = errors.New("dcel: graph is not connected")
)
