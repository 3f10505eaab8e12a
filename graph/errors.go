package graph

import "errors"

var (
	// ErrDuplicateVertex indicates a vertex ID is already in the graph.
	ErrDuplicateVertex = errors.New("graph: vertex already exists")

	// ErrDuplicateParameter indicates a parameter ID is already in the graph.
	ErrDuplicateParameter = errors.New("graph: parameter already exists")
)
