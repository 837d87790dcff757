package normalize

import "errors"

var (
	// ErrWrongSchema means a normalizer was handed a detection of a
	// different schema kind. This is a caller bug, not a data problem.
	ErrWrongSchema = errors.New("detection schema kind does not match normalizer")
	// ErrMissingColumn means the column map lacks a field the normalizer
	// cannot work without.
	ErrMissingColumn = errors.New("required column missing from column map")
)
