package suffixtree

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrEmptyInput indicates that New was called with a zero-length input.
	ErrEmptyInput = errors.New("suffixtree: input is empty")

	// ErrZeroByte indicates the input contains a zero byte, reserved as the
	// end-of-string sentinel.
	ErrZeroByte = errors.New("suffixtree: input contains a reserved zero byte")

	// ErrBadCost indicates a non-positive COST ceiling was supplied.
	ErrBadCost = errors.New("suffixtree: COST must be positive")

	// ErrCostExceeded indicates a position's cost was computed above the COST
	// ceiling — a bug in the caller's source selection, since the Searcher
	// must never offer a source that would push a position's cost past COST.
	ErrCostExceeded = errors.New("suffixtree: position cost exceeds COST ceiling")

	// ErrInvalidSource indicates the Searcher reached a node whose chosen
	// source text position is 0, which the annotation invariants forbid.
	ErrInvalidSource = errors.New("suffixtree: chosen source position is 0")
)
