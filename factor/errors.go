package factor

import "errors"

// Sentinel errors returned by this package. ErrEmptyInput, ErrZeroByte and
// ErrBadCost mirror suffixtree's own (factor.New delegates construction to
// suffixtree.New); ErrCostExceeded and ErrInvalidSource are re-exported here
// so callers never need to import suffixtree just to check an error kind.
var (
	ErrEmptyInput    = errors.New("factor: input is empty")
	ErrZeroByte      = errors.New("factor: input contains a reserved zero byte")
	ErrBadCost       = errors.New("factor: COST must be positive")
	ErrCostExceeded  = errors.New("factor: a phrase would push a position's cost above COST")
	ErrInvalidSource = errors.New("factor: searcher returned an invalid source position")
)
