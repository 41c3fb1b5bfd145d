package main

import "errors"

// Sentinel errors for the CLI's own argument/IO handling, distinct from the
// factor/suffixtree package errors they wrap via fmt.Errorf("%w: ...").
var (
	ErrInputInvalid = errors.New("costlz: invalid input")
	ErrIOFailure    = errors.New("costlz: I/O failure")
	ErrInvariant    = errors.New("costlz: internal invariant violated")
)
