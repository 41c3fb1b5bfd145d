package segtree

import "errors"

// ErrIndexOutOfRange is returned when Update is called with a position outside [1, n].
var ErrIndexOutOfRange = errors.New("segtree: index out of range")

// ErrInvalidRange is returned when Max is called with an empty or out-of-bounds range.
var ErrInvalidRange = errors.New("segtree: invalid range")
