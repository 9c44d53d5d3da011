package board

import "errors"

var (
	ErrOutOfRange = errors.New("board: cell index out of range")
	ErrNotation   = errors.New("board: invalid notation")
)
