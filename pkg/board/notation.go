package board

import (
	"fmt"
	"strings"
)

// String notation of the board, rows top to bottom separated by '/',
// 'x' and 'o' for the marks and '.' for an empty cell.
//
// For example, let the board be:
//
//	o | x | x
//	----------
//	x | o |
//	----------
//	o |   |
//
// then its notation is:
//
//	oxx/xo./o..
func (b Board) String() string {
	builder := strings.Builder{}
	for i, c := range b.cells {
		if i > 0 && i%3 == 0 {
			builder.WriteByte('/')
		}
		builder.WriteString(c.String())
	}
	return builder.String()
}

// Parse the notation produced by String. Empty cells may also be written as '-' or '_',
// and the row separators may be omitted.
func ParseNotation(notation string) (Board, error) {
	b := Board{}
	i := 0
	rowLen := 0

	for pos, r := range strings.TrimSpace(notation) {
		if r == '/' {
			if rowLen != 3 {
				return Board{}, fmt.Errorf("%w: row ending at %d has %d cells", ErrNotation, pos, rowLen)
			}
			rowLen = 0
			continue
		}

		if i >= NumCells {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", ErrNotation, NumCells, notation)
		}

		switch r {
		case 'x', 'X':
			b.cells[i] = X
		case 'o', 'O', '0':
			b.cells[i] = O
		case '.', '-', '_':
			b.cells[i] = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at %d", ErrNotation, r, pos)
		}
		i++
		rowLen++
	}

	if i != NumCells {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrNotation, i, NumCells)
	}

	return b, nil
}

// Multi-line grid, handy for logs
func (b Board) Pretty() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			fmt.Fprintf(&sb, " %s ", b.cells[row*3+col])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
