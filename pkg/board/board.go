// Package board models the 3x3 tic-tac-toe grid: cell state and terminal detection.
//
// Board has value semantics, assigning it takes a full snapshot, so a search can
// branch with a plain copy without ever touching the caller's board.
// It never judges whose turn it is, callers track that themselves.
package board

type Board struct {
	cells [NumCells]Symbol
}

// Empty board
func New() Board {
	return Board{}
}

// Board built from a snapshot of cells
func FromCells(cells [NumCells]Symbol) Board {
	return Board{cells: cells}
}

// Copy of the cells
func (b Board) Cells() [NumCells]Symbol {
	return b.cells
}

// Symbol at given cell, Empty for indices outside the board
func (b Board) Cell(i Index) Symbol {
	if i.Validate() != nil {
		return Empty
	}
	return b.cells[i]
}

// Whether the cell is empty. Out-of-range indices are never available.
func (b Board) IsAvailable(i Index) bool {
	return i.Validate() == nil && b.cells[i] == Empty
}

// Place the symbol on an available cell. Returns false, leaving the board
// unchanged, if the cell is taken, out of range, or the symbol is not X or O.
func (b *Board) Place(i Index, s Symbol) bool {
	if !s.IsPlayer() || !b.IsAvailable(i) {
		return false
	}

	b.cells[i] = s
	return true
}

// Number of cells holding given symbol
func (b Board) Count(s Symbol) int {
	n := 0
	for _, c := range b.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Symbol expected to move next, assuming X started the game
func (b Board) SideToMove() Symbol {
	if b.Count(X) > b.Count(O) {
		return O
	}
	return X
}

// bitmask of the cells holding s, bit i set for cell i
func (b Board) mask(s Symbol) uint {
	var m uint
	for i, c := range b.cells {
		if c == s {
			m |= 1 << i
		}
	}
	return m
}
