package board

import "math/bits"

// Fixed-capacity list of cell indices, in ascending order when produced by Available.
// It's a value, so it can be walked any number of times.
type MoveList struct {
	Moves [NumCells]Index
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv Index) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

func (ml MoveList) Slice() []Index {
	return ml.Moves[:ml.Size]
}

func (ml MoveList) Len() int {
	return int(ml.Size)
}

func (ml MoveList) Contains(mv Index) bool {
	for _, m := range ml.Slice() {
		if m == mv {
			return true
		}
	}
	return false
}

// Ascending list of empty cells
func (b Board) Available() MoveList {
	movelist := MoveList{}

	free := b.mask(Empty)
	for free != 0 {
		movelist.AppendMove(Index(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}
