package board

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationCrossWon:
		return "x won"
	case TerminationCircleWon:
		return "o won"
	case TerminationDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// Winning lines: rows, then columns, then diagonals. Winner scans them in this order.
var Lines = [8][3]Index{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Symbol of the first complete line, or None
func (b Board) Winner() Symbol {
	if line, ok := b.WinningLine(); ok {
		return b.cells[line[0]]
	}
	return None
}

// First line holding three equal, non-empty symbols
func (b Board) WinningLine() ([3]Index, bool) {
	for _, line := range Lines {
		s := b.cells[line[0]]
		if s != Empty && s == b.cells[line[1]] && s == b.cells[line[2]] {
			return line, true
		}
	}
	return [3]Index{}, false
}

// No empty cells left and nobody won
func (b Board) IsTie() bool {
	return b.Available().Len() == 0 && b.Winner() == None
}

// Someone won or it's a tie
func (b Board) IsTerminal() bool {
	return b.Winner() != None || b.IsTie()
}

// Get the termination reason
func (b Board) Termination() Termination {
	switch b.Winner() {
	case X:
		return TerminationCrossWon
	case O:
		return TerminationCircleWon
	}

	if b.IsTie() {
		return TerminationDraw
	}
	return TerminationNone
}
