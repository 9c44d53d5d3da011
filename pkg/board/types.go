package board

import (
	"fmt"
	"strings"
)

// Number of cells on the board
const NumCells = 9

// Cell index, row-major, 0 is the top-left corner and 8 the bottom-right one
type Index int

// Mark occupying a cell
type Symbol uint8

const (
	Empty Symbol = 0
	X     Symbol = 1 // maximizing player
	O     Symbol = 2 // minimizing player
)

// Returned by Winner when no line is complete, never equal to X or O
const None = Empty

// Returned by searches that could not choose any cell
const NoMove Index = -1

// Enum for the squares
const (
	A3 Index = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

func (s Symbol) String() string {
	switch s {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return "."
	}
}

// Whether that's a mark a player can place
func (s Symbol) IsPlayer() bool {
	return s == X || s == O
}

// The other player's symbol, Empty stays Empty
func (s Symbol) Opponent() Symbol {
	switch s {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Validate reports if the index addresses a cell. It may still be occupied.
func (i Index) Validate() error {
	if i < 0 || i >= NumCells {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, int(i), NumCells)
	}
	return nil
}

// Square name, like 'b2' for the center
func (i Index) String() string {
	if i.Validate() != nil {
		return fmt.Sprintf("Index(%d)", int(i))
	}
	return fmt.Sprintf("%c%d", 'a'+rune(i%3), 3-int(i/3))
}

// Parse a square name ('a3'..'c1') or a raw index ('0'..'8')
func ParseIndex(s string) (Index, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		i := Index(s[0] - '0')
		if err := i.Validate(); err != nil {
			return NoMove, err
		}
		return i, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'c' || s[1] < '1' || s[1] > '3' {
		return NoMove, fmt.Errorf("%w: %q is not a square", ErrOutOfRange, s)
	}
	return Index(int('3'-s[1])*3 + int(s[0]-'a')), nil
}
