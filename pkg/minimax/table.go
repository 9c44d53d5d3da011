package minimax

import "github.com/IlikeChooros/go-minimax/pkg/board"

// All root moves that reached the same score, in evaluation order
type RootLine struct {
	Score Score         `json:"score" yaml:"score"`
	Moves []board.Index `json:"moves" yaml:"moves"`
}

// Score to moves mapping of a single root call. Lines are kept in the order
// their score was first seen.
type RootTable struct {
	lines []RootLine
}

func newRootTable() *RootTable {
	return &RootTable{lines: make([]RootLine, 0, board.NumCells)}
}

func (t *RootTable) find(score Score) int {
	for i := range t.lines {
		if t.lines[i].Score == score {
			return i
		}
	}
	return -1
}

// Append the move to the bucket of given score
func (t *RootTable) Add(score Score, move board.Index) {
	if i := t.find(score); i >= 0 {
		t.lines[i].Moves = append(t.lines[i].Moves, move)
		return
	}
	t.lines = append(t.lines, RootLine{Score: score, Moves: []board.Index{move}})
}

// Moves that reached exactly this score
func (t *RootTable) Moves(score Score) []board.Index {
	if i := t.find(score); i >= 0 {
		return t.lines[i].Moves
	}
	return nil
}

// Deep copy of the lines
func (t *RootTable) Lines() []RootLine {
	lines := make([]RootLine, len(t.lines))
	for i, line := range t.lines {
		lines[i] = RootLine{Score: line.Score, Moves: append([]board.Index(nil), line.Moves...)}
	}
	return lines
}

func (t *RootTable) Len() int {
	return len(t.lines)
}
