package minimax

import (
	"math"
	"strconv"

	"github.com/IlikeChooros/go-minimax/pkg/board"
)

// Heuristic evaluation of a position, positive favours X, negative favours O
type Score float64

var (
	WinScore  = Score(math.Inf(1))
	LossScore = Score(math.Inf(-1))
)

const DrawScore Score = 0

func (s Score) String() string {
	switch {
	case math.IsInf(float64(s), 1):
		return "+inf"
	case math.IsInf(float64(s), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// Whether the score is a forced win for either side
func (s Score) IsMate() bool {
	return math.IsInf(float64(s), 0)
}

// Score of a cutoff node. The depth offset is meant to prefer quicker wins,
// but it is absorbed by the infinite magnitude, so every win scores exactly WinScore.
func evaluate(b board.Board, depth int) Score {
	switch b.Winner() {
	case board.X:
		return WinScore - Score(depth)
	case board.O:
		return LossScore + Score(depth)
	}
	return DrawScore
}

// Scores are written as text so that infinite values survive JSON and YAML encoding
func (s Score) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
