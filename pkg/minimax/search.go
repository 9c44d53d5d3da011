package minimax

import (
	"github.com/sirupsen/logrus"

	"github.com/IlikeChooros/go-minimax/pkg/board"
)

// State of a single top-level call, nothing here outlives it
type search struct {
	engine *Engine
	fn     MoveFunc
	timer  *_Timer
	table  *RootTable
	stats  SearchStats
}

func newSearch(e *Engine, fn MoveFunc) *search {
	return &search{
		engine: e,
		fn:     fn,
		timer:  _NewTimer(),
	}
}

// Recursive minimax, the root frame (depth 0) records the score of each move
// and reports the chosen one
func (s *search) minimax(b board.Board, depth int, maximizing bool) Score {
	if depth == 0 {
		s.table = newRootTable()
		s.timer.Reset()
	}

	s.stats.Nodes++
	s.stats.MaxDepth = max(s.stats.MaxDepth, depth)

	// Cutoff
	if b.IsTerminal() || depth == s.engine.limits.Depth {
		s.stats.Leaves++
		score := evaluate(b, depth)
		if depth == 0 {
			s.finish(board.NoMove, score)
		}
		return score
	}

	best, symbol := LossScore, board.X
	if !maximizing {
		best, symbol = WinScore, board.O
	}

	moves := b.Available()
	for _, move := range moves.Slice() {
		// Create a child node, on a copy of the board
		child := b
		child.Place(move, symbol)

		score := s.minimax(child, depth+1, !maximizing)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}

		if depth == 0 {
			s.table.Add(score, move)
			s.engine.listener.invokeRootMove(RootMoveInfo{
				Move:  move,
				Score: score,
				Nodes: s.stats.Nodes,
			})
		}
	}

	if depth == 0 {
		s.finish(s.pick(best), best)
	}

	return best
}

// Uniformly random move out of the best score's bucket
func (s *search) pick(best Score) board.Index {
	moves := s.table.Moves(best)
	if len(moves) == 0 {
		return board.NoMove
	}
	return moves[s.engine.rand.Intn(len(moves))]
}

// Report the result of the root call, invoked once per top-level call
func (s *search) finish(move board.Index, score Score) {
	elapsed := s.timer.Deltatime()
	s.stats.TimeMs = elapsed
	s.stats.Nps = s.stats.Nodes * 1000 / uint64(elapsed)
	s.stats.BestMove = move
	s.stats.BestScore = score
	s.stats.Lines = s.table.Lines()

	logrus.WithFields(logrus.Fields{
		"move":  move,
		"score": score,
		"nodes": s.stats.Nodes,
		"depth": s.engine.limits.Depth,
	}).Debug("minimax search finished")

	if s.fn != nil {
		s.fn(move)
	}
	s.engine.listener.invokeStop(s.stats)
}
