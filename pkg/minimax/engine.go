// Package minimax chooses tic-tac-toe moves with an exhaustive, depth-limited minimax search.
//
// X is the maximizing player and O the minimizing one. The engine never mutates the
// board it is given, every branch works on its own copy. The chosen move is reported
// through a callback, invoked exactly once per top-level call, after the whole tree
// has been evaluated. Root moves sharing the best score are tie-broken uniformly at
// random, with an injectable random source.
package minimax

import (
	"math/rand"

	"github.com/IlikeChooros/go-minimax/pkg/board"
)

// Receives the chosen cell, board.NoMove if the root position allowed no choice
type MoveFunc func(move board.Index)

// Result of a root call, see Engine.Analyze
type Analysis struct {
	Move  board.Index
	Score Score
	Lines []RootLine
	Stats SearchStats
}

// Not safe for concurrent use, use Clone to get an engine for another goroutine
type Engine struct {
	limits   *Limits
	rand     *rand.Rand
	listener StatsListener
}

// Create new engine, nil limits mean DefaultLimits
func New(limits *Limits) *Engine {
	if limits == nil {
		limits = DefaultLimits()
	}

	return &Engine{
		limits:   limits,
		rand:     rand.New(rand.NewSource(SeedGeneratorFn())),
		listener: NewStatsListener(),
	}
}

// Sets the random generator used to break ties between equally scored root moves
func (e *Engine) SetRand(r *rand.Rand) {
	if r != nil {
		e.rand = r
	}
}

func (e *Engine) SetLimits(limits *Limits) {
	if limits != nil {
		e.limits = limits
	}
}

func (e *Engine) Limits() *Limits {
	return e.limits
}

func (e *Engine) SetListener(listener StatsListener) {
	e.listener = listener
}

func (e *Engine) StatsListener() *StatsListener {
	return &e.listener
}

// Independent engine with a copy of the limits and listener, and a freshly seeded random source
func (e *Engine) Clone() *Engine {
	limits := *e.limits
	return &Engine{
		limits:   &limits,
		rand:     rand.New(rand.NewSource(SeedGeneratorFn())),
		listener: e.listener,
	}
}

// Search the position for the side to move (X if maximizing, O otherwise), and report
// the chosen cell through fn. With depth 0 this is a root call: fn is invoked exactly once,
// synchronously, before returning. Any other starting depth evaluates the position as an
// inner node of a larger search, without recording root moves or invoking fn.
// A negative depth is treated as 0.
//
// Returns the minimax score of the position.
func (e *Engine) PlayBestMove(b board.Board, depth int, maximizing bool, fn MoveFunc) Score {
	depth = max(depth, 0)
	s := newSearch(e, fn)
	return s.minimax(b, depth, maximizing)
}

// Root call returning the chosen cell instead of invoking a callback
func (e *Engine) BestMove(b board.Board, maximizing bool) (board.Index, Score) {
	move := board.NoMove
	score := e.PlayBestMove(b, 0, maximizing, func(m board.Index) {
		move = m
	})
	return move, score
}

// Root call, returning the chosen move together with every root move's score
// and the search statistics
func (e *Engine) Analyze(b board.Board, maximizing bool) Analysis {
	analysis := Analysis{Move: board.NoMove}
	s := newSearch(e, func(m board.Index) {
		analysis.Move = m
	})

	analysis.Score = s.minimax(b, 0, maximizing)
	analysis.Stats = s.stats
	analysis.Lines = s.stats.Lines
	return analysis
}
