package bench

import (
	"math/rand"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Anything that can choose a move in the arena, X is always the maximizing side
type Player interface {
	Name() string
	BestMove(b board.Board, maximizing bool) board.Index
	// Independent copy, each worker plays with its own
	Clone() Player
}

type EnginePlayer struct {
	name   string
	engine *minimax.Engine
}

func NewEnginePlayer(name string, engine *minimax.Engine) *EnginePlayer {
	return &EnginePlayer{name: name, engine: engine}
}

func (p *EnginePlayer) Name() string {
	return p.name
}

func (p *EnginePlayer) BestMove(b board.Board, maximizing bool) board.Index {
	move := board.NoMove
	p.engine.PlayBestMove(b, 0, maximizing, func(m board.Index) {
		move = m
	})
	return move
}

func (p *EnginePlayer) Clone() Player {
	return NewEnginePlayer(p.name, p.engine.Clone())
}

// Plays uniformly random available cells
type RandomPlayer struct {
	name string
	rand *rand.Rand
}

func NewRandomPlayer(name string) *RandomPlayer {
	return &RandomPlayer{name: name, rand: rand.New(rand.NewSource(minimax.SeedGeneratorFn()))}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) BestMove(b board.Board, _ bool) board.Index {
	moves := b.Available()
	if moves.Len() == 0 {
		return board.NoMove
	}
	return moves.Slice()[p.rand.Intn(moves.Len())]
}

func (p *RandomPlayer) Clone() Player {
	return NewRandomPlayer(p.name)
}
