package minimax

import "github.com/IlikeChooros/go-minimax/pkg/board"

// Evaluation of a single root move
type RootMoveInfo struct {
	Move  board.Index
	Score Score
	Nodes uint64 // nodes visited so far in this search
}

type SearchStats struct {
	Nodes     uint64
	Leaves    uint64
	MaxDepth  int
	TimeMs    int
	Nps       uint64
	BestMove  board.Index
	BestScore Score
	Lines     []RootLine
}

type RootMoveFunc func(RootMoveInfo)

// Listener function callback, will recieve the statistics of the finished search
type ListenerFunc func(SearchStats)

type StatsListener struct {
	// called after each root move is evaluated
	onRootMove RootMoveFunc

	// called once the search ends, after the move callback
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

func (listener *StatsListener) OnRootMove(onRootMove RootMoveFunc) *StatsListener {
	listener.onRootMove = onRootMove
	return listener
}

func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeRootMove(info RootMoveInfo) {
	if listener.onRootMove != nil {
		listener.onRootMove(info)
	}
}

func (listener *StatsListener) invokeStop(stats SearchStats) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}
