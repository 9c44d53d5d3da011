package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

/*
Arena benchmark subpackage, plays a series of games between two players
(usually two engines with different limits), picking the first mover of each game at random.
*/

var ErrIllegalMove = errors.New("bench: player chose an unavailable cell")

type VersusArena struct {
	VersusArenaStats
	Player1  Player
	Player2  Player
	NGames   uint
	NThreads uint
	Position board.Board
	wg       sync.WaitGroup
	finished atomic.Bool
	ctx      context.Context
	errMu    sync.Mutex
	err      error
}

func NewVersusArena(p1, p2 Player) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		Position: board.New(),
		ctx:      context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
}

func (va *VersusArena) Wait() {
	va.wg.Wait()

	for {
		if va.finished.Load() {
			break
		}
		runtime.Gosched()
	}
}

// First error a worker ran into, nil if none
func (va *VersusArena) Err() error {
	va.errMu.Lock()
	defer va.errMu.Unlock()
	return va.err
}

func (va *VersusArena) setErr(err error) {
	va.errMu.Lock()
	defer va.errMu.Unlock()
	if va.err == nil {
		va.err = err
	}
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          int(va.NThreads),
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	}
}

// Start equally distributed work between worker goroutines, returns immediately, use Wait
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = DefaultListener{}
	}

	va.finished.Store(false)
	va.NThreads = max(va.NThreads, 1)
	listener.OnStart()

	nGames := va.NGames / va.NThreads
	rest := va.NGames % va.NThreads

	// All workers have to be registered before any of them can finish
	va.wg.Add(int(va.NThreads))
	for i := uint(0); i < va.NThreads; i++ {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}

		// Always use a clone, players aren't safe for concurrent use
		go va.worker(int(i), int(nGames+delta), listener.Clone(), va.Player1.Clone(), va.Player2.Clone())
	}
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike, p1, p2 Player) {
	r := rand.New(rand.NewSource(minimax.SeedGeneratorFn() + int64(id)))
	localStats := VersusArenaStats{}

Loop:
	for i := 0; i < nGames; i++ {
		select {
		case <-va.ctx.Done():
			break Loop
		default:
			// continue
		}

		p1First := r.Int()%2 == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		listener.OnGameStart()
		record, err := va.playGame(first, second, listener, VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i,
			P1Name:        p1.Name(),
			P2Name:        p2.Name(),
		})
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				va.setErr(err)
			}
			break Loop
		}

		result := toAgentResult(record.Outcome, p1First)
		va.add(result, record.Outcome)
		localStats.add(result, record.Outcome)

		listener.OnFinishedGame(VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i + 1,
			GameMoveNum:   len(record.Moves),
			Moves:         record.Moves,
			Result:        result,
			P1Wins:        localStats.P1Wins(),
			P2Wins:        localStats.P2Wins(),
			Draws:         localStats.Draws(),
			P1Name:        p1.Name(),
			P2Name:        p2.Name(),
		})
	}

	listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: localStats.Total(),
		P1Wins:        localStats.P1Wins(),
		P2Wins:        localStats.P2Wins(),
		Draws:         localStats.Draws(),
		P1Name:        p1.Name(),
		P2Name:        p2.Name(),
	})
	va.wg.Done()

	if id == 0 {
		va.wg.Wait()
		listener.Summary(va.Summary())
		listener.OnEnd()
		va.finished.Store(true)
	}
}

func (va *VersusArena) playGame(first, second Player, listener ListenerLike, info VersusWorkerInfo) (GameRecord, error) {
	return playGame(va.ctx, first, second, va.Position, func(moves []board.Index) {
		info.Moves = moves
		info.GameMoveNum = len(moves)
		listener.OnMoveMade(info)
	})
}

// Play a single game from the start position, 'first' plays X (maximizing)
// and 'second' plays O. The side to move is derived from the start position.
func PlayGame(ctx context.Context, first, second Player, start board.Board) (GameRecord, error) {
	return playGame(ctx, first, second, start, nil)
}

func playGame(ctx context.Context, first, second Player, start board.Board, onMove func([]board.Index)) (GameRecord, error) {
	b := start
	moves := make([]board.Index, 0, board.NumCells)

	for !b.IsTerminal() {
		select {
		case <-ctx.Done():
			return GameRecord{Moves: moves, Final: b, Outcome: computeOutcome(b)}, ctx.Err()
		default:
			// continue
		}

		player, symbol := first, board.X
		if b.SideToMove() == board.O {
			player, symbol = second, board.O
		}

		move := player.BestMove(b, symbol == board.X)
		if !b.Place(move, symbol) {
			return GameRecord{Moves: moves, Final: b}, fmt.Errorf("%w: %s played %v on %s", ErrIllegalMove, player.Name(), move, b)
		}
		moves = append(moves, move)

		if onMove != nil {
			onMove(moves)
		}
	}

	return GameRecord{Moves: moves, Final: b, Outcome: computeOutcome(b)}, nil
}
