package bench

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"

	"github.com/IlikeChooros/go-minimax/pkg/board"
)

// Arena callbacks. Every worker gets its own Clone, so implementations sharing
// state between clones must synchronize it.
type ListenerLike interface {
	OnStart()
	OnGameStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	// Called once, by the first worker, after all workers are done
	Summary(summary VersusSummaryInfo)
	OnEnd()
	Clone() ListenerLike
}

type DefaultListener struct{}

func (DefaultListener) OnStart() {}
func (DefaultListener) OnGameStart() {}
func (DefaultListener) OnMoveMade(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo) {}
func (DefaultListener) OnEnd() {}
func (d DefaultListener) Clone() ListenerLike { return d }

func formatMoves(moves []board.Index) string {
	parts := make([]string, len(moves))
	for i, mv := range moves {
		parts[i] = mv.String()
	}
	return strings.Join(parts, " ")
}

// Prints finished games and the summary, coloured when the writer supports it
type TermListener struct {
	DefaultListener
	out *termenv.Output
	mu  *sync.Mutex
}

func NewTermListener(w io.Writer, opts ...termenv.OutputOption) *TermListener {
	return &TermListener{
		out: termenv.NewOutput(w, opts...),
		mu:  &sync.Mutex{},
	}
}

func (l *TermListener) colored(result VersusMatchResult) string {
	s := l.out.String(result.String())
	switch result {
	case VersusPl1Win:
		s = s.Foreground(l.out.Color("2"))
	case VersusPl2Win:
		s = s.Foreground(l.out.Color("1"))
	default:
		s = s.Foreground(l.out.Color("3"))
	}
	return s.Bold().String()
}

func (l *TermListener) OnFinishedGame(info VersusWorkerInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "[worker %d] game %d/%d %s vs %s: %s (%s)\n",
		info.WorkerID, info.FinishedGames, info.NGames,
		info.P1Name, info.P2Name, l.colored(info.Result), formatMoves(info.Moves))
}

func (l *TermListener) Summary(summary VersusSummaryInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	title := l.out.String(fmt.Sprintf("%s vs %s", summary.P1Name, summary.P2Name)).Bold()
	fmt.Fprintf(l.out, "%s: %d games, +%d -%d =%d (first mover %d, second mover %d)\n",
		title, summary.TotalGames, summary.P1Wins, summary.P2Wins, summary.Draws,
		summary.FirstToMoveWins, summary.SecondToMoveWins)
}

func (l *TermListener) Clone() ListenerLike {
	return &TermListener{out: l.out, mu: l.mu}
}

// Logs arena progress with logrus, finished games at debug level
type LogListener struct {
	DefaultListener
}

func (LogListener) OnFinishedGame(info VersusWorkerInfo) {
	logrus.WithFields(logrus.Fields{
		"worker": info.WorkerID,
		"game":   info.FinishedGames,
		"result": info.Result.String(),
		"moves":  formatMoves(info.Moves),
	}).Debug("arena game finished")
}

func (LogListener) OnFinishedWork(info VersusWorkerInfo) {
	logrus.WithFields(logrus.Fields{
		"worker": info.WorkerID,
		"games":  info.NGames,
		"p1":     info.P1Wins,
		"p2":     info.P2Wins,
		"draws":  info.Draws,
	}).Debug("arena worker finished")
}

func (LogListener) Summary(summary VersusSummaryInfo) {
	logrus.WithFields(logrus.Fields{
		"games": summary.TotalGames,
		"p1":    summary.P1Wins,
		"p2":    summary.P2Wins,
		"draws": summary.Draws,
	}).Info("arena finished")
}

func (l LogListener) Clone() ListenerLike {
	return l
}
