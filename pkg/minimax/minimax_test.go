package minimax

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/board"
)

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())

	os.Exit(m.Run())
}

func mustParse(t *testing.T, notation string) board.Board {
	t.Helper()
	b, err := board.ParseNotation(notation)
	if err != nil {
		t.Fatalf("ParseNotation(%q): %v", notation, err)
	}
	return b
}

func movesWithScore(lines []RootLine, score Score) []board.Index {
	for _, line := range lines {
		if line.Score == score {
			return line.Moves
		}
	}
	return nil
}

func TestEmptyBoardAllMovesDraw(t *testing.T) {
	engine := New(DefaultLimits())
	analysis := engine.Analyze(board.New(), true)

	if analysis.Score != DrawScore {
		t.Fatalf("score=%v, want 0", analysis.Score)
	}
	if len(analysis.Lines) != 1 {
		t.Fatalf("expected a single score bucket, got %+v", analysis.Lines)
	}

	moves := analysis.Lines[0].Moves
	if len(moves) != board.NumCells {
		t.Fatalf("expected all %d moves in the bucket, got %v", board.NumCells, moves)
	}
	for i, mv := range moves {
		if mv != board.Index(i) {
			t.Fatalf("bucket not in evaluation order: %v", moves)
		}
	}
	if analysis.Move < 0 || analysis.Move >= board.NumCells {
		t.Fatalf("chosen move %d out of range", analysis.Move)
	}

	t.Logf("move %v nodes %d time %dms nps %d", analysis.Move, analysis.Stats.Nodes, analysis.Stats.TimeMs, analysis.Stats.Nps)
}

func TestSelfPlayIsTie(t *testing.T) {
	for game := 0; game < 3; game++ {
		x := New(DefaultLimits())
		o := New(DefaultLimits())
		x.SetRand(rand.New(rand.NewSource(int64(game))))
		o.SetRand(rand.New(rand.NewSource(int64(100 + game))))

		b := board.New()
		maximizing := true
		for !b.IsTerminal() {
			engine, symbol := x, board.X
			if !maximizing {
				engine, symbol = o, board.O
			}

			engine.PlayBestMove(b, 0, maximizing, func(move board.Index) {
				if !b.Place(move, symbol) {
					t.Fatalf("engine chose unavailable cell %v on %s", move, b)
				}
			})
			maximizing = !maximizing
		}

		if !b.IsTie() || b.Winner() != board.None {
			t.Fatalf("game %d: optimal self-play should tie, got %s (%v)", game, b, b.Termination())
		}
	}
}

func TestDepthOneTakesImmediateWin(t *testing.T) {
	b := mustParse(t, "xx./oo./...")
	engine := New(DefaultLimits().SetDepth(1))

	analysis := engine.Analyze(b, true)
	if analysis.Move != 2 || analysis.Score != WinScore {
		t.Fatalf("x: move=%v score=%v, want 2 +inf", analysis.Move, analysis.Score)
	}
	if moves := movesWithScore(analysis.Lines, DrawScore); len(moves) != 4 {
		t.Fatalf("x: other moves should score 0, lines %+v", analysis.Lines)
	}

	analysis = engine.Analyze(b, false)
	if analysis.Move != 5 || analysis.Score != LossScore {
		t.Fatalf("o: move=%v score=%v, want 5 -inf", analysis.Move, analysis.Score)
	}
}

func TestDepthOneIgnoresThreats(t *testing.T) {
	// o threatens the middle row, but one ply can't see it
	b := mustParse(t, "x../oo./x..")
	engine := New(DefaultLimits().SetDepth(1))

	analysis := engine.Analyze(b, true)
	if analysis.Score != DrawScore || len(analysis.Lines) != 1 {
		t.Fatalf("expected a single 0 bucket, got %v %+v", analysis.Score, analysis.Lines)
	}

	// Full depth has to block
	analysis = New(DefaultLimits()).Analyze(b, true)
	if analysis.Move != 5 {
		t.Fatalf("full depth should block at 5, got %v (%+v)", analysis.Move, analysis.Lines)
	}
}

func TestCornerOpeningReply(t *testing.T) {
	// After a corner opening, the center is the only reply that doesn't lose
	b := mustParse(t, "x../.../...")
	analysis := New(DefaultLimits()).Analyze(b, false)

	if analysis.Move != board.B2 || analysis.Score != DrawScore {
		t.Fatalf("move=%v score=%v, want b2 0 (%+v)", analysis.Move, analysis.Score, analysis.Lines)
	}
}

func TestTieBreakRandomness(t *testing.T) {
	engine := New(DefaultLimits().SetDepth(1))
	engine.SetRand(rand.New(rand.NewSource(7)))

	seen := map[board.Index]int{}
	for i := 0; i < 100; i++ {
		move, score := engine.BestMove(board.New(), true)
		if score != DrawScore {
			t.Fatalf("score=%v, want 0", score)
		}
		if move < 0 || move >= board.NumCells {
			t.Fatalf("move %v outside the best bucket", move)
		}
		seen[move]++
	}

	if len(seen) < 2 {
		t.Fatalf("tie-break always picked the same move: %v", seen)
	}
	t.Logf("tie-break distribution %v", seen)
}

func TestTieBreakStaysInBestBucket(t *testing.T) {
	// x completes the top row at 2 or the first column at 3
	b := mustParse(t, "xx./.../xo.")
	engine := New(DefaultLimits().SetDepth(1))

	for seed := int64(0); seed < 50; seed++ {
		engine.SetRand(rand.New(rand.NewSource(seed)))
		analysis := engine.Analyze(b, true)

		best := movesWithScore(analysis.Lines, WinScore)
		if len(best) != 2 || best[0] != 2 || best[1] != 3 {
			t.Fatalf("expected +inf bucket [2 3], got %+v", analysis.Lines)
		}
		if analysis.Move != 2 && analysis.Move != 3 {
			t.Fatalf("seed %d: move %v outside the best bucket", seed, analysis.Move)
		}
	}
}

func TestSameSeedSameMove(t *testing.T) {
	e1 := New(DefaultLimits().SetDepth(2))
	e2 := New(DefaultLimits().SetDepth(2))
	e1.SetRand(rand.New(rand.NewSource(3)))
	e2.SetRand(rand.New(rand.NewSource(3)))

	for i := 0; i < 20; i++ {
		m1, _ := e1.BestMove(board.New(), true)
		m2, _ := e2.BestMove(board.New(), true)
		if m1 != m2 {
			t.Fatalf("same seed gave different moves: %v vs %v", m1, m2)
		}
	}
}

func TestCallbackInvokedOnce(t *testing.T) {
	for _, tc := range []struct {
		name     string
		notation string
		depth    int
		anyMove  bool
		want     board.Index
		score    Score
	}{
		{"empty-depth1", ".../.../...", 1, true, 0, DrawScore},
		{"x-won-root", "xxx/oo./...", -1, false, board.NoMove, WinScore},
		{"o-won-root", "ooo/xx./x..", -1, false, board.NoMove, LossScore},
		{"tie-root", "xox/xoo/oxx", -1, false, board.NoMove, DrawScore},
		{"max-depth-0", "x../.o./...", 0, false, board.NoMove, DrawScore},
	} {
		t.Run(tc.name, func(t *testing.T) {
			engine := New(DefaultLimits().SetDepth(tc.depth))
			calls := 0
			var got board.Index

			score := engine.PlayBestMove(mustParse(t, tc.notation), 0, true, func(move board.Index) {
				calls++
				got = move
			})

			if calls != 1 {
				t.Fatalf("callback invoked %d times, want 1", calls)
			}
			if score != tc.score {
				t.Fatalf("score=%v, want %v", score, tc.score)
			}
			if !tc.anyMove && got != tc.want {
				t.Fatalf("move=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestInnerCallDoesNotInvokeCallback(t *testing.T) {
	engine := New(DefaultLimits())
	calls := 0

	score := engine.PlayBestMove(mustParse(t, "xx./oo./..."), 3, true, func(board.Index) {
		calls++
	})

	if calls != 0 {
		t.Fatalf("callback invoked %d times for a non-root call", calls)
	}
	if score != WinScore {
		t.Fatalf("score=%v, want +inf", score)
	}
}

func TestNegativeStartDepthIsRootCall(t *testing.T) {
	engine := New(DefaultLimits().SetDepth(2))
	calls := 0
	move := board.NoMove

	engine.PlayBestMove(mustParse(t, "xo./.x./o.."), -1, true, func(m board.Index) {
		calls++
		move = m
	})

	if calls != 1 {
		t.Fatalf("callback invoked %d times, want 1", calls)
	}
	if !mustParse(t, "xo./.x./o..").IsAvailable(move) {
		t.Fatalf("chose unavailable cell %v", move)
	}
}

func TestSearchDoesNotMutateBoard(t *testing.T) {
	b := mustParse(t, "x../.o./...")
	snapshot := b

	engine := New(DefaultLimits())
	engine.PlayBestMove(b, 0, true, func(board.Index) {})

	if b != snapshot {
		t.Fatalf("search mutated the board: %s -> %s", snapshot, b)
	}
}

func TestDepthOffsetIsAbsorbed(t *testing.T) {
	won := mustParse(t, "xxx/oo./...")
	lost := mustParse(t, "ooo/xx./x..")

	for depth := 0; depth < 9; depth++ {
		if s := evaluate(won, depth); s != WinScore {
			t.Fatalf("depth %d: win scored %v, want +inf", depth, s)
		}
		if s := evaluate(lost, depth); s != LossScore {
			t.Fatalf("depth %d: loss scored %v, want -inf", depth, s)
		}
	}

	// An immediate win and a slower forced win land in the same bucket
	b := mustParse(t, "xx./oo./...")
	analysis := New(DefaultLimits()).Analyze(b, true)
	wins := movesWithScore(analysis.Lines, WinScore)

	found := false
	for _, mv := range wins {
		found = found || mv == 2
	}
	if !found {
		t.Fatalf("immediate win missing from the +inf bucket: %+v", analysis.Lines)
	}
	if analysis.Score != WinScore {
		t.Fatalf("score=%v, want +inf", analysis.Score)
	}
	t.Logf("+inf bucket %v", wins)
}

func TestListener(t *testing.T) {
	engine := New(DefaultLimits().SetDepth(1))

	rootMoves := 0
	stops := 0
	var stats SearchStats

	listener := NewStatsListener()
	listener.
		OnRootMove(func(info RootMoveInfo) {
			rootMoves++
			if info.Score != DrawScore {
				t.Errorf("root move %v scored %v", info.Move, info.Score)
			}
		}).
		OnStop(func(s SearchStats) {
			stops++
			stats = s
		})
	engine.SetListener(listener)

	move, _ := engine.BestMove(board.New(), true)

	if rootMoves != board.NumCells || stops != 1 {
		t.Fatalf("root moves %d stops %d, want %d 1", rootMoves, stops, board.NumCells)
	}
	if stats.Nodes != 10 || stats.Leaves != 9 || stats.MaxDepth != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.BestMove != move {
		t.Fatalf("stats move %v, callback move %v", stats.BestMove, move)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	engine := New(DefaultLimits().SetDepth(2))
	clone := engine.Clone()
	clone.Limits().SetDepth(5)

	if engine.Limits().Depth != 2 {
		t.Fatalf("clone shares limits with the original, depth=%d", engine.Limits().Depth)
	}
}
