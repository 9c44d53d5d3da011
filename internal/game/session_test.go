package game

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

func TestMain(m *testing.M) {
	minimax.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", minimax.SeedGeneratorFn())

	os.Exit(m.Run())
}

func TestHumanStartsAsX(t *testing.T) {
	s := New(Human, minimax.New(nil), nil)

	if s.HumanSymbol() != board.X || s.BotSymbol() != board.O {
		t.Fatalf("human should be x, got human=%v bot=%v", s.HumanSymbol(), s.BotSymbol())
	}
	if _, err := s.PlayBot(); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("bot played before the human: %v", err)
	}
	if _, err := s.OpeningMove(); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("opening move with human starting: %v", err)
	}

	if err := s.PlayHuman(board.B2); err != nil {
		t.Fatal(err)
	}
	if err := s.PlayHuman(board.A3); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("human played twice: %v", err)
	}

	move, err := s.PlayBot()
	if err != nil {
		t.Fatal(err)
	}
	if s.Board().Cell(move) != board.O {
		t.Fatalf("bot move %v not placed as o on %s", move, s.Board())
	}
	if s.Turn() != Human {
		t.Fatalf("turn should pass to the human")
	}
}

func TestPlayHumanErrors(t *testing.T) {
	s := New(Human, minimax.New(nil), nil)

	if err := s.PlayHuman(9); !errors.Is(err, board.ErrOutOfRange) {
		t.Errorf("index 9: err=%v, want ErrOutOfRange", err)
	}
	if err := s.PlayHuman(board.NoMove); !errors.Is(err, board.ErrOutOfRange) {
		t.Errorf("index -1: err=%v, want ErrOutOfRange", err)
	}
	if s.Turn() != Human {
		t.Fatal("rejected move passed the turn")
	}

	if err := s.PlayHuman(board.A1); err != nil {
		t.Fatal(err)
	}
	move, err := s.PlayBot()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.PlayHuman(move); !errors.Is(err, ErrCellTaken) {
		t.Errorf("taken cell %v: err=%v, want ErrCellTaken", move, err)
	}
}

func TestOpeningMove(t *testing.T) {
	seen := map[board.Index]bool{}
	for seed := int64(0); seed < 50; seed++ {
		s := New(Bot, minimax.New(nil), rand.New(rand.NewSource(seed)))
		if s.BotSymbol() != board.X {
			t.Fatalf("starting bot should play x")
		}

		move, err := s.OpeningMove()
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Contains(openingCells[:], move) {
			t.Fatalf("opening move %v is neither a corner nor the center", move)
		}
		if s.Board().Cell(move) != board.X || s.Board().Count(board.X) != 1 {
			t.Fatalf("opening move not placed: %s", s.Board())
		}
		if _, err := s.OpeningMove(); !errors.Is(err, ErrNotYourTurn) {
			t.Fatalf("second opening move: %v", err)
		}
		seen[move] = true
	}

	if len(seen) < 2 {
		t.Errorf("opening move never varies: %v", seen)
	}
}

func TestPerfectBotNeverLoses(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for game := 0; game < 10; game++ {
		starting := Human
		if game%2 == 1 {
			starting = Bot
		}
		s := New(starting, minimax.New(Unlimited.Limits()), r)

		if starting == Bot {
			if _, err := s.OpeningMove(); err != nil {
				t.Fatal(err)
			}
		}

		for !s.Over() {
			moves := s.Board().Available().Slice()
			if err := s.PlayHuman(moves[r.Intn(len(moves))]); err != nil {
				t.Fatal(err)
			}
			if s.Over() {
				break
			}
			if _, err := s.PlayBot(); err != nil {
				t.Fatal(err)
			}
		}

		if s.Outcome() == HumanWon || s.Outcome() == Ongoing {
			t.Fatalf("game %d: unexpected outcome %v on %s", game, s.Outcome(), s.Board())
		}
		if err := s.PlayHuman(board.A3); !errors.Is(err, ErrGameOver) {
			t.Fatalf("move after the end: %v", err)
		}
		if _, err := s.PlayBot(); !errors.Is(err, ErrGameOver) {
			t.Fatalf("bot move after the end: %v", err)
		}
	}
}

func TestBotWithoutMoveKeepsTurn(t *testing.T) {
	s := New(Human, minimax.New(minimax.DefaultLimits().SetDepth(0)), nil)

	if err := s.PlayHuman(board.A3); err != nil {
		t.Fatal(err)
	}
	move, err := s.PlayBot()
	if !errors.Is(err, ErrNoBotMove) || move != board.NoMove {
		t.Fatalf("PlayBot()=%v, %v, want NoMove, ErrNoBotMove", move, err)
	}
	if s.Turn() != Bot {
		t.Fatal("turn passed to the human without a bot move")
	}
	if err := s.PlayHuman(board.B3); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("human moved twice in a row: %v", err)
	}

	// a usable engine picks up the same turn
	s.Engine().SetLimits(Hard.Limits())
	if _, err := s.PlayBot(); err != nil {
		t.Fatal(err)
	}
	if s.Board().Count(board.O) != 1 || s.Turn() != Human {
		t.Fatalf("bot move not played: %s", s.Board())
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"unlimited", Unlimited, false},
		{"-1", Unlimited, false},
		{"1", VeryEasy, false},
		{" 4 ", Hard, false},
		{"0", Unlimited, true},
		{"5", Unlimited, true},
		{"hard", Unlimited, true},
	} {
		got, err := ParseDifficulty(tc.in)
		if tc.wantErr && !errors.Is(err, ErrDifficulty) {
			t.Errorf("ParseDifficulty(%q) err=%v, want ErrDifficulty", tc.in, err)
			continue
		}
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) err=%v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := DifficultyFromDepth(0); !errors.Is(err, ErrDifficulty) {
		t.Errorf("depth 0 accepted: %v", err)
	}
	if d, err := DifficultyFromDepth(-1); err != nil || d != Unlimited {
		t.Errorf("DifficultyFromDepth(-1)=%v, %v", d, err)
	}

	if Medium.Limits().Depth != 3 || !Unlimited.Limits().Infinite() {
		t.Error("difficulty limits mismatch")
	}
}

func TestParseStartingPlayer(t *testing.T) {
	if s, err := ParseStartingPlayer("Bot"); err != nil || s != Bot {
		t.Errorf("got %v, %v", s, err)
	}
	if s, err := ParseStartingPlayer("human"); err != nil || s != Human {
		t.Errorf("got %v, %v", s, err)
	}
	if _, err := ParseStartingPlayer("nobody"); err == nil {
		t.Error("expected an error")
	}
}
