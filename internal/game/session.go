// Package game tracks a single human versus bot tic-tac-toe game.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

var (
	ErrCellTaken   = errors.New("game: cell is not available, choose another one")
	ErrGameOver    = errors.New("game: the game is over, start another one")
	ErrNotYourTurn = errors.New("game: not your turn")
	ErrNoBotMove   = errors.New("game: the bot found no move to play")
	ErrDifficulty  = errors.New("game: invalid difficulty, use 1-4 or unlimited")
)

type StartingPlayer int

const (
	Human StartingPlayer = iota
	Bot
)

func (s StartingPlayer) String() string {
	if s == Bot {
		return "bot"
	}
	return "human"
}

func ParseStartingPlayer(s string) (StartingPlayer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "player", "me":
		return Human, nil
	case "bot", "computer", "engine":
		return Bot, nil
	}
	return Human, fmt.Errorf("game: unknown starting player %q", s)
}

type Outcome int

const (
	Ongoing Outcome = iota
	HumanWon
	BotWon
	Tie
)

func (o Outcome) String() string {
	switch o {
	case HumanWon:
		return "You won!"
	case BotWon:
		return "The bot won!"
	case Tie:
		return "It's a tie!"
	default:
		return "Game in progress"
	}
}

// Search depth of the bot, Unlimited plays perfectly
type Difficulty int

const (
	Unlimited Difficulty = Difficulty(minimax.DefaultDepthLimit)
	VeryEasy  Difficulty = 1
	Easy      Difficulty = 2
	Medium    Difficulty = 3
	Hard      Difficulty = 4
)

func (d Difficulty) String() string {
	if d == Unlimited {
		return "unlimited"
	}
	return strconv.Itoa(int(d))
}

func (d Difficulty) Limits() *minimax.Limits {
	return minimax.DefaultLimits().SetDepth(int(d))
}

// Accepts "unlimited" (or "-1") and the depths 1 to 4
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "unlimited" || s == "max" {
		return Unlimited, nil
	}

	depth, err := strconv.Atoi(s)
	if err != nil {
		return Unlimited, fmt.Errorf("%w: %q", ErrDifficulty, s)
	}
	return DifficultyFromDepth(depth)
}

// Difficulty searching exactly this deep, -1 or 1 to 4
func DifficultyFromDepth(depth int) (Difficulty, error) {
	d := Difficulty(depth)
	if d != Unlimited && (d < VeryEasy || d > Hard) {
		return Unlimited, fmt.Errorf("%w: %d", ErrDifficulty, depth)
	}
	return d, nil
}

// Cells the bot chooses from when it opens the game
var openingCells = [...]board.Index{board.A3, board.C3, board.B2, board.A1, board.C1}

type Session struct {
	board    board.Board
	engine   *minimax.Engine
	rand     *rand.Rand
	starting StartingPlayer
	turn     StartingPlayer
	human    board.Symbol
	bot      board.Symbol
}

// Start a new game, the human plays x when starting, o otherwise.
// A nil random source is seeded with minimax.SeedGeneratorFn.
func New(starting StartingPlayer, engine *minimax.Engine, r *rand.Rand) *Session {
	if engine == nil {
		engine = minimax.New(nil)
	}
	if r == nil {
		r = rand.New(rand.NewSource(minimax.SeedGeneratorFn()))
	}

	s := &Session{
		board:    board.New(),
		engine:   engine,
		rand:     r,
		starting: starting,
		turn:     starting,
		human:    board.X,
		bot:      board.O,
	}
	if starting == Bot {
		s.human, s.bot = board.O, board.X
	}
	return s
}

func (s *Session) Board() board.Board {
	return s.board
}

func (s *Session) Turn() StartingPlayer {
	return s.turn
}

func (s *Session) Starting() StartingPlayer {
	return s.starting
}

func (s *Session) HumanSymbol() board.Symbol {
	return s.human
}

func (s *Session) BotSymbol() board.Symbol {
	return s.bot
}

func (s *Session) Engine() *minimax.Engine {
	return s.engine
}

// Bot's first move, a random corner or the center. Only valid as the very first move of a game
// the bot starts.
func (s *Session) OpeningMove() (board.Index, error) {
	if s.board.IsTerminal() {
		return board.NoMove, ErrGameOver
	}
	if s.turn != Bot || s.board.Count(board.Empty) != board.NumCells {
		return board.NoMove, ErrNotYourTurn
	}

	move := openingCells[s.rand.Intn(len(openingCells))]
	s.board.Place(move, s.bot)
	s.turn = Human

	logrus.WithField("move", move.String()).Debug("bot opening move")
	return move, nil
}

func (s *Session) PlayHuman(i board.Index) error {
	if s.board.IsTerminal() {
		return ErrGameOver
	}
	if s.turn != Human {
		return ErrNotYourTurn
	}
	if err := i.Validate(); err != nil {
		return err
	}
	if !s.board.Place(i, s.human) {
		return fmt.Errorf("%w: %s", ErrCellTaken, i)
	}

	s.turn = Bot
	return nil
}

// Let the engine choose and play the bot's move. When the engine returns no
// playable cell the turn stays with the bot and ErrNoBotMove is returned.
func (s *Session) PlayBot() (board.Index, error) {
	if s.board.IsTerminal() {
		return board.NoMove, ErrGameOver
	}
	if s.turn != Bot {
		return board.NoMove, ErrNotYourTurn
	}

	move := board.NoMove
	score := s.engine.PlayBestMove(s.board, 0, s.bot == board.X, func(m board.Index) {
		if s.board.Place(m, s.bot) {
			move = m
		}
	})
	if move == board.NoMove {
		return board.NoMove, fmt.Errorf("%w (limits %s)", ErrNoBotMove, s.engine.Limits())
	}
	s.turn = Human

	logrus.WithFields(logrus.Fields{
		"move":  move.String(),
		"score": score.String(),
	}).Debug("bot move")
	return move, nil
}

func (s *Session) Outcome() Outcome {
	switch {
	case s.board.IsTie():
		return Tie
	case s.board.Winner() == s.human:
		return HumanWon
	case s.board.Winner() == s.bot:
		return BotWon
	}
	return Ongoing
}

func (s *Session) Over() bool {
	return s.board.IsTerminal()
}
