package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/internal/game"
	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the bot",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts an interactive game against the minimax bot.

			Whoever starts plays x. Enter a move as a square name (a3 is the
			top-left corner, c1 the bottom-right one) or as a cell index from
			0 to 8. Type q to leave the game.

			The depth sets the difficulty: "unlimited" (or -1) searches every
			position until the end of the game and never loses, 1 to 4 make
			the bot weaker.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			starting, err := game.ParseStartingPlayer(cfg.Starter)
			if err != nil {
				return err
			}

			difficulty, err := playDifficulty(cmd, cfg.Depth)
			if err != nil {
				return err
			}

			engine := minimax.New(difficulty.Limits())
			session := game.New(starting, engine, rand.New(rand.NewSource(minimax.SeedGeneratorFn())))
			out := newOutput(cmd.OutOrStdout(), cfg.Color)

			return playLoop(cmd.InOrStdin(), out, session)
		},
	}

	cmd.Flags().String("depth", game.Unlimited.String(), "Difficulty of the Bot (1-4 or unlimited)")
	cmd.Flags().String("starter", "human", "Who Plays First (human or bot)")
	cmd.Flags().Int64("seed", 0, "Seed of the Bot's Random Choices")

	return cmd
}

// The --depth flag if set, the configured depth otherwise
func playDifficulty(cmd *cobra.Command, depth int) (game.Difficulty, error) {
	if cmd.Flags().Changed("depth") {
		value, _ := cmd.Flags().GetString("depth")
		return game.ParseDifficulty(value)
	}
	return game.DifficultyFromDepth(depth)
}

func playLoop(in io.Reader, out *termenv.Output, s *game.Session) error {
	last := board.NoMove

	if s.Starting() == game.Bot {
		move, err := s.OpeningMove()
		if err != nil {
			return err
		}
		last = move
		fmt.Fprintf(out, "bot plays %s\n", move)
	}

	scanner := bufio.NewScanner(in)
	for !s.Over() {
		fmt.Fprint(out, renderBoard(out, s.Board(), last))
		fmt.Fprintf(out, "your move (%s): ", s.HumanSymbol())

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		switch text {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}

		move, err := board.ParseIndex(text)
		if err == nil {
			err = s.PlayHuman(move)
		}
		if err != nil {
			fmt.Fprintln(out, out.String(playError(err)).Foreground(out.Color("3")))
			continue
		}
		last = move

		if s.Over() {
			break
		}

		move, err = s.PlayBot()
		if err != nil {
			return err
		}
		last = move
		fmt.Fprintf(out, "bot plays %s\n", move)
	}

	fmt.Fprint(out, renderBoard(out, s.Board(), last))
	fmt.Fprintln(out, outcomeStyle(out, s.Outcome()))
	return nil
}

func playError(err error) string {
	switch {
	case errors.Is(err, board.ErrOutOfRange):
		return "Unknown square, use a3..c1 or 0..8"
	case errors.Is(err, game.ErrCellTaken):
		return "This cell is not available, choose another one!"
	case errors.Is(err, game.ErrGameOver):
		return "The game is over, start another one"
	}
	return err.Error()
}

func outcomeStyle(out *termenv.Output, outcome game.Outcome) termenv.Style {
	style := out.String(outcome.String()).Bold()
	switch outcome {
	case game.HumanWon:
		return style.Foreground(out.Color("2"))
	case game.BotWon:
		return style.Foreground(out.Color("1"))
	}
	return style.Foreground(out.Color("3"))
}
