package cmd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

type bestMoveReport struct {
	Position string             `json:"position" yaml:"position"`
	Player   string             `json:"player" yaml:"player"`
	Move     string             `json:"move" yaml:"move"`
	Score    minimax.Score      `json:"score" yaml:"score"`
	Lines    []minimax.RootLine `json:"lines" yaml:"lines"`
	Nodes    uint64             `json:"nodes" yaml:"nodes"`
	TimeMs   int                `json:"time_ms" yaml:"time_ms"`
}

func BestMove() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestmove notation",
		Short: "Search the best move in a position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`bestmove searches the given position and prints the chosen
			move, its score and the score of every root move.

			The position is written row by row from the top, rows separated
			by '/', with x, o and '.' for an empty cell, e.g. "xo./.x./..o".
			Without --player the side to move is deduced from the position.
			Scores are from x's point of view, +inf is a forced win for x.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			b, err := board.ParseNotation(args[0])
			if err != nil {
				return err
			}

			player := b.SideToMove()
			if p, _ := cmd.Flags().GetString("player"); p != "" {
				switch strings.ToLower(p) {
				case "x":
					player = board.X
				case "o":
					player = board.O
				default:
					return fmt.Errorf("unknown player %q, use x or o", p)
				}
			}

			engine := minimax.New(minimax.DefaultLimits().SetDepth(cfg.Depth))
			analysis := engine.Analyze(b, player == board.X)

			report := bestMoveReport{
				Position: b.String(),
				Player:   player.String(),
				Move:     analysis.Move.String(),
				Score:    analysis.Score,
				Lines:    analysis.Lines,
				Nodes:    analysis.Stats.Nodes,
				TimeMs:   analysis.Stats.TimeMs,
			}
			if analysis.Move == board.NoMove {
				report.Move = "none"
			}

			format, _ := cmd.Flags().GetString("format")
			if format != "text" {
				return encode(cmd.OutOrStdout(), format, report)
			}

			out := newOutput(cmd.OutOrStdout(), cfg.Color)
			fmt.Fprint(out, renderBoard(out, b, analysis.Move))
			fmt.Fprintf(out, "bestmove %s score %s (%s to move, %d nodes, %d ms)\n",
				out.String(report.Move).Bold(), analysis.Score, player, report.Nodes, report.TimeMs)
			for _, line := range analysis.Lines {
				moves := make([]string, len(line.Moves))
				for i, mv := range line.Moves {
					moves[i] = mv.String()
				}
				fmt.Fprintf(out, "  %5s  %s\n", line.Score, strings.Join(moves, " "))
			}
			return nil
		},
	}

	cmd.Flags().String("player", "", "Side to Search For (x or o)")
	cmd.Flags().Int("depth", minimax.DefaultDepthLimit, "Search Depth (-1 is unlimited)")
	cmd.Flags().Int64("seed", 0, "Seed of the Tie-Break Random Source")
	cmd.Flags().String("format", "text", "Output Format (text, json or yaml)")

	return cmd
}
