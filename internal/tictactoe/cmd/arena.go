package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const SPIN = 14

// Shows the number of finished games next to the spinner
type spinnerListener struct {
	bench.DefaultListener
	s     *spinner.Spinner
	total uint
	done  *atomic.Int32
}

func (l *spinnerListener) OnFinishedGame(bench.VersusWorkerInfo) {
	n := l.done.Add(1)
	l.s.Lock()
	l.s.Suffix = fmt.Sprintf(" %d/%d games", n, l.total)
	l.s.Unlock()
}

func (l *spinnerListener) Clone() bench.ListenerLike {
	return l
}

func Arena() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Let two engines play each other",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`arena plays a series of games between two minimax engines,
			with a random first mover in each game, and prints the results.

			The engines only differ by their search depth. Two unlimited
			engines always draw; lower depths show how much a shallow
			search loses against a deeper one.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			games, _ := flags.GetUint("games")
			threads, _ := flags.GetUint("threads")
			depth1, _ := flags.GetInt("depth1")
			depth2, _ := flags.GetInt("depth2")
			format, _ := flags.GetString("format")
			verbose, _ := flags.GetBool("verbose")

			p1 := bench.NewEnginePlayer(fmt.Sprintf("depth %d", depth1),
				minimax.New(minimax.DefaultLimits().SetDepth(depth1)))
			p2 := bench.NewEnginePlayer(fmt.Sprintf("depth %d", depth2),
				minimax.New(minimax.DefaultLimits().SetDepth(depth2)))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			arena := bench.NewVersusArena(p1, p2).WithContext(ctx)
			arena.Setup(games, threads)

			term := bench.NewTermListener(cmd.OutOrStdout(), outputOptions(cfg.Color)...)
			listeners := []bench.ListenerLike{bench.LogListener{}}

			var s *spinner.Spinner
			if verbose && format == "text" {
				listeners = append(listeners, term)
			} else {
				s = spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
				s.Start() // Start the ~working~ spinner.
				defer s.Stop()
				listeners = append(listeners, &spinnerListener{s: s, total: games, done: &atomic.Int32{}})
			}

			logrus.WithFields(logrus.Fields{
				"games":   games,
				"threads": threads,
				"p1":      p1.Name(),
				"p2":      p2.Name(),
			}).Debug("starting arena")

			arena.Start(bench.NewArenaListener(listeners...))
			arena.Wait()
			if s != nil {
				s.Stop()
			}

			if err := arena.Err(); err != nil {
				return err
			}
			if ctx.Err() != nil {
				logrus.Warn("arena interrupted, results are partial")
			}

			if format == "text" {
				term.Summary(arena.Summary())
				return nil
			}
			return encode(cmd.OutOrStdout(), format, arena.Summary())
		},
	}

	cmd.Flags().Uint("games", 100, "Number of Games to Play")
	cmd.Flags().Uint("threads", 2, "Number of Concurrent Games")
	cmd.Flags().Int("depth1", minimax.DefaultDepthLimit, "Search Depth of the First Engine")
	cmd.Flags().Int("depth2", 2, "Search Depth of the Second Engine")
	cmd.Flags().String("format", "text", "Output Format (text, json or yaml)")
	cmd.Flags().BoolP("verbose", "v", false, "Print Every Finished Game")

	return cmd
}
