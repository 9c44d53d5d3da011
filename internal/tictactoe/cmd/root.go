package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/internal/config"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a minimax bot",
		Long: heredoc.Doc(`tictactoe plays tic-tac-toe with an exhaustive minimax search.

			Play a game in the terminal, ask the engine for the best move in a
			position, or let two engines play each other in an arena. Defaults
			are read from the config file, flags take precedence over it.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("config", config.DefaultPath(), "Path of the Config File")
	root.PersistentFlags().Bool("no-color", false, "Disable Coloured Output")

	root.AddCommand(Play())
	root.AddCommand(BestMove())
	root.AddCommand(Arena())

	return root
}

// Config file values, overridden by the flags the user set explicitly
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	logrus.WithField("path", path).Trace("config loaded")

	flags := cmd.Flags()
	// play takes a difficulty string instead, see playDifficulty
	if flags.Changed("depth") {
		if depth, err := flags.GetInt("depth"); err == nil {
			cfg.Depth = depth
		}
	}
	if flags.Changed("starter") {
		cfg.Starter, _ = flags.GetString("starter")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		cfg.Color = !noColor
	}

	if cfg.Seed != 0 {
		seed := cfg.Seed
		minimax.SetSeedGeneratorFn(func() int64 {
			return seed
		})
	}
	return cfg, cfg.Validate()
}
