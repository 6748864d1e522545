package cmd

import (
	"context"
	"strconv"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/bot"
	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/tui"
	"github.com/anisan-cli/anibot/view"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

// playCmd runs the games and listings in the terminal instead of a chat.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the games in the terminal",
}

// gameFlags registers the pool flags. Omitted flags fall back to the configured game defaults.
func gameFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "l", 0, "Number of anime in the pool")
	cmd.Flags().StringP("ranking", "r", "", "Ranking the pool is drawn from")
	lo.Must0(cmd.RegisterFlagCompletionFunc("ranking", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return mal.Names(mal.RankingKinds), cobra.ShellCompDirectiveNoFileComp
	}))
}

// gameOptions reads the flags shared by both games.
func gameOptions(cmd *cobra.Command, mode tui.Mode) *tui.Options {
	defaults := bot.DefaultsFromConfig()
	options := &tui.Options{
		Mode:       mode,
		PoolSize:   defaults.PoolSize,
		Ranking:    defaults.Ranking,
		Difficulty: defaults.Difficulty,
	}

	if cmd.Flags().Changed("limit") {
		options.PoolSize = lo.Must(cmd.Flags().GetInt("limit"))
	}

	if cmd.Flags().Changed("ranking") {
		kind, err := mal.ParseRankingKind(lo.Must(cmd.Flags().GetString("ranking")))
		handleErr(err)
		options.Ranking = kind
	}

	options.Guess, options.HigherLower = newEngines(mustClient())
	return options
}

func init() {
	playCmd.AddCommand(playGuessCmd)
	gameFlags(playGuessCmd)

	playGuessCmd.Flags().StringP("difficulty", "d", "", "Allowed distance from the true rating")
	lo.Must0(playGuessCmd.RegisterFlagCompletionFunc("difficulty", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return game.DifficultyNames(), cobra.ShellCompDirectiveNoFileComp
	}))
}

var playGuessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess the rating of anime drawn from a ranking",
	Run: func(cmd *cobra.Command, args []string) {
		options := gameOptions(cmd, tui.GuessMode)
		if cmd.Flags().Changed("difficulty") {
			difficulty, err := game.ParseDifficulty(lo.Must(cmd.Flags().GetString("difficulty")))
			handleErr(err)
			options.Difficulty = difficulty
		}

		handleErr(tui.Run(cmd.Context(), options))
	},
}

func init() {
	playCmd.AddCommand(playHigherLowerCmd)
	gameFlags(playHigherLowerCmd)
}

var playHigherLowerCmd = &cobra.Command{
	Use:   "higherlower",
	Short: "Call whether the next anime is rated higher or lower",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(tui.Run(cmd.Context(), gameOptions(cmd, tui.HigherLowerMode)))
	},
}

func init() {
	playCmd.AddCommand(playSeasonalCmd)
	playSeasonalCmd.ValidArgsFunction = func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 1 {
			return mal.Names(mal.Seasons), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

var playSeasonalCmd = &cobra.Command{
	Use:   "seasonal <year> <season>",
	Short: "Browse the anime of a season page by page",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		year, err := strconv.Atoi(args[0])
		handleErr(err)

		season, err := mal.ParseSeason(args[1])
		handleErr(err)

		client := mustClient()
		handleErr(tui.Run(cmd.Context(), &tui.Options{
			Mode:  tui.BrowseMode,
			Title: view.SeasonTitle(season.Title(), year),
			Browse: func(ctx context.Context) []anime.Record {
				return anime.FromAnimes(client.FullSeason(ctx, year, season))
			},
		}))
	},
}
