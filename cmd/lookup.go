package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/icon"
	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/open"
	"github.com/anisan-cli/anibot/pager"
	"github.com/anisan-cli/anibot/tui"
	"github.com/anisan-cli/anibot/util"
	"github.com/anisan-cli/anibot/view"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// terminal is the pager owner for command-line listings.
const terminal = "terminal"

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.PersistentFlags().BoolP("json", "j", false, "Format the output as JSON")
	lookupCmd.PersistentFlags().Bool("schema", false, "Print the JSON Schema of the --json output and exit")
	lookupCmd.SetOut(os.Stdout)
}

// lookupCmd queries MyAnimeList the way the bot commands do, printing to the terminal.
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Query MyAnimeList from the terminal",
}

// genericName flattens instantiated type names such as Option[float64].
var genericName = strings.NewReplacer("[", "_", "]", "", ".", "_")

// printSchema handles --schema and reports whether it did.
func printSchema(cmd *cobra.Command, v any) bool {
	if !lo.Must(cmd.Flags().GetBool("schema")) {
		return false
	}

	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return genericName.Replace(t.Name())
	}

	handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(v)))
	return true
}

func output(cmd *cobra.Command, v any, reply view.Reply) {
	if lo.Must(cmd.Flags().GetBool("json")) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(v))
		return
	}

	width, _, err := util.TerminalSize()
	if err != nil {
		width = 80
	}
	_, _ = io.WriteString(cmd.OutOrStdout(), tui.RenderReply(reply, width)+"\n")
}

// page positions a terminal pager on the 1-based page n, clamped to the valid range.
func page[T any](items []T, n int) pager.Page[T] {
	p := pager.New(terminal, items)
	for i := 1; i < n; i++ {
		if !p.Move(terminal, pager.Next) {
			break
		}
	}
	return p.Page()
}

func mustClient() *mal.Client {
	client, err := newClient()
	handleErr(err)
	return client
}

func init() {
	lookupCmd.AddCommand(lookupSearchCmd)
	lookupSearchCmd.Flags().IntP("limit", "l", 10, "Number of results")
}

var lookupSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search anime by title",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if printSchema(cmd, []anime.Record{}) {
			return
		}

		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			handleErr(errors.New(view.MsgMissingQuery))
		}

		limit := lo.Clamp(lo.Must(cmd.Flags().GetInt("limit")), 1, 100)
		raw, ok := mustClient().Search(context.Background(), query, limit, 0).Get()
		if !ok || len(raw) == 0 {
			handleErr(errors.New(view.MsgNoAnime))
		}

		records := anime.FromAnimes(raw)
		output(cmd, records, view.Search(query, records))
	},
}

func init() {
	lookupCmd.AddCommand(lookupAnimeCmd)
	lookupAnimeCmd.Flags().BoolP("open", "o", false, "Open the MyAnimeList page in a browser")
}

var lookupAnimeCmd = &cobra.Command{
	Use:   "anime <id>",
	Short: "Show the details of an anime",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if printSchema(cmd, &anime.Detail{}) {
			return
		}

		if len(args) == 0 {
			handleErr(errors.New("Missing anime ID."))
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			handleErr(errors.New("Anime ID must be a number."))
		}

		raw, ok := mustClient().Anime(context.Background(), id).Get()
		if !ok {
			handleErr(errors.New(view.MsgAnimeMissing))
		}

		detail := anime.FromDetail(raw)
		output(cmd, detail, view.Reply{Embeds: []*view.Embed{view.Detail(detail)}})

		if lo.Must(cmd.Flags().GetBool("open")) {
			cmd.PrintErrf("%s opening %s\n", icon.Get(icon.Link), detail.URL())
			handleErr(open.URL(detail.URL(), viper.GetString(key.BrowserApp)))
		}
	},
}

func init() {
	lookupCmd.AddCommand(lookupSeasonalCmd)
	lookupSeasonalCmd.Flags().IntP("page", "p", 1, "Page to show")
	lookupSeasonalCmd.ValidArgsFunction = func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 1 {
			return mal.Names(mal.Seasons), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

var lookupSeasonalCmd = &cobra.Command{
	Use:   "seasonal <year> <season>",
	Short: "List the anime of a season",
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if printSchema(cmd, []anime.Record{}) {
			return
		}

		if len(args) != 2 {
			handleErr(errors.New("year and season are required"))
		}

		year, err := strconv.Atoi(args[0])
		if err != nil {
			handleErr(errors.New("Year must be a number."))
		}

		season, err := mal.ParseSeason(args[1])
		handleErr(err)

		records := anime.FromAnimes(mustClient().FullSeason(context.Background(), year, season))
		if len(records) == 0 {
			handleErr(errors.New(view.SeasonMissing(season.Title(), year)))
		}

		p := page(records, lo.Must(cmd.Flags().GetInt("page")))
		output(cmd, p.Items, view.RankingPage(view.SeasonTitle(season.Title(), year), p))
	},
}

func init() {
	lookupCmd.AddCommand(lookupRankingCmd)
	lookupRankingCmd.Flags().IntP("limit", "l", 50, "Number of ranked anime to fetch")
	lookupRankingCmd.Flags().IntP("page", "p", 1, "Page to show")
	lookupRankingCmd.ValidArgs = mal.Names(mal.RankingKinds)
}

var lookupRankingCmd = &cobra.Command{
	Use:   "ranking [type]",
	Short: "List top ranked anime",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if printSchema(cmd, []anime.Record{}) {
			return
		}

		kind := mal.ByPopularity
		if len(args) == 1 {
			var err error
			kind, err = mal.ParseRankingKind(args[0])
			handleErr(err)
		}

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		records := anime.FromAnimes(mustClient().TopRanked(context.Background(), kind, limit))
		if len(records) == 0 {
			handleErr(errors.New(view.MsgNoAnime))
		}

		p := page(records, lo.Must(cmd.Flags().GetInt("page")))
		output(cmd, p.Items, view.RankingPage(view.RankingTitle(string(kind)), p))
	},
}
