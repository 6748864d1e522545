package bot

import (
	"sort"
	"strings"

	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/view"
	"github.com/bwmarrin/discordgo"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// maxChoices is the most autocomplete suggestions a platform accepts per option.
const maxChoices = 25

func stringOption(name, description string, required, autocomplete bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         name,
		Description:  description,
		Required:     required,
		Autocomplete: autocomplete,
	}
}

func integerOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// Commands is the slash command set the bot registers.
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "search",
		Description: "Search MyAnimeList for anime by title",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("query", "Anime title to search for", false, false),
		},
	},
	{
		Name:        "anime",
		Description: "Get detailed information for an anime by ID",
		Options: []*discordgo.ApplicationCommandOption{
			integerOption("anime_id", "MyAnimeList anime ID", true),
		},
	},
	{
		Name:        "seasonal",
		Description: "View anime from a specific season",
		Options: []*discordgo.ApplicationCommandOption{
			integerOption("year", "Year, e.g., 2024", true),
			stringOption("season", "Season: winter, spring, summer, fall", true, true),
		},
	},
	{
		Name:        "list",
		Description: "View a user's anime list with pagination",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("username", "MyAnimeList username", true, false),
			stringOption("sorting_method", "Sort: alphabetical or score", false, true),
			stringOption("status", "Filter status: watching, completed, on hold, dropped, plan to watch", false, true),
		},
	},
	{
		Name:        "guessgame",
		Description: "Start the guess-the-rating game",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("difficulty", "Difficulty: easy, medium, hard", false, true),
			integerOption("limit", "Anime pool size (1-2500)", false),
			stringOption("ranking_type", "Ranking: bypopularity, airing, movie, favorite", false, true),
		},
	},
	{
		Name:        "guess",
		Description: "Submit your rating guess",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "guess_value",
				Description: "Your rating guess (0-10)",
				Required:    true,
			},
		},
	},
	{
		Name:        "higherlower",
		Description: "Play the higher or lower rating game",
		Options: []*discordgo.ApplicationCommandOption{
			integerOption("limit", "Anime pool size (2-2500)", false),
			stringOption("ranking_type", "Ranking: bypopularity, airing, movie, favorite", false, true),
		},
	},
	{
		Name:        "help",
		Description: "Display help information for commands",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("command", "Command name to get help for", false, true),
		},
	},
}

// completions are the accepted values of every autocompleted option, by option name.
var completions = map[string][]string{
	"season":         mal.Names(mal.Seasons),
	"sorting_method": mal.Names(mal.ListSorts),
	"status":         mal.ListStatusLabels(),
	"difficulty":     game.DifficultyNames(),
	"ranking_type":   mal.Names(mal.RankingKinds),
	"command":        view.Help.Names(),
}

// Suggest ranks the accepted values of option against typed, closest first.
// Empty input lists every value in its natural order.
func Suggest(option, typed string) []string {
	candidates := completions[option]

	typed = strings.TrimSpace(typed)
	if typed == "" {
		return lo.Subset(candidates, 0, maxChoices)
	}

	ranks := fuzzy.RankFindFold(typed, candidates)
	sort.Sort(ranks)

	return lo.Subset(lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	}), 0, maxChoices)
}

func choices(values []string) []*discordgo.ApplicationCommandOptionChoice {
	return lo.Map(values, func(v string, _ int) *discordgo.ApplicationCommandOptionChoice {
		return &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v}
	})
}

// options indexes the supplied options of a command by name.
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsOf(data discordgo.ApplicationCommandInteractionData) options {
	return lo.SliceToMap(data.Options, func(o *discordgo.ApplicationCommandInteractionDataOption) (string, *discordgo.ApplicationCommandInteractionDataOption) {
		return o.Name, o
	})
}

// focused returns the option being typed during autocomplete.
func (o options) focused() (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	return lo.Find(lo.Values(o), func(opt *discordgo.ApplicationCommandInteractionDataOption) bool {
		return opt.Focused
	})
}

func (o options) text(name string) (string, bool) {
	opt, ok := o[name]
	if !ok {
		return "", false
	}
	s, ok := opt.Value.(string)
	return s, ok
}

func (o options) textOr(name, fallback string) string {
	if s, ok := o.text(name); ok {
		return s
	}
	return fallback
}

// number reads a numeric option. Values arrive decoded from JSON as float64.
func (o options) number(name string) (float64, bool) {
	opt, ok := o[name]
	if !ok {
		return 0, false
	}

	switch v := opt.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func (o options) intOr(name string, fallback int) int {
	if v, ok := o.number(name); ok {
		return int(v)
	}
	return fallback
}
