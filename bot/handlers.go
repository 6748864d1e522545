package bot

import (
	"context"
	"strconv"
	"strings"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/errs"
	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/pager"
	"github.com/anisan-cli/anibot/view"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// searchLimit is the number of results a search shows.
const searchLimit = 10

type commandFunc func(b *Bot, ctx context.Context, x *exchange, opts options) error

var handlers = map[string]commandFunc{
	"search":      (*Bot).search,
	"anime":       (*Bot).anime,
	"seasonal":    (*Bot).seasonal,
	"list":        (*Bot).list,
	"guessgame":   (*Bot).guessGame,
	"guess":       (*Bot).guessRating,
	"higherlower": (*Bot).higherLowerGame,
	"help":        (*Bot).help,
}

func (b *Bot) command(ctx context.Context, x *exchange) error {
	data := x.i.ApplicationCommandData()

	handle, ok := handlers[data.Name]
	if !ok {
		return errs.Newf("Unknown command \"%s\".", data.Name)
	}

	return handle(b, ctx, x, optionsOf(data))
}

func (b *Bot) autocomplete(x *exchange) error {
	opt, ok := optionsOf(x.i.ApplicationCommandData()).focused()

	var typed string
	if ok {
		typed, _ = opt.Value.(string)
	}

	var values []string
	if ok {
		values = Suggest(opt.Name, typed)
	}

	return x.respond(discordgo.InteractionApplicationCommandAutocompleteResult, &discordgo.InteractionResponseData{
		Choices: choices(values),
	})
}

func (b *Bot) component(ctx context.Context, x *exchange) error {
	data := x.i.MessageComponentData()

	id, action, ok := parseCustomID(data.CustomID)
	if !ok {
		return errUnknownControl
	}

	handle, err := b.controls.Claim(id, x.user())
	if err != nil {
		return err
	}

	return handle(ctx, x, id, action, data.Values)
}

func (b *Bot) search(ctx context.Context, x *exchange, opts options) error {
	query := strings.TrimSpace(opts.textOr("query", ""))
	if query == "" {
		return x.text(view.Private(view.MsgMissingQuery))
	}

	if err := x.wait(); err != nil {
		return err
	}

	raw, ok := b.catalog.Search(ctx, query, searchLimit, 0).Get()
	if !ok || len(raw) == 0 {
		return notice(view.MsgNoAnime)
	}

	results := anime.FromAnimes(raw)
	id := b.controls.Add(x.user(), "search", false, b.openResult(results))
	return x.send(view.Search(query, results), id)
}

// openResult shows the detail card of the result picked from a search dropdown.
func (b *Bot) openResult(results []anime.Record) ControlFunc {
	return func(ctx context.Context, x *exchange, _ uuid.UUID, _ string, values []string) error {
		if len(values) == 0 {
			return x.ack()
		}

		index, err := strconv.Atoi(values[0])
		if err != nil || index < 0 || index >= len(results) {
			return x.ack()
		}

		if err := x.wait(); err != nil {
			return err
		}
		return b.detail(ctx, x, results[index].ID)
	}
}

func (b *Bot) anime(ctx context.Context, x *exchange, opts options) error {
	id, ok := opts.number("anime_id")
	if !ok {
		return errs.Newf("Missing anime ID.")
	}

	if err := x.wait(); err != nil {
		return err
	}
	return b.detail(ctx, x, int(id))
}

func (b *Bot) detail(ctx context.Context, x *exchange, id int) error {
	raw, ok := b.catalog.Anime(ctx, id).Get()
	if !ok {
		return notice(view.MsgAnimeMissing)
	}

	return x.text(view.Reply{Embeds: []*view.Embed{view.Detail(anime.FromDetail(raw))}})
}

// pageControl moves a pager and redraws its message. Moves that change nothing are only acknowledged.
func pageControl[T any](p *pager.Pager[T], render func(pager.Page[T]) view.Reply) ControlFunc {
	return func(_ context.Context, x *exchange, id uuid.UUID, action string, _ []string) error {
		a, ok := pager.ParseAction(action)
		if !ok || !p.Move(x.user(), a) {
			return x.ack()
		}
		return x.update(render(p.Page()), id)
	}
}

func (b *Bot) seasonal(ctx context.Context, x *exchange, opts options) error {
	year := opts.intOr("year", 0)
	season, err := mal.ParseSeason(opts.textOr("season", ""))
	if err != nil {
		return err
	}

	if err := x.wait(); err != nil {
		return err
	}

	records := anime.FromAnimes(b.catalog.FullSeason(ctx, year, season))
	if len(records) == 0 {
		return notice(view.SeasonMissing(season.Title(), year))
	}

	title := view.SeasonTitle(season.Title(), year)
	render := func(page pager.Page[anime.Record]) view.Reply {
		return view.RankingPage(title, page)
	}

	p := pager.New(x.user(), records)
	id := b.controls.Add(x.user(), "seasonal", false, pageControl(p, render))
	return x.send(render(p.Page()), id)
}

func (b *Bot) list(ctx context.Context, x *exchange, opts options) error {
	username := strings.TrimSpace(opts.textOr("username", ""))
	if username == "" {
		return errs.Newf("Missing username.")
	}

	by, err := mal.ParseListSort(opts.textOr("sorting_method", string(mal.Alphabetical)))
	if err != nil {
		return err
	}

	status := mo.None[mal.ListStatus]()
	label, filtered := opts.text("status")
	if filtered {
		s, err := mal.ParseListStatus(label)
		if err != nil {
			return err
		}
		status = mo.Some(s)
	}

	if err := x.wait(); err != nil {
		return err
	}

	entries := anime.FromListItems(b.catalog.FullUserList(ctx, username, status))
	if len(entries) == 0 {
		return notice(view.MsgListMissing)
	}
	anime.SortEntries(entries, by)

	title := view.ListTitle(username, label)
	profile := anime.ProfileURL(username)
	render := func(page pager.Page[anime.ListEntry]) view.Reply {
		return view.ListPage(title, profile, page)
	}

	p := pager.New(x.user(), entries)
	id := b.controls.Add(x.user(), "list", false, pageControl(p, render))
	return x.send(render(p.Page()), id)
}

func (b *Bot) ranking(opts options) (mal.RankingKind, error) {
	raw, ok := opts.text("ranking_type")
	if !ok {
		return b.defaults.Ranking, nil
	}
	return mal.ParseRankingKind(raw)
}

func (b *Bot) guessGame(ctx context.Context, x *exchange, opts options) error {
	difficulty := b.defaults.Difficulty
	if raw, ok := opts.text("difficulty"); ok {
		d, err := game.ParseDifficulty(raw)
		if err != nil {
			return err
		}
		difficulty = d
	}

	kind, err := b.ranking(opts)
	if err != nil {
		return err
	}

	if err := x.wait(); err != nil {
		return err
	}

	round, err := b.guess.Start(ctx, x.user(), difficulty, opts.intOr("limit", b.defaults.PoolSize), kind)
	if err != nil {
		return err
	}

	return x.text(view.Reply{Embeds: []*view.Embed{view.GuessStart(round)}})
}

func (b *Bot) guessRating(_ context.Context, x *exchange, opts options) error {
	value, ok := opts.number("guess_value")
	if !ok {
		return errs.Newf("Missing rating value.")
	}

	outcome, err := b.guess.Guess(x.user(), value)
	if err != nil {
		return err
	}

	return x.text(view.Reply{Embeds: []*view.Embed{view.GuessOutcome(outcome)}})
}

func (b *Bot) higherLowerGame(ctx context.Context, x *exchange, opts options) error {
	kind, err := b.ranking(opts)
	if err != nil {
		return err
	}

	if err := x.wait(); err != nil {
		return err
	}

	round, err := b.higherLower.Start(ctx, x.user(), opts.intOr("limit", b.defaults.PoolSize), kind)
	if err != nil {
		return err
	}

	intro, prompt := view.HigherLowerStart(round)
	if err := x.text(intro); err != nil {
		return err
	}
	return x.send(prompt, b.controls.Add(x.user(), "higherlower", true, b.call(round.Ref)))
}

// call judges a Higher/Lower button press for the turn ref. A continuing round
// posts the next pair with fresh buttons bound to the following turn.
func (b *Bot) call(ref game.Ref) ControlFunc {
	return func(_ context.Context, x *exchange, _ uuid.UUID, action string, _ []string) error {
		direction, ok := game.ParseDirection(action)
		if !ok {
			return x.ack()
		}

		outcome, err := b.higherLower.Play(x.user(), ref, direction)
		if err != nil {
			return err
		}

		if err := x.ack(); err != nil {
			return err
		}

		reply := view.HigherLowerOutcome(outcome)
		next, ok := outcome.Round.Get()
		if !ok {
			return x.text(reply)
		}
		return x.send(reply, b.controls.Add(x.user(), "higherlower", true, b.call(next.Ref)))
	}
}

func (b *Bot) help(_ context.Context, x *exchange, opts options) error {
	name, ok := opts.text("command")
	if !ok || strings.TrimSpace(name) == "" {
		return x.text(view.Reply{Embeds: []*view.Embed{view.Help.Overview()}})
	}
	return x.text(view.Reply{Embeds: []*view.Embed{view.Help.Command(strings.TrimSpace(name))}})
}
