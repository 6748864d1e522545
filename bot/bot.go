// Package bot adapts the lookup commands and games to Discord slash commands and components.
package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anisan-cli/anibot/errs"
	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/log"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/view"
	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Catalog is the read side of the upstream API used by the lookup commands.
type Catalog interface {
	Search(ctx context.Context, query string, limit, offset int) mo.Option[[]mal.Anime]
	Anime(ctx context.Context, id int) mo.Option[mal.Anime]
	FullSeason(ctx context.Context, year int, season mal.Season) []mal.Anime
	FullUserList(ctx context.Context, username string, status mo.Option[mal.ListStatus]) []mal.ListItem
}

// Defaults fill in omitted game options.
type Defaults struct {
	PoolSize   int
	Difficulty game.Difficulty
	Ranking    mal.RankingKind
}

// DefaultsFromConfig reads the game defaults, falling back to medium and bypopularity on invalid values.
func DefaultsFromConfig() Defaults {
	d := Defaults{
		PoolSize:   viper.GetInt(key.GameDefaultPoolSize),
		Difficulty: game.Medium,
		Ranking:    mal.ByPopularity,
	}

	if difficulty, err := game.ParseDifficulty(viper.GetString(key.GameDefaultDifficulty)); err == nil {
		d.Difficulty = difficulty
	} else {
		log.Warn(err)
	}

	if kind, err := mal.ParseRankingKind(viper.GetString(key.GameDefaultRanking)); err == nil {
		d.Ranking = kind
	} else {
		log.Warn(err)
	}

	return d
}

// Bot answers interactions. It is safe for concurrent use.
type Bot struct {
	catalog     Catalog
	guess       *game.GuessEngine
	higherLower *game.HigherLowerEngine
	controls    *Controls
	defaults    Defaults
	started     time.Time
}

// New assembles a bot from its collaborators.
func New(catalog Catalog, guess *game.GuessEngine, higherLower *game.HigherLowerEngine, controls *Controls, defaults Defaults) *Bot {
	return &Bot{
		catalog:     catalog,
		guess:       guess,
		higherLower: higherLower,
		controls:    controls,
		defaults:    defaults,
		started:     time.Now(),
	}
}

// Stats is a snapshot of the bot's live state.
type Stats struct {
	GuessSessions       int           `json:"guess_sessions"`
	HigherLowerSessions int           `json:"higherlower_sessions"`
	Controls            int           `json:"controls"`
	Uptime              time.Duration `json:"uptime_ns"`
}

// Stats reports the number of running games and live controls.
func (b *Bot) Stats() Stats {
	return Stats{
		GuessSessions:       b.guess.Active(),
		HigherLowerSessions: b.higherLower.Active(),
		Controls:            b.controls.Len(),
		Uptime:              time.Since(b.started),
	}
}

// notice is an expected outcome reported to the user as is, such as no upstream data.
type notice string

func (n notice) Error() string { return string(n) }

// Handle answers one interaction. Failures, including panics, are logged and
// reported to the user; they never escape.
func (b *Bot) Handle(ctx context.Context, r Responder, i *discordgo.Interaction) {
	x := newExchange(r, i)

	var command string
	defer func() {
		if p := recover(); p != nil {
			b.fail(x, command, fmt.Errorf("panic: %v", p))
		}
	}()

	command = b.commandOf(i)

	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = b.command(ctx, x)
	case discordgo.InteractionApplicationCommandAutocomplete:
		err = b.autocomplete(x)
	case discordgo.InteractionMessageComponent:
		err = b.component(ctx, x)
	default:
		return
	}

	if err != nil {
		b.fail(x, command, err)
	}
}

// commandOf names the command an interaction relates to, used for help hints.
// A component click relates to the command its control was sent for.
func (b *Bot) commandOf(i *discordgo.Interaction) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand, discordgo.InteractionApplicationCommandAutocomplete:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		id, _, ok := parseCustomID(i.MessageComponentData().CustomID)
		if !ok {
			return ""
		}
		return b.controls.Command(id)
	default:
		return ""
	}
}

func (b *Bot) fail(x *exchange, command string, err error) {
	var (
		n     notice
		reply view.Reply
	)

	switch {
	case errors.As(err, &n):
		reply = view.Text(n.Error())
	case errors.Is(err, game.ErrNoSession):
		reply = view.Text(view.NoSession(command))
	case errors.Is(err, game.ErrEmptyPool):
		reply = view.Text(view.MsgNoGame)
	case errors.Is(err, game.ErrStaleTurn), errors.Is(err, errUnknownControl), errors.Is(err, errNotOwner):
		if ackErr := x.ack(); ackErr != nil {
			log.WithFields(log.Fields{"command": command}).Warn(ackErr)
		}
		return
	default:
		if v, ok := errs.AsValidation(err); ok {
			reply = view.Text(v.Error() + view.HelpHint(command))
			break
		}

		log.WithFields(log.Fields{"command": command, "user": x.user()}).Error(err)
		reply = view.Private(view.MsgFailure)
	}

	if sendErr := x.text(reply); sendErr != nil {
		log.WithFields(log.Fields{"command": command}).Warn(sendErr)
	}
}
