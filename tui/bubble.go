package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/pager"
	"github.com/anisan-cli/anibot/util"
	"github.com/anisan-cli/anibot/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// statefulBubble is the playground model. Every reply it shows is the same
// render model the chat adapter sends, drawn for the terminal.
type statefulBubble struct {
	ctx           context.Context
	state         state
	statesHistory util.Stack[state]
	keymap        *statefulKeymap

	spinnerC spinner.Model
	inputC   textinput.Model
	helpC    help.Model

	reply     view.Reply
	notice    string
	ref       game.Ref
	pages     *pager.Pager[anime.Record]
	lastError error
	// final is the score or streak reached when the game ended.
	final int

	width, height int

	options *Options
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	b := &statefulBubble{
		ctx:      ctx,
		keymap:   newStatefulKeymap(),
		spinnerC: spinner.New(),
		inputC:   textinput.New(),
		helpC:    help.New(),
		options:  options,
	}

	b.spinnerC.Spinner = spinner.Dot
	b.inputC.Placeholder = "0-10"
	b.inputC.CharLimit = 5

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	}

	b.setState(loadingState)
	return b
}

func (b *statefulBubble) resize(width, height int) {
	b.width = width
	b.height = height
	b.helpC.Width = width
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the state left unless it was transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}
	if b.state != loadingState && b.state != errorState {
		b.statesHistory.Push(b.state)
	}
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

type (
	guessStartedMsg       game.GuessRound
	higherLowerStartedMsg game.HigherLowerRound
	browseLoadedMsg       []anime.Record
)

// start loads whatever the configured mode plays with.
func (b *statefulBubble) start() tea.Cmd {
	b.notice = ""
	b.statesHistory.Clear()
	b.setState(loadingState)

	o := b.options
	switch o.Mode {
	case GuessMode:
		return func() tea.Msg {
			round, err := o.Guess.Start(b.ctx, player, o.Difficulty, o.PoolSize, o.Ranking)
			if err != nil {
				return err
			}
			return guessStartedMsg(round)
		}
	case HigherLowerMode:
		return func() tea.Msg {
			round, err := o.HigherLower.Start(b.ctx, player, o.PoolSize, o.Ranking)
			if err != nil {
				return err
			}
			return higherLowerStartedMsg(round)
		}
	default:
		return func() tea.Msg {
			records := o.Browse(b.ctx)
			if len(records) == 0 {
				return errors.New(view.MsgNoAnime)
			}
			return browseLoadedMsg(records)
		}
	}
}

func (b *statefulBubble) submitGuess() {
	value, err := strconv.ParseFloat(strings.TrimSpace(b.inputC.Value()), 64)
	b.inputC.SetValue("")
	if err != nil {
		b.notice = "Rating must be a number between 0-10."
		return
	}

	outcome, err := b.options.Guess.Guess(player, value)
	if err != nil {
		b.notice = err.Error()
		return
	}

	b.notice = ""
	b.reply = view.Reply{Embeds: []*view.Embed{view.GuessOutcome(outcome)}}
	if outcome.Result.Over() {
		b.final = outcome.Score
		b.newState(overState)
	}
}

func (b *statefulBubble) call(direction game.Direction) {
	outcome, err := b.options.HigherLower.Play(player, b.ref, direction)
	if err != nil {
		b.notice = err.Error()
		return
	}

	b.reply = view.HigherLowerOutcome(outcome)
	if next, ok := outcome.Round.Get(); ok {
		b.ref = next.Ref
		return
	}
	b.final = outcome.Streak
	b.newState(overState)
}

func (b *statefulBubble) turnPage(action pager.Action) {
	if b.pages.Move(player, action) {
		b.reply = view.RankingPage(b.options.Title, b.pages.Page())
	}
}
