package tui

import (
	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/pager"
	"github.com/anisan-cli/anibot/view"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, textinput.Blink, b.start())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case guessStartedMsg:
		b.reply = view.Reply{Embeds: []*view.Embed{view.GuessStart(game.GuessRound(msg))}}
		b.newState(guessState)
		return b, b.inputC.Focus()
	case higherLowerStartedMsg:
		intro, prompt := view.HigherLowerStart(game.HigherLowerRound(msg))
		b.ref = msg.Ref
		b.reply = view.Reply{Embeds: append(intro.Embeds, prompt.Embeds...), Buttons: prompt.Buttons}
		b.newState(higherLowerState)
		return b, nil
	case browseLoadedMsg:
		b.pages = pager.New(player, msg)
		b.reply = view.RankingPage(b.options.Title, b.pages.Page())
		b.newState(browseState)
		return b, nil
	case tea.KeyMsg:
		return b.updateKey(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := b.keymap

	if bubblesKey.Matches(msg, k.forceQuit) {
		return b, tea.Quit
	}

	switch b.state {
	case guessState:
		if bubblesKey.Matches(msg, k.confirm) {
			b.submitGuess()
			return b, nil
		}
		var cmd tea.Cmd
		b.inputC, cmd = b.inputC.Update(msg)
		return b, cmd
	case higherLowerState:
		switch {
		case bubblesKey.Matches(msg, k.higher):
			b.call(game.Higher)
		case bubblesKey.Matches(msg, k.lower):
			b.call(game.Lower)
		case bubblesKey.Matches(msg, k.quit):
			return b, tea.Quit
		}
	case browseState:
		switch {
		case bubblesKey.Matches(msg, k.prev):
			b.turnPage(pager.Prev)
		case bubblesKey.Matches(msg, k.next):
			b.turnPage(pager.Next)
		case bubblesKey.Matches(msg, k.prevFive):
			b.turnPage(pager.PrevFive)
		case bubblesKey.Matches(msg, k.nextFive):
			b.turnPage(pager.NextFive)
		case bubblesKey.Matches(msg, k.quit):
			return b, tea.Quit
		}
	case overState:
		switch {
		case bubblesKey.Matches(msg, k.restart):
			return b, b.start()
		case bubblesKey.Matches(msg, k.quit):
			return b, tea.Quit
		}
	case errorState:
		switch {
		case bubblesKey.Matches(msg, k.back):
			b.previousState()
		case bubblesKey.Matches(msg, k.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}
