package tui

import (
	"github.com/anisan-cli/anibot/color"
	"github.com/anisan-cli/anibot/icon"
	"github.com/anisan-cli/anibot/style"
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap defines the keys available in each state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm, restart, back,
	higher, lower,
	prev, next, prevFive, nextFive key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("guess")),
		),
		restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		higher: key.NewBinding(
			key.WithKeys("up", "k", "h"),
			key.WithHelp("↑/h", icon.Get(icon.Higher)+" higher"),
		),
		lower: key.NewBinding(
			key.WithKeys("down", "j", "l"),
			key.WithHelp("↓/l", icon.Get(icon.Lower)+" lower"),
		),
		prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		prevFive: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "-5 pages"),
		),
		nextFive: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "+5 pages"),
		),
	}
}

func (k *statefulKeymap) help() []key.Binding {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case loadingState:
		return h(k.forceQuit)
	case guessState:
		return h(k.confirm, k.forceQuit)
	case higherLowerState:
		return h(k.higher, k.lower, k.quit)
	case browseState:
		return h(k.prev, k.next, k.prevFive, k.nextFive, k.quit)
	case overState:
		return h(k.restart, k.quit)
	case errorState:
		return h(k.back, k.quit)
	default:
		return h()
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	return k.help()
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.help()}
}
