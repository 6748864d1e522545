// Package tui is a terminal playground for the games and the paged listings.
package tui

import (
	"context"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/mal"
	tea "github.com/charmbracelet/bubbletea"
)

// player is the session key of the single terminal user.
const player = "terminal"

// Mode selects what the playground runs.
type Mode int

const (
	GuessMode Mode = iota
	HigherLowerMode
	BrowseMode
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Mode Mode

	Guess       *game.GuessEngine
	HigherLower *game.HigherLowerEngine
	Difficulty  game.Difficulty
	PoolSize    int
	Ranking     mal.RankingKind

	// Title of the browsed listing and the loader of its records, for BrowseMode.
	Title  string
	Browse func(ctx context.Context) []anime.Record
}

// Run initializes and executes the Bubble Tea application loop.
func Run(ctx context.Context, options *Options) error {
	_, err := tea.NewProgram(newBubble(ctx, options), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
