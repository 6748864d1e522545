package anime

import (
	"strings"

	"github.com/anisan-cli/anibot/mal"
	"golang.org/x/exp/slices"
)

// SortEntries orders a fetched list in place. Alphabetical compares titles
// case-insensitively; by score puts the user's highest scores first. Ties keep
// their upstream order.
func SortEntries(entries []ListEntry, by mal.ListSort) {
	switch by {
	case mal.ByScore:
		slices.SortStableFunc(entries, func(a, b ListEntry) int {
			return b.Score - a.Score
		})
	default:
		slices.SortStableFunc(entries, func(a, b ListEntry) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	}
}
