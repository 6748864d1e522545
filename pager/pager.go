// Package pager splits an ordered sequence into fixed-size pages navigated by a single owner.
package pager

import (
	"sync"

	"github.com/samber/lo"
)

// Size is the number of items on a page.
const Size = 10

// Action is a navigation request.
type Action string

const (
	Prev     Action = "prev"
	PrevFive Action = "prev5"
	NextFive Action = "next5"
	Next     Action = "next"
)

// Actions in the order their controls are laid out.
var Actions = []Action{Prev, PrevFive, NextFive, Next}

var deltas = map[Action]int{
	Prev:     -1,
	PrevFive: -5,
	NextFive: 5,
	Next:     1,
}

// ParseAction recognizes an Action by name.
func ParseAction(s string) (Action, bool) {
	a := Action(s)
	_, ok := deltas[a]
	return a, ok
}

// Pager holds the current page over an immutable item sequence.
type Pager[T any] struct {
	mu      sync.Mutex
	items   []T
	owner   string
	current int
}

// New returns a pager over items, positioned on the first page and movable only by owner.
func New[T any](owner string, items []T) *Pager[T] {
	return &Pager[T]{items: items, owner: owner}
}

// Owner returns the identity allowed to move the pager.
func (p *Pager[T]) Owner() string {
	return p.owner
}

// Total is ceil(len(items) / Size).
func (p *Pager[T]) Total() int {
	return (len(p.items) + Size - 1) / Size
}

// Move applies the action on behalf of user and reports whether the page changed.
// Moves by anyone but the owner are ignored. Results are clamped to the valid range, never wrapped.
func (p *Pager[T]) Move(user string, action Action) bool {
	if user != p.owner {
		return false
	}

	delta, ok := deltas[action]
	if !ok {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	next := lo.Clamp(p.current+delta, 0, max(p.Total()-1, 0))
	changed := next != p.current
	p.current = next
	return changed
}

// Page snapshots the current window.
func (p *Pager[T]) Page() Page[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := p.current * Size
	end := min(start+Size, len(p.items))

	return Page[T]{
		Items:  p.items[start:end],
		Index:  p.current,
		Total:  p.Total(),
		Offset: start,
	}
}

// Page is one window of a pager.
type Page[T any] struct {
	Items []T
	// Index is zero-based.
	Index int
	Total int
	// Offset of the first item within the whole sequence.
	Offset int
}

// HasPrev reports whether a backward move would change the page.
func (p Page[T]) HasPrev() bool {
	return p.Index > 0
}

// HasNext reports whether a forward move would change the page.
func (p Page[T]) HasNext() bool {
	return p.Index < p.Total-1
}

// Enabled reports whether the control for action should be active on this page.
func (p Page[T]) Enabled(action Action) bool {
	if deltas[action] < 0 {
		return p.HasPrev()
	}
	return p.HasNext()
}
