// Package game implements the Guess-The-Rating and Higher/Lower engines.
package game

import (
	"math/rand/v2"

	"golang.org/x/exp/slices"
)

// Rand picks an index in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRand draws from the process-wide generator, which is safe for concurrent use.
var DefaultRand Rand = globalRand{}

// Pool is the set of records not yet presented in a round.
// Drawing removes the record, so a pool never yields the same element twice.
type Pool[T any] struct {
	items []T
	rnd   Rand
}

// NewPool copies items into a new pool.
func NewPool[T any](items []T, rnd Rand) *Pool[T] {
	return &Pool[T]{items: slices.Clone(items), rnd: rnd}
}

// Draw removes and returns a uniformly chosen item. It reports false when the pool is empty.
func (p *Pool[T]) Draw() (item T, ok bool) {
	if len(p.items) == 0 {
		return item, false
	}

	i := p.rnd.IntN(len(p.items))
	item = p.items[i]
	p.items = slices.Delete(p.items, i, i+1)
	return item, true
}

// Len is the number of items left.
func (p *Pool[T]) Len() int {
	return len(p.items)
}
