package game

import "errors"

// Pool size bounds accepted by Start.
const (
	MinGuessPool       = 1
	MinHigherLowerPool = 2
	MaxPool            = 2500
)

var (
	// ErrNoSession is returned by a turn for a user without an active round.
	ErrNoSession = errors.New("no active game")
	// ErrEmptyPool is returned by Start when the source yields too few records.
	ErrEmptyPool = errors.New("could not build an anime pool")
	// ErrStaleTurn is returned when a turn refers to a round that has already moved on.
	ErrStaleTurn = errors.New("turn already played")
)

// Result classifies the outcome of a turn.
type Result int

const (
	// Continue means the answer was right and another record was drawn.
	Continue Result = iota
	// Exhausted means the answer was right and the pool ran out. The session is gone.
	Exhausted
	// Wrong means the answer was wrong. The session is gone.
	Wrong
)

// Over reports whether the result ended the session.
func (r Result) Over() bool {
	return r != Continue
}
