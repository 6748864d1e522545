package game

import (
	"context"
	"math"
	"sync"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/errs"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/session"
	"github.com/samber/mo"
)

// GuessSession is one user's Guess-The-Rating round.
type GuessSession struct {
	Current    anime.Record
	Pool       *Pool[anime.Record]
	Score      int
	Difficulty Difficulty
}

// GuessRound is what a player sees when a round opens.
type GuessRound struct {
	Current    anime.Record
	Difficulty Difficulty
	Pooled     int
}

// GuessOutcome describes a judged guess.
type GuessOutcome struct {
	Result     Result
	Guess      float64
	Difficulty Difficulty
	// Answered is the record the guess was about.
	Answered anime.Record
	Score    int
	// Next is the record drawn for the following guess, present only on Continue.
	Next mo.Option[anime.Record]
}

// Actual is the true rating of the answered record.
func (o GuessOutcome) Actual() float64 {
	return o.Answered.Rating()
}

// GuessEngine runs Guess-The-Rating rounds, one per user.
type GuessEngine struct {
	mu     sync.Mutex
	store  session.Store[*GuessSession]
	source Source
	rnd    Rand
}

// NewGuessEngine returns an engine drawing pools from source and keeping sessions in store.
func NewGuessEngine(source Source, store session.Store[*GuessSession], rnd Rand) *GuessEngine {
	return &GuessEngine{store: store, source: source, rnd: rnd}
}

// Active is the number of running rounds.
func (e *GuessEngine) Active() int {
	return e.store.Len()
}

// Start opens a round for user, replacing any round already running.
func (e *GuessEngine) Start(ctx context.Context, user string, difficulty Difficulty, size int, kind mal.RankingKind) (GuessRound, error) {
	if size < MinGuessPool || size > MaxPool {
		return GuessRound{}, errs.Newf("Limit must be a number between %d-%d.", MinGuessPool, MaxPool)
	}

	records := e.source.Pool(ctx, kind, size)
	if len(records) < MinGuessPool {
		return GuessRound{}, ErrEmptyPool
	}

	pool := NewPool(records, e.rnd)
	current, _ := pool.Draw()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.Put(user, &GuessSession{
		Current:    current,
		Pool:       pool,
		Difficulty: difficulty,
	})

	return GuessRound{Current: current, Difficulty: difficulty, Pooled: len(records)}, nil
}

// Guess judges value against the rating of the user's current record.
// A wrong guess or an exhausted pool deletes the session before the outcome is returned.
func (e *GuessEngine) Guess(user string, value float64) (GuessOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.store.Get(user).Get()
	if !ok {
		return GuessOutcome{}, ErrNoSession
	}

	if math.IsNaN(value) || value < 0 || value > 10 {
		return GuessOutcome{}, errs.Newf("Rating must be between 0 and 10.")
	}

	outcome := GuessOutcome{
		Guess:      value,
		Difficulty: s.Difficulty,
		Answered:   s.Current,
	}

	if !s.Difficulty.Accepts(value, s.Current.Rating()) {
		e.store.Delete(user)
		outcome.Result = Wrong
		outcome.Score = s.Score
		return outcome, nil
	}

	s.Score++
	outcome.Score = s.Score

	next, ok := s.Pool.Draw()
	if !ok {
		e.store.Delete(user)
		outcome.Result = Exhausted
		return outcome, nil
	}

	s.Current = next
	outcome.Result = Continue
	outcome.Next = mo.Some(next)
	return outcome, nil
}
