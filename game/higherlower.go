package game

import (
	"context"
	"strings"
	"sync"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/errs"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/session"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// Direction is a higher/lower call on the next record's rating.
type Direction string

const (
	Higher Direction = "higher"
	Lower  Direction = "lower"
)

// ParseDirection accepts "higher" or "lower" in any case.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(s))
	return d, d == Higher || d == Lower
}

// Correct reports whether the call holds. Equal ratings satisfy both directions.
func (d Direction) Correct(current, next float64) bool {
	switch d {
	case Higher:
		return next >= current
	case Lower:
		return next <= current
	default:
		return false
	}
}

// Ref identifies one turn of one round. Controls carry it so a late click on an
// earlier turn, or on a replaced round, cannot be played twice.
type Ref struct {
	Session uuid.UUID
	Turn    int
}

// HigherLowerSession is one user's Higher/Lower round.
type HigherLowerSession struct {
	ID      uuid.UUID
	Turn    int
	Current anime.Record
	Next    anime.Record
	Pool    *Pool[anime.Record]
	Streak  int
}

// HigherLowerRound is the pair a player is asked to compare.
type HigherLowerRound struct {
	Ref     Ref
	Current anime.Record
	Next    anime.Record
	Streak  int
}

// HigherLowerOutcome describes a judged call.
type HigherLowerOutcome struct {
	Result    Result
	Direction Direction
	Streak    int
	// Previous is the record the call was compared against.
	Previous anime.Record
	// Revealed is the record whose rating was guessed.
	Revealed anime.Record
	// Round is the following pair, present only on Continue.
	Round mo.Option[HigherLowerRound]
}

// HigherLowerEngine runs Higher/Lower rounds, one per user.
type HigherLowerEngine struct {
	mu     sync.Mutex
	store  session.Store[*HigherLowerSession]
	source Source
	rnd    Rand
}

// NewHigherLowerEngine returns an engine drawing pools from source and keeping sessions in store.
func NewHigherLowerEngine(source Source, store session.Store[*HigherLowerSession], rnd Rand) *HigherLowerEngine {
	return &HigherLowerEngine{store: store, source: source, rnd: rnd}
}

// Active is the number of running rounds.
func (e *HigherLowerEngine) Active() int {
	return e.store.Len()
}

// Start opens a round for user, replacing any round already running.
func (e *HigherLowerEngine) Start(ctx context.Context, user string, size int, kind mal.RankingKind) (HigherLowerRound, error) {
	if size < MinHigherLowerPool || size > MaxPool {
		return HigherLowerRound{}, errs.Newf("Invalid limit \"%d\". Limit must be a number between %d-%d.", size, MinHigherLowerPool, MaxPool)
	}

	records := e.source.Pool(ctx, kind, size)
	if len(records) < MinHigherLowerPool {
		return HigherLowerRound{}, ErrEmptyPool
	}

	pool := NewPool(records, e.rnd)
	current, _ := pool.Draw()
	next, _ := pool.Draw()

	s := &HigherLowerSession{
		ID:      uuid.New(),
		Current: current,
		Next:    next,
		Pool:    pool,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.Put(user, s)
	return s.round(), nil
}

// Play judges a call for the turn identified by ref.
// A wrong call or an exhausted pool deletes the session before the outcome is returned.
func (e *HigherLowerEngine) Play(user string, ref Ref, direction Direction) (HigherLowerOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.store.Get(user).Get()
	if !ok {
		return HigherLowerOutcome{}, ErrNoSession
	}
	if s.ID != ref.Session || s.Turn != ref.Turn {
		return HigherLowerOutcome{}, ErrStaleTurn
	}

	outcome := HigherLowerOutcome{
		Direction: direction,
		Previous:  s.Current,
		Revealed:  s.Next,
	}

	if !direction.Correct(s.Current.Rating(), s.Next.Rating()) {
		e.store.Delete(user)
		outcome.Result = Wrong
		outcome.Streak = s.Streak
		return outcome, nil
	}

	s.Streak++
	outcome.Streak = s.Streak

	next, ok := s.Pool.Draw()
	if !ok {
		e.store.Delete(user)
		outcome.Result = Exhausted
		return outcome, nil
	}

	s.Current = s.Next
	s.Next = next
	s.Turn++

	outcome.Result = Continue
	outcome.Round = mo.Some(s.round())
	return outcome, nil
}

func (s *HigherLowerSession) round() HigherLowerRound {
	return HigherLowerRound{
		Ref:     Ref{Session: s.ID, Turn: s.Turn},
		Current: s.Current,
		Next:    s.Next,
		Streak:  s.Streak,
	}
}
