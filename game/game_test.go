package game

import (
	"context"
	"errors"
	"testing"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/errs"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/session"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// firstRand always draws the first remaining item, making draws follow pool order.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

// lastRand always draws the last remaining item.
type lastRand struct{}

func (lastRand) IntN(n int) int { return n - 1 }

type staticSource struct {
	records []anime.Record
	asked   int
}

func (s *staticSource) Pool(_ context.Context, _ mal.RankingKind, size int) []anime.Record {
	s.asked = size
	return s.records[:min(size, len(s.records))]
}

type rankingPages struct {
	ids []int
}

func (r rankingPages) TopRanked(_ context.Context, _ mal.RankingKind, _ int) []mal.Anime {
	return lo.Map(r.ids, func(id int, _ int) mal.Anime {
		mean := float64(id)
		return mal.Anime{ID: id, Title: "anime", Mean: &mean}
	})
}

func rated(ratings ...float64) []anime.Record {
	return lo.Map(ratings, func(r float64, i int) anime.Record {
		return anime.Record{ID: i + 1, Title: "anime", Mean: mo.Some(r)}
	})
}

func TestPool(t *testing.T) {
	Convey("Given a pool of five", t, func() {
		items := []int{1, 2, 3, 4, 5}
		pool := NewPool(items, DefaultRand)

		Convey("Each draw should remove exactly one item and never repeat", func() {
			seen := map[int]bool{}
			for i := 0; i < 5; i++ {
				item, ok := pool.Draw()
				So(ok, ShouldBeTrue)
				So(seen[item], ShouldBeFalse)
				seen[item] = true
				So(pool.Len(), ShouldEqual, 4-i)
			}

			_, ok := pool.Draw()
			So(ok, ShouldBeFalse)
		})

		Convey("The source slice should be left untouched", func() {
			pool.Draw()
			So(items, ShouldResemble, []int{1, 2, 3, 4, 5})
		})

		Convey("Draws should follow the injected randomness", func() {
			p := NewPool(items, lastRand{})
			item, _ := p.Draw()
			So(item, ShouldEqual, 5)
		})
	})
}

func TestDifficulty(t *testing.T) {
	Convey("Difficulty", t, func() {
		Convey("Margins should follow the table", func() {
			So(Easy.Margin(), ShouldEqual, 0.5)
			So(Medium.Margin(), ShouldEqual, 0.25)
			So(Hard.Margin(), ShouldEqual, 0.1)
		})

		Convey("The boundary should be inclusive", func() {
			So(Medium.Accepts(7.25, 7.5), ShouldBeTrue)
			So(Medium.Accepts(7.75, 7.5), ShouldBeTrue)
			So(Medium.Accepts(7.24, 7.5), ShouldBeFalse)
			So(Hard.Accepts(8.52, 8.62), ShouldBeTrue)
		})

		Convey("Parsing should be case-insensitive", func() {
			d, err := ParseDifficulty("HARD")
			So(err, ShouldBeNil)
			So(d, ShouldEqual, Hard)

			_, err = ParseDifficulty("insane")
			So(err.Error(), ShouldEqual, `Invalid difficulty "insane". Valid options: easy, medium, hard.`)
		})
	})
}

func TestGuessEngine(t *testing.T) {
	Convey("Given a guess engine over ratings 7.5, 8.0, 6.0", t, func() {
		source := &staticSource{records: rated(7.5, 8.0, 6.0)}
		store := session.NewMemory[*GuessSession]()
		engine := NewGuessEngine(source, store, firstRand{})
		ctx := context.Background()

		Convey("Guessing without a game should report no session", func() {
			_, err := engine.Guess("u", 5)
			So(errors.Is(err, ErrNoSession), ShouldBeTrue)
		})

		Convey("Start should reject out-of-range pool sizes", func() {
			for _, size := range []int{0, 2501} {
				_, err := engine.Start(ctx, "u", Medium, size, mal.ByPopularity)
				v, ok := errs.AsValidation(err)
				So(ok, ShouldBeTrue)
				So(v.Error(), ShouldEqual, "Limit must be a number between 1-2500.")
			}
			So(store.Len(), ShouldEqual, 0)
		})

		Convey("Start should fail on an empty source", func() {
			empty := NewGuessEngine(&staticSource{}, store, firstRand{})
			_, err := empty.Start(ctx, "u", Medium, 10, mal.ByPopularity)
			So(errors.Is(err, ErrEmptyPool), ShouldBeTrue)
		})

		Convey("After starting", func() {
			round, err := engine.Start(ctx, "u", Medium, 500, mal.Airing)
			So(err, ShouldBeNil)
			So(source.asked, ShouldEqual, 500)
			So(round.Current.Rating(), ShouldEqual, 7.5)
			So(round.Pooled, ShouldEqual, 3)

			Convey("An out-of-range guess should change nothing", func() {
				_, err := engine.Guess("u", 10.5)
				_, ok := errs.AsValidation(err)
				So(ok, ShouldBeTrue)
				So(store.Get("u").MustGet().Score, ShouldEqual, 0)
			})

			Convey("A guess exactly margin away should count and draw the next record", func() {
				out, err := engine.Guess("u", 7.25)
				So(err, ShouldBeNil)
				So(out.Result, ShouldEqual, Continue)
				So(out.Score, ShouldEqual, 1)
				So(out.Actual(), ShouldEqual, 7.5)
				So(out.Next.MustGet().Rating(), ShouldEqual, 8.0)
				So(store.Get("u").MustGet().Pool.Len(), ShouldEqual, 1)
			})

			Convey("A wrong guess should end the game regardless of the pool", func() {
				out, err := engine.Guess("u", 7.24)
				So(err, ShouldBeNil)
				So(out.Result, ShouldEqual, Wrong)
				So(out.Score, ShouldEqual, 0)
				So(store.Get("u").IsAbsent(), ShouldBeTrue)

				_, err = engine.Guess("u", 8)
				So(errors.Is(err, ErrNoSession), ShouldBeTrue)
			})

			Convey("Clearing the pool should end the game with the final score", func() {
				engine.Guess("u", 7.5)
				engine.Guess("u", 8.0)
				out, err := engine.Guess("u", 6.0)
				So(err, ShouldBeNil)
				So(out.Result, ShouldEqual, Exhausted)
				So(out.Score, ShouldEqual, 3)
				So(out.Next.IsAbsent(), ShouldBeTrue)
				So(store.Len(), ShouldEqual, 0)
			})

			Convey("Starting again should replace the round", func() {
				engine.Guess("u", 7.5)
				_, err := engine.Start(ctx, "u", Hard, 2, mal.ByPopularity)
				So(err, ShouldBeNil)
				s := store.Get("u").MustGet()
				So(s.Score, ShouldEqual, 0)
				So(s.Difficulty, ShouldEqual, Hard)
				So(s.Pool.Len(), ShouldEqual, 1)
			})
		})
	})
}

func TestHigherLowerEngine(t *testing.T) {
	Convey("Given a higher/lower engine over ratings 8.0, 8.0, 9.0, 7.0", t, func() {
		source := &staticSource{records: rated(8.0, 8.0, 9.0, 7.0)}
		store := session.NewMemory[*HigherLowerSession]()
		engine := NewHigherLowerEngine(source, store, firstRand{})
		ctx := context.Background()

		Convey("Start should require room for two records", func() {
			_, err := engine.Start(ctx, "u", 1, mal.ByPopularity)
			So(err.Error(), ShouldEqual, `Invalid limit "1". Limit must be a number between 2-2500.`)

			single := NewHigherLowerEngine(&staticSource{records: rated(5)}, store, firstRand{})
			_, err = single.Start(ctx, "u", 10, mal.ByPopularity)
			So(errors.Is(err, ErrEmptyPool), ShouldBeTrue)
		})

		Convey("Playing without a game should report no session", func() {
			_, err := engine.Play("u", Ref{}, Higher)
			So(errors.Is(err, ErrNoSession), ShouldBeTrue)
		})

		Convey("After starting", func() {
			round, err := engine.Start(ctx, "u", 500, mal.ByPopularity)
			So(err, ShouldBeNil)
			So(round.Current.ID, ShouldNotEqual, round.Next.ID)
			So(store.Get("u").MustGet().Pool.Len(), ShouldEqual, 2)

			Convey("A tie should be correct when calling higher", func() {
				out, err := engine.Play("u", round.Ref, Higher)
				So(err, ShouldBeNil)
				So(out.Result, ShouldEqual, Continue)
				So(out.Streak, ShouldEqual, 1)
			})

			Convey("A tie should be correct when calling lower", func() {
				out, err := engine.Play("u", round.Ref, Lower)
				So(err, ShouldBeNil)
				So(out.Result, ShouldEqual, Continue)

				Convey("and the revealed record should become current", func() {
					next := out.Round.MustGet()
					So(next.Current.ID, ShouldEqual, round.Next.ID)
					So(next.Next.Rating(), ShouldEqual, 9.0)
					So(next.Ref.Turn, ShouldEqual, 1)
				})
			})

			Convey("Replaying an earlier turn should be rejected", func() {
				_, err := engine.Play("u", round.Ref, Higher)
				So(err, ShouldBeNil)
				_, err = engine.Play("u", round.Ref, Higher)
				So(errors.Is(err, ErrStaleTurn), ShouldBeTrue)
				So(store.Get("u").MustGet().Streak, ShouldEqual, 1)
			})

			Convey("A wrong call should end the game with the streak so far", func() {
				out, _ := engine.Play("u", round.Ref, Higher)
				out, err := engine.Play("u", out.Round.MustGet().Ref, Lower)
				So(err, ShouldBeNil)
				So(out.Result, ShouldEqual, Wrong)
				So(out.Streak, ShouldEqual, 1)
				So(out.Previous.Rating(), ShouldEqual, 8.0)
				So(out.Revealed.Rating(), ShouldEqual, 9.0)
				So(store.Len(), ShouldEqual, 0)
			})

			Convey("Clearing the pool should end the game", func() {
				out, _ := engine.Play("u", round.Ref, Higher)
				out, _ = engine.Play("u", out.Round.MustGet().Ref, Higher)
				out, err := engine.Play("u", out.Round.MustGet().Ref, Lower)
				So(err, ShouldBeNil)
				So(out.Result, ShouldEqual, Exhausted)
				So(out.Streak, ShouldEqual, 3)
				So(out.Round.IsAbsent(), ShouldBeTrue)
				So(store.Len(), ShouldEqual, 0)
			})

			Convey("A click from a replaced round should be rejected", func() {
				_, err := engine.Start(ctx, "u", 500, mal.ByPopularity)
				So(err, ShouldBeNil)
				_, err = engine.Play("u", round.Ref, Higher)
				So(errors.Is(err, ErrStaleTurn), ShouldBeTrue)
			})
		})
	})

	Convey("Directions", t, func() {
		So(Higher.Correct(8, 8), ShouldBeTrue)
		So(Lower.Correct(8, 8), ShouldBeTrue)
		So(Higher.Correct(8, 7.9), ShouldBeFalse)
		So(Lower.Correct(8, 8.1), ShouldBeFalse)

		d, ok := ParseDirection("Higher")
		So(ok, ShouldBeTrue)
		So(d, ShouldEqual, Higher)
		_, ok = ParseDirection("sideways")
		So(ok, ShouldBeFalse)
	})
}

func TestMALSource(t *testing.T) {
	Convey("Given ranking pages that overlap", t, func() {
		source := NewMALSource(rankingPages{ids: []int{1, 1, 2}})
		ctx := context.Background()

		Convey("The pool should hold each anime once", func() {
			pool := source.Pool(ctx, mal.ByPopularity, 3)
			ids := lo.Map(pool, func(r anime.Record, _ int) int { return r.ID })
			So(ids, ShouldResemble, []int{1, 2})
		})

		Convey("Higher/lower should never pair an anime with itself", func() {
			store := session.NewMemory[*HigherLowerSession]()
			engine := NewHigherLowerEngine(source, store, firstRand{})
			round, err := engine.Start(ctx, "u", 3, mal.ByPopularity)
			So(err, ShouldBeNil)
			So(round.Current.ID, ShouldEqual, 1)
			So(round.Next.ID, ShouldEqual, 2)
		})

		Convey("A pool of one repeated anime should be too small to play", func() {
			store := session.NewMemory[*HigherLowerSession]()
			engine := NewHigherLowerEngine(NewMALSource(rankingPages{ids: []int{4, 4}}), store, firstRand{})
			_, err := engine.Start(ctx, "u", 2, mal.ByPopularity)
			So(errors.Is(err, ErrEmptyPool), ShouldBeTrue)
		})
	})
}
