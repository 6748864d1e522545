package view

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/pager"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func record(id int, title string, mean float64) anime.Record {
	return anime.Record{ID: id, Title: title, Mean: mo.Some(mean)}
}

func TestEmbedLimits(t *testing.T) {
	Convey("Given an embed", t, func() {
		e := NewEmbed(strings.Repeat("t", 300), Blue)

		Convey("The title should be capped", func() {
			So(utf8.RuneCountInString(e.Title), ShouldEqual, TitleLimit)
		})

		Convey("Empty field values should become a placeholder", func() {
			e.Field("Genres", "", false)
			So(e.Fields[0].Value, ShouldEqual, anime.NotAvailable)
		})

		Convey("Field values should be capped", func() {
			e.Field("x", strings.Repeat("v", 2000), false)
			So(utf8.RuneCountInString(e.Fields[0].Value), ShouldEqual, FieldValueLimit)
		})

		Convey("No more than the field count limit should be kept", func() {
			for i := 0; i < 30; i++ {
				e.Field("f", "v", true)
			}
			So(len(e.Fields), ShouldEqual, FieldCountLimit)
		})
	})
}

func TestDetail(t *testing.T) {
	Convey("Given a detailed record", t, func() {
		d := anime.Detail{
			Record: anime.Record{
				ID:        5114,
				Title:     "Fullmetal Alchemist: Brotherhood",
				Mean:      mo.Some(9.1),
				Picture:   mo.Some(anime.Picture{Medium: "m.jpg", Large: "l.jpg"}),
				Synopsis:  "Two brothers.",
				StartDate: "2009-04-05",
			},
			EndDate:  "2010-07-04",
			Status:   "finished_airing",
			Episodes: mo.Some(64),
			Genres:   []string{"Action", "Drama"},
		}

		e := Detail(d)

		Convey("Fields should follow the detail layout", func() {
			names := lo.Map(e.Fields, func(f Field, _ int) string { return f.Name })
			So(names, ShouldResemble, []string{
				"Rating", "Episodes", "Status", "Aired", "Genres", "Related Anime:", "Studios", "ID", "MyAnimeList",
			})
			So(e.Fields[0].Value, ShouldEqual, "9.1")
			So(e.Fields[1].Value, ShouldEqual, "64")
			So(e.Fields[3].Inline, ShouldBeTrue)
			So(e.Fields[4].Value, ShouldEqual, "Action, Drama")
			So(e.Fields[5].Value, ShouldEqual, anime.NoRelations)
			So(e.Fields[6].Value, ShouldEqual, anime.NotAvailable)
			So(e.Fields[8].Value, ShouldEqual, "[View on MAL](https://myanimelist.net/anime/5114)")
		})

		Convey("The large picture should be used", func() {
			So(e.Image, ShouldEqual, "l.jpg")
			So(e.Color, ShouldEqual, Green)
		})

		Convey("Unknown episode counts should show a question mark", func() {
			d.Episodes = mo.None[int]()
			So(Detail(d).Fields[1].Value, ShouldEqual, "?")
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given search results", t, func() {
		results := []anime.Record{
			record(1, "Naruto", 8),
			record(2, strings.Repeat("N", 150), 7),
		}
		reply := Search("naruto", results)

		Convey("The listing should number each result", func() {
			e := reply.Embeds[0]
			So(e.Title, ShouldEqual, "Search results for 'naruto'")
			So(e.Fields[0].Name, ShouldEqual, "1. Naruto\n(ID: 1)")
			So(e.Footer, ShouldEqual, searchFooter)
		})

		Convey("The dropdown should offer every result with capped labels", func() {
			So(reply.Select, ShouldNotBeNil)
			So(len(reply.Select.Options), ShouldEqual, 2)
			So(reply.Select.Options[1].Value, ShouldEqual, "1")
			So(utf8.RuneCountInString(reply.Select.Options[1].Label), ShouldEqual, LabelLimit)
		})
	})
}

func TestPages(t *testing.T) {
	Convey("Given a pager over 23 ranked records", t, func() {
		records := lo.Map(lo.Range(23), func(i, _ int) anime.Record {
			r := record(i+1, "anime", 8)
			r.Rank = mo.Some(i + 1)
			return r
		})
		p := pager.New("owner", records)

		Convey("The first page should disable backward controls", func() {
			reply := RankingPage(SeasonTitle("Spring", 2024), p.Page())
			So(reply.Embeds[0].Title, ShouldEqual, "Spring 2024 Anime")
			So(reply.Embeds[0].Description, ShouldEqual, "Page 1/3")
			So(len(reply.Embeds[0].Fields), ShouldEqual, 10)
			So(reply.Embeds[0].Fields[0].Value, ShouldEqual, "[View on MAL](https://myanimelist.net/anime/1)\nRank: 1 | Score: 8.0")

			disabled := lo.Map(reply.Buttons, func(b Button, _ int) bool { return b.Disabled })
			So(disabled, ShouldResemble, []bool{true, true, false, false})
		})

		Convey("The last page should disable forward controls", func() {
			p.Move("owner", pager.NextFive)
			reply := RankingPage("x", p.Page())
			So(reply.Embeds[0].Description, ShouldEqual, "Page 3/3")
			So(len(reply.Embeds[0].Fields), ShouldEqual, 3)

			disabled := lo.Map(reply.Buttons, func(b Button, _ int) bool { return b.Disabled })
			So(disabled, ShouldResemble, []bool{false, false, true, true})
		})

		Convey("Ranks that are missing should read N/A", func() {
			records[0].Rank = mo.None[int]()
			reply := RankingPage("x", pager.New("owner", records).Page())
			So(reply.Embeds[0].Fields[0].Value, ShouldContainSubstring, "Rank: N/A")
		})
	})

	Convey("Given a list page", t, func() {
		entries := []anime.ListEntry{{Record: record(1, "Mushishi", 8.6), Score: 9, Status: "Completed"}}
		reply := ListPage(ListTitle("someone", ""), anime.ProfileURL("someone"), pager.New("owner", entries).Page())

		So(reply.Embeds[0].Title, ShouldEqual, "someone's Anime List (All)")
		So(reply.Embeds[0].Description, ShouldStartWith, "[View profile on MAL](https://myanimelist.net/profile/someone)\n\n")
		So(reply.Embeds[0].Fields[0].Value, ShouldEndWith, "Score: 9/10 | Status: Completed")
	})

	Convey("Ranking titles should name the ordering", t, func() {
		So(RankingTitle("airing"), ShouldEqual, "Top Airing Anime")
		So(RankingTitle("unknown"), ShouldEqual, "Top Anime")
	})
}

func TestGameViews(t *testing.T) {
	Convey("Guess-The-Rating", t, func() {
		current := record(1, "Monster", 8.9)

		Convey("The start should state the margin", func() {
			e := GuessStart(game.GuessRound{Current: current, Difficulty: game.Medium})
			So(e.Fields[1].Value, ShouldStartWith, "Guess the rating (0-10) within ±0.25 points!")
		})

		Convey("A correct guess should show the next anime", func() {
			e := GuessOutcome(game.GuessOutcome{
				Result:     game.Continue,
				Guess:      8.75,
				Difficulty: game.Medium,
				Answered:   current,
				Score:      1,
				Next:       mo.Some(record(2, "Mononoke", 8.4)),
			})
			So(e.Title, ShouldEqual, correctOne)
			So(e.Fields[0].Value, ShouldEqual, "8.75")
			So(e.Fields[1].Value, ShouldEqual, "8.9")
			So(e.Fields[4].Value, ShouldEqual, "Mononoke")
		})

		Convey("A wrong guess should report the final score", func() {
			e := GuessOutcome(game.GuessOutcome{Result: game.Wrong, Guess: 5, Difficulty: game.Hard, Answered: current, Score: 3})
			So(e.Title, ShouldEqual, wrongOne)
			So(e.Color, ShouldEqual, Red)
			So(e.Fields[3], ShouldResemble, Field{Name: "Final Score", Value: "3"})
		})

		Convey("An exhausted pool should end the game", func() {
			e := GuessOutcome(game.GuessOutcome{Result: game.Exhausted, Guess: 8.9, Answered: current, Score: 2})
			So(e.Fields[len(e.Fields)-1].Value, ShouldEqual, exhausted)
		})
	})

	Convey("Higher/Lower", t, func() {
		round := game.HigherLowerRound{Current: record(1, "A", 8), Next: record(2, "B", 7)}

		Convey("The start should hide the next rating", func() {
			intro, prompt := HigherLowerStart(round)
			So(intro.Embeds[0].Fields[1].Value, ShouldEqual, "8.0")
			So(prompt.Embeds[0].Fields[0], ShouldResemble, Field{Name: "Title", Value: "B"})
			So(len(prompt.Buttons), ShouldEqual, 2)
		})

		Convey("A correct call should carry buttons for the next turn", func() {
			reply := HigherLowerOutcome(game.HigherLowerOutcome{
				Result:   game.Continue,
				Streak:   1,
				Revealed: record(2, "B", 7),
				Round:    mo.Some(game.HigherLowerRound{Current: record(2, "B", 7), Next: record(3, "C", 9)}),
			})
			So(reply.Embeds[0].Fields[1].Value, ShouldEqual, "B\nRating: 7.0")
			So(reply.Embeds[0].Fields[2].Value, ShouldEqual, "C")
			So(len(reply.Buttons), ShouldEqual, 2)
		})

		Convey("A wrong call should show both records and no buttons", func() {
			reply := HigherLowerOutcome(game.HigherLowerOutcome{
				Result:   game.Wrong,
				Streak:   4,
				Previous: record(1, "A", 8),
				Revealed: record(2, "B", 9),
			})
			So(reply.Embeds[0].Fields[2].Value, ShouldEqual, "4")
			So(reply.Buttons, ShouldBeEmpty)
		})
	})

	Convey("Missing sessions should point at the start command", t, func() {
		So(NoSession("higherlower"), ShouldEqual, "Start a game first with /higherlower")
		So(NoSession("guess"), ShouldEqual, "Start a game first with /guessgame")
	})
}

func TestHelp(t *testing.T) {
	Convey("Given the embedded help", t, func() {
		So(Help.Names(), ShouldResemble, []string{"search", "anime", "list", "seasonal", "guessgame", "guess", "higherlower"})

		Convey("The overview should list three sections", func() {
			So(len(Help.Sections), ShouldEqual, 3)
			e := Help.Overview()
			So(len(e.Fields), ShouldEqual, 3)
			So(e.Fields[0].Name, ShouldEqual, Help.Sections[0].Section)
			So(e.Footer, ShouldEqual, helpFooter)
		})

		Convey("Command help should include its option lists", func() {
			e := Help.Command("LIST")
			names := lo.Map(e.Fields, func(f Field, _ int) string { return f.Name })
			So(names, ShouldResemble, []string{"Usage", "Description", "Valid Statuses", "Sort Options", "Example"})
			So(e.Fields[0].Value, ShouldEqual, "`/list <username> [sorting method] [status]`")
		})

		Convey("Unknown commands should suggest the closest name", func() {
			e := Help.Command("serch")
			So(e.Title, ShouldEqual, "❌ Unknown Command")
			So(e.Description, ShouldContainSubstring, "Did you mean `/help search`?")

			e = Help.Command("xyzzyplugh")
			So(e.Description, ShouldNotContainSubstring, "Did you mean")
		})
	})
}
