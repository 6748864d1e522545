package anime

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/anisan-cli/anibot/mal"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given a raw payload", t, func() {
		synopsis := "A bounty hunter crew."
		raw := mal.Anime{
			ID:                1,
			Title:             "Kaubōi Bibappu",
			AlternativeTitles: mal.AlternativeTitles{En: "Cowboy Bebop"},
			MainPicture:       &mal.Picture{Medium: "m.jpg", Large: "l.jpg"},
			Synopsis:          &synopsis,
			Mean:              lo.ToPtr(8.75),
			NumEpisodes:       lo.ToPtr(26),
			Genres:            []mal.Named{{Name: "Action"}, {Name: "Sci-Fi"}},
			RelatedAnime: []mal.Relation{
				{Node: mal.Anime{ID: 5, Title: "Movie"}, RelationType: "side_story"},
			},
		}

		Convey("FromDetail should flatten every field", func() {
			d := FromDetail(raw)
			So(d.ID, ShouldEqual, 1)
			So(d.Rating(), ShouldEqual, 8.75)
			So(d.Picture.MustGet().Large, ShouldEqual, "l.jpg")
			So(d.Episodes.MustGet(), ShouldEqual, 26)
			So(d.Genres, ShouldResemble, []string{"Action", "Sci-Fi"})
			So(d.Related[0], ShouldResemble, Relation{ID: 5, Title: "Movie", Type: "side_story"})
		})

		Convey("An absent mean should rate as zero", func() {
			raw.Mean = nil
			r := FromAnime(raw)
			So(r.Mean.IsAbsent(), ShouldBeTrue)
			So(r.Rating(), ShouldEqual, 0)
			So(Rating(r.Mean), ShouldEqual, NotAvailable)
		})

		Convey("Titles should show the English alternative", func() {
			r := FromAnime(raw)
			So(DisplayTitle(r), ShouldEqual, "Cowboy Bebop\n(Kaubōi Bibappu)")
			So(InlineTitle(r), ShouldEqual, "Cowboy Bebop (Kaubōi Bibappu)")

			raw.AlternativeTitles.En = raw.Title
			So(DisplayTitle(FromAnime(raw)), ShouldEqual, "Kaubōi Bibappu")
		})

		Convey("FromListItem should keep the viewer's score and status", func() {
			e := FromListItem(mal.ListItem{Node: raw, ListStatus: mal.ListStatusInfo{Score: 9, Status: "completed"}})
			So(e.Score, ShouldEqual, 9)
			So(e.Status, ShouldEqual, "completed")
			So(e.Title, ShouldEqual, raw.Title)
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Formatting helpers", t, func() {
		Convey("Year should take the part before the first separator", func() {
			So(Year("2023-04-07"), ShouldEqual, "2023")
			So(Year("1998"), ShouldEqual, "1998")
			So(Year(""), ShouldEqual, Unknown)
			So(Year(Unknown), ShouldEqual, Unknown)
		})

		Convey("Aired should describe the range", func() {
			So(Aired("2009-04-05", "2010-07-04"), ShouldEqual, "2009-04-05 to 2010-07-04")
			So(Aired("2024-01-01", ""), ShouldEqual, "2024-01-01")
			So(Aired("", "2010-07-04"), ShouldEqual, Unknown)
		})

		Convey("Ratings should keep one decimal", func() {
			So(FormatRating(9), ShouldEqual, "9.0")
			So(FormatRating(8.62), ShouldEqual, "8.62")
			So(Rating(mo.Some(7.5)), ShouldEqual, "7.5")
		})

		Convey("Synopsis should be cut to the budget", func() {
			r := Record{Synopsis: strings.Repeat("é", 3000)}
			So(utf8.RuneCountInString(Synopsis(r)), ShouldEqual, SynopsisBudget)
			So(Synopsis(Record{}), ShouldEqual, NoDescription)
			So(Snippet(Record{Synopsis: "abcdef"}, 3), ShouldEqual, "abc...")
		})

		Convey("Relation types should be title-cased", func() {
			So(RelationType("side_story"), ShouldEqual, "Side Story")
			So(RelationType("alternative_version"), ShouldEqual, "Alternative Version")
			So(Humanize("finished_airing"), ShouldEqual, "finished airing")
			So(Humanize(""), ShouldEqual, Unknown)
		})
	})
}

func TestRelatedText(t *testing.T) {
	Convey("RelatedText", t, func() {
		relations := func(n int) []Relation {
			out := make([]Relation, n)
			for i := range out {
				out[i] = Relation{ID: 1000 + i, Title: fmt.Sprintf("Sequel Number %d", i), Type: "sequel"}
			}
			return out
		}

		Convey("No relations render as None", func() {
			So(RelatedText(nil), ShouldEqual, NoRelations)
		})

		Convey("A short list renders every line", func() {
			text := RelatedText(relations(2))
			So(strings.Count(text, "\n"), ShouldEqual, 1)
			So(text, ShouldStartWith, "[Sequel Number 0](https://myanimelist.net/anime/1000) (Sequel, ID: 1000)")
			So(text, ShouldNotContainSubstring, RelatedNotice)
		})

		Convey("A long list stays within the budget and ends with the notice", func() {
			for _, n := range []int{10, 15, 16, 17, 40, 200} {
				text := RelatedText(relations(n))
				So(utf8.RuneCountInString(text), ShouldBeLessThanOrEqualTo, RelatedBudget)
				if strings.Count(text, "\n")+1 < n {
					So(text, ShouldEndWith, RelatedNotice)
				}
			}
		})

		Convey("The notice appears whenever a relation is omitted", func() {
			text := RelatedText(relations(200))
			lines := strings.Split(text, "\n")
			So(lines[len(lines)-1], ShouldEqual, RelatedNotice)
			So(len(lines)-1, ShouldBeLessThan, 200)
		})

		Convey("A single oversized relation is replaced by the notice", func() {
			huge := []Relation{{ID: 1, Title: strings.Repeat("x", 2000), Type: "other"}}
			So(RelatedText(huge), ShouldEqual, RelatedNotice)
		})
	})
}

func TestSortEntries(t *testing.T) {
	Convey("Given an unsorted list", t, func() {
		entry := func(title string, score int) ListEntry {
			return ListEntry{Record: Record{Title: title}, Score: score}
		}
		entries := []ListEntry{entry("mushishi", 9), entry("Akira", 7), entry("Baccano!", 9)}

		Convey("Alphabetical should ignore case", func() {
			SortEntries(entries, mal.Alphabetical)
			So(lo.Map(entries, func(e ListEntry, _ int) string { return e.Title }), ShouldResemble,
				[]string{"Akira", "Baccano!", "mushishi"})
		})

		Convey("By score should keep ties in order", func() {
			SortEntries(entries, mal.ByScore)
			So(lo.Map(entries, func(e ListEntry, _ int) string { return e.Title }), ShouldResemble,
				[]string{"mushishi", "Baccano!", "Akira"})
		})
	})
}
