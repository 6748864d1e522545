package view

import (
	"fmt"
	"strconv"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/pager"
	"github.com/samber/lo"
)

// Messages shown when the upstream has no data.
const (
	MsgNoAnime      = "No anime found."
	MsgAnimeMissing = "Anime not found."
	MsgListMissing  = "Could not fetch your list."
	MsgNoGame       = "Could not start game."
	MsgMissingQuery = "Missing search query. Use `/help search` for more info."
	MsgFailure      = "An error occurred while processing the command."
)

// SnippetLength is the synopsis excerpt shown per search result.
const SnippetLength = 200

const searchFooter = "Use /anime <ID> to get more details or use the dropdown and select an anime"

// SeasonMissing is shown when a season has no entries or could not be fetched.
func SeasonMissing(season string, year int) string {
	return fmt.Sprintf("Could not fetch anime for %s %d.", season, year)
}

// Detail renders the full card of one anime.
func Detail(d anime.Detail) *Embed {
	e := NewEmbed(anime.DisplayTitle(d.Record), Green).Describe(anime.Synopsis(d.Record))

	if p, ok := d.Picture.Get(); ok {
		e.Picture(p.Large)
	}

	episodes := anime.UnknownCount
	if n, ok := d.Episodes.Get(); ok {
		episodes = strconv.Itoa(n)
	}

	return e.
		Field("Rating", anime.Rating(d.Mean), true).
		Field("Episodes", episodes, true).
		Field("Status", anime.Humanize(d.Status), true).
		Field("Aired", anime.Aired(d.StartDate, d.EndDate), true).
		Field("Genres", anime.List(d.Genres), false).
		Field("Related Anime:", anime.RelatedText(d.Related), false).
		Field("Studios", anime.List(d.Studios), false).
		Field("ID", strconv.Itoa(d.ID), false).
		Field("MyAnimeList", fmt.Sprintf("[View on MAL](%s)", d.URL()), false)
}

// Search renders a numbered result listing with a dropdown to open one of them.
func Search(query string, results []anime.Record) Reply {
	e := NewEmbed(fmt.Sprintf("Search results for '%s'", query), Blue)
	for i, r := range results {
		e.Field(
			fmt.Sprintf("%d. %s\n(ID: %d)", i+1, anime.InlineTitle(r), r.ID),
			anime.Snippet(r, SnippetLength),
			false,
		)
	}
	e.Foot(searchFooter)

	return Reply{
		Embeds: []*Embed{e},
		Select: &Select{
			Placeholder: "Select an anime to view details...",
			Options: lo.Map(results, func(r anime.Record, i int) Option {
				return Option{Label: SelectLabel(r), Value: strconv.Itoa(i)}
			}),
		},
	}
}

// SelectLabel is the dropdown label of a record, capped at LabelLimit characters.
func SelectLabel(r anime.Record) string {
	return anime.Truncate(anime.DisplayTitle(r), LabelLimit)
}

// RankingPage renders a page of ranking or seasonal entries with their rank and score.
func RankingPage(title string, page pager.Page[anime.Record]) Reply {
	e := NewEmbed(title, Purple).Describe(pageLine(page.Index, page.Total))

	for _, r := range page.Items {
		rank := anime.NotAvailable
		if v, ok := r.Rank.Get(); ok {
			rank = strconv.Itoa(v)
		}
		e.Field(
			entryName(r),
			fmt.Sprintf("[View on MAL](%s)\nRank: %s | Score: %s", r.URL(), rank, anime.Rating(r.Mean)),
			false,
		)
	}

	return Reply{Embeds: []*Embed{e}, Buttons: PagerButtons(page)}
}

// ListPage renders a page of a user's list with the user's own score and status.
func ListPage(title, profile string, page pager.Page[anime.ListEntry]) Reply {
	e := NewEmbed(title, Purple).
		Describe(fmt.Sprintf("[View profile on MAL](%s)\n\n%s", profile, pageLine(page.Index, page.Total)))

	for _, entry := range page.Items {
		e.Field(
			entryName(entry.Record),
			fmt.Sprintf("[View on MAL](%s)\nScore: %d/10 | Status: %s", entry.URL(), entry.Score, entry.Status),
			false,
		)
	}

	return Reply{Embeds: []*Embed{e}, Buttons: PagerButtons(page)}
}

// ListTitle is the heading of a user's list, naming the status filter or "All".
func ListTitle(username, status string) string {
	if status == "" {
		status = "All"
	}
	return fmt.Sprintf("%s's Anime List (%s)", username, status)
}

// SeasonTitle is the heading of a season listing, e.g. "Spring 2024 Anime".
func SeasonTitle(season string, year int) string {
	return fmt.Sprintf("%s %d Anime", season, year)
}

func entryName(r anime.Record) string {
	return fmt.Sprintf("%s\n(ID: %d)", anime.DisplayTitle(r), r.ID)
}

func pageLine(index, total int) string {
	return fmt.Sprintf("Page %d/%d", index+1, total)
}

var pagerLabels = map[pager.Action]struct {
	label string
	style ButtonStyle
}{
	pager.Prev:     {"◀ Previous", Primary},
	pager.PrevFive: {"⏮ -5 Pages", Secondary},
	pager.NextFive: {"+5 Pages ⏭", Secondary},
	pager.Next:     {"Next ▶", Primary},
}

// PagerButtons lays out the navigation controls, disabling those that would not move.
func PagerButtons[T any](page pager.Page[T]) []Button {
	return lo.Map(pager.Actions, func(a pager.Action, _ int) Button {
		l := pagerLabels[a]
		return Button{
			Action:   string(a),
			Label:    l.label,
			Style:    l.style,
			Disabled: !page.Enabled(a),
		}
	})
}

var rankingTitles = map[string]string{
	"bypopularity": "Most Popular Anime",
	"airing":       "Top Airing Anime",
	"movie":        "Top Anime Movies",
	"favorite":     "Most Favorited Anime",
}

// RankingTitle is the heading of a ranking listing.
func RankingTitle(kind string) string {
	if title, ok := rankingTitles[kind]; ok {
		return title
	}
	return "Top Anime"
}
