// Package anime normalizes raw MyAnimeList payloads into flat records used by every downstream feature.
package anime

import (
	"fmt"

	"github.com/anisan-cli/anibot/mal"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picture is a pair of image URLs.
type Picture struct {
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Record is the normalized view of one catalog entry. It is never mutated after construction.
type Record struct {
	ID                int                `json:"id"`
	Title             string             `json:"title"`
	AlternativeTitles map[string]string  `json:"alternative_titles,omitempty"`
	Mean              mo.Option[float64] `json:"mean"`
	Rank              mo.Option[int]     `json:"rank"`
	Picture           mo.Option[Picture] `json:"picture"`
	Synopsis          string             `json:"synopsis,omitempty"`
	StartDate         string             `json:"start_date,omitempty"`
}

// Rating is the mean score, with an absent score counting as 0.
func (r Record) Rating() float64 {
	return r.Mean.OrElse(0)
}

// English returns the English title when one exists and differs from the primary title.
func (r Record) English() (string, bool) {
	en := r.AlternativeTitles["en"]
	return en, en != "" && en != r.Title
}

// URL links the record's MyAnimeList page.
func (r Record) URL() string {
	return URL(r.ID)
}

// Relation is an edge from a detailed record to a related entry.
type Relation struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Detail is a Record populated by a detail fetch.
type Detail struct {
	Record
	EndDate  string         `json:"end_date,omitempty"`
	Status   string         `json:"status,omitempty"`
	Episodes mo.Option[int] `json:"episodes"`
	Genres   []string       `json:"genres,omitempty"`
	Studios  []string       `json:"studios,omitempty"`
	Related  []Relation     `json:"related,omitempty"`
}

// ListEntry is a Record from a user's list together with that user's own score and status.
type ListEntry struct {
	Record
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// URL links the MyAnimeList page of the anime with the given ID.
func URL(id int) string {
	return fmt.Sprintf("https://myanimelist.net/anime/%d", id)
}

// ProfileURL links a user's MyAnimeList profile.
func ProfileURL(username string) string {
	return "https://myanimelist.net/profile/" + username
}

// FromAnime normalizes a list-shaped or search payload.
func FromAnime(a mal.Anime) Record {
	r := Record{
		ID:                a.ID,
		Title:             a.Title,
		AlternativeTitles: make(map[string]string),
		Mean:              mo.PointerToOption(a.Mean),
		Rank:              mo.PointerToOption(a.Rank),
		StartDate:         a.StartDate,
	}

	if a.AlternativeTitles.En != "" {
		r.AlternativeTitles["en"] = a.AlternativeTitles.En
	}
	if a.AlternativeTitles.Ja != "" {
		r.AlternativeTitles["ja"] = a.AlternativeTitles.Ja
	}
	if a.MainPicture != nil {
		r.Picture = mo.Some(Picture{Medium: a.MainPicture.Medium, Large: a.MainPicture.Large})
	}
	if a.Synopsis != nil {
		r.Synopsis = *a.Synopsis
	}

	return r
}

// FromAnimes normalizes a slice of payloads, preserving order.
func FromAnimes(as []mal.Anime) []Record {
	return lo.Map(as, func(a mal.Anime, _ int) Record {
		return FromAnime(a)
	})
}

// FromDetail normalizes a detail payload.
func FromDetail(a mal.Anime) Detail {
	name := func(n mal.Named, _ int) string { return n.Name }

	return Detail{
		Record:   FromAnime(a),
		EndDate:  a.EndDate,
		Status:   a.Status,
		Episodes: mo.PointerToOption(a.NumEpisodes),
		Genres:   lo.Map(a.Genres, name),
		Studios:  lo.Map(a.Studios, name),
		Related: lo.Map(a.RelatedAnime, func(r mal.Relation, _ int) Relation {
			return Relation{ID: r.Node.ID, Title: r.Node.Title, Type: r.RelationType}
		}),
	}
}

// FromListItem normalizes an entry of a user list.
func FromListItem(item mal.ListItem) ListEntry {
	return ListEntry{
		Record: FromAnime(item.Node),
		Score:  item.ListStatus.Score,
		Status: item.ListStatus.Status,
	}
}

// FromListItems normalizes a user list, preserving order.
func FromListItems(items []mal.ListItem) []ListEntry {
	return lo.Map(items, func(item mal.ListItem, _ int) ListEntry {
		return FromListItem(item)
	})
}
