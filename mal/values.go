// Package mal provides a client for the MyAnimeList REST API.
package mal

import (
	"strings"

	"github.com/anisan-cli/anibot/errs"
	"github.com/anisan-cli/anibot/util"
	"github.com/samber/lo"
)

// Season of a broadcast year.
type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

// Seasons in calendar order.
var Seasons = []Season{Winter, Spring, Summer, Fall}

// Title returns the capitalized season name, e.g. "Spring".
func (s Season) Title() string {
	return util.Capitalize(string(s))
}

// ParseSeason accepts a season name in any case.
func ParseSeason(s string) (Season, error) {
	season := Season(strings.ToLower(strings.TrimSpace(s)))
	if lo.Contains(Seasons, season) {
		return season, nil
	}
	return "", errs.Invalid("season", string(season), Names(Seasons)...)
}

// RankingKind selects the ordering of the ranking endpoint.
type RankingKind string

const (
	ByPopularity RankingKind = "bypopularity"
	Airing       RankingKind = "airing"
	Movie        RankingKind = "movie"
	Favorite     RankingKind = "favorite"
)

// RankingKinds accepted by the game commands.
var RankingKinds = []RankingKind{ByPopularity, Airing, Movie, Favorite}

// ParseRankingKind accepts a ranking kind in any case. "popularity" is an alias of "bypopularity".
func ParseRankingKind(s string) (RankingKind, error) {
	kind := RankingKind(strings.ToLower(strings.TrimSpace(s)))
	if kind == "popularity" {
		kind = ByPopularity
	}
	if lo.Contains(RankingKinds, kind) {
		return kind, nil
	}
	return "", errs.Invalid("ranking type", string(kind), Names(RankingKinds)...)
}

// ListStatus is the upstream token of a list status filter.
type ListStatus string

const (
	Watching    ListStatus = "watching"
	Completed   ListStatus = "completed"
	OnHold      ListStatus = "on_hold"
	Dropped     ListStatus = "dropped"
	PlanToWatch ListStatus = "plan_to_watch"
)

// ListStatuses in display order.
var ListStatuses = []ListStatus{Watching, Completed, OnHold, Dropped, PlanToWatch}

// Label is the human spelling users type, e.g. "on hold".
func (s ListStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// ListStatusLabels returns the accepted spellings of every status.
func ListStatusLabels() []string {
	return lo.Map(ListStatuses, func(s ListStatus, _ int) string {
		return s.Label()
	})
}

// ParseListStatus maps a human label such as "plan to watch" to its upstream token.
func ParseListStatus(label string) (ListStatus, error) {
	for _, s := range ListStatuses {
		if s.Label() == label {
			return s, nil
		}
	}
	return "", errs.Invalid("status", label, ListStatusLabels()...)
}

// ListSort orders a fetched user list.
type ListSort string

const (
	Alphabetical ListSort = "alphabetical"
	ByScore      ListSort = "score"
)

// ListSorts accepted by the list command.
var ListSorts = []ListSort{Alphabetical, ByScore}

// ParseListSort accepts one of ListSorts exactly.
func ParseListSort(s string) (ListSort, error) {
	sort := ListSort(s)
	if lo.Contains(ListSorts, sort) {
		return sort, nil
	}
	return "", errs.Invalid("sorting method", s, Names(ListSorts)...)
}

// Names lists the string spelling of each enum value.
func Names[T ~string](values []T) []string {
	return lo.Map(values, func(v T, _ int) string {
		return string(v)
	})
}
