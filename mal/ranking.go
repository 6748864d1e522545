// Package mal provides a client for the MyAnimeList REST API.
package mal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

const rankingFields = "rank,mean,pictures,alternative_titles"

// MaxPageSize is the largest limit the ranking and seasonal endpoints honor.
const MaxPageSize = 500

// Ranking fetches one page of the ranking of the given kind, best first.
func (c *Client) Ranking(ctx context.Context, kind RankingKind, limit, offset int) mo.Option[[]Anime] {
	q := url.Values{}
	q.Set("ranking_type", string(kind))
	q.Set("limit", strconv.Itoa(lo.Clamp(limit, 1, MaxPageSize)))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("fields", rankingFields)
	q.Set("sort", "ranking_asc")

	page, ok := get[Page[Node]](ctx, c, "/anime/ranking", q).Get()
	if !ok {
		return mo.None[[]Anime]()
	}
	return mo.Some(nodes(page))
}

// Seasonal fetches one page of a broadcast season, most watched first.
func (c *Client) Seasonal(ctx context.Context, year int, season Season, limit, offset int) mo.Option[[]Anime] {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(lo.Clamp(limit, 1, MaxPageSize)))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("fields", rankingFields)
	q.Set("sort", "anime_num_list_users")

	page, ok := get[Page[Node]](ctx, c, fmt.Sprintf("/anime/season/%d/%s", year, season), q).Get()
	if !ok {
		return mo.None[[]Anime]()
	}
	return mo.Some(nodes(page))
}

// FullSeason walks every page of a broadcast season.
func (c *Client) FullSeason(ctx context.Context, year int, season Season) []Anime {
	return CollectAll(func(limit, offset int) mo.Option[[]Anime] {
		return c.Seasonal(ctx, year, season, limit, offset)
	}, MaxPageSize)
}

// TopRanked collects up to total entries of a ranking in pages of MaxPageSize.
func (c *Client) TopRanked(ctx context.Context, kind RankingKind, total int) []Anime {
	return CollectN(func(limit, offset int) mo.Option[[]Anime] {
		return c.Ranking(ctx, kind, limit, offset)
	}, total, MaxPageSize)
}
