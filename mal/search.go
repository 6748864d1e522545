// Package mal provides a client for the MyAnimeList REST API.
package mal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/samber/mo"
)

const (
	searchFields = "id,title,main_picture,synopsis,start_date,alternative_titles"
	detailFields = "synopsis,pictures,rating,status,genres,related_anime,studios,num_episodes,mean,rank,start_date,end_date,alternative_titles"
)

// Search looks anime up by title.
func (c *Client) Search(ctx context.Context, query string, limit, offset int) mo.Option[[]Anime] {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("fields", searchFields)

	page, ok := get[Page[Node]](ctx, c, "/anime", q).Get()
	if !ok {
		return mo.None[[]Anime]()
	}
	return mo.Some(nodes(page))
}

// Anime fetches the full record of a single anime.
func (c *Client) Anime(ctx context.Context, id int) mo.Option[Anime] {
	q := url.Values{}
	q.Set("fields", detailFields)

	return get[Anime](ctx, c, fmt.Sprintf("/anime/%d", id), q)
}
