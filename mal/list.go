// Package mal provides a client for the MyAnimeList REST API.
package mal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/samber/mo"
)

const listFields = "list_status,synopsis,pictures,alternative_titles"

// ListPageSize is the page size used when walking a user's list.
const ListPageSize = 100

// UserList fetches one page of a public user list, optionally filtered by status.
func (c *Client) UserList(ctx context.Context, username string, status mo.Option[ListStatus], limit, offset int) mo.Option[[]ListItem] {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("fields", listFields)
	if s, ok := status.Get(); ok {
		q.Set("status", string(s))
	}

	page, ok := get[Page[ListItem]](ctx, c, fmt.Sprintf("/users/%s/animelist", url.PathEscape(username)), q).Get()
	if !ok {
		return mo.None[[]ListItem]()
	}
	return mo.Some(page.Data)
}

// FullUserList walks every page of a user list.
func (c *Client) FullUserList(ctx context.Context, username string, status mo.Option[ListStatus]) []ListItem {
	return CollectAll(func(limit, offset int) mo.Option[[]ListItem] {
		return c.UserList(ctx, username, status, limit, offset)
	}, ListPageSize)
}
