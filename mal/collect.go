// Package mal provides a client for the MyAnimeList REST API.
package mal

import (
	"github.com/samber/mo"
)

// Fetch retrieves one page of at most limit records starting at offset.
type Fetch[T any] func(limit, offset int) mo.Option[[]T]

// CollectAll requests pages of batch records with an advancing offset
// until a page comes back short or without data.
func CollectAll[T any](fetch Fetch[T], batch int) []T {
	var (
		all    []T
		offset int
	)

	for {
		page, ok := fetch(batch, offset).Get()
		if !ok {
			break
		}

		all = append(all, page...)
		if len(page) < batch {
			break
		}

		offset += batch
	}

	return all
}

// CollectN requests up to total records in pages of at most batch,
// stopping early on a short page or a page without data.
func CollectN[T any](fetch Fetch[T], total, batch int) []T {
	var (
		all       []T
		offset    int
		remaining = total
	)

	for remaining > 0 {
		limit := min(remaining, batch)

		page, ok := fetch(limit, offset).Get()
		if !ok {
			break
		}

		all = append(all, page...)
		if len(page) < limit {
			break
		}

		remaining -= limit
		offset += limit
	}

	return all
}
