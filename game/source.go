package game

import (
	"context"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/mal"
	"github.com/samber/lo"
)

// Source supplies the records a round is played with.
type Source interface {
	// Pool returns up to size records of the given ranking. An empty result means no data.
	Pool(ctx context.Context, kind mal.RankingKind, size int) []anime.Record
}

type topRanked interface {
	TopRanked(ctx context.Context, kind mal.RankingKind, total int) []mal.Anime
}

// MALSource builds pools from the MyAnimeList ranking endpoint.
type MALSource struct {
	client topRanked
}

// NewMALSource returns a Source backed by client.
func NewMALSource(client topRanked) *MALSource {
	return &MALSource{client: client}
}

// Pool keeps the first record of each ID.
func (s *MALSource) Pool(ctx context.Context, kind mal.RankingKind, size int) []anime.Record {
	records := anime.FromAnimes(s.client.TopRanked(ctx, kind, size))
	return lo.UniqBy(records, func(r anime.Record) int {
		return r.ID
	})
}
