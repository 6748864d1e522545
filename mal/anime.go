// Package mal provides a client for the MyAnimeList REST API.
package mal

// Picture is an image pair as returned under main_picture.
type Picture struct {
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// AlternativeTitles lists localized names of an anime.
type AlternativeTitles struct {
	Synonyms []string `json:"synonyms"`
	En       string   `json:"en"`
	Ja       string   `json:"ja"`
}

// Named is a genre or studio reference.
type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Relation links an anime to a related entry.
type Relation struct {
	Node                  Anime  `json:"node"`
	RelationType          string `json:"relation_type"`
	RelationTypeFormatted string `json:"relation_type_formatted"`
}

// Anime represents an anime entry from the MyAnimeList REST API.
// Pointer fields are absent unless requested through the fields parameter.
type Anime struct {
	ID                int               `json:"id"`
	Title             string            `json:"title"`
	MainPicture       *Picture          `json:"main_picture,omitempty"`
	AlternativeTitles AlternativeTitles `json:"alternative_titles"`
	Synopsis          *string           `json:"synopsis,omitempty"`
	StartDate         string            `json:"start_date,omitempty"`
	EndDate           string            `json:"end_date,omitempty"`
	Mean              *float64          `json:"mean,omitempty"`
	Rank              *int              `json:"rank,omitempty"`
	Status            string            `json:"status,omitempty"`
	NumEpisodes       *int              `json:"num_episodes,omitempty"`
	Rating            string            `json:"rating,omitempty"`
	Genres            []Named           `json:"genres,omitempty"`
	Studios           []Named           `json:"studios,omitempty"`
	RelatedAnime      []Relation        `json:"related_anime,omitempty"`
}

// Node wraps an anime the way list-shaped endpoints return it.
type Node struct {
	Node Anime `json:"node"`
}

// ListStatusInfo is the viewer's own state for an entry of their list.
type ListStatusInfo struct {
	Status             string `json:"status"`
	Score              int    `json:"score"`
	NumWatchedEpisodes int    `json:"num_episodes_watched"`
	IsRewatching       bool   `json:"is_rewatching"`
	UpdatedAt          string `json:"updated_at"`
}

// ListItem represents an anime in a user's list.
type ListItem struct {
	Node       Anime          `json:"node"`
	ListStatus ListStatusInfo `json:"list_status"`
}

// Paging holds the cursor links of a paged response.
type Paging struct {
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
}

// Page is the envelope of every paged endpoint.
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

func nodes(p Page[Node]) []Anime {
	out := make([]Anime, 0, len(p.Data))
	for _, n := range p.Data {
		out = append(out, n.Node)
	}
	return out
}
