// Package anime normalizes raw MyAnimeList payloads into flat records used by every downstream feature.
package anime

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/mo"
)

// Placeholders shown in place of missing data.
const (
	NoDescription = "No description available"
	Unknown       = "Unknown"
	NotAvailable  = "N/A"
	NoRelations   = "None"
	UnknownCount  = "?"
)

const (
	// SynopsisBudget is the display budget of a synopsis, in characters.
	SynopsisBudget = 2048
	// RelatedBudget is the display budget of the related anime listing, in characters.
	RelatedBudget = 1024
	// RelatedNotice ends a related listing that had to omit entries.
	RelatedNotice = "…more related anime available on the MyAnimeList page."
)

// Year extracts the year from a date such as "2023-04-07".
func Year(date string) string {
	if date == "" || date == Unknown {
		return Unknown
	}
	year, _, _ := strings.Cut(date, "-")
	return year
}

// Aired formats a broadcast range. An end date without a start date is ignored.
func Aired(start, end string) string {
	if start == "" || start == Unknown {
		return Unknown
	}
	if end == "" || end == Unknown {
		return start
	}
	return start + " to " + end
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Synopsis returns the synopsis cut to SynopsisBudget, or a placeholder when empty.
func Synopsis(r Record) string {
	if r.Synopsis == "" {
		return NoDescription
	}
	return Truncate(r.Synopsis, SynopsisBudget)
}

// Snippet is the first n characters of the synopsis followed by an ellipsis, as used in search listings.
func Snippet(r Record, n int) string {
	text := r.Synopsis
	if text == "" {
		text = NoDescription
	}
	return Truncate(text, n) + "..."
}

// DisplayTitle shows the English title above the primary one when they differ.
func DisplayTitle(r Record) string {
	if en, ok := r.English(); ok {
		return en + "\n(" + r.Title + ")"
	}
	return titleOrUnknown(r.Title)
}

// InlineTitle is the single-line form of DisplayTitle.
func InlineTitle(r Record) string {
	if en, ok := r.English(); ok {
		return en + " (" + r.Title + ")"
	}
	return titleOrUnknown(r.Title)
}

func titleOrUnknown(title string) string {
	if title == "" {
		return Unknown
	}
	return title
}

// FormatRating renders a score with at least one decimal, e.g. 9 as "9.0" and 8.62 as "8.62".
func FormatRating(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Rating renders an optional mean score, or N/A.
func Rating(mean mo.Option[float64]) string {
	if v, ok := mean.Get(); ok {
		return FormatRating(v)
	}
	return NotAvailable
}

// Humanize turns an upstream token such as "finished_airing" into "finished airing".
func Humanize(token string) string {
	if token == "" {
		return Unknown
	}
	return strings.ReplaceAll(token, "_", " ")
}

// RelationType title-cases a relation token, e.g. "side_story" becomes "Side Story".
func RelationType(token string) string {
	words := strings.Fields(strings.ReplaceAll(token, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// List joins names with commas, or returns N/A for an empty list.
func List(names []string) string {
	if len(names) == 0 {
		return NotAvailable
	}
	return strings.Join(names, ", ")
}

// RelatedLine renders one relation as a markdown link with its relation type and ID.
func RelatedLine(r Relation) string {
	return fmt.Sprintf("[%s](%s) (%s, ID: %d)", r.Title, URL(r.ID), RelationType(r.Type), r.ID)
}

// RelatedText lists relations one per line within RelatedBudget characters.
// Before a line is added, room is reserved for it, a separator and RelatedNotice.
// When a line does not fit, enumeration stops and the notice is appended instead,
// so the result never exceeds the budget.
func RelatedText(relations []Relation) string {
	if len(relations) == 0 {
		return NoRelations
	}

	var (
		b      strings.Builder
		used   int
		notice = utf8.RuneCountInString(RelatedNotice)
	)

	appendLine := func(line string, n int) {
		if used > 0 {
			b.WriteByte('\n')
			used++
		}
		b.WriteString(line)
		used += n
	}

	for _, r := range relations {
		line := RelatedLine(r)
		n := utf8.RuneCountInString(line)

		sep := 0
		if used > 0 {
			sep = 1
		}

		if used+sep+n+1+notice > RelatedBudget {
			appendLine(RelatedNotice, notice)
			break
		}

		appendLine(line, n)
	}

	return b.String()
}
