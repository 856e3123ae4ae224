package gallery

import (
	"sort"
	"strings"

	"travel-vlogs/pkg/models"
)

// Filter selects a subset of entries
type Filter string

const (
	FilterAll      Filter = "all"
	FilterFeatured Filter = "featured"
	FilterLocal    Filter = "local"
)

// Categories recognized as filter values, in display order
var Categories = []string{
	"local-insider",
	"budget-travel",
	"food-tour",
	"adventure",
	"cultural",
}

// IsCategory reports whether name is one of the fixed categories
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Recognized reports whether f is all, featured, local or a known category
func (f Filter) Recognized() bool {
	switch f {
	case FilterAll, FilterFeatured, FilterLocal:
		return true
	}
	return IsCategory(string(f))
}

// Matches reports whether e passes the filter. Any other value is compared
// with the entry category, so unknown categories match nothing.
func (f Filter) Matches(e models.Entry) bool {
	switch f {
	case FilterAll:
		return true
	case FilterFeatured:
		return e.Featured
	case FilterLocal:
		return e.Author.Kind == models.AuthorLocal
	}
	return e.Category == string(f)
}

// SortKey orders the visible entries
type SortKey string

const (
	SortLatest     SortKey = "latest"
	SortOldest     SortKey = "oldest"
	SortMostViewed SortKey = "mostViewed"
	SortMostLiked  SortKey = "mostLiked"
)

// SortKeys lists every accepted sort key
var SortKeys = []SortKey{SortLatest, SortOldest, SortMostViewed, SortMostLiked}

// ParseSortKey maps a raw key to a SortKey. The older "popular" and "liked"
// names are accepted as aliases.
func ParseSortKey(raw string) (SortKey, bool) {
	switch strings.TrimSpace(raw) {
	case "latest":
		return SortLatest, true
	case "oldest":
		return SortOldest, true
	case "mostViewed", "popular":
		return SortMostViewed, true
	case "mostLiked", "liked":
		return SortMostLiked, true
	}
	return "", false
}

func (k SortKey) less(a, b models.Entry) bool {
	switch k {
	case SortLatest:
		return a.UploadedAt.After(b.UploadedAt.Time)
	case SortOldest:
		return a.UploadedAt.Before(b.UploadedAt.Time)
	case SortMostViewed:
		return a.Views > b.Views
	case SortMostLiked:
		return a.Likes > b.Likes
	}
	return false
}

// MatchesQuery does a case-insensitive substring match of query against the
// title, description, author name, tags and destination of e. query must
// already be lower-cased and trimmed.
func MatchesQuery(e models.Entry, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Description), query) ||
		strings.Contains(strings.ToLower(e.Author.Name), query) ||
		strings.Contains(strings.ToLower(e.DestinationKey), query) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// NormalizeQuery trims and lower-cases a raw search string
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Compute derives the visible entries from the full collection: search, then
// filter, then a stable sort. The result never aliases entries.
func Compute(entries []models.Entry, filter Filter, key SortKey, query string) []models.Entry {
	q := NormalizeQuery(query)
	visible := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if !MatchesQuery(e, q) || !filter.Matches(e) {
			continue
		}
		visible = append(visible, e.Clone())
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return key.less(visible[i], visible[j])
	})
	return visible
}

// Summarize totals the counters of entries
func Summarize(entries []models.Entry) models.Stats {
	stats := models.Stats{Count: len(entries)}
	for _, e := range entries {
		stats.TotalViews += e.Views
		stats.TotalLikes += e.Likes
	}
	return stats
}
