package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-vlogs/pkg/models"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		raw  string
		want SortKey
		ok   bool
	}{
		{"latest", SortLatest, true},
		{"oldest", SortOldest, true},
		{"mostViewed", SortMostViewed, true},
		{"popular", SortMostViewed, true},
		{"mostLiked", SortMostLiked, true},
		{"liked", SortMostLiked, true},
		{"MostViewed", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSortKey(tt.raw)
		assert.Equal(t, tt.ok, ok, "ParseSortKey(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "ParseSortKey(%q)", tt.raw)
	}
}

func TestFilter_Recognized(t *testing.T) {
	assert.True(t, FilterAll.Recognized())
	assert.True(t, FilterFeatured.Recognized())
	assert.True(t, FilterLocal.Recognized())
	assert.True(t, Filter("food-tour").Recognized())
	assert.False(t, Filter("vlog").Recognized())
}

func TestFilter_MatchesAnyCategory(t *testing.T) {
	e := models.Entry{ID: "x", Category: "vlog-diary"}

	assert.True(t, Filter("vlog-diary").Matches(e))
	assert.False(t, Filter("made-up").Matches(e))
	assert.False(t, Filter("food-tour").Matches(e))
	assert.True(t, FilterAll.Matches(e))
}

func TestMatchesQuery(t *testing.T) {
	e := models.Entry{
		Title:          "Trekking in Himachal",
		Description:    "Safety tips",
		DestinationKey: "himachal",
		Author:         models.Author{Name: "Aman Thakur"},
		Tags:           []string{"mountains", "Adventure"},
	}

	for _, q := range []string{"", "trek", "safety", "himachal", "thakur", "adventure", "mount"} {
		assert.True(t, MatchesQuery(e, NormalizeQuery(q)), "query %q", q)
	}
	assert.False(t, MatchesQuery(e, "beach"))
}

func TestCompute_DoesNotAlias(t *testing.T) {
	entries := []models.Entry{{ID: "a", Tags: []string{"t"}}}

	out := Compute(entries, FilterAll, SortLatest, "")
	out[0].Tags[0] = "changed"

	assert.Equal(t, "t", entries[0].Tags[0])
}
