package gallery

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-vlogs/pkg/models"
)

var fixedNow = time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func testEntries(t *testing.T) []models.Entry {
	t.Helper()
	return []models.Entry{
		{
			ID: "vlog_001", Title: "Hidden Gems of Kerala Backwaters", Description: "Lesser-known routes",
			DestinationKey: "kerala", Category: "local-insider",
			Author: models.Author{Name: "Rajesh Kumar", Kind: models.AuthorLocal, Location: "Alleppey, Kerala"},
			Views:  15420, Likes: 892, UploadedAt: mustDate(t, "2026-01-15"),
			Tags: []string{"backwaters", "houseboat"}, Featured: true,
		},
		{
			ID: "vlog_002", Title: "Budget Travel in Rajasthan", Description: "Jaipur, Jodhpur and Udaipur",
			DestinationKey: "rajasthan", Category: "budget-travel",
			Author: models.Author{Name: "Priya Sharma", Kind: models.AuthorTraveler, Location: "Delhi, India"},
			Views:  28340, Likes: 1245, UploadedAt: mustDate(t, "2026-01-20"),
			Tags: []string{"budget", "palaces"}, Featured: true,
		},
		{
			ID: "vlog_003", Title: "Goa's Best Beach Shacks", Description: "Seafood recipes",
			DestinationKey: "goa", Category: "food-tour",
			Author: models.Author{Name: "Maria Fernandes", Kind: models.AuthorLocal, Location: "Calangute, Goa"},
			Views:  9876, Likes: 567, UploadedAt: mustDate(t, "2026-01-25"),
			Tags: []string{"food", "beaches"},
		},
		{
			ID: "vlog_004", Title: "Ayurveda Retreat", Description: "Wellness practices",
			DestinationKey: "south", Category: "local-insider",
			Author: models.Author{Name: "Dr. Lakshmi Nair", Kind: models.AuthorLocal, Location: "Kovalam"},
			Views:  15420, Likes: 756, UploadedAt: mustDate(t, "2026-02-01"),
			Tags: []string{"ayurveda", "KERALA-wellness"},
		},
		{
			ID: "vlog_005", Title: "Holi in Rajasthan", Description: "Festival colours",
			DestinationKey: "rajasthan", Category: "cultural",
			Author: models.Author{Name: "Vikram Singh", Kind: models.AuthorTraveler, Location: "Jaipur"},
			Views:  22150, Likes: 1189, UploadedAt: mustDate(t, "2026-01-30"),
			Tags: []string{"festival"},
		},
	}
}

func newTestController(t *testing.T, notes *[]Notification) *Controller {
	t.Helper()
	seq := 0
	opts := Options{
		Now: func() time.Time { return fixedNow },
		NewID: func() string {
			seq++
			return fmt.Sprintf("upload_%d", seq)
		},
	}
	if notes != nil {
		opts.Notifier = NotifierFunc(func(n Notification) { *notes = append(*notes, n) })
	}
	return NewController(testEntries(t), opts)
}

func ids(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestNewController_DefaultView(t *testing.T) {
	c := newTestController(t, nil)

	view := c.View()
	assert.Equal(t, FilterAll, view.Filter)
	assert.Equal(t, SortLatest, view.Sort)
	assert.Equal(t, []string{"vlog_004", "vlog_005", "vlog_003", "vlog_002", "vlog_001"}, ids(view.Entries))
	assert.Equal(t, models.Stats{Count: 5, TotalViews: 91206, TotalLikes: 4649}, view.Stats)
	assert.Empty(t, c.OpenID())
}

func TestSetFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", FilterAll, []string{"vlog_004", "vlog_005", "vlog_003", "vlog_002", "vlog_001"}},
		{"featured", FilterFeatured, []string{"vlog_002", "vlog_001"}},
		{"local", FilterLocal, []string{"vlog_004", "vlog_003", "vlog_001"}},
		{"category", Filter("local-insider"), []string{"vlog_004", "vlog_001"}},
		{"unrecognized", Filter("underwater"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, nil)
			c.SetFilter(tt.filter)
			assert.Equal(t, tt.want, ids(c.Visible()))
			assert.Equal(t, len(tt.want), c.Stats().Count)
		})
	}
}

func TestSetFilter_StatsFollowVisibleEntries(t *testing.T) {
	c := newTestController(t, nil)
	c.SetFilter(FilterFeatured)

	assert.Equal(t, models.Stats{Count: 2, TotalViews: 43760, TotalLikes: 2137}, c.Stats())
}

func TestSetSort(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"latest", []string{"vlog_004", "vlog_005", "vlog_003", "vlog_002", "vlog_001"}},
		{"oldest", []string{"vlog_001", "vlog_002", "vlog_003", "vlog_005", "vlog_004"}},
		{"mostViewed", []string{"vlog_002", "vlog_005", "vlog_001", "vlog_004", "vlog_003"}},
		{"popular", []string{"vlog_002", "vlog_005", "vlog_001", "vlog_004", "vlog_003"}},
		{"mostLiked", []string{"vlog_002", "vlog_005", "vlog_001", "vlog_004", "vlog_003"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := newTestController(t, nil)
			require.NoError(t, c.SetSort(tt.key))
			assert.Equal(t, tt.want, ids(c.Visible()))
		})
	}
}

func TestSetSort_MostViewedIsStable(t *testing.T) {
	c := newTestController(t, nil)

	// vlog_001 and vlog_004 tie on views and keep their collection order
	require.NoError(t, c.SetSort("latest"))
	require.NoError(t, c.SetSort("mostViewed"))

	got := ids(c.Visible())
	assert.Equal(t, []string{"vlog_002", "vlog_005", "vlog_001", "vlog_004", "vlog_003"}, got)
}

func TestSetSort_Unrecognized(t *testing.T) {
	c := newTestController(t, nil)
	require.NoError(t, c.SetSort("oldest"))
	before := ids(c.Visible())

	err := c.SetSort("alphabetical")
	assert.ErrorIs(t, err, ErrUnrecognizedSort)
	assert.Equal(t, SortOldest, c.View().Sort)
	assert.Equal(t, before, ids(c.Visible()))
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"destination title and tag", "kerala", []string{"vlog_004", "vlog_001"}},
		{"case insensitive", "  RAJASTHAN ", []string{"vlog_005", "vlog_002"}},
		{"author name", "maria", []string{"vlog_003"}},
		{"description", "jodhpur", []string{"vlog_002"}},
		{"tag", "houseboat", []string{"vlog_001"}},
		{"no match", "antarctica", []string{}},
		{"blank resets", "   ", []string{"vlog_004", "vlog_005", "vlog_003", "vlog_002", "vlog_001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, nil)
			c.Search(tt.query)
			assert.Equal(t, tt.want, ids(c.Visible()))
		})
	}
}

func TestSearch_RebuildsFromFullCollection(t *testing.T) {
	c := newTestController(t, nil)
	c.Search("goa")
	require.Equal(t, []string{"vlog_003"}, ids(c.Visible()))

	// a narrower search followed by a wider one must not stay narrowed
	c.Search("rajasthan")
	assert.Equal(t, []string{"vlog_005", "vlog_002"}, ids(c.Visible()))
}

func TestSearch_IgnoresActiveFilter(t *testing.T) {
	c := newTestController(t, nil)
	c.SetFilter(Filter("food-tour"))
	require.Equal(t, []string{"vlog_003"}, ids(c.Visible()))

	c.Search("kerala")
	view := c.View()
	assert.Equal(t, FilterAll, view.Filter)
	assert.Equal(t, []string{"vlog_004", "vlog_001"}, ids(view.Entries))
}

func TestSetFilter_ClearsSearch(t *testing.T) {
	c := newTestController(t, nil)
	c.Search("kerala")
	require.Equal(t, []string{"vlog_004", "vlog_001"}, ids(c.Visible()))

	c.SetFilter(FilterFeatured)
	view := c.View()
	assert.Empty(t, view.Query)
	assert.Equal(t, []string{"vlog_002", "vlog_001"}, ids(view.Entries))
}

func TestSetFilter_UploadedCategory(t *testing.T) {
	c := newTestController(t, nil)
	_, err := c.Upload(UploadFields{Title: "Morning in Munnar", Category: "vlog-diary"})
	require.NoError(t, err)

	c.SetFilter(Filter("vlog-diary"))
	assert.Equal(t, []string{"upload_1"}, ids(c.Visible()))

	c.SetFilter(Filter("underwater"))
	assert.Empty(t, c.Visible())
}

func TestView_EqualsRecomputeFromScratch(t *testing.T) {
	c := newTestController(t, nil)
	steps := []func(){
		func() { c.SetFilter(FilterLocal) },
		func() { _ = c.SetSort("mostLiked") },
		func() { c.Search("kerala") },
		func() { c.SetFilter(FilterAll) },
		func() { _ = c.SetSort("nonsense") },
		func() { c.Search("") },
		func() { c.SetFilter(FilterFeatured) },
		func() { _ = c.SetSort("oldest") },
	}

	for i, step := range steps {
		step()
		view := c.View()
		want := Compute(c.Entries(), view.Filter, view.Sort, view.Query)
		assert.Equal(t, ids(want), ids(view.Entries), "step %d", i)
		assert.Equal(t, Summarize(want), view.Stats, "step %d", i)
	}
}

func TestOpenVideo(t *testing.T) {
	c := newTestController(t, nil)

	detail, err := c.OpenVideo("vlog_003")
	require.NoError(t, err)
	assert.Equal(t, "vlog_003", c.OpenID())
	assert.Equal(t, 9877, detail.Entry.Views)
	assert.Equal(t, "9.9K", detail.Views)
	assert.Equal(t, "567", detail.Likes)
	assert.Equal(t, "3 weeks ago", detail.Uploaded)

	_, err = c.OpenVideo("vlog_003")
	require.NoError(t, err)
	entry, ok := c.Entry("vlog_003")
	require.True(t, ok)
	assert.Equal(t, 9878, entry.Views)
}

func TestOpenVideo_SwitchesModal(t *testing.T) {
	c := newTestController(t, nil)

	_, err := c.OpenVideo("vlog_001")
	require.NoError(t, err)
	_, err = c.OpenVideo("vlog_002")
	require.NoError(t, err)

	assert.Equal(t, "vlog_002", c.OpenID())
	first, _ := c.Entry("vlog_001")
	second, _ := c.Entry("vlog_002")
	assert.Equal(t, 15421, first.Views)
	assert.Equal(t, 28341, second.Views)
}

func TestOpenVideo_RefreshesStats(t *testing.T) {
	c := newTestController(t, nil)
	before := c.Stats().TotalViews

	_, err := c.OpenVideo("vlog_005")
	require.NoError(t, err)
	assert.Equal(t, before+1, c.Stats().TotalViews)
}

func TestOpenVideo_NotFound(t *testing.T) {
	c := newTestController(t, nil)
	_, err := c.OpenVideo("vlog_001")
	require.NoError(t, err)
	before := c.Entries()

	_, err = c.OpenVideo("nonexistent")
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.Equal(t, before, c.Entries())
	assert.Equal(t, "vlog_001", c.OpenID())
}

func TestCloseVideo(t *testing.T) {
	c := newTestController(t, nil)

	c.CloseVideo()
	_, open := c.Modal()
	assert.False(t, open)

	_, err := c.OpenVideo("vlog_004")
	require.NoError(t, err)
	detail, open := c.Modal()
	require.True(t, open)
	assert.Equal(t, "vlog_004", detail.Entry.ID)

	c.CloseVideo()
	_, open = c.Modal()
	assert.False(t, open)
	assert.Empty(t, c.OpenID())
}

func TestUpload(t *testing.T) {
	var notes []Notification
	c := newTestController(t, &notes)

	entry, err := c.Upload(UploadFields{Title: "T", TagsCSV: "a, b ,c"})
	require.NoError(t, err)

	assert.Equal(t, "upload_1", entry.ID)
	assert.Equal(t, []string{"a", "b", "c"}, entry.Tags)
	assert.Zero(t, entry.Views)
	assert.Zero(t, entry.Likes)
	assert.False(t, entry.Featured)
	assert.Equal(t, "2026-02-10", entry.UploadedAt.String())
	assert.Equal(t, PlaceholderDuration, entry.DurationLabel)
	assert.Equal(t, PlaceholderVideo, entry.VideoURL)
	assert.Equal(t, AnonymousAuthor, entry.Author)

	all := c.Entries()
	require.Len(t, all, 6)
	assert.Equal(t, "upload_1", all[0].ID)
	assert.Equal(t, "upload_1", c.Visible()[0].ID)

	assert.Equal(t, []Notification{{Message: UploadedMessage, Kind: NotifySuccess}}, notes)
}

func TestUpload_KeepsEmptyTags(t *testing.T) {
	c := newTestController(t, nil)

	entry, err := c.Upload(UploadFields{Title: "T", TagsCSV: "a,, b,"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b", ""}, entry.Tags)
}

func TestUpload_RespectsActiveFilterAndSearch(t *testing.T) {
	c := newTestController(t, nil)
	c.SetFilter(FilterFeatured)

	_, err := c.Upload(UploadFields{Title: "New featured?", TagsCSV: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vlog_002", "vlog_001"}, ids(c.Visible()))

	c.SetFilter(FilterAll)
	c.Search("new featured")
	assert.Equal(t, []string{"upload_1"}, ids(c.Visible()))
}

func TestUpload_Author(t *testing.T) {
	user := &models.Author{Name: "Asha", Location: "Pune", Kind: models.AuthorLocal}
	c := NewController(testEntries(t), Options{Now: func() time.Time { return fixedNow }, CurrentUser: user})

	entry, err := c.Upload(UploadFields{Title: "Mine"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", entry.Author.Name)
	assert.Equal(t, models.AuthorTraveler, entry.Author.Kind)
	assert.Equal(t, DefaultAvatar, entry.Author.AvatarURL)

	override := &models.Author{Name: "Guest", AvatarURL: "a.png", Location: "Goa"}
	entry, err = c.Upload(UploadFields{Title: "Theirs", AuthorOverride: override})
	require.NoError(t, err)
	assert.Equal(t, "Guest", entry.Author.Name)
	assert.Equal(t, "a.png", entry.Author.AvatarURL)
}

func TestUpload_TitleRequired(t *testing.T) {
	var notes []Notification
	c := newTestController(t, &notes)

	_, err := c.Upload(UploadFields{Title: "  ", TagsCSV: "a"})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Len(t, c.Entries(), 5)
	assert.Empty(t, notes)
}

func TestVisible_ReturnsCopies(t *testing.T) {
	c := newTestController(t, nil)

	visible := c.Visible()
	visible[0].Views = 0
	visible[0].Tags[0] = "mutated"

	again := c.Visible()
	assert.NotZero(t, again[0].Views)
	assert.NotEqual(t, "mutated", again[0].Tags[0])
}
