package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-vlogs/pkg/config"
	"travel-vlogs/pkg/dataset"
	"travel-vlogs/pkg/gallery"
	"travel-vlogs/pkg/models"
	"travel-vlogs/pkg/planner"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	entries, err := dataset.Embedded()
	require.NoError(t, err)

	cfg := &config.Config{NotificationTTL: ttl}
	return NewService(cfg, entries, Options{
		Now:   func() time.Time { return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC) },
		NewID: func() string { return "vlog_new" },
	})
}

func TestService_ViewOperations(t *testing.T) {
	s := newTestService(t, time.Minute)

	view := s.SetFilter("local")
	assert.Equal(t, 5, view.Stats.Count)

	view = s.Search("kerala")
	assert.Equal(t, []string{"vlog_006", "vlog_001"}, entryIDs(view.Entries))

	view, err := s.SetSort("popular")
	require.NoError(t, err)
	assert.Equal(t, gallery.SortMostViewed, view.Sort)
	assert.Equal(t, []string{"vlog_001", "vlog_006"}, entryIDs(view.Entries))

	view, err = s.SetSort("random")
	assert.ErrorIs(t, err, gallery.ErrUnrecognizedSort)
	assert.Equal(t, gallery.SortMostViewed, view.Sort)
}

func TestService_OpenAndClose(t *testing.T) {
	s := newTestService(t, time.Minute)

	detail, err := s.OpenVideo("vlog_002")
	require.NoError(t, err)
	assert.Equal(t, 28341, detail.Entry.Views)
	assert.Equal(t, "28.3K", detail.Views)

	modal, open := s.Modal()
	require.True(t, open)
	assert.Equal(t, "vlog_002", modal.Entry.ID)

	s.CloseVideo()
	_, open = s.Modal()
	assert.False(t, open)

	_, err = s.OpenVideo("missing")
	assert.ErrorIs(t, err, gallery.ErrEntryNotFound)
}

func TestService_UploadNotifies(t *testing.T) {
	s := newTestService(t, time.Minute)

	entry, err := s.Upload(gallery.UploadFields{Title: "Spiti on a bike", TagsCSV: "spiti, bike"})
	require.NoError(t, err)
	assert.Equal(t, "vlog_new", entry.ID)
	assert.Equal(t, "vlog_new", s.Entries()[0].ID)

	notes := s.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, gallery.NotifySuccess, notes[0].Kind)
	assert.Equal(t, gallery.UploadedMessage, notes[0].Message)
}

func TestService_NotificationsExpire(t *testing.T) {
	s := newTestService(t, 20*time.Millisecond)

	s.Notify(gallery.Notification{Message: "first", Kind: gallery.NotifyInfo})
	s.Notify(gallery.Notification{Message: "second", Kind: gallery.NotifyInfo})
	notes := s.Notifications()
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Message)
	assert.Equal(t, "second", notes[1].Message)

	assert.Eventually(t, func() bool {
		return len(s.Notifications()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestService_Categories(t *testing.T) {
	s := newTestService(t, time.Minute)
	_, err := s.Upload(gallery.UploadFields{Title: "Scuba", Category: "diving"})
	require.NoError(t, err)

	want := []models.Category{
		{Name: "local-insider", Entries: 3},
		{Name: "budget-travel", Entries: 1},
		{Name: "food-tour", Entries: 1},
		{Name: "adventure", Entries: 1},
		{Name: "cultural", Entries: 2},
		{Name: "diving", Entries: 1},
	}
	assert.Equal(t, want, s.Categories())
}

func TestService_ConcurrentOpens(t *testing.T) {
	s := newTestService(t, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.OpenVideo("vlog_003")
			_ = s.View()
		}()
	}
	wg.Wait()

	entry, ok := s.Entry("vlog_003")
	require.True(t, ok)
	assert.Equal(t, 9876+50, entry.Views)
}

func TestService_Reply(t *testing.T) {
	s := newTestService(t, time.Minute)
	assert.Contains(t, s.Reply("Goa beach shacks?"), "Goa has amazing beaches")
}

func entryIDs(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestService_Destination(t *testing.T) {
	s := newTestService(t, time.Minute)

	keys := make([]string, 0, 4)
	for _, d := range s.Destinations() {
		keys = append(keys, d.Key)
	}
	assert.Equal(t, []string{"kerala", "rajasthan", "goa", "himachal"}, keys)

	detail, err := s.Destination(" Rajasthan ")
	require.NoError(t, err)
	assert.Equal(t, "rajasthan", detail.Destination.Key)
	assert.Equal(t, []string{"vlog_005", "vlog_002"}, entryIDs(detail.Vlogs))
	assert.Equal(t, 2, detail.Stats.Count)
	assert.Equal(t, 22150+28340, detail.Stats.TotalViews)
	assert.Equal(t, detail.Destination.Expenses.Daily(), detail.DailyCost)

	_, err = s.Destination("antarctica")
	assert.ErrorIs(t, err, ErrDestinationNotFound)
}

func TestService_DestinationLeavesViewAlone(t *testing.T) {
	s := newTestService(t, time.Minute)
	s.SetFilter("featured")

	_, err := s.Destination("goa")
	require.NoError(t, err)

	view := s.View()
	assert.Equal(t, gallery.FilterFeatured, view.Filter)
	assert.Equal(t, 3, view.Stats.Count)
}

func TestService_CustomDestinations(t *testing.T) {
	entries, err := dataset.Embedded()
	require.NoError(t, err)
	s := NewService(&config.Config{}, entries, Options{
		Destinations: []models.Destination{{Key: "ladakh", Name: "Ladakh"}},
	})

	require.Len(t, s.Destinations(), 1)
	detail, err := s.Destination("Ladakh")
	require.NoError(t, err)
	assert.Empty(t, detail.Vlogs)

	_, err = s.Destination("kerala")
	assert.ErrorIs(t, err, ErrDestinationNotFound)
}

func TestService_PlanTrip(t *testing.T) {
	s := newTestService(t, time.Minute)

	itinerary, err := s.PlanTrip(planner.Request{Destination: "Rajasthan", Days: 3, DailyBudget: 4000})
	require.NoError(t, err)
	assert.Len(t, itinerary.Days, 3)
	assert.Equal(t, 12000, itinerary.Budget.Total)
	assert.Equal(t, 1600, itinerary.Budget.Stay)

	_, err = s.PlanTrip(planner.Request{Destination: "goa"})
	assert.ErrorIs(t, err, planner.ErrInvalidDays)
}
