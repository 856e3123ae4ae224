package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"travel-vlogs/pkg/chat"
	"travel-vlogs/pkg/config"
	"travel-vlogs/pkg/dataset"
	"travel-vlogs/pkg/gallery"
	"travel-vlogs/pkg/logger"
	"travel-vlogs/pkg/metrics"
	"travel-vlogs/pkg/models"
	"travel-vlogs/pkg/planner"
)

// ErrDestinationNotFound is returned for a destination key that is not known
var ErrDestinationNotFound = errors.New("destination not found")

// Service serializes access to the gallery controller and keeps recent
// notifications until they expire
type Service struct {
	config        *config.Config
	controller    *gallery.Controller
	notifications *cache.Cache
	responder     *chat.Responder
	destinations  []models.Destination
	notifySeq     atomic.Uint64
	mu            sync.RWMutex
}

// Options tune a Service beyond its configuration
type Options struct {
	Now   func() time.Time
	NewID func() string
	// ChatSeed drives the chat fallback replies
	ChatSeed int64
	// Destinations replaces the built-in destination guide when set
	Destinations []models.Destination
}

// DestinationDetail is a destination with the vlogs filmed there
type DestinationDetail struct {
	Destination models.Destination `json:"destination"`
	Vlogs       []models.Entry     `json:"vlogs"`
	Stats       models.Stats       `json:"stats"`
	DailyCost   int                `json:"dailyCost"`
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	initErr        error
	once           sync.Once
)

// InitService loads the dataset selected by cfg and initializes the default service
func InitService(cfg *config.Config) error {
	once.Do(func() {
		entries, err := dataset.Load(context.Background(), cfg)
		if err != nil {
			initErr = fmt.Errorf("load dataset: %w", err)
			return
		}
		defaultService = NewService(cfg, entries, Options{ChatSeed: time.Now().UnixNano()})
	})
	return initErr
}

// Default returns the service created by InitService
func Default() *Service {
	return defaultService
}

// NewService builds a service around entries
func NewService(cfg *config.Config, entries []models.Entry, opts Options) *Service {
	ttl := cfg.NotificationTTL
	if ttl <= 0 {
		ttl = 3 * time.Second
	}

	s := &Service{
		config:        cfg,
		notifications: cache.New(ttl, 2*ttl),
		responder:     chat.NewResponder(opts.ChatSeed),
		destinations:  opts.Destinations,
	}
	if s.destinations == nil {
		destinations, err := dataset.Destinations()
		if err != nil {
			logger.GetLogger().WithError(err).Warn("Destination guide unavailable")
		}
		s.destinations = destinations
	}
	s.controller = gallery.NewController(entries, gallery.Options{
		Now:         opts.Now,
		NewID:       opts.NewID,
		Notifier:    s,
		CurrentUser: cfg.CurrentUser,
	})
	metrics.VisibleEntries.Set(float64(s.controller.Stats().Count))
	return s
}

// Notify stores n until the notification TTL passes
func (s *Service) Notify(n gallery.Notification) {
	key := fmt.Sprintf("%020d", s.notifySeq.Add(1))
	s.notifications.Set(key, n, cache.DefaultExpiration)
	logger.GetLogger().WithField("kind", n.Kind).Info(n.Message)
}

// Notifications returns the unexpired notifications, oldest first
func (s *Service) Notifications() []gallery.Notification {
	items := s.notifications.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]gallery.Notification, 0, len(keys))
	for _, k := range keys {
		out = append(out, items[k].Object.(gallery.Notification))
	}
	return out
}

// View returns the current view with its stats
func (s *Service) View() gallery.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controller.View()
}

// SetFilter changes the active filter
func (s *Service) SetFilter(filter string) gallery.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := gallery.Filter(filter)
	if !f.Recognized() {
		logger.GetLogger().WithField("filter", filter).Warn("Filter is not a known category")
	}
	s.controller.SetFilter(f)
	return s.afterChange("filter")
}

// SetSort changes the sort order. Unknown keys leave the view unchanged.
func (s *Service) SetSort(key string) (gallery.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.SetSort(key); err != nil {
		logger.GetLogger().WithField("sort", key).Warn("Ignoring sort change")
		return s.controller.View(), err
	}
	return s.afterChange("sort"), nil
}

// Search narrows the view to matching entries
func (s *Service) Search(query string) gallery.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.controller.Search(query)
	return s.afterChange("search")
}

func (s *Service) afterChange(operation string) gallery.ViewState {
	view := s.controller.View()
	metrics.ViewChanges.WithLabelValues(operation).Inc()
	metrics.VisibleEntries.Set(float64(view.Stats.Count))
	logger.GetLogger().
		WithField("operation", operation).
		WithField("filter", view.Filter).
		WithField("sort", view.Sort).
		WithField("query", view.Query).
		WithField("visible", view.Stats.Count).
		Debug("View recomputed")
	return view
}

// OpenVideo opens the modal for id and counts a view
func (s *Service) OpenVideo(id string) (gallery.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	detail, err := s.controller.OpenVideo(id)
	if err != nil {
		metrics.VideoOpens.WithLabelValues("not_found").Inc()
		logger.GetLogger().WithField("id", id).Debug("Video not found")
		return detail, err
	}
	metrics.VideoOpens.WithLabelValues("ok").Inc()
	logger.GetLogger().WithField("id", id).WithField("views", detail.Entry.Views).Info("Video opened")
	return detail, nil
}

// CloseVideo closes the modal
func (s *Service) CloseVideo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.CloseVideo()
}

// Modal returns the open video, if any
func (s *Service) Modal() (gallery.Detail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controller.Modal()
}

// Upload adds a vlog to the front of the gallery
func (s *Service) Upload(fields gallery.UploadFields) (models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.controller.Upload(fields)
	if err != nil {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return entry, err
	}
	metrics.Uploads.WithLabelValues("ok").Inc()
	s.afterChange("upload")
	logger.GetLogger().WithField("id", entry.ID).WithField("title", entry.Title).Info("Vlog uploaded")
	return entry, nil
}

// Entries returns the full collection, newest upload first
func (s *Service) Entries() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controller.Entries()
}

// Entry looks up a single vlog without counting a view
func (s *Service) Entry(id string) (models.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controller.Entry(id)
}

// Categories returns every known category with its entry count, followed by
// any other category found in the collection
func (s *Service) Categories() []models.Category {
	entries := s.Entries()

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Category]++
	}

	categories := make([]models.Category, 0, len(counts))
	for _, name := range gallery.Categories {
		categories = append(categories, models.Category{Name: name, Entries: counts[name]})
		delete(counts, name)
	}

	var extra []string
	for name := range counts {
		if name != "" {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		categories = append(categories, models.Category{Name: name, Entries: counts[name]})
	}
	return categories
}

// FormatRelativeDate renders date against the service clock
func (s *Service) FormatRelativeDate(date models.Date) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gallery.FormatRelativeDate(date, s.controller.Now())
}

// Destinations returns the destination guide in display order
func (s *Service) Destinations() []models.Destination {
	out := make([]models.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out
}

// Destination looks up a destination by key together with its vlogs, newest
// first. Looking a destination up does not touch the gallery view.
func (s *Service) Destination(key string) (DestinationDetail, error) {
	key = planner.DestinationKey(key)
	for _, d := range s.destinations {
		if d.Key != key {
			continue
		}

		var matching []models.Entry
		for _, e := range s.Entries() {
			if e.DestinationKey == key {
				matching = append(matching, e)
			}
		}
		vlogs := gallery.Compute(matching, gallery.FilterAll, gallery.SortLatest, "")
		return DestinationDetail{
			Destination: d,
			Vlogs:       vlogs,
			Stats:       gallery.Summarize(vlogs),
			DailyCost:   d.Expenses.Daily(),
		}, nil
	}
	return DestinationDetail{}, ErrDestinationNotFound
}

// PlanTrip builds a day-by-day itinerary
func (s *Service) PlanTrip(req planner.Request) (planner.Itinerary, error) {
	itinerary, err := planner.Plan(req)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("days", req.Days).Debug("Rejected trip plan")
		return itinerary, err
	}
	logger.GetLogger().
		WithField("destination", itinerary.Destination).
		WithField("days", len(itinerary.Days)).
		Info("Trip planned")
	return itinerary, nil
}

// Reply answers a chat message
func (s *Service) Reply(message string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responder.Reply(message)
}

// GetView returns the current view of the default service
func GetView() gallery.ViewState {
	return defaultService.View()
}

// GetCategories returns all categories with their entry counts
func GetCategories() []models.Category {
	return defaultService.Categories()
}

// GetEntries returns the full collection of the default service
func GetEntries() []models.Entry {
	return defaultService.Entries()
}
