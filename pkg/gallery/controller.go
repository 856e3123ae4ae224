// Package gallery holds the vlog list controller: the full entry collection,
// the derived view (search, filter, sort) and the single-video modal.
//
// A Controller is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
package gallery

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"travel-vlogs/pkg/models"
)

// Placeholders for uploads, which carry no media of their own
const (
	PlaceholderThumbnail = "https://images.unsplash.com/photo-1615840287214-7ff58936c4cf?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80"
	PlaceholderVideo     = "https://www.youtube.com/embed/dQw4w9WgXcQ"
	PlaceholderDuration  = "00:00"
	DefaultAvatar        = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&q=80"
)

// UploadedMessage is sent to the notifier after a successful upload
const UploadedMessage = "Video uploaded successfully!"

var (
	// ErrEntryNotFound is returned by OpenVideo for an unknown id. State is unchanged.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrUnrecognizedSort is returned by SetSort for an unknown key. State is unchanged.
	ErrUnrecognizedSort = errors.New("unrecognized sort key")
	// ErrTitleRequired is returned by Upload when the title is blank
	ErrTitleRequired = errors.New("title is required")
)

// AnonymousAuthor is credited for uploads when no user is known
var AnonymousAuthor = models.Author{
	Name:      "Anonymous User",
	AvatarURL: DefaultAvatar,
	Kind:      models.AuthorTraveler,
	Location:  "Unknown",
}

// Options configure a Controller. Zero values fall back to sensible defaults.
type Options struct {
	// Now is the clock used for upload dates and relative dates
	Now func() time.Time
	// NewID generates ids for uploaded entries
	NewID func() string
	// Notifier receives upload notifications
	Notifier Notifier
	// CurrentUser is credited for uploads that don't override the author
	CurrentUser *models.Author
}

// UploadFields is what the upload form submits
type UploadFields struct {
	Title          string         `json:"title" form:"title"`
	Description    string         `json:"description" form:"description"`
	DestinationKey string         `json:"destination" form:"destination"`
	Category       string         `json:"type" form:"type"`
	TagsCSV        string         `json:"tags" form:"tags"`
	AuthorOverride *models.Author `json:"author,omitempty" form:"-"`
}

// Detail is an open video with its display-ready fields
type Detail struct {
	Entry    models.Entry `json:"entry"`
	Views    string       `json:"views"`
	Likes    string       `json:"likes"`
	Uploaded string       `json:"uploaded"`
}

// ViewState is the current view parameters plus the derived entries
type ViewState struct {
	Filter  Filter         `json:"filter"`
	Sort    SortKey        `json:"sort"`
	Query   string         `json:"query"`
	Entries []models.Entry `json:"entries"`
	Stats   models.Stats   `json:"stats"`
}

// Controller owns the vlog collection and the state derived from it
type Controller struct {
	entries []models.Entry
	index   map[string]int

	filter Filter
	sort   SortKey
	query  string

	visible []models.Entry
	openID  string

	now         func() time.Time
	newID       func() string
	notifier    Notifier
	currentUser *models.Author
}

// NewController seeds a controller with entries, which are copied. The view
// starts as all entries, latest first, with no modal open.
func NewController(entries []models.Entry, opts Options) *Controller {
	c := &Controller{
		entries:     make([]models.Entry, 0, len(entries)),
		filter:      FilterAll,
		sort:        SortLatest,
		now:         opts.Now,
		newID:       opts.NewID,
		notifier:    opts.Notifier,
		currentUser: opts.CurrentUser,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = func() string { return "vlog_" + uuid.NewString() }
	}
	if c.notifier == nil {
		c.notifier = discardNotifier{}
	}
	for _, e := range entries {
		c.entries = append(c.entries, e.Clone())
	}
	c.reindex()
	c.recompute()
	return c
}

func (c *Controller) reindex() {
	c.index = make(map[string]int, len(c.entries))
	for i, e := range c.entries {
		c.index[e.ID] = i
	}
}

func (c *Controller) recompute() {
	c.visible = Compute(c.entries, c.filter, c.sort, c.query)
}

// SetFilter switches the active filter and clears the search. Values that no
// entry carries as a category leave an empty view.
func (c *Controller) SetFilter(filter Filter) {
	c.filter = filter
	c.query = ""
	c.recompute()
}

// SetSort switches the sort order. Unknown keys keep the current order.
func (c *Controller) SetSort(raw string) error {
	key, ok := ParseSortKey(raw)
	if !ok {
		return ErrUnrecognizedSort
	}
	c.sort = key
	c.recompute()
	return nil
}

// Search rebuilds the view from every entry matching query and resets the
// filter to all. A blank query clears the search.
func (c *Controller) Search(query string) {
	c.query = strings.TrimSpace(query)
	c.filter = FilterAll
	c.recompute()
}

// OpenVideo opens the modal for id and counts one view
func (c *Controller) OpenVideo(id string) (Detail, error) {
	i, ok := c.index[id]
	if !ok {
		return Detail{}, ErrEntryNotFound
	}
	c.entries[i].Views++
	c.openID = id
	c.recompute()
	return c.detail(c.entries[i]), nil
}

// CloseVideo closes the modal if one is open
func (c *Controller) CloseVideo() {
	c.openID = ""
}

// Modal returns the open video, if any
func (c *Controller) Modal() (Detail, bool) {
	if c.openID == "" {
		return Detail{}, false
	}
	return c.detail(c.entries[c.index[c.openID]]), true
}

// OpenID is the id of the open video, or "" when the modal is closed
func (c *Controller) OpenID() string {
	return c.openID
}

func (c *Controller) detail(e models.Entry) Detail {
	return Detail{
		Entry:    e.Clone(),
		Views:    FormatCount(e.Views),
		Likes:    FormatCount(e.Likes),
		Uploaded: FormatRelativeDate(e.UploadedAt, c.now()),
	}
}

// Upload adds a new vlog at the front of the collection
func (c *Controller) Upload(fields UploadFields) (models.Entry, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return models.Entry{}, ErrTitleRequired
	}

	author := AnonymousAuthor
	if c.currentUser != nil {
		author = *c.currentUser
	}
	if fields.AuthorOverride != nil {
		author = *fields.AuthorOverride
	}
	if author.AvatarURL == "" {
		author.AvatarURL = DefaultAvatar
	}
	// uploads always come from travelers
	author.Kind = models.AuthorTraveler

	entry := models.Entry{
		ID:             c.newID(),
		Title:          fields.Title,
		Description:    fields.Description,
		DestinationKey: fields.DestinationKey,
		Category:       fields.Category,
		Author:         author,
		ThumbnailURL:   PlaceholderThumbnail,
		VideoURL:       PlaceholderVideo,
		DurationLabel:  PlaceholderDuration,
		UploadedAt:     models.NewDate(c.now()),
		Tags:           SplitTags(fields.TagsCSV),
	}

	c.entries = append([]models.Entry{entry}, c.entries...)
	c.reindex()
	c.recompute()

	c.notifier.Notify(Notification{Message: UploadedMessage, Kind: NotifySuccess})
	return entry.Clone(), nil
}

// SplitTags splits a comma separated list and trims each tag. Empty tags are kept.
func SplitTags(csv string) []string {
	parts := strings.Split(csv, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Visible returns a copy of the entries currently in view
func (c *Controller) Visible() []models.Entry {
	out := make([]models.Entry, len(c.visible))
	for i, e := range c.visible {
		out[i] = e.Clone()
	}
	return out
}

// Stats totals the visible entries
func (c *Controller) Stats() models.Stats {
	return Summarize(c.visible)
}

// View bundles the view parameters with the visible entries and their stats
func (c *Controller) View() ViewState {
	return ViewState{
		Filter:  c.filter,
		Sort:    c.sort,
		Query:   c.query,
		Entries: c.Visible(),
		Stats:   c.Stats(),
	}
}

// Entries returns a copy of the full collection in insertion order
func (c *Controller) Entries() []models.Entry {
	out := make([]models.Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Clone()
	}
	return out
}

// Entry looks up a single entry without touching its counters
func (c *Controller) Entry(id string) (models.Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Entry{}, false
	}
	return c.entries[i].Clone(), true
}

// Now returns the controller's clock reading
func (c *Controller) Now() time.Time {
	return c.now()
}
