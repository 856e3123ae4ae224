package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the wire format of an upload date
const DateLayout = "2006-01-02"

// AuthorKind tells local guides apart from visiting travelers
type AuthorKind string

const (
	AuthorLocal    AuthorKind = "local"
	AuthorTraveler AuthorKind = "traveler"
)

// Author describes who uploaded a vlog
type Author struct {
	Name      string     `json:"name" yaml:"name"`
	AvatarURL string     `json:"avatar" yaml:"avatar"`
	Kind      AuthorKind `json:"type" yaml:"type"`
	Location  string     `json:"location" yaml:"location"`
}

// Entry represents a single travel vlog in the gallery
type Entry struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description" yaml:"description"`
	DestinationKey string   `json:"destination" yaml:"destination"`
	Category       string   `json:"type" yaml:"type"`
	Author         Author   `json:"author" yaml:"author"`
	ThumbnailURL   string   `json:"thumbnail" yaml:"thumbnail"`
	VideoURL       string   `json:"videoUrl" yaml:"videoUrl"`
	DurationLabel  string   `json:"duration" yaml:"duration"`
	Views          int      `json:"views" yaml:"views"`
	Likes          int      `json:"likes" yaml:"likes"`
	UploadedAt     Date     `json:"uploadDate" yaml:"uploadDate"`
	Tags           []string `json:"tags" yaml:"tags"`
	Featured       bool     `json:"featured" yaml:"featured"`
}

// Clone returns a copy that shares no slices with e
func (e Entry) Clone() Entry {
	if e.Tags != nil {
		e.Tags = append([]string(nil), e.Tags...)
	}
	return e
}

// Stats are the aggregate counters shown above the vlog list
type Stats struct {
	Count      int `json:"count"`
	TotalViews int `json:"totalViews"`
	TotalLikes int `json:"totalLikes"`
}

// Category is a vlog category with the number of entries filed under it
type Category struct {
	Name    string `json:"name" yaml:"name"`
	Entries int    `json:"entries" yaml:"entries"`
}

// Dish is a local food recommendation
type Dish struct {
	Dish  string `json:"dish" yaml:"dish"`
	Price string `json:"price" yaml:"price"`
	Veg   bool   `json:"veg" yaml:"veg"`
}

// Expenses are average daily costs in rupees
type Expenses struct {
	Stay       int `json:"stay" yaml:"stay"`
	Food       int `json:"food" yaml:"food"`
	Transport  int `json:"transport" yaml:"transport"`
	Activities int `json:"activities" yaml:"activities"`
}

// Daily is the total of all expense lines
func (x Expenses) Daily() int {
	return x.Stay + x.Food + x.Transport + x.Activities
}

// Destination is a place vlogs are filed under, keyed by Entry.DestinationKey
type Destination struct {
	Key         string   `json:"key" yaml:"key"`
	Name        string   `json:"name" yaml:"name"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Types       []string `json:"types" yaml:"types"`
	Budget      string   `json:"budget" yaml:"budget"`
	Description string   `json:"description" yaml:"description"`
	BestTime    string   `json:"bestTime" yaml:"bestTime"`
	BadTime     string   `json:"badTime" yaml:"badTime"`
	ImageURL    string   `json:"image" yaml:"image"`
	Food        []Dish   `json:"food" yaml:"food"`
	Expenses    Expenses `json:"expenses" yaml:"expenses"`
}

// Date is a calendar day. The time part is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in t's location and pins it to UTC
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
