package handlers

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dustin/go-humanize"
	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"

	"travel-vlogs/pkg/gallery"
	"travel-vlogs/pkg/models"
)

// Card is one vlog in the index grid, with every display field precomputed
type Card struct {
	ID          string
	Link        string
	Title       string
	Thumbnail   string
	Duration    string
	AuthorName  string
	AuthorPhoto string
	Location    string
	LocalGuide  bool
	Views       string
	Likes       string
	Uploaded    string
}

// IndexPage is the data for views/index.pug
type IndexPage struct {
	Filter     string
	Sort       string
	Query      string
	Count      string
	TotalViews string
	TotalLikes string
	Cards      []Card
	Categories []models.Category
	Filters    []string
	SortKeys   []string
}

// VideoPage is the data for views/video.pug
type VideoPage struct {
	Title       string
	Description string
	VideoURL    string
	AuthorName  string
	AuthorPhoto string
	Location    string
	Views       string
	Likes       string
	Uploaded    string
	Tags        []string
}

func newCard(e models.Entry, uploaded string) Card {
	return Card{
		ID:          e.ID,
		Link:        "/vlogs/" + e.ID,
		Title:       e.Title,
		Thumbnail:   e.ThumbnailURL,
		Duration:    e.DurationLabel,
		AuthorName:  e.Author.Name,
		AuthorPhoto: e.Author.AvatarURL,
		Location:    e.Author.Location,
		LocalGuide:  e.Author.Kind == models.AuthorLocal,
		Views:       gallery.FormatCount(e.Views),
		Likes:       gallery.FormatCount(e.Likes),
		Uploaded:    uploaded,
	}
}

func newVideoPage(d gallery.Detail) VideoPage {
	return VideoPage{
		Title:       d.Entry.Title,
		Description: d.Entry.Description,
		VideoURL:    d.Entry.VideoURL,
		AuthorName:  d.Entry.Author.Name,
		AuthorPhoto: d.Entry.Author.AvatarURL,
		Location:    d.Entry.Author.Location,
		Views:       d.Views,
		Likes:       d.Likes,
		Uploaded:    d.Uploaded,
		Tags:        d.Entry.Tags,
	}
}

func statsLabels(s models.Stats) (count, views, likes string) {
	return humanize.Comma(int64(s.Count)), gallery.FormatCount(s.TotalViews), gallery.FormatCount(s.TotalLikes)
}

// compileView compiles a pug template from viewsDir. name is relative to viewsDir.
func compileView(viewsDir, name string) (*template.Template, error) {
	tmpl, err := pug.CompileFile(name, pug.Options{Dir: compiler.FsDir(viewsDir)})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return tmpl, nil
}

// executeView renders tmpl into a buffer so a failed render writes nothing
func executeView(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
