package dataset

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"travel-vlogs/pkg/gallery"
	"travel-vlogs/pkg/models"
)

// DestinationKeys are the keys of the embedded destinations
var DestinationKeys = []string{"kerala", "rajasthan", "goa", "himachal"}

// Fake generates n synthetic entries. The same seed always yields the same dataset.
func Fake(n int, seed int64) []models.Entry {
	f := gofakeit.New(seed)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	entries := make([]models.Entry, 0, n)
	for i := 0; i < n; i++ {
		kind := models.AuthorTraveler
		if f.Bool() {
			kind = models.AuthorLocal
		}
		destination := f.RandomString(DestinationKeys)

		entries = append(entries, models.Entry{
			ID:             fmt.Sprintf("vlog_fake_%03d", i+1),
			Title:          f.Sentence(6),
			Description:    f.Sentence(18),
			DestinationKey: destination,
			Category:       f.RandomString(gallery.Categories),
			Author: models.Author{
				Name:      f.Name(),
				AvatarURL: f.ImageURL(100, 100),
				Kind:      kind,
				Location:  f.City(),
			},
			ThumbnailURL:  f.ImageURL(400, 225),
			VideoURL:      gallery.PlaceholderVideo,
			DurationLabel: fmt.Sprintf("%02d:%02d", f.Number(3, 25), f.Number(0, 59)),
			Views:         f.Number(0, 50_000),
			Likes:         f.Number(0, 2_500),
			UploadedAt:    models.NewDate(f.DateRange(start, end)),
			Tags:          []string{destination, f.Word(), f.Word()},
			Featured:      f.Number(1, 5) == 1,
		})
	}
	return entries
}
