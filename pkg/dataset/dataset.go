// Package dataset reads the seed vlog collection from the embedded default,
// a local file or a Cloud Storage bucket.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"travel-vlogs/pkg/config"
	"travel-vlogs/pkg/logger"
	"travel-vlogs/pkg/models"
)

//go:embed seed.json
var seedJSON []byte

// Format is a dataset encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	// ErrMissingID is returned when an entry has no id
	ErrMissingID = errors.New("entry without id")
	// ErrDuplicateID is returned when two entries share an id
	ErrDuplicateID = errors.New("duplicate entry id")
	// ErrNegativeCounter is returned when views or likes are below zero
	ErrNegativeCounter = errors.New("negative views or likes")
)

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Decode reads a list of entries in the given format
func Decode(r io.Reader, format Format) ([]models.Entry, error) {
	var entries []models.Entry
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&entries); err != nil {
			return nil, fmt.Errorf("decode json dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return entries, nil
}

// Encode writes entries in the given format
func Encode(w io.Writer, entries []models.Entry, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// Validate checks that ids are present and unique and counters are not negative
func Validate(entries []models.Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("%w at position %d", ErrMissingID, i)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = struct{}{}
		if e.Views < 0 || e.Likes < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeCounter, e.ID)
		}
	}
	return nil
}

// Embedded returns the built-in dataset
func Embedded() ([]models.Entry, error) {
	return Decode(bytes.NewReader(seedJSON), FormatJSON)
}

// LoadFile reads a JSON or YAML dataset from disk
func LoadFile(path string) ([]models.Entry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Load reads the dataset selected by cfg: a local file when DatasetPath is
// set, the bucket when BucketName is set, the embedded dataset otherwise.
// The result is validated.
func Load(ctx context.Context, cfg *config.Config) ([]models.Entry, error) {
	var (
		entries []models.Entry
		err     error
	)

	switch {
	case cfg.DatasetPath != "":
		entries, err = LoadFile(cfg.DatasetPath)
	case cfg.BucketName != "":
		entries, err = LoadBucket(ctx, cfg.BucketName, cfg.DatasetPrefix)
	default:
		entries, err = Embedded()
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(entries); err != nil {
		return nil, err
	}

	logger.GetLogger().
		WithField("source", cfg.DatasetSource()).
		WithField("entries", len(entries)).
		Info("Dataset loaded")
	return entries, nil
}
