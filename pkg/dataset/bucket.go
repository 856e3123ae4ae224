package dataset

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"travel-vlogs/pkg/logger"
	"travel-vlogs/pkg/models"
)

// LoadBucket reads every JSON and YAML object under prefix in bucketName and
// concatenates their entries. Objects are read in natural name order, so
// "part2.json" comes before "part10.json".
func LoadBucket(ctx context.Context, bucketName, prefix string) ([]models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	return loadFromBucket(ctx, client.Bucket(bucketName), prefix)
}

func loadFromBucket(ctx context.Context, bucket *storage.BucketHandle, prefix string) ([]models.Entry, error) {
	names, err := listDatasetObjects(ctx, bucket, prefix)
	if err != nil {
		return nil, err
	}

	var entries []models.Entry
	for _, name := range names {
		part, err := readObject(ctx, bucket, name)
		if err != nil {
			return nil, err
		}
		logger.GetLogger().WithField("object", name).WithField("entries", len(part)).Debug("Read dataset object")
		entries = append(entries, part...)
	}
	return entries, nil
}

func listDatasetObjects(ctx context.Context, bucket *storage.BucketHandle, prefix string) ([]string, error) {
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list dataset objects: %w", err)
		}
		if _, err := FormatFromPath(attrs.Name); err != nil {
			continue
		}
		names = append(names, attrs.Name)
	}

	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
	return names, nil
}

func readObject(ctx context.Context, bucket *storage.BucketHandle, name string) ([]models.Entry, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}

	r, err := bucket.Object(name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open object %s: %w", name, err)
	}
	defer r.Close()

	entries, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", name, err)
	}
	return entries, nil
}
