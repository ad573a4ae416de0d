package seed

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"athletic-store/internal/model"
)

// SampleFiles maps each sample file name to the collection it seeds.
var SampleFiles = map[string]string{
	"products.jsonl.gz":    model.CollectionProduct,
	"collections.jsonl.gz": model.CollectionCollection,
	"athletes.jsonl.gz":    model.CollectionAthlete,
}

var sampleRecords = map[string][]map[string]any{
	"products.jsonl.gz": {
		{"title": "Velocity Pro Runner", "price": 149.99, "category": "Running", "featured": true,
			"images": []string{"https://cdn.example.com/velocity-pro.jpg"}, "rating": 4.8, "reviews_count": 212},
		{"title": "Court Classic", "price": 89.5, "category": "Basketball", "featured": true},
		{"title": "Trail Blazer GTX", "price": 169, "category": "Trail", "sizes": []string{"8", "9", "10", "11"}},
		{"title": "Studio Flex Trainer", "description": "Low-profile trainer for gym sessions.",
			"price": 74.99, "category": "Training", "in_stock": false},
		{"title": "Sprint Spike Elite", "price": 129, "category": "Track", "featured": true, "rating": 4.9},
	},
	"collections.jsonl.gz": {
		{"name": "Marathon Ready", "slug": "marathon-ready", "image": "https://cdn.example.com/marathon.jpg",
			"description": "Distance shoes and gear."},
		{"name": "Court Essentials", "slug": "court-essentials", "image": "https://cdn.example.com/court.jpg"},
		{"name": "Off Road", "slug": "off-road", "image": "https://cdn.example.com/trail.jpg"},
	},
	"athletes.jsonl.gz": {
		{"name": "Maya Okafor", "sport": "Track", "image": "https://cdn.example.com/maya.jpg",
			"bio": "400m specialist.", "instagram": "@maya.runs"},
		{"name": "Leo Brandt", "sport": "Basketball", "image": "https://cdn.example.com/leo.jpg"},
	},
}

// WriteSamples writes the sample seed files into dir, creating it if needed,
// and returns the written paths.
func WriteSamples(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(sampleRecords))
	for _, name := range slices.Sorted(maps.Keys(sampleRecords)) {
		path := filepath.Join(dir, name)
		if err := writeSeedFile(path, sampleRecords[name]); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSeedFile(path string, records []map[string]any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	gzipWriter := gzip.NewWriter(file)
	enc := json.NewEncoder(gzipWriter)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			gzipWriter.Close()
			file.Close()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	if err := gzipWriter.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return file.Close()
}
