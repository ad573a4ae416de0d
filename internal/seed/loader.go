package seed

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// maxLineBytes bounds a single JSON document in a seed file.
const maxLineBytes = 1024 * 1024

// fileLoader implements Loader for reading gzipped seed files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a gzipped seed file with one JSON document per line.
func (l *fileLoader) Load(ctx context.Context, path string) ([]Record, error) {
	l.logger.Info().Str("file", path).Msg("loading seed file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	records, err := readRecords(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("error reading seed file")
		return nil, fmt.Errorf("error reading seed file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("records_loaded", len(records)).
		Msg("seed file loaded successfully")

	return records, nil
}

// readRecords decompresses r and splits it into non-blank lines.
func readRecords(ctx context.Context, r io.Reader) ([]Record, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	records := make([]Record, 0, 64)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		// Scanner reuses its buffer
		records = append(records, Record{Line: lineNo, Data: bytes.Clone(line)})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
