// Package feed assembles scrape output into the one persisted JSON artifact.
package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spacjobs/internal/models"
)

// BuildPayload wraps one pass's records with run metadata. Jobs keep their
// discovery order; the run timestamp is UTC at second precision.
func BuildPayload(source string, jobs []models.JobRecord, now time.Time) *models.FeedPayload {
	return &models.FeedPayload{
		Source:    source,
		ScrapedAt: now.UTC().Truncate(time.Second),
		JobCount:  len(jobs),
		Jobs:      jobs,
	}
}

// Write serializes the payload to path as indented UTF-8 JSON, creating any
// missing parent directories and fully replacing prior content. HTML
// escaping is off so Arabic text and URLs survive byte-for-byte. Returns
// the number of bytes written.
func Write(payload *models.FeedPayload, path string) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return 0, fmt.Errorf("failed to encode feed: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write feed: %w", err)
	}

	return buf.Len(), nil
}
