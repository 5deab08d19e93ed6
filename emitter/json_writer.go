package emitter

import (
	"encoding/json"
	"fmt"
	"os"

	"techbook-scraper/models"
)

// JSONWriter writes books as one JSON array to a local file
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a JSONWriter targeting the given path
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Emit implements the Emitter interface
func (w *JSONWriter) Emit(books []models.Book) error {
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode books: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	return nil
}
