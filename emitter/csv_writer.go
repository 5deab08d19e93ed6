package emitter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"techbook-scraper/models"
)

// csvHeader mirrors the Book field order
var csvHeader = []string{"title", "author", "isbn", "price", "url", "published_at", "publisher", "cover_image_url"}

// CSVWriter writes books as CSV with a header row
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a CSVWriter targeting the given path
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Emit implements the Emitter interface
func (w *CSVWriter) Emit(books []models.Book) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, b := range books {
		published := ""
		if b.PublishedAt != nil {
			published = b.PublishedAt.Format("2006-01-02")
		}
		record := []string{
			b.Title,
			b.Author,
			b.ISBN,
			strconv.Itoa(b.Price),
			b.URL,
			published,
			string(b.Publisher),
			b.CoverImageURL,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
