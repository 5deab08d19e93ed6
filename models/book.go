package models

import "time"

// Publisher identifies the site a Book was scraped from
type Publisher string

const (
	OreillyJapan     Publisher = "oreilly_japan"
	Shoeisha         Publisher = "shoeisha"
	GijutsuHyoronsha Publisher = "gijutsu_hyoronsha"
)

// Publishers lists all publishers in the order they are scraped
var Publishers = []Publisher{OreillyJapan, Shoeisha, GijutsuHyoronsha}

// Book represents one scraped catalog entry. CSV column layout lives
// with the CSV writer; only the JSON field names are declared here.
type Book struct {
	Title         string     `json:"title"`
	Author        string     `json:"author,omitempty"`
	ISBN          string     `json:"isbn,omitempty"`
	Price         int        `json:"price"` // raw value as published, 0 = unknown
	URL           string     `json:"url"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	Publisher     Publisher  `json:"publisher"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
}

// Valid reports whether the record carries the required fields.
// Parsers drop entries that fail this check instead of emitting partial records.
func (b Book) Valid() bool {
	return b.Title != "" && b.URL != "" && b.Publisher != ""
}
