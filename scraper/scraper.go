package scraper

import (
	"log"

	"techbook-scraper/fetcher"
	"techbook-scraper/models"
)

// Scraper drives each publisher source through its catalog pages and
// aggregates the results into one sequence
type Scraper struct {
	fetcher fetcher.Fetcher
	sources []Source
}

// New creates a Scraper over the given sources. Sources are processed
// in slice order, so the caller controls the ordering of the output.
func New(f fetcher.Fetcher, sources []Source) *Scraper {
	return &Scraper{
		fetcher: f,
		sources: sources,
	}
}

// Run crawls every source in order and returns the collected records,
// preserving per-publisher, per-page, per-entry order. One publisher
// failing never aborts the run; its records are simply absent.
func (s *Scraper) Run() []models.Book {
	var books []models.Book
	for _, src := range s.sources {
		collected, err := src.Crawl(s.fetcher)
		if err != nil {
			log.Printf("Warning: %s: %v\n", src.Publisher(), err)
		}
		books = append(books, collected...)
	}
	return books
}
