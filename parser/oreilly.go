package parser

import (
	"fmt"
	"log"
	"strings"

	"techbook-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// OreillyParser parses the O'Reilly Japan catalog table.
// The whole catalog is one table: ISBN, title (with the detail link),
// price and release date per row.
type OreillyParser struct {
	baseURL string
}

// NewOreillyParser creates a parser resolving links against baseURL
func NewOreillyParser(baseURL string) *OreillyParser {
	return &OreillyParser{baseURL: baseURL}
}

// Publisher implements the CatalogParser interface
func (p *OreillyParser) Publisher() models.Publisher {
	return models.OreillyJapan
}

// ParseCatalog implements the CatalogParser interface
func (p *OreillyParser) ParseCatalog(html string) ([]models.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var books []models.Book
	doc.Find("#bookTable > tbody > tr").Each(func(i int, s *goquery.Selection) {
		cells := s.Find("td")
		title := strings.TrimSpace(s.Find("td.title").Text())
		href := s.Find("a").First().AttrOr("href", "")
		if title == "" || href == "" {
			log.Printf("Warning: oreilly: skipping row %d: missing title or link\n", i)
			return
		}

		book := models.Book{
			Title:     title,
			ISBN:      strings.TrimSpace(cells.First().Text()),
			Price:     parsePrice(s.Find("td.price").Text(), bareNumber),
			URL:       resolveURL(p.baseURL, href),
			Publisher: models.OreillyJapan,
		}
		// The release date is the last cell, formatted 2024/10/03
		book.PublishedAt = parseDate(cells.Last().Text(), "2006/1/2")
		if img := s.Find("img").First().AttrOr("src", ""); img != "" {
			book.CoverImageURL = resolveURL(p.baseURL, img)
		}

		books = append(books, book)
	})

	return books, nil
}
