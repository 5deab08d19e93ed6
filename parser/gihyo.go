package parser

import (
	"fmt"
	"log"
	"strings"

	"techbook-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// GihyoParser parses Gijutsu-Hyoronsha genre listing pages. Entries are
// list items with the title heading, price, selling date and the detail
// link whose last path segment is the ISBN.
type GihyoParser struct {
	baseURL string
}

// NewGihyoParser creates a parser resolving links against baseURL
func NewGihyoParser(baseURL string) *GihyoParser {
	return &GihyoParser{baseURL: baseURL}
}

// Publisher implements the CatalogParser interface
func (p *GihyoParser) Publisher() models.Publisher {
	return models.GijutsuHyoronsha
}

// ParseCatalog implements the CatalogParser interface
func (p *GihyoParser) ParseCatalog(html string) ([]models.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var books []models.Book
	doc.Find("#mainbook > ul.magazineList01.bookList01 > li.clearfix").Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h3 a").First().Text())
		href := s.Find("a[href]").First().AttrOr("href", "")
		if title == "" || href == "" {
			log.Printf("Warning: gihyo: skipping entry %d: missing title or link\n", i)
			return
		}

		book := models.Book{
			Title:     title,
			Author:    strings.TrimSpace(s.Find("p.author").First().Text()),
			ISBN:      isbnFromPath(href),
			Price:     parsePrice(s.Find("p.price").Text(), yenPrice),
			URL:       resolveURL(p.baseURL, href),
			Publisher: models.GijutsuHyoronsha,
		}
		book.PublishedAt = parseDate(s.Find("p.sellingdate").Text(), "2006年1月2日発売")
		if img := s.Find("img").First().AttrOr("src", ""); img != "" {
			book.CoverImageURL = resolveURL(p.baseURL, img)
		}

		books = append(books, book)
	})

	return books, nil
}

// isbnFromPath extracts the ISBN from a detail URL like
// /book/2024/978-4-297-XXXXX-X
func isbnFromPath(href string) string {
	trimmed := strings.TrimSuffix(href, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
