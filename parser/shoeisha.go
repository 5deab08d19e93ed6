package parser

import (
	"fmt"
	"log"
	"strings"

	"techbook-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// noItemsMarker appears on the first Shoeisha list page past the end of
// the catalog ("no matching books were found")
const noItemsMarker = "該当の書籍は見つかりませんでした。"

// ShoeishaParser parses Shoeisha book list pages. Each entry is a
// textWrapper block with the title link, a definition list of price,
// release date and ISBN, and a sibling imgWrapper with the cover.
type ShoeishaParser struct {
	baseURL string
}

// NewShoeishaParser creates a parser resolving links against baseURL
func NewShoeishaParser(baseURL string) *ShoeishaParser {
	return &ShoeishaParser{baseURL: baseURL}
}

// Publisher implements the CatalogParser interface
func (p *ShoeishaParser) Publisher() models.Publisher {
	return models.Shoeisha
}

// ParseCatalog implements the CatalogParser interface
func (p *ShoeishaParser) ParseCatalog(html string) ([]models.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var books []models.Book
	doc.Find("#cx_contents_block div.row.list div.textWrapper").Each(func(i int, s *goquery.Selection) {
		link := s.Find("h3 a").First()
		title := strings.TrimSpace(link.Text())
		href := link.AttrOr("href", "")
		if title == "" || href == "" {
			log.Printf("Warning: shoeisha: skipping entry %d: missing title or link\n", i)
			return
		}

		book := models.Book{
			Title:     title,
			Author:    strings.TrimSpace(s.Find(".author").First().Text()),
			ISBN:      strings.TrimSpace(s.Find("dd.isbn").Text()),
			Price:     parsePrice(dtValue(s, "定価："), yenPrice),
			URL:       resolveURL(p.baseURL, href),
			Publisher: models.Shoeisha,
		}
		book.PublishedAt = parseDate(dtValue(s, "発売："), "2006年1月2日")
		if img := s.Parent().Find(".imgWrapper img").First().AttrOr("src", ""); img != "" {
			book.CoverImageURL = resolveURL(p.baseURL, img)
		}

		books = append(books, book)
	})

	return books, nil
}

// NoItemsFound reports whether the page is past the end of the catalog.
// The Shoeisha list accepts any page index, so pagination stops at the
// first page carrying this marker.
func (p *ShoeishaParser) NoItemsFound(html string) bool {
	return strings.Contains(html, noItemsMarker)
}

// dtValue returns the text of the dd element following the dt with the
// given label
func dtValue(s *goquery.Selection, label string) string {
	var value string
	s.Find("dt").EachWithBreak(func(i int, dt *goquery.Selection) bool {
		if strings.TrimSpace(dt.Text()) == label {
			value = strings.TrimSpace(dt.NextFiltered("dd").Text())
			return false
		}
		return true
	})
	return value
}
