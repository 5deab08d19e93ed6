package scraper

import (
	"fmt"
	"log"
	"net/url"
	"strconv"

	"techbook-scraper/config"
	"techbook-scraper/fetcher"
	"techbook-scraper/models"
	"techbook-scraper/parser"
)

// Source couples one publisher's catalog parser with its pagination rule
type Source interface {
	// Publisher identifies the site this source crawls
	Publisher() models.Publisher
	// Crawl walks the publisher's catalog pages via f and returns the
	// books found, in page order. Records collected before a failure
	// are returned alongside the error.
	Crawl(f fetcher.Fetcher) ([]models.Book, error)
}

// NewSources builds the three publisher sources in their fixed scrape
// order: O'Reilly Japan, Shoeisha, Gijutsu-Hyoronsha.
func NewSources(cfg *config.Config) []Source {
	return []Source{
		&oreillySource{
			parser: parser.NewOreillyParser(cfg.Oreilly.BaseURL),
			url:    cfg.Oreilly.BaseURL,
		},
		&shoeishaSource{
			parser:   parser.NewShoeishaParser(cfg.Shoeisha.BaseURL),
			baseURL:  cfg.Shoeisha.BaseURL,
			maxPages: cfg.Shoeisha.MaxPages,
		},
		&gihyoSource{
			parser:     parser.NewGihyoParser(cfg.Gihyo.BaseURL),
			baseURL:    cfg.Gihyo.BaseURL,
			maxPages:   cfg.Gihyo.MaxPages,
			categories: cfg.Gihyo.Categories,
		},
	}
}

// oreillySource crawls the O'Reilly Japan catalog, which is a single page
type oreillySource struct {
	parser *parser.OreillyParser
	url    string
}

func (s *oreillySource) Publisher() models.Publisher {
	return models.OreillyJapan
}

func (s *oreillySource) Crawl(f fetcher.Fetcher) ([]models.Book, error) {
	html, err := f.Fetch(s.url)
	if err != nil {
		return nil, err
	}
	books, err := s.parser.ParseCatalog(html)
	if err != nil {
		return nil, err
	}
	log.Printf("DONE: %s\n", s.url)
	return books, nil
}

// shoeishaSource crawls Shoeisha's book list page by page index until the
// "no books found" marker page, an unparseable stretch, or the ceiling
type shoeishaSource struct {
	parser   *parser.ShoeishaParser
	baseURL  string
	maxPages int
}

func (s *shoeishaSource) Publisher() models.Publisher {
	return models.Shoeisha
}

func (s *shoeishaSource) Crawl(f fetcher.Fetcher) ([]models.Book, error) {
	var books []models.Book
	for page := 0; page < s.maxPages; page++ {
		pageURL, err := pageURL(s.baseURL, "book/list", url.Values{"p": {strconv.Itoa(page)}})
		if err != nil {
			return books, err
		}
		html, err := f.Fetch(pageURL)
		if err != nil {
			return books, err
		}
		if s.parser.NoItemsFound(html) {
			break
		}
		parsed, err := s.parser.ParseCatalog(html)
		if err != nil {
			// Malformed page, move on to the next index
			log.Printf("Warning: failed to parse %s: %v\n", pageURL, err)
			continue
		}
		// A page with no entries also ends the catalog, in case the
		// end-of-catalog marker text ever changes
		if len(parsed) == 0 {
			break
		}
		books = append(books, parsed...)
		log.Printf("DONE: %s\n", pageURL)
	}
	return books, nil
}

// gihyoSource crawls Gijutsu-Hyoronsha genre listings, one page sequence
// per configured category, stopping each at the first empty page or the
// ceiling
type gihyoSource struct {
	parser     *parser.GihyoParser
	baseURL    string
	maxPages   int
	categories []string
}

func (s *gihyoSource) Publisher() models.Publisher {
	return models.GijutsuHyoronsha
}

func (s *gihyoSource) Crawl(f fetcher.Fetcher) ([]models.Book, error) {
	var books []models.Book
	for _, category := range s.categories {
		for page := 0; page < s.maxPages; page++ {
			pageURL, err := pageURL(s.baseURL, "book/genre", url.Values{
				"s":    {category},
				"page": {strconv.Itoa(page)},
			})
			if err != nil {
				return books, err
			}
			html, err := f.Fetch(pageURL)
			if err != nil {
				// One category failing shouldn't end the others
				log.Printf("Warning: %v\n", err)
				break
			}
			parsed, err := s.parser.ParseCatalog(html)
			if err != nil {
				log.Printf("Warning: failed to parse %s: %v\n", pageURL, err)
				break
			}
			if len(parsed) == 0 {
				break
			}
			books = append(books, parsed...)
			log.Printf("DONE: %s\n", pageURL)
		}
	}
	return books, nil
}

// pageURL builds a catalog page URL from the publisher base URL, a path
// and query parameters
func pageURL(base, path string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %w", err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL path: %w", err)
	}
	u = u.ResolveReference(ref)
	u.RawQuery = params.Encode()
	return u.String(), nil
}
