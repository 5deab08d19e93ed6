package parser

import (
	"log"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"techbook-scraper/models"
)

// CatalogParser extracts Book records from one publisher's catalog page
type CatalogParser interface {
	// Publisher identifies the site this parser understands
	Publisher() models.Publisher
	// ParseCatalog extracts book entries from the raw HTML of one catalog
	// listing page. Entries missing a title or detail link are skipped.
	ParseCatalog(html string) ([]models.Book, error)
}

// All three publishers date their listings in JST
var jst = time.FixedZone("JST", 9*60*60)

// yenPrice matches prices like "3,080円"
var yenPrice = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)円`)

// bareNumber matches prices published without the 円 suffix, like "3,080"
var bareNumber = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)`)

// resolveURL turns a possibly relative href into an absolute URL
func resolveURL(base, href string) string {
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

// parsePrice extracts the numeric price from text using the given pattern.
// Returns 0 when no price can be extracted; price is not a required field.
func parsePrice(text string, re *regexp.Regexp) int {
	matches := re.FindStringSubmatch(text)
	if len(matches) < 2 {
		if strings.TrimSpace(text) != "" {
			log.Printf("Warning: could not extract price from %q\n", strings.TrimSpace(text))
		}
		return 0
	}
	price, err := strconv.Atoi(strings.ReplaceAll(matches[1], ",", ""))
	if err != nil || price < 0 {
		return 0
	}
	return price
}

// parseDate parses a publication date in the given layout, in JST.
// Returns nil when the text doesn't match; the date is not a required field.
func parseDate(text, layout string) *time.Time {
	t, err := time.ParseInLocation(layout, strings.TrimSpace(text), jst)
	if err != nil {
		return nil
	}
	return &t
}
