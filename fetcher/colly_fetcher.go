package fetcher

import (
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher(userAgent string, timeout, delay time.Duration) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
	)
	c.SetRequestTimeout(timeout)

	// Keep requests sequential and polite toward the publisher sites
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       delay,
	})

	return &CollyFetcher{
		collector: c,
	}
}

// Fetch implements the Fetcher interface for a single page
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	// Clone keeps the collector config but starts with no callbacks,
	// so repeated calls don't stack response handlers
	c := cf.collector.Clone()

	var body string
	var fetchErr *FetchError

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		fe := &FetchError{URL: url, Err: err}
		if r != nil {
			fe.StatusCode = r.StatusCode
		}
		fetchErr = fe
	})

	if err := c.Visit(url); err != nil {
		if fetchErr != nil {
			return "", fetchErr
		}
		return "", &FetchError{URL: url, Err: err}
	}
	c.Wait()

	if fetchErr != nil {
		return "", fetchErr
	}
	return body, nil
}
