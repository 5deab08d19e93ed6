package fetcher

import "fmt"

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch retrieves the raw HTML of a single catalog page.
	// Redirects are followed; any non-2xx status is an error.
	Fetch(url string) (string, error)
}

// FetchError describes a failed fetch of one page
type FetchError struct {
	URL        string
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
