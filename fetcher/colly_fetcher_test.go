package fetcher

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body>hello from %s</body></html>", r.UserAgent())
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusFound)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	return httptest.NewServer(mux)
}

func TestCollyFetcherFetch(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	f := NewCollyFetcher("test-agent", 5*time.Second, 0)
	body, err := f.Fetch(server.URL + "/ok")

	require.NoError(t, err)
	assert.Contains(t, body, "hello from test-agent")
}

func TestCollyFetcherFollowsRedirects(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	f := NewCollyFetcher("test-agent", 5*time.Second, 0)
	body, err := f.Fetch(server.URL + "/moved")

	require.NoError(t, err)
	assert.Contains(t, body, "hello")
}

func TestCollyFetcherNon2xx(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	f := NewCollyFetcher("test-agent", 5*time.Second, 0)
	_, err := f.Fetch(server.URL + "/missing")

	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Equal(t, server.URL+"/missing", fe.URL)
}

func TestCollyFetcherConnectionFailure(t *testing.T) {
	server := newTestServer()
	url := server.URL + "/ok"
	server.Close()

	f := NewCollyFetcher("test-agent", 2*time.Second, 0)
	_, err := f.Fetch(url)

	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, url, fe.URL)
}
