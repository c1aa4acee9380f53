package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestURLIngester_Ingest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	doc, err := NewURLIngester(zap.NewNop()).Ingest(context.Background(), srv.URL+"/jobs/1")
	require.NoError(t, err)

	assert.Equal(t, PlatformUnknown, doc.Platform)
	assert.Contains(t, doc.Text, "Build APIs in Go.")
	assert.Equal(t, ContentHash(doc.Text), doc.ContentHash)
	assert.False(t, doc.UsedBrowser)
	assert.False(t, doc.FetchedAt.IsZero())
}

func TestURLIngester_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewURLIngester(zap.NewNop()).Ingest(context.Background(), srv.URL)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.Error(), "HTTP status 404")
}

func TestURLIngester_InvalidURL(t *testing.T) {
	_, err := NewURLIngester(zap.NewNop()).Ingest(context.Background(), "not a url")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "invalid URL")
}

func TestURLIngester_BrowserFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="root"></div></body></html>`))
	}))
	defer srv.Close()

	rendered := `<html><body><main><p>` + strings.Repeat("Distributed systems with Go. ", 30) + `</p></main></body></html>`
	calls := 0
	render := func(_ context.Context, _ string) (string, error) {
		calls++
		return rendered, nil
	}

	doc, err := NewURLIngester(zap.NewNop(), WithBrowser(render)).Ingest(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.True(t, doc.UsedBrowser)
	assert.Contains(t, doc.Text, "Distributed systems with Go.")
}

func TestURLIngester_BrowserFailureKeepsHTTPText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><p>Short posting</p></main></body></html>`))
	}))
	defer srv.Close()

	render := func(_ context.Context, _ string) (string, error) {
		return "", errors.New("chrome not installed")
	}

	doc, err := NewURLIngester(zap.NewNop(), WithBrowser(render)).Ingest(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.False(t, doc.UsedBrowser)
	assert.Equal(t, "Short posting", doc.Text)
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, NeedsBrowser("   short   "))
	assert.False(t, NeedsBrowser(strings.Repeat("x", MinContentLength)))
}
