package ingestion

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Document is a job posting fetched from a URL and reduced to clean text
type Document struct {
	URL         string    `json:"url"`
	Platform    Platform  `json:"platform"`
	Text        string    `json:"text"`
	ContentHash string    `json:"content_hash"`
	UsedBrowser bool      `json:"used_browser"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// URLIngester fetches job postings over HTTP with an optional headless browser fallback
type URLIngester struct {
	client    *http.Client
	userAgent string
	render    RenderFunc
	logger    *zap.Logger
}

// Option configures a URLIngester
type Option func(*URLIngester)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(u *URLIngester) { u.client = c }
}

// WithBrowser enables the headless browser fallback for SPA pages.
func WithBrowser(render RenderFunc) Option {
	return func(u *URLIngester) { u.render = render }
}

// NewURLIngester creates a URLIngester.
func NewURLIngester(logger *zap.Logger, opts ...Option) *URLIngester {
	u := &URLIngester{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Ingest fetches rawURL and extracts the posting text using platform-specific selectors.
func (u *URLIngester) Ingest(ctx context.Context, rawURL string) (*Document, error) {
	platform := DetectPlatform(rawURL)
	log := u.logger.With(zap.String("url", rawURL), zap.String("platform", string(platform)))

	html, err := fetchHTML(ctx, u.client, u.userAgent, rawURL)
	if err != nil {
		return nil, err
	}
	log.Debug("fetched job posting", zap.Int("html_bytes", len(html)))

	text, err := ExtractMainText(html, ContentSelectors(platform), NoiseSelectors(platform))
	if err != nil {
		return nil, &FetchError{URL: rawURL, Message: "content extraction failed", Cause: err}
	}

	usedBrowser := false
	if u.render != nil && NeedsBrowser(text) {
		log.Info("content too short, rendering with browser", zap.Int("chars", len(text)))
		rendered, renderErr := u.render(ctx, rawURL)
		if renderErr != nil {
			log.Warn("browser rendering failed, keeping HTTP content", zap.Error(renderErr))
		} else if browserText, extractErr := ExtractMainText(rendered, ContentSelectors(platform), NoiseSelectors(platform)); extractErr == nil && len(browserText) > len(text) {
			text = browserText
			usedBrowser = true
		}
	}

	cleaned := CleanText(text)
	return &Document{
		URL:         rawURL,
		Platform:    platform,
		Text:        cleaned,
		ContentHash: ContentHash(cleaned),
		UsedBrowser: usedBrowser,
		FetchedAt:   time.Now().UTC(),
	}, nil
}
