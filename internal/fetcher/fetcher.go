// Package fetcher resolves URLs to parsed documents and memoizes them for the
// lifetime of the Fetcher.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/singleflight"

	"github.com/jonesrussell/habrreader/internal/domain"
	"github.com/jonesrussell/habrreader/internal/logger"
)

// ErrBodyTooLarge is wrapped by the NetworkError returned for oversized responses.
var ErrBodyTooLarge = errors.New("response body too large")

// Stats is a snapshot of fetcher activity.
type Stats struct {
	// Requests is the number of HTTP requests issued
	Requests int64 `json:"requests"`
	// CacheHits is the number of lookups served from the cache
	CacheHits int64 `json:"cache_hits"`
	// Cached is the number of documents currently stored
	Cached int `json:"cached"`
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client. The client's CheckRedirect is kept as given.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = client
	}
}

// Fetcher issues GET requests and caches the parsed documents by exact URL.
// It is safe for concurrent use; concurrent requests for the same URL share
// a single network round trip. The shared round trip is detached from any
// one caller's cancellation and bounded by the request timeout instead; a
// cancelled caller stops waiting without failing the others. Failed fetches
// are not cached.
type Fetcher struct {
	httpClient     *http.Client
	log            logger.Interface
	userAgent      string
	maxBodySize    int64
	requestTimeout time.Duration

	mu    sync.RWMutex
	cache map[string]*domain.Document
	group singleflight.Group

	requests  atomic.Int64
	cacheHits atomic.Int64
}

// New creates a Fetcher.
func New(cfg Config, log logger.Interface, opts ...Option) *Fetcher {
	cfg = cfg.WithDefaults()
	if log == nil {
		log = logger.NewNoOp()
	}

	f := &Fetcher{
		httpClient: &http.Client{
			Timeout:       cfg.RequestTimeout,
			CheckRedirect: RedirectPolicy(cfg.MaxRedirects),
		},
		log:            log.WithComponent("fetcher"),
		userAgent:      cfg.UserAgent,
		maxBodySize:    cfg.MaxBodySize,
		requestTimeout: cfg.RequestTimeout,
		cache:          make(map[string]*domain.Document),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Document returns the parsed document for rawURL, fetching it on first use.
func (f *Fetcher) Document(ctx context.Context, rawURL string) (*domain.Document, error) {
	if doc, ok := f.lookup(rawURL); ok {
		f.cacheHits.Add(1)
		f.log.Debug("cache hit", "url", rawURL)
		return doc, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, &domain.NetworkError{URL: rawURL, Err: err}
	}

	ch := f.group.DoChan(rawURL, func() (any, error) {
		// Another caller may have stored the document between lookup and DoChan.
		if doc, ok := f.lookup(rawURL); ok {
			return doc, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.requestTimeout)
		defer cancel()

		doc, fetchErr := f.fetch(fetchCtx, rawURL)
		if fetchErr != nil {
			return nil, fetchErr
		}

		f.mu.Lock()
		f.cache[rawURL] = doc
		f.mu.Unlock()

		return doc, nil
	})

	select {
	case <-ctx.Done():
		f.log.Debug("caller stopped waiting", "url", rawURL, "error", ctx.Err())
		return nil, &domain.NetworkError{URL: rawURL, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			f.log.Warn("fetch failed", "url", rawURL, "error", res.Err)
			return nil, res.Err
		}
		if res.Shared {
			f.log.Debug("shared in-flight fetch", "url", rawURL)
		}

		doc, _ := res.Val.(*domain.Document)
		return doc, nil
	}
}

// Cached reports whether rawURL is already stored.
func (f *Fetcher) Cached(rawURL string) bool {
	_, ok := f.lookup(rawURL)
	return ok
}

// Stats returns a snapshot of request and cache counters.
func (f *Fetcher) Stats() Stats {
	f.mu.RLock()
	cached := len(f.cache)
	f.mu.RUnlock()

	return Stats{
		Requests:  f.requests.Load(),
		CacheHits: f.cacheHits.Load(),
		Cached:    cached,
	}
}

func (f *Fetcher) lookup(rawURL string) (*domain.Document, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	doc, ok := f.cache[rawURL]
	return doc, ok
}

// fetch performs the HTTP GET request and parses the response.
func (f *Fetcher) fetch(ctx context.Context, rawURL string) (*domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, &domain.ParseError{Input: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	f.requests.Add(1)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	f.log.Debug("fetched document",
		"url", rawURL,
		"final_url", resp.Request.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.NetworkError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if err := checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return nil, &domain.ParseError{Input: rawURL, Err: err}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, &domain.NetworkError{URL: rawURL, Err: fmt.Errorf("read response body: %w", err)}
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, &domain.NetworkError{URL: rawURL, Err: fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, f.maxBodySize)}
	}

	root, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.ParseError{Input: rawURL, Err: fmt.Errorf("parse html: %w", err)}
	}

	return &domain.Document{
		URL:        rawURL,
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Root:       root,
	}, nil
}

// checkContentType rejects responses that declare a non-markup media type.
// A missing header is accepted.
func checkContentType(header string) error {
	if header == "" {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fmt.Errorf("content type %q: %w", header, err)
	}

	switch mediaType {
	case "text/html", "application/xhtml+xml", "application/xml", "text/xml":
		return nil
	default:
		return fmt.Errorf("unsupported content type %q", mediaType)
	}
}
