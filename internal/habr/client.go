// Package habr implements the read-only Habr client: listing pages, article
// resolution, body text, comments, random selection and keyword search.
package habr

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"
	"sync"
	"time"

	habrconfig "github.com/jonesrussell/habrreader/internal/config/habr"
	"github.com/jonesrussell/habrreader/internal/config/types"
	"github.com/jonesrussell/habrreader/internal/domain"
	"github.com/jonesrussell/habrreader/internal/extract"
	"github.com/jonesrussell/habrreader/internal/logger"
)

//go:generate mockgen -destination=../../testutils/mocks/habr/document_source.go -package=habr github.com/jonesrussell/habrreader/internal/habr DocumentSource

// DocumentSource resolves URLs to parsed documents. fetcher.Fetcher is the
// production implementation.
type DocumentSource interface {
	Document(ctx context.Context, rawURL string) (*domain.Document, error)
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(log logger.Interface) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithRand sets the random source used by the random-selection operations.
// Tests pass a seeded generator to make picks reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(c *Client) {
		c.rng = rng
	}
}

// Client reads Habr content through a DocumentSource. It is safe for
// concurrent use when the source is.
type Client struct {
	source      DocumentSource
	urls        *URLBuilder
	listing     *extract.ListingExtractor
	article     *extract.ArticleExtractor
	comments    *extract.CommentExtractor
	log         logger.Interface
	concurrency int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewClient creates a Client.
func NewClient(source DocumentSource, cfg *habrconfig.Config, sel types.Selectors, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = habrconfig.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("habr config: %w", err)
	}
	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("selectors: %w", err)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	now := uint64(time.Now().UnixNano())
	c := &Client{
		source:      source,
		urls:        NewURLBuilder(cfg.BaseURL, cfg.Locale),
		listing:     extract.NewListingExtractor(sel.Listing, base),
		article:     extract.NewArticleExtractor(sel.Article),
		comments:    extract.NewCommentExtractor(sel.Comments),
		log:         logger.NewNoOp(),
		concurrency: cfg.ListingConcurrency,
		rng:         rand.New(rand.NewPCG(now, now>>1)),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("habr")

	return c, nil
}

// ListArticles returns the (title, link) pairs of one listing page in
// document order. An empty category reads the global feed. A page past the
// last populated one yields an empty slice.
func (c *Client) ListArticles(ctx context.Context, category string, page int) ([]domain.ArticleSummary, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrInvalidArgument, page)
	}

	doc, err := c.source.Document(ctx, c.urls.Listing(category, page))
	if err != nil {
		return nil, fmt.Errorf("list articles page %d: %w", page, err)
	}

	summaries, err := c.listing.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("list articles page %d: %w", page, err)
	}

	c.log.Debug("listing page read", "category", category, "page", page, "articles", len(summaries))
	return summaries, nil
}

// GetArticleDetail resolves an article's title, canonical link and optional
// lead image.
func (c *Client) GetArticleDetail(ctx context.Context, id int) (*domain.ArticleDetail, error) {
	doc, err := c.articleDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	detail, err := c.article.Detail(doc)
	if err != nil {
		return nil, fmt.Errorf("article %d: %w", id, err)
	}
	detail.ID = id

	return detail, nil
}

// GetArticleText returns the stripped body text of an article.
func (c *Client) GetArticleText(ctx context.Context, id int) (string, error) {
	doc, err := c.articleDocument(ctx, id)
	if err != nil {
		return "", err
	}

	text, err := c.article.Body(doc)
	if err != nil {
		return "", fmt.Errorf("article %d: %w", id, err)
	}

	return text, nil
}

// GetComments returns the comment texts of an article in document order.
// An article without comments yields an empty slice.
func (c *Client) GetComments(ctx context.Context, id int) ([]string, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	doc, err := c.source.Document(ctx, c.urls.Comments(id))
	if err != nil {
		return nil, fmt.Errorf("comments of article %d: %w", id, err)
	}

	return c.comments.Extract(doc), nil
}

func (c *Client) articleDocument(ctx context.Context, id int) (*domain.Document, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	doc, err := c.source.Document(ctx, c.urls.Article(id))
	if err != nil {
		return nil, fmt.Errorf("article %d: %w", id, err)
	}

	return doc, nil
}

func validateID(id int) error {
	if id < 1 {
		return fmt.Errorf("%w: article id must be positive, got %d", domain.ErrInvalidArgument, id)
	}
	return nil
}
