package habr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonesrussell/habrreader/internal/domain"
)

// Articles walks listing pages 1..pages under category and concatenates
// their entries in page order, then document order. A failure on any page
// fails the whole walk; no partial result is returned.
func (c *Client) Articles(ctx context.Context, category string, pages int) ([]domain.ArticleSummary, error) {
	if pages < 0 {
		return nil, fmt.Errorf("%w: pages must be >= 0, got %d", domain.ErrInvalidArgument, pages)
	}
	if pages == 0 {
		return []domain.ArticleSummary{}, nil
	}

	start := time.Now()

	var (
		perPage [][]domain.ArticleSummary
		err     error
	)
	if c.concurrency > 1 && pages > 1 {
		perPage, err = c.walkConcurrent(ctx, category, pages)
	} else {
		perPage, err = c.walkSequential(ctx, category, pages)
	}
	if err != nil {
		return nil, err
	}

	total := 0
	for _, entries := range perPage {
		total += len(entries)
	}
	pool := make([]domain.ArticleSummary, 0, total)
	for _, entries := range perPage {
		pool = append(pool, entries...)
	}

	c.log.Debug("listing walk complete",
		"category", category,
		"pages", pages,
		"articles", len(pool),
		"duration", time.Since(start),
	)

	return pool, nil
}

func (c *Client) walkSequential(ctx context.Context, category string, pages int) ([][]domain.ArticleSummary, error) {
	perPage := make([][]domain.ArticleSummary, 0, pages)
	for page := 1; page <= pages; page++ {
		entries, err := c.ListArticles(ctx, category, page)
		if err != nil {
			return nil, err
		}
		perPage = append(perPage, entries)
	}
	return perPage, nil
}

// walkConcurrent fetches pages in parallel. Each page writes only its own
// slot, so the concatenation order does not depend on completion order.
func (c *Client) walkConcurrent(ctx context.Context, category string, pages int) ([][]domain.ArticleSummary, error) {
	perPage := make([][]domain.ArticleSummary, pages)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i := range pages {
		g.Go(func() error {
			entries, err := c.ListArticles(gctx, category, i+1)
			if err != nil {
				return err
			}
			perPage[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return perPage, nil
}

// RandomArticle picks one entry uniformly at random from listing pages
// 1..pages. It fails with domain.ErrEmptyResult when the pool is empty.
func (c *Client) RandomArticle(ctx context.Context, category string, pages int) (domain.ArticleSummary, error) {
	pool, err := c.Articles(ctx, category, pages)
	if err != nil {
		return domain.ArticleSummary{}, fmt.Errorf("random article: %w", err)
	}
	if len(pool) == 0 {
		return domain.ArticleSummary{}, fmt.Errorf("random article from %d page(s): %w", pages, domain.ErrEmptyResult)
	}

	return pool[c.intN(len(pool))], nil
}

// RandomArticleID picks a random article and returns its identifier.
func (c *Client) RandomArticleID(ctx context.Context, category string, pages int) (int, error) {
	article, err := c.RandomArticle(ctx, category, pages)
	if err != nil {
		return 0, err
	}

	id, err := ParseArticleID(article.Link)
	if err != nil {
		return 0, fmt.Errorf("random article id: %w", err)
	}

	return id, nil
}

// RandomArticleDetail picks a random article and resolves it.
func (c *Client) RandomArticleDetail(ctx context.Context, category string, pages int) (*domain.ArticleDetail, error) {
	id, err := c.RandomArticleID(ctx, category, pages)
	if err != nil {
		return nil, err
	}

	return c.GetArticleDetail(ctx, id)
}

// RandomArticleImage returns the lead image of a randomly picked article, or
// nil when that article has none. Each call is an independent pick.
func (c *Client) RandomArticleImage(ctx context.Context, category string, pages int) (*string, error) {
	detail, err := c.RandomArticleDetail(ctx, category, pages)
	if err != nil {
		return nil, err
	}
	return detail.Image, nil
}

// RandomArticleTitle returns the document title of a randomly picked
// article. Each call is an independent pick.
func (c *Client) RandomArticleTitle(ctx context.Context, category string, pages int) (string, error) {
	detail, err := c.RandomArticleDetail(ctx, category, pages)
	if err != nil {
		return "", err
	}
	return detail.Title, nil
}

// SearchByKeyword returns the entries of listing pages 1..pages whose title
// contains keyword, ignoring case, in page order then document order. An
// empty keyword matches every entry.
func (c *Client) SearchByKeyword(ctx context.Context, keyword, category string, pages int) ([]domain.ArticleSummary, error) {
	pool, err := c.Articles(ctx, category, pages)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}

	needle := strings.ToLower(keyword)
	matches := make([]domain.ArticleSummary, 0)
	for _, article := range pool {
		if strings.Contains(strings.ToLower(article.Title), needle) {
			matches = append(matches, article)
		}
	}

	c.log.Debug("search complete", "keyword", keyword, "pages", pages, "matches", len(matches))
	return matches, nil
}

func (c *Client) intN(n int) int {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.IntN(n)
}
