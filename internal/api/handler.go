// Package api implements the read-only HTTP API over the Habr client.
package api

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/habrreader/internal/domain"
	"github.com/jonesrussell/habrreader/internal/fetcher"
	"github.com/jonesrussell/habrreader/internal/habr"
	"github.com/jonesrussell/habrreader/internal/logger"
)

// ClientFactory builds a client with its own document cache. The handler
// calls it once per request so cached pages never outlive the request.
type ClientFactory func() (*habr.Client, *fetcher.Fetcher, error)

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// DefaultPages is used when a walk request omits ?pages=
	DefaultPages int
	// Version is reported by the health endpoint
	Version string
	// Logger receives handler logs; nil discards them
	Logger logger.Interface
}

// Handler serves the article endpoints.
type Handler struct {
	newClient    ClientFactory
	log          logger.Interface
	defaultPages int
	version      string
	startTime    time.Time

	sessions  atomic.Int64
	requests  atomic.Int64
	cacheHits atomic.Int64
}

// NewHandler creates a Handler.
func NewHandler(newClient ClientFactory, cfg HandlerConfig) *Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNoOp()
	}
	pages := cfg.DefaultPages
	if pages < 1 {
		pages = 1
	}

	return &Handler{
		newClient:    newClient,
		log:          log.WithComponent("api"),
		defaultPages: pages,
		version:      cfg.Version,
		startTime:    time.Now(),
	}
}

// ArticleListResponse wraps a list of article summaries.
type ArticleListResponse struct {
	Articles []domain.ArticleSummary `json:"articles"`
	Count    int                     `json:"count"`
}

// CommentsResponse wraps the comments of one article.
type CommentsResponse struct {
	ID       int      `json:"id"`
	Comments []string `json:"comments"`
	Count    int      `json:"count"`
}

// RegisterRoutes adds the API and health routes to router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.health)
	router.HEAD("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		articles.GET("", h.listArticles)
		articles.GET("/random", h.randomArticle)
		articles.GET("/random/id", h.randomArticleID)
		articles.GET("/random/image", h.randomArticleImage)
		articles.GET("/random/title", h.randomArticleTitle)
		articles.GET("/:id", h.articleDetail)
		articles.GET("/:id/text", h.articleText)
		articles.GET("/:id/comments", h.articleComments)

		v1.GET("/search", h.search)
	}
}

// withClient runs fn against a fresh client and writes its result as JSON.
func (h *Handler) withClient(c *gin.Context, fn func(ctx context.Context, client *habr.Client) (any, error)) {
	client, f, err := h.newClient()
	if err != nil {
		h.log.Error("Failed to create client", "error", err)
		respondError(c, err)
		return
	}

	result, err := fn(c.Request.Context(), client)
	h.track(f.Stats())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) track(stats fetcher.Stats) {
	h.sessions.Add(1)
	h.requests.Add(stats.Requests)
	h.cacheHits.Add(stats.CacheHits)
}

func (h *Handler) listArticles(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	category := c.Query("category")

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		articles, err := client.ListArticles(ctx, category, page)
		if err != nil {
			return nil, err
		}
		return ArticleListResponse{Articles: articles, Count: len(articles)}, nil
	})
}

func (h *Handler) randomArticle(c *gin.Context) {
	category, pages, ok := h.walkParams(c)
	if !ok {
		return
	}

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		return client.RandomArticle(ctx, category, pages)
	})
}

func (h *Handler) randomArticleID(c *gin.Context) {
	category, pages, ok := h.walkParams(c)
	if !ok {
		return
	}

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		id, err := client.RandomArticleID(ctx, category, pages)
		if err != nil {
			return nil, err
		}
		return gin.H{"id": id}, nil
	})
}

func (h *Handler) randomArticleImage(c *gin.Context) {
	category, pages, ok := h.walkParams(c)
	if !ok {
		return
	}

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		image, err := client.RandomArticleImage(ctx, category, pages)
		if err != nil {
			return nil, err
		}
		return gin.H{"image": image}, nil
	})
}

func (h *Handler) randomArticleTitle(c *gin.Context) {
	category, pages, ok := h.walkParams(c)
	if !ok {
		return
	}

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		title, err := client.RandomArticleTitle(ctx, category, pages)
		if err != nil {
			return nil, err
		}
		return gin.H{"title": title}, nil
	})
}

func (h *Handler) articleDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		return client.GetArticleDetail(ctx, id)
	})
}

func (h *Handler) articleText(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		text, err := client.GetArticleText(ctx, id)
		if err != nil {
			return nil, err
		}
		return gin.H{"id": id, "text": text}, nil
	})
}

func (h *Handler) articleComments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		comments, err := client.GetComments(ctx, id)
		if err != nil {
			return nil, err
		}
		return CommentsResponse{ID: id, Comments: comments, Count: len(comments)}, nil
	})
}

func (h *Handler) search(c *gin.Context) {
	category, pages, ok := h.walkParams(c)
	if !ok {
		return
	}
	keyword := c.Query("q")

	h.withClient(c, func(ctx context.Context, client *habr.Client) (any, error) {
		matches, err := client.SearchByKeyword(ctx, keyword, category, pages)
		if err != nil {
			return nil, err
		}
		return ArticleListResponse{Articles: matches, Count: len(matches)}, nil
	})
}

// walkParams reads ?category= and ?pages= for multi-page operations.
func (h *Handler) walkParams(c *gin.Context) (string, int, bool) {
	pages, ok := queryInt(c, "pages", h.defaultPages)
	if !ok {
		return "", 0, false
	}
	return c.Query("category"), pages, true
}

// queryInt parses an integer query parameter. It writes a 400 and returns
// false when the value is not a number.
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, "query parameter "+key+" must be an integer")
		return 0, false
	}
	return n, true
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "article id must be an integer")
		return 0, false
	}
	return id, true
}
