package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/habrreader/internal/api"
	habrconfig "github.com/jonesrussell/habrreader/internal/config/habr"
	"github.com/jonesrussell/habrreader/internal/config/types"
	"github.com/jonesrussell/habrreader/internal/domain"
	"github.com/jonesrussell/habrreader/internal/fetcher"
	"github.com/jonesrussell/habrreader/internal/habr"
	"github.com/jonesrussell/habrreader/internal/logger"
	"github.com/jonesrussell/habrreader/testutils"
)

// newSite serves a two-page listing and one article with comments.
func newSite(t *testing.T) *httptest.Server {
	t.Helper()

	pages := map[string]string{
		"/ru/articles/page1": testutils.ListingHTML(
			[]string{"Rust basics", "Go intro"},
			[]string{"/ru/articles/101/", "/ru/articles/102/"},
		),
		"/ru/articles/page2": testutils.ListingHTML(
			[]string{"Async Rust patterns"},
			[]string{"/ru/articles/103/"},
		),
		"/ru/articles/101/": `<html><head><title>Rust basics / Habr</title></head><body>
<figure class="full-width"><img data-src="https://habrastorage.org/rust.png"></figure>
<div class="tm-article-body"> Ownership and borrowing. </div></body></html>`,
		"/ru/articles/101/comments/": `<html><body>
<div class="tm-comment__body-content">Great</div>
<div class="tm-comment__body-content">Thanks</div></body></html>`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRouter(t *testing.T, factory api.ClientFactory) *gin.Engine {
	t.Helper()

	handler := api.NewHandler(factory, api.HandlerConfig{DefaultPages: 1, Version: "test"})
	return api.NewRouter(logger.NewNoOp(), handler)
}

func siteFactory(baseURL string) api.ClientFactory {
	return func() (*habr.Client, *fetcher.Fetcher, error) {
		f := fetcher.New(fetcher.Config{}, nil)
		client, err := habr.NewClient(f,
			habrconfig.New(habrconfig.WithBaseURL(baseURL)),
			types.DefaultSelectors(),
		)
		return client, f, err
	}
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestListArticles(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	router := newRouter(t, siteFactory(srv.URL))

	w := get(t, router, "/api/v1/articles?page=1")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[api.ArticleListResponse](t, w)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, domain.ArticleSummary{Title: "Rust basics", Link: srv.URL + "/ru/articles/101/"}, resp.Articles[0])
}

func TestListArticles_BadParameters(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	router := newRouter(t, siteFactory(srv.URL))

	tests := []struct {
		target string
		status int
	}{
		{target: "/api/v1/articles?page=abc", status: http.StatusBadRequest},
		{target: "/api/v1/articles?page=0", status: http.StatusBadRequest},
		{target: "/api/v1/articles/random?pages=-1", status: http.StatusBadRequest},
		{target: "/api/v1/articles/abc", status: http.StatusBadRequest},
		{target: "/api/v1/articles/0/text", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, router, tt.target)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, "INVALID_ARGUMENT", decode[api.ErrorResponse](t, w).Code)
		})
	}
}

func TestArticleEndpoints(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	router := newRouter(t, siteFactory(srv.URL))

	w := get(t, router, "/api/v1/articles/101")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[domain.ArticleDetail](t, w)
	assert.Equal(t, 101, detail.ID)
	assert.Equal(t, "Rust basics / Habr", detail.Title)
	assert.Equal(t, srv.URL+"/ru/articles/101/", detail.Link)
	require.NotNil(t, detail.Image)
	assert.Equal(t, "https://habrastorage.org/rust.png", *detail.Image)

	w = get(t, router, "/api/v1/articles/101/text")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ownership and borrowing.", decode[map[string]any](t, w)["text"])

	w = get(t, router, "/api/v1/articles/101/comments")
	require.Equal(t, http.StatusOK, w.Code)
	comments := decode[api.CommentsResponse](t, w)
	assert.Equal(t, []string{"Great", "Thanks"}, comments.Comments)
	assert.Equal(t, 2, comments.Count)
}

func TestArticle_UpstreamFailure(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	router := newRouter(t, siteFactory(srv.URL))

	w := get(t, router, "/api/v1/articles/999")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "UPSTREAM_ERROR", decode[api.ErrorResponse](t, w).Code)
}

func TestArticleText_MissingBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>x</title></head><body></body></html>`))
	}))
	t.Cleanup(srv.Close)

	router := newRouter(t, siteFactory(srv.URL))

	w := get(t, router, "/api/v1/articles/5/text")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[api.ErrorResponse](t, w).Code)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	router := newRouter(t, siteFactory(srv.URL))

	w := get(t, router, "/api/v1/search?q=RUST&pages=2")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[api.ArticleListResponse](t, w)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Rust basics", resp.Articles[0].Title)
	assert.Equal(t, "Async Rust patterns", resp.Articles[1].Title)
}

func TestRandomEndpoints(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	router := newRouter(t, siteFactory(srv.URL))

	w := get(t, router, "/api/v1/articles/random?pages=2")
	require.Equal(t, http.StatusOK, w.Code)
	picked := decode[domain.ArticleSummary](t, w)
	assert.Contains(t, []string{"Rust basics", "Go intro", "Async Rust patterns"}, picked.Title)

	w = get(t, router, "/api/v1/articles/random/id")
	require.Equal(t, http.StatusOK, w.Code)
	id := decode[map[string]int](t, w)["id"]
	assert.Contains(t, []int{101, 102}, id)

	w = get(t, router, "/api/v1/articles/random?pages=0")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[api.ErrorResponse](t, w).Code)
}

func TestHealth_ReportsFetcherTotals(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	router := newRouter(t, siteFactory(srv.URL))

	require.Equal(t, http.StatusOK, get(t, router, "/api/v1/articles").Code)
	require.Equal(t, http.StatusOK, get(t, router, "/api/v1/articles/101").Code)

	w := get(t, router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[api.HealthResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "habrreader", resp.Service)
	assert.Equal(t, "test", resp.Version)
	assert.EqualValues(t, 2, resp.Fetcher.Sessions)
	assert.EqualValues(t, 2, resp.Fetcher.Requests)
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	router := newRouter(t, siteFactory("https://habr.com"))

	w := get(t, router, "/health")
	generated := w.Header().Get(api.RequestIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	req.Header.Set(api.RequestIDHeader, "trace-abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "trace-abc", w.Header().Get(api.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	req.Header.Set(api.RequestIDHeader, strings.Repeat("x", 200))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get(api.RequestIDHeader), 36)
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Parallel()

	router := newRouter(t, func() (*habr.Client, *fetcher.Fetcher, error) {
		panic("factory exploded")
	})

	w := get(t, router, "/api/v1/articles")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode[api.ErrorResponse](t, w).Code)
}
