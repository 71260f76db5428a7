package habr_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	habrconfig "github.com/jonesrussell/habrreader/internal/config/habr"
	"github.com/jonesrussell/habrreader/internal/config/types"
	"github.com/jonesrussell/habrreader/internal/domain"
	"github.com/jonesrussell/habrreader/internal/habr"
	"github.com/jonesrussell/habrreader/testutils"
	habrmocks "github.com/jonesrussell/habrreader/testutils/mocks/habr"
)

// expectTwoPages wires the two-page fixture: page 1 holds
// "Rust basics" and "Go intro", page 2 holds "Async Rust patterns".
func expectTwoPages(t *testing.T, source *habrmocks.MockDocumentSource) {
	t.Helper()

	source.EXPECT().Document(gomock.Any(), page1URL).
		Return(listingDoc(t, page1URL, "Rust basics", "Go intro"), nil).AnyTimes()
	source.EXPECT().Document(gomock.Any(), page2URL).
		Return(listingDoc(t, page2URL, "Async Rust patterns"), nil).AnyTimes()
}

func TestSearchByKeyword(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	expectTwoPages(t, source)

	got, err := newClient(t, source).SearchByKeyword(context.Background(), "rust", "", 2)
	require.NoError(t, err)

	assert.Equal(t, []domain.ArticleSummary{
		{Title: "Rust basics", Link: "https://habr.com/ru/articles/101/"},
		{Title: "Async Rust patterns", Link: "https://habr.com/ru/articles/103/"},
	}, got)
}

func TestSearchByKeyword_EmptyKeywordMatchesAll(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	expectTwoPages(t, source)

	client := newClient(t, source)

	all, err := client.Articles(context.Background(), "", 2)
	require.NoError(t, err)

	got, err := client.SearchByKeyword(context.Background(), "", "", 2)
	require.NoError(t, err)
	assert.Equal(t, all, got)
	assert.Len(t, got, 3)
}

func TestSearchByKeyword_CaseInsensitiveUnicode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	source.EXPECT().Document(gomock.Any(), page1URL).Return(testutils.NewDocument(t, page1URL,
		testutils.ListingHTML(
			[]string{"Изучаем Rust", "Про Go"},
			[]string{"/ru/articles/1/", "/ru/articles/2/"},
		)), nil)

	got, err := newClient(t, source).SearchByKeyword(context.Background(), "ИЗУЧАЕМ", "", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Изучаем Rust", got[0].Title)
}

func TestSearchByKeyword_NoMatches(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	expectTwoPages(t, source)

	got, err := newClient(t, source).SearchByKeyword(context.Background(), "haskell", "", 2)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchByKeyword_PageFailureFailsWalk(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	source.EXPECT().Document(gomock.Any(), page1URL).
		Return(listingDoc(t, page1URL, "Rust basics"), nil)
	source.EXPECT().Document(gomock.Any(), page2URL).
		Return(nil, &domain.NetworkError{URL: page2URL, StatusCode: 500})

	got, err := newClient(t, source).SearchByKeyword(context.Background(), "rust", "", 2)
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Nil(t, got)
}

func TestRandomArticle_ReturnsPoolMember(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	expectTwoPages(t, source)

	client := newClient(t, source, seeded())
	pool, err := client.Articles(context.Background(), "", 2)
	require.NoError(t, err)

	for range 20 {
		got, err := client.RandomArticle(context.Background(), "", 2)
		require.NoError(t, err)
		assert.Contains(t, pool, got)
	}
}

func TestRandomArticle_Uniform(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	expectTwoPages(t, source)

	client := newClient(t, source, habr.WithRand(rand.New(rand.NewPCG(42, 7))))

	const trials = 3000
	counts := make(map[string]int)
	for range trials {
		got, err := client.RandomArticle(context.Background(), "", 2)
		require.NoError(t, err)
		counts[got.Title]++
	}

	require.Len(t, counts, 3)
	for title, n := range counts {
		assert.InDelta(t, trials/3, n, trials/3*0.15, "title %q picked %d times", title, n)
	}
}

func TestRandomArticle_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	pick := func() []domain.ArticleSummary {
		ctrl := gomock.NewController(t)
		source := habrmocks.NewMockDocumentSource(ctrl)
		expectTwoPages(t, source)
		client := newClient(t, source, seeded())

		picks := make([]domain.ArticleSummary, 0, 10)
		for range 10 {
			got, err := client.RandomArticle(context.Background(), "", 2)
			require.NoError(t, err)
			picks = append(picks, got)
		}
		return picks
	}

	assert.Equal(t, pick(), pick())
}

func TestRandomArticle_EmptyPool(t *testing.T) {
	t.Parallel()

	t.Run("zero pages", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		source := habrmocks.NewMockDocumentSource(ctrl)

		_, err := newClient(t, source).RandomArticle(context.Background(), "", 0)
		require.ErrorIs(t, err, domain.ErrEmptyResult)
	})

	t.Run("empty listing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		source := habrmocks.NewMockDocumentSource(ctrl)
		source.EXPECT().Document(gomock.Any(), devPage1URL).
			Return(listingDoc(t, devPage1URL), nil)

		_, err := newClient(t, source).RandomArticle(context.Background(), "develop", 1)
		require.ErrorIs(t, err, domain.ErrEmptyResult)
	})
}

func TestRandomArticle_NegativePages(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	_, err := newClient(t, habrmocks.NewMockDocumentSource(ctrl)).RandomArticle(context.Background(), "", -1)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRandomArticleID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	source.EXPECT().Document(gomock.Any(), page1URL).
		Return(listingDoc(t, page1URL, "Rust basics"), nil)

	id, err := newClient(t, source).RandomArticleID(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, 101, id)
}

func TestRandomArticleID_MalformedLink(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	source.EXPECT().Document(gomock.Any(), page1URL).Return(testutils.NewDocument(t, page1URL,
		testutils.ListingHTML([]string{"News"}, []string{"/ru/news/latest"})), nil)

	_, err := newClient(t, source).RandomArticleID(context.Background(), "", 1)
	require.ErrorIs(t, err, domain.ErrParse)
}

func TestRandomArticleImageAndTitle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	source.EXPECT().Document(gomock.Any(), page1URL).
		Return(listingDoc(t, page1URL, "Async Rust patterns"), nil).Times(2)
	source.EXPECT().Document(gomock.Any(), article3URL).
		Return(testutils.NewDocument(t, article3URL, `<html><head><title>Async Rust patterns / Habr</title></head>
<body><figure class="full-width"><img data-src="https://habrastorage.org/async.png"></figure></body></html>`), nil).Times(2)

	client := newClient(t, source)

	image, err := client.RandomArticleImage(context.Background(), "", 1)
	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, "https://habrastorage.org/async.png", *image)

	title, err := client.RandomArticleTitle(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, "Async Rust patterns / Habr", title)
}

func TestArticles_ConcurrentWalkKeepsPageOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	expectTwoPages(t, source)
	source.EXPECT().Document(gomock.Any(), page3URL).
		Return(listingDoc(t, page3URL, "Go intro"), nil)

	cfg := habrconfig.New(habrconfig.WithListingConcurrency(3))
	client, err := habr.NewClient(source, cfg, types.DefaultSelectors())
	require.NoError(t, err)

	got, err := client.Articles(context.Background(), "", 3)
	require.NoError(t, err)

	titles := make([]string, 0, len(got))
	for _, a := range got {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"Rust basics", "Go intro", "Async Rust patterns", "Go intro"}, titles)
}

func TestArticles_ConcurrentWalkFailsOnAnyPage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := habrmocks.NewMockDocumentSource(ctrl)
	expectTwoPages(t, source)
	source.EXPECT().Document(gomock.Any(), page3URL).
		Return(nil, &domain.NetworkError{URL: page3URL, StatusCode: 502})

	cfg := habrconfig.New(habrconfig.WithListingConcurrency(2))
	client, err := habr.NewClient(source, cfg, types.DefaultSelectors())
	require.NoError(t, err)

	got, err := client.Articles(context.Background(), "", 3)
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Nil(t, got)
}
