package extract

import (
	"strings"

	"github.com/jonesrussell/habrreader/internal/config/types"
	"github.com/jonesrussell/habrreader/internal/domain"
)

// ArticleExtractor extracts metadata and body text from article pages.
type ArticleExtractor struct {
	sel types.ArticleSelectors
}

// NewArticleExtractor creates an article extractor.
func NewArticleExtractor(sel types.ArticleSelectors) *ArticleExtractor {
	return &ArticleExtractor{sel: sel}
}

// Detail returns the title, canonical link and lead image of an article.
// The canonical link is the document's final URL after redirects.
func (e *ArticleExtractor) Detail(doc *domain.Document) (*domain.ArticleDetail, error) {
	title := doc.Find(e.sel.Title).First()
	if title.Length() == 0 {
		return nil, &domain.ExtractionError{URL: doc.URL, Selector: e.sel.Title}
	}

	link := doc.FinalURL
	if link == "" {
		link = doc.URL
	}

	return &domain.ArticleDetail{
		Title: strings.TrimSpace(title.Text()),
		Link:  link,
		Image: e.image(doc),
	}, nil
}

// image returns the lazy-load source of the lead figure's image, or nil.
func (e *ArticleExtractor) image(doc *domain.Document) *string {
	if e.sel.Figure == "" {
		return nil
	}

	figure := doc.Find(e.sel.Figure).First()
	if figure.Length() == 0 {
		return nil
	}

	src, ok := figure.Find(e.sel.Image).First().Attr(e.sel.ImageAttr)
	if !ok {
		return nil
	}

	return &src
}

// Body returns the stripped text of the article body container.
func (e *ArticleExtractor) Body(doc *domain.Document) (string, error) {
	body := doc.Find(e.sel.Body).First()
	if body.Length() == 0 {
		return "", &domain.ExtractionError{
			URL:      doc.URL,
			Selector: e.sel.Body,
			Reason:   "article body not found",
		}
	}

	return strings.TrimSpace(body.Text()), nil
}
