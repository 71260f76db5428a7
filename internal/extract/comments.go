package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/habrreader/internal/config/types"
	"github.com/jonesrussell/habrreader/internal/domain"
)

// CommentExtractor extracts comment bodies from comment pages.
type CommentExtractor struct {
	sel types.CommentSelectors
}

// NewCommentExtractor creates a comment extractor.
func NewCommentExtractor(sel types.CommentSelectors) *CommentExtractor {
	return &CommentExtractor{sel: sel}
}

// Extract returns every comment's stripped text in document order.
func (e *CommentExtractor) Extract(doc *domain.Document) []string {
	bodies := doc.Find(e.sel.Body)
	comments := make([]string, 0, bodies.Length())

	bodies.Each(func(_ int, s *goquery.Selection) {
		comments = append(comments, strings.TrimSpace(s.Text()))
	})

	return comments
}
