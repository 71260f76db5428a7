package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/habrreader/internal/config/types"
	"github.com/jonesrussell/habrreader/internal/domain"
)

// ListingExtractor extracts article summaries from listing pages.
type ListingExtractor struct {
	sel  types.ListingSelectors
	base *url.URL
}

// NewListingExtractor creates a listing extractor that resolves links against base.
func NewListingExtractor(sel types.ListingSelectors, base *url.URL) *ListingExtractor {
	return &ListingExtractor{sel: sel, base: base}
}

// Extract returns one summary per heading in document order. A page without
// headings yields an empty slice. A heading missing its title or link element
// fails the whole page with an ExtractionError.
func (e *ListingExtractor) Extract(doc *domain.Document) ([]domain.ArticleSummary, error) {
	headings := doc.Find(e.sel.Heading)
	summaries := make([]domain.ArticleSummary, 0, headings.Length())

	var extractErr error
	headings.EachWithBreak(func(i int, heading *goquery.Selection) bool {
		summary, err := e.entry(doc.URL, i, heading)
		if err != nil {
			extractErr = err
			return false
		}
		summaries = append(summaries, summary)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return summaries, nil
}

func (e *ListingExtractor) entry(pageURL string, index int, heading *goquery.Selection) (domain.ArticleSummary, error) {
	title := heading.Find(e.sel.Title).First()
	if title.Length() == 0 {
		return domain.ArticleSummary{}, &domain.ExtractionError{
			URL:      pageURL,
			Selector: e.sel.Title,
			Reason:   fmt.Sprintf("entry %d has no title element", index),
		}
	}

	anchor := heading.Find(e.sel.Link).First()
	if anchor.Length() == 0 {
		return domain.ArticleSummary{}, &domain.ExtractionError{
			URL:      pageURL,
			Selector: e.sel.Link,
			Reason:   fmt.Sprintf("entry %d has no link element", index),
		}
	}

	href, ok := anchor.Attr(e.sel.LinkAttr)
	if !ok {
		return domain.ArticleSummary{}, &domain.ExtractionError{
			URL:      pageURL,
			Selector: e.sel.Link,
			Reason:   fmt.Sprintf("entry %d link has no %s attribute", index, e.sel.LinkAttr),
		}
	}

	link, err := e.resolve(href)
	if err != nil {
		return domain.ArticleSummary{}, &domain.ParseError{Input: href, Err: err}
	}

	return domain.ArticleSummary{
		Title: strings.TrimSpace(title.Text()),
		Link:  link,
	}, nil
}

// resolve makes href absolute against the site origin.
func (e *ListingExtractor) resolve(href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	return e.base.ResolveReference(ref).String(), nil
}
