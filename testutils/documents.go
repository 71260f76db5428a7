// Package testutils provides shared helpers for package tests.
package testutils

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/habrreader/internal/domain"
)

// NewDocument parses html into a Document requested from rawURL.
func NewDocument(t *testing.T, rawURL, html string) *domain.Document {
	t.Helper()

	root, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	return &domain.Document{
		URL:        rawURL,
		FinalURL:   rawURL,
		StatusCode: 200,
		Root:       root,
	}
}

// ListingHTML renders a listing page with one heading per title/href pair.
func ListingHTML(titles, hrefs []string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>Listing</title></head><body><div class=\"tm-articles-list\">")
	for i := range titles {
		b.WriteString(`<article class="tm-articles-list__item"><h2 class="tm-title tm-title_h2">`)
		b.WriteString(`<a href="` + hrefs[i] + `" class="tm-title__link"><span>` + titles[i] + `</span></a>`)
		b.WriteString(`</h2></article>`)
	}
	b.WriteString("</div></body></html>")
	return b.String()
}
