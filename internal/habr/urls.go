package habr

import (
	"fmt"
	"net/url"
	"strings"
)

// URLBuilder builds request URLs from the fixed site path templates.
// Every method is a pure function of its arguments.
type URLBuilder struct {
	base   string
	locale string
}

// NewURLBuilder creates a URL builder for the given origin and locale segment.
func NewURLBuilder(baseURL, locale string) *URLBuilder {
	return &URLBuilder{
		base:   strings.TrimRight(baseURL, "/"),
		locale: strings.Trim(locale, "/"),
	}
}

// Listing returns the URL of a listing page. An empty category selects the
// global article feed.
func (b *URLBuilder) Listing(category string, page int) string {
	if category != "" {
		return fmt.Sprintf("%s/%s/flows/%s/page%d", b.base, b.locale, url.PathEscape(category), page)
	}
	return fmt.Sprintf("%s/%s/articles/page%d", b.base, b.locale, page)
}

// Article returns the URL of an article page.
func (b *URLBuilder) Article(id int) string {
	return fmt.Sprintf("%s/%s/articles/%d/", b.base, b.locale, id)
}

// Comments returns the URL of an article's comments page.
func (b *URLBuilder) Comments(id int) string {
	return fmt.Sprintf("%s/%s/articles/%d/comments/", b.base, b.locale, id)
}
