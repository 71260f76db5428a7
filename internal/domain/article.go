// Package domain provides domain models used across the application.
package domain

// ArticleSummary is a single entry of a listing page.
type ArticleSummary struct {
	// Title is the visible headline text
	Title string `json:"title" yaml:"title"`
	// Link is the absolute article URL
	Link string `json:"link" yaml:"link"`
}

// ArticleDetail holds the resolved metadata of one article.
type ArticleDetail struct {
	// ID is the numeric article identifier
	ID int `json:"id" yaml:"id"`
	// Title is the document title
	Title string `json:"title" yaml:"title"`
	// Link is the final URL after redirects
	Link string `json:"link" yaml:"link"`
	// Image is the lead image URL, nil when the article has none
	Image *string `json:"image,omitempty" yaml:"image,omitempty"`
}

// HasImage reports whether the article carries a lead image.
func (d *ArticleDetail) HasImage() bool {
	return d != nil && d.Image != nil
}
