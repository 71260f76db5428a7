package domain

import "github.com/PuerkitoBio/goquery"

// Document is a parsed page together with the URLs it was fetched from.
// A Document is shared by every reader of the cache and must not be mutated.
type Document struct {
	// URL is the exact URL that was requested
	URL string
	// FinalURL is the URL of the last response after redirects
	FinalURL string
	// StatusCode is the HTTP status of the final response
	StatusCode int
	// Root is the parsed markup tree
	Root *goquery.Document
}

// Find runs a selector against the document root.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.Root.Find(selector)
}
