// Package types holds configuration types shared between packages.
package types

import "errors"

// Selectors defines the CSS selectors for every page kind the client reads.
type Selectors struct {
	// Listing contains selectors for listing (feed) pages
	Listing ListingSelectors `yaml:"listing" mapstructure:"listing"`
	// Article contains selectors for article pages
	Article ArticleSelectors `yaml:"article" mapstructure:"article"`
	// Comments contains selectors for the comments sub-page
	Comments CommentSelectors `yaml:"comments" mapstructure:"comments"`
}

// ListingSelectors defines the CSS selectors for listing page extraction.
type ListingSelectors struct {
	// Heading matches one element per article entry
	Heading string `yaml:"heading" mapstructure:"heading"`
	// Title is matched inside Heading; its text is the article title
	Title string `yaml:"title" mapstructure:"title"`
	// Link is matched inside Heading; its LinkAttr is the article URL
	Link string `yaml:"link" mapstructure:"link"`
	// LinkAttr is the attribute holding the article URL
	LinkAttr string `yaml:"link_attr" mapstructure:"link_attr"`
}

// ArticleSelectors defines the CSS selectors for article pages.
type ArticleSelectors struct {
	// Title is the document title element
	Title string `yaml:"title" mapstructure:"title"`
	// Figure is the lead figure container
	Figure string `yaml:"figure" mapstructure:"figure"`
	// Image is matched inside Figure
	Image string `yaml:"image" mapstructure:"image"`
	// ImageAttr is the lazy-load source attribute of Image
	ImageAttr string `yaml:"image_attr" mapstructure:"image_attr"`
	// Body is the article body container
	Body string `yaml:"body" mapstructure:"body"`
}

// CommentSelectors defines the CSS selectors for comment pages.
type CommentSelectors struct {
	// Body matches one element per comment
	Body string `yaml:"body" mapstructure:"body"`
}

// DefaultSelectors returns the selectors matching the current habr.com markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Listing: ListingSelectors{
			Heading:  "h2.tm-title.tm-title_h2",
			Title:    "span",
			Link:     "a.tm-title__link",
			LinkAttr: "href",
		},
		Article: ArticleSelectors{
			Title:     "title",
			Figure:    "figure.full-width",
			Image:     "img",
			ImageAttr: "data-src",
			Body:      "div.tm-article-body",
		},
		Comments: CommentSelectors{
			Body: "div.tm-comment__body-content",
		},
	}
}

// Validate validates all selector groups.
func (s *Selectors) Validate() error {
	if err := s.Listing.Validate(); err != nil {
		return err
	}
	if err := s.Article.Validate(); err != nil {
		return err
	}
	return s.Comments.Validate()
}

// Validate validates the listing selectors.
func (s *ListingSelectors) Validate() error {
	if s.Heading == "" {
		return errors.New("listing heading selector is required")
	}
	if s.Title == "" {
		return errors.New("listing title selector is required")
	}
	if s.Link == "" {
		return errors.New("listing link selector is required")
	}
	if s.LinkAttr == "" {
		return errors.New("listing link attribute is required")
	}
	return nil
}

// Validate validates the article selectors.
func (s *ArticleSelectors) Validate() error {
	if s.Title == "" {
		return errors.New("article title selector is required")
	}
	if s.Body == "" {
		return errors.New("article body selector is required")
	}
	if s.Figure != "" && (s.Image == "" || s.ImageAttr == "") {
		return errors.New("article image selector and attribute are required when figure is set")
	}
	return nil
}

// Validate validates the comment selectors.
func (s *CommentSelectors) Validate() error {
	if s.Body == "" {
		return errors.New("comment body selector is required")
	}
	return nil
}
