package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jonesrussell/habrreader/internal/domain"
)

// Table layout constants
const (
	// DefaultTableWidth is the maximum rendered table width
	DefaultTableWidth = 160
	// DefaultPreviewLength is the maximum length of a comment preview cell
	DefaultPreviewLength = 120

	// indexColumnWidth fits the "Total" footer label
	indexColumnWidth = 5

	ellipsis = "..."
)

// Printer renders command results as tables or JSON.
type Printer struct {
	w      io.Writer
	asJSON bool
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, asJSON bool) *Printer {
	return &Printer{w: w, asJSON: asJSON}
}

// Articles renders a list of article summaries.
func (p *Printer) Articles(caption string, articles []domain.ArticleSummary) error {
	if p.asJSON {
		return p.json(articles)
	}

	t := p.table()
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: indexColumnWidth},
		{Number: 2, WidthMax: DefaultTableWidth / 2},
		{Number: 3, WidthMax: DefaultTableWidth / 2},
	})
	t.AppendHeader(table.Row{"#", "Title", "Link"})
	for i, a := range articles {
		t.AppendRow(table.Row{i + 1, a.Title, a.Link})
	}
	t.AppendFooter(table.Row{"Total", len(articles), caption})

	t.Render()
	return nil
}

// Article renders a single article summary.
func (p *Printer) Article(article domain.ArticleSummary) error {
	if p.asJSON {
		return p.json(article)
	}

	t := p.table()
	t.AppendRows([]table.Row{
		{"Title", article.Title},
		{"Link", article.Link},
	})
	t.Render()
	return nil
}

// Detail renders a resolved article.
func (p *Printer) Detail(detail *domain.ArticleDetail) error {
	if p.asJSON {
		return p.json(detail)
	}

	image := "N/A"
	if detail.HasImage() {
		image = *detail.Image
	}

	t := p.table()
	t.AppendRows([]table.Row{
		{"ID", detail.ID},
		{"Title", detail.Title},
		{"Link", detail.Link},
		{"Image", image},
	})
	t.Render()
	return nil
}

// Comments renders comment bodies with a single-line preview each.
func (p *Printer) Comments(id int, comments []string) error {
	if p.asJSON {
		return p.json(comments)
	}

	if len(comments) == 0 {
		_, err := fmt.Fprintf(p.w, "No comments on article %d\n", id)
		return err
	}

	t := p.table()
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: indexColumnWidth},
		{Number: 2, WidthMax: DefaultTableWidth},
	})
	t.AppendHeader(table.Row{"#", "Comment"})
	for i, c := range comments {
		t.AppendRow(table.Row{i + 1, Preview(c, DefaultPreviewLength)})
	}
	t.AppendFooter(table.Row{"Total", len(comments)})
	t.Render()
	return nil
}

// Value renders a scalar result under key. A nil value prints "N/A".
func (p *Printer) Value(key string, value any) error {
	if p.asJSON {
		return p.json(map[string]any{key: value})
	}

	if s, ok := value.(*string); ok {
		if s == nil {
			value = "N/A"
		} else {
			value = *s
		}
	}

	_, err := fmt.Fprintln(p.w, value)
	return err
}

// Text prints raw text.
func (p *Printer) Text(key, text string) error {
	if p.asJSON {
		return p.json(map[string]string{key: text})
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}

func (p *Printer) table() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// Preview collapses whitespace and truncates s to at most length runes.
// The ellipsis is only appended when length leaves room for it.
func Preview(s string, length int) string {
	if length <= 0 {
		return ""
	}

	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= len(ellipsis) {
		return string(r[:length])
	}
	return string(r[:length-len(ellipsis)]) + ellipsis
}
