// Package etree renders located sitemaps as a sitemap index document.
package etree

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/locmap"
)

// Namespace is the sitemap protocol namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var _ locmap.Formatter = (*Formatter)(nil)

// Formatter renders a report as a <sitemapindex> listing every located
// sitemap once. Sitemaps that failed validation are left out.
type Formatter struct {
	// Indent is the number of spaces per nesting level. Zero writes the
	// document on one line.
	Indent int
}

// NewFormatter creates a Formatter indenting with two spaces.
func NewFormatter() *Formatter {
	return &Formatter{Indent: 2}
}

// Format implements locmap.Formatter.
func (f *Formatter) Format(w io.Writer, r *locmap.Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	index := doc.CreateElement("sitemapindex")
	index.CreateAttr("xmlns", Namespace)

	seen := make(map[string]bool)
	for _, lr := range r.Languages {
		index.CreateComment(fmt.Sprintf(" %s (%d) ", lr.Language.Title, lr.Language.ID))
		for _, s := range lr.Sitemaps {
			if s.Valid != nil && !*s.Valid {
				continue
			}
			if seen[s.URL] {
				continue
			}
			seen[s.URL] = true
			index.CreateElement("sitemap").CreateElement("loc").SetText(s.URL)
		}
	}

	if f.Indent > 0 {
		doc.Indent(f.Indent)
	}
	_, err := doc.WriteTo(w)
	return err
}
