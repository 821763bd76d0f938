package locmap

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Report is the outcome of locating the sitemaps of one or all languages
// of a site, ready to be rendered by a Formatter.
type Report struct {
	Site      SiteRef          `json:"site"`
	All       bool             `json:"all"`
	Languages []LanguageReport `json:"languages"`
}

// SiteRef identifies a site in a report.
type SiteRef struct {
	Identifier string `json:"identifier"`
	RootPageID int    `json:"rootPageId"`
}

// LanguageRef identifies a site language in a report.
type LanguageRef struct {
	ID    int    `json:"languageId"`
	Title string `json:"title"`
}

// LanguageReport lists the sitemaps located for one language.
type LanguageReport struct {
	Language LanguageRef     `json:"siteLanguage"`
	Sitemaps []SitemapStatus `json:"sitemaps"`
}

// SitemapStatus is a located sitemap with its optional validation result.
type SitemapStatus struct {
	URL    string `json:"url"`
	Cached bool   `json:"cached"`

	// Valid is nil unless validation was requested.
	Valid *bool `json:"valid,omitempty"`
}

// OK returns false if any language has no sitemaps or any validated
// sitemap is invalid.
func (r *Report) OK() bool {
	if len(r.Languages) == 0 {
		return false
	}
	for _, lr := range r.Languages {
		if len(lr.Sitemaps) == 0 {
			return false
		}
		for _, s := range lr.Sitemaps {
			if s.Valid != nil && !*s.Valid {
				return false
			}
		}
	}
	return true
}

// Formatter renders a report.
type Formatter interface {
	Format(w io.Writer, r *Report) error
}

// TextFormatter renders reports as human readable listings.
type TextFormatter struct{}

// Format implements Formatter.
func (TextFormatter) Format(w io.Writer, r *Report) error {
	var b strings.Builder

	if !r.All && len(r.Languages) == 1 {
		lr := r.Languages[0]
		writeTitle(&b, fmt.Sprintf("XML sitemap%s for site %q (%d) and language %q (%d):",
			plural(len(lr.Sitemaps)), r.Site.Identifier, r.Site.RootPageID, lr.Language.Title, lr.Language.ID), "=")
		writeListing(&b, lr.Sitemaps)
	} else {
		writeTitle(&b, fmt.Sprintf("XML sitemap%s for site %q (%d)",
			plural(len(r.Languages)), r.Site.Identifier, r.Site.RootPageID), "=")
		for _, lr := range r.Languages {
			writeTitle(&b, fmt.Sprintf("Language %q (%d)", lr.Language.Title, lr.Language.ID), "-")
			writeListing(&b, lr.Sitemaps)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTitle(b *strings.Builder, title, underline string) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(underline, len(title)))
	b.WriteString("\n\n")
}

func writeListing(b *strings.Builder, sitemaps []SitemapStatus) {
	for _, s := range sitemaps {
		b.WriteString(" * ")
		b.WriteString(s.URL)
		if s.Valid != nil {
			if *s.Valid {
				b.WriteString(" (valid)")
			} else {
				b.WriteString(" (invalid)")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// JSONFormatter renders reports as indented JSON.
type JSONFormatter struct{}

// Format implements Formatter.
func (JSONFormatter) Format(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(r)
}
