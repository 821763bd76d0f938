// Package goquery implements the sitemap provider that reads sitemap links
// from the HTML head of a site's start page.
package goquery

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locmap"
)

// Provider name and priority of LinkTagProvider.
const (
	LinkTagName     = "link_tag"
	LinkTagPriority = 50
)

// maxPageSize caps the HTML body read into memory.
const maxPageSize = 2 << 20

var _ locmap.Provider = (*LinkTagProvider)(nil)

// LinkTagProvider locates sitemaps referenced by <link rel="sitemap"> elements
// on the page at the base URL of a site language.
type LinkTagProvider struct {
	client locmap.HTTPClient
}

// NewLinkTagProvider creates a new LinkTagProvider.
// If client is nil, http.DefaultClient is used.
func NewLinkTagProvider(client locmap.HTTPClient) *LinkTagProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &LinkTagProvider{client: client}
}

func (p *LinkTagProvider) Name() string  { return LinkTagName }
func (p *LinkTagProvider) Priority() int { return LinkTagPriority }

// Sitemaps returns one sitemap per link element in document order. Relative
// hrefs are resolved against the page URL.
func (p *LinkTagProvider) Sitemaps(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	pageURL, err := locmap.SiteURLWithPath(site, lang, "")
	if err != nil {
		return nil
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	doc, err := p.fetch(ctx, pageURL)
	if err != nil {
		return nil
	}

	var sitemaps []*locmap.Sitemap
	seen := make(map[string]bool)
	doc.Find("link[rel][href]").Each(func(_ int, s *goquery.Selection) {
		if !hasRel(s.AttrOr("rel", ""), "sitemap") {
			return
		}
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		u := base.ResolveReference(ref)
		if u.Scheme != "http" && u.Scheme != "https" {
			return
		}
		resolved := u.String()
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		sitemaps = append(sitemaps, locmap.NewSitemap(resolved, site, lang))
	})
	return sitemaps
}

func (p *LinkTagProvider) fetch(ctx context.Context, u string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, locmap.Errorf(locmap.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, u)
	}

	return goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageSize))
}

// hasRel reports whether the space separated rel attribute contains value.
func hasRel(rel, value string) bool {
	for _, v := range strings.Fields(rel) {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
