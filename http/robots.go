package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/locmap"
	"github.com/temoto/robotstxt"
)

// Provider name and priority of RobotsTxtProvider.
const (
	RobotsTxtName     = "robots_txt"
	RobotsTxtPriority = 100
)

// maxRobotsTxtSize caps the robots.txt body read into memory.
const maxRobotsTxtSize = 512 << 10

var _ locmap.Provider = (*RobotsTxtProvider)(nil)

// RobotsTxtProvider locates sitemaps announced by Sitemap directives in the
// robots.txt file of a site language.
type RobotsTxtProvider struct {
	client locmap.HTTPClient
}

// NewRobotsTxtProvider creates a new RobotsTxtProvider.
// If client is nil, http.DefaultClient is used.
func NewRobotsTxtProvider(client locmap.HTTPClient) *RobotsTxtProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &RobotsTxtProvider{client: client}
}

func (p *RobotsTxtProvider) Name() string  { return RobotsTxtName }
func (p *RobotsTxtProvider) Priority() int { return RobotsTxtPriority }

// Sitemaps returns one sitemap per absolute http(s) Sitemap directive, in
// file order.
func (p *RobotsTxtProvider) Sitemaps(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	robotsURL, err := locmap.SiteURLWithPath(site, lang, "robots.txt")
	if err != nil {
		return nil
	}

	body, ok := p.fetch(ctx, robotsURL)
	if !ok || strings.TrimSpace(string(body)) == "" {
		return nil
	}

	var sitemaps []*locmap.Sitemap
	for _, raw := range sitemapDirectives(body) {
		if !isAbsoluteHTTP(raw) {
			continue
		}
		sitemaps = append(sitemaps, locmap.NewSitemap(raw, site, lang))
	}
	return sitemaps
}

// sitemapLine matches a Sitemap directive with an absolute http(s) URL.
var sitemapLine = regexp.MustCompile(`(?im)^[ \t]*sitemap:[ \t]*(https?://\S+)`)

// sitemapDirectives returns the Sitemap values of a robots.txt file in file
// order. Files the parser rejects, e.g. for a malformed Crawl-delay, are
// scanned line by line so their Sitemap directives are not lost.
func sitemapDirectives(body []byte) []string {
	if robots, err := robotstxt.FromBytes(body); err == nil {
		return robots.Sitemaps
	}

	var urls []string
	for _, m := range sitemapLine.FindAllSubmatch(body, -1) {
		urls = append(urls, string(m[1]))
	}
	return urls
}

func (p *RobotsTxtProvider) fetch(ctx context.Context, u string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsTxtSize))
	if err != nil {
		return nil, false
	}
	return body, true
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
