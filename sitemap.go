package locmap

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
)

// Sitemap describes one located XML sitemap of a site language.
// Values are never mutated after construction.
type Sitemap struct {
	URL      string    `json:"url"`
	Site     *Site     `json:"-"`
	Language *Language `json:"-"`

	// Cached is true only for sitemaps read back from the cache.
	Cached bool `json:"cached"`
}

// NewSitemap returns a sitemap for site. A nil language is replaced by the
// site's default language.
func NewSitemap(url string, site *Site, lang *Language) *Sitemap {
	if lang == nil {
		lang = site.DefaultLanguage()
	}
	return &Sitemap{URL: url, Site: site, Language: lang}
}

// Equal reports whether both sitemaps point to the same URL for the same
// site and language. The Cached flag is ignored.
func (s *Sitemap) Equal(other *Sitemap) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.URL != other.URL {
		return false
	}
	if s.Site.Identifier != other.Site.Identifier || s.Site.RootPageID != other.Site.RootPageID {
		return false
	}
	return s.Language.ID == other.Language.ID && s.Language.Base == other.Language.Base
}

// SitemapLocator locates and validates XML sitemaps of sites.
type SitemapLocator interface {
	// LocateBySite returns the sitemaps of a site language, from cache if
	// possible. A nil language means the site's default language.
	// Returns *BaseURLNotSupportedError or *SitemapMissingError.
	LocateBySite(ctx context.Context, site *Site, lang *Language) ([]*Sitemap, error)

	// LocateAllBySite locates sitemaps of every enabled language accepted by
	// accessible, keyed by language id. A nil accessible accepts all.
	LocateAllBySite(ctx context.Context, site *Site, accessible func(*Language) bool) (map[int][]*Sitemap, error)

	// IsValidSitemap reports whether the sitemap URL is reachable.
	IsValidSitemap(ctx context.Context, sitemap *Sitemap) bool
}

// SitemapCache persists located sitemaps per site language.
type SitemapCache interface {
	// Get returns cached sitemaps, or an empty slice on a miss.
	Get(ctx context.Context, site *Site, lang *Language) []*Sitemap

	// Set stores sitemaps grouped by site and language.
	Set(ctx context.Context, sitemaps []*Sitemap) error

	// Remove deletes the cache entry of a site language.
	Remove(ctx context.Context, site *Site, lang *Language) error
}

// CacheIdentifier returns the cache key of a site language. The key embeds a
// hash of the language base so editing the base URL invalidates the entry.
func CacheIdentifier(site *Site, lang *Language) string {
	if lang == nil {
		lang = site.DefaultLanguage()
	}
	sum := sha1.Sum([]byte(lang.Base))
	return site.Identifier + "_" + strconv.Itoa(lang.ID) + "_" + hex.EncodeToString(sum[:])
}
