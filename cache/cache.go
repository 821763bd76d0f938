// Package cache stores located sitemaps per site language in a locmap.Store.
// Entries hold plain URL lists so they survive any store serialization.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fwojciec/locmap"
)

// Compile-time interface verification.
var _ locmap.SitemapCache = (*SitemapsCache)(nil)

// SitemapsCache implements locmap.SitemapCache on top of a locmap.Store.
type SitemapsCache struct {
	store locmap.Store
}

// NewSitemapsCache creates a new SitemapsCache.
func NewSitemapsCache(store locmap.Store) *SitemapsCache {
	return &SitemapsCache{store: store}
}

// Get returns the cached sitemaps of a site language. Read failures and
// payloads that are not a list of strings are treated as a miss.
func (c *SitemapsCache) Get(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	urls := c.read(ctx, locmap.CacheIdentifier(site, lang))
	if len(urls) == 0 {
		return []*locmap.Sitemap{}
	}

	if lang == nil {
		lang = site.DefaultLanguage()
	}

	sitemaps := make([]*locmap.Sitemap, 0, len(urls))
	for _, u := range urls {
		sitemaps = append(sitemaps, &locmap.Sitemap{
			URL:      u,
			Site:     site,
			Language: lang,
			Cached:   true,
		})
	}
	return sitemaps
}

// bucket collects the sitemaps sharing one cache identity.
type bucket struct {
	identifier string
	urls       []string
}

// Set stores sitemaps grouped by site and language. Each group overwrites
// its own entry; a failing write does not prevent the remaining writes.
func (c *SitemapsCache) Set(ctx context.Context, sitemaps []*locmap.Sitemap) error {
	type groupKey struct {
		site string
		lang int
	}

	index := make(map[groupKey]int)
	var buckets []*bucket

	for _, s := range sitemaps {
		lang := s.Language
		if lang == nil {
			lang = s.Site.DefaultLanguage()
		}
		key := groupKey{site: s.Site.Identifier, lang: lang.ID}
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, &bucket{identifier: locmap.CacheIdentifier(s.Site, lang)})
		}
		buckets[i].urls = append(buckets[i].urls, s.URL)
	}

	var errs []error
	for _, b := range buckets {
		if err := c.write(ctx, b.identifier, b.urls); err != nil {
			errs = append(errs, fmt.Errorf("write cache entry %q: %w", b.identifier, err))
		}
	}
	return errors.Join(errs...)
}

// Remove deletes the cache entry of a site language.
func (c *SitemapsCache) Remove(ctx context.Context, site *locmap.Site, lang *locmap.Language) error {
	return c.store.Remove(ctx, locmap.CacheIdentifier(site, lang))
}

// RemoveSite deletes the cache entries of the default language and every
// configured language of a site.
func (c *SitemapsCache) RemoveSite(ctx context.Context, site *locmap.Site) error {
	var errs []error
	if err := c.Remove(ctx, site, nil); err != nil {
		errs = append(errs, err)
	}
	for _, lang := range site.Languages {
		if err := c.Remove(ctx, site, lang); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// InvalidateSite clears the cache of the site with the given identifier.
// Unknown sites are ignored.
func (c *SitemapsCache) InvalidateSite(ctx context.Context, finder locmap.SiteFinder, identifier string) error {
	site, err := finder.FindSiteByIdentifier(ctx, identifier)
	if locmap.ErrorCode(err) == locmap.ENOTFOUND {
		return nil
	} else if err != nil {
		return err
	}
	return c.RemoveSite(ctx, site)
}

// Flush deletes all cache entries.
func (c *SitemapsCache) Flush(ctx context.Context) error {
	return c.store.Flush(ctx)
}

func (c *SitemapsCache) read(ctx context.Context, identifier string) []string {
	data, ok, err := c.store.Get(ctx, identifier)
	if err != nil || !ok {
		return nil
	}
	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil
	}
	return urls
}

func (c *SitemapsCache) write(ctx context.Context, identifier string, urls []string) error {
	data, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, identifier, data)
}
