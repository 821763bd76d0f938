// Package locate resolves the XML sitemaps of sites by asking a chain of
// providers and caching the result per site language.
package locate

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"slices"

	"github.com/fwojciec/locmap"
	"golang.org/x/sync/singleflight"
)

// Ensure Locator implements locmap.SitemapLocator at compile time.
var _ locmap.SitemapLocator = (*Locator)(nil)

// Locator implements locmap.SitemapLocator.
type Locator struct {
	cache     locmap.SitemapCache
	client    locmap.HTTPClient
	providers []locmap.Provider
	events    *locmap.Events
	logger    *slog.Logger

	group singleflight.Group
}

// Option configures a Locator.
type Option func(*Locator)

// WithEvents sets the listener registry notified of located and validated
// sitemaps.
func WithEvents(events *locmap.Events) Option {
	return func(l *Locator) {
		l.events = events
	}
}

// WithLogger sets the logger used to report cache write failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// NewLocator creates a Locator asking providers in descending priority order.
// Providers with equal priority keep their given order.
// Returns *locmap.ProviderInvalidError if a provider is nil.
func NewLocator(cache locmap.SitemapCache, client locmap.HTTPClient, providers []locmap.Provider, opts ...Option) (*Locator, error) {
	for i, p := range providers {
		if isNil(p) {
			return nil, &locmap.ProviderInvalidError{Index: i}
		}
	}

	sorted := slices.Clone(providers)
	slices.SortStableFunc(sorted, func(a, b locmap.Provider) int {
		return b.Priority() - a.Priority()
	})

	if client == nil {
		client = http.DefaultClient
	}

	l := &Locator{
		cache:     cache,
		client:    client,
		providers: sorted,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Providers returns the providers in the order they are asked.
func (l *Locator) Providers() []locmap.Provider {
	return slices.Clone(l.providers)
}

// LocateBySite returns cached sitemaps of the site language if present.
// Otherwise it asks the providers, lets SitemapsLocated listeners adjust the
// result and caches it. Concurrent lookups of the same cache entry share one
// resolution.
func (l *Locator) LocateBySite(ctx context.Context, site *locmap.Site, lang *locmap.Language) ([]*locmap.Sitemap, error) {
	if cached := l.cache.Get(ctx, site, lang); len(cached) > 0 {
		return cached, nil
	}

	v, err, _ := l.group.Do(locmap.CacheIdentifier(site, lang), func() (any, error) {
		return l.resolve(ctx, site, lang)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]*locmap.Sitemap)), nil
}

func (l *Locator) resolve(ctx context.Context, site *locmap.Site, lang *locmap.Language) ([]*locmap.Sitemap, error) {
	base := locmap.EffectiveBase(site, lang)
	if u, err := url.Parse(base); err != nil || u.Host == "" {
		return nil, &locmap.BaseURLNotSupportedError{URL: base}
	}

	sitemaps := l.fromProviders(ctx, site, lang)
	if len(sitemaps) == 0 {
		return nil, &locmap.SitemapMissingError{Site: site.Identifier}
	}

	event := &locmap.SitemapsLocated{Site: site, Language: lang, Sitemaps: sitemaps}
	l.events.DispatchSitemapsLocated(ctx, event)
	sitemaps = event.Sitemaps
	if sitemaps == nil {
		sitemaps = []*locmap.Sitemap{}
	}

	if err := l.cache.Set(ctx, sitemaps); err != nil {
		l.logger.Warn("cache write failed",
			"site", site.Identifier,
			"cache_id", locmap.CacheIdentifier(site, lang),
			"error", err,
		)
	}

	return sitemaps, nil
}

// fromProviders returns the result of the first provider locating at least
// one sitemap.
func (l *Locator) fromProviders(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	for _, p := range l.providers {
		if sitemaps := p.Sitemaps(ctx, site, lang); len(sitemaps) > 0 {
			return sitemaps
		}
	}
	return nil
}

// LocateAllBySite locates the sitemaps of every enabled language accepted by
// accessible. The first failing language aborts the lookup.
func (l *Locator) LocateAllBySite(ctx context.Context, site *locmap.Site, accessible func(*locmap.Language) bool) (map[int][]*locmap.Sitemap, error) {
	result := make(map[int][]*locmap.Sitemap)
	for _, lang := range Languages(site) {
		if !lang.Enabled || (accessible != nil && !accessible(lang)) {
			continue
		}
		sitemaps, err := l.LocateBySite(ctx, site, lang)
		if err != nil {
			return nil, err
		}
		result[lang.ID] = sitemaps
	}
	return result, nil
}

// IsValidSitemap sends a HEAD request to the sitemap URL. The sitemap is
// valid if the server answers with a status below 400. SitemapValidated
// listeners may override the verdict.
func (l *Locator) IsValidSitemap(ctx context.Context, sitemap *locmap.Sitemap) bool {
	resp, err := l.head(ctx, sitemap.URL)

	event := &locmap.SitemapValidated{Sitemap: sitemap, Response: resp}
	if err == nil {
		event.Valid = resp.StatusCode < 400
	}
	l.events.DispatchSitemapValidated(ctx, event)
	return event.Valid
}

// head sends a HEAD request and closes the response body. The response is
// nil if the request failed.
func (l *Locator) head(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()
	return resp, nil
}

// Languages returns the languages of site, or its default language if none
// are configured.
func Languages(site *locmap.Site) []*locmap.Language {
	if len(site.Languages) == 0 {
		return []*locmap.Language{site.DefaultLanguage()}
	}
	return site.Languages
}

func isNil(p locmap.Provider) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
