package locmap

import "context"

// Provider discovers sitemap URLs for a site language.
type Provider interface {
	// Name returns the name used to configure the provider.
	Name() string

	// Priority orders providers in a chain. Higher runs first.
	Priority() int

	// Sitemaps returns the sitemaps located for the site language.
	// A nil language means the site's default language. Providers never
	// fail: lookup and transport errors produce an empty result.
	Sitemaps(ctx context.Context, site *Site, lang *Language) []*Sitemap
}
