package mock

import (
	"context"

	"github.com/fwojciec/locmap"
)

var _ locmap.Provider = (*Provider)(nil)

// Provider is a mock implementation of locmap.Provider.
type Provider struct {
	NameFn     func() string
	PriorityFn func() int
	SitemapsFn func(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap
}

func (p *Provider) Name() string {
	return p.NameFn()
}

func (p *Provider) Priority() int {
	return p.PriorityFn()
}

func (p *Provider) Sitemaps(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	return p.SitemapsFn(ctx, site, lang)
}
