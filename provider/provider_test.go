package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/locmap"
	"github.com/fwojciec/locmap/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSite(config map[string]any) *locmap.Site {
	return &locmap.Site{
		Identifier: "main",
		RootPageID: 1,
		Base:       "https://www.example.com/",
		Languages: []*locmap.Language{
			{ID: 0, Title: "English", Base: "https://www.example.com/", Enabled: true},
			{ID: 1, Title: "German", Base: "https://www.example.com/de/", Enabled: true,
				Configuration: map[string]any{"xml_sitemap_path": "sitemap-de.xml"}},
		},
		Configuration: config,
	}
}

func pageTypeConfig(m map[string]any) map[string]any {
	return map[string]any{
		"routeEnhancers": map[string]any{
			"PageTypeSuffix": map[string]any{
				"type": "PageType",
				"map":  m,
			},
		},
	}
}

type routerFunc func(site *locmap.Site, lang *locmap.Language, pageType int) (string, error)

func (f routerFunc) PageTypeURL(site *locmap.Site, lang *locmap.Language, pageType int) (string, error) {
	return f(site, lang, pageType)
}

func TestPageTypeProvider(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing without route enhancers", func(t *testing.T) {
		t.Parallel()

		p := provider.NewPageTypeProvider()
		assert.Empty(t, p.Sitemaps(context.Background(), newSite(nil), nil))
	})

	t.Run("returns nothing if the map lacks the sitemap page type", func(t *testing.T) {
		t.Parallel()

		site := newSite(pageTypeConfig(map[string]any{"feed.xml": 9818}))

		p := provider.NewPageTypeProvider()
		assert.Empty(t, p.Sitemaps(context.Background(), site, nil))
	})

	t.Run("ignores enhancers of other types", func(t *testing.T) {
		t.Parallel()

		site := newSite(map[string]any{
			"routeEnhancers": map[string]any{
				"News": map[string]any{
					"type": "Extbase",
					"map":  map[string]any{"sitemap.xml": provider.SitemapPageType},
				},
			},
		})

		p := provider.NewPageTypeProvider()
		assert.Empty(t, p.Sitemaps(context.Background(), site, nil))
	})

	t.Run("joins mapped path with language base", func(t *testing.T) {
		t.Parallel()

		site := newSite(pageTypeConfig(map[string]any{
			"feed.xml":    9818,
			"sitemap.xml": provider.SitemapPageType,
		}))

		p := provider.NewPageTypeProvider()
		sitemaps := p.Sitemaps(context.Background(), site, site.Languages[1])

		require.Len(t, sitemaps, 1)
		assert.Equal(t, "https://www.example.com/de/sitemap.xml", sitemaps[0].URL)
		assert.Equal(t, 1, sitemaps[0].Language.ID)
	})

	t.Run("uses default language when none is given", func(t *testing.T) {
		t.Parallel()

		site := newSite(pageTypeConfig(map[string]any{"sitemap.xml": float64(provider.SitemapPageType)}))

		p := provider.NewPageTypeProvider()
		sitemaps := p.Sitemaps(context.Background(), site, nil)

		require.Len(t, sitemaps, 1)
		assert.Equal(t, "https://www.example.com/sitemap.xml", sitemaps[0].URL)
		assert.Equal(t, 0, sitemaps[0].Language.ID)
	})

	t.Run("uses site router when set", func(t *testing.T) {
		t.Parallel()

		var gotType int
		site := newSite(pageTypeConfig(map[string]any{"sitemap.xml": provider.SitemapPageType}))
		site.Router = routerFunc(func(_ *locmap.Site, _ *locmap.Language, pageType int) (string, error) {
			gotType = pageType
			return "https://www.example.com/?type=1533906435", nil
		})

		p := provider.NewPageTypeProvider()
		sitemaps := p.Sitemaps(context.Background(), site, nil)

		require.Len(t, sitemaps, 1)
		assert.Equal(t, "https://www.example.com/?type=1533906435", sitemaps[0].URL)
		assert.Equal(t, provider.SitemapPageType, gotType)
	})

	t.Run("returns nothing if router fails", func(t *testing.T) {
		t.Parallel()

		site := newSite(pageTypeConfig(map[string]any{"sitemap.xml": provider.SitemapPageType}))
		site.Router = routerFunc(func(*locmap.Site, *locmap.Language, int) (string, error) {
			return "", errors.New("no route")
		})

		p := provider.NewPageTypeProvider()
		assert.Empty(t, p.Sitemaps(context.Background(), site, nil))
	})
}

func TestSiteProvider(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing without configured path", func(t *testing.T) {
		t.Parallel()

		p := provider.NewSiteProvider()
		assert.Empty(t, p.Sitemaps(context.Background(), newSite(nil), nil))
	})

	t.Run("returns nothing for blank path", func(t *testing.T) {
		t.Parallel()

		site := newSite(map[string]any{"xml_sitemap_path": "   "})

		p := provider.NewSiteProvider()
		assert.Empty(t, p.Sitemaps(context.Background(), site, nil))
	})

	t.Run("uses site configuration for default language", func(t *testing.T) {
		t.Parallel()

		site := newSite(map[string]any{"xml_sitemap_path": "/custom/sitemap.xml?page=1"})

		p := provider.NewSiteProvider()
		sitemaps := p.Sitemaps(context.Background(), site, site.Languages[0])

		require.Len(t, sitemaps, 1)
		assert.Equal(t, "https://www.example.com/custom/sitemap.xml?page=1", sitemaps[0].URL)
	})

	t.Run("uses language configuration for other languages", func(t *testing.T) {
		t.Parallel()

		site := newSite(map[string]any{"xml_sitemap_path": "ignored.xml"})

		p := provider.NewSiteProvider()
		sitemaps := p.Sitemaps(context.Background(), site, site.Languages[1])

		require.Len(t, sitemaps, 1)
		assert.Equal(t, "https://www.example.com/de/sitemap-de.xml", sitemaps[0].URL)
		assert.Equal(t, 1, sitemaps[0].Language.ID)
	})
}

func TestDefaultProvider(t *testing.T) {
	t.Parallel()

	t.Run("returns sitemap.xml below site base", func(t *testing.T) {
		t.Parallel()

		p := provider.NewDefaultProvider()
		sitemaps := p.Sitemaps(context.Background(), newSite(nil), nil)

		require.Len(t, sitemaps, 1)
		assert.Equal(t, "https://www.example.com/sitemap.xml", sitemaps[0].URL)
		assert.False(t, sitemaps[0].Cached)
	})

	t.Run("returns sitemap.xml below language base", func(t *testing.T) {
		t.Parallel()

		site := newSite(nil)

		p := provider.NewDefaultProvider()
		sitemaps := p.Sitemaps(context.Background(), site, site.Languages[1])

		require.Len(t, sitemaps, 1)
		assert.Equal(t, "https://www.example.com/de/sitemap.xml", sitemaps[0].URL)
	})

	t.Run("reports name and priority", func(t *testing.T) {
		t.Parallel()

		p := provider.NewDefaultProvider()
		assert.Equal(t, "default", p.Name())
		assert.Equal(t, 0, p.Priority())
	})
}
