package yaml_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/fwojciec/locmap"
	"github.com/fwojciec/locmap/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainConfig = `rootPageId: 1
base: 'https://www.example.com/'
xml_sitemap_path: sitemap-main.xml
languages:
  - languageId: 0
    title: English
    base: /
  - languageId: 1
    title: German
    base: /de/
    xml_sitemap_path: sitemap-de.xml
  - languageId: 2
    title: French
    base: 'https://fr.example.com/'
    enabled: false
routeEnhancers:
  PageTypeSuffix:
    type: PageType
    map:
      sitemap.xml: 1533906435
`

const blogConfig = `rootPageId: 42
base: 'https://blog.example.com/'
`

func newFS() fstest.MapFS {
	return fstest.MapFS{
		"main/config.yaml":   {Data: []byte(mainConfig)},
		"blog/config.yaml":   {Data: []byte(blogConfig)},
		"empty/.gitkeep":     {Data: nil},
		"broken/config.yaml": {Data: []byte("base: [unclosed")},
		"README.md":          {Data: []byte("# sites")},
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	site, err := yaml.Parse("main", []byte(mainConfig))
	require.NoError(t, err)

	assert.Equal(t, "main", site.Identifier)
	assert.Equal(t, 1, site.RootPageID)
	assert.Equal(t, "https://www.example.com/", site.Base)
	assert.Equal(t, "sitemap-main.xml", site.Configuration["xml_sitemap_path"])

	require.Len(t, site.Languages, 3)
	assert.Equal(t, &locmap.Language{
		ID: 0, Title: "English", Base: "https://www.example.com/", Enabled: true,
		Configuration: site.Languages[0].Configuration,
	}, site.Languages[0])
	assert.Equal(t, "https://www.example.com/de/", site.Languages[1].Base)
	assert.Equal(t, "sitemap-de.xml", site.Languages[1].Configuration["xml_sitemap_path"])
	assert.Equal(t, "https://fr.example.com/", site.Languages[2].Base)
	assert.False(t, site.Languages[2].Enabled)

	enhancers, ok := site.Configuration["routeEnhancers"].(map[string]any)
	require.True(t, ok)
	suffix, ok := enhancers["PageTypeSuffix"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PageType", suffix["type"])
	assert.Equal(t, map[string]any{"sitemap.xml": 1533906435}, suffix["map"])
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := yaml.Parse("broken", []byte("base: [unclosed"))

	require.Error(t, err)
	assert.Equal(t, locmap.EINVALID, locmap.ErrorCode(err))
}

func TestSiteFinder_FindSites(t *testing.T) {
	t.Parallel()

	fsys := newFS()
	delete(fsys, "broken/config.yaml")

	sites, err := yaml.NewSiteFinderFS(fsys).FindSites(context.Background())
	require.NoError(t, err)

	require.Len(t, sites, 2)
	assert.Equal(t, "blog", sites[0].Identifier)
	assert.Equal(t, "main", sites[1].Identifier)
}

func TestSiteFinder_FindSites_Invalid(t *testing.T) {
	t.Parallel()

	_, err := yaml.NewSiteFinderFS(newFS()).FindSites(context.Background())

	assert.Equal(t, locmap.EINVALID, locmap.ErrorCode(err))
}

func TestSiteFinder_FindSiteByIdentifier(t *testing.T) {
	t.Parallel()

	finder := yaml.NewSiteFinderFS(newFS())

	t.Run("finds site", func(t *testing.T) {
		t.Parallel()

		site, err := finder.FindSiteByIdentifier(context.Background(), "blog")
		require.NoError(t, err)
		assert.Equal(t, 42, site.RootPageID)
		assert.Empty(t, site.Languages)
	})

	t.Run("returns not found for unknown site", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{"unknown", "empty", "../main", "main/config.yaml", "."} {
			_, err := finder.FindSiteByIdentifier(context.Background(), id)
			assert.Equal(t, locmap.ENOTFOUND, locmap.ErrorCode(err), id)
		}
	})
}

func TestSiteFinder_FindSiteByRootPageID(t *testing.T) {
	t.Parallel()

	fsys := newFS()
	delete(fsys, "broken/config.yaml")
	finder := yaml.NewSiteFinderFS(fsys)

	site, err := finder.FindSiteByRootPageID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "blog", site.Identifier)

	_, err = finder.FindSiteByRootPageID(context.Background(), 7)
	assert.Equal(t, locmap.ENOTFOUND, locmap.ErrorCode(err))
}
