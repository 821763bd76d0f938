package locmap_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/locmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func singleReport() *locmap.Report {
	return &locmap.Report{
		Site: locmap.SiteRef{Identifier: "main", RootPageID: 1},
		Languages: []locmap.LanguageReport{{
			Language: locmap.LanguageRef{ID: 0, Title: "English"},
			Sitemaps: []locmap.SitemapStatus{
				{URL: "https://www.example.com/sitemap.xml"},
				{URL: "https://www.example.com/news.xml", Cached: true},
			},
		}},
	}
}

func TestTextFormatter(t *testing.T) {
	t.Parallel()

	t.Run("single language", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, locmap.TextFormatter{}.Format(&buf, singleReport()))

		title := `XML sitemaps for site "main" (1) and language "English" (0):`
		expected := title + "\n" +
			strings.Repeat("=", len(title)) + "\n\n" +
			" * https://www.example.com/sitemap.xml\n" +
			" * https://www.example.com/news.xml\n\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("all languages with validation", func(t *testing.T) {
		t.Parallel()

		report := &locmap.Report{
			Site: locmap.SiteRef{Identifier: "main", RootPageID: 1},
			All:  true,
			Languages: []locmap.LanguageReport{
				{
					Language: locmap.LanguageRef{ID: 0, Title: "English"},
					Sitemaps: []locmap.SitemapStatus{{URL: "https://www.example.com/sitemap.xml", Valid: boolPtr(true)}},
				},
				{
					Language: locmap.LanguageRef{ID: 1, Title: "German"},
					Sitemaps: []locmap.SitemapStatus{{URL: "https://www.example.com/de/sitemap.xml", Valid: boolPtr(false)}},
				},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, locmap.TextFormatter{}.Format(&buf, report))

		out := buf.String()
		assert.Contains(t, out, `XML sitemaps for site "main" (1)`+"\n")
		assert.Contains(t, out, `Language "English" (0)`+"\n"+strings.Repeat("-", 22)+"\n\n")
		assert.Contains(t, out, " * https://www.example.com/sitemap.xml (valid)\n")
		assert.Contains(t, out, " * https://www.example.com/de/sitemap.xml (invalid)\n")
	})
}

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, locmap.JSONFormatter{}.Format(&buf, singleReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]any{"identifier": "main", "rootPageId": float64(1)}, got["site"])

	languages := got["languages"].([]any)
	require.Len(t, languages, 1)
	lang := languages[0].(map[string]any)
	assert.Equal(t, map[string]any{"languageId": float64(0), "title": "English"}, lang["siteLanguage"])
	assert.Equal(t, []any{
		map[string]any{"url": "https://www.example.com/sitemap.xml", "cached": false},
		map[string]any{"url": "https://www.example.com/news.xml", "cached": true},
	}, lang["sitemaps"])
	assert.NotContains(t, buf.String(), `&`)
}

func TestReport_OK(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		assert.True(t, singleReport().OK())
	})

	t.Run("no languages", func(t *testing.T) {
		t.Parallel()
		assert.False(t, (&locmap.Report{}).OK())
	})

	t.Run("language without sitemaps", func(t *testing.T) {
		t.Parallel()

		r := singleReport()
		r.Languages[0].Sitemaps = nil

		assert.False(t, r.OK())
	})

	t.Run("invalid sitemap", func(t *testing.T) {
		t.Parallel()

		r := singleReport()
		r.Languages[0].Sitemaps[1].Valid = boolPtr(false)

		assert.False(t, r.OK())
	})
}
