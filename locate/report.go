package locate

import (
	"context"

	"github.com/fwojciec/locmap"
)

// ReportOptions selects what BuildReport locates.
type ReportOptions struct {
	// Language is the language to locate. Nil means the default language.
	// Ignored if All is set.
	Language *locmap.Language

	// All locates every enabled language accepted by Accessible.
	All        bool
	Accessible func(*locmap.Language) bool

	// Validate checks each located sitemap with IsValidSitemap.
	Validate bool
}

// BuildReport locates the sitemaps of site and collects them into a report.
// Languages appear in site order.
func BuildReport(ctx context.Context, locator locmap.SitemapLocator, site *locmap.Site, opts ReportOptions) (*locmap.Report, error) {
	report := &locmap.Report{
		Site: locmap.SiteRef{Identifier: site.Identifier, RootPageID: site.RootPageID},
		All:  opts.All,
	}

	if !opts.All {
		lang := opts.Language
		if lang == nil {
			lang = site.DefaultLanguage()
		}
		sitemaps, err := locator.LocateBySite(ctx, site, lang)
		if err != nil {
			return nil, err
		}
		report.Languages = []locmap.LanguageReport{languageReport(ctx, locator, lang, sitemaps, opts.Validate)}
		return report, nil
	}

	all, err := locator.LocateAllBySite(ctx, site, opts.Accessible)
	if err != nil {
		return nil, err
	}
	report.Languages = []locmap.LanguageReport{}
	for _, lang := range Languages(site) {
		sitemaps, ok := all[lang.ID]
		if !ok {
			continue
		}
		report.Languages = append(report.Languages, languageReport(ctx, locator, lang, sitemaps, opts.Validate))
	}
	return report, nil
}

func languageReport(ctx context.Context, locator locmap.SitemapLocator, lang *locmap.Language, sitemaps []*locmap.Sitemap, validate bool) locmap.LanguageReport {
	lr := locmap.LanguageReport{
		Language: locmap.LanguageRef{ID: lang.ID, Title: lang.Title},
		Sitemaps: make([]locmap.SitemapStatus, 0, len(sitemaps)),
	}
	for _, s := range sitemaps {
		status := locmap.SitemapStatus{URL: s.URL, Cached: s.Cached}
		if validate {
			valid := locator.IsValidSitemap(ctx, s)
			status.Valid = &valid
		}
		lr.Sitemaps = append(lr.Sitemaps, status)
	}
	return lr
}
