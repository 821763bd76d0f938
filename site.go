package locmap

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/purell"
)

// Site represents a configured web property with one or more language
// variants. Sites are owned by the host environment and treated as
// read-only data.
type Site struct {
	Identifier    string         `json:"identifier"`
	RootPageID    int            `json:"rootPageId"`
	Base          string         `json:"base"`
	Languages     []*Language    `json:"languages"`
	Configuration map[string]any `json:"-"`

	// Router builds page type URLs. If nil, the page type provider falls
	// back to the route enhancer map of the site configuration.
	Router Router `json:"-"`
}

// DefaultLanguage returns the language with id 0, or the first configured
// language. Sites without languages get a synthesized default language
// sharing the site base.
func (s *Site) DefaultLanguage() *Language {
	for _, lang := range s.Languages {
		if lang.ID == 0 {
			return lang
		}
	}
	if len(s.Languages) > 0 {
		return s.Languages[0]
	}
	return &Language{ID: 0, Title: "Default", Base: s.Base, Enabled: true}
}

// LanguageByID returns the language with the given id.
// Returns ENOTFOUND if the site has no such language.
func (s *Site) LanguageByID(id int) (*Language, error) {
	for _, lang := range s.Languages {
		if lang.ID == id {
			return lang, nil
		}
	}
	if id == 0 && len(s.Languages) == 0 {
		return s.DefaultLanguage(), nil
	}
	return nil, Errorf(ENOTFOUND, "site language %d does not exist in site %q", id, s.Identifier)
}

// IsDefaultLanguage reports whether lang is nil or the site's default language.
func (s *Site) IsDefaultLanguage(lang *Language) bool {
	if lang == nil {
		return true
	}
	return lang.ID == s.DefaultLanguage().ID
}

// Language represents one language variant of a site.
type Language struct {
	ID            int            `json:"languageId"`
	Title         string         `json:"title"`
	Base          string         `json:"base"`
	Enabled       bool           `json:"enabled"`
	Configuration map[string]any `json:"-"`
}

// Router builds type-specific page URLs for a site.
type Router interface {
	// PageTypeURL returns the absolute URL of the given page type.
	// A nil language means the site's default language.
	PageTypeURL(site *Site, lang *Language, pageType int) (string, error)
}

// SiteFinder looks up sites provided by the host environment.
type SiteFinder interface {
	// FindSites returns all configured sites ordered by identifier.
	FindSites(ctx context.Context) ([]*Site, error)

	// FindSiteByIdentifier returns the site with the given identifier.
	// Returns ENOTFOUND if the site does not exist.
	FindSiteByIdentifier(ctx context.Context, identifier string) (*Site, error)

	// FindSiteByRootPageID returns the site with the given root page id.
	// Returns ENOTFOUND if the site does not exist.
	FindSiteByRootPageID(ctx context.Context, id int) (*Site, error)
}

// EffectiveBase returns the language base if lang is given, the site base otherwise.
func EffectiveBase(site *Site, lang *Language) string {
	if lang != nil {
		return lang.Base
	}
	return site.Base
}

// urlFlags are the purell normalizations applied to joined site URLs.
const urlFlags = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagRemoveDefaultPort |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagRemoveDotSegments

// SiteURLWithPath joins the effective base URL of site and lang with path.
// The query string of path is kept.
func SiteURLWithPath(site *Site, lang *Language, path string) (string, error) {
	base, err := url.Parse(EffectiveBase(site, lang))
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL: %v", err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", Errorf(EINVALID, "invalid path %q: %v", path, err)
	}

	joined := *base
	joined.Path = strings.TrimRight(base.Path, "/") + "/" + strings.TrimLeft(ref.Path, "/")
	joined.RawPath = ""
	joined.RawQuery = ref.RawQuery
	joined.Fragment = ""

	return purell.NormalizeURL(&joined, urlFlags), nil
}

// FindSite looks up a site by identifier, falling back to the root page id
// if ref is numeric.
func FindSite(ctx context.Context, finder SiteFinder, ref string) (*Site, error) {
	site, err := finder.FindSiteByIdentifier(ctx, ref)
	if ErrorCode(err) != ENOTFOUND {
		return site, err
	}
	id, convErr := strconv.Atoi(ref)
	if convErr != nil {
		return nil, err
	}
	return finder.FindSiteByRootPageID(ctx, id)
}
