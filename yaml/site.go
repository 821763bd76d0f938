// Package yaml reads site definitions from a directory of YAML files laid
// out as <dir>/<identifier>/config.yaml.
package yaml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/fwojciec/locmap"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the site configuration file.
const ConfigFile = "config.yaml"

// Ensure SiteFinder implements locmap.SiteFinder at compile time.
var _ locmap.SiteFinder = (*SiteFinder)(nil)

// SiteFinder implements locmap.SiteFinder on a directory of site
// configurations. Files are read on every call so edits take effect
// without a restart.
type SiteFinder struct {
	fsys fs.FS
}

// NewSiteFinder creates a SiteFinder reading from dir.
func NewSiteFinder(dir string) *SiteFinder {
	return &SiteFinder{fsys: os.DirFS(dir)}
}

// NewSiteFinderFS creates a SiteFinder reading from fsys.
func NewSiteFinderFS(fsys fs.FS) *SiteFinder {
	return &SiteFinder{fsys: fsys}
}

// FindSites returns all sites ordered by identifier. Directories without a
// configuration file are skipped.
func (f *SiteFinder) FindSites(ctx context.Context) ([]*locmap.Site, error) {
	entries, err := fs.ReadDir(f.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read site directory: %w", err)
	}

	var sites []*locmap.Site
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		site, err := f.load(entry.Name())
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	slices.SortFunc(sites, func(a, b *locmap.Site) int {
		return strings.Compare(a.Identifier, b.Identifier)
	})
	return sites, nil
}

// FindSiteByIdentifier returns the site configured in <identifier>/config.yaml.
func (f *SiteFinder) FindSiteByIdentifier(ctx context.Context, identifier string) (*locmap.Site, error) {
	if !fs.ValidPath(identifier) || strings.Contains(identifier, "/") || identifier == "." {
		return nil, locmap.Errorf(locmap.ENOTFOUND, "site %q not found", identifier)
	}
	site, err := f.load(identifier)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, locmap.Errorf(locmap.ENOTFOUND, "site %q not found", identifier)
	}
	return site, err
}

// FindSiteByRootPageID returns the site with the given root page id.
func (f *SiteFinder) FindSiteByRootPageID(ctx context.Context, id int) (*locmap.Site, error) {
	sites, err := f.FindSites(ctx)
	if err != nil {
		return nil, err
	}
	for _, site := range sites {
		if site.RootPageID == id {
			return site, nil
		}
	}
	return nil, locmap.Errorf(locmap.ENOTFOUND, "no site found for root page id %d", id)
}

// siteConfig holds the typed fields of a site configuration.
type siteConfig struct {
	RootPageID int              `yaml:"rootPageId"`
	Base       string           `yaml:"base"`
	Languages  []languageConfig `yaml:"languages"`
}

type languageConfig struct {
	LanguageID int    `yaml:"languageId"`
	Title      string `yaml:"title"`
	Base       string `yaml:"base"`
	Enabled    *bool  `yaml:"enabled"`
}

func (f *SiteFinder) load(identifier string) (*locmap.Site, error) {
	data, err := fs.ReadFile(f.fsys, path.Join(identifier, ConfigFile))
	if err != nil {
		return nil, err
	}
	return Parse(identifier, data)
}

// Parse builds a site from the content of a configuration file. Language
// bases without a host are resolved against the site base.
func Parse(identifier string, data []byte) (*locmap.Site, error) {
	var cfg siteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, locmap.Errorf(locmap.EINVALID, "invalid configuration of site %q: %v", identifier, err)
	}

	var raw struct {
		Configuration map[string]any   `yaml:",inline"`
		Languages     []map[string]any `yaml:"languages"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, locmap.Errorf(locmap.EINVALID, "invalid configuration of site %q: %v", identifier, err)
	}

	site := &locmap.Site{
		Identifier:    identifier,
		RootPageID:    cfg.RootPageID,
		Base:          cfg.Base,
		Configuration: raw.Configuration,
	}

	for i, lc := range cfg.Languages {
		lang := &locmap.Language{
			ID:      lc.LanguageID,
			Title:   lc.Title,
			Base:    resolveBase(cfg.Base, lc.Base),
			Enabled: lc.Enabled == nil || *lc.Enabled,
		}
		if i < len(raw.Languages) {
			lang.Configuration = raw.Languages[i]
		}
		site.Languages = append(site.Languages, lang)
	}
	return site, nil
}

// resolveBase resolves a language base against the site base. Bases that
// already carry a host, or that cannot be parsed, are returned unchanged.
func resolveBase(siteBase, langBase string) string {
	if langBase == "" {
		return siteBase
	}
	ref, err := url.Parse(langBase)
	if err != nil || ref.Host != "" {
		return langBase
	}
	base, err := url.Parse(siteBase)
	if err != nil || base.Host == "" {
		return langBase
	}
	return base.ResolveReference(ref).String()
}
