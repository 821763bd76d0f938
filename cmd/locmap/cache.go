package main

import (
	"fmt"

	"github.com/fwojciec/locmap"
)

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	site, err := findSite(deps, c.Site)
	if err != nil {
		return err
	}

	if c.Language != "" {
		lang, err := findLanguage(deps, site, c.Language)
		if err != nil {
			return err
		}
		if err := deps.Cache.Remove(deps.Ctx, site, lang); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locmap.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Cleared cached sitemaps of site %q and language %q (%d)\n", site.Identifier, lang.Title, lang.ID)
		return nil
	}

	if err := deps.Cache.InvalidateSite(deps.Ctx, deps.Sites, site.Identifier); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmap.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Cleared cached sitemaps of site %q\n", site.Identifier)
	return nil
}

// Run executes the cache flush command.
func (c *CacheFlushCmd) Run(deps *Dependencies) error {
	if err := deps.Cache.Flush(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmap.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Flushed sitemap cache")
	return nil
}
