package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/locmap"
	"github.com/fwojciec/locmap/etree"
	"github.com/fwojciec/locmap/locate"
)

// Run executes the locate command.
func (c *LocateCmd) Run(deps *Dependencies) error {
	site, err := findSite(deps, c.Site)
	if err != nil {
		return err
	}

	opts := locate.ReportOptions{All: c.All, Validate: c.Validate}
	if !c.All && c.Language != "" {
		if opts.Language, err = findLanguage(deps, site, c.Language); err != nil {
			return err
		}
	}

	report, err := locate.BuildReport(deps.Ctx, deps.Locator, site, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: unable to locate XML sitemaps: %s\n", locmap.ErrorMessage(err))
		return err
	}

	if err := c.formatter().Format(deps.Stdout, report); err != nil {
		return err
	}

	if !report.OK() {
		return locmap.Errorf(locmap.ENOTFOUND, "some XML sitemaps of site %q are missing or invalid", site.Identifier)
	}
	return nil
}

func (c *LocateCmd) formatter() locmap.Formatter {
	format := c.Format
	if c.JSON {
		format = "json"
	}
	switch format {
	case "json":
		return locmap.JSONFormatter{}
	case "xml":
		return etree.NewFormatter()
	default:
		return locmap.TextFormatter{}
	}
}

// findSite resolves a site argument and reports failures on stderr.
func findSite(deps *Dependencies, ref string) (*locmap.Site, error) {
	site, err := locmap.FindSite(deps.Ctx, deps.Sites, ref)
	if locmap.ErrorCode(err) == locmap.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: site with identifier or root page ID %q does not exist. Use 'locmap sites' to see available sites.\n", ref)
		return nil, err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmap.ErrorMessage(err))
		return nil, err
	}
	return site, nil
}

// findLanguage resolves a language argument and reports failures on stderr.
func findLanguage(deps *Dependencies, site *locmap.Site, ref string) (*locmap.Language, error) {
	id, err := strconv.Atoi(ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: site language %q is not a number\n", ref)
		return nil, locmap.Errorf(locmap.EINVALID, "invalid language id %q", ref)
	}
	lang, err := site.LanguageByID(id)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: site language \"%d\" does not exist in site %q\n", id, site.Identifier)
		return nil, err
	}
	return lang, nil
}
