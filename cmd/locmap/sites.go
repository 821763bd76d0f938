package main

import (
	"fmt"

	"github.com/fwojciec/locmap"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	sites, err := deps.Sites.FindSites(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmap.ErrorMessage(err))
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintf(deps.Stdout, "No sites found in %q.\n", deps.Config.Sites)
		return nil
	}

	for _, site := range sites {
		fmt.Fprintf(deps.Stdout, "%s (%d)  %s\n", site.Identifier, site.RootPageID, site.Base)
		for _, lang := range site.Languages {
			state := ""
			if !lang.Enabled {
				state = "  (disabled)"
			}
			fmt.Fprintf(deps.Stdout, "  [%d] %s  %s%s\n", lang.ID, lang.Title, lang.Base, state)
		}
	}
	return nil
}
