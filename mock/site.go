package mock

import (
	"context"

	"github.com/fwojciec/locmap"
)

var _ locmap.SiteFinder = (*SiteFinder)(nil)

// SiteFinder is a mock implementation of locmap.SiteFinder.
type SiteFinder struct {
	FindSitesFn            func(ctx context.Context) ([]*locmap.Site, error)
	FindSiteByIdentifierFn func(ctx context.Context, identifier string) (*locmap.Site, error)
	FindSiteByRootPageIDFn func(ctx context.Context, id int) (*locmap.Site, error)
}

func (f *SiteFinder) FindSites(ctx context.Context) ([]*locmap.Site, error) {
	return f.FindSitesFn(ctx)
}

func (f *SiteFinder) FindSiteByIdentifier(ctx context.Context, identifier string) (*locmap.Site, error) {
	return f.FindSiteByIdentifierFn(ctx, identifier)
}

func (f *SiteFinder) FindSiteByRootPageID(ctx context.Context, id int) (*locmap.Site, error) {
	return f.FindSiteByRootPageIDFn(ctx, id)
}
