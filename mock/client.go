package mock

import (
	"context"
	"net/http"

	"github.com/fwojciec/locmap"
)

var _ locmap.HTTPClient = (*HTTPClient)(nil)

// HTTPClient is a mock implementation of locmap.HTTPClient.
type HTTPClient struct {
	DoFn func(req *http.Request) (*http.Response, error)
}

func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.DoFn(req)
}

var _ locmap.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of locmap.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
