// Package http builds the HTTP client used to probe sites and implements the
// robots.txt sitemap provider.
package http

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/fwojciec/locmap"
	"golang.org/x/net/publicsuffix"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless configured otherwise.
const DefaultUserAgent = "locmap/1.0 (+https://github.com/fwojciec/locmap)"

// NewClient builds an HTTP client from cfg. BeforeClientConfigured listeners
// registered on events may modify a copy of cfg before the client is built.
func NewClient(cfg locmap.ClientConfig, events *locmap.Events) *http.Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	events.DispatchBeforeClientConfigured(&locmap.BeforeClientConfigured{Config: &cfg})

	var limiter locmap.HostLimiter
	if cfg.RequestsPerSecond > 0 {
		limiter = NewHostLimiter(cfg.RequestsPerSecond)
	}

	// cookiejar.New only fails on a nil PublicSuffixList.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	return &http.Client{
		Timeout: cfg.Timeout,
		Jar:     jar,
		Transport: &Transport{
			Base:      http.DefaultTransport,
			UserAgent: cfg.UserAgent,
			Headers:   cfg.Headers,
			Limiter:   limiter,
		},
	}
}

// Transport adds configured headers to each request and waits for the
// per-host rate limit before sending it.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
	Headers   map[string]string

	// Limiter is optional.
	Limiter locmap.HostLimiter
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context(), req.URL.Host); err != nil {
			return nil, err
		}
	}

	req = req.Clone(req.Context())
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
