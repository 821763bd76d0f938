package locmap

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// SitemapsLocated is dispatched after providers located sitemaps and before
// they are cached. Listeners may replace Sitemaps.
type SitemapsLocated struct {
	Site     *Site
	Language *Language
	Sitemaps []*Sitemap
}

// SitemapValidated is dispatched after a sitemap URL was checked. Response
// is nil if the request failed. Listeners may override Valid.
type SitemapValidated struct {
	Sitemap  *Sitemap
	Response *http.Response
	Valid    bool
}

// ClientConfig holds the options used to build the HTTP client.
type ClientConfig struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string

	// RequestsPerSecond limits requests per host. Zero disables limiting.
	RequestsPerSecond float64
}

// BeforeClientConfigured is dispatched before the HTTP client is built.
// Listeners may modify Config.
type BeforeClientConfigured struct {
	Config *ClientConfig
}

// Events holds listeners for extension-point events. Listeners run
// synchronously in registration order. A nil *Events dispatches nothing.
type Events struct {
	mu        sync.RWMutex
	located   []func(context.Context, *SitemapsLocated)
	validated []func(context.Context, *SitemapValidated)
	client    []func(*BeforeClientConfigured)
}

// NewEvents returns an empty listener registry.
func NewEvents() *Events {
	return &Events{}
}

// OnSitemapsLocated registers a listener for SitemapsLocated.
func (e *Events) OnSitemapsLocated(fn func(context.Context, *SitemapsLocated)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.located = append(e.located, fn)
}

// OnSitemapValidated registers a listener for SitemapValidated.
func (e *Events) OnSitemapValidated(fn func(context.Context, *SitemapValidated)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.validated = append(e.validated, fn)
}

// OnBeforeClientConfigured registers a listener for BeforeClientConfigured.
func (e *Events) OnBeforeClientConfigured(fn func(*BeforeClientConfigured)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.client = append(e.client, fn)
}

// DispatchSitemapsLocated calls all SitemapsLocated listeners.
func (e *Events) DispatchSitemapsLocated(ctx context.Context, event *SitemapsLocated) {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := e.located
	e.mu.RUnlock()
	for _, fn := range listeners {
		fn(ctx, event)
	}
}

// DispatchSitemapValidated calls all SitemapValidated listeners.
func (e *Events) DispatchSitemapValidated(ctx context.Context, event *SitemapValidated) {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := e.validated
	e.mu.RUnlock()
	for _, fn := range listeners {
		fn(ctx, event)
	}
}

// DispatchBeforeClientConfigured calls all BeforeClientConfigured listeners.
func (e *Events) DispatchBeforeClientConfigured(event *BeforeClientConfigured) {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := e.client
	e.mu.RUnlock()
	for _, fn := range listeners {
		fn(event)
	}
}
