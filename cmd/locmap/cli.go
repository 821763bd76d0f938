package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/locmap"
	"github.com/fwojciec/locmap/cache"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *Config
	Logger  *slog.Logger
	Sites   locmap.SiteFinder
	Locator locmap.SitemapLocator
	Cache   *cache.SitemapsCache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" type:"path" env:"LOCMAP_CONFIG" help:"Path to configuration file (yaml, toml or json)"`

	Locate LocateCmd `cmd:"" help:"Locate XML sitemaps of a site"`
	Sites  SitesCmd  `cmd:"" help:"List configured sites and their languages"`
	Cache  CacheCmd  `cmd:"" help:"Manage the sitemap cache"`
	Serve  ServeCmd  `cmd:"" help:"Serve the sitemap API over HTTP"`
}

// LocateCmd is the "locate" subcommand.
type LocateCmd struct {
	Site     string `arg:"" help:"Site identifier or root page ID"`
	Language string `short:"l" help:"Site language ID (defaults to the default language)"`
	All      bool   `short:"a" help:"Locate sitemaps of all enabled languages"`
	Format   string `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
	JSON     bool   `short:"j" help:"Shorthand for --format=json"`
	Validate bool   `help:"Check that each sitemap is reachable"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove cached sitemaps of a site"`
	Flush CacheFlushCmd `cmd:"" help:"Remove all cached sitemaps"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct {
	Site     string `arg:"" help:"Site identifier or root page ID"`
	Language string `short:"l" help:"Only clear this site language ID"`
}

// CacheFlushCmd is the "cache flush" subcommand.
type CacheFlushCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides server.addr)"`
}
