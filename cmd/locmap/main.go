package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locmap"
	"github.com/fwojciec/locmap/cache"
	"github.com/fwojciec/locmap/goquery"
	lochttp "github.com/fwojciec/locmap/http"
	"github.com/fwojciec/locmap/inmem"
	"github.com/fwojciec/locmap/leveldb"
	"github.com/fwojciec/locmap/locate"
	"github.com/fwojciec/locmap/postgres"
	"github.com/fwojciec/locmap/provider"
	locslog "github.com/fwojciec/locmap/slog"
	"github.com/fwojciec/locmap/sqlite"
	"github.com/fwojciec/locmap/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loaded configuration. Set by Run().
	Config *Config

	// Events receives extension-point listeners before Run() is called.
	Events *locmap.Events

	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Events: locmap.NewEvents(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("locmap"),
		kong.Description("Locate and cache XML sitemaps of configured sites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'locmap --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.Config, err = LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Use --config or LOCMAP_CONFIG to select a configuration file")
		return err
	}
	deps.Config = m.Config
	deps.Logger = NewLogger(m.Config.Log, stderr)

	if err := m.wire(ctx, deps); err != nil {
		return err
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

// wire builds the services named by the configuration.
func (m *Main) wire(ctx context.Context, deps *Dependencies) error {
	cfg := m.Config
	logger := deps.Logger

	store, err := m.openStore(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to open %s cache: %w", cfg.Cache.Backend, err)
	}
	deps.Cache = cache.NewSitemapsCache(locslog.NewLoggingStore(store, logger))

	client := lochttp.NewClient(locmap.ClientConfig{
		Timeout:           cfg.HTTP.Timeout,
		UserAgent:         cfg.HTTP.UserAgent,
		Headers:           cfg.HTTP.Headers,
		RequestsPerSecond: cfg.HTTP.Rate,
	}, m.Events)

	providers, err := NewRegistry(client).Providers(cfg.Providers)
	if err != nil {
		return err
	}

	locator, err := locate.NewLocator(deps.Cache, client, locslog.WrapProviders(providers, logger),
		locate.WithEvents(m.Events),
		locate.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	deps.Locator = locslog.NewLoggingLocator(locator, logger)
	deps.Sites = yaml.NewSiteFinder(cfg.Sites)
	return nil
}

func (m *Main) openStore(ctx context.Context, cfg CacheConfig) (locmap.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		db := sqlite.NewDB(cfg.Path)
		if err := db.Open(); err != nil {
			return nil, err
		}
		m.closers = append(m.closers, db.Close)
		return sqlite.NewStore(db), nil
	case "leveldb":
		store, err := leveldb.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, store.Close)
		return store, nil
	case "postgres":
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, db.Close)
		return postgres.NewStore(db), nil
	default:
		return inmem.NewStore(), nil
	}
}

// NewRegistry returns a registry holding all built-in providers. Providers
// that fetch documents use client.
func NewRegistry(client locmap.HTTPClient) *locate.Registry {
	r := locate.NewRegistry()
	r.Register(provider.PageTypeName, func() locmap.Provider { return provider.NewPageTypeProvider() })
	r.Register(provider.SiteName, func() locmap.Provider { return provider.NewSiteProvider() })
	r.Register(lochttp.RobotsTxtName, func() locmap.Provider { return lochttp.NewRobotsTxtProvider(client) })
	r.Register(goquery.LinkTagName, func() locmap.Provider { return goquery.NewLinkTagProvider(client) })
	r.Register(provider.DefaultName, func() locmap.Provider { return provider.NewDefaultProvider() })
	return r
}
