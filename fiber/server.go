// Package fiber exposes sitemap lookups over HTTP.
package fiber

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/fwojciec/locmap"
	"github.com/fwojciec/locmap/locate"
	"github.com/gofiber/fiber/v2"
)

// DefaultAddr is the listen address used if none is configured.
const DefaultAddr = ":8080"

// SiteCache removes all cache entries of a site.
type SiteCache interface {
	RemoveSite(ctx context.Context, site *locmap.Site) error
}

// Server serves the sitemap API.
type Server struct {
	app *fiber.App

	Addr string

	Sites   locmap.SiteFinder
	Locator locmap.SitemapLocator
	Cache   SiteCache
	Logger  *slog.Logger
}

// NewServer creates a Server and registers its routes. Services must be set
// before the server handles requests.
func NewServer() *Server {
	s := &Server{
		Addr:   DefaultAddr,
		Logger: slog.Default(),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "locmap",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Get("/sites", s.handleSites)
	s.app.Get("/sites/:site/sitemaps", s.handleSitemaps)
	s.app.Get("/sites/:site/sitemaps/all", s.handleAllSitemaps)
	s.app.Delete("/sites/:site/cache", s.handleClearCache)

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// ListenAndServe serves requests until ctx is canceled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.app.Listen(s.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.app.ShutdownWithContext(shutdownCtx)
}

func (s *Server) handleSites(c *fiber.Ctx) error {
	sites, err := s.Sites.FindSites(c.UserContext())
	if err != nil {
		return err
	}
	if sites == nil {
		sites = []*locmap.Site{}
	}
	return c.JSON(sites)
}

func (s *Server) handleSitemaps(c *fiber.Ctx) error {
	site, err := locmap.FindSite(c.UserContext(), s.Sites, c.Params("site"))
	if err != nil {
		return err
	}

	opts := locate.ReportOptions{Validate: c.QueryBool("validate", false)}
	if v := c.Query("language"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return locmap.Errorf(locmap.EINVALID, "invalid language id %q", v)
		}
		if opts.Language, err = site.LanguageByID(id); err != nil {
			return err
		}
	}

	report, err := locate.BuildReport(c.UserContext(), s.Locator, site, opts)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

func (s *Server) handleAllSitemaps(c *fiber.Ctx) error {
	site, err := locmap.FindSite(c.UserContext(), s.Sites, c.Params("site"))
	if err != nil {
		return err
	}

	report, err := locate.BuildReport(c.UserContext(), s.Locator, site, locate.ReportOptions{
		All:      true,
		Validate: c.QueryBool("validate", false),
	})
	if err != nil {
		return err
	}
	return c.JSON(report)
}

func (s *Server) handleClearCache(c *fiber.Ctx) error {
	site, err := locmap.FindSite(c.UserContext(), s.Sites, c.Params("site"))
	if err != nil {
		return err
	}
	if err := s.Cache.RemoveSite(c.UserContext(), site); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// errorResponse is the body of failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// handleError maps application error codes to HTTP status codes. Internal
// errors are logged and their details hidden.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorResponse{Error: fe.Message})
	}

	code := locmap.ErrorCode(err)
	if code == locmap.EINTERNAL {
		s.Logger.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"err", err,
		)
	}
	return c.Status(statusCode(code)).JSON(errorResponse{Error: locmap.ErrorMessage(err)})
}

var codes = map[string]int{
	locmap.ECONFLICT: fiber.StatusConflict,
	locmap.EINVALID:  fiber.StatusBadRequest,
	locmap.ENOTFOUND: fiber.StatusNotFound,
}

func statusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return fiber.StatusInternalServerError
}
