// ABOUTME: HTTP server for the Vancouver Minor Baseball site behind a single chi router.
// ABOUTME: Registers dedicated pages plus one placeholder route per navigation registry slug.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vmbexpos/vmb/content"
	"github.com/vmbexpos/vmb/nav"
	"github.com/vmbexpos/vmb/signup"
)

// Slugs with dedicated handlers; every other registry slug gets a placeholder page.
const (
	programsSlug     = "programs"
	registrationSlug = "registration"
)

// reservedPaths are top-level path segments owned by system routes. A
// navigation slug may not claim them.
var reservedPaths = []string{"health", "metrics", "sitemap.xml", "static", "updates"}

// ErrInvalidSlug is returned by NewServer when a registry slug cannot be
// served as a page route.
var ErrInvalidSlug = errors.New("invalid page slug")

// SignupStore records email-update subscriptions.
type SignupStore interface {
	Subscribe(ctx context.Context, email, division string) (*signup.Subscription, error)
	Unsubscribe(ctx context.Context, token string) error
}

// Server serves the site.
type Server struct {
	site      *content.Site
	registry  *nav.Registry
	templates *TemplateEngine
	signups   SignupStore
	metrics   *siteMetrics
	router    chi.Router
	addr      string
	baseURL   string
	imageDir  string
}

// ServerConfig holds the configuration for the web server.
type ServerConfig struct {
	Addr     string        // listen address (default: "127.0.0.1:8000")
	Site     *content.Site // required
	Registry *nav.Registry // built from Site.Navigation when nil
	Signups  SignupStore   // optional; email updates are disabled when nil
	BaseURL  string        // absolute origin for sitemap links; request host when empty
	ImageDir string        // optional directory served at /static/images/
}

// NewServer creates a Server. The registry is fixed for the server's
// lifetime; routes are derived from it once here.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Site == nil {
		return nil, errors.New("Site must not be nil")
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8000"
	}
	if cfg.Registry == nil {
		cfg.Registry = cfg.Site.Registry()
	}
	for _, slug := range cfg.Registry.Slugs() {
		if err := checkRoutable(slug); err != nil {
			return nil, err
		}
	}

	tmpl, err := NewTemplateEngine(content.NewMarkdown())
	if err != nil {
		return nil, fmt.Errorf("initializing templates: %w", err)
	}

	s := &Server{
		site:      cfg.Site,
		registry:  cfg.Registry,
		templates: tmpl,
		signups:   cfg.Signups,
		metrics:   newSiteMetrics(),
		addr:      cfg.Addr,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		imageDir:  cfg.ImageDir,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(webRequestLogger)
	r.Use(s.metrics.middleware)
	r.Use(s.appendSlash)
	r.Use(middleware.GetHead)

	r.Get("/", s.handleHome)
	r.Get("/"+programsSlug+"/", s.handlePrograms)
	r.Get("/"+registrationSlug+"/", s.handleRegistration)

	for _, slug := range s.registry.Slugs() {
		if HasDedicatedHandler(slug) {
			continue
		}
		r.Get(nav.Route(slug), s.placeholderHandler(slug))
	}

	r.Get("/health", s.handleHealth)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Handle("/metrics", s.metrics.handler())

	r.Post("/updates", s.handleSubscribe)
	r.Get("/updates/unsubscribe/{token}", s.handleUnsubscribe)

	staticFS, err := fs.Sub(StaticFS, "static")
	if err != nil {
		log.Printf("WARNING: failed to create static sub-FS: %v", err)
	} else {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}
	if s.imageDir != "" {
		r.Handle("/static/images/*", http.StripPrefix("/static/images/", http.FileServer(http.Dir(s.imageDir))))
	}

	r.NotFound(s.handleNotFound)

	return r
}

// checkRoutable rejects slugs containing chi pattern syntax and slugs that
// would shadow a system route.
func checkRoutable(slug string) error {
	if strings.ContainsAny(slug, "{}*") {
		return fmt.Errorf("%w: %q contains route pattern characters", ErrInvalidSlug, slug)
	}
	for _, p := range reservedPaths {
		if slug == p || strings.HasPrefix(slug, p+"/") {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidSlug, slug)
		}
	}
	return nil
}

// HasDedicatedHandler reports whether slug is served by its own page handler
// rather than the generic placeholder.
func HasDedicatedHandler(slug string) bool {
	switch slug {
	case nav.HomeSlug, programsSlug, registrationSlug:
		return true
	}
	return false
}

// appendSlash redirects GET and HEAD requests for a registered page that are
// missing the trailing slash.
func (s *Server) appendSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if (r.Method == http.MethodGet || r.Method == http.MethodHead) &&
			p != "" && p[len(p)-1] != '/' {
			slug := nav.NormalizeSlug(p)
			if slug != nav.HomeSlug && s.registry.Contains(slug) {
				target := nav.Route(slug)
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns a JSON health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"pages":  s.registry.Len(),
	})
}
