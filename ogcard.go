// Package ogcard is an on-demand social-preview ("Open Graph") card image
// service built with Go and Echo. Given a logical content path it resolves
// presentation metadata from a content store, fingerprints it for
// cache-busting, renders a fixed 1200×630 JPEG card, and serves it with
// cache headers matching the URL shape: fingerprinted URLs cache forever,
// plain URLs must revalidate.
//
// ogcard is embeddable: the surrounding site constructs an App, optionally
// overrides views or the content source, and calls Start.
package ogcard

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/ogcard/render"
)

// App is the central ogcard application. It wires together the content
// store, snapshot cache, resolver, fonts, handlers, and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ContentCache
	Views  ViewFuncs

	source       ContentSource
	resolver     *Resolver
	fonts        *render.FontSet
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
}

// New creates an ogcard App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}
	a.Views.setDefaults()

	return a
}

// initialize wires the store, cache, resolver, fonts, middleware, and
// routes. It is split from Start so tests can drive the handlers through
// Echo without binding a listener.
func (a *App) initialize() error {
	if a.source == nil {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("ogcard: init store: %w", err)
		}
		a.Store = store
		a.Cache = NewContentCache(store, a.Config.ContentCacheTTL)
		a.source = a.Cache
	}
	a.resolver = NewResolver(a.source)

	// Fonts are parsed once here and shared read-only by every render.
	fonts, err := render.LoadFonts(a.Config.FontsDir)
	if err != nil {
		return fmt.Errorf("ogcard: load fonts: %w", err)
	}
	a.fonts = fonts

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and runs the server until it is shut down.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("ogcard: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("ogcard: SessionSecret is required")
	}

	if err := a.initialize(); err != nil {
		return err
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Card routes
	e.GET("/og/*", a.handleCard)
	e.GET("/og-url/*", a.handleCardURL)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/invalidate/", a.handleAdminInvalidate)
	e.GET("/admin/preview/", a.handleAdminPreview)
	e.GET("/admin/preview.svg", a.handleAdminPreviewSVG)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
