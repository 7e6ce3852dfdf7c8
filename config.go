package ogcard

import "time"

// SiteConfig holds all configuration for an ogcard service.
type SiteConfig struct {
	Name        string // Site identity shown in the card footer (default "Site")
	URL         string // Canonical site URL (default "http://localhost:3000")
	Description string // Site description, available to custom views

	Addr         string // Listen address (default ":3000")
	DatabasePath string // Content SQLite path (default "data/content.db")
	FontsDir     string // Directory with regular.ttf/bold.ttf; empty uses embedded fonts

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	ContentCacheTTL time.Duration // Content snapshot TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Site"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/content.db"
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithContentSource replaces the SQLite-backed content store with a custom
// source. When set, no database is opened and no snapshot cache is created.
func WithContentSource(src ContentSource) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithViews overrides the built-in templ components.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}
