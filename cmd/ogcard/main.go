// ogcard serves social preview card images for a content site.
// Configuration comes from environment variables; see printUsage.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/eringen/ogcard"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "seed":
		if err := runSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("ogcard %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cacheTTL := 5 * time.Minute
	if v := os.Getenv("OGCARD_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("ogcard: invalid OGCARD_CACHE_TTL %q: %v", v, err)
		}
		cacheTTL = d
	}

	app := ogcard.New(ogcard.SiteConfig{
		Name:            ogcard.EnvOr("OGCARD_SITE_NAME", "Site"),
		URL:             ogcard.EnvOr("OGCARD_SITE_URL", "http://localhost:3000"),
		Description:     os.Getenv("OGCARD_SITE_DESCRIPTION"),
		Addr:            ogcard.EnvOr("OGCARD_ADDR", ":3000"),
		DatabasePath:    ogcard.EnvOr("OGCARD_DB", "data/content.db"),
		FontsDir:        os.Getenv("OGCARD_FONTS_DIR"),
		AdminPassword:   ogcard.MustEnv("OGCARD_ADMIN_PASSWORD"),
		SessionSecret:   ogcard.MustEnv("OGCARD_SESSION_SECRET"),
		CookieSecure:    os.Getenv("OGCARD_COOKIE_SECURE") == "true",
		ContentCacheTTL: cacheTTL,
	})
	defer app.Close()

	return app.Start()
}

func printUsage() {
	fmt.Println(`ogcard - An Open Graph card image service built with Go and Echo

Usage:
  ogcard <command>

Commands:
  serve         Start the card server
  seed          Load sample content into the database
  version       Print the ogcard version
  help          Show this help message

Environment:
  OGCARD_ADDR              Listen address (default :3000)
  OGCARD_DB                Content database path (default data/content.db)
  OGCARD_SITE_NAME         Footer site identity (default Site)
  OGCARD_SITE_URL          Canonical site URL
  OGCARD_FONTS_DIR         Directory with regular.ttf/bold.ttf
  OGCARD_CACHE_TTL         Content snapshot TTL (default 5m)
  OGCARD_ADMIN_PASSWORD    Admin login password (required for serve)
  OGCARD_SESSION_SECRET    Session encryption secret (required for serve)`)
}
