package ogcard

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a path has no published content behind it,
// or when the record behind it is unusable (blank title). The HTTP layer
// translates it to a 404; nothing retries it.
var ErrNotFound = errors.New("ogcard: content not found")

// ContentSource supplies content records by normalized logical path.
// Store and ContentCache both satisfy it; tests substitute their own.
type ContentSource interface {
	Lookup(path string) (ContentRecord, error)
}

// NormalizePath canonicalizes a raw request path: exactly one leading slash,
// repeated slashes collapsed, a single trailing slash stripped (the root "/"
// keeps its slash). Any "." or ".." segment makes the whole path invalid and
// yields ErrNotFound — traversal is rejected, not resolved.
func NormalizePath(raw string) (string, error) {
	var segments []string
	for _, seg := range strings.Split(raw, "/") {
		switch seg {
		case "":
			continue
		case ".", "..":
			return "", ErrNotFound
		}
		segments = append(segments, seg)
	}
	if len(segments) == 0 {
		return "/", nil
	}
	return "/" + strings.Join(segments, "/"), nil
}

// Resolver turns raw request paths into render-ready Metadata.
type Resolver struct {
	source ContentSource
}

// NewResolver creates a Resolver backed by the given content source.
func NewResolver(source ContentSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve normalizes rawPath, looks it up, and flattens the record into
// Metadata. Missing content and blank titles both come back as ErrNotFound;
// any other error is a store failure and propagates as-is.
func (r *Resolver) Resolve(rawPath string) (Metadata, error) {
	p, err := NormalizePath(rawPath)
	if err != nil {
		return Metadata{}, err
	}
	rec, err := r.source.Lookup(p)
	if err != nil {
		return Metadata{}, err
	}
	if strings.TrimSpace(rec.Title) == "" {
		return Metadata{}, ErrNotFound
	}
	// Kind-specific fields (course tags, timestamps) are not part of the
	// image contract and are dropped here. Color tokens pass through
	// unvalidated: bad tokens fall back to theme defaults in the renderer.
	return Metadata{
		Title:                rec.Title,
		Description:          rec.Description,
		AccentColor:          rec.AccentColor,
		SecondaryAccentColor: rec.SecondaryAccentColor,
		TextColor:            rec.TextColor,
		BackgroundColor:      rec.BackgroundColor,
		HideFooter:           rec.HideFooter,
	}, nil
}
