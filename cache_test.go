package ogcard

import (
	"errors"
	"testing"
	"time"
)

func TestContentCacheLookup(t *testing.T) {
	s := setupTestStore(t)
	rec := ContentRecord{Path: "/posts/foo", Kind: KindPost, Title: "Foo", Published: true}
	if err := s.SaveContent(rec); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	cache := NewContentCache(s, time.Minute)
	got, err := cache.Lookup("/posts/foo")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got.Title != "Foo" {
		t.Errorf("Title = %q, want Foo", got.Title)
	}
	if _, err := cache.Lookup("/missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing path: error = %v, want ErrNotFound", err)
	}
}

func TestContentCacheInvalidate(t *testing.T) {
	s := setupTestStore(t)
	cache := NewContentCache(s, time.Hour)

	// Warm the snapshot while the store is empty.
	if _, err := cache.Lookup("/posts/new"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	rec := ContentRecord{Path: "/posts/new", Kind: KindPost, Title: "New", Published: true}
	if err := s.SaveContent(rec); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	// The long TTL keeps serving the stale snapshot until invalidated.
	if _, err := cache.Lookup("/posts/new"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("snapshot reloaded before Invalidate: %v", err)
	}

	cache.Invalidate()
	got, err := cache.Lookup("/posts/new")
	if err != nil {
		t.Fatalf("Lookup after Invalidate failed: %v", err)
	}
	if got.Title != "New" {
		t.Errorf("Title = %q, want New", got.Title)
	}
}
