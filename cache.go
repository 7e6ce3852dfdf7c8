package ogcard

import (
	"sync"
	"time"
)

// ContentCache is an in-memory TTL snapshot of all published content, keyed
// by normalized path. It keeps card requests off the database for the common
// case; the admin invalidate endpoint drops it after authoring changes.
type ContentCache struct {
	mu      sync.RWMutex
	records map[string]ContentRecord
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return c.records != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the snapshot so the next lookup triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.records = nil
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	if c.valid() {
		return nil
	}
	records, err := c.store.ListContent()
	if err != nil {
		return err
	}
	snapshot := make(map[string]ContentRecord, len(records))
	for _, rec := range records {
		snapshot[rec.Path] = rec
	}
	c.records = snapshot
	c.fetched = time.Now()
	return nil
}

// snapshot returns the current record map after ensuring it is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *ContentCache) snapshot() (map[string]ContentRecord, error) {
	c.mu.RLock()
	if c.valid() {
		records := c.records
		c.mu.RUnlock()
		return records, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, err
	}
	return c.records, nil
}

// Lookup implements ContentSource from the snapshot.
func (c *ContentCache) Lookup(path string) (ContentRecord, error) {
	records, err := c.snapshot()
	if err != nil {
		return ContentRecord{}, err
	}
	rec, ok := records[path]
	if !ok {
		return ContentRecord{}, ErrNotFound
	}
	return rec, nil
}
