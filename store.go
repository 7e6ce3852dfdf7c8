package ogcard

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding every content record the site
// publishes: posts, courses, and generic pages share one table with a kind
// discriminator column.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and bootstraps the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL allows concurrent readers while the authoring tools write; the
	// busy timeout makes writers wait instead of failing with SQLITE_BUSY.
	// synchronous=NORMAL is safe under WAL and skips the per-transaction
	// fsync; the larger cache and mmap cut disk I/O on the lookup path.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS content (
    path TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    accent_color TEXT NOT NULL DEFAULT '',
    secondary_accent_color TEXT NOT NULL DEFAULT '',
    text_color TEXT NOT NULL DEFAULT '',
    background_color TEXT NOT NULL DEFAULT '',
    hide_footer INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    modified TEXT NOT NULL DEFAULT '',
    published INTEGER NOT NULL DEFAULT 1
);
`)
	return err
}

const contentColumns = `path, kind, title, description, accent_color, secondary_accent_color, text_color, background_color, hide_footer, tags, date, modified, published`

func scanContent(scan func(dest ...any) error) (ContentRecord, error) {
	var rec ContentRecord
	var kind, tags string
	var hideFooter, published int
	err := scan(&rec.Path, &kind, &rec.Title, &rec.Description,
		&rec.AccentColor, &rec.SecondaryAccentColor, &rec.TextColor, &rec.BackgroundColor,
		&hideFooter, &tags, &rec.Date, &rec.Modified, &published)
	if err != nil {
		return ContentRecord{}, err
	}
	rec.Kind = Kind(kind)
	rec.Tags = ParseTags(tags)
	rec.HideFooter = hideFooter == 1
	rec.Published = published == 1
	return rec, nil
}

// GetContent returns the published record at path. Missing rows and
// unpublished rows both come back as ErrNotFound.
func (s *Store) GetContent(path string) (ContentRecord, error) {
	row := s.db.QueryRow(`SELECT `+contentColumns+` FROM content WHERE path = ? AND published = 1`, path)
	rec, err := scanContent(row.Scan)
	if err == sql.ErrNoRows {
		return ContentRecord{}, ErrNotFound
	}
	return rec, err
}

// Lookup implements ContentSource directly against the database, for callers
// that skip the snapshot cache.
func (s *Store) Lookup(path string) (ContentRecord, error) {
	return s.GetContent(path)
}

// ListContent returns all published records ordered by path.
func (s *Store) ListContent() ([]ContentRecord, error) {
	return s.list(`SELECT ` + contentColumns + ` FROM content WHERE published = 1 ORDER BY path`)
}

// ListAllContent returns every record including unpublished ones.
func (s *Store) ListAllContent() ([]ContentRecord, error) {
	return s.list(`SELECT ` + contentColumns + ` FROM content ORDER BY path`)
}

func (s *Store) list(query string) ([]ContentRecord, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ContentRecord
	for rows.Next() {
		rec, err := scanContent(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SaveContent upserts a content record. Tags are normalized to lowercase and
// stored comma-delimited with sentinel commas so substring matches stay exact.
func (s *Store) SaveContent(rec ContentRecord) error {
	normalizedTags := make([]string, len(rec.Tags))
	for i, t := range rec.Tags {
		normalizedTags[i] = strings.ToLower(strings.TrimSpace(t))
	}
	tagString := ""
	if len(normalizedTags) > 0 {
		tagString = "," + strings.Join(normalizedTags, ",") + ","
	}
	hideFooter := 0
	if rec.HideFooter {
		hideFooter = 1
	}
	published := 0
	if rec.Published {
		published = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO content (`+contentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Path, string(rec.Kind), rec.Title, rec.Description,
		rec.AccentColor, rec.SecondaryAccentColor, rec.TextColor, rec.BackgroundColor,
		hideFooter, tagString, rec.Date, rec.Modified, published)
	return err
}

// DeleteContent removes the record at path.
func (s *Store) DeleteContent(path string) error {
	_, err := s.db.Exec(`DELETE FROM content WHERE path = ?`, path)
	return err
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
