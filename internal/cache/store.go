package cache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

// Entry is one cached response, keyed by (generation, url).
type Entry struct {
	ID          string
	Generation  string
	URL         string
	Status      int
	ContentType string
	Body        []byte
	FetchedAt   time.Time
}

// Store persists cache entries in SQLite.
//
// Writes are upserts: refreshing a URL within a generation replaces the stored
// response wholesale.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over the given database connection.
//
// The cache_entries table must exist (shared.RunMigrations).
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get retrieves the cached response for url within generation.
//
// Returns an error wrapping [shared.ErrCacheMiss] when no entry exists.
func (s *Store) Get(generation, url string) (*Entry, error) {
	query := `
		SELECT id, generation, url, status, content_type, body, fetched_at
		FROM cache_entries
		WHERE generation = ? AND url = ?
	`

	var e Entry
	err := s.db.QueryRow(query, generation, url).Scan(
		&e.ID, &e.Generation, &e.URL, &e.Status, &e.ContentType, &e.Body, &e.FetchedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrCacheMiss, url)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cache entry: %w", err)
	}

	return &e, nil
}

// Put inserts or replaces the cached response for (entry.Generation, entry.URL).
func (s *Store) Put(entry *Entry) error {
	if entry.ID == "" {
		entry.ID = shared.GenerateID()
	}
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now()
	}

	query := `
		INSERT INTO cache_entries (id, generation, url, status, content_type, body, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (generation, url) DO UPDATE SET
			status = excluded.status,
			content_type = excluded.content_type,
			body = excluded.body,
			fetched_at = excluded.fetched_at
	`

	_, err := s.db.Exec(query,
		entry.ID, entry.Generation, entry.URL, entry.Status, entry.ContentType, entry.Body, entry.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}

	return nil
}

// Generations lists every generation tag present in the store.
func (s *Store) Generations() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT generation FROM cache_entries ORDER BY generation")
	if err != nil {
		return nil, fmt.Errorf("failed to query generations: %w", err)
	}
	defer rows.Close()

	var generations []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		generations = append(generations, g)
	}

	return generations, rows.Err()
}

// DeleteGeneration removes every entry belonging to the given generation.
func (s *Store) DeleteGeneration(generation string) error {
	if _, err := s.db.Exec("DELETE FROM cache_entries WHERE generation = ?", generation); err != nil {
		return fmt.Errorf("failed to delete generation %s: %w", generation, err)
	}

	return nil
}

// Count returns the number of entries in the given generation.
func (s *Store) Count(generation string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM cache_entries WHERE generation = ?", generation).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}

	return n, nil
}
