// Package xref persists the many-to-one mapping from a source post to
// the parody posts matched against it. The mapping only ever grows;
// stale parody ids are filtered at render time, not here.
package xref

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Store is the durable cross-reference store. Safe for concurrent use;
// SQLite serializes writes on the same key.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path and applies the
// schema. Pass ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open xref store: %w", err)
	}
	if path == ":memory:" {
		// Each pool connection would otherwise get its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply xref schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Merge records that parodyID was matched to sourceID. Merging an
// already-present pair is a no-op; merge is idempotent and commutative,
// so concurrent callers cannot corrupt an entry.
func (s *Store) Merge(sourceID, parodyID string) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO xref (source_id, parody_id) VALUES (?, ?)`,
		sourceID, parodyID,
	)
	if err != nil {
		return fmt.Errorf("merge xref %s<-%s: %w", sourceID, parodyID, err)
	}
	return nil
}

// Get returns the parody ids recorded for sourceID in insertion order,
// or an empty slice when the source post has no entry.
func (s *Store) Get(sourceID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT parody_id FROM xref WHERE source_id = ? ORDER BY rowid`,
		sourceID,
	)
	if err != nil {
		return nil, fmt.Errorf("get xref %s: %w", sourceID, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan xref row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate xref rows: %w", err)
	}
	return ids, nil
}

// Sources returns every source id with at least one entry.
func (s *Store) Sources() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT source_id FROM xref ORDER BY source_id`)
	if err != nil {
		return nil, fmt.Errorf("list xref sources: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan xref row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate xref rows: %w", err)
	}
	return ids, nil
}
