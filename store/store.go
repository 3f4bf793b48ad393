// Package store persists named document snapshots in SQLite.
//
// Each document name maps to exactly one row holding the latest snapshot
// body and a revision id that changes on every save. The database is opened
// with WAL journaling and a busy timeout so that an editor and a background
// autosaver can share it safely.
//
// Usage:
//
//	st, err := store.Open("easel.db")
//	if err != nil { ... }
//	defer st.Close()
//
//	ed := easel.NewEditor(easel.WithStore(st))
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // database/sql driver

	"github.com/easelgfx/easel"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	name       TEXT PRIMARY KEY,
	revision   TEXT NOT NULL,
	body       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// ErrNotFound is returned by Load when no snapshot is stored under the
// given name.
var ErrNotFound = errors.New("store: snapshot not found")

// Store is a SQLite-backed easel.SnapshotStore.
type Store struct {
	db *sql.DB
}

var _ easel.SnapshotStore = (*Store)(nil)

type config struct {
	busyTimeout int
	synchronous string
}

// Option customises Open behaviour.
type Option func(*config)

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds. Default: 10000.
func WithBusyTimeout(ms int) Option {
	return func(c *config) { c.busyTimeout = ms }
}

// WithSynchronous sets PRAGMA synchronous. Default: "NORMAL".
func WithSynchronous(mode string) Option {
	return func(c *config) { c.synchronous = mode }
}

// Open opens (creating if necessary) the snapshot database at path and
// applies the WAL/busy-timeout pragmas and the schema.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := config{busyTimeout: 10_000, synchronous: "NORMAL"}
	for _, o := range opts {
		o(&cfg)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout),
		fmt.Sprintf("PRAGMA synchronous = %s", cfg.synchronous),
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %q: %w", path, err)
	}

	easel.Logger().Info("store: opened", "path", path)
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the snapshot under name with a fresh revision id.
func (s *Store) Save(ctx context.Context, name string, snap easel.Snapshot) error {
	rev := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (name, revision, body, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			revision = excluded.revision,
			body = excluded.body,
			updated_at = excluded.updated_at`,
		name, rev, string(snap), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}
	easel.Logger().Info("store: saved", "name", name, "revision", rev)
	return nil
}

// Load returns the snapshot stored under name, or ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (easel.Snapshot, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM snapshots WHERE name = ?`, name,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("load snapshot %q: %w", name, err)
	}
	return easel.Snapshot(body), nil
}

// Remove deletes the snapshot stored under name. Removing a name that was
// never saved is not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("remove snapshot %q: %w", name, err)
	}
	return nil
}

// Document describes a stored snapshot without its body.
type Document struct {
	Name      string
	Revision  string
	UpdatedAt time.Time
}

// List returns all stored documents ordered by name.
func (s *Store) List(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, revision, updated_at FROM snapshots ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.Name, &d.Revision, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
