// Package sqlite persists metadata documents to a single SQLite table as JSON
// buckets, one row per entity kind.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"omemeta/internal/infra/persistence/memory"
	"omemeta/pkg/domain"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var _ domain.PersistentStore = (*Store)(nil)

// DefaultPath is used when no database path is configured.
const DefaultPath = "omemeta.db"

// Store keeps the document in memory and writes a full snapshot on Commit.
type Store struct {
	*memory.Store
	db       *sql.DB
	mu       sync.Mutex
	path     string
	document string
}

// NewStore opens (or creates) the database at path and hydrates the named
// document from it. An empty document selects memory.DefaultDocument.
func NewStore(path, document string, opts ...memory.Option) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if document == "" {
		document = memory.DefaultDocument
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		document TEXT NOT NULL,
		bucket TEXT NOT NULL,
		payload BLOB NOT NULL,
		PRIMARY KEY (document, bucket)
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	s := &Store{Store: memory.NewStore(opts...), db: db, path: path, document: document}
	if err := s.load(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state WHERE document = ?`, s.document)
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()
	buckets := make(map[string][]byte)
	for rows.Next() {
		var (
			bucket  string
			payload []byte
		)
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		buckets[bucket] = payload
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate state: %w", err)
	}
	if len(buckets) == 0 {
		return nil
	}
	snap, err := memory.SnapshotFromBuckets(buckets)
	if err != nil {
		return err
	}
	return s.ImportState(snap)
}

// Commit replaces the document's rows with the current state in one
// transaction.
func (s *Store) Commit(ctx context.Context) (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buckets, err := s.ExportState().Buckets()
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM state WHERE document = ?`, s.document); err != nil {
		return fmt.Errorf("clear %s: %w", s.document, err)
	}
	for _, bucket := range memory.BucketNames(buckets) {
		if _, err := tx.ExecContext(ctx, `INSERT INTO state(document,bucket,payload) VALUES(?,?,?) ON CONFLICT(document,bucket) DO UPDATE SET payload=excluded.payload`, s.document, bucket, buckets[bucket]); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	return tx.Commit()
}

// Close releases the database handle. Uncommitted changes are lost.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

// Document returns the storage partition name.
func (s *Store) Document() string { return s.document }
