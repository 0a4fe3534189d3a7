// Package postgres provides a Postgres-backed persistent store that mirrors
// the in-memory semantics and snapshots documents into a state table.
// Payloads are stored as BYTEA because JSONB rejects the \u0000 escape that
// text values may carry.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"omemeta/internal/infra/persistence/memory"
	"omemeta/pkg/domain"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.PersistentStore = (*Store)(nil)

const (
	defaultDriver = "pgx"
	// DefaultDSN is used when no DSN is configured.
	DefaultDSN = "postgres://localhost/omemeta?sslmode=disable"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Store persists documents to Postgres while serving reads and writes from
// the in-memory implementation.
type Store struct {
	*memory.Store
	db       *sql.DB
	mu       sync.Mutex
	document string
}

// NewStore opens a Postgres-backed store using dsn (falls back to
// DefaultDSN), ensures the state table exists and hydrates the document.
func NewStore(ctx context.Context, dsn, document string, opts ...memory.Option) (*Store, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	if document == "" {
		document = memory.DefaultDocument
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := ensureStateTable(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	snap, err := loadSnapshot(ctx, db, document)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	mem := memory.NewStore(opts...)
	if err := mem.ImportState(snap); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{Store: mem, db: db, document: document}, nil
}

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Document returns the storage partition name.
func (s *Store) Document() string { return s.document }

func ensureStateTable(ctx context.Context, db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS state (
		document TEXT NOT NULL,
		bucket TEXT NOT NULL,
		payload BYTEA NOT NULL,
		PRIMARY KEY (document, bucket)
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure state table: %w", err)
	}
	return nil
}

func loadSnapshot(ctx context.Context, db *sql.DB, document string) (memory.Snapshot, error) {
	rows, err := db.QueryContext(ctx, `SELECT bucket, payload FROM state WHERE document = $1`, document)
	if err != nil {
		return memory.Snapshot{}, fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	buckets := make(map[string][]byte)
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return memory.Snapshot{}, fmt.Errorf("scan state: %w", err)
		}
		buckets[bucket] = payload
	}
	if err := rows.Err(); err != nil {
		return memory.Snapshot{}, fmt.Errorf("iterate state: %w", err)
	}
	return memory.SnapshotFromBuckets(buckets)
}

// Commit replaces the document's rows with the current state in one
// transaction.
func (s *Store) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buckets, err := s.ExportState().Buckets()
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM state WHERE document = $1`, s.document); err != nil {
		return fmt.Errorf("clear %s: %w", s.document, err)
	}
	for _, bucket := range memory.BucketNames(buckets) {
		if _, err := tx.ExecContext(ctx, `INSERT INTO state(document,bucket,payload) VALUES($1,$2,$3)`, s.document, bucket, buckets[bucket]); err != nil {
			return fmt.Errorf("insert %s: %w", bucket, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
