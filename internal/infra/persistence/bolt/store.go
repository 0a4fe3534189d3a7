// Package bolt persists metadata documents to a bbolt file, one top-level
// bolt bucket per document and one key per snapshot bucket.
package bolt

import (
	"context"
	"fmt"
	"omemeta/internal/infra/persistence/memory"
	"omemeta/pkg/domain"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

var _ domain.PersistentStore = (*Store)(nil)

// Store keeps the document in memory and rewrites its bolt bucket on Commit.
type Store struct {
	*memory.Store
	db       *bbolt.DB
	mu       sync.Mutex
	document string
}

// NewStore opens the bolt file at path and hydrates the document.
func NewStore(path, document string, opts ...memory.Option) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("bolt: path is required")
	}
	if document == "" {
		document = memory.DefaultDocument
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	s := &Store{Store: memory.NewStore(opts...), db: db, document: document}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	buckets := make(map[string][]byte)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(s.document))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			buckets[string(k)] = append([]byte(nil), v...)
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("load %s: %w", s.document, err)
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

// Commit drops and rewrites the document bucket in one bolt transaction.
func (s *Store) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buckets, err := s.ExportState().Buckets()
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		name := []byte(s.document)
		if tx.Bucket(name) != nil {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("reset %s: %w", s.document, err)
			}
		}
		b, err := tx.CreateBucket(name)
		if err != nil {
			return fmt.Errorf("create %s: %w", s.document, err)
		}
		for _, bucket := range memory.BucketNames(buckets) {
			if err := b.Put([]byte(bucket), buckets[bucket]); err != nil {
				return fmt.Errorf("put %s: %w", bucket, err)
			}
		}
		return nil
	})
}

// Close closes the bolt file.
func (s *Store) Close() error { return s.db.Close() }

// Documents lists the documents stored in the file.
func (s *Store) Documents() ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			out = append(out, string(name))
			return nil
		})
	})
	return out, err
}
