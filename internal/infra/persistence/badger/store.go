// Package badger persists metadata documents to a BadgerDB directory. Each
// bucket lives under the key doc/<document>/<bucket>.
package badger

import (
	"bytes"
	"context"
	"fmt"
	"omemeta/internal/infra/persistence/memory"
	"omemeta/pkg/domain"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

var _ domain.PersistentStore = (*Store)(nil)

// Config selects the database directory and document.
type Config struct {
	Path     string
	Document string
	// InMemory runs badger without touching disk; Path is ignored.
	InMemory bool
	Logger   *logrus.Logger
}

// Store keeps the document in memory and writes all buckets in one badger
// transaction on Commit.
type Store struct {
	*memory.Store
	db       *badger.DB
	mu       sync.Mutex
	document string
	log      *logrus.Logger
}

// NewStore opens the database and hydrates the document.
func NewStore(cfg Config, opts ...memory.Option) (*Store, error) {
	if cfg.Document == "" {
		cfg.Document = memory.DefaultDocument
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if !cfg.InMemory && cfg.Path == "" {
		return nil, fmt.Errorf("badger: path is required")
	}
	bopts := badger.DefaultOptions(cfg.Path).WithInMemory(cfg.InMemory)
	bopts.Logger = nil
	bopts.SyncWrites = true
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	s := &Store{Store: memory.NewStore(opts...), db: db, document: cfg.Document, log: cfg.Logger}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) prefix() []byte { return []byte("doc/" + s.document + "/") }

func (s *Store) load() error {
	buckets := make(map[string][]byte)
	prefix := s.prefix()
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			name := strings.TrimPrefix(string(item.Key()), string(prefix))
			payload, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			buckets[name] = payload
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(buckets) == 0 {
		return nil
	}
	snap, err := memory.SnapshotFromBuckets(buckets)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"document": s.document, "buckets": len(buckets)}).Debug("badger document loaded")
	return s.ImportState(snap)
}

// Commit replaces every key of the document in a single transaction.
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
	prefix := s.prefix()
	return s.db.Update(func(txn *badger.Txn) error {
		var stale [][]byte
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			k := it.Item().KeyCopy(nil)
			if _, keep := buckets[string(bytes.TrimPrefix(k, prefix))]; !keep {
				stale = append(stale, k)
			}
		}
		it.Close()
		for _, k := range stale {
			if err := txn.Delete(k); err != nil {
				return fmt.Errorf("delete %s: %w", k, err)
			}
		}
		for _, name := range memory.BucketNames(buckets) {
			if err := txn.Set(append(append([]byte(nil), prefix...), name...), buckets[name]); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
		}
		return nil
	})
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the badger handle for tests.
func (s *Store) DB() *badger.DB { return s.db }
