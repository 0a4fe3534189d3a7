// Package archive persists a metadata document as a compressed snapshot
// archive in a blob store.
package archive

import (
	"context"
	"errors"
	"fmt"
	"omemeta/internal/archive"
	"omemeta/internal/blob"
	"omemeta/internal/infra/persistence/memory"
	"omemeta/pkg/domain"
	"sync"
)

var _ domain.PersistentStore = (*Store)(nil)

// Store keeps the document in memory and rewrites its archive on Commit.
type Store struct {
	*memory.Store
	blobs blob.Store
	key   string
	mu    sync.Mutex
	last  blob.Info
}

// NewStore hydrates the document from the archive at key, if one exists.
func NewStore(ctx context.Context, blobs blob.Store, key string, opts ...memory.Option) (*Store, error) {
	if blobs == nil {
		return nil, fmt.Errorf("archive store: blob store required")
	}
	if key == "" {
		key = archive.Key("", memory.DefaultDocument)
	}
	s := &Store{Store: memory.NewStore(opts...), blobs: blobs, key: key}
	snap, info, err := archive.Read(ctx, blobs, key)
	switch {
	case errors.Is(err, blob.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, err
	}
	if err := s.ImportState(snap); err != nil {
		return nil, err
	}
	s.last = info
	return s, nil
}

// Commit writes the current state as a new archive.
func (s *Store) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, err := archive.Write(ctx, s.blobs, s.key, s.ExportState())
	if err != nil {
		return err
	}
	s.last = info
	return nil
}

// Close is a no-op; the blob store is owned by the caller.
func (s *Store) Close() error { return nil }

// Key returns the archive's blob key.
func (s *Store) Key() string { return s.key }

// LastArchive describes the most recently read or written archive.
func (s *Store) LastArchive() blob.Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
