// Package redis persists metadata documents as redis hashes: one hash per
// document, one hash field per snapshot bucket.
package redis

import (
	"context"
	"fmt"
	"omemeta/internal/infra/persistence/memory"
	"omemeta/pkg/domain"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ domain.PersistentStore = (*Store)(nil)

// KeyPrefix prefixes every document hash key.
const KeyPrefix = "omemeta:doc:"

// Options configures the connection.
type Options struct {
	// URL is a redis:// URL. Addr is used when URL is empty.
	URL            string
	Addr           string
	Document       string
	ConnectTimeout time.Duration
}

// Store keeps the document in memory and replaces its hash on Commit.
type Store struct {
	*memory.Store
	client   *redis.Client
	mu       sync.Mutex
	document string
}

// NewStore connects, pings and hydrates the document.
func NewStore(ctx context.Context, o Options, opts ...memory.Option) (*Store, error) {
	if o.Document == "" {
		o.Document = memory.DefaultDocument
	}
	if o.ConnectTimeout == 0 {
		o.ConnectTimeout = 5 * time.Second
	}
	var ropts *redis.Options
	if o.URL != "" {
		parsed, err := redis.ParseURL(o.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		ropts = parsed
	} else {
		if o.Addr == "" {
			o.Addr = "localhost:6379"
		}
		ropts = &redis.Options{Addr: o.Addr}
	}
	ropts.DialTimeout = o.ConnectTimeout
	client := redis.NewClient(ropts)

	pingCtx, cancel := context.WithTimeout(ctx, o.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	s := &Store{Store: memory.NewStore(opts...), client: client, document: o.Document}
	if err := s.load(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return s, nil
}

// Key returns the hash key of the document.
func (s *Store) Key() string { return KeyPrefix + s.document }

func (s *Store) load(ctx context.Context) error {
	fields, err := s.client.HGetAll(ctx, s.Key()).Result()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", s.Key(), err)
	}
	if len(fields) == 0 {
		return nil
	}
	buckets := make(map[string][]byte, len(fields))
	for name, payload := range fields {
		buckets[name] = []byte(payload)
	}
	snap, err := memory.SnapshotFromBuckets(buckets)
	if err != nil {
		return err
	}
	return s.ImportState(snap)
}

// Commit replaces the document hash inside MULTI/EXEC.
func (s *Store) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buckets, err := s.ExportState().Buckets()
	if err != nil {
		return err
	}
	values := make([]any, 0, 2*len(buckets))
	for _, name := range memory.BucketNames(buckets) {
		values = append(values, name, buckets[name])
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.Key())
		pipe.HSet(ctx, s.Key(), values...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Key(), err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error { return s.client.Close() }

// Client exposes the redis client for tests.
func (s *Store) Client() *redis.Client { return s.client }
