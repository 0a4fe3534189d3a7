package core

import (
	"context"
	"fmt"
	"omemeta/internal/archive"
	"omemeta/internal/blob"
	"omemeta/internal/config"
	archivestore "omemeta/internal/infra/persistence/archive"
	"omemeta/internal/infra/persistence/badger"
	"omemeta/internal/infra/persistence/bolt"
	"omemeta/internal/infra/persistence/memory"
	"omemeta/internal/infra/persistence/postgres"
	"omemeta/internal/infra/persistence/redis"
	"omemeta/internal/infra/persistence/sqlite"
	"omemeta/pkg/domain"
	"time"

	"github.com/sirupsen/logrus"
)

type storeOptions struct {
	logger Logger
	logrus *logrus.Logger
	blobs  blob.Store
}

// StoreOption configures OpenStore.
type StoreOption func(*storeOptions)

// WithStoreLogger logs which backend was opened.
func WithStoreLogger(logger Logger) StoreOption {
	return func(o *storeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogrus hands a logrus logger to backends that log on their own.
func WithLogrus(log *logrus.Logger) StoreOption {
	return func(o *storeOptions) { o.logrus = log }
}

// WithBlobStore makes the blob driver use store instead of opening one from
// configuration.
func WithBlobStore(store blob.Store) StoreOption {
	return func(o *storeOptions) { o.blobs = store }
}

// OpenStore opens the document store selected by cfg.Driver. The returned
// store owns its connection; callers Commit and Close it.
func OpenStore(ctx context.Context, cfg config.Store, opts ...StoreOption) (domain.PersistentStore, error) {
	o := storeOptions{logger: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	memOpts := []memory.Option{memory.WithMaxIndex(cfg.MaxIndex)}
	start := time.Now()

	var (
		store domain.PersistentStore
		err   error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		store = memory.NewStore(memOpts...)
	case config.DriverSQLite:
		store, err = sqlite.NewStore(cfg.SQLite.Path, cfg.Document, memOpts...)
	case config.DriverPostgres:
		store, err = postgres.NewStore(ctx, cfg.Postgres.DSN, cfg.Document, memOpts...)
	case config.DriverBadger:
		store, err = badger.NewStore(badger.Config{
			Path:     cfg.Badger.Path,
			InMemory: cfg.Badger.InMemory,
			Document: cfg.Document,
			Logger:   o.logrus,
		}, memOpts...)
	case config.DriverBolt:
		store, err = bolt.NewStore(cfg.Bolt.Path, cfg.Document, memOpts...)
	case config.DriverRedis:
		store, err = redis.NewStore(ctx, redis.Options{
			URL:            cfg.Redis.URL,
			Addr:           cfg.Redis.Addr,
			Document:       cfg.Document,
			ConnectTimeout: cfg.Redis.Timeout(),
		}, memOpts...)
	case config.DriverBlob:
		blobs := o.blobs
		if blobs == nil {
			if blobs, err = blob.Open(ctx, cfg.Blob); err != nil {
				return nil, err
			}
		}
		store, err = archivestore.NewStore(ctx, blobs, archive.Key(cfg.Blob.Prefix, cfg.Document), memOpts...)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", cfg.Driver)
	}
	if err != nil {
		o.logger.Error("open store failed", "driver", cfg.Driver, "error", err)
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}
	o.logger.Debug("store opened", "driver", cfg.Driver, "document", cfg.Document, "elapsed", time.Since(start))
	return store, nil
}
