// Package blob is the single entry point to blob storage. Callers depend on
// the Store interface; the drivers under internal/infra/blob are wired here.
package blob

import (
	"context"
	"fmt"
	"omemeta/internal/blob/core"
	"omemeta/internal/config"
	fsstore "omemeta/internal/infra/blob/fs"
	memorystore "omemeta/internal/infra/blob/memory"
	s3store "omemeta/internal/infra/blob/s3"
)

type (
	// Driver identifies a blob backend driver.
	Driver = core.Driver
	// PutOptions configures a blob write.
	PutOptions = core.PutOptions
	// Info describes stored blob metadata.
	Info = core.Info
	// Store is the interface for blob storage backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory driver.
	DriverMemory = core.DriverMemory
)

// ErrNotFound is returned by Get and Head for missing keys.
var ErrNotFound = core.ErrNotFound

// NewMemory returns an in-memory Store.
func NewMemory() Store { return memorystore.New() }

// NewFilesystem returns a Store rooted at root.
func NewFilesystem(root string) (Store, error) { return fsstore.New(root) }

// NewS3 returns a Store on the configured bucket.
func NewS3(ctx context.Context, cfg s3store.Config) (Store, error) { return s3store.New(ctx, cfg) }

// NewMockS3ForTests returns an S3 Store backed by an in-memory fake bucket.
func NewMockS3ForTests() Store { return s3store.NewMockForTests() }

// Open selects a Store from configuration. An empty driver means fs.
func Open(ctx context.Context, cfg config.Blob) (Store, error) {
	switch Driver(cfg.Driver) {
	case "", DriverFilesystem:
		return NewFilesystem(cfg.Root)
	case DriverMemory:
		return NewMemory(), nil
	case DriverS3:
		return NewS3(ctx, s3store.Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown blob driver %s", cfg.Driver)
	}
}
