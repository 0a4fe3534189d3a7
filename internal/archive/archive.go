// Package archive stores document snapshots as xz-compressed JSON blobs.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"omemeta/internal/blob"
	"omemeta/internal/infra/persistence/memory"

	"github.com/ulikunitz/xz"
)

const (
	// ContentType is the MIME type of archive blobs.
	ContentType = "application/x-xz"
	// Format tags the payload layout in blob metadata.
	Format = "omemeta-snapshot/1"
	// Suffix is appended to document names to form blob keys.
	Suffix = ".json.xz"

	metaFormat = "format"
	metaUUID   = "uuid"
)

// Key returns the blob key holding document under prefix.
func Key(prefix, document string) string {
	if document == "" {
		document = memory.DefaultDocument
	}
	return prefix + document + Suffix
}

// Encode writes snap as xz-compressed JSON.
func Encode(w io.Writer, snap memory.Snapshot) error {
	zw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("xz writer: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(snap); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return zw.Close()
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader) (memory.Snapshot, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return memory.Snapshot{}, fmt.Errorf("xz reader: %w", err)
	}
	var snap memory.Snapshot
	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		return memory.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Entities == nil {
		snap.Entities = map[string][]memory.RecordState{}
	}
	return snap, nil
}

// Write compresses snap and stores it at key, replacing any previous archive.
func Write(ctx context.Context, store blob.Store, key string, snap memory.Snapshot) (blob.Info, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return blob.Info{}, err
	}
	meta := map[string]string{metaFormat: Format}
	if snap.UUID != "" {
		meta[metaUUID] = snap.UUID
	}
	info, err := store.Put(ctx, key, bytes.NewReader(buf.Bytes()), blob.PutOptions{ContentType: ContentType, Metadata: meta})
	if err != nil {
		return blob.Info{}, fmt.Errorf("store archive %s: %w", key, err)
	}
	return info, nil
}

// Read loads the archive at key. Missing archives surface blob.ErrNotFound.
func Read(ctx context.Context, store blob.Store, key string) (memory.Snapshot, blob.Info, error) {
	info, rc, err := store.Get(ctx, key)
	if err != nil {
		return memory.Snapshot{}, blob.Info{}, err
	}
	defer func() { _ = rc.Close() }()
	if f, ok := info.Metadata[metaFormat]; ok && f != Format {
		return memory.Snapshot{}, info, fmt.Errorf("archive %s: unsupported format %q", key, f)
	}
	snap, err := Decode(rc)
	if err != nil {
		return memory.Snapshot{}, info, fmt.Errorf("archive %s: %w", key, err)
	}
	return snap, info, nil
}
