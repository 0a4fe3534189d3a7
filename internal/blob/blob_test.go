package blob

import (
	"context"
	"io"
	"omemeta/internal/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drivers(t *testing.T) map[Driver]Store {
	t.Helper()
	fs, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)
	return map[Driver]Store{
		DriverMemory:     NewMemory(),
		DriverFilesystem: fs,
		DriverS3:         NewMockS3ForTests(),
	}
}

func readAll(t *testing.T, s Store, key string) (Info, string) {
	t.Helper()
	info, rc, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return info, string(b)
}

func TestStoreContract(t *testing.T) {
	for driver, s := range drivers(t) {
		t.Run(string(driver), func(t *testing.T) {
			ctx := t.Context()
			assert.Equal(t, driver, s.Driver())

			_, err := s.Put(ctx, "docs/a.json.xz", strings.NewReader("first"), PutOptions{ContentType: "application/x-xz"})
			require.NoError(t, err)
			_, err = s.Put(ctx, "docs/a.json.xz", strings.NewReader("second"), PutOptions{ContentType: "application/x-xz"})
			require.NoError(t, err)
			_, err = s.Put(ctx, "docs/b.json.xz", strings.NewReader("b"), PutOptions{})
			require.NoError(t, err)
			_, err = s.Put(ctx, "other/c", strings.NewReader("c"), PutOptions{})
			require.NoError(t, err)

			info, body := readAll(t, s, "docs/a.json.xz")
			assert.Equal(t, "second", body)
			assert.Equal(t, int64(6), info.Size)
			assert.Equal(t, "application/x-xz", info.ContentType)

			head, err := s.Head(ctx, "docs/b.json.xz")
			require.NoError(t, err)
			assert.Equal(t, int64(1), head.Size)

			list, err := s.List(ctx, "docs/")
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "docs/a.json.xz", list[0].Key)
			assert.Equal(t, "docs/b.json.xz", list[1].Key)

			existed, err := s.Delete(ctx, "docs/a.json.xz")
			require.NoError(t, err)
			assert.True(t, existed)
			existed, err = s.Delete(ctx, "docs/a.json.xz")
			require.NoError(t, err)
			assert.False(t, existed)

			_, _, err = s.Get(ctx, "docs/a.json.xz")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = s.Head(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := t.Context()
	s, err := Open(ctx, config.Blob{Root: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, DriverFilesystem, s.Driver())

	s, err = Open(ctx, config.Blob{Driver: "memory"})
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, s.Driver())

	s, err = Open(ctx, config.Blob{Driver: "s3", S3: config.S3{Bucket: "b", Endpoint: "http://127.0.0.1:9", PathStyle: true}})
	require.NoError(t, err)
	assert.Equal(t, DriverS3, s.Driver())

	_, err = Open(ctx, config.Blob{Driver: "s3"})
	assert.Error(t, err)
	_, err = Open(ctx, config.Blob{Driver: "tape"})
	assert.Error(t, err)
}
