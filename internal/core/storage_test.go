package core

import (
	"bytes"
	"omemeta/internal/blob"
	"omemeta/internal/config"
	archivestore "omemeta/internal/infra/persistence/archive"
	"omemeta/internal/infra/persistence/memory"
	"math"
	"omemeta/pkg/domain"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exporter interface {
	ExportState() memory.Snapshot
}

func storeConfigs(t *testing.T) map[string]config.Store {
	t.Helper()
	dir := t.TempDir()
	mr := miniredis.RunT(t)
	return map[string]config.Store{
		"sqlite": {Driver: config.DriverSQLite, SQLite: config.SQLite{Path: filepath.Join(dir, "meta.db")}},
		"bolt":   {Driver: config.DriverBolt, Bolt: config.Bolt{Path: filepath.Join(dir, "meta.bolt")}},
		"badger": {Driver: config.DriverBadger, Badger: config.Badger{Path: filepath.Join(dir, "badger")}},
		"redis":  {Driver: config.DriverRedis, Redis: config.Redis{Addr: mr.Addr()}},
		"blob":   {Driver: config.DriverBlob, Blob: config.Blob{Driver: "fs", Root: filepath.Join(dir, "blobs")}},
	}
}

func TestOpenStoreRoundTripsEveryDriver(t *testing.T) {
	for name, cfg := range storeConfigs(t) {
		t.Run(name, func(t *testing.T) {
			cfg.Document = "lab"
			s, err := OpenStore(t.Context(), cfg)
			require.NoError(t, err)
			s.CreateRoot()
			require.NoError(t, Convert(richDocument(t), s))
			require.NoError(t, s.Commit(t.Context()))
			want := s.(exporter).ExportState()
			require.NoError(t, s.Close())

			again, err := OpenStore(t.Context(), cfg)
			require.NoError(t, err)
			defer func() { _ = again.Close() }()
			assert.Equal(t, want, again.(exporter).ExportState())
			assert.Equal(t, s.UUID(), again.UUID())
		})
	}
}

func TestOpenStorePersistsNonFiniteFloats(t *testing.T) {
	for name, cfg := range storeConfigs(t) {
		t.Run(name, func(t *testing.T) {
			cfg.Document = "nonfinite"
			s, err := OpenStore(t.Context(), cfg)
			require.NoError(t, err)
			require.NoError(t, s.SetShapeType(domain.ShapeRectangle, 0, 0))
			require.NoError(t, s.Set(domain.RectangleX, domain.Float(math.NaN()), 0, 0))
			require.NoError(t, s.Set(domain.RectangleY, domain.Float(math.Inf(-1)), 0, 0))
			require.NoError(t, s.Set(domain.ShapeTransform, domain.AffineTransform{A00: math.Inf(1), A11: 1}, 0, 0))
			require.NoError(t, s.Set(domain.PixelsPhysicalSizeX, domain.Quantity{Value: math.Inf(1), Unit: "µm"}, 0))
			require.NoError(t, s.Set(domain.ImagingEnvironmentHumidity, domain.PercentFraction(float32(math.NaN())), 0))
			require.NoError(t, s.Commit(t.Context()))
			require.NoError(t, s.Close())

			again, err := OpenStore(t.Context(), cfg)
			require.NoError(t, err)
			defer func() { _ = again.Close() }()

			x, ok := domain.Get[domain.Float](again, domain.RectangleX, 0, 0)
			require.True(t, ok)
			assert.True(t, math.IsNaN(float64(x)))
			y, ok := domain.Get[domain.Float](again, domain.RectangleY, 0, 0)
			require.True(t, ok)
			assert.True(t, math.IsInf(float64(y), -1))
			tr, ok := domain.Get[domain.AffineTransform](again, domain.ShapeTransform, 0, 0)
			require.True(t, ok)
			assert.True(t, math.IsInf(tr.A00, 1))
			q, ok := domain.Get[domain.Quantity](again, domain.PixelsPhysicalSizeX, 0)
			require.True(t, ok)
			assert.Equal(t, domain.Quantity{Value: math.Inf(1), Unit: "µm"}, q)
			h, ok := domain.Get[domain.PercentFraction](again, domain.ImagingEnvironmentHumidity, 0)
			require.True(t, ok)
			assert.True(t, math.IsNaN(float64(h)))
		})
	}
}

func TestOpenStoreMemoryHonoursMaxIndex(t *testing.T) {
	s, err := OpenStore(t.Context(), config.Store{Driver: config.DriverMemory, MaxIndex: 4})
	require.NoError(t, err)
	assert.ErrorIs(t, s.Set(domain.ImageName, domain.Text("x"), 5), domain.ErrInvalidIndex)
	require.NoError(t, s.Set(domain.ImageName, domain.Text("x"), 4))
}

func TestOpenStoreInjectedBlobStore(t *testing.T) {
	blobs := blob.NewMemory()
	cfg := config.Store{Driver: config.DriverBlob, Document: "d", Blob: config.Blob{Prefix: "archives/"}}
	s, err := OpenStore(t.Context(), cfg, WithBlobStore(blobs))
	require.NoError(t, err)
	require.NoError(t, s.Set(domain.ImageName, domain.Text("x"), 0))
	require.NoError(t, s.Commit(t.Context()))

	arch, ok := s.(*archivestore.Store)
	require.True(t, ok)
	assert.Equal(t, "archives/d.json.xz", arch.LastArchive().Key)
	_, err = blobs.Head(t.Context(), "archives/d.json.xz")
	assert.NoError(t, err)
}

func TestOpenStoreBadgerInMemory(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogrus(&buf)
	s, err := OpenStore(t.Context(), config.Store{Driver: config.DriverBadger, Badger: config.Badger{InMemory: true}},
		WithLogrus(log), WithStoreLogger(NewLogrusLogger(log)))
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	require.NoError(t, s.Commit(t.Context()))

	lines := decodeLines(t, &buf)
	require.NotEmpty(t, lines)
	assert.Equal(t, "store opened", lines[len(lines)-1]["msg"])
	assert.Equal(t, "badger", lines[len(lines)-1]["driver"])
}

func TestOpenStoreErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusLogger(newTestLogrus(&buf))

	_, err := OpenStore(t.Context(), config.Store{Driver: "floppy"})
	assert.ErrorContains(t, err, "unknown storage driver")

	_, err = OpenStore(t.Context(), config.Store{Driver: config.DriverBolt}, WithStoreLogger(logger))
	assert.ErrorContains(t, err, "open bolt store")
	assert.Contains(t, buf.String(), "open store failed")

	_, err = OpenStore(t.Context(), config.Store{Driver: config.DriverBlob, Blob: config.Blob{Driver: "tape"}})
	assert.Error(t, err)
}
