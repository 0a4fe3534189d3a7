package archive

import (
	"bytes"
	"omemeta/internal/blob"
	"omemeta/internal/infra/persistence/memory"
	"omemeta/pkg/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(t *testing.T) memory.Snapshot {
	t.Helper()
	s := memory.NewStore()
	s.SetUUID("urn:uuid:sample")
	require.NoError(t, s.Set(domain.ImageName, domain.Text("cells"), 0))
	require.NoError(t, s.Set(domain.ChannelColor, domain.NewColor(0, 255, 0, 255), 0, 0))
	require.NoError(t, s.SetShapeType(domain.ShapeLabel, 0, 0))
	return s.ExportState()
}

func TestKey(t *testing.T) {
	assert.Equal(t, "default.json.xz", Key("", ""))
	assert.Equal(t, "archives/lab.json.xz", Key("archives/", "lab"))
}

func TestEncodeDecode(t *testing.T) {
	snap := sampleSnapshot(t)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, snap))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}), "xz magic")

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	_, err = Decode(strings.NewReader("plain text"))
	assert.Error(t, err)
}

func TestDecodeEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, memory.Snapshot{}))
	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.NotNil(t, got.Entities)
	assert.Empty(t, got.Entities)
}

func TestWriteRead(t *testing.T) {
	store := blob.NewMemory()
	snap := sampleSnapshot(t)
	info, err := Write(t.Context(), store, "a.json.xz", snap)
	require.NoError(t, err)
	assert.Equal(t, ContentType, info.ContentType)
	assert.Equal(t, Format, info.Metadata["format"])
	assert.Equal(t, "urn:uuid:sample", info.Metadata["uuid"])

	got, readInfo, err := Read(t.Context(), store, "a.json.xz")
	require.NoError(t, err)
	assert.Equal(t, snap, got)
	assert.Equal(t, info.ETag, readInfo.ETag)

	_, _, err = Read(t.Context(), store, "missing.json.xz")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}

func TestReadRejectsForeignFormat(t *testing.T) {
	store := blob.NewMemory()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleSnapshot(t)))
	_, err := store.Put(t.Context(), "old.json.xz", &buf, blob.PutOptions{Metadata: map[string]string{"format": "omemeta-snapshot/0"}})
	require.NoError(t, err)

	_, _, err = Read(t.Context(), store, "old.json.xz")
	assert.ErrorContains(t, err, "unsupported format")
}
