package memory

import (
	"encoding/json"
	"omemeta/pkg/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyStoreReadsAbsent(t *testing.T) {
	s := NewStore()
	assert.Zero(t, s.Count(domain.Image))
	assert.Zero(t, s.Count(domain.Channel, 0))
	assert.Zero(t, s.RefCount(domain.ImageAnnotationRef, 0))
	_, ok := s.Get(domain.ImageName, 0)
	assert.False(t, ok)
	_, ok = s.LightSourceType(0, 0)
	assert.False(t, ok)
	assert.Empty(t, s.UUID())
}

func TestSetCreatesAncestorsAndCounts(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(domain.ChannelName, domain.Text("DAPI"), 1, 2))

	assert.Equal(t, 2, s.Count(domain.Image))
	assert.Equal(t, 3, s.Count(domain.Channel, 1))
	assert.Zero(t, s.Count(domain.Channel, 0))

	v, ok := s.Get(domain.ChannelName, 1, 2)
	require.True(t, ok)
	assert.Equal(t, domain.Text("DAPI"), v)

	_, ok = s.Get(domain.ChannelName, 1, 0)
	assert.False(t, ok, "gaps read as absent")
}

func TestCountWrongArity(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(domain.ChannelName, domain.Text("a"), 0, 0))
	assert.Zero(t, s.Count(domain.Channel))
	assert.Zero(t, s.Count(domain.Channel, 0, 0))
	assert.Zero(t, s.Count(domain.Pixels, 0), "singular entities are not counted")
	assert.Zero(t, s.Count(nil))
}

func TestRepeatedFields(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(domain.ImageAnnotationRef, domain.Text("Annotation:1"), 0, 1))
	assert.Equal(t, 2, s.RefCount(domain.ImageAnnotationRef, 0))
	_, ok := s.Get(domain.ImageAnnotationRef, 0, 0)
	assert.False(t, ok)
	v, ok := s.Get(domain.ImageAnnotationRef, 0, 1)
	require.True(t, ok)
	assert.Equal(t, domain.Text("Annotation:1"), v)
	assert.Zero(t, s.RefCount(domain.ImageName, 0), "scalar fields have no ref count")
}

func TestSetOverwrites(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(domain.ImageName, domain.Text("a"), 0))
	require.NoError(t, s.Set(domain.ImageName, domain.Text("b"), 0))
	v, _ := s.Get(domain.ImageName, 0)
	assert.Equal(t, domain.Text("b"), v)
}

func TestIndexPolicy(t *testing.T) {
	s := NewStore(WithMaxIndex(10))
	cases := []struct {
		name string
		idx  []int
	}{
		{"short", nil},
		{"long", []int{0, 0}},
		{"negative", []int{-1}},
		{"too large", []int{11}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := s.Set(domain.ImageName, domain.Text("x"), c.idx...)
			assert.ErrorIs(t, err, domain.ErrInvalidIndex)
			var fe domain.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "ImageName", fe.Field)
		})
	}
	require.NoError(t, s.Set(domain.ImageName, domain.Text("x"), 10))
	_, ok := s.Get(domain.ImageName, -1)
	assert.False(t, ok)
	_, ok = s.Get(domain.ImageName)
	assert.False(t, ok)
}

func TestValueKindMismatch(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Set(domain.PixelsSizeX, domain.Int(5), 0), domain.ErrValueType)
	assert.ErrorIs(t, s.Set(domain.ImageName, nil, 0), domain.ErrValueType)
	assert.ErrorIs(t, s.Set(nil, domain.Text("x"), 0), domain.ErrNotApplicable)
	assert.Zero(t, s.Count(domain.Image), "rejected writes create nothing")
}

func TestVariantIsolation(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetLightSourceType(domain.LightSourceLaser, 0, 0))
	require.NoError(t, s.Set(domain.LaserWavelength, domain.Quantity{Value: 488, Unit: "nm"}, 0, 0))
	require.NoError(t, s.Set(domain.LightSourcePower, domain.Quantity{Value: 5, Unit: "mW"}, 0, 0))

	err := s.Set(domain.ArcType, domain.Enum("Xe"), 0, 0)
	assert.ErrorIs(t, err, domain.ErrNotApplicable)

	_, ok := s.Get(domain.ArcType, 0, 0)
	assert.False(t, ok)
	tag, ok := s.LightSourceType(0, 0)
	require.True(t, ok)
	assert.Equal(t, domain.LightSourceLaser, tag)

	require.NoError(t, s.SetLightSourceType(domain.LightSourceArc, 0, 0))
	_, ok = s.Get(domain.LaserWavelength, 0, 0)
	assert.False(t, ok, "re-tagging drops the previous variant's fields")
	_, ok = s.Get(domain.LightSourcePower, 0, 0)
	assert.True(t, ok, "base fields survive re-tagging")
	require.NoError(t, s.Set(domain.ArcType, domain.Enum("Xe"), 0, 0))
}

func TestVariantFieldTagsUntaggedInstance(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(domain.RectangleWidth, domain.Float(4), 0, 0))
	tag, ok := s.ShapeType(0, 0)
	require.True(t, ok)
	assert.Equal(t, domain.ShapeRectangle, tag)
	assert.Equal(t, 1, s.Count(domain.Shape, 0))
	assert.Equal(t, 1, s.Count(domain.ROI))
}

func TestSetTypeRejectsInvalidTag(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.SetShapeType(domain.ShapeType(0), 0, 0), domain.ErrValueType)
	assert.ErrorIs(t, s.SetLightSourceType(domain.LightSourceArc, -1, 0), domain.ErrInvalidIndex)
	_, ok := s.ShapeType(-1, 0)
	assert.False(t, ok)
}

func TestCreateRootResets(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(domain.ImageName, domain.Text("a"), 0))
	s.CreateRoot()
	assert.Zero(t, s.Count(domain.Image))
	assert.True(t, strings.HasPrefix(s.UUID(), "urn:uuid:"))
	first := s.UUID()
	s.CreateRoot()
	assert.NotEqual(t, first, s.UUID())

	s.SetUUID("urn:uuid:fixed")
	assert.Equal(t, "urn:uuid:fixed", s.UUID())
	assert.Same(t, s, s.Root())
}

func TestValuesAreCopied(t *testing.T) {
	s := NewStore()
	data := domain.Bytes{1, 2, 3}
	require.NoError(t, s.Set(domain.MaskBinData, data, 0, 0))
	data[0] = 9
	v, _ := s.Get(domain.MaskBinData, 0, 0)
	assert.Equal(t, domain.Bytes{1, 2, 3}, v)
	v.(domain.Bytes)[1] = 9
	again, _ := s.Get(domain.MaskBinData, 0, 0)
	assert.Equal(t, domain.Bytes{1, 2, 3}, again)
}

func populated(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.SetUUID("urn:uuid:doc")
	require.NoError(t, s.Set(domain.ImageName, domain.Text("cells"), 0))
	require.NoError(t, s.Set(domain.PixelsSizeX, domain.PositiveInt(512), 0))
	require.NoError(t, s.Set(domain.ChannelColor, domain.NewColor(255, 0, 0, 255), 0, 1))
	require.NoError(t, s.Set(domain.ImageAnnotationRef, domain.Text("Annotation:3"), 0, 2))
	require.NoError(t, s.SetShapeType(domain.ShapeMask, 0, 0))
	require.NoError(t, s.Set(domain.MaskBinData, domain.Bytes{0xde, 0xad}, 0, 0))
	require.NoError(t, s.Set(domain.MapAnnotationValue, domain.Pairs{{Key: "a", Value: "b"}}, 0))
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	src := populated(t)
	snap := src.ExportState()

	dst := NewStore()
	require.NoError(t, dst.ImportState(snap))
	assert.Equal(t, snap, dst.ExportState())
	assert.Equal(t, 2, dst.Count(domain.Channel, 0))
	assert.Equal(t, 3, dst.RefCount(domain.ImageAnnotationRef, 0))
	tag, ok := dst.ShapeType(0, 0)
	require.True(t, ok)
	assert.Equal(t, domain.ShapeMask, tag)
}

func TestSnapshotJSONAndBuckets(t *testing.T) {
	snap := populated(t).ExportState()

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, snap, decoded)

	buckets, err := snap.Buckets()
	require.NoError(t, err)
	assert.Contains(t, buckets, DocumentBucket)
	assert.Contains(t, buckets, "Image")
	assert.Equal(t, BucketNames(buckets)[0], "Channel")

	back, err := SnapshotFromBuckets(buckets)
	require.NoError(t, err)
	assert.Equal(t, snap, back)
}

func TestImportDropsUnknownAndRejectsBadValues(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.ImportState(Snapshot{Entities: map[string][]RecordState{
		"Gizmo": {{Index: []int{0}}},
		"Image": {{Index: []int{0}, Fields: map[string]domain.Value{"ImageName": domain.Text("x"), "Nope": domain.Text("y")}}},
	}}))
	assert.Equal(t, 1, s.Count(domain.Image))

	err := s.ImportState(Snapshot{Entities: map[string][]RecordState{
		"Image": {{Index: []int{0}, Fields: map[string]domain.Value{"ImageName": domain.Int(1)}}},
	}})
	assert.ErrorIs(t, err, domain.ErrValueType)

	err = s.ImportState(Snapshot{Entities: map[string][]RecordState{
		"Shape": {{Index: []int{0, 0}, Variant: "Circle"}},
	}})
	assert.ErrorIs(t, err, domain.ErrValueType)

	err = s.ImportState(Snapshot{Entities: map[string][]RecordState{
		"Image": {{Index: []int{0, 1}}},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestSetRoot(t *testing.T) {
	src := populated(t)
	dst := NewStore()
	require.NoError(t, dst.SetRoot(src))
	assert.Equal(t, src.ExportState(), dst.ExportState())

	snap := src.ExportState()
	other := NewStore()
	require.NoError(t, other.SetRoot(&snap))
	assert.Equal(t, "urn:uuid:doc", other.UUID())

	require.NoError(t, dst.SetRoot(dst))
	assert.ErrorIs(t, dst.SetRoot("nope"), domain.ErrUnsupportedRoot)
	assert.ErrorIs(t, dst.SetRoot((*Snapshot)(nil)), domain.ErrUnsupportedRoot)
}
