package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootsFollowTraversalOrder(t *testing.T) {
	roots := Roots()
	require.NotEmpty(t, roots)
	assert.Same(t, Image, roots[0])
	assert.Same(t, XMLAnnotation, roots[len(roots)-1])

	roots[0] = nil
	assert.Same(t, Image, Roots()[0], "Roots must return a copy")
}

func TestArity(t *testing.T) {
	cases := []struct {
		field *Field
		want  int
	}{
		{ImageName, 1},
		{ImageAnnotationRef, 2},
		{PixelsSizeX, 1},
		{ChannelName, 2},
		{DetectorSettingsGain, 2},
		{LightPathExcitationFilterRef, 3},
		{LaserWavelength, 2},
		{WellSampleImageRef, 3},
		{EllipseRadiusX, 2},
		{ShapeAnnotationRef, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.field.Arity(), c.field.Name)
	}
}

func TestEntityDepthAndCardinality(t *testing.T) {
	assert.Equal(t, 1, Image.Depth())
	assert.Equal(t, One, Pixels.Cardinality)
	assert.Equal(t, 1, Pixels.Depth())
	assert.Equal(t, Many, Channel.Cardinality)
	assert.Equal(t, 2, Channel.Depth())
	assert.Equal(t, 3, WellSample.Depth())
	assert.Same(t, Union, Shape.Parent)
	assert.Equal(t, 2, Shape.Depth())
}

func TestRegistryLookups(t *testing.T) {
	e, ok := EntityByName("LightSource")
	require.True(t, ok)
	assert.Same(t, LightSource, e)

	f, ok := FieldByName("LaserWavelength")
	require.True(t, ok)
	assert.Same(t, LaserWavelength, f)
	assert.Equal(t, "Laser", f.Variant)

	_, ok = FieldByName("NoSuchField")
	assert.False(t, ok)

	all := Entities()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}
}

func TestWalkVisitsEveryEntity(t *testing.T) {
	seen := map[string]int{}
	Walk(func(e *Entity) { seen[e.Name]++ })
	assert.Len(t, seen, len(Entities()))
	for name, n := range seen {
		assert.Equal(t, 1, n, name)
	}
}

func TestIndexPathsStayWithinMaxDepth(t *testing.T) {
	Walk(func(e *Entity) {
		for _, f := range e.Fields() {
			assert.LessOrEqual(t, f.Arity(), MaxDepth, f.Name)
		}
	})
}

func TestBackReferencesAreRepeatedAndNotForward(t *testing.T) {
	for _, f := range []*Field{ImageDatasetBackRef, PlateScreenBackRef, ROIImageBackRef, ReagentWellBackRef} {
		assert.True(t, f.BackReference, f.Name)
		assert.True(t, f.Repeated, f.Name)
		assert.False(t, f.IsReference(), f.Name)
	}
	assert.True(t, ImageInstrumentRef.IsReference())
	assert.False(t, ImageName.IsReference())
}

func TestReferenceTargetsExist(t *testing.T) {
	Walk(func(e *Entity) {
		for _, f := range e.Fields() {
			if f.Reference == "" {
				continue
			}
			assert.NotEmpty(t, ReferenceTargets(f.Reference), "%s references unknown %s", f.Name, f.Reference)
		}
	})
}

func TestReferenceTargetsResolveFamilies(t *testing.T) {
	assert.Equal(t, []*Entity{Instrument}, ReferenceTargets("Instrument"))
	assert.Nil(t, ReferenceTargets("Gizmo"))

	annotations := ReferenceTargets(ImageAnnotationRef.Reference)
	assert.Len(t, annotations, 11)
	assert.Contains(t, annotations, MapAnnotation)
	assert.Contains(t, annotations, XMLAnnotation)
	for _, e := range annotations {
		assert.Nil(t, e.Parent, e.Name)
	}
}

func TestVariantFields(t *testing.T) {
	assert.Equal(t, []string{"Arc", "Filament", "Laser", "LightEmittingDiode"}, LightSource.Variants())
	assert.True(t, LightSource.Polymorphic())
	assert.False(t, Detector.Polymorphic())

	base := LightSource.VariantFields("")
	laser := LightSource.VariantFields("Laser")
	assert.Contains(t, base, LightSourcePower)
	assert.NotContains(t, base, LaserWavelength)
	assert.Contains(t, laser, LaserWavelength)
	assert.Contains(t, laser, LightSourcePower)
	assert.NotContains(t, laser, ArcType)

	rect := Shape.VariantFields(ShapeRectangle.String())
	assert.Contains(t, rect, RectangleWidth)
	assert.NotContains(t, rect, EllipseRadiusX)
}

func TestVariantTags(t *testing.T) {
	for _, tt := range []LightSourceType{LightSourceArc, LightSourceFilament, LightSourceLaser, LightSourceLightEmittingDiode} {
		got, ok := ParseLightSourceType(tt.String())
		require.True(t, ok)
		assert.Equal(t, tt, got)
	}
	for _, tt := range []ShapeType{ShapeEllipse, ShapeLine, ShapeMask, ShapePoint, ShapePolygon, ShapePolyline, ShapeRectangle, ShapeLabel} {
		got, ok := ParseShapeType(tt.String())
		require.True(t, ok)
		assert.Equal(t, tt, got)
	}
	assert.False(t, LightSourceType(0).Valid())
	assert.False(t, ShapeType(99).Valid())
	_, ok := ParseShapeType("Circle")
	assert.False(t, ok)
}
