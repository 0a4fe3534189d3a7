package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedConstructors(t *testing.T) {
	_, err := NewPositiveInt(0)
	assert.ErrorIs(t, err, ErrValueRange)
	p, err := NewPositiveInt(3)
	require.NoError(t, err)
	assert.Equal(t, PositiveInt(3), p)

	_, err = NewNonNegativeInt(-1)
	assert.ErrorIs(t, err, ErrValueRange)
	_, err = NewNonNegativeLong(-1)
	assert.ErrorIs(t, err, ErrValueRange)

	_, err = NewPercentFraction(1.5)
	assert.ErrorIs(t, err, ErrValueRange)
	f, err := NewPercentFraction(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, float32(f), 1e-6)
}

func TestColorPacking(t *testing.T) {
	c := NewColor(0xff, 0x00, 0x80, 0x7f)
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint8{0xff, 0x00, 0x80, 0x7f}, []uint8{r, g, b, a})
	assert.Equal(t, Color(-16744321), c)
}

func TestDecodeValueRoundTrip(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600)))
	values := []Value{
		Text("x"), Enum("Laser"), Bool(true), Int(-4), Long(1 << 40), Float(2.5),
		PositiveInt(1), NonNegativeInt(0), NonNegativeLong(7), PercentFraction(0.5),
		ts, NewColor(1, 2, 3, 4), Quantity{Value: 488, Unit: "nm"}, Bytes{0, 1, 2},
		Pairs{{Key: "k", Value: "v"}}, AffineTransform{A00: 1, A11: 1, A02: 5},
	}
	for _, v := range values {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		got, err := DecodeValue(v.Kind(), raw)
		require.NoError(t, err, v.Kind().String())
		assert.Equal(t, v, got, v.Kind().String())
	}
	assert.Equal(t, time.UTC, ts.Location())
}

func TestNonFiniteFloatsRoundTrip(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	cases := []struct {
		value Value
		json  string
		check func(t *testing.T, got Value)
	}{
		{Float(nan), `"NaN"`, func(t *testing.T, got Value) {
			assert.True(t, math.IsNaN(float64(got.(Float))))
		}},
		{Float(-inf), `"-Infinity"`, func(t *testing.T, got Value) {
			assert.Equal(t, Float(-inf), got)
		}},
		{PercentFraction(float32(inf)), `"Infinity"`, func(t *testing.T, got Value) {
			assert.Equal(t, PercentFraction(float32(inf)), got)
		}},
		{Quantity{Value: inf, Unit: "nm"}, `{"value":"Infinity","unit":"nm"}`, func(t *testing.T, got Value) {
			assert.Equal(t, Quantity{Value: inf, Unit: "nm"}, got)
		}},
		{AffineTransform{A00: 1, A02: nan, A11: -inf}, `{"a00":1,"a10":0,"a01":0,"a11":"-Infinity","a02":"NaN","a12":0}`, func(t *testing.T, got Value) {
			tr := got.(AffineTransform)
			assert.True(t, math.IsNaN(tr.A02))
			assert.Equal(t, -inf, tr.A11)
			assert.Equal(t, 1.0, tr.A00)
		}},
	}
	for _, c := range cases {
		t.Run(c.value.Kind().String(), func(t *testing.T) {
			raw, err := json.Marshal(c.value)
			require.NoError(t, err)
			assert.JSONEq(t, c.json, string(raw))
			got, err := DecodeValue(c.value.Kind(), raw)
			require.NoError(t, err)
			c.check(t, got)
		})
	}

	raw, err := json.Marshal(PercentFraction(0.1))
	require.NoError(t, err)
	assert.Equal(t, "0.1", string(raw), "finite values keep their number form")

	_, err = DecodeValue(KindFloat, json.RawMessage(`"Infinite"`))
	assert.ErrorIs(t, err, ErrValueType)
}

func TestDecodeValueErrors(t *testing.T) {
	_, err := DecodeValue(ValueKind(200), json.RawMessage(`1`))
	assert.ErrorIs(t, err, ErrValueType)
	_, err = DecodeValue(KindInt, json.RawMessage(`"nope"`))
	assert.Error(t, err)
	assert.Equal(t, "kind(200)", ValueKind(200).String())
}

type fakeRetrieve struct {
	values map[string]Value
	refs   int
}

func (f fakeRetrieve) Count(*Entity, ...int) int  { return 0 }
func (f fakeRetrieve) RefCount(*Field, ...int) int { return f.refs }
func (f fakeRetrieve) Get(fd *Field, idx ...int) (Value, bool) {
	key := fd.Name
	if fd.Repeated {
		key += string(rune('0' + idx[len(idx)-1]))
	}
	v, ok := f.values[key]
	return v, ok
}
func (fakeRetrieve) LightSourceType(int, int) (LightSourceType, bool) { return 0, false }
func (fakeRetrieve) ShapeType(int, int) (ShapeType, bool)             { return 0, false }
func (fakeRetrieve) UUID() string                                     { return "" }
func (fakeRetrieve) Root() any                                        { return nil }

func TestTypedAccessors(t *testing.T) {
	r := fakeRetrieve{
		values: map[string]Value{
			"ImageName":           Text("cells"),
			"PixelsSizeX":         PositiveInt(512),
			"ImageAnnotationRef0": Text("Annotation:0"),
			"ImageAnnotationRef2": Text("Annotation:2"),
		},
		refs: 3,
	}
	n, ok := Get[PositiveInt](r, PixelsSizeX, 0)
	require.True(t, ok)
	assert.Equal(t, PositiveInt(512), n)

	_, ok = Get[Float](r, PixelsSizeX, 0)
	assert.False(t, ok, "wrong type reads as absent")

	s, ok := GetString(r, ImageName, 0)
	require.True(t, ok)
	assert.Equal(t, "cells", s)
	_, ok = GetString(r, PixelsSizeX, 0)
	assert.False(t, ok)

	assert.Equal(t, []string{"Annotation:0", "Annotation:2"}, RefIDs(r, ImageAnnotationRef, 0))
}

func TestValidIndex(t *testing.T) {
	assert.True(t, ValidIndex(ChannelName, []int{0, 1}))
	assert.False(t, ValidIndex(ChannelName, []int{0}))
	assert.False(t, ValidIndex(ChannelName, []int{0, -1}))
}

func TestFieldError(t *testing.T) {
	err := FieldError{Field: "ImageName", Index: []int{3}, Err: ErrNotApplicable}
	assert.Equal(t, "ImageName[3]: metadata: field not applicable", err.Error())
	assert.True(t, IsNotApplicable(err))
	assert.False(t, IsNotApplicable(errors.New("other")))
}
