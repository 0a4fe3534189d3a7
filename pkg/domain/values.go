package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ValueKind identifies the concrete Go type carried by a field.
type ValueKind uint8

const (
	// KindText is free text: identifiers, names, descriptions and references.
	KindText ValueKind = iota + 1
	// KindEnum is an enumerated token.
	KindEnum
	KindBool
	KindInt
	KindLong
	KindFloat
	KindPositiveInt
	KindNonNegativeInt
	KindNonNegativeLong
	KindPercentFraction
	KindTimestamp
	KindColor
	KindQuantity
	KindBytes
	KindPairs
	KindTransform
)

var valueKindNames = map[ValueKind]string{
	KindText:            "text",
	KindEnum:            "enum",
	KindBool:            "bool",
	KindInt:             "int",
	KindLong:            "long",
	KindFloat:           "float",
	KindPositiveInt:     "positive_int",
	KindNonNegativeInt:  "non_negative_int",
	KindNonNegativeLong: "non_negative_long",
	KindPercentFraction: "percent_fraction",
	KindTimestamp:       "timestamp",
	KindColor:           "color",
	KindQuantity:        "quantity",
	KindBytes:           "bytes",
	KindPairs:           "pairs",
	KindTransform:       "transform",
}

func (k ValueKind) String() string {
	if name, ok := valueKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a field value. Implementations are the concrete types declared in
// this file; the set is closed.
type Value interface {
	Kind() ValueKind
}

type (
	// Text holds free text. The sanitizing decorator only touches this kind.
	Text string
	// Enum holds an enumerated token such as a detector type.
	Enum string
	Bool bool
	Int  int32
	Long int64
	// Float is a double precision number without unit.
	Float float64
	// PositiveInt is strictly greater than zero.
	PositiveInt int32
	// NonNegativeInt is zero or greater.
	NonNegativeInt int32
	// NonNegativeLong is zero or greater.
	NonNegativeLong int64
	// PercentFraction lies in the closed interval [0, 1].
	PercentFraction float32
	// Color is an RGBA colour packed big-endian into a signed 32-bit integer.
	Color int32
	// Bytes carries binary content such as a mask bitmap.
	Bytes []byte
	// Pairs is an ordered key/value list used by map annotations.
	Pairs []Pair
)

// Timestamp wraps an instant in time.
type Timestamp struct {
	time.Time
}

// Quantity is a measured value with its unit symbol (µm, s, nm, W, °C, ...).
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Pair is a single map annotation entry.
type Pair struct {
	Key   string `json:"k"`
	Value string `json:"v"`
}

// AffineTransform is a 2D affine transform applied to a shape.
type AffineTransform struct {
	A00 float64 `json:"a00"`
	A10 float64 `json:"a10"`
	A01 float64 `json:"a01"`
	A11 float64 `json:"a11"`
	A02 float64 `json:"a02"`
	A12 float64 `json:"a12"`
}

func (Text) Kind() ValueKind            { return KindText }
func (Enum) Kind() ValueKind            { return KindEnum }
func (Bool) Kind() ValueKind            { return KindBool }
func (Int) Kind() ValueKind             { return KindInt }
func (Long) Kind() ValueKind            { return KindLong }
func (Float) Kind() ValueKind           { return KindFloat }
func (PositiveInt) Kind() ValueKind     { return KindPositiveInt }
func (NonNegativeInt) Kind() ValueKind  { return KindNonNegativeInt }
func (NonNegativeLong) Kind() ValueKind { return KindNonNegativeLong }
func (PercentFraction) Kind() ValueKind { return KindPercentFraction }
func (Timestamp) Kind() ValueKind       { return KindTimestamp }
func (Color) Kind() ValueKind           { return KindColor }
func (Quantity) Kind() ValueKind        { return KindQuantity }
func (Bytes) Kind() ValueKind           { return KindBytes }
func (Pairs) Kind() ValueKind           { return KindPairs }
func (AffineTransform) Kind() ValueKind { return KindTransform }

// NewPositiveInt validates v > 0.
func NewPositiveInt(v int) (PositiveInt, error) {
	if v <= 0 || v > 1<<31-1 {
		return 0, fmt.Errorf("%w: positive int %d", ErrValueRange, v)
	}
	return PositiveInt(v), nil
}

// NewNonNegativeInt validates v >= 0.
func NewNonNegativeInt(v int) (NonNegativeInt, error) {
	if v < 0 || v > 1<<31-1 {
		return 0, fmt.Errorf("%w: non-negative int %d", ErrValueRange, v)
	}
	return NonNegativeInt(v), nil
}

// NewNonNegativeLong validates v >= 0.
func NewNonNegativeLong(v int64) (NonNegativeLong, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: non-negative long %d", ErrValueRange, v)
	}
	return NonNegativeLong(v), nil
}

// NewPercentFraction validates 0 <= v <= 1.
func NewPercentFraction(v float32) (PercentFraction, error) {
	if v < 0 || v > 1 || math.IsNaN(float64(v)) {
		return 0, fmt.Errorf("%w: percent fraction %v", ErrValueRange, v)
	}
	return PercentFraction(v), nil
}

// NewColor packs the components as RGBA.
func NewColor(r, g, b, a uint8) Color {
	return Color(int32(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)))
}

// RGBA unpacks the colour components.
func (c Color) RGBA() (r, g, b, a uint8) {
	u := uint32(c)
	return uint8(u >> 24), uint8(u >> 16), uint8(u >> 8), uint8(u)
}

// Non-finite floats have no JSON number form; they encode as these strings.
const (
	jsonNaN    = "NaN"
	jsonPosInf = "Infinity"
	jsonNegInf = "-Infinity"
)

func marshalFloat(f float64, bits int) ([]byte, error) {
	switch {
	case math.IsNaN(f):
		return json.Marshal(jsonNaN)
	case math.IsInf(f, 1):
		return json.Marshal(jsonPosInf)
	case math.IsInf(f, -1):
		return json.Marshal(jsonNegInf)
	case bits == 32:
		return json.Marshal(float32(f))
	}
	return json.Marshal(f)
}

func unmarshalFloat(data []byte, bits int) (float64, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		switch s {
		case jsonNaN:
			return math.NaN(), nil
		case jsonPosInf:
			return math.Inf(1), nil
		case jsonNegInf:
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("%w: float %q", ErrValueType, s)
	}
	if bits == 32 {
		var x float32
		err := json.Unmarshal(data, &x)
		return float64(x), err
	}
	var x float64
	err := json.Unmarshal(data, &x)
	return x, err
}

// jsonFloat is a float64 whose JSON form survives NaN and infinities.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) { return marshalFloat(float64(f), 64) }

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	x, err := unmarshalFloat(data, 64)
	*f = jsonFloat(x)
	return err
}

// MarshalJSON encodes NaN and infinities as strings.
func (f Float) MarshalJSON() ([]byte, error) { return jsonFloat(f).MarshalJSON() }

// UnmarshalJSON accepts numbers and the non-finite strings.
func (f *Float) UnmarshalJSON(data []byte) error { return (*jsonFloat)(f).UnmarshalJSON(data) }

// MarshalJSON encodes NaN and infinities as strings.
func (p PercentFraction) MarshalJSON() ([]byte, error) { return marshalFloat(float64(p), 32) }

// UnmarshalJSON accepts numbers and the non-finite strings.
func (p *PercentFraction) UnmarshalJSON(data []byte) error {
	x, err := unmarshalFloat(data, 32)
	*p = PercentFraction(x)
	return err
}

type quantityJSON struct {
	Value jsonFloat `json:"value"`
	Unit  string    `json:"unit,omitempty"`
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Value: jsonFloat(q.Value), Unit: q.Unit})
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var in quantityJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*q = Quantity{Value: float64(in.Value), Unit: in.Unit}
	return nil
}

type affineJSON struct {
	A00 jsonFloat `json:"a00"`
	A10 jsonFloat `json:"a10"`
	A01 jsonFloat `json:"a01"`
	A11 jsonFloat `json:"a11"`
	A02 jsonFloat `json:"a02"`
	A12 jsonFloat `json:"a12"`
}

func (t AffineTransform) MarshalJSON() ([]byte, error) {
	return json.Marshal(affineJSON{
		A00: jsonFloat(t.A00), A10: jsonFloat(t.A10), A01: jsonFloat(t.A01),
		A11: jsonFloat(t.A11), A02: jsonFloat(t.A02), A12: jsonFloat(t.A12),
	})
}

func (t *AffineTransform) UnmarshalJSON(data []byte) error {
	var in affineJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*t = AffineTransform{
		A00: float64(in.A00), A10: float64(in.A10), A01: float64(in.A01),
		A11: float64(in.A11), A02: float64(in.A02), A12: float64(in.A12),
	}
	return nil
}

// NewTimestamp wraps t, normalised to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// DecodeValue rebuilds a value of the given kind from its JSON encoding.
func DecodeValue(kind ValueKind, raw json.RawMessage) (Value, error) {
	var (
		v   Value
		err error
	)
	switch kind {
	case KindText:
		var x Text
		err = json.Unmarshal(raw, &x)
		v = x
	case KindEnum:
		var x Enum
		err = json.Unmarshal(raw, &x)
		v = x
	case KindBool:
		var x Bool
		err = json.Unmarshal(raw, &x)
		v = x
	case KindInt:
		var x Int
		err = json.Unmarshal(raw, &x)
		v = x
	case KindLong:
		var x Long
		err = json.Unmarshal(raw, &x)
		v = x
	case KindFloat:
		var x Float
		err = json.Unmarshal(raw, &x)
		v = x
	case KindPositiveInt:
		var x PositiveInt
		err = json.Unmarshal(raw, &x)
		v = x
	case KindNonNegativeInt:
		var x NonNegativeInt
		err = json.Unmarshal(raw, &x)
		v = x
	case KindNonNegativeLong:
		var x NonNegativeLong
		err = json.Unmarshal(raw, &x)
		v = x
	case KindPercentFraction:
		var x PercentFraction
		err = json.Unmarshal(raw, &x)
		v = x
	case KindTimestamp:
		var x Timestamp
		err = json.Unmarshal(raw, &x)
		v = x
	case KindColor:
		var x Color
		err = json.Unmarshal(raw, &x)
		v = x
	case KindQuantity:
		var x Quantity
		err = json.Unmarshal(raw, &x)
		v = x
	case KindBytes:
		var x Bytes
		err = json.Unmarshal(raw, &x)
		v = x
	case KindPairs:
		var x Pairs
		err = json.Unmarshal(raw, &x)
		v = x
	case KindTransform:
		var x AffineTransform
		err = json.Unmarshal(raw, &x)
		v = x
	default:
		return nil, fmt.Errorf("%w: unknown kind %s", ErrValueType, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s value: %w", kind, err)
	}
	return v, nil
}
