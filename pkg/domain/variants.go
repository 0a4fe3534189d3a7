package domain

// LightSourceType tags the concrete variant of a LightSource instance.
type LightSourceType uint8

const (
	LightSourceArc LightSourceType = iota + 1
	LightSourceFilament
	LightSourceLaser
	LightSourceLightEmittingDiode
)

var lightSourceTypeNames = []string{
	LightSourceArc:                "Arc",
	LightSourceFilament:           "Filament",
	LightSourceLaser:              "Laser",
	LightSourceLightEmittingDiode: "LightEmittingDiode",
}

func (t LightSourceType) String() string {
	if t == 0 || int(t) >= len(lightSourceTypeNames) {
		return ""
	}
	return lightSourceTypeNames[t]
}

// Valid reports whether t names a known variant.
func (t LightSourceType) Valid() bool { return t.String() != "" }

// ParseLightSourceType maps a variant name to its tag.
func ParseLightSourceType(name string) (LightSourceType, bool) {
	for i, n := range lightSourceTypeNames {
		if n != "" && n == name {
			return LightSourceType(i), true
		}
	}
	return 0, false
}

// ShapeType tags the concrete variant of a Shape instance.
type ShapeType uint8

const (
	ShapeEllipse ShapeType = iota + 1
	ShapeLine
	ShapeMask
	ShapePoint
	ShapePolygon
	ShapePolyline
	ShapeRectangle
	ShapeLabel
)

var shapeTypeNames = []string{
	ShapeEllipse:   "Ellipse",
	ShapeLine:      "Line",
	ShapeMask:      "Mask",
	ShapePoint:     "Point",
	ShapePolygon:   "Polygon",
	ShapePolyline:  "Polyline",
	ShapeRectangle: "Rectangle",
	ShapeLabel:     "Label",
}

func (t ShapeType) String() string {
	if t == 0 || int(t) >= len(shapeTypeNames) {
		return ""
	}
	return shapeTypeNames[t]
}

// Valid reports whether t names a known variant.
func (t ShapeType) Valid() bool { return t.String() != "" }

// ParseShapeType maps a variant name to its tag.
func ParseShapeType(name string) (ShapeType, bool) {
	for i, n := range shapeTypeNames {
		if n != "" && n == name {
			return ShapeType(i), true
		}
	}
	return 0, false
}
