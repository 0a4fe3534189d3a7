package domain

import (
	"fmt"
	"sort"
)

// MaxDepth bounds the length of any index tuple, repeated-field index included.
const MaxDepth = 6

// Cardinality describes how an entity kind hangs off its parent.
type Cardinality uint8

const (
	// Many marks an indexed collection: instances get their own index and a count.
	Many Cardinality = iota
	// One marks a singular child addressed by its parent's index tuple.
	One
)

// Entity describes one entity kind of the metadata schema.
type Entity struct {
	Name        string
	Parent      *Entity
	Cardinality Cardinality

	depth    int
	fields   []*Field
	children []*Entity
	variants []string
}

// Field describes one field of an entity kind. Name doubles as the accessor
// name (ImageName, LaserWavelength, WellSampleAnnotationRef, ...).
type Field struct {
	Name   string
	Entity *Entity
	Type   ValueKind
	// Repeated fields hold an indexed sub-list addressed by one extra trailing index.
	Repeated bool
	// Reference names the entity kind whose identifier this field holds.
	Reference string
	// BackReference marks derived "who points to me" fields.
	BackReference bool
	// Variant names the concrete variant of a polymorphic family the field
	// belongs to. Empty for base fields.
	Variant string
	// Enumeration names the token set of an Enum field.
	Enumeration string
}

var (
	entityRegistry = map[string]*Entity{}
	fieldRegistry  = map[string]*Field{}
)

// Depth is the length of the index tuple addressing one instance.
func (e *Entity) Depth() int { return e.depth }

// Fields returns the declared fields in declaration order. The slice is shared
// and must not be modified.
func (e *Entity) Fields() []*Field { return e.fields }

// Children returns the nested entity kinds in declaration order.
func (e *Entity) Children() []*Entity { return e.children }

// Polymorphic reports whether instances carry a variant type tag.
func (e *Entity) Polymorphic() bool { return len(e.variants) > 0 }

// Variants lists the concrete variant names of a polymorphic family.
func (e *Entity) Variants() []string { return e.variants }

// VariantFields returns the base fields plus the fields of the named variant.
// An empty variant yields the base fields only.
func (e *Entity) VariantFields(variant string) []*Field {
	out := make([]*Field, 0, len(e.fields))
	for _, f := range e.fields {
		if f.Variant == "" || f.Variant == variant {
			out = append(out, f)
		}
	}
	return out
}

func (e *Entity) String() string { return e.Name }

// Arity is the number of indices Get and Set expect for the field.
func (f *Field) Arity() int {
	if f.Repeated {
		return f.Entity.depth + 1
	}
	return f.Entity.depth
}

// IsReference reports whether the field carries another entity's identifier.
func (f *Field) IsReference() bool { return f.Reference != "" && !f.BackReference }

func (f *Field) String() string { return f.Name }

// EntityByName looks up an entity kind.
func EntityByName(name string) (*Entity, bool) {
	e, ok := entityRegistry[name]
	return e, ok
}

// FieldByName looks up a field by accessor name.
func FieldByName(name string) (*Field, bool) {
	f, ok := fieldRegistry[name]
	return f, ok
}

// abstractTargets maps reference targets that name a family rather than a
// registered kind to the concrete kinds that satisfy them.
var abstractTargets = map[string][]string{
	"Annotation": {
		"BooleanAnnotation", "CommentAnnotation", "DoubleAnnotation", "FileAnnotation",
		"ListAnnotation", "LongAnnotation", "MapAnnotation", "TagAnnotation",
		"TermAnnotation", "TimestampAnnotation", "XMLAnnotation",
	},
}

// ReferenceTargets resolves a Reference name to the entity kinds whose
// identifiers a reference field may hold. Unknown names yield nil.
func ReferenceTargets(name string) []*Entity {
	if e, ok := entityRegistry[name]; ok {
		return []*Entity{e}
	}
	names := abstractTargets[name]
	if len(names) == 0 {
		return nil
	}
	out := make([]*Entity, 0, len(names))
	for _, n := range names {
		if e, ok := entityRegistry[n]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Entities returns every registered entity kind sorted by name.
func Entities() []*Entity {
	out := make([]*Entity, 0, len(entityRegistry))
	for _, e := range entityRegistry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Roots returns the top-level entity kinds in traversal order.
func Roots() []*Entity {
	out := make([]*Entity, len(roots))
	copy(out, roots)
	return out
}

// Walk visits fn for every entity kind depth first, roots in traversal order.
func Walk(fn func(*Entity)) {
	var visit func(*Entity)
	visit = func(e *Entity) {
		fn(e)
		for _, c := range e.children {
			visit(c)
		}
	}
	for _, r := range roots {
		visit(r)
	}
}

func register(e *Entity) *Entity {
	if _, dup := entityRegistry[e.Name]; dup {
		panic(fmt.Sprintf("domain: duplicate entity %s", e.Name))
	}
	entityRegistry[e.Name] = e
	return e
}

func root(name string) *Entity {
	return register(&Entity{Name: name, Cardinality: Many, depth: 1})
}

func (e *Entity) child(name string, c Cardinality) *Entity {
	depth := e.depth
	if c == Many {
		depth++
	}
	if depth > MaxDepth-1 {
		panic(fmt.Sprintf("domain: entity %s nests too deep", name))
	}
	ch := register(&Entity{Name: name, Parent: e, Cardinality: c, depth: depth})
	e.children = append(e.children, ch)
	return ch
}

func (e *Entity) many(name string) *Entity { return e.child(name, Many) }

func (e *Entity) one(name string) *Entity { return e.child(name, One) }

func (e *Entity) withVariants(variants ...string) *Entity {
	e.variants = variants
	return e
}

type fieldOption func(*Field)

func repeated() fieldOption { return func(f *Field) { f.Repeated = true } }

func ref(target string) fieldOption { return func(f *Field) { f.Reference = target } }

func backRef(target string) fieldOption {
	return func(f *Field) {
		f.Reference = target
		f.BackReference = true
		f.Repeated = true
	}
}

func variant(name string) fieldOption { return func(f *Field) { f.Variant = name } }

func enum(name string) fieldOption { return func(f *Field) { f.Enumeration = name } }

// field declares a field named <Entity|Variant><suffix>.
func (e *Entity) field(suffix string, kind ValueKind, opts ...fieldOption) *Field {
	f := &Field{Entity: e, Type: kind}
	for _, opt := range opts {
		opt(f)
	}
	prefix := e.Name
	if f.Variant != "" {
		known := false
		for _, v := range e.variants {
			known = known || v == f.Variant
		}
		if !known {
			panic(fmt.Sprintf("domain: %s has no variant %s", e.Name, f.Variant))
		}
		prefix = f.Variant
	}
	f.Name = prefix + suffix
	if _, dup := fieldRegistry[f.Name]; dup {
		panic(fmt.Sprintf("domain: duplicate field %s", f.Name))
	}
	fieldRegistry[f.Name] = f
	e.fields = append(e.fields, f)
	return f
}

func (e *Entity) text(suffix string, opts ...fieldOption) *Field {
	return e.field(suffix, KindText, opts...)
}

func (e *Entity) id() *Field { return e.text("ID") }

func (e *Entity) refTo(suffix, target string) *Field {
	return e.text(suffix, ref(target))
}

func (e *Entity) refsTo(suffix, target string) *Field {
	return e.text(suffix, ref(target), repeated())
}

func (e *Entity) annotationRefs() *Field { return e.refsTo("AnnotationRef", "Annotation") }

func (e *Entity) token(suffix, enumeration string, opts ...fieldOption) *Field {
	return e.field(suffix, KindEnum, append(opts, enum(enumeration))...)
}

func (e *Entity) back(suffix, target string) *Field {
	return e.field(suffix, KindText, backRef(target))
}
