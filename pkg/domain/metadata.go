package domain

import "context"

// MetadataRetrieve is the read half of the metadata access contract. Every
// field of the catalogue is addressed by its descriptor and an index tuple of
// length Field.Arity: the ancestor indices of the owning instance, plus the
// position for repeated fields.
type MetadataRetrieve interface {
	// Count reports how many instances of an indexed entity kind exist under
	// the parent index tuple. Zero when nothing was set.
	Count(e *Entity, parent ...int) int
	// RefCount reports the length of a repeated field of the owning instance.
	RefCount(f *Field, owner ...int) int
	// Get returns the value previously set at the index tuple. The second
	// result is false when the field is absent or not applicable.
	Get(f *Field, idx ...int) (Value, bool)
	LightSourceType(instrument, lightSource int) (LightSourceType, bool)
	ShapeType(roi, shape int) (ShapeType, bool)
	UUID() string
	Root() any
}

// MetadataStore is the write half of the metadata access contract.
type MetadataStore interface {
	// CreateRoot starts a fresh, empty document.
	CreateRoot()
	SetRoot(root any) error
	SetUUID(uuid string)
	// Set stores v at the index tuple, overwriting any previous value.
	Set(f *Field, v Value, idx ...int) error
	SetLightSourceType(t LightSourceType, instrument, lightSource int) error
	SetShapeType(t ShapeType, roi, shape int) error
}

// Metadata combines both halves of the contract.
type Metadata interface {
	MetadataRetrieve
	MetadataStore
}

// PersistentStore is a Metadata implementation backed by durable storage.
// Writes accumulate in memory until Commit.
type PersistentStore interface {
	Metadata
	Commit(ctx context.Context) error
	Close() error
}
