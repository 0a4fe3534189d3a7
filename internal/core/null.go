package core

import (
	"context"
	"omemeta/pkg/domain"
)

var _ domain.PersistentStore = NullMetadata{}

// NullMetadata implements the access contract with no state: every read is
// absent, every count zero and every write a successful no-op. It stands in
// wherever a destination is not wired up yet.
type NullMetadata struct{}

func (NullMetadata) Count(*domain.Entity, ...int) int              { return 0 }
func (NullMetadata) RefCount(*domain.Field, ...int) int            { return 0 }
func (NullMetadata) Get(*domain.Field, ...int) (domain.Value, bool) { return nil, false }

func (NullMetadata) LightSourceType(int, int) (domain.LightSourceType, bool) { return 0, false }
func (NullMetadata) ShapeType(int, int) (domain.ShapeType, bool)             { return 0, false }

func (NullMetadata) UUID() string { return "" }
func (NullMetadata) Root() any    { return nil }

func (NullMetadata) CreateRoot()       {}
func (NullMetadata) SetRoot(any) error { return nil }
func (NullMetadata) SetUUID(string)    {}

func (NullMetadata) Set(*domain.Field, domain.Value, ...int) error { return nil }

func (NullMetadata) SetLightSourceType(domain.LightSourceType, int, int) error { return nil }
func (NullMetadata) SetShapeType(domain.ShapeType, int, int) error             { return nil }

func (NullMetadata) Commit(context.Context) error { return nil }
func (NullMetadata) Close() error                 { return nil }
