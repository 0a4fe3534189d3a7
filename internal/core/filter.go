package core

import (
	"omemeta/pkg/domain"
)

var _ domain.Metadata = (*FilterMetadata)(nil)

// FilterMetadata decorates a metadata store so that free-text values pass
// through Sanitize before they are written. Reads, counts, type tags and
// non-text writes go straight to the delegate.
type FilterMetadata struct {
	domain.Metadata
	clean func(string) string
}

// NewFilterMetadata wraps delegate. With filter unset the decorator is a
// transparent pass-through.
func NewFilterMetadata(delegate domain.Metadata, filter bool) *FilterMetadata {
	if delegate == nil {
		delegate = NullMetadata{}
	}
	return &FilterMetadata{Metadata: delegate, clean: Sanitizer(filter)}
}

// Delegate returns the wrapped store.
func (m *FilterMetadata) Delegate() domain.Metadata { return m.Metadata }

// Set sanitizes Text values and forwards every write to the delegate.
func (m *FilterMetadata) Set(f *domain.Field, v domain.Value, idx ...int) error {
	if t, ok := v.(domain.Text); ok && f != nil && f.Type == domain.KindText {
		v = domain.Text(m.clean(string(t)))
	}
	return m.Metadata.Set(f, v, idx...)
}
