// Package memory provides the arena-backed in-memory implementation of the
// metadata access contract. The persistence backends hydrate one of these on
// open and snapshot it on commit.
package memory

import (
	"context"
	"fmt"
	"omemeta/pkg/domain"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Compile-time contract assertion.
var _ domain.PersistentStore = (*Store)(nil)

// DefaultMaxIndex bounds every position of an index tuple accepted by Set.
const DefaultMaxIndex = 1 << 20

type key struct {
	n   uint8
	idx [domain.MaxDepth]int
}

func keyOf(idx []int) key {
	k := key{n: uint8(len(idx))}
	copy(k.idx[:], idx)
	return k
}

func (k key) path() []int {
	out := make([]int, k.n)
	copy(out, k.idx[:k.n])
	return out
}

func (k key) less(o key) bool {
	for i := 0; i < int(k.n) && i < int(o.n); i++ {
		if k.idx[i] != o.idx[i] {
			return k.idx[i] < o.idx[i]
		}
	}
	return k.n < o.n
}

type refList struct {
	items map[int]domain.Value
	n     int
}

type record struct {
	variant string
	fields  map[*domain.Field]domain.Value
	refs    map[*domain.Field]*refList
}

func newRecord() *record {
	return &record{
		fields: make(map[*domain.Field]domain.Value),
		refs:   make(map[*domain.Field]*refList),
	}
}

// Store keeps one arena of records per entity kind, keyed by index tuple, and
// the child counts of every indexed collection keyed by parent tuple.
type Store struct {
	mu       sync.RWMutex
	uuid     string
	maxIndex int
	arenas   map[*domain.Entity]map[key]*record
	counts   map[*domain.Entity]map[key]int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxIndex overrides DefaultMaxIndex. Values <= 0 keep the default.
func WithMaxIndex(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxIndex = n
		}
	}
}

// NewStore returns an empty document without UUID.
func NewStore(opts ...Option) *Store {
	s := &Store{maxIndex: DefaultMaxIndex}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.arenas = make(map[*domain.Entity]map[key]*record)
	s.counts = make(map[*domain.Entity]map[key]int)
}

// lookup returns the record of e at idx without creating it.
func (s *Store) lookup(e *domain.Entity, idx []int) *record {
	recs := s.arenas[e]
	if recs == nil {
		return nil
	}
	return recs[keyOf(idx[:e.Depth()])]
}

// touch returns the record of e at idx, creating it and bumping the parent's
// count when needed.
func (s *Store) touch(e *domain.Entity, idx []int) *record {
	idx = idx[:e.Depth()]
	recs := s.arenas[e]
	if recs == nil {
		recs = make(map[key]*record)
		s.arenas[e] = recs
	}
	k := keyOf(idx)
	if r, ok := recs[k]; ok {
		return r
	}
	r := newRecord()
	recs[k] = r
	if e.Cardinality == domain.Many {
		counts := s.counts[e]
		if counts == nil {
			counts = make(map[key]int)
			s.counts[e] = counts
		}
		last := len(idx) - 1
		pk := keyOf(idx[:last])
		if idx[last]+1 > counts[pk] {
			counts[pk] = idx[last] + 1
		}
	}
	return r
}

// ensure creates the records of e and all of its ancestors.
func (s *Store) ensure(e *domain.Entity, idx []int) *record {
	for a := e.Parent; a != nil; a = a.Parent {
		s.touch(a, idx)
	}
	return s.touch(e, idx)
}

func (s *Store) checkIndex(name string, arity int, idx []int) error {
	if len(idx) != arity {
		return domain.FieldError{Field: name, Index: idx, Err: fmt.Errorf("%w: want %d indices, got %d", domain.ErrInvalidIndex, arity, len(idx))}
	}
	for _, i := range idx {
		if i < 0 || i > s.maxIndex {
			return domain.FieldError{Field: name, Index: idx, Err: domain.ErrInvalidIndex}
		}
	}
	return nil
}

// Count implements domain.MetadataRetrieve.
func (s *Store) Count(e *domain.Entity, parent ...int) int {
	if e == nil || e.Cardinality != domain.Many || len(parent) != e.Depth()-1 {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[e][keyOf(parent)]
}

// RefCount implements domain.MetadataRetrieve.
func (s *Store) RefCount(f *domain.Field, owner ...int) int {
	if f == nil || !f.Repeated || len(owner) != f.Entity.Depth() {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.lookup(f.Entity, owner)
	if r == nil || !variantMatches(f, r.variant) {
		return 0
	}
	if l := r.refs[f]; l != nil {
		return l.n
	}
	return 0
}

// Get implements domain.MetadataRetrieve. Wrong arity, negative indices and
// wrong-variant fields all read as absent.
func (s *Store) Get(f *domain.Field, idx ...int) (domain.Value, bool) {
	if f == nil || !domain.ValidIndex(f, idx) {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.lookup(f.Entity, idx)
	if r == nil || !variantMatches(f, r.variant) {
		return nil, false
	}
	if !f.Repeated {
		v, ok := r.fields[f]
		if !ok {
			return nil, false
		}
		return cloneValue(v), true
	}
	l := r.refs[f]
	if l == nil {
		return nil, false
	}
	v, ok := l.items[idx[len(idx)-1]]
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// Set implements domain.MetadataStore.
func (s *Store) Set(f *domain.Field, v domain.Value, idx ...int) error {
	if f == nil {
		return fmt.Errorf("%w: nil field", domain.ErrNotApplicable)
	}
	if v == nil || v.Kind() != f.Type {
		return domain.FieldError{Field: f.Name, Index: idx, Err: domain.ErrValueType}
	}
	if err := s.checkIndex(f.Name, f.Arity(), idx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Variant != "" {
		if r := s.lookup(f.Entity, idx); r != nil && r.variant != "" && r.variant != f.Variant {
			return domain.FieldError{Field: f.Name, Index: idx, Err: fmt.Errorf("%w: instance is a %s", domain.ErrNotApplicable, r.variant)}
		}
	}
	r := s.ensure(f.Entity, idx)
	if f.Variant != "" && r.variant == "" {
		r.variant = f.Variant
	}
	setField(r, f, cloneValue(v), idx)
	return nil
}

func setField(r *record, f *domain.Field, v domain.Value, idx []int) {
	if !f.Repeated {
		r.fields[f] = v
		return
	}
	l := r.refs[f]
	if l == nil {
		l = &refList{items: make(map[int]domain.Value)}
		r.refs[f] = l
	}
	pos := idx[len(idx)-1]
	l.items[pos] = v
	if pos+1 > l.n {
		l.n = pos + 1
	}
}

// LightSourceType implements domain.MetadataRetrieve.
func (s *Store) LightSourceType(instrument, lightSource int) (domain.LightSourceType, bool) {
	tag, ok := s.tagOf(domain.LightSource, instrument, lightSource)
	if !ok {
		return 0, false
	}
	return domain.ParseLightSourceType(tag)
}

// ShapeType implements domain.MetadataRetrieve.
func (s *Store) ShapeType(roi, shape int) (domain.ShapeType, bool) {
	tag, ok := s.tagOf(domain.Shape, roi, shape)
	if !ok {
		return 0, false
	}
	return domain.ParseShapeType(tag)
}

func (s *Store) tagOf(e *domain.Entity, idx ...int) (string, bool) {
	if idx[0] < 0 || idx[1] < 0 {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.lookup(e, idx)
	if r == nil || r.variant == "" {
		return "", false
	}
	return r.variant, true
}

// SetLightSourceType implements domain.MetadataStore.
func (s *Store) SetLightSourceType(t domain.LightSourceType, instrument, lightSource int) error {
	if !t.Valid() {
		return domain.FieldError{Field: "LightSourceType", Index: []int{instrument, lightSource}, Err: domain.ErrValueType}
	}
	return s.setVariant(domain.LightSource, t.String(), instrument, lightSource)
}

// SetShapeType implements domain.MetadataStore.
func (s *Store) SetShapeType(t domain.ShapeType, roi, shape int) error {
	if !t.Valid() {
		return domain.FieldError{Field: "ShapeType", Index: []int{roi, shape}, Err: domain.ErrValueType}
	}
	return s.setVariant(domain.Shape, t.String(), roi, shape)
}

// setVariant tags the instance. Re-tagging drops the previous variant's fields.
func (s *Store) setVariant(e *domain.Entity, tag string, idx ...int) error {
	if err := s.checkIndex(e.Name+"Type", e.Depth(), idx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.ensure(e, idx)
	if r.variant != "" && r.variant != tag {
		for f := range r.fields {
			if f.Variant == r.variant {
				delete(r.fields, f)
			}
		}
		for f := range r.refs {
			if f.Variant == r.variant {
				delete(r.refs, f)
			}
		}
	}
	r.variant = tag
	return nil
}

// CreateRoot implements domain.MetadataStore. The fresh document gets a new
// urn:uuid identifier.
func (s *Store) CreateRoot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.uuid = "urn:uuid:" + uuid.NewString()
}

// Root returns the store itself.
func (s *Store) Root() any { return s }

// SetRoot adopts the state of another memory store or of a snapshot.
func (s *Store) SetRoot(root any) error {
	switch r := root.(type) {
	case *Store:
		if r == s {
			return nil
		}
		return s.ImportState(r.ExportState())
	case Snapshot:
		return s.ImportState(r)
	case *Snapshot:
		if r == nil {
			return domain.ErrUnsupportedRoot
		}
		return s.ImportState(*r)
	default:
		return fmt.Errorf("%w: %T", domain.ErrUnsupportedRoot, root)
	}
}

// UUID implements domain.MetadataRetrieve.
func (s *Store) UUID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uuid
}

// SetUUID implements domain.MetadataStore.
func (s *Store) SetUUID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uuid = id
}

// Commit is a no-op; the memory store has nothing to flush.
func (s *Store) Commit(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

// ExportState returns a deep copy of the document.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{UUID: s.uuid, Entities: make(map[string][]RecordState, len(s.arenas))}
	for e, recs := range s.arenas {
		keys := make([]key, 0, len(recs))
		for k := range recs {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
		states := make([]RecordState, 0, len(keys))
		for _, k := range keys {
			states = append(states, exportRecord(k, recs[k]))
		}
		snap.Entities[e.Name] = states
	}
	return snap
}

func exportRecord(k key, r *record) RecordState {
	rs := RecordState{Index: k.path(), Variant: r.variant}
	if len(r.fields) > 0 {
		rs.Fields = make(map[string]domain.Value, len(r.fields))
		for f, v := range r.fields {
			rs.Fields[f.Name] = cloneValue(v)
		}
	}
	if len(r.refs) > 0 {
		rs.Refs = make(map[string][]domain.Value, len(r.refs))
		for f, l := range r.refs {
			items := make([]domain.Value, l.n)
			for pos, v := range l.items {
				items[pos] = cloneValue(v)
			}
			rs.Refs[f.Name] = items
		}
	}
	return rs
}

// ImportState replaces the document with the snapshot. Entity kinds and
// fields unknown to this schema are dropped.
func (s *Store) ImportState(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.uuid = snap.UUID
	for name, states := range snap.Entities {
		e, ok := domain.EntityByName(name)
		if !ok {
			continue
		}
		for _, rs := range states {
			if err := s.importRecord(e, rs); err != nil {
				return fmt.Errorf("import %s%v: %w", name, rs.Index, err)
			}
		}
	}
	return nil
}

// variantMatches reports whether f may be stored on an instance tagged
// variant. Fields of another variant are dropped on import.
func variantMatches(f *domain.Field, variant string) bool {
	return f.Variant == "" || f.Variant == variant
}

func (s *Store) importRecord(e *domain.Entity, rs RecordState) error {
	if err := s.checkIndex(e.Name, e.Depth(), rs.Index); err != nil {
		return err
	}
	if rs.Variant != "" && !knownVariant(e, rs.Variant) {
		return fmt.Errorf("%w: unknown variant %s", domain.ErrValueType, rs.Variant)
	}
	r := s.ensure(e, rs.Index)
	r.variant = rs.Variant
	for name, v := range rs.Fields {
		f, ok := domain.FieldByName(name)
		if !ok || f.Entity != e || f.Repeated || !variantMatches(f, rs.Variant) {
			continue
		}
		if v == nil || v.Kind() != f.Type {
			return domain.FieldError{Field: name, Index: rs.Index, Err: domain.ErrValueType}
		}
		r.fields[f] = cloneValue(v)
	}
	for name, items := range rs.Refs {
		f, ok := domain.FieldByName(name)
		if !ok || f.Entity != e || !f.Repeated || !variantMatches(f, rs.Variant) {
			continue
		}
		idx := append(append(make([]int, 0, len(rs.Index)+1), rs.Index...), 0)
		for pos, v := range items {
			if v == nil {
				continue
			}
			if v.Kind() != f.Type {
				return domain.FieldError{Field: name, Index: rs.Index, Err: domain.ErrValueType}
			}
			idx[len(idx)-1] = pos
			setField(r, f, cloneValue(v), idx)
		}
		if l := r.refs[f]; l != nil && len(items) > l.n {
			l.n = len(items)
		} else if l == nil && len(items) > 0 {
			r.refs[f] = &refList{items: make(map[int]domain.Value), n: len(items)}
		}
	}
	return nil
}

func knownVariant(e *domain.Entity, tag string) bool {
	for _, v := range e.Variants() {
		if v == tag {
			return true
		}
	}
	return false
}

func cloneValue(v domain.Value) domain.Value {
	switch x := v.(type) {
	case domain.Bytes:
		out := make(domain.Bytes, len(x))
		copy(out, x)
		return out
	case domain.Pairs:
		out := make(domain.Pairs, len(x))
		copy(out, x)
		return out
	default:
		return v
	}
}
