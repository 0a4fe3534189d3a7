package memory

import (
	"encoding/json"
	"fmt"
	"omemeta/pkg/domain"
	"sort"
)

// DocumentBucket holds the document-level bookkeeping (UUID) in bucketed form.
const DocumentBucket = "document"

// Snapshot captures a point-in-time copy of a document, grouped by entity kind.
type Snapshot struct {
	UUID     string                   `json:"uuid,omitempty"`
	Entities map[string][]RecordState `json:"entities"`
}

// RecordState is one entity instance. Index is the instance's index tuple;
// Refs holds repeated fields positionally with nil for unset positions.
type RecordState struct {
	Index   []int
	Variant string
	Fields  map[string]domain.Value
	Refs    map[string][]domain.Value
}

type recordJSON struct {
	Index   []int                        `json:"index"`
	Variant string                       `json:"variant,omitempty"`
	Fields  map[string]json.RawMessage   `json:"fields,omitempty"`
	Refs    map[string][]json.RawMessage `json:"refs,omitempty"`
}

// MarshalJSON encodes values in their natural JSON form; the field
// descriptor recovers the kind on decode.
func (r RecordState) MarshalJSON() ([]byte, error) {
	out := recordJSON{Index: r.Index, Variant: r.Variant}
	if out.Index == nil {
		out.Index = []int{}
	}
	if len(r.Fields) > 0 {
		out.Fields = make(map[string]json.RawMessage, len(r.Fields))
		for name, v := range r.Fields {
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", name, err)
			}
			out.Fields[name] = raw
		}
	}
	if len(r.Refs) > 0 {
		out.Refs = make(map[string][]json.RawMessage, len(r.Refs))
		for name, items := range r.Refs {
			raws := make([]json.RawMessage, len(items))
			for i, v := range items {
				if v == nil {
					raws[i] = json.RawMessage("null")
					continue
				}
				raw, err := json.Marshal(v)
				if err != nil {
					return nil, fmt.Errorf("encode %s[%d]: %w", name, i, err)
				}
				raws[i] = raw
			}
			out.Refs[name] = raws
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a record. Fields unknown to the catalogue are dropped.
func (r *RecordState) UnmarshalJSON(data []byte) error {
	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*r = RecordState{Index: in.Index, Variant: in.Variant}
	for name, raw := range in.Fields {
		f, ok := domain.FieldByName(name)
		if !ok {
			continue
		}
		v, err := domain.DecodeValue(f.Type, raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if r.Fields == nil {
			r.Fields = make(map[string]domain.Value, len(in.Fields))
		}
		r.Fields[name] = v
	}
	for name, raws := range in.Refs {
		f, ok := domain.FieldByName(name)
		if !ok {
			continue
		}
		items := make([]domain.Value, len(raws))
		for i, raw := range raws {
			if len(raw) == 0 || string(raw) == "null" {
				continue
			}
			v, err := domain.DecodeValue(f.Type, raw)
			if err != nil {
				return fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			items[i] = v
		}
		if r.Refs == nil {
			r.Refs = make(map[string][]domain.Value, len(in.Refs))
		}
		r.Refs[name] = items
	}
	return nil
}

type documentJSON struct {
	UUID string `json:"uuid,omitempty"`
}

// Buckets splits the snapshot into one JSON payload per entity kind plus the
// document bucket. Backends persist each bucket under its name.
func (s Snapshot) Buckets() (map[string][]byte, error) {
	out := make(map[string][]byte, len(s.Entities)+1)
	doc, err := json.Marshal(documentJSON{UUID: s.UUID})
	if err != nil {
		return nil, err
	}
	out[DocumentBucket] = doc
	for name, records := range s.Entities {
		if len(records) == 0 {
			continue
		}
		data, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

// SnapshotFromBuckets reverses Buckets.
func SnapshotFromBuckets(buckets map[string][]byte) (Snapshot, error) {
	snap := Snapshot{Entities: make(map[string][]RecordState, len(buckets))}
	for _, name := range BucketNames(buckets) {
		payload := buckets[name]
		if len(payload) == 0 {
			continue
		}
		if name == DocumentBucket {
			var doc documentJSON
			if err := json.Unmarshal(payload, &doc); err != nil {
				return Snapshot{}, fmt.Errorf("decode %s: %w", name, err)
			}
			snap.UUID = doc.UUID
			continue
		}
		var records []RecordState
		if err := json.Unmarshal(payload, &records); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", name, err)
		}
		snap.Entities[name] = records
	}
	return snap, nil
}

// BucketNames returns the bucket names in sorted order.
func BucketNames(buckets map[string][]byte) []string {
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultDocument names the storage partition used when none is configured.
const DefaultDocument = "default"
