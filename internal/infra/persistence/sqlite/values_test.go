package sqlite

import (
	"omemeta/pkg/domain"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReopenPreservesValues(t *testing.T) {
	cases := []struct {
		name  string
		field *domain.Field
		value domain.Value
		idx   []int
	}{
		{"text", domain.ImageName, domain.Text("cells"), []int{0}},
		{"nested text", domain.ChannelName, domain.Text("GFP"), []int{2, 1}},
		{"bounded int", domain.WellColumn, domain.NonNegativeInt(7), []int{0, 3}},
		{"quantity", domain.PixelsPhysicalSizeX, domain.Quantity{Value: 0.65, Unit: "µm"}, []int{0}},
		{"plate", domain.PlateName, domain.Text("P-01"), []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "meta.db")
			s, err := NewStore(path, "values")
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if err := s.Set(tc.field, tc.value, tc.idx...); err != nil {
				t.Fatalf("set %s: %v", tc.field.Name, err)
			}
			if err := s.Commit(t.Context()); err != nil {
				t.Fatalf("commit: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			again, err := NewStore(path, "values")
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer func() { _ = again.Close() }()
			got, ok := again.Get(tc.field, tc.idx...)
			if !ok {
				t.Fatalf("%s%v missing after reopen", tc.field.Name, tc.idx)
			}
			if !reflect.DeepEqual(got, tc.value) {
				t.Fatalf("%s%v = %#v, want %#v", tc.field.Name, tc.idx, got, tc.value)
			}
		})
	}
}
