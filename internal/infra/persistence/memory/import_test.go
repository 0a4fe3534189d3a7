package memory

import (
	"omemeta/pkg/domain"
	"testing"
)

func TestImportDropsFieldsOfOtherVariants(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		fields  map[string]domain.Value
		keep    []string
		drop    []string
	}{
		{
			name:    "laser keeps its own fields",
			variant: "Laser",
			fields: map[string]domain.Value{
				"LaserWavelength":  domain.Quantity{Value: 488, Unit: "nm"},
				"LightSourcePower": domain.Quantity{Value: 5, Unit: "mW"},
				"ArcType":          domain.Enum("Xe"),
			},
			keep: []string{"LaserWavelength", "LightSourcePower"},
			drop: []string{"ArcType"},
		},
		{
			name:    "untagged keeps base fields only",
			variant: "",
			fields: map[string]domain.Value{
				"LightSourcePower": domain.Quantity{Value: 1, Unit: "W"},
				"LaserWavelength":  domain.Quantity{Value: 561, Unit: "nm"},
			},
			keep: []string{"LightSourcePower"},
			drop: []string{"LaserWavelength"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			err := s.ImportState(Snapshot{Entities: map[string][]RecordState{
				"LightSource": {{Index: []int{0, 0}, Variant: tt.variant, Fields: tt.fields}},
			}})
			if err != nil {
				t.Fatalf("import: %v", err)
			}
			exported := s.ExportState().Entities["LightSource"]
			if len(exported) != 1 {
				t.Fatalf("expected one light source, got %d", len(exported))
			}
			got := exported[0].Fields
			for _, name := range tt.keep {
				if _, ok := got[name]; !ok {
					t.Fatalf("expected %s to survive import", name)
				}
			}
			for _, name := range tt.drop {
				if _, ok := got[name]; ok {
					t.Fatalf("expected %s to be dropped, export still carries it", name)
				}
			}
		})
	}
}
