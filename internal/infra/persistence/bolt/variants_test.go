package bolt

import (
	"omemeta/pkg/domain"
	"path/filepath"
	"testing"
)

func TestBoltReopenPreservesVariantTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.bolt")
	s, err := NewStore(path, "tags")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	lights := []domain.LightSourceType{
		domain.LightSourceArc,
		domain.LightSourceFilament,
		domain.LightSourceLaser,
		domain.LightSourceLightEmittingDiode,
	}
	for i, tag := range lights {
		if err := s.SetLightSourceType(tag, 0, i); err != nil {
			t.Fatalf("tag light source %d as %s: %v", i, tag, err)
		}
	}
	shapes := []domain.ShapeType{domain.ShapeEllipse, domain.ShapeMask, domain.ShapeRectangle, domain.ShapeLabel}
	for i, tag := range shapes {
		if err := s.SetShapeType(tag, 1, i); err != nil {
			t.Fatalf("tag shape %d as %s: %v", i, tag, err)
		}
	}
	if err := s.Commit(t.Context()); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	again, err := NewStore(path, "tags")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = again.Close() }()
	for i, want := range lights {
		got, ok := again.LightSourceType(0, i)
		if !ok || got != want {
			t.Fatalf("LightSourceType(0, %d) = %s, %v; want %s", i, got, ok, want)
		}
	}
	for i, want := range shapes {
		got, ok := again.ShapeType(1, i)
		if !ok || got != want {
			t.Fatalf("ShapeType(1, %d) = %s, %v; want %s", i, got, ok, want)
		}
	}
	if n := again.Count(domain.LightSource, 0); n != len(lights) {
		t.Fatalf("Count(LightSource, 0) = %d, want %d", n, len(lights))
	}
}
