package cache

import (
	"errors"
	"testing"
)

func TestBase_LazyRecompute(t *testing.T) {
	c := newTestContainer(t, 2)

	s, err := Resolve[*scaled](c, "scaled", param(3))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !s.NeedsUpdate() {
		t.Fatal("fresh cache should need update")
	}

	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.calls != 1 {
		t.Errorf("calls = %d, want 1", s.calls)
	}
	if s.value != 6 {
		t.Errorf("value = %v, want 6", s.value)
	}
	if s.NeedsUpdate() {
		t.Error("cache should be fresh after Update")
	}

	for range 3 {
		if err := s.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if s.calls != 1 {
		t.Errorf("calls after repeated Update = %d, want 1", s.calls)
	}
}

func TestBase_DetachedUpdateFails(t *testing.T) {
	s := &scaled{}

	if !s.NeedsUpdate() {
		t.Error("zero cache should need update")
	}
	err := s.Update()
	if !errors.Is(err, ErrUnowned) {
		t.Errorf("Update() error = %v, want ErrUnowned", err)
	}
	if s.calls != 0 {
		t.Errorf("Recompute called %d times on detached cache", s.calls)
	}
}

func TestBase_VertexRequiresContainer(t *testing.T) {
	s := &scaled{}
	if _, err := s.Vertex(); !errors.Is(err, ErrUnowned) {
		t.Errorf("Vertex() error = %v, want ErrUnowned", err)
	}
	if s.Container() != nil {
		t.Error("detached cache should have nil container")
	}

	c := NewContainer(nil, WithRegistry(newTestRegistry(t)))
	s2, err := Resolve[*scaled](c, "scaled")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, err := s2.Vertex(); !errors.Is(err, ErrNilVertex) {
		t.Errorf("Vertex() error = %v, want ErrNilVertex", err)
	}
}

func TestBase_RecomputeErrorLeavesStale(t *testing.T) {
	c := newTestContainer(t, 1)
	f, err := Resolve[*failing](c, "failing", param(1))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	err = f.Update()
	if !errors.Is(err, errRecompute) {
		t.Fatalf("Update() error = %v, want errRecompute", err)
	}
	if !f.NeedsUpdate() {
		t.Error("failed cache should stay stale")
	}

	_ = f.Update()
	if f.calls != 2 {
		t.Errorf("calls = %d, want 2 (one per explicit Update)", f.calls)
	}
}

func TestBase_Accessors(t *testing.T) {
	c := newTestContainer(t, 1)
	s, err := Resolve[*scaled](c, "scaled", param(1), param(2))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if s.Kind() != "scaled" {
		t.Errorf("Kind() = %q, want scaled", s.Kind())
	}
	if !s.Key().Equal(NewKey("scaled", param(1), param(2))) {
		t.Errorf("Key() = %s, want scaled[1,2]", s.Key())
	}
	if s.Container() != c {
		t.Error("Container() should return the owning container")
	}
	v, err := s.Vertex()
	if err != nil || v.ID() != 1 {
		t.Errorf("Vertex() = %v, %v; want vertex 1", v, err)
	}
	if s.ElementType() != ElementType {
		t.Errorf("ElementType() = %q, want %q", s.ElementType(), ElementType)
	}

	params := s.Parameters()
	params[0] = param(9)
	if s.Key().String() != "scaled[1,2]" {
		t.Errorf("Parameters() exposed internal slice: %s", s.Key())
	}
}
