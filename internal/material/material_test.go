package material

import "testing"

func TestNewTableSeedsDefaultMaterial(t *testing.T) {
	tbl := NewTable()
	id, ok := tbl.ByName("default")
	if !ok || id != 0 {
		t.Fatalf("ByName(default) = (%d, %v), want (0, true)", id, ok)
	}
}

func TestAddIsIdempotentByName(t *testing.T) {
	tbl := NewTable()
	a := tbl.Add("glass")
	b := tbl.Add("glass")
	if a != b {
		t.Fatalf("Add(glass) returned different ids on re-add: %d vs %d", a, b)
	}
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	tbl := NewTable()
	a := tbl.Add("metal")
	b := tbl.Add("plastic")
	if b != a+1 {
		t.Fatalf("expected sequential ids, got %d then %d", a, b)
	}
}

func TestGetOutOfRangeFallsBackToDefault(t *testing.T) {
	tbl := NewTable()
	m := tbl.Get(99)
	if m.Name != "default" {
		t.Fatalf("Get(99) = %+v, want the default material", m)
	}
	m = tbl.Get(-1)
	if m.Name != "default" {
		t.Fatalf("Get(-1) = %+v, want the default material", m)
	}
}
