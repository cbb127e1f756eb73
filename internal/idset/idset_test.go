package idset

import "testing"

func TestSetAddContains(t *testing.T) {
	s := New()
	if s.Contains(1) {
		t.Fatal("fresh set should not contain anything")
	}
	if !s.Add(1) {
		t.Error("first Add(1) should report newly-inserted")
	}
	if s.Add(1) {
		t.Error("second Add(1) should report already-present")
	}
	if !s.Contains(1) {
		t.Error("Contains(1) should be true after Add(1)")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSetSliceUnordered(t *testing.T) {
	s := New()
	for _, id := range []uint32{5, 1, 3} {
		s.Add(id)
	}
	got := s.Slice()
	if len(got) != 3 {
		t.Fatalf("Slice() length = %d, want 3", len(got))
	}
	seen := map[uint32]bool{}
	for _, id := range got {
		seen[id] = true
	}
	for _, want := range []uint32{1, 3, 5} {
		if !seen[want] {
			t.Errorf("Slice() missing %d", want)
		}
	}
}

func TestFreezeOrderIndependent(t *testing.T) {
	a := New()
	for _, id := range []uint32{3, 1, 2} {
		a.Add(id)
	}
	b := New()
	for _, id := range []uint32{2, 3, 1} {
		b.Add(id)
	}
	if a.Freeze() != b.Freeze() {
		t.Errorf("Freeze() should be order-independent: %q != %q", a.Freeze(), b.Freeze())
	}
}

func TestFreezeDistinguishesDifferentSets(t *testing.T) {
	a := New()
	a.Add(1)
	a.Add(2)
	b := New()
	b.Add(1)
	b.Add(3)
	if a.Freeze() == b.Freeze() {
		t.Error("different member sets must freeze to different keys")
	}
}

func TestFreezeEmptySet(t *testing.T) {
	if New().Freeze() != Frozen("") {
		t.Errorf("empty set should freeze to the empty Frozen value")
	}
}

func TestFreezeSliceMatchesSetFreeze(t *testing.T) {
	s := New()
	for _, id := range []uint32{7, 2, 9, 2} {
		s.Add(id)
	}
	if FreezeSlice([]uint32{2, 7, 9}) != s.Freeze() {
		t.Error("FreezeSlice on the deduplicated, sorted members should match Set.Freeze")
	}
}

func TestFreezeSliceDoesNotMutateInput(t *testing.T) {
	ids := []uint32{3, 1, 2}
	FreezeSlice(ids)
	if ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
		t.Errorf("FreezeSlice mutated its input: %v", ids)
	}
}
