package arena

import "testing"

func TestArena_InsertGet_RoundTrips(t *testing.T) {
	a := New[string]()

	handles := make([]Handle[string], 0, 5)
	for i, v := range []string{"a", "b", "c", "d", "e"} {
		h := a.Insert(v)
		if h.Index() != i {
			t.Fatalf("insert %d: got index %d, want %d", i, h.Index(), i)
		}
		handles = append(handles, h)
	}

	for i, h := range handles {
		got, ok := a.Get(h)
		if !ok {
			t.Fatalf("handle %d: Get reported absent", i)
		}
		want := []string{"a", "b", "c", "d", "e"}[i]
		if got != want {
			t.Errorf("handle %d: got %q, want %q", i, got, want)
		}
	}
}

func TestArena_RemoveThenGet_ReturnsAbsent(t *testing.T) {
	a := New[int]()
	h := a.Insert(42)

	a.Remove(h)

	if _, ok := a.Get(h); ok {
		t.Error("Get after Remove should report absent")
	}
}

func TestArena_StaleHandleAfterReuse_ReturnsAbsent(t *testing.T) {
	a := New[int]()
	stale := a.Insert(1)
	a.Remove(stale)

	fresh := a.Insert(2)

	if stale.Index() != fresh.Index() {
		t.Fatalf("expected slot reuse, got indices %d and %d", stale.Index(), fresh.Index())
	}
	if stale.generation == fresh.generation {
		t.Fatal("expected generation to bump on reuse")
	}

	if _, ok := a.Get(stale); ok {
		t.Error("stale handle should report absent after slot reuse")
	}
	got, ok := a.Get(fresh)
	if !ok || got != 2 {
		t.Errorf("fresh handle: got (%v, %v), want (2, true)", got, ok)
	}
}

func TestArena_InsertPlacement_ReusesFirstDeadSlot(t *testing.T) {
	a := New[int]()
	h0 := a.Insert(0)
	h1 := a.Insert(1)
	a.Insert(2)

	a.Remove(h0)
	a.Remove(h1)

	// Slot 0 is dead and is the lowest dead index, so it's reused first.
	next := a.Insert(99)
	if next.Index() != 0 {
		t.Errorf("expected next insert to reuse slot 0, got slot %d", next.Index())
	}

	// Slot 1 is still dead and is now the lowest dead index.
	next2 := a.Insert(100)
	if next2.Index() != 1 {
		t.Errorf("expected second insert to reuse slot 1, got slot %d", next2.Index())
	}
}

func TestArena_InsertPlacement_AppendsWhenNoDeadSlots(t *testing.T) {
	a := New[int]()
	a.Insert(1)
	a.Insert(2)

	h := a.Insert(3)
	if h.Index() != 2 {
		t.Errorf("expected append at index 2, got %d", h.Index())
	}
}

func TestArena_GetMut_MutatesInPlace(t *testing.T) {
	a := New[int]()
	h := a.Insert(10)

	if p := a.GetMut(h); p != nil {
		*p = 20
	} else {
		t.Fatal("GetMut returned nil for live handle")
	}

	got, ok := a.Get(h)
	if !ok || got != 20 {
		t.Errorf("got (%v, %v), want (20, true)", got, ok)
	}
}

func TestArena_GetMut_NilForStaleHandle(t *testing.T) {
	a := New[int]()
	h := a.Insert(1)
	a.Remove(h)

	if p := a.GetMut(h); p != nil {
		t.Error("GetMut should return nil for removed handle")
	}
}

func TestArena_Len_TracksLiveSlotsOnly(t *testing.T) {
	a := New[int]()
	h1 := a.Insert(1)
	a.Insert(2)
	a.Insert(3)

	if got := a.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	a.Remove(h1)
	if got := a.Len(); got != 2 {
		t.Fatalf("Len() after remove = %d, want 2", got)
	}
}

func TestArena_GetOutOfRange_ReturnsAbsent(t *testing.T) {
	a := New[int]()
	if _, ok := a.Get(Handle[int]{index: 5, generation: 0}); ok {
		t.Error("Get on out-of-range handle should report absent")
	}
}
