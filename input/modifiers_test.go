package input

import "testing"

func TestModifiers_Accessors(t *testing.T) {
	m := ModShift | ModCtrl | ModNumLock

	if !m.Shift() || !m.Ctrl() || !m.NumLock() {
		t.Errorf("expected Shift, Ctrl, and NumLock set in %v", m)
	}
	if m.Alt() || m.Super() || m.Hyper() || m.Meta() || m.CapsLock() {
		t.Errorf("expected only Shift, Ctrl, and NumLock set in %v", m)
	}
}

func TestModifiers_SupersetAndSubset(t *testing.T) {
	full := ModShift | ModAlt | ModCtrl
	partial := ModShift | ModCtrl

	if !full.SupersetOf(partial) {
		t.Error("expected full to be a superset of partial")
	}
	if full.SupersetOf(ModSuper) {
		t.Error("did not expect full to be a superset of an unrelated bit")
	}
	if !partial.SubsetOf(full) {
		t.Error("expected partial to be a subset of full")
	}
	if !ModNone.SubsetOf(full) {
		t.Error("expected the empty set to be a subset of anything")
	}
}

func TestModifiers_SetAlgebra(t *testing.T) {
	a := ModShift | ModAlt
	b := ModAlt | ModCtrl

	if got := a.Union(b); got != ModShift|ModAlt|ModCtrl {
		t.Errorf("Union = %v, want Shift+Alt+Ctrl", got)
	}
	if got := a.Intersection(b); got != ModAlt {
		t.Errorf("Intersection = %v, want Alt", got)
	}
	if got := a.Xor(b); got != ModShift|ModCtrl {
		t.Errorf("Xor = %v, want Shift+Ctrl", got)
	}
	if got := a.Complement(); got != ^a {
		t.Errorf("Complement = %v, want %v", got, ^a)
	}
}

func TestModifiers_String(t *testing.T) {
	if got := ModNone.String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
	if got := (ModCtrl | ModAlt).String(); got != "Alt+Ctrl" {
		t.Errorf("String() = %q, want %q", got, "Alt+Ctrl")
	}
}

func TestFromXtermParam(t *testing.T) {
	cases := []struct {
		in   string
		want Modifiers
		ok   bool
	}{
		{"1", ModNone, true},
		{"5", ModCtrl, true},
		{"2", ModShift, true},
		{"6", ModShift | ModCtrl, true},
		{"0", ModNone, false},
		{"", ModNone, false},
		{"1234", ModNone, false},
		{"5a", ModNone, false},
	}

	for _, tc := range cases {
		got, ok := fromXtermParam([]byte(tc.in))
		if ok != tc.ok {
			t.Errorf("fromXtermParam(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("fromXtermParam(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
