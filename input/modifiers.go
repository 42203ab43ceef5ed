package input

// Modifiers is an 8-bit set of held modifier/lock keys, matching the
// xterm modifier-parameter bit layout used by parameterized CSI
// sequences (spec §4.D "Modifier decoding"):
//
//	bit0 shift     bit1 alt       bit2 ctrl      bit3 super
//	bit4 hyper     bit5 meta      bit6 caps-lock bit7 num-lock
type Modifiers uint8

// Individual modifier bits.
const (
	ModNone     Modifiers = 0
	ModShift    Modifiers = 1 << 0
	ModAlt      Modifiers = 1 << 1
	ModCtrl     Modifiers = 1 << 2
	ModSuper    Modifiers = 1 << 3
	ModHyper    Modifiers = 1 << 4
	ModMeta     Modifiers = 1 << 5
	ModCapsLock Modifiers = 1 << 6
	ModNumLock  Modifiers = 1 << 7
)

// Has reports whether every bit set in other is also set in m.
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// SupersetOf reports whether m contains every bit of other.
func (m Modifiers) SupersetOf(other Modifiers) bool {
	return m|other == m
}

// SubsetOf reports whether every bit of m is also set in other.
func (m Modifiers) SubsetOf(other Modifiers) bool {
	return m|other == other
}

// Union returns the bitwise OR of m and other.
func (m Modifiers) Union(other Modifiers) Modifiers {
	return m | other
}

// Intersection returns the bitwise AND of m and other.
func (m Modifiers) Intersection(other Modifiers) Modifiers {
	return m & other
}

// Xor returns the bitwise XOR of m and other.
func (m Modifiers) Xor(other Modifiers) Modifiers {
	return m ^ other
}

// Complement returns the bitwise NOT of m.
func (m Modifiers) Complement() Modifiers {
	return ^m
}

// Shift, Alt, Ctrl, Super, Hyper, Meta, CapsLock, and NumLock each report
// whether the corresponding bit is set.
func (m Modifiers) Shift() bool    { return m&ModShift != 0 }
func (m Modifiers) Alt() bool      { return m&ModAlt != 0 }
func (m Modifiers) Ctrl() bool     { return m&ModCtrl != 0 }
func (m Modifiers) Super() bool    { return m&ModSuper != 0 }
func (m Modifiers) Hyper() bool    { return m&ModHyper != 0 }
func (m Modifiers) Meta() bool     { return m&ModMeta != 0 }
func (m Modifiers) CapsLock() bool { return m&ModCapsLock != 0 }
func (m Modifiers) NumLock() bool  { return m&ModNumLock != 0 }

// String renders the set modifiers as a "+"-joined list, e.g. "Ctrl+Alt".
// Returns "none" for the empty set.
func (m Modifiers) String() string {
	if m == ModNone {
		return "none"
	}
	var out []byte
	add := func(name string) {
		if len(out) > 0 {
			out = append(out, '+')
		}
		out = append(out, name...)
	}
	if m.Shift() {
		add("Shift")
	}
	if m.Alt() {
		add("Alt")
	}
	if m.Ctrl() {
		add("Ctrl")
	}
	if m.Super() {
		add("Super")
	}
	if m.Hyper() {
		add("Hyper")
	}
	if m.Meta() {
		add("Meta")
	}
	if m.CapsLock() {
		add("CapsLock")
	}
	if m.NumLock() {
		add("NumLock")
	}
	return string(out)
}

// fromXtermParam decodes the xterm modifier parameter convention: the
// encoded value is modifiers+1, so a bare "1" (no modifiers) decodes to
// ModNone. ok is false if the parameter is empty, longer than 3 digits,
// non-numeric, or zero (xterm never emits 0).
func fromXtermParam(digits []byte) (Modifiers, bool) {
	if len(digits) == 0 || len(digits) > 3 {
		return ModNone, false
	}
	n := 0
	for _, d := range digits {
		if d < '0' || d > '9' {
			return ModNone, false
		}
		n = n*10 + int(d-'0')
	}
	if n == 0 {
		return ModNone, false
	}
	return Modifiers(n - 1), true
}
