package input

import "github.com/latticeterm/tuicore/capability"

// binding pairs a parsed CSI command with the key code it represents.
type binding struct {
	csi  CSICommand
	code KeyCode
}

// BindingTable is an ordered list of (CSI command, key code) pairs.
// Lookup is a linear scan using the two match rules in spec §4.D; the
// first hit wins, so insertion order is significant and preserved by
// every method here.
type BindingTable struct {
	bindings []binding
}

// NewBindingTable returns an empty binding table.
func NewBindingTable() *BindingTable {
	return &BindingTable{}
}

// Push appends a (CSI, key code) pair to the end of the table.
func (t *BindingTable) Push(csi CSICommand, code KeyCode) {
	t.bindings = append(t.bindings, binding{csi: csi, code: code})
}

// Match returns the key code bound to the first entry whose CSI matches
// cmd under the spec §4.D match rules, or ok=false if none match.
func (t *BindingTable) Match(cmd CSICommand) (code KeyCode, ok bool) {
	for _, b := range t.bindings {
		if cmd.matches(b.csi) {
			return b.code, true
		}
	}
	return 0, false
}

// defaultSeedTable holds the default xterm-ish bindings (spec §4.D
// "A default seed table adds common xterm-ish escapes ... so decoding
// works without a terminfo entry"), keyed by the literal escape sequence
// each entry would parse from. The SS3 forms of F1-F4 (ESC O P/Q/R/S)
// use a different introducer than CSI and are bound separately, by
// ss3SeedTable below.
var defaultSeedTable = []struct {
	seq  []byte
	code KeyCode
}{
	{[]byte("\x1b[2~"), KeyInsert},
	{[]byte("\x1b[3~"), KeyDelete},
	{[]byte("\x1b[A"), KeyUp},
	{[]byte("\x1b[B"), KeyDown},
	{[]byte("\x1b[C"), KeyRight},
	{[]byte("\x1b[D"), KeyLeft},
	{[]byte("\x1b[H"), KeyHome},
	{[]byte("\x1b[F"), KeyEnd},
	{[]byte("\x1b[11~"), KeyF1},
	{[]byte("\x1b[12~"), KeyF2},
	{[]byte("\x1b[13~"), KeyF3},
	{[]byte("\x1b[14~"), KeyF4},
	{[]byte("\x1b[15~"), KeyF5},
	{[]byte("\x1b[17~"), KeyF6},
	{[]byte("\x1b[18~"), KeyF7},
	{[]byte("\x1b[19~"), KeyF8},
	{[]byte("\x1b[20~"), KeyF9},
	{[]byte("\x1b[21~"), KeyF10},
	{[]byte("\x1b[23~"), KeyF11},
	{[]byte("\x1b[24~"), KeyF12},
	{[]byte("\x1b[29~"), KeyMenu},
}

// capabilityKeyOrder lists the well-known key-escape capability names in
// the order spec §4.D "Binding-table population" enumerates them, so
// table construction from a capability.Provider is deterministic.
var capabilityKeyOrder = buildCapabilityKeyOrder()

func buildCapabilityKeyOrder() []string {
	names := []string{
		capability.KeyCapTab, capability.KeyCapBackspace,
		capability.KeyCapInsert, capability.KeyCapDelete,
		capability.KeyCapLeft, capability.KeyCapRight,
		capability.KeyCapUp, capability.KeyCapDown,
		capability.KeyCapPageUp, capability.KeyCapPageDown,
		capability.KeyCapHome, capability.KeyCapEnd, capability.KeyCapMenu,
	}
	for n := 1; n <= 35; n++ {
		names = append(names, capability.KeyCapF(n))
	}
	return names
}

func capabilityNameToKeyCode(name string) (KeyCode, bool) {
	switch name {
	case capability.KeyCapTab:
		return KeyTab, true
	case capability.KeyCapBackspace:
		return KeyBackspace, true
	case capability.KeyCapInsert:
		return KeyInsert, true
	case capability.KeyCapDelete:
		return KeyDelete, true
	case capability.KeyCapLeft:
		return KeyLeft, true
	case capability.KeyCapRight:
		return KeyRight, true
	case capability.KeyCapUp:
		return KeyUp, true
	case capability.KeyCapDown:
		return KeyDown, true
	case capability.KeyCapPageUp:
		return KeyPageUp, true
	case capability.KeyCapPageDown:
		return KeyPageDown, true
	case capability.KeyCapHome:
		return KeyHome, true
	case capability.KeyCapEnd:
		return KeyEnd, true
	case capability.KeyCapMenu:
		return KeyMenu, true
	}
	for n := 1; n <= 35; n++ {
		if name == capability.KeyCapF(n) {
			return F(n), true
		}
	}
	return 0, false
}

// ss3SeedTable binds the SS3 form of F1-F4 (ESC O P/Q/R/S). SS3 uses a
// different introducer than CSI, so these are pushed as ready-made
// CSICommand values rather than parsed from a literal escape sequence;
// matching still goes through the same final-byte-equality rule CSI
// letter commands use.
var ss3SeedTable = []struct {
	final byte
	code  KeyCode
}{
	{'P', KeyF1},
	{'Q', KeyF2},
	{'R', KeyF3},
	{'S', KeyF4},
}

// NewBindingTableFromProvider builds a binding table the way spec §4.D
// describes: first the default seed table (so decoding works without a
// terminfo entry), then one entry per known key-capability the provider
// has, each stripped of its "ESC [" prefix (ParseCSI accepts both forms)
// and parsed as a CSI. Capabilities that fail to parse as a CSI are
// skipped, matching the source's push_from_terminfo which silently drops
// non-CSI entries.
func NewBindingTableFromProvider(p capability.Provider) *BindingTable {
	t := NewBindingTable()

	for _, seed := range defaultSeedTable {
		if cmd, _, ok := ParseCSI(seed.seq); ok {
			t.Push(cmd, seed.code)
		}
	}
	for _, seed := range ss3SeedTable {
		t.Push(CSICommand{Final: seed.final}, seed.code)
	}

	caps := p.KeyCapabilities()
	for _, name := range capabilityKeyOrder {
		seq, present := caps[name]
		if !present {
			continue
		}
		code, known := capabilityNameToKeyCode(name)
		if !known {
			continue
		}
		if cmd, _, ok := ParseCSI(seq); ok {
			t.Push(cmd, code)
		}
	}

	return t
}
