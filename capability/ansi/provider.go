// Package ansi provides a built-in, dependency-free capability.Provider
// covering the xterm/ECMA-48 sequences this core needs: cursor addressing
// and visibility, SGR attributes, alternate-screen entry/exit, cursor
// save/restore, bell, and the default key-escape bindings also used to seed
// the input decoder's binding table (spec §4.D "default seed table").
//
// This stands in for a real terminfo database lookup, which is an external
// collaborator this core deliberately does not implement (see spec.md §1).
// Any capability.Provider backed by a terminfo library is a drop-in
// replacement; this one exists so the rest of the core is testable and the
// demo binary has something to run against without a terminfo dependency.
package ansi

import (
	"fmt"

	"github.com/latticeterm/tuicore/capability"
)

// Provider implements capability.Provider using hardcoded xterm/ECMA-48
// escape sequences. The zero value is ready to use.
type Provider struct{}

// New returns an ansi.Provider.
func New() *Provider {
	return &Provider{}
}

var literals = map[string][]byte{
	capability.CapCursorInvisible: []byte("\x1b[?25l"),
	capability.CapCursorNormal:    []byte("\x1b[?25h"),
	capability.CapEnterBold:       []byte("\x1b[1m"),
	capability.CapExitAttributes:  []byte("\x1b(B\x1b[m"),
	capability.CapEnterReverse:    []byte("\x1b[7m"),
	capability.CapEnterCaMode:     []byte("\x1b[?1049h"),
	capability.CapExitCaMode:      []byte("\x1b[?1049l"),
	capability.CapSaveCursor:      []byte("\x1b[s"),
	capability.CapRestoreCursor:   []byte("\x1b[u"),
	capability.CapBell:            []byte("\x07"),
	capability.CapClearScreen:     []byte("\x1b[2J\x1b[H"),
}

// Literal implements capability.Provider.
func (p *Provider) Literal(name string) ([]byte, bool) {
	v, ok := literals[name]
	return v, ok
}

// Expand implements capability.Provider. Only capability.CapCursorAddress
// is parameterized in this provider; it expects (row, col), both 0-based,
// and emits the 1-based "CSI row ; col H" form.
func (p *Provider) Expand(name string, args ...int) ([]byte, bool) {
	switch name {
	case capability.CapCursorAddress:
		if len(args) != 2 {
			return nil, false
		}
		row, col := args[0], args[1]
		if row < 0 || col < 0 {
			return nil, false
		}
		return []byte(fmt.Sprintf("\x1b[%d;%dH", row+1, col+1)), true
	default:
		return nil, false
	}
}

// keyCapabilities holds the default xterm-ish escape sequences for the
// well-known key-escape capabilities. Each value is the complete sequence
// as the terminal would send it, "ESC [" or "ESC O" introducer included,
// the way a real terminfo entry presents it.
var keyCapabilities = map[string][]byte{
	capability.KeyCapTab:       {'\t'},
	capability.KeyCapBackspace: {0x7f},
	capability.KeyCapInsert:    []byte("\x1b[2~"),
	capability.KeyCapDelete:    []byte("\x1b[3~"),
	capability.KeyCapUp:        []byte("\x1b[A"),
	capability.KeyCapDown:      []byte("\x1b[B"),
	capability.KeyCapRight:     []byte("\x1b[C"),
	capability.KeyCapLeft:      []byte("\x1b[D"),
	capability.KeyCapPageUp:    []byte("\x1b[5~"),
	capability.KeyCapPageDown:  []byte("\x1b[6~"),
	capability.KeyCapHome:      []byte("\x1b[H"),
	capability.KeyCapEnd:       []byte("\x1b[F"),
	capability.KeyCapMenu:      []byte("\x1b[29~"),

	capability.KeyCapF(1):  []byte("\x1bOP"),
	capability.KeyCapF(2):  []byte("\x1bOQ"),
	capability.KeyCapF(3):  []byte("\x1bOR"),
	capability.KeyCapF(4):  []byte("\x1bOS"),
	capability.KeyCapF(5):  []byte("\x1b[15~"),
	capability.KeyCapF(6):  []byte("\x1b[17~"),
	capability.KeyCapF(7):  []byte("\x1b[18~"),
	capability.KeyCapF(8):  []byte("\x1b[19~"),
	capability.KeyCapF(9):  []byte("\x1b[20~"),
	capability.KeyCapF(10): []byte("\x1b[21~"),
	capability.KeyCapF(11): []byte("\x1b[23~"),
	capability.KeyCapF(12): []byte("\x1b[24~"),
}

// KeyCapabilities implements capability.Provider.
func (p *Provider) KeyCapabilities() map[string][]byte {
	return keyCapabilities
}
