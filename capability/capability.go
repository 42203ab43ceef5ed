// Package capability defines the interface the terminal session and input
// decoder consume to turn named terminfo-style capabilities into output
// bytes, without depending on any particular capability database.
//
// Loading a real terminfo database is explicitly out of scope for this
// core (see the package doc of capability/ansi for the bundled stand-in);
// production callers typically back Provider with a terminfo library keyed
// off $TERM and pass it in.
package capability

import (
	"errors"
	"strconv"
)

// Sentinel errors for the two ways a capability lookup can fail. Provider
// methods themselves return no error and report both outcomes through
// their ok result; nothing in this module returns these sentinels.
var (
	// ErrNotFound indicates the named capability has no entry for the
	// current terminal type.
	ErrNotFound = errors.New("capability: not found")

	// ErrExpandFailed indicates a parameterized capability's template
	// could not be evaluated against the supplied arguments.
	ErrExpandFailed = errors.New("capability: expansion failed")
)

// Provider looks up named terminfo-style capabilities and expands
// parameterized ones into output bytes. Implementations are read-only and
// safe for concurrent use by multiple readers (this core never mutates one
// concurrently, but callers sharing a Provider across goroutines should not
// assume otherwise without checking their own implementation).
type Provider interface {
	// Literal returns the byte string for a boolean/string capability
	// that takes no parameters (e.g. "civis", "smcup"). ok is false if
	// the capability is absent for this terminal.
	Literal(name string) (value []byte, ok bool)

	// Expand evaluates a parameterized capability's template against
	// args and returns the resulting bytes (e.g. "cup" with row, col).
	// ok is false if the capability is absent or the template could not
	// be evaluated against the given arguments.
	Expand(name string, args ...int) (value []byte, ok bool)

	// KeyCapabilities enumerates the well-known key-escape capabilities
	// (kcuu1, kf1..kf35, kich1, khome, ...) this provider knows about, so
	// an input decoder can build its binding table from them. The
	// returned map must not be mutated by callers.
	KeyCapabilities() map[string][]byte
}

// Well-known capability names used by the terminal session (§4.B/§4.C).
// These follow conventional terminfo capnames so a terminfo-backed
// Provider can be substituted without the core caring.
const (
	CapCursorAddress   = "cup"  // Expand(row, col) — move cursor, 1-based.
	CapCursorInvisible = "civis"
	CapCursorNormal    = "cnorm"
	CapEnterBold       = "bold"
	CapExitAttributes  = "sgr0"
	CapEnterReverse    = "rev"
	CapEnterCaMode     = "smcup" // Enter alternate screen.
	CapExitCaMode      = "rmcup" // Exit alternate screen.
	CapSaveCursor      = "sc"
	CapRestoreCursor   = "rc"
	CapBell            = "bel"
	CapClearScreen     = "clear"
)

// Well-known key-escape capability names consulted by the input decoder's
// binding-table construction (spec §4.D "Binding-table population").
const (
	KeyCapTab       = "ht" // horizontal tab, used for plain Tab key binding
	KeyCapBackspace = "kbs"
	KeyCapInsert    = "kich1"
	KeyCapDelete    = "kdch1"
	KeyCapUp        = "kcuu1"
	KeyCapDown      = "kcud1"
	KeyCapLeft      = "kcub1"
	KeyCapRight     = "kcuf1"
	KeyCapPageUp    = "kpp"
	KeyCapPageDown  = "knp"
	KeyCapHome      = "khome"
	KeyCapEnd       = "kend"
	KeyCapMenu      = "kmenu"
)

// KeyCapF returns the conventional terminfo capname for function key n
// (1-35), e.g. KeyCapF(1) == "kf1".
func KeyCapF(n int) string {
	return "kf" + strconv.Itoa(n)
}
