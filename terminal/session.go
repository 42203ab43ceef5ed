//go:build unix

// Package terminal owns a POSIX tty: raw mode, the alternate screen,
// window size, and parameterized capability output. It never logs and
// never reads configuration or the environment on its own; every
// behavior is driven by the explicit calls a caller makes.
//
// Windows is out of scope: this package only builds under unix (Linux,
// macOS, the BSDs).
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/latticeterm/tuicore/capability"
)

// state is the session's lifecycle: cooked -> raw -> alternate-screen ->
// closed. Raw mode must be entered before the alternate screen and left
// after it, mirroring how real programs enter/exit these modes in
// nested order.
type state int

const (
	stateCooked state = iota
	stateRaw
	stateAltScreen
	stateClosed
)

// change is a single revertible terminal mutation: the undo bytes
// replayed, in reverse insertion order, on teardown.
type change struct {
	undo []byte
}

// Session owns a tty and the sequence of reversible changes made to it.
// The zero value is not usable; construct one with Open (a real tty) or
// NewSession (a caller-supplied writer, e.g. for deterministic tests).
type Session struct {
	writer   io.Writer
	provider capability.Provider

	state   state
	changes []change

	// tty and origTermios are only set when the session owns a real
	// file descriptor (via Open); NewSession leaves them zero, and raw
	// mode then becomes a pure state-machine transition with no termios
	// syscalls, per spec's buffered-output test mode.
	tty         *os.File
	origTermios unix.Termios
	hasTTY      bool

	suspendedFromAltScreen bool
}

// NewSession wraps an already-open writer (typically a buffer in tests)
// with session bookkeeping. EnterRawMode and EnterAltScreen still track
// state and emit capability bytes through w, but make no termios or
// ioctl calls. Most callers should use Open instead.
func NewSession(w io.Writer, provider capability.Provider) *Session {
	return &Session{writer: w, provider: provider, state: stateCooked}
}

// Open acquires the controlling terminal at /dev/tty and returns a
// Session backed by it. The session starts in cooked mode.
func Open(provider capability.Provider) (*Session, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("terminal: open /dev/tty: %w", err)
	}
	t, err := unix.IoctlGetTermios(int(f.Fd()), ioctlGetTermios)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("terminal: get termios: %w", err)
	}
	return &Session{
		writer:      f,
		provider:    provider,
		state:       stateCooked,
		tty:         f,
		origTermios: *t,
		hasTTY:      true,
	}, nil
}

// State reporting.

func (s *Session) IsRaw() bool       { return s.state == stateRaw || s.state == stateAltScreen }
func (s *Session) IsAltScreen() bool { return s.state == stateAltScreen }
func (s *Session) IsClosed() bool    { return s.state == stateClosed }

func (s *Session) push(undo []byte) {
	s.changes = append(s.changes, change{undo: undo})
}

func (s *Session) emit(b []byte) error {
	if s.state == stateClosed {
		return ErrClosed
	}
	if _, err := s.writer.Write(b); err != nil {
		return fmt.Errorf("terminal: write: %w", err)
	}
	return nil
}

func (s *Session) literal(name string) ([]byte, error) {
	b, ok := s.provider.Literal(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCapabilityMissing, name)
	}
	return b, nil
}

// MoveCursor moves the cursor to the given 0-based row and column,
// converting to the 1-based coordinates terminals expect.
func (s *Session) MoveCursor(row, col int) error {
	b, ok := s.provider.Expand(capability.CapCursorAddress, row, col)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCapabilityMissing, capability.CapCursorAddress)
	}
	return s.emit(b)
}

// HideCursor and ShowCursor toggle cursor visibility.
func (s *Session) HideCursor() error {
	b, err := s.literal(capability.CapCursorInvisible)
	if err != nil {
		return err
	}
	return s.emit(b)
}

func (s *Session) ShowCursor() error {
	b, err := s.literal(capability.CapCursorNormal)
	if err != nil {
		return err
	}
	return s.emit(b)
}

// Bell rings the terminal bell.
func (s *Session) Bell() error {
	b, err := s.literal(capability.CapBell)
	if err != nil {
		return err
	}
	return s.emit(b)
}

// ClearScreen clears the screen and homes the cursor.
func (s *Session) ClearScreen() error {
	b, err := s.literal(capability.CapClearScreen)
	if err != nil {
		return err
	}
	return s.emit(b)
}

// EnterBoldMode and ExitAttributeMode toggle SGR bold and reset all
// attributes, respectively.
func (s *Session) EnterBoldMode() error {
	b, err := s.literal(capability.CapEnterBold)
	if err != nil {
		return err
	}
	return s.emit(b)
}

func (s *Session) ExitAttributeMode() error {
	b, err := s.literal(capability.CapExitAttributes)
	if err != nil {
		return err
	}
	return s.emit(b)
}

// EnterReverseMode swaps foreground and background (SGR reverse video).
// Cleared the same way as bold, via ExitAttributeMode.
func (s *Session) EnterReverseMode() error {
	b, err := s.literal(capability.CapEnterReverse)
	if err != nil {
		return err
	}
	return s.emit(b)
}

// SetBackground16 sets the legacy 8-color SGR background. color must be
// in [0, 8); out-of-range values panic, mirroring original_source's
// assert!(color < 8, ...) in set_bg_16 (a programmer error, not a
// recoverable runtime condition).
func (s *Session) SetBackground16(color int) error {
	if color < 0 || color >= 8 {
		panic(ErrColorOutOfRange)
	}
	return s.emit([]byte(fmt.Sprintf("\x1b[%dm", 40+color)))
}

// SetForeground16 sets the legacy 8-color SGR foreground, the 30+n
// counterpart to SetBackground16's 40+n. color must be in [0, 8);
// out-of-range values panic for the same reason SetBackground16's do.
func (s *Session) SetForeground16(color int) error {
	if color < 0 || color >= 8 {
		panic(ErrColorOutOfRange)
	}
	return s.emit([]byte(fmt.Sprintf("\x1b[%dm", 30+color)))
}

// EnterRawMode switches the tty out of canonical/echo mode (see
// original_source/src/tty.rs's uncook: IGNBRK, BRKINT, PARMRK, ISTRIP,
// ICRNL, IGNCR, IXON, OPOST, ECHO, ECHONL, ICANON, ISIG, IEXTEN, CSIZE,
// PARENB cleared, CS8 set, VMIN=1, VTIME=0, applied with TCSAFLUSH), or,
// in buffered test mode (no real tty), just records the transition.
func (s *Session) EnterRawMode() error {
	if s.state != stateCooked {
		return ErrAlreadyRaw
	}
	if s.hasTTY {
		raw := rawTermios(s.origTermios)
		if err := unix.IoctlSetTermios(int(s.tty.Fd()), ioctlSetTermiosFlush, &raw); err != nil {
			return fmt.Errorf("terminal: set raw termios: %w", err)
		}
	}
	s.state = stateRaw
	return nil
}

// ExitRawMode restores the termios snapshot taken by Open.
func (s *Session) ExitRawMode() error {
	if s.state != stateRaw {
		return ErrNotRaw
	}
	if err := s.restoreTermios(); err != nil {
		return err
	}
	s.state = stateCooked
	return nil
}

func (s *Session) restoreTermios() error {
	if !s.hasTTY {
		return nil
	}
	if err := unix.IoctlSetTermios(int(s.tty.Fd()), ioctlSetTermiosFlush, &s.origTermios); err != nil {
		return fmt.Errorf("terminal: restore termios: %w", err)
	}
	return nil
}

// rawTermios returns orig with the raw-mode flag mask applied, per
// original_source/src/tty.rs's uncook.
func rawTermios(orig unix.Termios) unix.Termios {
	raw := orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.ICRNL | unix.IGNCR | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	return raw
}

// EnterAltScreen switches to the alternate screen buffer, saving the
// sequence needed to undo it. Must be called while in raw mode.
func (s *Session) EnterAltScreen() error {
	if s.state == stateAltScreen {
		return ErrAlreadyAltScreen
	}
	if s.state != stateRaw {
		return fmt.Errorf("terminal: enter alternate screen: %w", ErrNotRaw)
	}
	apply, err := s.literal(capability.CapEnterCaMode)
	if err != nil {
		return err
	}
	undo, err := s.literal(capability.CapExitCaMode)
	if err != nil {
		return err
	}
	if err := s.emit(apply); err != nil {
		return err
	}
	s.push(undo)
	s.state = stateAltScreen
	return nil
}

// ExitAltScreen leaves the alternate screen buffer, returning to raw mode.
func (s *Session) ExitAltScreen() error {
	if s.state != stateAltScreen {
		return ErrNotAltScreen
	}
	undo, err := s.literal(capability.CapExitCaMode)
	if err != nil {
		return err
	}
	if err := s.emit(undo); err != nil {
		return err
	}
	s.popMatching(undo)
	s.state = stateRaw
	return nil
}

// popMatching drops the most recently pushed change if its undo bytes
// match, so an explicit ExitAltScreen isn't replayed a second time by
// Close.
func (s *Session) popMatching(undo []byte) {
	if n := len(s.changes); n > 0 && string(s.changes[n-1].undo) == string(undo) {
		s.changes = s.changes[:n-1]
	}
}

// WindowSize reports the tty's current size in rows and columns via
// TIOCGWINSZ. Returns an error in buffered test mode, since there is no
// real tty to query.
func (s *Session) WindowSize() (rows, cols int, err error) {
	if !s.hasTTY {
		return 0, 0, fmt.Errorf("terminal: window size: %w", ErrCapabilityMissing)
	}
	ws, err := unix.IoctlGetWinsize(int(s.tty.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: get window size: %w", err)
	}
	return int(ws.Row), int(ws.Col), nil
}

// Suspend restores cooked mode and shows the cursor without discarding
// the raw-mode snapshot, so Resume can re-enter exactly where Suspend
// left off. Used around running an external foreground process.
func (s *Session) Suspend() error {
	wasAltScreen := s.state == stateAltScreen
	if s.state != stateRaw && s.state != stateAltScreen {
		return fmt.Errorf("terminal: suspend: %w", ErrNotRaw)
	}
	if err := s.ShowCursor(); err != nil {
		return err
	}
	if err := s.restoreTermios(); err != nil {
		return err
	}
	if wasAltScreen {
		s.state = stateCooked
		s.suspendedFromAltScreen = true
		return nil
	}
	s.state = stateCooked
	return nil
}

// Resume re-applies raw mode (and the alternate screen, if Suspend left
// it active) after a Suspend.
func (s *Session) Resume() error {
	if s.state != stateCooked {
		return fmt.Errorf("terminal: resume: %w", ErrAlreadyRaw)
	}
	if s.hasTTY {
		raw := rawTermios(s.origTermios)
		if err := unix.IoctlSetTermios(int(s.tty.Fd()), ioctlSetTermiosFlush, &raw); err != nil {
			return fmt.Errorf("terminal: resume raw mode: %w", err)
		}
	}
	s.state = stateRaw
	if s.suspendedFromAltScreen {
		s.suspendedFromAltScreen = false
		s.state = stateAltScreen
	}
	return s.HideCursor()
}

// Close tears the session down: replays every outstanding revertible
// change in reverse order, exits raw mode if still active, and releases
// the underlying tty. Every step is attempted even if an earlier one
// fails (spec's "swallow and continue" teardown); the first error
// encountered is returned once teardown completes.
func (s *Session) Close() error {
	if s.state == stateClosed {
		return nil
	}
	var firstErr error
	note := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for i := len(s.changes) - 1; i >= 0; i-- {
		note(s.emit(s.changes[i].undo))
	}
	s.changes = nil

	if s.state == stateRaw || s.state == stateAltScreen {
		note(s.restoreTermios())
	}
	s.state = stateClosed

	if s.hasTTY {
		note(s.tty.Close())
	}
	return firstErr
}
