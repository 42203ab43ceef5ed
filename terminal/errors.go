//go:build unix

package terminal

import "errors"

// Sentinel errors for the session's state machine, missing capabilities,
// and out-of-range legacy colors. I/O and termios failures have no
// sentinel here: they are returned wrapping the underlying error with %w,
// in the teacher's plain fmt.Errorf("...: %w", err) style.
var (
	ErrAlreadyRaw        = errors.New("terminal: already in raw mode")
	ErrNotRaw            = errors.New("terminal: not in raw mode")
	ErrAlreadyAltScreen  = errors.New("terminal: already in alternate screen")
	ErrNotAltScreen      = errors.New("terminal: not in alternate screen")
	ErrClosed            = errors.New("terminal: session is closed")
	ErrCapabilityMissing = errors.New("terminal: capability not present in provider")
	ErrColorOutOfRange   = errors.New("terminal: legacy color code must be in [0, 8)")
)
