//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import "golang.org/x/sys/unix"

// BSD-family (including Darwin) termios ioctl requests. TIOCSETAF is the
// TCSAFLUSH-equivalent form: apply after draining output, discarding
// unread input.
const (
	ioctlGetTermios      = unix.TIOCGETA
	ioctlSetTermiosFlush = unix.TIOCSETAF
)
