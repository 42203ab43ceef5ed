package terminal

import "golang.org/x/sys/unix"

// Linux termios ioctl requests. TCSETSF applies atomically after
// draining pending output and discarding unread input, the TCSAFLUSH
// semantics spec.md requires for every termios change this package makes.
const (
	ioctlGetTermios      = unix.TCGETS
	ioctlSetTermiosFlush = unix.TCSETSF
)
