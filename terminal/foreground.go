//go:build unix

package terminal

import (
	"fmt"
	"os/exec"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// RunForeground runs cmd with the controlling terminal's foreground
// process group transferred to it for the duration of the call, so job
// control signals (Ctrl-Z, Ctrl-C) reach cmd rather than this process.
// The session is suspended (cooked mode, cursor shown) before the child
// starts and resumed afterward, regardless of whether cmd succeeds.
//
// Grounded in the teacher's tty_control_unix.go: tcsetpgrp must be
// called from the parent, never the child (see
// https://github.com/golang/go/issues/37217), and SIGTTOU must be
// ignored around the call or the parent can be stopped by the kernel for
// changing a background process group's terminal.
func (s *Session) RunForeground(cmd *exec.Cmd) error {
	if !s.hasTTY {
		return fmt.Errorf("terminal: run foreground: %w", ErrCapabilityMissing)
	}
	fd := int(s.tty.Fd())

	parentPgid, err := unix.Tcgetpgrp(fd)
	if err != nil {
		return fmt.Errorf("terminal: tcgetpgrp: %w", err)
	}

	signal.Ignore(syscall.SIGTTOU)
	defer signal.Reset(syscall.SIGTTOU)

	if err := s.Suspend(); err != nil {
		return fmt.Errorf("terminal: suspend before foreground exec: %w", err)
	}

	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
	cmd.SysProcAttr.Pgid = 0

	if err := cmd.Start(); err != nil {
		_ = s.Resume()
		return fmt.Errorf("terminal: start foreground command: %w", err)
	}

	if err := unix.Tcsetpgrp(fd, int32(cmd.Process.Pid)); err != nil {
		_ = cmd.Process.Kill()
		_ = s.Resume()
		return fmt.Errorf("terminal: transfer foreground: %w", err)
	}

	cmdErr := cmd.Wait()

	if err := unix.Tcsetpgrp(fd, parentPgid); err != nil {
		cmdErr = fmt.Errorf("terminal: reclaim foreground: %w (command error: %v)", err, cmdErr)
	}

	if err := s.Resume(); err != nil {
		if cmdErr != nil {
			return fmt.Errorf("terminal: resume after foreground exec: %w (command error: %v)", err, cmdErr)
		}
		return fmt.Errorf("terminal: resume after foreground exec: %w", err)
	}

	return cmdErr
}
