package vm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Terminal adapts the host controlling terminal to the blocking/
// non-blocking keyboard access the LC-3's KBSR/KBDR and GETC/IN traps
// expect. It implements Keyboard.
type Terminal struct {
	fd       int
	original *unix.Termios
}

// NewTerminal returns a Terminal bound to the process's standard input.
func NewTerminal() *Terminal {
	return &Terminal{fd: int(os.Stdin.Fd())}
}

// EnableRawMode captures the current terminal settings and disables
// canonical mode and local echo, so single keystrokes are delivered
// immediately without being echoed. Safe to call on a non-terminal stdin
// (e.g. a pipe in tests); in that case it is a no-op.
func (t *Terminal) EnableRawMode() error {
	original, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		return nil // not a terminal; nothing to configure
	}
	t.original = original

	raw := *original
	raw.Lflag &^= unix.ICANON | unix.ECHO

	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("enable raw terminal mode: %w", err)
	}
	return nil
}

// Restore reverts the terminal to the settings captured by EnableRawMode.
// Safe to call multiple times or when EnableRawMode never captured a
// terminal.
func (t *Terminal) Restore() error {
	if t.original == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, t.original); err != nil {
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	return nil
}

// KeyReady performs a zero-timeout readiness poll on standard input,
// reporting whether at least one byte is available without blocking.
func (t *Terminal) KeyReady() bool {
	var fds unix.FdSet
	fdSet(&fds, t.fd)
	timeout := unix.Timeval{Sec: 0, Usec: 0}

	n, err := unix.Select(t.fd+1, &fds, nil, nil, &timeout)
	return err == nil && n > 0
}

// fdSet marks fd as a member of an fd_set, matching the FD_SET macro.
func fdSet(set *unix.FdSet, fd int) {
	bitsPerWord := 64
	set.Bits[fd/bitsPerWord] |= 1 << (uint(fd) % uint(bitsPerWord))
}

// ReadChar blocks until one byte is available on standard input and
// returns it as its low-byte integer value.
func (t *Terminal) ReadChar() uint16 {
	var buf [1]byte
	n, err := os.Stdin.Read(buf[:])
	if err != nil || n == 0 {
		return 0
	}
	return uint16(buf[0])
}
