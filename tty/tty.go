// Package tty is the raw-mode terminal driver collaborator: acquiring
// the real descriptor, saving and restoring its termios, and doing the
// blocking byte I/O that the core engine deliberately never does
// itself (it consumes exactly one fed byte per call and never reads).
package tty

import (
	"sync/atomic"
	"syscall"
	"time"
	"unsafe"

	"github.com/daedaluz/fdev/poll"
	ioctl "github.com/daedaluz/goioctl"
)

// Terminal is an open character device with its original termios saved
// for Restore.
type Terminal struct {
	fd     int
	closed atomic.Bool
	saved  Termios
}

// Open opens path (typically "/dev/tty" or a pty peer) for reading and
// writing and captures its current termios so Restore can undo
// whatever mode change the caller makes.
func Open(path string) (*Terminal, error) {
	fd, err := syscall.Open(path, syscall.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		return nil, wrapErr("open", err)
	}
	t := &Terminal{fd: fd}
	saved, err := t.GetAttr()
	if err != nil {
		syscall.Close(fd)
		return nil, wrapErr("get initial attr", err)
	}
	t.saved = *saved
	return t, nil
}

// GetAttr reads the terminal's current termios.
func (t *Terminal) GetAttr() (*Termios, error) {
	attrs := &Termios{}
	if err := ioctl.Ioctl(uintptr(t.fd), tcgets, uintptr(unsafe.Pointer(attrs))); err != nil {
		return nil, err
	}
	return attrs, nil
}

// SetAttr writes attrs to the terminal.
func (t *Terminal) SetAttr(when Action, attrs *Termios) error {
	return ioctl.Ioctl(uintptr(t.fd), tcsets+uintptr(when), uintptr(unsafe.Pointer(attrs)))
}

// MakeRaw reads the current termios, clears canonicalization/echo/
// signals/input-translation, and writes it back immediately.
func (t *Terminal) MakeRaw() error {
	attrs, err := t.GetAttr()
	if err != nil {
		return wrapErr("make raw", err)
	}
	attrs.MakeRaw()
	return t.SetAttr(TCSANOW, attrs)
}

// Restore writes back the termios captured at Open.
func (t *Terminal) Restore() error {
	saved := t.saved
	return t.SetAttr(TCSANOW, &saved)
}

// ReadByte blocks for exactly one byte, per §6.7's one-byte-per-
// keypress contract.
func (t *Terminal) ReadByte() (byte, error) {
	if t.closed.Load() {
		return 0, ErrClosed
	}
	var buf [1]byte
	for {
		n, err := syscall.Read(t.fd, buf[:])
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			return 0, wrapErr("read", err)
		}
		if n == 1 {
			return buf[0], nil
		}
	}
}

// Write passes p straight through to the descriptor.
func (t *Terminal) Write(p []byte) (int, error) {
	if t.closed.Load() {
		return 0, ErrClosed
	}
	return syscall.Write(t.fd, p)
}

// WriteByte implements emsh.Writer.
func (t *Terminal) WriteByte(b byte) error {
	_, err := t.Write([]byte{b})
	return err
}

// WriteString implements emsh.Writer.
func (t *Terminal) WriteString(s string) error {
	_, err := t.Write([]byte(s))
	return err
}

// WaitReadable blocks until a byte is available or timeout elapses,
// without consuming it. A cooperative command task (see cmd/emshd's
// sleep command) uses this to poll for an abort keystroke between
// steps instead of busy-looping.
func (t *Terminal) WaitReadable(timeout time.Duration) error {
	return poll.WaitInput(t.fd, timeout)
}

// Fd returns the underlying descriptor, or -1 once closed.
func (t *Terminal) Fd() int {
	if t.closed.Load() {
		return -1
	}
	return t.fd
}

// Close restores the saved termios and closes the descriptor.
func (t *Terminal) Close() error {
	if t.closed.Swap(true) {
		return ErrClosed
	}
	_ = t.Restore()
	return syscall.Close(t.fd)
}
