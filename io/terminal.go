package io

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the interactive console, backed by the process stdin and
// stdout. Raw() puts the terminal into raw mode (no echo, no canonical
// line buffering) so single keystrokes reach the machine immediately;
// Restore() must be called before the process exits.
type Terminal struct {
	in  *os.File
	out *os.File

	saved unix.Termios
	raw   bool
}

var _ Console = (*Terminal)(nil)

// NewTerminal returns a Terminal over the process stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout}
}

// Raw switches the input into raw mode, saving the previous settings.
func (tc *Terminal) Raw() (err error) {
	err = termios.Tcgetattr(tc.in.Fd(), &tc.saved)
	if err != nil {
		return
	}

	state := tc.saved
	state.Lflag &^= unix.ICANON | unix.ECHO
	state.Cc[unix.VMIN] = 1
	state.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(tc.in.Fd(), termios.TCSANOW, &state)
	if err != nil {
		return
	}

	tc.raw = true
	return
}

// Restore puts the input back into the settings saved by Raw.
func (tc *Terminal) Restore() (err error) {
	if !tc.raw {
		return
	}

	tc.raw = false
	return termios.Tcsetattr(tc.in.Fd(), termios.TCSANOW, &tc.saved)
}

// Ready polls the input for a pending key without consuming it.
func (tc *Terminal) Ready() bool {
	fds := []unix.PollFd{{Fd: int32(tc.in.Fd()), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return false
	}

	return (fds[0].Revents & unix.POLLIN) != 0
}

// ReadKey blocks until one key arrives. ok is false at end of input.
func (tc *Terminal) ReadKey() (key byte, ok bool) {
	var one [1]byte

	n, err := tc.in.Read(one[:])
	if err != nil || n == 0 {
		return
	}

	return one[0], true
}

// WriteByte writes a single character to the output, unbuffered.
func (tc *Terminal) WriteByte(key byte) error {
	_, err := tc.out.Write([]byte{key})
	return err
}
