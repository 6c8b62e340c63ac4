// Package io provides the character I/O channels for the μLC-3 machine.
// A channel is the machine's only connection to the outside world: the
// keyboard side feeds the memory-mapped status/data registers and the
// GETC/IN traps, the display side receives the OUT/PUTS/PUTSP traps.
package io

// Keyboard is the machine's character input capability.
type Keyboard interface {
	// Ready reports whether a key is pending, without consuming it.
	Ready() bool
	// ReadKey blocks until a key is available and consumes it.
	// ok is false once the input is exhausted.
	ReadKey() (key byte, ok bool)
}

// Display is the machine's character output capability.
type Display interface {
	// WriteByte writes a single character to the display.
	WriteByte(key byte) error
}

// Console couples a Keyboard and a Display into one full-duplex channel.
type Console interface {
	Keyboard
	Display
}
