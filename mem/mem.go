// Package mem implements the 65536-word address space of the μLC-3
// machine, including the memory-mapped keyboard registers.
package mem

import (
	ulcio "github.com/ezrec/ulc3/io"
)

// Size is the number of addressable words.
const Size = 1 << 16

// Memory-mapped keyboard registers.
const (
	KBSR = uint16(0xFE00) // Keyboard status register. Bit 15 set when a key is pending.
	KBDR = uint16(0xFE02) // Keyboard data register. Reading consumes the pending key.
)

// Memory is the machine's word-addressed storage. Every address behaves
// as plain storage except the keyboard registers, whose reads are routed
// to the attached Keyboard channel.
type Memory struct {
	Keyboard ulcio.Keyboard // Input channel; nil reads as no input.

	cells [Size]uint16
}

// Read returns the word at addr.
//
// Reading KBSR polls the keyboard without consuming the pending key.
// Reading KBDR blocks until a key arrives and returns it zero-extended
// into the low byte; an exhausted keyboard reads as zero.
func (m *Memory) Read(addr uint16) uint16 {
	switch addr {
	case KBSR:
		if m.Keyboard != nil && m.Keyboard.Ready() {
			m.cells[KBSR] = 1 << 15
		} else {
			m.cells[KBSR] = 0
		}
	case KBDR:
		var key byte
		if m.Keyboard != nil {
			key, _ = m.Keyboard.ReadKey()
		}
		m.cells[KBSR] = 0
		m.cells[KBDR] = uint16(key)
	}

	return m.cells[addr]
}

// Write stores value at addr. Writes to the keyboard data register are
// discarded; the device owns that word.
func (m *Memory) Write(addr uint16, value uint16) {
	if addr == KBDR {
		return
	}

	m.cells[addr] = value
}

// Load copies a program image into the address space starting at origin.
func (m *Memory) Load(origin uint16, words []uint16) error {
	if int(origin)+len(words) > Size {
		return &ErrImageBounds{Origin: origin, Count: len(words)}
	}

	copy(m.cells[origin:], words)
	return nil
}
