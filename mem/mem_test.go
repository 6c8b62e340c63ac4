package mem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	ulcio "github.com/ezrec/ulc3/io"
)

func TestMemoryStorage(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}

	assert.Equal(uint16(0), m.Read(0x3000))

	m.Write(0x3000, 0xBEEF)
	assert.Equal(uint16(0xBEEF), m.Read(0x3000))

	m.Write(0x0000, 1)
	m.Write(0xFFFF, 2)
	assert.Equal(uint16(1), m.Read(0x0000))
	assert.Equal(uint16(2), m.Read(0xFFFF))
}

func TestMemoryLoad(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}

	assert.NoError(m.Load(0x3000, []uint16{1, 2, 3}))
	assert.Equal(uint16(1), m.Read(0x3000))
	assert.Equal(uint16(3), m.Read(0x3002))

	// The top word of the address space is still usable.
	assert.NoError(m.Load(0xFFFE, []uint16{7, 8}))
	assert.Equal(uint16(8), m.Read(0xFFFF))
}

func TestMemoryLoadBounds(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}

	err := m.Load(0xFFFF, []uint16{1, 2})
	assert.Error(err)
	assert.True(errors.Is(err, &ErrImageBounds{}))

	var bounds *ErrImageBounds
	assert.True(errors.As(err, &bounds))
	assert.Equal(uint16(0xFFFF), bounds.Origin)
	assert.Equal(2, bounds.Count)
}

func TestKeyboardRegisters(t *testing.T) {
	assert := assert.New(t)

	script := &ulcio.Script{Input: []byte("a")}
	m := &Memory{Keyboard: script}

	// Status polls without consuming.
	assert.Equal(uint16(1<<15), m.Read(KBSR))
	assert.Equal(uint16(1<<15), m.Read(KBSR))

	// Data consumes the pending key and clears the status.
	assert.Equal(uint16('a'), m.Read(KBDR))
	assert.Equal(uint16(0), m.Read(KBSR))

	// Exhausted input reads as zero.
	assert.Equal(uint16(0), m.Read(KBDR))
}

func TestKeyboardAbsent(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}

	assert.Equal(uint16(0), m.Read(KBSR))
	assert.Equal(uint16(0), m.Read(KBDR))
}

func TestKeyboardDataReadOnly(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}

	m.Write(KBDR, 0x1234)
	assert.Equal(uint16(0), m.Read(KBDR))

	// Any other address is plain storage.
	m.Write(0x4000, 0x1234)
	assert.Equal(uint16(0x1234), m.Read(0x4000))
}
