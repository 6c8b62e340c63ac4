package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trapWord(vector uint8) uint16 {
	return enc(op(OP_TRAP), bits(uint16(vector), 12))
}

func TestTrapGetc(t *testing.T) {
	assert := assert.New(t)

	c, script := testCpu("A")
	loadWords(t, c, trapWord(TRAP_GETC))

	assert.NoError(c.Step())
	assert.Equal(uint16('A'), c.Register[0])
	// No echo, and traps never touch the flags.
	assert.Equal("", script.Output.String())
	assert.Equal(FL_ZRO, c.Cond)
}

func TestTrapGetcExhausted(t *testing.T) {
	assert := assert.New(t)

	c, _ := testCpu("")
	c.Register[0] = 0x1234
	loadWords(t, c, trapWord(TRAP_GETC))

	// Exhausted input reads as a zero byte rather than hanging.
	assert.NoError(c.Step())
	assert.Equal(uint16(0), c.Register[0])
	assert.False(c.Halted())
}

func TestTrapOut(t *testing.T) {
	assert := assert.New(t)

	c, script := testCpu("")
	c.Register[0] = uint16('H')
	loadWords(t, c, trapWord(TRAP_OUT))

	assert.NoError(c.Step())
	assert.Equal("H", script.Output.String())
}

func TestTrapPuts(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c, script := testCpu("")
	loadWords(t, c, trapWord(TRAP_PUTS))

	require.NoError(c.Mem.Load(0x3100, []uint16{'H', 'i', '!', 0}))
	c.Register[0] = 0x3100

	assert.NoError(c.Step())
	assert.Equal("Hi!", script.Output.String())
}

func TestTrapIn(t *testing.T) {
	assert := assert.New(t)

	c, script := testCpu("x")
	loadWords(t, c, trapWord(TRAP_IN))

	assert.NoError(c.Step())
	assert.Equal(uint16('x'), c.Register[0])
	assert.Equal("Enter a character: x", script.Output.String())
}

func TestTrapPutsp(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c, script := testCpu("")
	loadWords(t, c, trapWord(TRAP_PUTSP))

	// Two characters per word, low byte first; the zero byte ends the
	// string mid-word.
	require.NoError(c.Mem.Load(0x3100, []uint16{
		uint16('G') | uint16('o')<<8,
		uint16('!'),
	}))
	c.Register[0] = 0x3100

	assert.NoError(c.Step())
	assert.Equal("Go!", script.Output.String())
}

func TestTrapHalt(t *testing.T) {
	assert := assert.New(t)

	c, script := testCpu("")
	loadWords(t, c, trapWord(TRAP_HALT))

	assert.NoError(c.Step())
	assert.True(c.Halted())
	assert.Contains(script.Output.String(), "HALT")

	// Terminal: stepping a halted machine mutates nothing.
	pc := c.Pc
	assert.NoError(c.Step())
	assert.Equal(pc, c.Pc)
	assert.True(c.Halted())
}

func TestTrapUnknownVector(t *testing.T) {
	assert := assert.New(t)

	c, _ := testCpu("")
	loadWords(t, c, trapWord(0x32))

	err := c.Step()
	assert.Error(err)

	var unknown *ErrUnknownTrap
	assert.True(errors.As(err, &unknown))
	assert.Equal(uint8(0x32), unknown.Vector)
	assert.Equal(testOrigin, unknown.Addr)
	assert.True(c.Halted())
	assert.Equal(err, c.Fault())
}
