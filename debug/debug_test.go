package debug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ulc3/cpu"
	"github.com/ezrec/ulc3/mem"
)

// testMachine builds a CPU with a counting loop loaded at 0x3000:
//
//	0x3000: ADD R0, R0, #1
//	0x3001: BRnzp #-2
func testMachine(t *testing.T) *cpu.Cpu {
	m := &mem.Memory{}
	require.NoError(t, m.Load(0x3000, []uint16{0x1021, 0x0FFE}))

	c := cpu.New(m, nil)
	c.Pc = 0x3000

	return c
}

func TestBreakpointFires(t *testing.T) {
	assert := assert.New(t)

	c := testMachine(t)

	var hits int
	dbg := &Debugger{
		Breakpoints: []Breakpoint{{Addr: 0x3001}},
	}
	dbg.HandleBreak = func(dbg *Debugger, c *cpu.Cpu) {
		hits++
		c.Stop()
	}
	dbg.Attach(c)

	assert.NoError(c.Run())
	assert.Equal(1, hits)
	assert.Equal(uint16(0x3001), c.Pc)
	assert.Equal(uint16(1), c.Register[0])
}

func TestBreakpointCondition(t *testing.T) {
	assert := assert.New(t)

	c := testMachine(t)

	var seen uint16
	dbg := &Debugger{
		Breakpoints: []Breakpoint{{Addr: 0x3001, Cond: "r0 == 3"}},
	}
	dbg.HandleBreak = func(dbg *Debugger, c *cpu.Cpu) {
		seen = c.Register[0]
		c.Stop()
	}
	dbg.Attach(c)

	assert.NoError(c.Run())
	assert.Equal(uint16(3), seen)
}

func TestBreakpointConditionPc(t *testing.T) {
	assert := assert.New(t)

	c := testMachine(t)

	var fired bool
	dbg := &Debugger{
		Breakpoints: []Breakpoint{{Addr: 0x3000, Cond: "pc == 0x3000"}},
	}
	dbg.HandleBreak = func(dbg *Debugger, c *cpu.Cpu) {
		fired = true
		c.Stop()
	}
	dbg.Attach(c)

	assert.NoError(c.Run())
	assert.True(fired)
}

func TestBreakpointBadCondition(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// A condition that does not parse never fires; the run proceeds
	// to HALT.
	m := &mem.Memory{}
	require.NoError(m.Load(0x3000, []uint16{0x1021, 0xF025})) // ADD; TRAP HALT

	c := cpu.New(m, nil)
	c.Pc = 0x3000

	var fired bool
	dbg := &Debugger{
		Breakpoints: []Breakpoint{{Addr: 0x3000, Cond: "r0 =="}},
	}
	dbg.HandleBreak = func(dbg *Debugger, c *cpu.Cpu) { fired = true }
	dbg.Attach(c)

	assert.NoError(c.Run())
	assert.True(c.Halted())
	assert.False(fired)
}

func TestParseBreakpoint(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		arg  string
		want Breakpoint
		fail bool
	}){
		{"hex", "0x3000", Breakpoint{Addr: 0x3000}, false},
		{"decimal", "12288", Breakpoint{Addr: 0x3000}, false},
		{"cond", "0x3000:r0 == 10", Breakpoint{Addr: 0x3000, Cond: "r0 == 10"}, false},
		{"cond_colons", "0x3000:r0 == 10 if True else 0:1", Breakpoint{Addr: 0x3000, Cond: "r0 == 10 if True else 0:1"}, false},
		{"junk", "zzz", Breakpoint{}, true},
		{"range", "0x10000", Breakpoint{}, true},
	}

	for _, entry := range table {
		bp, err := ParseBreakpoint(entry.arg)
		if entry.fail {
			assert.Error(err, entry.name)
			assert.True(errors.Is(err, ErrBreakpointSyntax(entry.arg)), entry.name)
			continue
		}

		assert.NoError(err, entry.name)
		assert.Equal(entry.want, bp, entry.name)
	}
}
