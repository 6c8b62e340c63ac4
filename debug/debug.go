// Package debug provides a breakpoint debugger for the μLC-3 machine.
// Breakpoints fire on a program-counter address, optionally guarded by
// a condition expression evaluated against the machine state.
package debug

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ulc3/cpu"
)

// Breakpoint pauses execution at Addr. When Cond is non-empty, the
// expression must also evaluate to true for the breakpoint to fire.
// The expression sees r0..r7 and pc as integers.
type Breakpoint struct {
	Addr uint16
	Cond string
}

// Debugger observes a CPU between instruction steps and fires
// breakpoints through the HandleBreak callback.
type Debugger struct {
	Breakpoints []Breakpoint

	HandleBreak func(dbg *Debugger, c *cpu.Cpu)
}

var _ cpu.Hook = (*Debugger)(nil)

// Attach installs the debugger as the CPU's step hook.
func (dbg *Debugger) Attach(c *cpu.Cpu) {
	c.Hook = dbg
}

// Step checks the breakpoints against the instruction about to execute.
func (dbg *Debugger) Step(c *cpu.Cpu) {
	for _, bp := range dbg.Breakpoints {
		if c.Pc != bp.Addr {
			continue
		}

		if bp.Cond != "" {
			fire, err := evalCond(bp.Cond, c)
			if err != nil {
				log.Printf("debug: 0x%04x: %v", bp.Addr, err)
				continue
			}
			if !fire {
				continue
			}
		}

		if dbg.HandleBreak != nil {
			dbg.HandleBreak(dbg, c)
		}
		break
	}
}

// evalCond evaluates a breakpoint condition with the machine state
// predeclared: r0..r7 and pc as integers.
func evalCond(expr string, c *cpu.Cpu) (fire bool, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for n, value := range c.Register {
		pred[fmt.Sprintf("r%d", n)] = starlark.MakeInt(int(value))
	}
	pred["pc"] = starlark.MakeInt(int(c.Pc))

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "break", prog, pred)
	if err != nil {
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrCondExpression(expr)
		return
	}

	fire = bool(rc.Truth())
	return
}

// ParseBreakpoint parses the CLI form "addr" or "addr:expr", with addr
// in any base strconv accepts (0x3000, 12288, 0o30000).
func ParseBreakpoint(arg string) (bp Breakpoint, err error) {
	text, cond, _ := strings.Cut(arg, ":")

	addr, err := strconv.ParseUint(text, 0, 16)
	if err != nil {
		err = ErrBreakpointSyntax(arg)
		return
	}

	bp = Breakpoint{Addr: uint16(addr), Cond: cond}
	return
}
