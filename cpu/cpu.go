package cpu

import (
	"fmt"
	"log"
	"sync/atomic"

	ulcio "github.com/ezrec/ulc3/io"
	"github.com/ezrec/ulc3/mem"
)

// Condition flags. Exactly one is set after any flag-updating
// instruction; the layout matches the nzp bits of BR.
const (
	FL_POS = uint16(1 << 0) // Last result was positive.
	FL_ZRO = uint16(1 << 1) // Last result was zero.
	FL_NEG = uint16(1 << 2) // Last result was negative.
)

// Hook observes the CPU before each instruction executes. The debugger
// attaches through this interface; a hook that calls Stop pauses the
// machine before the pending instruction is fetched.
type Hook interface {
	Step(cpu *Cpu)
}

// Cpu is the fetch-decode-execute engine of the μLC-3 machine. It owns
// the register file and drives the attached memory and console. A Cpu
// is not safe for concurrent use; Stop is the only method that may be
// called from another goroutine.
type Cpu struct {
	Verbose bool // Set to enable per-instruction trace logging.

	Register [8]uint16 // General-purpose registers r0-r7.
	Pc       uint16    // Program counter.
	Cond     uint16    // Condition flags, one of FL_NEG/FL_ZRO/FL_POS.

	Mem     *mem.Memory   // Address space.
	Console ulcio.Console // Character I/O channel; nil reads as no input.
	Hook    Hook          // Optional per-step observer.

	halted bool
	fault  error
	stop   atomic.Bool
}

// New creates a CPU over the given memory and console. The register
// file starts zeroed with the Zero flag set; the loader is expected to
// point Pc at the image origin.
func New(m *mem.Memory, console ulcio.Console) *Cpu {
	return &Cpu{
		Mem:     m,
		Console: console,
		Cond:    FL_ZRO,
	}
}

// Halted reports whether the machine has stopped. Halted is terminal
// for a run: once set, Step is a no-op.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// Fault returns the diagnostic that halted the machine, or nil after a
// clean HALT or while the machine is running.
func (cpu *Cpu) Fault() error {
	return cpu.fault
}

// Stop requests cancellation of a Run. The flag is checked between
// steps, never mid-instruction.
func (cpu *Cpu) Stop() {
	cpu.stop.Store(true)
}

// UpdateFlags sets exactly one condition flag from value, interpreted
// as two's complement.
func (cpu *Cpu) UpdateFlags(value uint16) {
	switch {
	case value == 0:
		cpu.Cond = FL_ZRO
	case value>>15 == 1:
		cpu.Cond = FL_NEG
	default:
		cpu.Cond = FL_POS
	}
}

// setRegister writes a general-purpose register and updates the
// condition flags from the written value.
func (cpu *Cpu) setRegister(n int, value uint16) {
	cpu.Register[n] = value
	cpu.UpdateFlags(value)
}

// String returns the current machine state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("  pc: 0x%04X  cond: %v\n", cpu.Pc, flagName(cpu.Cond))
	for n, value := range cpu.Register {
		text += fmt.Sprintf("  r%d: 0x%04X", n, value)
		if n%4 == 3 {
			text += "\n"
		}
	}

	return
}

func flagName(cond uint16) string {
	switch cond {
	case FL_NEG:
		return "N"
	case FL_ZRO:
		return "Z"
	case FL_POS:
		return "P"
	}

	return "?"
}

// Step executes one instruction: fetch the word at Pc, increment Pc,
// decode, and apply the instruction's full effect. A step is atomic;
// it is never partially applied. Executing a reserved encoding or an
// unknown trap vector halts the machine and returns the diagnostic.
func (cpu *Cpu) Step() (err error) {
	if cpu.halted {
		return
	}

	if cpu.Hook != nil {
		cpu.Hook.Step(cpu)
		if cpu.stop.Load() {
			// The hook paused the machine before the fetch; the
			// instruction at Pc has not executed.
			return
		}
	}

	addr := cpu.Pc
	inst := Decode(cpu.Mem.Read(addr))
	cpu.Pc++

	if cpu.Verbose {
		log.Printf("cpu: 0x%04X: 0x%04X  %v", addr, uint16(inst), inst)
	}

	switch inst.Op() {
	case OP_ADD:
		cpu.setRegister(inst.Dr(), cpu.Register[inst.Sr1()]+cpu.operand(inst))
	case OP_AND:
		cpu.setRegister(inst.Dr(), cpu.Register[inst.Sr1()]&cpu.operand(inst))
	case OP_NOT:
		cpu.setRegister(inst.Dr(), ^cpu.Register[inst.Sr1()])
	case OP_BR:
		if inst.Nzp()&cpu.Cond != 0 {
			cpu.Pc += inst.PcOffset9()
		}
	case OP_JMP:
		cpu.Pc = cpu.Register[inst.BaseR()]
	case OP_JSR:
		cpu.Register[7] = cpu.Pc
		if inst.LongFlag() {
			cpu.Pc += inst.PcOffset11()
		} else {
			cpu.Pc = cpu.Register[inst.BaseR()]
		}
	case OP_LD:
		cpu.setRegister(inst.Dr(), cpu.Mem.Read(cpu.Pc+inst.PcOffset9()))
	case OP_LDI:
		cpu.setRegister(inst.Dr(), cpu.Mem.Read(cpu.Mem.Read(cpu.Pc+inst.PcOffset9())))
	case OP_LDR:
		cpu.setRegister(inst.Dr(), cpu.Mem.Read(cpu.Register[inst.BaseR()]+inst.Offset6()))
	case OP_LEA:
		cpu.setRegister(inst.Dr(), cpu.Pc+inst.PcOffset9())
	case OP_ST:
		cpu.Mem.Write(cpu.Pc+inst.PcOffset9(), cpu.Register[inst.Sr()])
	case OP_STI:
		cpu.Mem.Write(cpu.Mem.Read(cpu.Pc+inst.PcOffset9()), cpu.Register[inst.Sr()])
	case OP_STR:
		cpu.Mem.Write(cpu.Register[inst.BaseR()]+inst.Offset6(), cpu.Register[inst.Sr()])
	case OP_TRAP:
		err = cpu.trap(addr, inst.Vector())
	case OP_RTI, OP_RES:
		cpu.halted = true
		cpu.fault = &ErrIllegalInst{Addr: addr, Word: uint16(inst)}
		err = cpu.fault
	}

	return
}

// operand returns the second ALU operand of ADD and AND: a register
// value or a sign-extended 5-bit immediate, per the mode bit.
func (cpu *Cpu) operand(inst Inst) uint16 {
	if inst.ImmMode() {
		return inst.Imm5()
	}

	return cpu.Register[inst.Sr2()]
}

// Run steps the machine until it halts or Stop is called. The first
// fatal diagnostic is returned; a clean HALT returns nil.
func (cpu *Cpu) Run() (err error) {
	for !cpu.halted && !cpu.stop.Load() {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}
