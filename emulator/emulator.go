// Package emulator ties the μLC-3 CPU, memory, and console together
// for one run of a program image.
package emulator

import (
	"io"
	"iter"
	"os"

	"github.com/ezrec/ulc3/cpu"
	ulcio "github.com/ezrec/ulc3/io"
	"github.com/ezrec/ulc3/mem"
)

// Emulator is one machine instance: address space, processor, console.
// Instances are fully independent; no process-wide state is shared.
type Emulator struct {
	Verbose bool // If set, enables per-instruction trace logging.

	Cpu *cpu.Cpu    // The processor.
	Mem *mem.Memory // The address space.
}

// New creates a machine wired to the given console. A nil console
// reads as no input and discards output.
func New(console ulcio.Console) *Emulator {
	m := &mem.Memory{Keyboard: console}

	return &Emulator{
		Mem: m,
		Cpu: cpu.New(m, console),
	}
}

// Load reads a program image into memory and points the program
// counter at the image origin.
func (emu *Emulator) Load(r io.Reader) (err error) {
	origin, words, err := ReadImage(r)
	if err != nil {
		return
	}

	err = emu.Mem.Load(origin, words)
	if err != nil {
		return
	}

	emu.Cpu.Pc = origin
	return
}

// LoadFile loads the program image file at path.
func (emu *Emulator) LoadFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return emu.Load(inf)
}

// Run executes the loaded image until the machine halts, faults, or is
// stopped. A clean HALT returns nil.
func (emu *Emulator) Run() error {
	emu.Cpu.Verbose = emu.Verbose

	return emu.Cpu.Run()
}

// Disassemble reads a program image and returns its disassembly lines.
// No engine instance is involved; the output depends only on the image.
func Disassemble(r io.Reader) (lines iter.Seq[string], err error) {
	origin, words, err := ReadImage(r)
	if err != nil {
		return
	}

	lines = cpu.Disassemble(words, origin)
	return
}
