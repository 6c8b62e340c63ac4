package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/ulc3/cpu"
	"github.com/ezrec/ulc3/debug"
	"github.com/ezrec/ulc3/emulator"
	ulcio "github.com/ezrec/ulc3/io"
)

// breakFlags accumulates repeated -b arguments.
type breakFlags []debug.Breakpoint

func (bf *breakFlags) String() string {
	var args []string
	for _, bp := range *bf {
		arg := fmt.Sprintf("0x%04X", bp.Addr)
		if bp.Cond != "" {
			arg += ":" + bp.Cond
		}
		args = append(args, arg)
	}

	return strings.Join(args, ",")
}

func (bf *breakFlags) Set(arg string) error {
	bp, err := debug.ParseBreakpoint(arg)
	if err != nil {
		return err
	}

	*bf = append(*bf, bp)
	return nil
}

func main() {
	var verbose bool
	var breaks breakFlags

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Var(&breaks, "b", "Breakpoint addr[:expr] (execute only, repeatable)")

	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("usage: %v [-v] [-b addr[:expr]] <execute|disassemble> <image>", os.Args[0])
	}

	command := flag.Arg(0)
	path := flag.Arg(1)

	switch command {
	case "execute":
		execute(path, verbose, breaks)
	case "disassemble":
		disassemble(path)
	default:
		log.Fatalf("%v: unknown command %q", os.Args[0], command)
	}
}

func execute(path string, verbose bool, breaks []debug.Breakpoint) {
	term := ulcio.NewTerminal()

	emu := emulator.New(term)
	emu.Verbose = verbose

	if err := emu.LoadFile(path); err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if len(breaks) != 0 {
		dbg := &debug.Debugger{Breakpoints: breaks}
		dbg.HandleBreak = func(dbg *debug.Debugger, c *cpu.Cpu) {
			log.Printf("break at 0x%04X\n%v", c.Pc, c)
			c.Stop()
		}
		dbg.Attach(emu.Cpu)
	}

	if err := term.Raw(); err != nil {
		log.Printf("%v: terminal: %v", os.Args[0], err)
	}

	err := emu.Run()
	term.Restore()

	if err != nil {
		log.Fatal(err)
	}
}

func disassemble(path string) {
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	lines, err := emulator.Disassemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	for line := range lines {
		fmt.Println(line)
	}
}
