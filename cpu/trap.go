package cpu

// Trap vectors serviced natively by the machine.
const (
	TRAP_GETC  = uint8(0x20) // Read one key into r0, no echo.
	TRAP_OUT   = uint8(0x21) // Write the low byte of r0.
	TRAP_PUTS  = uint8(0x22) // Write the word-per-character string at r0.
	TRAP_IN    = uint8(0x23) // Prompt, read one key into r0, echoed.
	TRAP_PUTSP = uint8(0x24) // Write the two-characters-per-word string at r0.
	TRAP_HALT  = uint8(0x25) // Stop the machine.
)

var trapNames = map[uint8]string{
	TRAP_GETC:  "GETC",
	TRAP_OUT:   "OUT",
	TRAP_PUTS:  "PUTS",
	TRAP_IN:    "IN",
	TRAP_PUTSP: "PUTSP",
	TRAP_HALT:  "HALT",
}

const inPrompt = "Enter a character: "
const haltNotice = "\nHALT\n"

// trap dispatches a TRAP instruction to its service routine. Traps
// never touch the condition flags. An unrecognized vector halts the
// machine and returns the diagnostic.
func (cpu *Cpu) trap(addr uint16, vector uint8) (err error) {
	switch vector {
	case TRAP_GETC:
		cpu.Register[0] = uint16(cpu.readKey())
	case TRAP_OUT:
		cpu.writeByte(byte(cpu.Register[0]))
	case TRAP_PUTS:
		for p := cpu.Register[0]; ; p++ {
			word := cpu.Mem.Read(p)
			if word == 0 {
				break
			}
			cpu.writeByte(byte(word))
			if p == 0xFFFF {
				break
			}
		}
	case TRAP_IN:
		cpu.writeString(inPrompt)
		key := cpu.readKey()
		cpu.writeByte(key)
		cpu.Register[0] = uint16(key)
	case TRAP_PUTSP:
	putsp:
		for p := cpu.Register[0]; ; p++ {
			word := cpu.Mem.Read(p)
			for _, key := range []byte{byte(word), byte(word >> 8)} {
				if key == 0 {
					break putsp
				}
				cpu.writeByte(key)
			}
			if p == 0xFFFF {
				break
			}
		}
	case TRAP_HALT:
		cpu.writeString(haltNotice)
		cpu.halted = true
	default:
		cpu.halted = true
		cpu.fault = &ErrUnknownTrap{Addr: addr, Vector: vector}
		err = cpu.fault
	}

	return
}

// readKey reads one key from the console, blocking while input remains.
// An exhausted or absent console reads as a zero byte, so scripted runs
// terminate deterministically instead of hanging.
func (cpu *Cpu) readKey() byte {
	if cpu.Console == nil {
		return 0
	}

	key, _ := cpu.Console.ReadKey()
	return key
}

func (cpu *Cpu) writeByte(key byte) {
	if cpu.Console == nil {
		return
	}

	cpu.Console.WriteByte(key)
}

func (cpu *Cpu) writeString(text string) {
	for _, key := range []byte(text) {
		cpu.writeByte(key)
	}
}
