package cpu

import (
	"fmt"
)

// Opcode is the 4-bit operation selector in the top of every
// instruction word.
type Opcode int

const (
	OP_BR   = Opcode(0)  // Conditional branch
	OP_ADD  = Opcode(1)  // Addition
	OP_LD   = Opcode(2)  // Load
	OP_ST   = Opcode(3)  // Store
	OP_JSR  = Opcode(4)  // Jump to subroutine
	OP_AND  = Opcode(5)  // Bitwise and
	OP_LDR  = Opcode(6)  // Load base+offset
	OP_STR  = Opcode(7)  // Store base+offset
	OP_RTI  = Opcode(8)  // Reserved (unsupported)
	OP_NOT  = Opcode(9)  // Bitwise complement
	OP_LDI  = Opcode(10) // Load indirect
	OP_STI  = Opcode(11) // Store indirect
	OP_JMP  = Opcode(12) // Jump
	OP_RES  = Opcode(13) // Reserved
	OP_LEA  = Opcode(14) // Load effective address
	OP_TRAP = Opcode(15) // System call
)

var opcodeNames = [16]string{
	"BR", "ADD", "LD", "ST", "JSR", "AND", "LDR", "STR",
	"RTI", "NOT", "LDI", "STI", "JMP", "RES", "LEA", "TRAP",
}

func (op Opcode) String() string {
	return opcodeNames[op&0xf]
}

// Legal reports whether the opcode is architecturally defined.
func (op Opcode) Legal() bool {
	return op != OP_RTI && op != OP_RES
}

// Inst is a decoded instruction word. The operand accessors interpret
// the low 12 bits per the fixed format of the word's opcode.
type Inst uint16

// Decode maps a raw word to its instruction. Decode is total: every
// word decodes, reserved encodings included.
func Decode(word uint16) Inst {
	return Inst(word)
}

// Op returns the opcode from the top 4 bits.
func (in Inst) Op() Opcode {
	return Opcode(in >> 12)
}

// Dr returns the destination register field, bits 11-9.
func (in Inst) Dr() int {
	return int((in >> 9) & 0x7)
}

// Sr returns the source register field of the store formats, bits 11-9.
func (in Inst) Sr() int {
	return int((in >> 9) & 0x7)
}

// Sr1 returns the first source register field, bits 8-6.
func (in Inst) Sr1() int {
	return int((in >> 6) & 0x7)
}

// Sr2 returns the second source register field, bits 2-0.
func (in Inst) Sr2() int {
	return int(in & 0x7)
}

// BaseR returns the base register field, bits 8-6.
func (in Inst) BaseR() int {
	return int((in >> 6) & 0x7)
}

// ImmMode reports whether bit 5 selects the immediate operand form of
// ADD and AND.
func (in Inst) ImmMode() bool {
	return (in>>5)&0x1 == 1
}

// Imm5 returns the 5-bit immediate, sign-extended to 16 bits.
func (in Inst) Imm5() uint16 {
	return SignExtend(uint16(in)&0x1F, 5)
}

// Nzp returns the branch condition bits, in the same layout as the
// FL_NEG/FL_ZRO/FL_POS flags.
func (in Inst) Nzp() uint16 {
	return uint16(in>>9) & 0x7
}

// PcOffset9 returns the 9-bit PC-relative offset, sign-extended.
func (in Inst) PcOffset9() uint16 {
	return SignExtend(uint16(in)&0x1FF, 9)
}

// PcOffset11 returns the 11-bit PC-relative offset of JSR, sign-extended.
func (in Inst) PcOffset11() uint16 {
	return SignExtend(uint16(in)&0x7FF, 11)
}

// Offset6 returns the 6-bit base-relative offset, sign-extended.
func (in Inst) Offset6() uint16 {
	return SignExtend(uint16(in)&0x3F, 6)
}

// LongFlag reports whether bit 11 selects the PC-relative form of JSR.
func (in Inst) LongFlag() bool {
	return (in>>11)&0x1 == 1
}

// Vector returns the 8-bit trap vector.
func (in Inst) Vector() uint8 {
	return uint8(in & 0xFF)
}

// SignExtend widens a two's-complement value of the given bit width to
// 16 bits by replicating its sign bit.
func SignExtend(value uint16, bits uint) uint16 {
	if (value>>(bits-1))&0x1 == 1 {
		value |= 0xFFFF << bits
	}

	return value
}

// String returns the assembly language rendering of the instruction.
// JMP through r7 renders as the RET pseudo-mnemonic; the reserved
// encodings render as a placeholder.
func (in Inst) String() string {
	switch in.Op() {
	case OP_BR:
		mn := "BR"
		if in.Nzp()&FL_NEG != 0 {
			mn += "n"
		}
		if in.Nzp()&FL_ZRO != 0 {
			mn += "z"
		}
		if in.Nzp()&FL_POS != 0 {
			mn += "p"
		}
		return fmt.Sprintf("%s #%d", mn, int16(in.PcOffset9()))
	case OP_ADD, OP_AND:
		if in.ImmMode() {
			return fmt.Sprintf("%v R%d, R%d, #%d", in.Op(), in.Dr(), in.Sr1(), int16(in.Imm5()))
		}
		return fmt.Sprintf("%v R%d, R%d, R%d", in.Op(), in.Dr(), in.Sr1(), in.Sr2())
	case OP_NOT:
		return fmt.Sprintf("NOT R%d, R%d", in.Dr(), in.Sr1())
	case OP_JMP:
		if in.BaseR() == 7 {
			return "RET"
		}
		return fmt.Sprintf("JMP R%d", in.BaseR())
	case OP_JSR:
		if in.LongFlag() {
			return fmt.Sprintf("JSR #%d", int16(in.PcOffset11()))
		}
		return fmt.Sprintf("JSRR R%d", in.BaseR())
	case OP_LD, OP_LDI, OP_LEA:
		return fmt.Sprintf("%v R%d, #%d", in.Op(), in.Dr(), int16(in.PcOffset9()))
	case OP_ST, OP_STI:
		return fmt.Sprintf("%v R%d, #%d", in.Op(), in.Sr(), int16(in.PcOffset9()))
	case OP_LDR, OP_STR:
		return fmt.Sprintf("%v R%d, R%d, #%d", in.Op(), in.Dr(), in.BaseR(), int16(in.Offset6()))
	case OP_TRAP:
		if name, ok := trapNames[in.Vector()]; ok {
			return "TRAP " + name
		}
		return fmt.Sprintf("TRAP 0x%02X", in.Vector())
	}

	return "???"
}
