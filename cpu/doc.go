// Package cpu implements the processor of the μLC-3 machine.
//
// The processor has eight 16-bit general-purpose registers (r0-r7), a
// program counter, and three one-hot condition flags (negative, zero,
// positive). Instruction decode is total: every one of the 65536
// possible words decodes, with the two reserved encodings decoding to
// an illegal instruction that is fatal to execution but renders as a
// placeholder during disassembly. All arithmetic is 16-bit two's
// complement with silent wraparound.
package cpu
