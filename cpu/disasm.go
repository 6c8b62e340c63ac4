package cpu

import (
	"fmt"
	"iter"
)

// Disassemble renders a program image as one text line per word: the
// address, the raw word, and the decoded instruction. The sequence is
// lazy and restartable; iterating it twice yields identical lines.
// Reserved encodings render as a placeholder rather than failing.
func Disassemble(words []uint16, origin uint16) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n, word := range words {
			addr := origin + uint16(n)
			line := fmt.Sprintf("0x%04X  0x%04X  %v", addr, word, Decode(word))
			if !yield(line) {
				return
			}
		}
	}
}
