package io

import (
	"bytes"
)

// Script is a scripted console: a finite canned input and a captured
// output buffer. It stands in for the interactive terminal during tests
// and batch runs, so a run can be driven and asserted deterministically.
type Script struct {
	Input  []byte       // Keys to feed to the machine, in order.
	Output bytes.Buffer // Everything the machine displayed.

	pos int
}

var _ Console = (*Script)(nil)

// Ready reports whether any scripted input remains.
func (sc *Script) Ready() bool {
	return sc.pos < len(sc.Input)
}

// ReadKey consumes the next scripted key. Once the script is exhausted
// it reports ok=false and never blocks.
func (sc *Script) ReadKey() (key byte, ok bool) {
	if sc.pos >= len(sc.Input) {
		return
	}

	key = sc.Input[sc.pos]
	sc.pos++
	ok = true
	return
}

// WriteByte appends a displayed character to the output buffer.
func (sc *Script) WriteByte(key byte) error {
	return sc.Output.WriteByte(key)
}

// Rewind restarts the scripted input and clears the captured output.
func (sc *Script) Rewind() {
	sc.pos = 0
	sc.Output.Reset()
}
