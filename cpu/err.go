package cpu

import (
	"github.com/ezrec/ulc3/translate"
)

var f = translate.From

// ErrIllegalInst reports execution of an architecturally reserved
// encoding. Decode itself never fails; only execution treats the
// reserved encodings as fatal.
type ErrIllegalInst struct {
	Addr uint16 // Address the word was fetched from.
	Word uint16 // The raw instruction word.
}

func (err *ErrIllegalInst) Error() string {
	return f("illegal instruction 0x%04x at 0x%04x", err.Word, err.Addr)
}

func (err *ErrIllegalInst) Is(target error) (ok bool) {
	_, ok = target.(*ErrIllegalInst)
	return
}

// ErrUnknownTrap reports a TRAP instruction with an unrecognized vector.
type ErrUnknownTrap struct {
	Addr   uint16 // Address of the TRAP instruction.
	Vector uint8  // The unrecognized vector.
}

func (err *ErrUnknownTrap) Error() string {
	return f("unknown trap vector 0x%02x at 0x%04x", err.Vector, err.Addr)
}

func (err *ErrUnknownTrap) Is(target error) (ok bool) {
	_, ok = target.(*ErrUnknownTrap)
	return
}
