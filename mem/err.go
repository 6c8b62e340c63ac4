package mem

import (
	"github.com/ezrec/ulc3/translate"
)

var f = translate.From

// ErrImageBounds indicates a program image that runs past the top of the
// address space.
type ErrImageBounds struct {
	Origin uint16
	Count  int
}

func (err *ErrImageBounds) Error() string {
	return f("image of %d words at origin 0x%04x overruns the address space", err.Count, err.Origin)
}

func (err *ErrImageBounds) Is(target error) (ok bool) {
	_, ok = target.(*ErrImageBounds)
	return
}
