package emulator

import (
	"errors"

	"github.com/ezrec/ulc3/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageShort = errors.New(f("image missing origin word"))
	ErrImageOdd   = errors.New(f("image has an odd byte count"))
)
