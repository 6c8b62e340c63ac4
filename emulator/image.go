package emulator

import (
	"encoding/binary"
	"io"
)

// ReadImage decodes a binary program image: a big-endian 16-bit origin
// word followed by zero or more big-endian payload words, with no other
// header or footer.
func ReadImage(r io.Reader) (origin uint16, words []uint16, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(data) < 2 {
		err = ErrImageShort
		return
	}

	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	origin = binary.BigEndian.Uint16(data)

	words = make([]uint16, 0, (len(data)-2)/2)
	for n := 2; n < len(data); n += 2 {
		words = append(words, binary.BigEndian.Uint16(data[n:]))
	}

	return
}
