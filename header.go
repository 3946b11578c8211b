package huffman

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// HeaderSize is the size in bytes of the fixed artifact header, which holds
// the number of symbols in the original input as a big-endian uint64.
const HeaderSize = 8

// WriteHeader writes the artifact header.
func WriteHeader(w io.Writer, count uint64) error {
	var buf [HeaderSize]byte
	binary.BigEndian.PutUint64(buf[:], count)
	if _, err := w.Write(buf[:]); err != nil {
		return errors.Wrap(err, "writing header")
	}
	return nil
}

// ReadHeader reads the artifact header and returns the symbol count.
func ReadHeader(r io.Reader) (uint64, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, readError(err, "header")
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
