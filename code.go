package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code, in bits, that a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the Size low-order bits, which
	// is the order in which they are packed into the output.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one trailing bit.
func (hc Code) Append(bit bool) Code {
	hc.Size++
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	return hc
}

// Bit returns the i'th bit of the sequence, counting from 0.
func (hc Code) Bit(i byte) bool {
	assert.Assertf(i < hc.Size, "bit %d out of range [0, %d)", i, hc.Size)
	return (hc.Bits>>(hc.Size-1-i))&1 != 0
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeBook maps each Symbol present in a Tree to its Code.
type CodeBook struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

// NewCodeBook derives the CodeBook for t by walking it from the root,
// appending a 0 bit on every left descent and a 1 bit on every right descent.
//
// A tree consisting of a single leaf has no edges, so its only symbol would
// receive the empty code.  That symbol is assigned the one-bit code "0"
// instead, so that each occurrence still occupies a bit in the output.
//
// Returns ErrCodeTooLong if some leaf lies deeper than MaxCodeSize.
//
func NewCodeBook(t Tree) (CodeBook, error) {
	var book CodeBook
	var tooLong bool
	t.walkLeaves(func(sym Symbol, path Code, depth int) {
		if depth > MaxCodeSize {
			tooLong = true
			return
		}
		if depth == 0 {
			path = MakeCode(1, 0)
		}
		book.add(sym, path)
	})
	if tooLong {
		return CodeBook{}, ErrCodeTooLong
	}
	return book, nil
}

// Code returns the code for sym.  The second result is false if sym does not
// appear in the tree.
func (book CodeBook) Code(sym Symbol) (Code, bool) {
	hc := book.codes[sym]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a code.
func (book CodeBook) Len() int {
	return book.count
}

// MinSize is the bit length of the shortest code.
func (book CodeBook) MinSize() byte {
	return book.minSize
}

// MaxSize is the bit length of the longest code.
func (book CodeBook) MaxSize() byte {
	return book.maxSize
}

// EncodedBits returns the number of payload bits needed to encode an input
// with the given frequencies, excluding the final byte's padding.
func (book CodeBook) EncodedBits(ft FrequencyTable) uint64 {
	var sum uint64
	for _, sym := range ft.Symbols() {
		sum += uint64(book.codes[sym].Size) * ft.Count(sym)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeBook to the
// given writer.
func (book CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", book.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", book.maxSize)
	for index, hc := range book.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tCode(0x%02x) = %s\n", index, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (book *CodeBook) add(sym Symbol, hc Code) {
	size := hc.Size
	if book.count == 0 {
		book.minSize = size
		book.maxSize = size
	} else if book.minSize > size {
		book.minSize = size
	} else if book.maxSize < size {
		book.maxSize = size
	}
	book.codes[sym] = hc
	book.count++
}
