package huffman

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitPacker packs bits into bytes, most significant bit first.  The final
// partial byte is completed with zero bits by Align or Close.
type BitPacker struct {
	w *bitio.CountWriter
}

// NewBitPacker returns a BitPacker writing to w.  Close must be called to
// flush the final byte; it does not close w.
func NewBitPacker(w io.Writer) *BitPacker {
	return &BitPacker{w: bitio.NewCountWriter(w)}
}

// WriteBit appends a single bit.
func (bp *BitPacker) WriteBit(bit bool) error {
	return errors.WithStack(bp.w.WriteBool(bit))
}

// WriteCode appends the bits of hc, first bit first.
func (bp *BitPacker) WriteCode(hc Code) error {
	return errors.WithStack(bp.w.WriteBits(hc.Bits, hc.Size))
}

// WriteSymbol appends the 8 raw bits of sym, most significant first.
func (bp *BitPacker) WriteSymbol(sym Symbol) error {
	return errors.WithStack(bp.w.WriteByte(byte(sym)))
}

// Align pads with zero bits up to the next byte boundary.
func (bp *BitPacker) Align() (skipped uint8, err error) {
	skipped, err = bp.w.Align()
	return skipped, errors.WithStack(err)
}

// BitsWritten returns the number of bits written so far, padding included.
func (bp *BitPacker) BitsWritten() int64 {
	return bp.w.BitsCount
}

// Close flushes any partial byte, padded with zero bits.
func (bp *BitPacker) Close() error {
	_, err := bp.Align()
	return err
}

// BitReader reads bits from bytes, most significant bit first.  Running out
// of input is always reported as ErrCorrupt, because every caller reads
// only where the artifact format promises more bits.
type BitReader struct {
	r *bitio.CountReader
}

// NewBitReader returns a BitReader reading from r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bitio.NewCountReader(r)}
}

// ReadBit reads a single bit.
func (br *BitReader) ReadBit() (bool, error) {
	bit, err := br.r.ReadBool()
	if err != nil {
		return false, readError(err, "bit")
	}
	return bit, nil
}

// ReadSymbol reads 8 raw bits as a Symbol.
func (br *BitReader) ReadSymbol() (Symbol, error) {
	b, err := br.r.ReadByte()
	if err != nil {
		return 0, readError(err, "symbol")
	}
	return Symbol(b), nil
}

// Align skips to the next byte boundary.  The skipped bits must be zero, as
// BitPacker writes them; anything else is reported as ErrCorrupt.
func (br *BitReader) Align() error {
	pad := uint8((8 - br.r.BitsCount%8) % 8)
	if pad == 0 {
		return nil
	}
	bits, err := br.r.ReadBits(pad)
	if err != nil {
		return readError(err, "padding")
	}
	if bits != 0 {
		return corruptf("non-zero padding bits %#x", bits)
	}
	return nil
}

// ExpectEOF returns nil iff no input remains after the current position.
func (br *BitReader) ExpectEOF() error {
	_, err := br.r.ReadByte()
	switch err {
	case io.EOF:
		return nil
	case nil:
		return corruptf("trailing data after %d bits", br.r.BitsCount-8)
	default:
		return errors.Wrap(err, "reading trailing data")
	}
}

// Discard consumes the rest of the input and returns its length in bytes.
// The reader must be byte-aligned.
func (br *BitReader) Discard() (int64, error) {
	n, err := io.Copy(io.Discard, br.r)
	return n, errors.WithStack(err)
}

// BitsRead returns the number of bits consumed so far.
func (br *BitReader) BitsRead() int64 {
	return br.r.BitsCount
}

// PackSymbols appends the code of each byte of data, in order.
func PackSymbols(bp *BitPacker, data []byte, book CodeBook) error {
	for index, b := range data {
		hc, ok := book.Code(Symbol(b))
		if !ok {
			return errors.Wrapf(ErrMissingCode, "symbol 0x%02x at offset %d", b, index)
		}
		if err := bp.WriteCode(hc); err != nil {
			return errors.Wrap(err, "writing payload")
		}
	}
	return nil
}

// DecodeSymbols walks t once per output symbol, starting at the root and
// following one bit per edge, until count symbols have been produced.  It
// stops reading at exactly that point, so the zero bits padding the final
// byte are never interpreted as codes.
//
// A single-leaf tree is decoded with the one-bit code "0" per symbol, the
// same convention NewCodeBook uses.
//
// Returns ErrCorrupt if the input runs out first.
//
func DecodeSymbols(br *BitReader, t Tree, count uint64) ([]byte, error) {
	if count == 0 {
		return []byte{}, nil
	}
	if t.Empty() {
		return nil, corruptf("%d symbols but no tree", count)
	}

	out := make([]byte, 0, capacityHint(count))
	root := t.Root()

	if t.IsLeaf(root) {
		sym := byte(t.Symbol(root))
		for uint64(len(out)) < count {
			bit, err := br.ReadBit()
			if err != nil {
				return nil, errors.Wrapf(err, "decoded %d of %d symbols", len(out), count)
			}
			if bit {
				return nil, corruptf("unexpected 1 bit for single-symbol tree at symbol %d", len(out))
			}
			out = append(out, sym)
		}
		return out, nil
	}

	cursor := root
	for uint64(len(out)) < count {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, errors.Wrapf(err, "decoded %d of %d symbols", len(out), count)
		}
		cursor = t.Step(cursor, bit)
		if t.IsLeaf(cursor) {
			out = append(out, byte(t.Symbol(cursor)))
			cursor = root
		}
	}
	return out, nil
}

// capacityHint bounds the initial allocation, since count comes from an
// untrusted header.
func capacityHint(count uint64) int {
	const maxHint = 1 << 20
	if count > maxHint {
		return maxHint
	}
	return int(count)
}
