package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Stats describes one artifact.
type Stats struct {
	// Symbols is the length of the original input.
	Symbols uint64

	// Distinct is the number of distinct byte values in the input.
	Distinct int

	// HeaderBytes, TreeBytes and PayloadBytes are the sizes of the three
	// regions of the artifact.  TreeBytes and PayloadBytes include the
	// padding that completes their final byte.
	HeaderBytes  int64
	TreeBytes    int64
	PayloadBytes int64
}

// TotalBytes returns the size of the whole artifact.
func (s Stats) TotalBytes() int64 {
	return s.HeaderBytes + s.TreeBytes + s.PayloadBytes
}

// Ratio returns the artifact size divided by the original size, or 0 for an
// empty input.
func (s Stats) Ratio() float64 {
	if s.Symbols == 0 {
		return 0
	}
	return float64(s.TotalBytes()) / float64(s.Symbols)
}

// String returns a one-line human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d symbols (%d distinct) -> %d bytes (header %d, tree %d, payload %d, ratio %.3f)",
		s.Symbols, s.Distinct, s.TotalBytes(), s.HeaderBytes, s.TreeBytes, s.PayloadBytes, s.Ratio())
}

var _ fmt.Stringer = Stats{}

// Encode compresses data and writes the artifact to w: the header, then the
// serialized tree, then the packed codes of every input byte in order.
//
// An empty input produces a header-only artifact with a count of 0.
//
func Encode(w io.Writer, data []byte) (Stats, error) {
	ft := CountFrequencies(data)
	stats := Stats{
		Symbols:     uint64(len(data)),
		Distinct:    ft.Len(),
		HeaderBytes: HeaderSize,
	}

	if err := WriteHeader(w, stats.Symbols); err != nil {
		return stats, err
	}
	if len(data) == 0 {
		return stats, nil
	}

	t := BuildTree(ft)
	book, err := NewCodeBook(t)
	if err != nil {
		return stats, err
	}

	bp := NewBitPacker(w)
	if err := WriteTree(bp, t); err != nil {
		return stats, err
	}
	stats.TreeBytes = bp.BitsWritten() / 8

	if err := PackSymbols(bp, data, book); err != nil {
		return stats, err
	}
	if err := bp.Close(); err != nil {
		return stats, errors.Wrap(err, "flushing payload")
	}
	stats.PayloadBytes = bp.BitsWritten()/8 - stats.TreeBytes
	return stats, nil
}

// Decode reads an artifact written by Encode and returns the original bytes.
//
// Returns an error wrapping ErrCorrupt if the artifact is truncated, carries
// a malformed tree, or has data after the final payload byte.
//
func Decode(r io.Reader) ([]byte, error) {
	out, _, err := decode(r)
	return out, err
}

func decode(r io.Reader) ([]byte, Stats, error) {
	count, err := ReadHeader(r)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Stats{Symbols: count, HeaderBytes: HeaderSize}

	br := NewBitReader(r)
	if count == 0 {
		if err := br.ExpectEOF(); err != nil {
			return nil, stats, err
		}
		return []byte{}, stats, nil
	}

	t, err := ReadTree(br)
	if err != nil {
		return nil, stats, err
	}
	stats.Distinct = t.NumLeaves()
	stats.TreeBytes = br.BitsRead() / 8

	out, err := DecodeSymbols(br, t, count)
	if err != nil {
		return nil, stats, errors.Wrap(err, "reading payload")
	}
	if err := br.Align(); err != nil {
		return nil, stats, errors.Wrap(err, "reading payload")
	}
	stats.PayloadBytes = br.BitsRead()/8 - stats.TreeBytes
	if err := br.ExpectEOF(); err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

// Compress returns the artifact for data.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Encode(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress returns the original bytes of an artifact.
func Decompress(artifact []byte) ([]byte, error) {
	return Decode(bytes.NewReader(artifact))
}
