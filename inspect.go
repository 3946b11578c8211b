package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Info describes an artifact without decoding its payload.
type Info struct {
	Stats

	// Tree is the reconstructed Huffman tree; empty when Symbols is 0.
	Tree Tree

	// CodeBook is derived from Tree exactly as the compressor derived it.
	CodeBook CodeBook
}

// Inspect reads the header and tree of an artifact and measures the payload
// that follows.  The payload is not decoded, so a truncated payload is not
// detected here.
//
// A tree deeper than MaxCodeSize is still a valid artifact; its codes do not
// fit in a Code, so CodeBook is left empty and Dump reports only the depth.
//
func Inspect(r io.Reader) (Info, error) {
	var info Info

	count, err := ReadHeader(r)
	if err != nil {
		return info, err
	}
	info.Symbols = count
	info.HeaderBytes = HeaderSize

	br := NewBitReader(r)
	if count != 0 {
		if info.Tree, err = ReadTree(br); err != nil {
			return info, err
		}
		if info.Tree.Depth() <= MaxCodeSize {
			if info.CodeBook, err = NewCodeBook(info.Tree); err != nil {
				return info, err
			}
		}
		info.Distinct = info.Tree.NumLeaves()
		info.TreeBytes = br.BitsRead() / 8
	}

	n, err := br.Discard()
	if err != nil {
		return info, errors.Wrap(err, "measuring payload")
	}
	info.PayloadBytes = n
	return info, nil
}

// Dump writes a programmer-readable description of the artifact.
func (info Info) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Symbols: %d\n", info.Symbols)
	fmt.Fprintf(&buf, "Distinct: %d\n", info.Distinct)
	fmt.Fprintf(&buf, "HeaderBytes: %d\n", info.HeaderBytes)
	fmt.Fprintf(&buf, "TreeBytes: %d\n", info.TreeBytes)
	fmt.Fprintf(&buf, "PayloadBytes: %d\n", info.PayloadBytes)
	depth := info.Tree.Depth()
	fmt.Fprintf(&buf, "Depth: %d\n", depth)
	if depth > MaxCodeSize {
		fmt.Fprintf(&buf, "CodeBook: codes exceed %d bits\n", MaxCodeSize)
	} else if _, err := info.CodeBook.Dump(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}
