package huffman

import (
	"bytes"
	"fmt"
)

// FrequencyTable records how many times each Symbol occurs in an input.
// Symbols that never occur are absent from the table.
//
// A FrequencyTable is a plain value: copies are independent, and nothing in
// this package mutates one after CountFrequencies returns it.
type FrequencyTable struct {
	counts [NumSymbols]uint64
}

// CountFrequencies scans data and returns its FrequencyTable.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft.counts[b]++
	}
	return ft
}

// Count returns the number of occurrences of sym.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Has returns true iff sym occurs at least once.
func (ft FrequencyTable) Has(sym Symbol) bool {
	return ft.counts[sym] != 0
}

// Len returns the number of distinct symbols present.
func (ft FrequencyTable) Len() int {
	var n int
	for _, count := range ft.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft.counts {
		sum += count
	}
	return sum
}

// Symbols lists the present symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, NumSymbols)
	for index, count := range ft.counts {
		if count != 0 {
			out = append(out, Symbol(index))
		}
	}
	return out
}

// String returns a compact representation such as "{0x61:3 0x62:2}".
func (ft FrequencyTable) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for index, sym := range ft.Symbols() {
		if index > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "0x%02x:%d", byte(sym), ft.counts[sym])
	}
	buf.WriteByte('}')
	return buf.String()
}

var _ fmt.Stringer = FrequencyTable{}
