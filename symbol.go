package huffman

// Symbol represents one byte of input.  All 256 values are valid data,
// including 0x00; nothing in this package uses a symbol value as a marker.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// maxTreeNodes is the node count of a full binary tree with NumSymbols leaves.
const maxTreeNodes = 2*NumSymbols - 1

// maxTreeDepth is the depth of the most unbalanced tree with NumSymbols leaves.
const maxTreeDepth = NumSymbols - 1
