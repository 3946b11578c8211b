// Package huffman implements whole-input static Huffman compression of byte
// streams.
//
// Compression counts byte frequencies, builds a Huffman tree by greedy
// minimum merging, derives one code per byte value from the tree, and writes
// a self-describing artifact:
//
//     [0, 8)      number of input bytes, big-endian uint64
//     [8, T)      the tree in pre-order, one control bit per node:
//                   1 + 8 raw symbol bits for a leaf,
//                   0 + left subtree + right subtree for an internal node,
//                 zero-padded to a byte boundary
//     [T, end)    the codes of the input bytes in order, zero-padded
//
// All bits are packed most significant bit first.  An empty input produces
// only the header.  An input with a single distinct byte produces a one-leaf
// tree, and every byte is coded as the single bit 0.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
