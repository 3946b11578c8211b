package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within a Tree.
type NodeID int32

// InvalidNode is returned by some methods to clearly indicate that no node is
// being returned.
const InvalidNode = NodeID(-1)

// Tree is a Huffman code tree stored as an arena.  Leaves carry a Symbol;
// internal nodes carry exactly two children, referenced by NodeID.  The Tree
// exclusively owns all of its nodes.
//
// The zero value is the empty tree, which has no root.
type Tree struct {
	nodes  []treeNode
	root   NodeID
	leaves int
}

type treeNode struct {
	left   NodeID
	right  NodeID
	symbol Symbol
	leaf   bool
}

// BuildTree constructs the Huffman tree for the given frequencies using the
// classic greedy merge: repeatedly remove the two lightest nodes and replace
// them with a parent whose left child is the first removed node.
//
// Ties between equal weights are broken by NodeID, which is also insertion
// order: leaves are created first in ascending Symbol order, then each merged
// node takes the next NodeID.  Among equal weights the oldest node therefore
// leaves the queue first, so the same frequencies always yield the same tree.
//
// A table with one distinct symbol yields a tree consisting of a single leaf.
// An empty table yields the empty tree.
//
func BuildTree(ft FrequencyTable) Tree {
	var t Tree

	// Step 1: one leaf per present symbol, seeded into a minheap.

	h := weightHeap{list: make([]weightedNode, 0, NumSymbols)}
	for _, sym := range ft.Symbols() {
		id := t.addLeaf(sym)
		h.list = append(h.list, weightedNode{id, ft.Count(sym)})
	}
	if h.Len() == 0 {
		return t
	}
	h.Init()

	// Step 2: merge the two lightest nodes until one remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		weight := a.weight + b.weight
		assert.Assertf(weight >= a.weight, "weight overflow: %d + %d", a.weight, b.weight)

		id := t.addInternal(a.id, b.id)
		heap.Push(&h, weightedNode{id, weight})
	}

	// Step 3: the survivor is the root.

	t.root = heap.Pop(&h).(weightedNode).id
	return t
}

// Empty returns true iff the tree has no nodes.
func (t Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Root returns the root node, or InvalidNode for the empty tree.
func (t Tree) Root() NodeID {
	if t.Empty() {
		return InvalidNode
	}
	return t.root
}

// Len returns the total number of nodes.
func (t Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of distinct symbols.
func (t Tree) NumLeaves() int {
	return t.leaves
}

// IsLeaf returns true iff id is a leaf.
func (t Tree) IsLeaf(id NodeID) bool {
	return t.node(id).leaf
}

// Symbol returns the symbol stored in leaf id.
func (t Tree) Symbol(id NodeID) Symbol {
	n := t.node(id)
	assert.Assertf(n.leaf, "node %d is not a leaf", id)
	return n.symbol
}

// Left returns the left child of id, or InvalidNode if id is a leaf.
func (t Tree) Left(id NodeID) NodeID {
	return t.node(id).left
}

// Right returns the right child of id, or InvalidNode if id is a leaf.
func (t Tree) Right(id NodeID) NodeID {
	return t.node(id).right
}

// Step moves one edge down from id: to the left child for a 0 bit, to the
// right child for a 1 bit.  Stepping from a leaf returns InvalidNode.
func (t Tree) Step(id NodeID, bit bool) NodeID {
	n := t.node(id)
	if bit {
		return n.right
	}
	return n.left
}

// Depth returns the length of the longest root-to-leaf path.  A single-leaf
// tree and the empty tree both have depth 0.
func (t Tree) Depth() int {
	var deepest int
	t.walkLeaves(func(_ Symbol, _ Code, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.Len())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.NumLeaves())
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.Root())
	for index, n := range t.nodes {
		if n.leaf {
			fmt.Fprintf(&buf, "\tNode(%d) = Leaf(0x%02x)\n", index, byte(n.symbol))
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = Internal(%d, %d)\n", index, n.left, n.right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t Tree) node(id NodeID) treeNode {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

func (t *Tree) addLeaf(sym Symbol) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{left: InvalidNode, right: InvalidNode, symbol: sym, leaf: true})
	t.leaves++
	t.root = id
	return id
}

func (t *Tree) addInternal(left NodeID, right NodeID) NodeID {
	n := NodeID(len(t.nodes))
	assert.Assertf(left >= 0 && left < n, "left child %d out of range [0, %d)", left, n)
	assert.Assertf(right >= 0 && right < n, "right child %d out of range [0, %d)", right, n)
	t.nodes = append(t.nodes, treeNode{left: left, right: right})
	t.root = n
	return n
}

// walkLeaves visits every leaf in left-to-right order, passing the path from
// the root (0 = left, 1 = right) and its length.  The path is only meaningful
// while depth <= MaxCodeSize.
func (t Tree) walkLeaves(fn func(sym Symbol, path Code, depth int)) {
	if t.Empty() {
		return
	}

	type stackItem struct {
		id    NodeID
		path  Code
		depth int
	}

	// Right children are pushed before left ones so that the left subtree
	// is always visited first.
	stack := make([]stackItem, 0, NumSymbols)
	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.id]
		if n.leaf {
			fn(n.symbol, top.path, top.depth)
			continue
		}

		depth := top.depth + 1
		stack = append(stack, stackItem{n.right, top.path.Append(true), depth})
		stack = append(stack, stackItem{n.left, top.path.Append(false), depth})
	}
}

// type weightedNode + type weightHeap {{{

type weightedNode struct {
	id     NodeID
	weight uint64
}

type weightHeap struct {
	list []weightedNode
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.id < b.id
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *weightHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
