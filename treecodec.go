package huffman

import (
	"github.com/pkg/errors"
)

// WriteTree serializes t in pre-order: a leaf is a 1 bit followed by the 8
// raw bits of its symbol, an internal node is a 0 bit followed by its left
// and then its right subtree.  The encoding is self-delimiting, so no node
// count is stored.  The stream is then padded to a byte boundary.
//
// Writing the empty tree writes nothing.
//
func WriteTree(bp *BitPacker, t Tree) error {
	if t.Empty() {
		return nil
	}
	if err := writeSubtree(bp, t, t.Root()); err != nil {
		return errors.Wrap(err, "writing tree")
	}
	if _, err := bp.Align(); err != nil {
		return errors.Wrap(err, "writing tree")
	}
	return nil
}

func writeSubtree(bp *BitPacker, t Tree, id NodeID) error {
	if t.IsLeaf(id) {
		if err := bp.WriteBit(true); err != nil {
			return err
		}
		return bp.WriteSymbol(t.Symbol(id))
	}
	if err := bp.WriteBit(false); err != nil {
		return err
	}
	if err := writeSubtree(bp, t, t.Left(id)); err != nil {
		return err
	}
	return writeSubtree(bp, t, t.Right(id))
}

// ReadTree reconstructs a tree written by WriteTree, including the padding
// that follows it.
//
// Returns ErrCorrupt if the input ends mid-tree, if the tree is larger or
// deeper than a 256-symbol alphabet allows, or if a symbol appears on two
// leaves.
//
func ReadTree(br *BitReader) (Tree, error) {
	tr := treeReader{br: br}
	if _, err := tr.readSubtree(0); err != nil {
		return Tree{}, errors.Wrap(err, "reading tree")
	}
	if err := br.Align(); err != nil {
		return Tree{}, errors.Wrap(err, "reading tree")
	}
	return tr.t, nil
}

type treeReader struct {
	br   *BitReader
	t    Tree
	seen [NumSymbols]bool
}

// readSubtree appends children before their parent, so every NodeID refers
// only to nodes that already exist.
func (tr *treeReader) readSubtree(depth int) (NodeID, error) {
	if tr.t.Len() >= maxTreeNodes {
		return InvalidNode, corruptf("tree exceeds %d nodes", maxTreeNodes)
	}
	if depth > maxTreeDepth {
		return InvalidNode, corruptf("tree exceeds depth %d", maxTreeDepth)
	}

	isLeaf, err := tr.br.ReadBit()
	if err != nil {
		return InvalidNode, err
	}

	if isLeaf {
		sym, err := tr.br.ReadSymbol()
		if err != nil {
			return InvalidNode, err
		}
		if tr.seen[sym] {
			return InvalidNode, corruptf("duplicate leaf for symbol 0x%02x", byte(sym))
		}
		tr.seen[sym] = true
		return tr.t.addLeaf(sym), nil
	}

	left, err := tr.readSubtree(depth + 1)
	if err != nil {
		return InvalidNode, err
	}
	right, err := tr.readSubtree(depth + 1)
	if err != nil {
		return InvalidNode, err
	}
	return tr.t.addInternal(left, right), nil
}
