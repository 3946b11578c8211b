package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestFrequencies() FrequencyTable {
	var ft FrequencyTable
	for sym, count := range []uint64{5, 9, 12, 13, 16, 45} {
		ft.counts[sym] = count
	}
	return ft
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLen() = 11\n",
		"\tNumLeaves() = 6\n",
		"\tRoot() = 10\n",
		"\tNode(0) = Leaf(0x00)\n",
		"\tNode(1) = Leaf(0x01)\n",
		"\tNode(2) = Leaf(0x02)\n",
		"\tNode(3) = Leaf(0x03)\n",
		"\tNode(4) = Leaf(0x04)\n",
		"\tNode(5) = Leaf(0x05)\n",
		"\tNode(6) = Internal(0, 1)\n",
		"\tNode(7) = Internal(2, 3)\n",
		"\tNode(8) = Internal(6, 4)\n",
		"\tNode(9) = Internal(7, 8)\n",
		"\tNode(10) = Internal(5, 9)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if depth := tree.Depth(); depth != 4 {
		t.Errorf("expected depth 4, got %d", depth)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(CountFrequencies(nil))
	require.True(t, tree.Empty())
	require.Equal(t, InvalidNode, tree.Root())
	require.Equal(t, 0, tree.Len())
	require.Equal(t, 0, tree.NumLeaves())
	require.Equal(t, 0, tree.Depth())
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree := BuildTree(CountFrequencies([]byte(strings.Repeat("A", 1000))))
	require.Equal(t, 1, tree.Len())
	require.Equal(t, 1, tree.NumLeaves())
	root := tree.Root()
	require.True(t, tree.IsLeaf(root))
	require.Equal(t, Symbol('A'), tree.Symbol(root))
	require.Equal(t, InvalidNode, tree.Left(root))
	require.Equal(t, InvalidNode, tree.Right(root))
	require.Equal(t, 0, tree.Depth())
}

func TestBuildTree_TieBreak(t *testing.T) {
	type testRow struct {
		name  string
		input string
		dump  string
	}

	testData := [...]testRow{
		{
			// All weights equal: leaves merge pairwise in symbol order.
			name:  "equal-leaves",
			input: "abcd",
			dump: strings.Join([]string{
				"Tree{\n",
				"\tLen() = 7\n",
				"\tNumLeaves() = 4\n",
				"\tRoot() = 6\n",
				"\tNode(0) = Leaf(0x61)\n",
				"\tNode(1) = Leaf(0x62)\n",
				"\tNode(2) = Leaf(0x63)\n",
				"\tNode(3) = Leaf(0x64)\n",
				"\tNode(4) = Internal(0, 1)\n",
				"\tNode(5) = Internal(2, 3)\n",
				"\tNode(6) = Internal(4, 5)\n",
				"}\n",
			}, ""),
		},
		{
			// Leaf 'c' and the merged {a,b} both weigh 2; the older
			// leaf is popped first and becomes the left child.
			name:  "leaf-before-merged",
			input: "abcc",
			dump: strings.Join([]string{
				"Tree{\n",
				"\tLen() = 5\n",
				"\tNumLeaves() = 3\n",
				"\tRoot() = 4\n",
				"\tNode(0) = Leaf(0x61)\n",
				"\tNode(1) = Leaf(0x62)\n",
				"\tNode(2) = Leaf(0x63)\n",
				"\tNode(3) = Internal(0, 1)\n",
				"\tNode(4) = Internal(2, 3)\n",
				"}\n",
			}, ""),
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := BuildTree(CountFrequencies([]byte(row.input)))
			var buf strings.Builder
			_, _ = tree.Dump(&buf)
			if row.dump != buf.String() {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.dump, buf.String())
			}
		})
	}
}

func TestBuildTree_OrderIndependent(t *testing.T) {
	// Same frequencies in a different order must give the same tree.
	a := BuildTree(CountFrequencies([]byte("mississippi river")))
	b := BuildTree(CountFrequencies([]byte("revir ippississim")))

	var bufA, bufB strings.Builder
	_, _ = a.Dump(&bufA)
	_, _ = b.Dump(&bufB)
	require.Equal(t, bufA.String(), bufB.String())
}

func TestTree_Step(t *testing.T) {
	tree := BuildTree(CountFrequencies([]byte("aaabbc")))

	root := tree.Root()
	require.False(t, tree.IsLeaf(root))

	left := tree.Step(root, false)
	require.True(t, tree.IsLeaf(left))
	require.Equal(t, Symbol('a'), tree.Symbol(left))

	right := tree.Step(root, true)
	require.False(t, tree.IsLeaf(right))
	require.Equal(t, Symbol('c'), tree.Symbol(tree.Step(right, false)))
	require.Equal(t, Symbol('b'), tree.Symbol(tree.Step(right, true)))

	require.Equal(t, InvalidNode, tree.Step(left, true))
}
