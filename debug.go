// Copyright Chrono Technologies LLC
// SPDX-License-Identifier: MIT

package netfreq

import "fmt"

// DebugPrint prints the suffix tree structure in a directory-tree format,
// one line per node, showing each edge's byte slice and, for internal
// nodes, the leaf-child count and the net frequency once AllNF has
// computed it. Use
// this only for development and debugging purposes.
func (t *Tree) DebugPrint() {
	root := t.store.internal(t.root)

	fmt.Println(".")

	chars := root.sortedInternalChildChars()

	for i, c := range chars {
		t.printNode(root.internalChildren[c], "", i == len(chars)-1)
	}

	for _, c := range root.sortedLeafChildChars() {
		leaf := t.store.leaf(root.leafChildren[c])
		leafLabel := t.text[leaf.start : leaf.start+leafEdgeLength(leaf, t.globalEnd)]
		fmt.Printf("%s%q (leaf)\n", "└─ ", leafLabel)
	}
}

func (t *Tree) printNode(h internalHandle, prefix string, isLast bool) {
	node := t.store.internal(h)
	label := t.text[node.start:node.end]

	branch, nextPrefix := "├─ ", prefix+"│  "
	if isLast {
		branch, nextPrefix = "└─ ", prefix+"  "
	}

	fmt.Printf("%s%s%q (nf=%d, leaves=%d)\n", prefix, branch, label, node.nf, len(node.leafChildren))

	chars := node.sortedInternalChildChars()

	for i, c := range chars {
		t.printNode(node.internalChildren[c], nextPrefix, i == len(chars)-1)
	}

	for _, c := range node.sortedLeafChildChars() {
		leaf := t.store.leaf(node.leafChildren[c])
		leafLabel := t.text[leaf.start : leaf.start+leafEdgeLength(leaf, t.globalEnd)]
		fmt.Printf("%s%s%q (leaf)\n", nextPrefix, "└─ ", leafLabel)
	}
}
