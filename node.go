// Copyright Chrono Technologies LLC
// SPDX-License-Identifier: MIT

package netfreq

import "sort"

// leafNode is a leaf of the suffix tree. Its incoming edge runs from
// start to the tree's shared globalEnd counter, which every leaf
// references implicitly rather than through a stored pointer. Once a
// leaf, always a leaf: its edge grows automatically as construction
// advances without touching the leaf itself.
type leafNode struct {
	start int
}

// internalNode is an internal (branching) node of the suffix tree. Its
// incoming edge is the fixed half-open range [start, end). Children are
// split across two maps keyed by the first character of their edge.
// leafChildren and internalChildren are disjoint by construction, so
// testing whether a given character leads to a leaf or an internal node
// is an O(1) map lookup rather than a tag check on a polymorphic node.
type internalNode struct {
	start, end int

	leafChildren     map[byte]leafHandle
	internalChildren map[byte]internalHandle

	suffixLink  internalHandle
	weinerLinks map[internalHandle]struct{}

	nf int
}

// edgeLength returns end-start, the number of characters on this node's
// incoming edge. The root's incoming edge is empty (start == end == 0).
func (n *internalNode) edgeLength() int {
	return n.end - n.start
}

// leafEdgeLength returns the current length of a leaf's incoming edge,
// computed on demand from the tree's shared globalEnd counter rather than
// stored on the leaf itself.
func leafEdgeLength(l *leafNode, globalEnd int) int {
	return globalEnd - l.start
}

// setLeafChild attaches a leaf under this node keyed by c, after
// asserting the disjointness invariant: c must not already lead to an
// internal child.
func (n *internalNode) setLeafChild(c byte, h leafHandle) {
	if _, exists := n.internalChildren[c]; exists {
		fatalf("setLeafChild", "character %q already leads to an internal child", c)
	}

	if n.leafChildren == nil {
		n.leafChildren = make(map[byte]leafHandle)
	}

	n.leafChildren[c] = h
}

// setInternalChild attaches (or replaces) an internal child under this
// node keyed by c, after asserting the disjointness invariant.
func (n *internalNode) setInternalChild(c byte, h internalHandle) {
	if _, exists := n.leafChildren[c]; exists {
		fatalf("setInternalChild", "character %q already leads to a leaf child", c)
	}

	if n.internalChildren == nil {
		n.internalChildren = make(map[byte]internalHandle)
	}

	n.internalChildren[c] = h
}

// deleteLeafChild removes the leaf child keyed by c, used when an edge
// split reclassifies a former leaf child of this node as a leaf child of
// the newly inserted internal node instead.
func (n *internalNode) deleteLeafChild(c byte) {
	delete(n.leafChildren, c)
}

// addWeinerLink records that v (labeled xS for some character x) has its
// suffix link pointing at n (labeled S). Insertion is idempotent: a
// duplicate add is a no-op.
func (n *internalNode) addWeinerLink(v internalHandle) {
	if n.weinerLinks == nil {
		n.weinerLinks = make(map[internalHandle]struct{})
	}

	n.weinerLinks[v] = struct{}{}
}

// sortedWeinerLinks returns this node's Weiner-link predecessors in
// ascending handle order. The set itself carries no order; sorting only
// at read time keeps traversal and test output deterministic without
// paying for an ordered container on every insert.
func (n *internalNode) sortedWeinerLinks() []internalHandle {
	out := make([]internalHandle, 0, len(n.weinerLinks))

	for h := range n.weinerLinks {
		out = append(out, h)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// sortedLeafChildChars returns the first characters of this node's leaf
// children in ascending order, for deterministic traversal/reporting.
func (n *internalNode) sortedLeafChildChars() []byte {
	out := make([]byte, 0, len(n.leafChildren))

	for c := range n.leafChildren {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// sortedInternalChildChars returns the first characters of this node's
// internal children in ascending order, for deterministic traversal.
func (n *internalNode) sortedInternalChildChars() []byte {
	out := make([]byte, 0, len(n.internalChildren))

	for c := range n.internalChildren {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
