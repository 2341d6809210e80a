// Copyright Chrono Technologies LLC
// SPDX-License-Identifier: MIT

package netfreq

// store is the tree's node arena: two parallel typed slices indexed by
// handle, one for leaves and one for internal nodes. Nothing is ever
// reclaimed from a store; it lives for as long as the Tree that owns it.
type store struct {
	leaves    []leafNode
	internals []internalNode
}

func newStore() *store {
	return &store{}
}

// allocLeaf appends a new leaf starting at the given text position and
// returns its handle.
func (s *store) allocLeaf(start int) leafHandle {
	s.leaves = append(s.leaves, leafNode{start: start})
	return leafHandle(len(s.leaves) - 1)
}

// allocInternal appends a new internal node with a fixed [start, end)
// edge label and returns its handle. Its suffix link starts unset.
func (s *store) allocInternal(start, end int) internalHandle {
	s.internals = append(s.internals, internalNode{
		start:      start,
		end:        end,
		suffixLink: nilInternal,
	})

	return internalHandle(len(s.internals) - 1)
}

func (s *store) leaf(h leafHandle) *leafNode {
	return &s.leaves[h]
}

func (s *store) internal(h internalHandle) *internalNode {
	return &s.internals[h]
}

// findChild looks up parent's child on character c, returning a tagged
// result distinguishing "no such child", "leaf child", and "internal
// child". The two child maps are disjoint by construction
// (node.go's setLeafChild/setInternalChild enforce it), so at most one of
// the two lookups below can hit.
func (s *store) findChild(parent internalHandle, c byte) childRef {
	p := s.internal(parent)

	if lh, ok := p.leafChildren[c]; ok {
		return childRef{kind: childIsLeaf, leaf: lh}
	}

	if ih, ok := p.internalChildren[c]; ok {
		return childRef{kind: childIsInternal, internal: ih}
	}

	return childRef{kind: childNone}
}

// childEdge returns the (length, start) of the edge leading to the child
// referenced by ref, using the tree's current globalEnd to resolve a
// leaf's implicit edge length.
func (s *store) childEdge(ref childRef, globalEnd int) (length, start int) {
	if ref.kind == childIsLeaf {
		l := s.leaf(ref.leaf)
		return leafEdgeLength(l, globalEnd), l.start
	}

	in := s.internal(ref.internal)
	return in.edgeLength(), in.start
}

// splitLeafEdge reclassifies a leaf child of parent (keyed by c) as a
// leaf child of mid instead, advancing its start to splitAt and
// re-keying it under newKeyChar (the text byte now at its new start).
// Used by rule 2a when the edge being split currently leads to a leaf.
func (s *store) splitLeafEdge(parent internalHandle, c byte, lh leafHandle, mid internalHandle, splitAt int, newKeyChar byte) {
	s.leaf(lh).start = splitAt

	p := s.internal(parent)
	p.deleteLeafChild(c)
	p.setInternalChild(c, mid)

	s.internal(mid).setLeafChild(newKeyChar, lh)
}

// splitInternalEdge reclassifies an internal child of parent (keyed by c)
// as an internal child of mid instead, advancing its start to splitAt
// and re-keying it under newKeyChar. Used by rule 2a when the edge being
// split currently leads to an internal node.
func (s *store) splitInternalEdge(parent internalHandle, c byte, ih internalHandle, mid internalHandle, splitAt int, newKeyChar byte) {
	s.internal(ih).start = splitAt

	s.internal(parent).setInternalChild(c, mid)
	s.internal(mid).setInternalChild(newKeyChar, ih)
}
