// Copyright Chrono Technologies LLC
// SPDX-License-Identifier: MIT

package netfreq

import "bytes"

// Tree is a generalized suffix tree over an immutable text, built once by
// New and then queryable via SingleNF and AllNF. The text is borrowed
// (read-only) and must outlive the Tree; Tree never copies it.
type Tree struct {
	text  []byte
	store *store
	root  internalHandle

	// globalEnd is the shared leaf-end counter. Every leaf's edge length
	// is computed from it on demand (node.go's leafEdgeLength); after
	// construction it equals len(text).
	globalEnd int

	nfComputed bool
}

// New builds a suffix tree over text using Ukkonen's algorithm. text is
// not copied and must not be mutated afterward. Callers that want every
// position to have a well-defined left and right extension should prefix
// and suffix text with two distinct sentinel bytes that occur nowhere
// else in text (conventionally '#' and '$'); New does not do this on the
// caller's behalf.
func New(text []byte) (*Tree, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}

	s := newStore()
	root := s.allocInternal(0, 0)

	b := newBuilder(text, s, root)
	b.build()

	return &Tree{
		text:      text,
		store:     s,
		root:      root,
		globalEnd: b.globalEnd,
	}, nil
}

// Len returns the length of the indexed text.
func (t *Tree) Len() int {
	return len(t.text)
}

// locate runs a skip/count search for the internal node corresponding
// to s. It returns (node, 0) if s matches exactly up
// to an explicit node, (node, r) with r > 0 if s ends r characters short
// of the far end of node's incoming edge (s is present but
// non-branching), and (nilInternal, 1) as soon as the search reaches a
// leaf edge. The rest of s is not compared against that leaf edge, so
// residual 1 means s is unique if it occurs at all: an absent s whose
// leading part runs into a leaf edge also gets it. (nilInternal, 0) is
// returned when s mismatches an internal edge or no edge starts with its
// next character.
func (t *Tree) locate(s []byte) (internalHandle, int) {
	node := t.root
	i := 0

	for {
		if i >= len(s) {
			return node, i - len(s)
		}

		ref := t.store.findChild(node, s[i])

		switch ref.kind {
		case childIsInternal:
			child := t.store.internal(ref.internal)
			length := child.edgeLength()

			cmpLen := length
			if remaining := len(s) - i; remaining < cmpLen {
				cmpLen = remaining
			}

			if !bytes.Equal(s[i:i+cmpLen], t.text[child.start:child.start+cmpLen]) {
				return nilInternal, 0
			}

			node = ref.internal
			i += length

		case childIsLeaf:
			return nilInternal, 1

		default:
			return nilInternal, 0
		}
	}
}
