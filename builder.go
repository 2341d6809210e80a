// Copyright Chrono Technologies LLC
// SPDX-License-Identifier: MIT

package netfreq

// builder drives Ukkonen's algorithm one phase (one input byte) at a
// time, maintaining the active point and the pending suffix-link
// installation. It is discarded once New returns; the
// globalEnd counter it advances lives on in the Tree, since every leaf's
// edge length is computed from it for as long as the tree exists.
type builder struct {
	text  []byte
	store *store
	root  internalHandle

	globalEnd int
	remainder int
	needLink  internalHandle

	activeNode   internalHandle
	activeEdge   int
	activeLength int
}

func newBuilder(text []byte, s *store, root internalHandle) *builder {
	return &builder{
		text:       text,
		store:      s,
		root:       root,
		needLink:   nilInternal,
		activeNode: root,
	}
}

// build runs one extension phase per byte of text, in order. Phases are
// strictly sequential: each phase's active point is derived entirely
// from the previous one.
func (b *builder) build() {
	for k := range b.text {
		b.extend(k)
	}
}

// extend performs the k-th phase: insert text[k] at the end of every
// suffix not yet made explicit, using the skip/count and "once a leaf,
// always a leaf" tricks to avoid ever touching an already-explicit leaf.
func (b *builder) extend(k int) {
	b.needLink = nilInternal
	b.remainder++

extensionLoop:
	for b.remainder > 0 {
		if b.activeLength == 0 {
			b.activeEdge = k
		}

		ref := b.store.findChild(b.activeNode, b.text[b.activeEdge])

		if ref.kind == childNone {
			// Rule 2b: the path ends at a node with no outgoing edge on
			// this character. Attach a brand new leaf and move on to the
			// next suffix in this phase.
			leaf := b.store.allocLeaf(k)
			b.store.internal(b.activeNode).setLeafChild(b.text[b.activeEdge], leaf)
			b.installLink(b.activeNode)
			b.decrementRemainder()
			b.resetActivePoint(k)
			continue
		}

		length, start := b.store.childEdge(ref, b.globalEnd)

		if b.activeLength >= length {
			// Trick 1 (skip/count): walk straight past this whole edge
			// without doing any other work, and re-examine the same
			// phase from the new active point.
			if ref.kind != childIsInternal {
				fatalf("extend", "walk-down target at phase %d must be internal, got a leaf", k)
			}

			b.activeEdge += length
			b.activeLength -= length
			b.activeNode = ref.internal

			continue
		}

		if b.text[start+b.activeLength] == b.text[k] {
			// Rule 3: the next character already exists on this edge.
			// Trick 3 (rule 3 is a show stopper): once this fires, every
			// remaining suffix of this phase is already present too, so
			// the whole phase is done.
			b.activeLength++
			b.installLink(b.activeNode)
			break extensionLoop
		}

		// Rule 2a: split the edge at the active length and hang a new
		// leaf for text[k] off the newly created internal node.
		mid := b.splitEdge(ref, start, k)
		b.installLink(mid)
		b.decrementRemainder()
		b.resetActivePoint(k)
	}

	b.globalEnd++
}

// splitEdge implements rule 2a: it carves out internal node mid covering
// [start, start+activeLength) of the edge that used to run from
// activeNode to ref's target, reattaches that target under mid with its
// start advanced past the carved-out prefix, and gives mid a fresh leaf
// for text[k].
func (b *builder) splitEdge(ref childRef, start, k int) internalHandle {
	splitAt := start + b.activeLength
	mid := b.store.allocInternal(start, splitAt)

	newLeaf := b.store.allocLeaf(k)
	b.store.internal(mid).setLeafChild(b.text[k], newLeaf)

	edgeChar := b.text[b.activeEdge]

	switch ref.kind {
	case childIsLeaf:
		b.store.splitLeafEdge(b.activeNode, edgeChar, ref.leaf, mid, splitAt, b.text[splitAt])
	case childIsInternal:
		b.store.splitInternalEdge(b.activeNode, edgeChar, ref.internal, mid, splitAt, b.text[splitAt])
	default:
		fatalf("splitEdge", "cannot split a non-existent child")
	}

	return mid
}

// installLink sets needLink's suffix link to x and records the inverse
// Weiner link on x, then advances needLink to x. Called after a rule-2b
// leaf creation (x = activeNode), after a rule-2a split (x = mid), and
// after a rule-3 match (x = activeNode): the three points at which a
// node that might need a suffix link becomes linkable.
func (b *builder) installLink(x internalHandle) {
	if b.needLink != nilInternal {
		b.store.internal(b.needLink).suffixLink = x
		b.store.internal(x).addWeinerLink(b.needLink)
	}

	b.needLink = x
}

// decrementRemainder consumes one pending suffix insertion, checking the
// invariant that the remainder count never goes negative.
func (b *builder) decrementRemainder() {
	b.remainder--

	if b.remainder < 0 {
		fatalf("decrementRemainder", "remainder went negative")
	}
}

// resetActivePoint applies the end-of-extension reset rule: from the
// root with a nonzero active length, shift the active edge to the start
// of the next suffix to insert; otherwise follow the current active
// node's suffix link (root if it has none).
func (b *builder) resetActivePoint(k int) {
	if b.activeNode == b.root && b.activeLength > 0 {
		b.activeLength--
		b.activeEdge = k - b.remainder + 1
		return
	}

	if sl := b.store.internal(b.activeNode).suffixLink; sl != nilInternal {
		b.activeNode = sl
	} else {
		b.activeNode = b.root
	}
}
