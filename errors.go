// Copyright Chrono Technologies LLC
// SPDX-License-Identifier: MIT

package netfreq

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned by New when the given text has zero length.
	ErrEmptyText = errors.New("netfreq: text must not be empty")

	// ErrNFAlreadyComputed is returned by AllNF when called more than once
	// against the same Tree. The nf field accumulates rather than resets,
	// so a second pass would silently corrupt every internal node's net
	// frequency. Build a fresh Tree to recompute.
	ErrNFAlreadyComputed = errors.New("netfreq: AllNF already computed for this tree")
)

// InvariantViolation reports a broken construction invariant: the
// leaf/internal child maps of some node ceased to be disjoint, the
// remainder count went negative, or a walk-down target that should be
// internal turned out to be a leaf. These can only happen if the builder
// itself has a bug; they are not recoverable query outcomes, so callers
// encounter them as panics rather than returned errors.
type InvariantViolation struct {
	Op  string
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("netfreq: invariant violation in %s: %s", e.Op, e.Msg)
}

func fatalf(op, format string, args ...any) {
	panic(&InvariantViolation{Op: op, Msg: fmt.Sprintf(format, args...)})
}
