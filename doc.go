// Copyright Chrono Technologies LLC
// SPDX-License-Identifier: MIT

// Package netfreq builds an online generalized suffix tree over an
// immutable text, augmented with both suffix links and Weiner links, and
// uses the dual link structure to compute the net frequency of substrings:
// the count of occurrences that are simultaneously left- and
// right-maximal.
package netfreq
