// Copyright Chrono Technologies LLC
// SPDX-License-Identifier: MIT

package netfreq

import (
	"bytes"
	"testing"
)

func TestSingleNF(t *testing.T) {
	tests := []struct {
		text     string
		query    string
		expected uint32
	}{
		// "abcd" occurs twice, once preceded by '#' and followed by
		// 'a', once preceded by 'y' and followed by '$': both
		// occurrences extend uniquely in both directions.
		{"#abcdabybcdbxbcyabcd$", "abcd", 2},
		{"#abcdabybcdbxbcyabcd$", "bc", 1},
		{"#abcdabybcdbxbcyabcd$", "bcd", 1},

		// "an" is always followed by 'a', so its path ends mid-edge.
		{"#banana$", "an", 0},
		// Both "ana" occurrences extend uniquely: "#banana$" contains
		// "bana"/"nana" once each on the left and "anan"/"ana$" once
		// each on the right.
		{"#banana$", "ana", 2},
		// "na" extends uniquely on the right ("nan", "na$") but both
		// occurrences are preceded by 'a', and "ana" repeats.
		{"#banana$", "na", 0},
		{"#banana$", "a", 0},
		{"#banana$", "banana", 0},

		// Every "a" occurrence that right-extends uniquely ("a$") is
		// preceded by a repeated "aa".
		{"#aaaa$", "a", 0},
		{"#aaaa$", "aa", 0},
		{"#aaaa$", "aaa", 2},
		{"#aaaa$", "aaaa", 0},

		// Both "ab" occurrences have unique contexts on both sides:
		// "#ab"/"bab" and "aba"/"ab$" each occur once.
		{"#abab$", "ab", 2},
		{"#abab$", "a", 0},
		{"#abab$", "b", 0},

		// Two occurrences with pairwise distinct left (x, y) and right
		// (y, z) extensions.
		{"#xabyabz$", "ab", 2},
		{"#xabyabz$", "b", 0},
	}

	for _, test := range tests {
		tree, err := New([]byte(test.text))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := tree.SingleNF([]byte(test.query)); got != test.expected {
			t.Errorf("SingleNF(%q) on %q: got:%d, want:%d", test.query, test.text, got, test.expected)
		}
	}
}

func TestSingleNFBoundaries(t *testing.T) {
	tree, err := New([]byte("#banana$"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		query    []byte
		expected uint32
	}{
		// The empty substring resolves at the root: of its three
		// unique right extensions ('#', 'b', '$'), the '$' one is
		// preceded by a repeated 'a'.
		{"empty substring", nil, 2},
		{"longer than the text", []byte("banana#banana"), 0},
		{"absent substring", []byte("nab"), 0},
		{"unique substring", []byte("nan"), 0},
		{"mid-edge substring", []byte("ban"), 0},
		{"substring with the terminator", []byte("na$"), 0},
		{"terminator alone", []byte("$"), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := tree.SingleNF(test.query); got != test.expected {
				t.Errorf("SingleNF(%q): got:%d, want:%d", test.query, got, test.expected)
			}
		})
	}
}

func TestAllNFReport(t *testing.T) {
	tree, err := New([]byte("#abcdabybcdbxbcyabcd$"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer

	if err := tree.AllNF(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := parseReport(t, buf.Bytes())

	if nf, ok := report["abcd"]; !ok || nf != 2 {
		t.Errorf("report entry for %q: got:%d (present:%t), want:2", "abcd", nf, ok)
	}

	// Every reported entry must carry a positive net frequency and
	// agree with the single-substring computation on the same tree.
	for substring, nf := range report {
		if nf <= 0 {
			t.Errorf("report entry %q has non-positive nf %d", substring, nf)
		}

		if got := tree.SingleNF([]byte(substring)); got != uint32(nf) {
			t.Errorf("SingleNF(%q): got:%d, want reported %d", substring, got, nf)
		}
	}
}

func TestAllNFSecondCallFails(t *testing.T) {
	tree, err := New([]byte("#banana$"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var first bytes.Buffer

	if err := tree.AllNF(&first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var second bytes.Buffer

	if err := tree.AllNF(&second); err != ErrNFAlreadyComputed {
		t.Errorf("unexpected error: got:%v, want:%v", err, ErrNFAlreadyComputed)
	}

	if second.Len() != 0 {
		t.Errorf("second call wrote %d bytes, want none", second.Len())
	}
}

func TestAllNFDeterministicAcrossFreshTrees(t *testing.T) {
	text := []byte("#abcdabybcdbxbcyabcd$")

	var first, second bytes.Buffer

	for _, buf := range []*bytes.Buffer{&first, &second} {
		tree, err := New(text)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := tree.AllNF(buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("reports differ:\n%s\n---\n%s", first.Bytes(), second.Bytes())
	}
}

// parseReport splits a tab-separated report into a substring -> nf map.
func parseReport(t *testing.T, raw []byte) map[string]int {
	t.Helper()

	report := make(map[string]int)

	for _, line := range bytes.Split(raw, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}

		tab := bytes.LastIndexByte(line, '\t')

		if tab < 0 {
			t.Fatalf("malformed report line: %q", line)
		}

		nf := 0

		for _, d := range line[tab+1:] {
			if d < '0' || d > '9' {
				t.Fatalf("malformed nf in report line: %q", line)
			}
			nf = nf*10 + int(d-'0')
		}

		report[string(line[:tab])] = nf
	}

	return report
}
