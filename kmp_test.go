// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package kmp

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/charlievieth/kmp/internal/test"
)

func eqByte(a, b byte) bool { return a == b }

func TestTable(t *testing.T) {
	test.Table(t, test.ByteTableFunc(Table[byte]))
}

func TestTableString(t *testing.T) {
	test.Table(t, TableString)
}

func TestTableBytes(t *testing.T) {
	test.Table(t, test.ByteTableFunc(TableBytes))
}

func TestTableFunc(t *testing.T) {
	test.Table(t, test.ByteTableFunc(func(pattern []byte) []int {
		return TableFunc(pattern, eqByte)
	}))
}

func TestTableEmpty(t *testing.T) {
	for _, next := range [][]int{
		Table[byte](nil),
		Table([]int{}),
		TableString(""),
		TableBytes(nil),
		TableFunc[byte](nil, eqByte),
	} {
		if next == nil || len(next) != 0 {
			t.Errorf("Table(empty) = %#v; want: []int{}", next)
		}
	}
}

func TestTableGeneric(t *testing.T) {
	type token struct {
		kind  int
		value string
	}
	var (
		a = token{1, "a"}
		b = token{2, "b"}
	)
	pattern := []token{a, a, b, a, a, a, b}
	want := []int{0, 1, 0, 1, 2, 2, 3}
	if got := Table(pattern); !slices.Equal(got, want) {
		t.Errorf("Table(%v) = %v; want: %v", pattern, got, want)
	}
}

func TestIndex(t *testing.T) {
	test.Index(t, IndexString)
}

func TestIndexLong(t *testing.T) {
	test.IndexLong(t, IndexString)
}

func TestIndexBytes(t *testing.T) {
	test.Index(t, test.ByteIndexFunc(IndexBytes))
	test.IndexLong(t, test.ByteIndexFunc(IndexBytes))
}

func TestIndexGeneric(t *testing.T) {
	test.Index(t, test.ByteIndexFunc(Index[byte]))
	test.IndexLong(t, test.ByteIndexFunc(Index[byte]))
}

func TestIndexFunc(t *testing.T) {
	fn := func(s, sep []byte) int {
		return IndexFunc(s, sep, eqByte)
	}
	test.Index(t, test.ByteIndexFunc(fn))
	test.IndexLong(t, test.ByteIndexFunc(fn))
}

// Test the IndexByte fast path directly since it is disabled on some arch's.
func TestIndexStringSkip(t *testing.T) {
	for _, skip := range []bool{true, false} {
		t.Run(fmt.Sprint(skip), func(t *testing.T) {
			fn := func(s, substr string) int {
				if len(substr) == 0 {
					return 0
				}
				return indexString(s, substr, TableString(substr), skip)
			}
			test.Index(t, fn)
			test.IndexLong(t, fn)
		})
	}
}

func TestContains(t *testing.T) {
	test.Contains(t, ContainsString)
	test.Contains(t, test.ByteContainsFunc(ContainsBytes))
	test.Contains(t, test.ByteContainsFunc(Contains[byte]))
}

func TestIndexRunes(t *testing.T) {
	tests := []struct {
		s, sep string
		out    int
	}{
		{"", "", 0},
		{"αβγ", "", 0},
		{"", "α", -1},
		{"αβγ", "γ", 2},
		{"日a本b語ç日ð本ê語", "ç日ð本ê", 5},
		{"ααβααβαααβ", "αααβ", 6},
		{"ΑΒΔ", "αβδ", -1},
	}
	for _, test := range tests {
		got := Index([]rune(test.s), []rune(test.sep))
		if got != test.out {
			t.Errorf("Index(%q, %q) = %d; want: %d", test.s, test.sep, got, test.out)
		}
	}
}

func TestIndexFuncFold(t *testing.T) {
	fold := func(a, b rune) bool {
		return a == b || strings.EqualFold(string(a), string(b))
	}
	tests := []struct {
		s, sep string
		out    int
	}{
		{"chicken", "KEN", 4},
		{"chicken", "DMR", -1},
		{"ΑΒΔ", "αβδ", 0},
		{"xxAaAaB", "aaab", 3},
	}
	for _, test := range tests {
		got := IndexFunc([]rune(test.s), []rune(test.sep), fold)
		if got != test.out {
			t.Errorf("IndexFunc(%q, %q) = %d; want: %d", test.s, test.sep, got, test.out)
		}
	}
}

func TestEmptyPattern(t *testing.T) {
	for _, s := range []string{"", "a", "abc", strings.Repeat("x", 100)} {
		if i := IndexString(s, ""); i != 0 {
			t.Errorf("IndexString(%q, %q) = %d; want: 0", s, "", i)
		}
		if i := IndexBytes([]byte(s), nil); i != 0 {
			t.Errorf("IndexBytes(%q, nil) = %d; want: 0", s, i)
		}
		if i := Index([]byte(s), []byte{}); i != 0 {
			t.Errorf("Index(%q, []byte{}) = %d; want: 0", s, i)
		}
		if i := IndexFunc([]byte(s), nil, eqByte); i != 0 {
			t.Errorf("IndexFunc(%q, nil) = %d; want: 0", s, i)
		}
		if i := CompileString("").Index(s); i != 0 {
			t.Errorf("CompileString(%q).Index(%q) = %d; want: 0", "", s, i)
		}
	}
	if i := Index[int](nil, nil); i != 0 {
		t.Errorf("Index(nil, nil) = %d; want: 0", i)
	}
}

// countingEq returns an equality function that counts the number of times it
// is called.
func countingEq(n *int) func(a, b byte) bool {
	return func(a, b byte) bool {
		*n++
		return a == b
	}
}

// scanComparisons returns the number of element comparisons IndexFunc makes
// while scanning s, excluding the comparisons made building the table.
func scanComparisons(s, sep string) (index, comparisons int) {
	var table, total int
	TableFunc([]byte(sep), countingEq(&table))
	index = IndexFunc([]byte(s), []byte(sep), countingEq(&total))
	return index, total - table
}

func TestIndexLinear(t *testing.T) {
	tests := []struct {
		s, sep string
	}{
		{strings.Repeat("a", 4096), "aaab"},
		{strings.Repeat("a", 4096) + "b", "aaab"},
		{strings.Repeat("a", 4096), strings.Repeat("a", 100) + "b"},
		{strings.Repeat("ab", 2048), "abababac"},
		{strings.Repeat("aab", 1024), "aabaabaaa"},
		{strings.Repeat("abaab", 1024), "abaababaabaab"},
		{strings.Repeat("abcabd", 512), "abcabdabcabe"},
		{strings.Repeat("x", 4096), "y"},
	}
	for _, test := range tests {
		n := len(test.s)
		i, cmps := scanComparisons(test.s, test.sep)
		if want := strings.Index(test.s, test.sep); i != want {
			t.Errorf("IndexFunc(%.16q, %q) = %d; want: %d", test.s, test.sep, i, want)
		}
		if cmps > 2*n {
			t.Errorf("IndexFunc(%.16q, %q): %d comparisons; want: <= %d",
				test.s, test.sep, cmps, 2*n)
		}
	}
}

func TestIndexLinearFuzz(t *testing.T) {
	test.IndexArgsFuzz(t, func(t testing.TB, s, sep string, out int) {
		if sep == "" {
			return
		}
		i, cmps := scanComparisons(s, sep)
		if i != out {
			t.Errorf("IndexFunc(%q, %q) = %d; want: %d", s, sep, i, out)
		}
		// Only the scanned prefix of s counts when a match is found.
		n := len(s)
		if i >= 0 {
			n = i + len(sep)
		}
		if cmps > 2*n {
			t.Errorf("IndexFunc(%q, %q): %d comparisons; want: <= %d", s, sep, cmps, 2*n)
		}
		var tcmps int
		TableFunc([]byte(sep), countingEq(&tcmps))
		if m := len(sep); tcmps > 2*m {
			t.Errorf("TableFunc(%q): %d comparisons; want: <= %d", sep, tcmps, 2*m)
		}
	})
}

// Make sure the scan never revisits text: the first argument passed to the
// equality function must be non-decreasing positions of the text.
func TestIndexNoBacktrack(t *testing.T) {
	type elem struct {
		pos int
		c   byte
	}
	s := strings.Repeat("aabaab", 64) + "aabaaab"
	text := make([]elem, len(s))
	for i := range s {
		text[i] = elem{i, s[i]}
	}
	sep := "aabaaab"
	pattern := make([]elem, len(sep))
	for i := range sep {
		pattern[i] = elem{-1, sep[i]}
	}
	last := -1
	i := IndexFunc(text, pattern, func(a, b elem) bool {
		if a.pos >= 0 {
			if a.pos < last {
				t.Fatalf("text position %d examined after %d", a.pos, last)
			}
			last = a.pos
		}
		return a.c == b.c
	})
	if want := strings.Index(s, sep); i != want {
		t.Errorf("IndexFunc = %d; want: %d", i, want)
	}
}

func TestScenarios(t *testing.T) {
	if i := IndexString("ababcabcabababd", "ababd"); i != 10 {
		t.Errorf("IndexString(%q, %q) = %d; want: %d", "ababcabcabababd", "ababd", i, 10)
	}
	if next := TableString("aabaaab"); !slices.Equal(next, []int{0, 1, 0, 1, 2, 2, 3}) {
		t.Errorf("TableString(%q) = %v; want: %v", "aabaaab", next, []int{0, 1, 0, 1, 2, 2, 3})
	}
	if i := IndexString("aaa", "aa"); i != 0 {
		t.Errorf("IndexString(%q, %q) = %d; want: %d", "aaa", "aa", i, 0)
	}
	if i := IndexString("", "abc"); i != -1 {
		t.Errorf("IndexString(%q, %q) = %d; want: %d", "", "abc", i, -1)
	}
	if i := IndexString("aaaa", "ab"); i != -1 {
		t.Errorf("IndexString(%q, %q) = %d; want: %d", "aaaa", "ab", i, -1)
	}
	if i := IndexString("", ""); i != 0 {
		t.Errorf("IndexString(%q, %q) = %d; want: %d", "", "", i, 0)
	}
}

// Make sure that IndexBytes does not modify its arguments.
func TestIndexBytesReadOnly(t *testing.T) {
	s := []byte("ababcabcabababd")
	sep := []byte("ababd")
	s0 := append([]byte(nil), s...)
	sep0 := append([]byte(nil), sep...)
	if i := IndexBytes(s, sep); i != bytes.Index(s0, sep0) {
		t.Errorf("IndexBytes(%q, %q) = %d; want: %d", s, sep, i, bytes.Index(s0, sep0))
	}
	if !bytes.Equal(s, s0) || !bytes.Equal(sep, sep0) {
		t.Errorf("IndexBytes modified its arguments: %q, %q", s, sep)
	}
}

var benchmarkString = strings.Repeat("aaaaaaaab", 1024) + "aaaaaaaaa"

func BenchmarkIndexString(b *testing.B) {
	b.SetBytes(int64(len(benchmarkString)))
	for i := 0; i < b.N; i++ {
		IndexString(benchmarkString, "aaaaaaaaa")
	}
}

func BenchmarkIndexGeneric(b *testing.B) {
	s := []byte(benchmarkString)
	sep := []byte("aaaaaaaaa")
	b.SetBytes(int64(len(s)))
	for i := 0; i < b.N; i++ {
		Index(s, sep)
	}
}

func BenchmarkIndexFunc(b *testing.B) {
	s := []byte(benchmarkString)
	sep := []byte("aaaaaaaaa")
	b.SetBytes(int64(len(s)))
	for i := 0; i < b.N; i++ {
		IndexFunc(s, sep, eqByte)
	}
}

func BenchmarkTableString(b *testing.B) {
	sep := strings.Repeat("aab", 64)
	for i := 0; i < b.N; i++ {
		TableString(sep)
	}
}
