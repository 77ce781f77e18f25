// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package test contains the test cases, reference implementations and random
// test runners shared by the kmp tests.
package test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

type IndexFunc func(s, substr string) int

func ByteIndexFunc(fn func(s, sep []byte) int) IndexFunc {
	return func(s, sep string) int {
		return fn([]byte(s), []byte(sep))
	}
}

type ContainsFunc func(s, substr string) bool

func ByteContainsFunc(fn func(s, sep []byte) bool) ContainsFunc {
	return func(s, sep string) bool {
		return fn([]byte(s), []byte(sep))
	}
}

type TableFunc func(pattern string) []int

func ByteTableFunc(fn func(pattern []byte) []int) TableFunc {
	return func(pattern string) []int {
		return fn([]byte(pattern))
	}
}

type indexTest struct {
	s   string
	sep string
	out int
}

// From strings/strings_test.go
var indexTests = []indexTest{
	{"", "", 0},
	{"", "a", -1},
	{"", "foo", -1},
	{"fo", "foo", -1},
	{"foo", "foo", 0},
	{"oofofoofooo", "f", 2},
	{"oofofoofooo", "foo", 4},
	{"barfoobarfoo", "foo", 3},
	{"foo", "", 0},
	{"foo", "o", 1},
	{"abcABCabc", "A", 3},
	{"abcVBCabc", "V", 3},
	{"jrzm6jjhorimglljrea4w3rlgosts0w2gia17hno2td4qd1jz", "jz", 47},
	{"ekkuk5oft4eq0ocpacknhwouic1uua46unx12l37nioq9wbpnocqks6", "ks6", 52},
	{"999f2xmimunbuyew5vrkla9cpwhmxan8o98ec", "98ec", 33},
	{"9lpt9r98i04k8bz6c6dsrthb96bhi", "96bhi", 24},
	{"55u558eqfaod2r2gu42xxsu631xf0zobs5840vl", "5840vl", 33},
	// cases with one byte strings
	{"", "a", -1},
	{"x", "a", -1},
	{"x", "x", 0},
	{"abc", "a", 0},
	{"abc", "b", 1},
	{"abc", "c", 2},
	{"ABC", "BC", 1},
	{"abc", "x", -1},
	// short strings
	{"", "ab", -1},
	{"bc", "ab", -1},
	{"ab", "ab", 0},
	{"xab", "ab", 1},
	{"xab"[:2], "ab", -1},
	{"", "abc", -1},
	{"xbc", "abc", -1},
	{"abc", "abc", 0},
	{"xabc", "abc", 1},
	{"xabc"[:3], "abc", -1},
	{"xabxc", "abc", -1},
	{"", "abcd", -1},
	{"xbcd", "abcd", -1},
	{"abcd", "abcd", 0},
	{"xabcd", "abcd", 1},
	{"xyabcd"[:5], "abcd", -1},
	{"xbcqq", "abcqq", -1},
	{"abcqq", "abcqq", 0},
	{"xabcqq", "abcqq", 1},
	{"xyabcqq"[:6], "abcqq", -1},
	{"xabxcqq", "abcqq", -1},
	{"xabcqxq", "abcqq", -1},
	{"", "01234567", -1},
	{"32145678", "01234567", -1},
	{"01234567", "01234567", 0},
	{"x01234567", "01234567", 1},
	{"x0123456x01234567", "01234567", 9},
	{"xx01234567"[:9], "01234567", -1},
	{"", "0123456789", -1},
	{"3214567844", "0123456789", -1},
	{"0123456789", "0123456789", 0},
	{"x0123456789", "0123456789", 1},
	{"x012345678x0123456789", "0123456789", 11},
	{"xyz0123456789"[:12], "0123456789", -1},
	{"x01234567x89", "0123456789", -1},
	{"", "0123456789012345", -1},
	{"3214567889012345", "0123456789012345", -1},
	{"0123456789012345", "0123456789012345", 0},
	{"x0123456789012345", "0123456789012345", 1},
	{"x012345678901234x0123456789012345", "0123456789012345", 17},
	{"", "01234567890123456789", -1},
	{"32145678890123456789", "01234567890123456789", -1},
	{"01234567890123456789", "01234567890123456789", 0},
	{"x01234567890123456789", "01234567890123456789", 1},
	{"x0123456789012345678x01234567890123456789", "01234567890123456789", 21},
	{"xyz01234567890123456789"[:22], "01234567890123456789", -1},
	{"", "0123456789012345678901234567890", -1},
	{"321456788901234567890123456789012345678911", "0123456789012345678901234567890", -1},
	{"0123456789012345678901234567890", "0123456789012345678901234567890", 0},
	{"x0123456789012345678901234567890", "0123456789012345678901234567890", 1},
	{"x012345678901234567890123456789x0123456789012345678901234567890", "0123456789012345678901234567890", 32},
	{"xyz0123456789012345678901234567890"[:33], "0123456789012345678901234567890", -1},
	{"", "01234567890123456789012345678901", -1},
	{"32145678890123456789012345678901234567890211", "01234567890123456789012345678901", -1},
	{"01234567890123456789012345678901", "01234567890123456789012345678901", 0},
	{"x01234567890123456789012345678901", "01234567890123456789012345678901", 1},
	{"x0123456789012345678901234567890x01234567890123456789012345678901", "01234567890123456789012345678901", 33},
	{"xyz01234567890123456789012345678901"[:34], "01234567890123456789012345678901", -1},
	{"xxxxxx012345678901234567890123456789012345678901234567890123456789012", "012345678901234567890123456789012345678901234567890123456789012", 6},
	{"", "0123456789012345678901234567890123456789", -1},
	{"xx012345678901234567890123456789012345678901234567890123456789012", "0123456789012345678901234567890123456789", 2},
	{"xx012345678901234567890123456789012345678901234567890123456789012"[:41], "0123456789012345678901234567890123456789", -1},
	{"xx012345678901234567890123456789012345678901234567890123456789012", "0123456789012345678901234567890123456xxx", -1},
	{"xx0123456789012345678901234567890123456789012345678901234567890120123456789012345678901234567890123456xxx", "0123456789012345678901234567890123456xxx", 65},

	// Invalid UTF8
	{"abc" + string(rune(utf8.RuneError)) + "123", string(rune(utf8.RuneError)), 3},
	{"abc", string(rune(utf8.RuneError)), -1},
	{"abc", string(rune(utf8.MaxRune)), -1},
	{"abc\xff123", "\xff", 3},
	{"abc\xed\xa0\x80", "\xa0\x80", 4},

	// Repeated false starts
	{"oxoxoxoxoxoxoxoxoxoxoxoy", "oy", 22},
	{"oxoxoxoxoxoxoxoxoxoxoxox", "oy", -1},
	{strings.Repeat("ox", 64) + "yox", "oα" + strings.Repeat("ox", 32/len("ox")), -1},
	{strings.Repeat("ox", 64) + "oα" + strings.Repeat("ox", 32/2), "oα" + strings.Repeat("ox", 32/2), 128},

	// Sep longer (in bytes) than s
	{"aa", "aaa", -1},
	{"aa", "aaaa", -1},
	{"aa", "aaaaa", -1},

	// Unicode strings
	{"oxoxoxoxoxoxoxoxoxoxoxoyoα", "oα", 24},
	{"oxoxoxoxoxoxoxoxoxoxoxα", "α", 22},
	{"xx0123456789012345678901234567890123456789012345678901234567890120123456789012345678901234567890123456xxx☻", "0123456789012345678901234567890123456xxx☻", 65},
	{"abc☻", "abc☻", 0},
	{"abc☻", "ABC☻", -1},
	{"123abc☻", "abc☻", 3},
	{"αβδαβδαβγ", "αβγ", len("αβδαβδ")},
}

// kmpIndexTests exercise the failure table: partial matches that must fall
// back to a shorter prefix instead of restarting.
var kmpIndexTests = []indexTest{
	{"ababcabcabababd", "ababd", 10},
	{"aaa", "aa", 0},
	{"aaaa", "ab", -1},
	{"", "abc", -1},
	{"aabaaabaaaab", "aaab", 3},
	{"aabaabaaab", "aabaaab", 3},
	{"aabaabaab", "aabaaab", -1},
	{"aabaabaabaaab", "aabaaab", 6},
	{"abababababac", "ababac", 6},
	{"abcabcabcabd", "abcabd", 6},
	{"abcabdabcabcabd", "abcabcabd", 6},
	{"aaaaaaaaaaaaaaaaaaab", "aaab", 16},
	{strings.Repeat("a", 1024), "aaab", -1},
	{strings.Repeat("a", 1024) + "b", strings.Repeat("a", 512) + "b", 512},
	{strings.Repeat("ab", 512) + "c", "ababc", 1020},
	{strings.Repeat("abaab", 32) + "abaabb", "abaabb", 160},
	{"mississippi", "issip", 4},
	{"mississippi", "issipi", -1},
	{"mississippi", "ssi", 2},
	{"mississippi", "pi", 9},
	{"xxxxxxxxxxxxa", "xxa", 10},
	{"banananobano", "nano", 4},
	{"ABABDABACDABABCABAB", "ABABCABAB", 10},
}

// Execute f on each test case. funcName should be the name of f; it's used
// in failure reports.
func runIndexTests(t *testing.T, f IndexFunc, funcName string, testCases []indexTest) {
	t.Helper()
	fails := 0
	for _, test := range testCases {
		actual := f(test.s, test.sep)
		if actual != test.out {
			fails++
			t.Errorf("%s\n"+
				"S:    %q\n"+
				"Sep:  %q\n"+
				"Got:  %d\n"+
				"Want: %d\n"+
				"\n"+
				"S:    %s\n"+
				"Sep:  %s\n"+
				"\n",
				funcName,
				test.s, test.sep, actual, test.out,
				strconv.QuoteToASCII(test.s),
				strconv.QuoteToASCII(test.sep),
			)
		}
	}
	if t.Failed() && testing.Verbose() {
		t.Logf("%s: failed %d out of %d tests", funcName, fails, len(testCases))
	}
}

func Index(t *testing.T, fn IndexFunc) {
	runIndexTests(t, fn, "Index", indexTests)
	runIndexTests(t, fn, "Index", kmpIndexTests)
}

// IndexLong runs the index tests with the text repeated so that matches are
// found far from the start of the text.
func IndexLong(t *testing.T, fn IndexFunc) {
	const pad = "ababaabaab0123"
	for _, test := range [][]indexTest{indexTests, kmpIndexTests} {
		tests := make([]indexTest, 0, len(test))
		for _, tt := range test {
			s := strings.Repeat(pad, 32) + tt.s
			tests = append(tests, indexTest{
				s:   s,
				sep: tt.sep,
				out: strings.Index(s, tt.sep),
			})
		}
		runIndexTests(t, fn, "IndexLong", tests)
	}
}

func Contains(t *testing.T, fn ContainsFunc) {
	for _, test := range [][]indexTest{indexTests, kmpIndexTests} {
		for _, tt := range test {
			want := tt.out >= 0
			if got := fn(tt.s, tt.sep); got != want {
				t.Errorf("Contains(%q, %q) = %t; want: %t", tt.s, tt.sep, got, want)
			}
		}
	}
}

type tableTest struct {
	pattern string
	out     []int
}

var tableTests = []tableTest{
	{"", []int{}},
	{"a", []int{0}},
	{"aa", []int{0, 1}},
	{"ab", []int{0, 0}},
	{"aaaa", []int{0, 1, 2, 3}},
	{"aaab", []int{0, 1, 2, 0}},
	{"abab", []int{0, 0, 1, 2}},
	{"ababd", []int{0, 0, 1, 2, 0}},
	{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
	{"aabaaba", []int{0, 1, 0, 1, 2, 3, 4}},
	{"abcdabd", []int{0, 0, 0, 0, 1, 2, 0}},
	{"abacabab", []int{0, 0, 1, 0, 1, 2, 3, 2}},
	{"ABABCABAB", []int{0, 0, 1, 2, 0, 1, 2, 3, 4}},
	{"aAaA", []int{0, 0, 1, 2}},
	{"participate in parachute", []int{
		0, 0, 0, 0, 0, 0, 0, 1, 2, 0, 0, 0, 0, 0, 0, 1, 2, 3, 0, 0, 0, 0, 0, 0,
	}},
	{"αα", []int{0, 0, 1, 2}},
}

func Table(t *testing.T, fn TableFunc) {
	for _, test := range tableTests {
		got := fn(test.pattern)
		if !equalInts(got, test.out) {
			t.Errorf("Table(%q) = %v; want: %v", test.pattern, got, test.out)
		}
	}
	for _, test := range [][]indexTest{indexTests, kmpIndexTests} {
		for _, tt := range test {
			for _, p := range []string{tt.s, tt.sep} {
				if err := CheckTable([]byte(p), fn(p)); err != nil {
					t.Errorf("Table(%q): %v", p, err)
				}
			}
		}
	}
}

// Helper functions
////////////////////////////////////////////////////////////////////////////////

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IndexReference is a slow, but accurate version of Index.
func IndexReference[T comparable](s, sep []T) int {
	for i := 0; i+len(sep) <= len(s); i++ {
		if hasPrefix(s[i:], sep) {
			return i
		}
	}
	return -1
}

func hasPrefix[T comparable](s, prefix []T) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// TableReference computes the failure table of pattern by trying every
// prefix length at every position.
func TableReference[T comparable](pattern []T) []int {
	next := make([]int, len(pattern))
	for i := range pattern {
		seg := pattern[:i+1]
		for k := i; k > 0; k-- {
			if hasPrefix(seg[len(seg)-k:], pattern[:k]) {
				next[i] = k
				break
			}
		}
	}
	return next
}

// CheckTable returns an error if next is not the failure table of pattern.
func CheckTable[T comparable](pattern []T, next []int) error {
	if len(next) != len(pattern) {
		return fmt.Errorf("len(table) = %d; want: %d", len(next), len(pattern))
	}
	if len(next) > 0 && next[0] != 0 {
		return fmt.Errorf("table[0] = %d; want: 0", next[0])
	}
	for i, k := range next {
		if k < 0 || k > i {
			return fmt.Errorf("table[%d] = %d; want: 0 <= n <= %d", i, k, i)
		}
		if !hasPrefix(pattern[i-k+1:i+1], pattern[:k]) {
			return fmt.Errorf("table[%d] = %d: suffix %v is not a prefix of the pattern",
				i, k, pattern[i-k+1:i+1])
		}
	}
	want := TableReference(pattern)
	for i := range next {
		if next[i] != want[i] {
			return fmt.Errorf("table[%d] = %d; want: %d", i, next[i], want[i])
		}
	}
	return nil
}
