// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package kmp

import "github.com/charlievieth/kmp/internal/bytealg"

// A Matcher is a pattern with a precomputed failure table. Use a Matcher to
// search many texts for the same pattern without rebuilding the table.
//
// A Matcher is immutable and safe for concurrent use by multiple goroutines.
type Matcher[T comparable] struct {
	pattern []T
	next    []int
}

// Compile returns a Matcher for pattern. The pattern is copied so later
// modifications to it do not affect the Matcher.
func Compile[T comparable](pattern []T) *Matcher[T] {
	p := make([]T, len(pattern))
	copy(p, pattern)
	return &Matcher[T]{pattern: p, next: Table(p)}
}

// Index returns the index of the first instance of the pattern in text, or
// -1 if it is not present.
func (m *Matcher[T]) Index(text []T) int {
	if len(m.pattern) == 0 {
		return 0
	}
	return index(text, m.pattern, m.next)
}

// Contains reports whether the pattern is within text.
func (m *Matcher[T]) Contains(text []T) bool {
	return m.Index(text) >= 0
}

// Len returns the length of the pattern.
func (m *Matcher[T]) Len() int { return len(m.pattern) }

// Table returns a copy of the failure table of the pattern.
func (m *Matcher[T]) Table() []int { return copyTable(m.next) }

// A StringMatcher is a Matcher for byte strings. It finds matches in both
// strings and byte slices.
//
// A StringMatcher is immutable and safe for concurrent use by multiple
// goroutines.
type StringMatcher struct {
	pattern string
	next    []int
}

// CompileString returns a StringMatcher for pattern.
func CompileString(pattern string) *StringMatcher {
	return &StringMatcher{pattern: pattern, next: TableString(pattern)}
}

// CompileBytes returns a StringMatcher for pattern. The pattern is copied.
func CompileBytes(pattern []byte) *StringMatcher {
	return CompileString(string(pattern))
}

// Index returns the byte index of the first instance of the pattern in s, or
// -1 if it is not present.
func (m *StringMatcher) Index(s string) int {
	if len(m.pattern) == 0 {
		return 0
	}
	return indexString(s, m.pattern, m.next, bytealg.UseIndexByte)
}

// IndexBytes returns the index of the first instance of the pattern in b, or
// -1 if it is not present.
func (m *StringMatcher) IndexBytes(b []byte) int {
	return m.Index(unsafeString(b))
}

// Contains reports whether the pattern is within s.
func (m *StringMatcher) Contains(s string) bool {
	return m.Index(s) >= 0
}

// ContainsBytes reports whether the pattern is within b.
func (m *StringMatcher) ContainsBytes(b []byte) bool {
	return m.IndexBytes(b) >= 0
}

// Len returns the length of the pattern in bytes.
func (m *StringMatcher) Len() int { return len(m.pattern) }

// Table returns a copy of the failure table of the pattern.
func (m *StringMatcher) Table() []int { return copyTable(m.next) }

// String returns the pattern.
func (m *StringMatcher) String() string { return m.pattern }

func copyTable(next []int) []int {
	t := make([]int, len(next))
	copy(t, next)
	return t
}
