// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package kmp

import (
	"strings"
	"unsafe"

	"github.com/charlievieth/kmp/internal/bytealg"
)

// Table returns the failure table of pattern: Table(pattern)[i] is the length
// of the longest proper prefix of pattern[:i+1] that is also a suffix of it.
// The returned table has exactly len(pattern) entries and a zero length
// pattern yields an empty table.
func Table[T comparable](pattern []T) []int {
	next := make([]int, len(pattern))
	j := 0
	for i := 1; i < len(pattern); i++ {
		c := pattern[i]
		for {
			if c == pattern[j] {
				j++
				break
			}
			if j == 0 {
				break
			}
			j = next[j-1]
		}
		next[i] = j
	}
	return next
}

// TableString returns the failure table of the bytes of pattern.
func TableString(pattern string) []int {
	next := make([]int, len(pattern))
	j := 0
	for i := 1; i < len(pattern); i++ {
		c := pattern[i]
		for {
			if c == pattern[j] {
				j++
				break
			}
			if j == 0 {
				break
			}
			j = next[j-1]
		}
		next[i] = j
	}
	return next
}

// TableBytes returns the failure table of pattern.
func TableBytes(pattern []byte) []int {
	return TableString(unsafeString(pattern))
}

// TableFunc is like Table but uses eq to compare elements of pattern. The
// function eq must be an equivalence relation.
func TableFunc[T any](pattern []T, eq func(a, b T) bool) []int {
	next := make([]int, len(pattern))
	j := 0
	for i := 1; i < len(pattern); i++ {
		for {
			if eq(pattern[i], pattern[j]) {
				j++
				break
			}
			if j == 0 {
				break
			}
			j = next[j-1]
		}
		next[i] = j
	}
	return next
}

// Index returns the index of the first instance of pattern in text, or -1 if
// pattern is not present in text. An empty pattern matches at index 0.
func Index[T comparable](text, pattern []T) int {
	if len(pattern) == 0 {
		return 0
	}
	return index(text, pattern, Table(pattern))
}

// index scans text for pattern using its failure table next. The pattern
// must not be empty.
func index[T comparable](text, pattern []T, next []int) int {
	m := len(pattern)
	j := 0
	for i, c := range text {
		for {
			if c == pattern[j] {
				j++
				break
			}
			if j == 0 {
				break
			}
			j = next[j-1]
		}
		if j == m {
			return i - m + 1
		}
	}
	return -1
}

// IndexFunc is like Index but uses eq to compare elements of text and
// pattern. The function eq must be an equivalence relation; its first
// argument is always an element of text.
func IndexFunc[T any](text, pattern []T, eq func(a, b T) bool) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}
	next := TableFunc(pattern, eq)
	j := 0
	for i := range text {
		for {
			if eq(text[i], pattern[j]) {
				j++
				break
			}
			if j == 0 {
				break
			}
			j = next[j-1]
		}
		if j == m {
			return i - m + 1
		}
	}
	return -1
}

// IndexString returns the byte index of the first instance of substr in s, or
// -1 if substr is not present in s. It matches the behavior of
// strings.Index.
func IndexString(s, substr string) int {
	if len(substr) == 0 {
		return 0
	}
	return indexString(s, substr, TableString(substr), bytealg.UseIndexByte)
}

// IndexBytes returns the index of the first instance of sep in s, or -1 if
// sep is not present in s. It matches the behavior of bytes.Index.
func IndexBytes(s, sep []byte) int {
	if len(sep) == 0 {
		return 0
	}
	substr := unsafeString(sep)
	return indexString(unsafeString(s), substr, TableString(substr), bytealg.UseIndexByte)
}

// indexString is index specialized for strings. While no prefix of substr
// is matched any byte other than substr[0] can be skipped so, if skip is true,
// IndexByte is used to find the next candidate as long as it doesn't produce
// too many false positives.
func indexString(s, substr string, next []int, skip bool) int {
	m := len(substr)
	c0 := substr[0]
	fails := 0
	j := 0
	for i := 0; i < len(s); i++ {
		if j == 0 && skip {
			o := strings.IndexByte(s[i:], c0)
			if o < 0 {
				return -1
			}
			i += o
			fails++
			if fails > bytealg.Cutover(i) {
				skip = false
			}
		}
		c := s[i]
		for {
			if c == substr[j] {
				j++
				break
			}
			if j == 0 {
				break
			}
			j = next[j-1]
		}
		if j == m {
			return i - m + 1
		}
	}
	return -1
}

// Contains reports whether pattern is within text.
func Contains[T comparable](text, pattern []T) bool {
	return Index(text, pattern) >= 0
}

// ContainsString reports whether substr is within s.
func ContainsString(s, substr string) bool {
	return IndexString(s, substr) >= 0
}

// ContainsBytes reports whether sep is within s.
func ContainsBytes(s, sep []byte) bool {
	return IndexBytes(s, sep) >= 0
}

// unsafeString returns the bytes of b as a string without copying. The
// string is only used for reads and does not outlive the call.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}
