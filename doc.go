// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package kmp implements the Knuth-Morris-Pratt string search algorithm.
//
// Index and the functions derived from it find the first occurrence of a
// pattern in a text in O(n+m) time using O(m) extra space: on a mismatch the
// failure table of the pattern (see [Table]) determines how much of the
// already matched prefix can be kept, so no element of the text is examined
// again once the search has moved past it.
//
// The generic functions work on slices of any comparable type. IndexString
// and IndexBytes search byte-wise and match the results of [strings.Index]
// and [bytes.Index]. Use [Compile] or [CompileString] to search many texts for
// the same pattern.
//
// All functions are safe for concurrent use.
package kmp
