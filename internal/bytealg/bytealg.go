// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg reports how the byte search fast path of package kmp should
// be tuned for the current architecture.
//
// While the KMP scan has not matched any prefix of the pattern it may jump to
// the next occurrence of the first byte of the pattern with IndexByte. That is
// only a win when the standard library's IndexByte examines multiple bytes at
// once (SIMD) and when the first byte of the pattern is not too common, so
// UseIndexByte reports the former and Cutover bounds the latter.
package bytealg
