// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytealg

import "golang.org/x/sys/cpu"

// UseIndexByte reports if IndexByte should be used to skip bytes that cannot
// start a match. The SSE2 version of IndexByte is not much faster than a
// simple loop for the short skips typical of KMP so require AVX2.
var UseIndexByte = cpu.X86.HasAVX2

// Cutover reports the number of IndexByte calls we should tolerate before
// falling back to a plain scan.
// n is the number of bytes processed so far.
// See the bytes.Index implementation for details.
func Cutover(n int) int {
	// 1 error per 8 characters, plus a few slop to start.
	return (n + 16) / 8
}
