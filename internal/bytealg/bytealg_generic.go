// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

//go:build !amd64 && !arm64 && !s390x && !wasm && !ppc64 && !ppc64le
// +build !amd64,!arm64,!s390x,!wasm,!ppc64,!ppc64le

// The standard library's IndexByte is a simple loop on these arch's so
// there is nothing to gain by calling it from the KMP scan.

package bytealg

// UseIndexByte reports if IndexByte should be used to skip bytes that cannot
// start a match.
var UseIndexByte = false

// Cutover reports the number of IndexByte calls we should tolerate before
// falling back to a plain scan.
func Cutover(n int) int {
	return 4 + n>>4
}
