// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

//go:build s390x || wasm || ppc64 || ppc64le
// +build s390x wasm ppc64 ppc64le

// NOTE(cev): the arch build tags included here were picked by browsing the
// assembly implementations of indexbyte_{GOARCH}.s and could be wrong.

package bytealg

// UseIndexByte reports if IndexByte should be used to skip bytes that cannot
// start a match.
var UseIndexByte = true

// Cutover reports the number of IndexByte calls we should tolerate before
// falling back to a plain scan.
// n is the number of bytes processed so far.
func Cutover(n int) int {
	return 4 + n>>4
}
