// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package benchtest is used for benchmarking kmp against the Go stdlib's
// strings and bytes packages.
//
// With few exceptions the benchmarks here were taken directly from Go's
// strings and bytes package.
//
// The stdlib uses Rabin-Karp and SIMD assisted brute force search so these
// benchmarks are mostly a measure of the overhead of KMP on typical input,
// except for the Torture and Periodic benchmarks where KMP should win.
package benchtest
