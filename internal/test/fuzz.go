// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/rangetable"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Small alphabets produce highly repetitive text which is where the failure
// table actually matters.
var byteAlphabets = [...]string{
	"a",
	"ab",
	"ab",
	"abc",
	"abc",
	"abcd",
	"01",
	"\x00\xff",
}

// Runes that are multiple bytes when encoded as UTF-8.
var multibyteRunes = generateRuneTable(
	unicode.Greek,
	unicode.Cyrillic,
	unicode.Hiragana,
)

func generateRuneTable(tables ...*unicode.RangeTable) []rune {
	var rs []rune
	rangetable.Visit(rangetable.Merge(tables...), func(r rune) {
		if r >= 0x80 && unicode.IsPrint(r) {
			rs = append(rs, r)
		}
	})
	slices.Sort(rs)
	return slices.Compact(rs)
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func intn(rr *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rr.Intn(n)
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if runtime.GOOS == "darwin" && runtime.GOARCH == "arm64" {
		// Avoid using all the cores.
		// NB(charlie): this is really only for my personal dev setup.
		if numCPU >= 8 {
			numCPU -= 2
		}
	}
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

func runRandomTest(t *testing.T, fn func(t *fuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the total number of test iterations to run.
	count := 2_500
	if testing.Short() {
		count /= 2
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		d := 4_000_000
		count = d / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			tt := newFuzzTest(t, seed)
			for i := 0; i < count; i++ {
				fn(tt)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

type fuzzTest struct {
	testing.TB
	rr *rand.Rand
	// Scratch space for constructing test arguments
	haystack []byte
	needle   []byte
}

func newFuzzTest(t *testing.T, seed int64) *fuzzTest {
	if seed < 0 {
		seed = cryptoRandInt(t)
	}
	return &fuzzTest{
		TB:       &testWrapper{T: t},
		rr:       rand.New(rand.NewSource(seed)),
		haystack: make([]byte, 0, 128),
		needle:   make([]byte, 0, 32),
	}
}

func (t *fuzzTest) alphabet() string {
	if t.rr.Intn(8) == 0 {
		// Any byte
		return ""
	}
	return byteAlphabets[t.rr.Intn(len(byteAlphabets))]
}

func (t *fuzzTest) randBytes(b []byte, alphabet string, n int) []byte {
	b = b[:0]
	for i := 0; i < n; i++ {
		if alphabet == "" {
			b = append(b, byte(t.rr.Intn(256)))
		} else {
			b = append(b, alphabet[t.rr.Intn(len(alphabet))])
		}
	}
	return b
}

// IndexArgs returns random arguments for Index and the expected result.
func (t *fuzzTest) IndexArgs() (_s, _sep string, out int) {
	const maxLength = 128

	alphabet := t.alphabet()
	var s []byte
	switch f := t.rr.Float64(); {
	case f <= 0.25:
		// Periodic text: lots of long partial matches.
		unit := t.randBytes(nil, alphabet, t.rr.Intn(4)+1)
		n := t.rr.Intn(maxLength) + 1
		s = t.haystack[:0]
		for len(s) < n {
			s = append(s, unit...)
		}
		if t.rr.Intn(2) == 0 {
			s[t.rr.Intn(len(s))] = alphabet0(alphabet)
		}
	default:
		s = t.randBytes(t.haystack, alphabet, intn(t.rr, maxLength))
	}
	t.haystack = s[:0]

	var sep []byte
	switch f := t.rr.Float64(); {
	case f <= 0.6 && len(s) > 0:
		// Substring of s, possibly modified.
		n := intn(t.rr, 40) + 1
		if n > len(s) {
			n = len(s)
		}
		o := intn(t.rr, len(s)-n+1)
		sep = append(t.needle[:0], s[o:o+n]...)
		if t.rr.Intn(3) == 0 {
			sep[intn(t.rr, len(sep))] = alphabet0(alphabet)
		}
	case f <= 0.65:
		sep = t.needle[:0]
	default:
		sep = t.randBytes(t.needle, alphabet, t.rr.Intn(16)+1)
	}
	t.needle = sep[:0]

	return string(s), string(sep), IndexReference(s, sep)
}

func alphabet0(alphabet string) byte {
	if alphabet == "" {
		return 0
	}
	return alphabet[0]
}

// RuneIndexArgs returns random rune arguments for Index and the expected
// result.
func (t *fuzzTest) RuneIndexArgs() (s, sep []rune, out int) {
	alphabet := make([]rune, t.rr.Intn(3)+1)
	for i := range alphabet {
		alphabet[i] = multibyteRunes[t.rr.Intn(len(multibyteRunes))]
	}
	s = make([]rune, t.rr.Intn(96))
	for i := range s {
		s[i] = alphabet[t.rr.Intn(len(alphabet))]
	}
	if len(s) > 0 && t.rr.Intn(2) == 0 {
		o := t.rr.Intn(len(s))
		n := intn(t.rr, len(s)-o) + 1
		sep = append([]rune(nil), s[o:o+n]...)
	} else {
		sep = make([]rune, t.rr.Intn(8))
		for i := range sep {
			sep[i] = alphabet[t.rr.Intn(len(alphabet))]
		}
	}
	return s, sep, IndexReference(s, sep)
}

func indexError(t testing.TB, name, s, sep string, got, want int) {
	t.Errorf("%s\n"+
		"S:    %q\n"+
		"Sep:  %q\n"+
		"Got:  %d\n"+
		"Want: %d\n"+
		"\n"+
		"ASCII:\n"+
		"S:    %+q\n"+
		"Sep:  %+q\n"+
		"\n",
		name, s, sep, got, want, s, sep)
}

func IndexFuzz(t *testing.T, fn IndexFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s, sep, out := t.IndexArgs()
		if got := fn(s, sep); got != out {
			// Make sure that our calculated index is correct using the
			// standard library.
			if actual := strings.Index(s, sep); actual != out {
				t.Errorf("Invalid generated test: want: %d actual: %d\n"+
					"S:   %q\n"+
					"Sep: %q\n",
					out, actual, s, sep)
				return
			}
			indexError(t, "Index", s, sep, got, out)
		}
	})
}

// IndexArgsFuzz calls fn with random Index arguments and the expected result.
func IndexArgsFuzz(t *testing.T, fn func(t testing.TB, s, sep string, out int)) {
	runRandomTest(t, func(t *fuzzTest) {
		s, sep, out := t.IndexArgs()
		fn(t, s, sep, out)
	})
}

func RuneIndexFuzz(t *testing.T, fn func(s, sep []rune) int) {
	runRandomTest(t, func(t *fuzzTest) {
		s, sep, out := t.RuneIndexArgs()
		if got := fn(s, sep); got != out {
			indexError(t, "RuneIndex", string(s), string(sep), got, out)
		}
	})
}

func TableFuzz(t *testing.T, fn TableFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		_, sep, _ := t.IndexArgs()
		got := fn(sep)
		if want := TableReference([]byte(sep)); !slices.Equal(got, want) {
			t.Errorf("Table(%q) = %v; want: %v", sep, got, want)
		}
	})
}

var _ testing.TB = (*testWrapper)(nil)

// A testWrapper wraps a testing.T and will immediately fail the test
// if more that N errors occur.
type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		// We run tests in parallel so only call Fatal on the
		// test that crossed the threshold.
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow() // Abort subsequent tests
		}
		panic(fmt.Sprintf("aborting test: too many errors: %d", n)) // unreachable
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fail() {
	c.T.Helper()
	c.T.Fail()
	c.check()
}

func (c *testWrapper) FailNow() {
	c.T.Helper()
	c.T.FailNow()
	c.check()
}

func (c *testWrapper) Fatal(args ...any) {
	c.T.Helper()
	c.T.Fatal(args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}
