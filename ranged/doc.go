/*
Package ranged provides range-fold structures over sequences.

Every structure is built once from a slice, which it copies. The operator is a
strategy value from package algebra, stored alongside the data; its capabilities
decide which structures and which operations are available:

  - NaiveVec: linear folds. Serves as a reference for the other structures.
  - AccumulativeArray: prefix folds in O(1). InvertibleAccumulativeArray adds
    range folds in O(1) for Abelian groups.
  - FenwickTree: prefix folds in O(log n). CommutativeFenwickTree adds point
    operations, InvertibleFenwickTree adds range folds and assignment.
  - SegmentTree: range folds and assignment in O(log n) for any Monoid.
  - SparseTable: range folds in O(1) for semilattices, static.
  - SquareRootDecomposition: range folds and assignment in O(√n) for any Monoid.

Indices out of range panic with an error wrapping folds.ErrIndexOutOfBounds,
ranges with l > r with an error wrapping folds.ErrIllegalArguments.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ranged

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folds'
func tracer() tracing.Trace {
	return tracing.Select("folds")
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// checkIndex panics if index is not in [0, n).
func checkIndex(index, n int) {
	if index < 0 || index >= n {
		panic(fmt.Errorf("%w: index %d for length %d", folds.ErrIndexOutOfBounds, index, n))
	}
}

// checkRange panics if not 0 <= l <= r <= n.
func checkRange(l, r, n int) {
	if l > r {
		panic(fmt.Errorf("%w: range [%d, %d) is not monotonic", folds.ErrIllegalArguments, l, r))
	}
	if l < 0 || r > n {
		panic(fmt.Errorf("%w: range [%d, %d) for length %d", folds.ErrIndexOutOfBounds, l, r, n))
	}
}

// checkPrefix panics if not 0 <= r <= n.
func checkPrefix(r, n int) {
	if r < 0 || r > n {
		panic(fmt.Errorf("%w: prefix end %d for length %d", folds.ErrIndexOutOfBounds, r, n))
	}
}

// lowbit isolates the lowest set bit of i.
func lowbit(i int) int {
	return i & -i
}

// nextPowerOfTwo returns the smallest power of two >= n, and 1 for n = 0.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// log2 returns ⌊log2 n⌋ for n > 0.
func log2(n int) int {
	assertThat(n > 0, "log2 of non-positive number")
	return bits.Len(uint(n)) - 1
}
