/*
Package folds offers structures for associative range queries over sequences.

# Folds

A fold combines a run of elements with a binary operator, left to right, starting
from the operator's identity. Many applications need folds over arbitrary
sub-ranges of a sequence: the maximum of a window, the sum of a slice, the
concatenation of a span of fragments. Computing each such fold by a linear scan is
simple, but quickly becomes the bottleneck for long sequences and many queries.

Range-query structures trade build time and space for faster folds. Which
structure is applicable depends on the algebra of the operator:

	structure                    build      prefix     range      update     needs
	---------------------------  ---------  ---------  ---------  ---------  -------------------------
	NaiveVec                     O(n)       O(n)       O(n)       O(1)       Monoid
	AccumulativeArray            O(n)       O(1)       O(1)       –          Monoid (range: Abelian group)
	FenwickTree                  O(n)       O(log n)   O(log n)   O(log n)   Monoid (update: commutative,
	                                                                         range and assign: Abelian group)
	SegmentTree                  O(n)       O(log n)   O(log n)   O(log n)   Monoid
	SparseTable                  O(n log n) O(1)       O(1)       –          Semilattice
	SquareRootDecomposition      O(n)       O(√n)      O(√n)      O(√n)      Monoid

Package algebra defines the capabilities as Go interfaces. Capabilities are
compile-time contracts: a structure states the capabilities it needs as type
constraints, and instantiating it with an operator lacking one of them will not
compile. The laws behind the capabilities (associativity, identity, inverses,
commutativity, idempotence) are not checked at run time; an operator claiming a law
it does not satisfy will produce wrong results.

Package ranged holds the structures. All of them satisfy some of the query
interfaces of this package: RangeOp, LeftFixedOp and PointAssign.

Precondition violations, i.e. indices beyond the length of a structure or
ranges with start > end, are programming errors. They panic with an error value
wrapping ErrIndexOutOfBounds or ErrIllegalArguments.

None of the structures is safe for concurrent use, not even for concurrent reads.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package folds

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FoldError is an error type for the folds module
type FoldError string

func (e FoldError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an index or a range end is
// beyond the number of elements of a structure.
const ErrIndexOutOfBounds = FoldError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. for ranges with start > end.
const ErrIllegalArguments = FoldError("illegal arguments")

// ErrInvalidConfig is flagged for invalid structure configurations.
const ErrInvalidConfig = FoldError("invalid configuration")
