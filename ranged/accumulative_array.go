package ranged

import (
	"fmt"
	"slices"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/folds/algebra"
)

// AccumulativeArray stores running prefix folds of a sequence.
//
// Build: O(n), RightOp: O(1). The array is immutable after construction.
// For Abelian groups, use InvertibleAccumulativeArray to get range folds.
type AccumulativeArray[E any, M algebra.Monoid[E]] struct {
	op   M
	data []E // data[i] = a[0] ⊕ … ⊕ a[i-1], len(data) = n+1
}

// BuildAccumulativeArray creates the prefix folds of a.
func BuildAccumulativeArray[E any, M algebra.Monoid[E]](op M, a []E) *AccumulativeArray[E, M] {
	data := make([]E, len(a)+1)
	data[0] = op.Identity()
	for i, x := range a {
		data[i+1] = op.Op(data[i], x)
	}
	return &AccumulativeArray[E, M]{op: op, data: data}
}

// Len returns the number of elements.
func (acc *AccumulativeArray[E, M]) Len() int {
	return len(acc.data) - 1
}

// RightOp folds [0, r).
func (acc *AccumulativeArray[E, M]) RightOp(r int) E {
	checkPrefix(r, acc.Len())
	return acc.data[r]
}

// Clone returns a deep copy of acc.
func (acc *AccumulativeArray[E, M]) Clone() *AccumulativeArray[E, M] {
	return &AccumulativeArray[E, M]{op: acc.op, data: slices.Clone(acc.data)}
}

// Layout renders the prefix folds for debugging.
func (acc *AccumulativeArray[E, M]) Layout(format func(E) string) folds.Layout {
	l := folds.Layout{Title: fmt.Sprintf("AccumulativeArray (n=%d)", acc.Len())}
	folds.AddRow(&l, "prefix", folds.AggregateRow, acc.data, format)
	return l
}

// InvertibleAccumulativeArray is an AccumulativeArray over an Abelian group.
// A range fold is the difference of two prefix folds.
//
// Build: O(n), RightOp and RangeOp: O(1).
type InvertibleAccumulativeArray[E any, G algebra.AbelianGroup[E]] struct {
	AccumulativeArray[E, G]
}

// BuildInvertibleAccumulativeArray creates the prefix folds of a.
func BuildInvertibleAccumulativeArray[E any, G algebra.AbelianGroup[E]](op G, a []E) *InvertibleAccumulativeArray[E, G] {
	return &InvertibleAccumulativeArray[E, G]{
		AccumulativeArray: *BuildAccumulativeArray[E](op, a),
	}
}

// RangeOp folds [l, r) as data[r] ⊕ inv(data[l]).
func (acc *InvertibleAccumulativeArray[E, G]) RangeOp(l, r int) E {
	checkRange(l, r, acc.Len())
	return acc.op.Op(acc.data[r], acc.op.Inverse(acc.data[l]))
}

// Clone returns a deep copy of acc.
func (acc *InvertibleAccumulativeArray[E, G]) Clone() *InvertibleAccumulativeArray[E, G] {
	return &InvertibleAccumulativeArray[E, G]{AccumulativeArray: *acc.AccumulativeArray.Clone()}
}

var _ folds.PrefixQuery[int] = (*AccumulativeArray[int, algebra.FuncMonoid[int]])(nil)
