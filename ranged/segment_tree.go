package ranged

import (
	"fmt"
	"slices"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/folds/algebra"
)

// SegmentTree is a complete binary tree flattened into a slice.
//
// The root is at index 1, the children of node i are at 2i and 2i+1. Leaves
// occupy [size, 2·size), size being the smallest power of two >= n. Leaves
// beyond n hold the identity.
//
// Build: O(n), RangeOp, RightOp and SetAt: O(log n).
// Partial folds are never inverted nor reordered, so any Monoid will do.
type SegmentTree[E any, M algebra.Monoid[E]] struct {
	op   M
	n    int
	data []E // len(data) = 2·size, data[0] is unused
}

// BuildSegmentTree creates a segment tree over a.
func BuildSegmentTree[E any, M algebra.Monoid[E]](op M, a []E) *SegmentTree[E, M] {
	size := nextPowerOfTwo(len(a))
	data := make([]E, 2*size)
	for i := range data {
		data[i] = op.Identity()
	}
	copy(data[size:], a)
	for i := size - 1; i > 0; i-- {
		data[i] = op.Op(data[2*i], data[2*i+1])
	}
	tracer().Debugf("segment tree: built over %d elements with %d leaves", len(a), size)
	return &SegmentTree[E, M]{op: op, n: len(a), data: data}
}

func (st *SegmentTree[E, M]) leaves() int {
	return len(st.data) / 2
}

// Len returns the number of elements.
func (st *SegmentTree[E, M]) Len() int {
	return st.n
}

// At returns the element at index.
func (st *SegmentTree[E, M]) At(index int) E {
	checkIndex(index, st.n)
	return st.data[st.leaves()+index]
}

// Fold returns the fold of all elements, held by the root.
func (st *SegmentTree[E, M]) Fold() E {
	return st.data[1]
}

// SetAt overwrites a leaf and recomputes its ancestors.
func (st *SegmentTree[E, M]) SetAt(elem E, index int) {
	checkIndex(index, st.n)
	i := index + st.leaves()
	st.data[i] = elem
	for i > 1 {
		i /= 2
		st.data[i] = st.op.Op(st.data[2*i], st.data[2*i+1])
	}
}

// RangeOp folds [l, r).
//
// Both boundaries climb towards the root. Nodes hanging off the left boundary
// are appended to a left accumulator, nodes hanging off the right boundary are
// prepended to a right accumulator.
func (st *SegmentTree[E, M]) RangeOp(l, r int) E {
	checkRange(l, r, st.n)
	left, right := st.op.Identity(), st.op.Identity()
	l += st.leaves()
	r += st.leaves()
	for l < r {
		if l%2 == 1 {
			left = st.op.Op(left, st.data[l])
			l++
		}
		if r%2 == 1 {
			r--
			right = st.op.Op(st.data[r], right)
		}
		l /= 2
		r /= 2
	}
	return st.op.Op(left, right)
}

// RightOp folds [0, r). Only the right boundary has to climb; every left
// sibling it passes is prepended to the result.
func (st *SegmentTree[E, M]) RightOp(r int) E {
	checkPrefix(r, st.n)
	if r == st.leaves() { // all leaves, n is a power of two
		return st.data[1]
	}
	res := st.op.Identity()
	for r += st.leaves(); r > 1; r /= 2 {
		if r%2 == 1 {
			res = st.op.Op(st.data[r-1], res)
		}
	}
	return res
}

// Clone returns a deep copy of st.
func (st *SegmentTree[E, M]) Clone() *SegmentTree[E, M] {
	return &SegmentTree[E, M]{op: st.op, n: st.n, data: slices.Clone(st.data)}
}

// Layout renders the tree level by level, root first.
func (st *SegmentTree[E, M]) Layout(format func(E) string) folds.Layout {
	l := folds.Layout{Title: fmt.Sprintf("SegmentTree (n=%d, leaves=%d)", st.n, st.leaves())}
	for lo, level := 1, 0; lo < len(st.data); lo, level = lo*2, level+1 {
		kind := folds.AggregateRow
		hi := 2 * lo
		if lo == st.leaves() {
			kind = folds.ElementRow
			hi = lo + st.n
		}
		folds.AddRow(&l, fmt.Sprintf("level %d", level), kind, st.data[lo:hi], format)
		if lo == st.leaves() && hi < len(st.data) {
			folds.AddRow(&l, "padding", folds.UnusedRow, st.data[hi:], format)
		}
	}
	return l
}

var _ folds.DynamicRangeQuery[int] = (*SegmentTree[int, algebra.FuncMonoid[int]])(nil)
