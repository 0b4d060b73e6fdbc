package ranged

import (
	"fmt"
	"slices"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/folds/algebra"
)

// SparseTable is a doubling table: doubling[i][j] holds the fold of the 2^j
// elements starting at i (clipped at the end of the sequence).
//
// A range [l, r) is covered by two windows of length 2^t, t = ⌊log2(r-l)⌋,
// one starting at l and one ending at r. The windows may overlap, which is
// harmless for idempotent operators; their order does not matter for
// commutative ones. Hence a Semilattice is required.
//
// Build: O(n log n), RangeOp: O(1). There are no updates; rebuild instead.
type SparseTable[E any, M algebra.Semilattice[E]] struct {
	op       M
	doubling [][]E
}

// BuildSparseTable creates the doubling table over a.
func BuildSparseTable[E any, M algebra.Semilattice[E]](op M, a []E) *SparseTable[E, M] {
	n := len(a)
	st := &SparseTable[E, M]{op: op, doubling: make([][]E, n)}
	if n == 0 {
		return st
	}
	t := log2(n)
	for i := range n {
		st.doubling[i] = make([]E, t+1)
		st.doubling[i][0] = a[i]
	}
	for j := 0; j < t; j++ {
		for i := range n {
			k := min(n-1, i+1<<j)
			st.doubling[i][j+1] = op.Op(st.doubling[i][j], st.doubling[k][j])
		}
	}
	tracer().Debugf("sparse table: built over %d elements with %d levels", n, t+1)
	return st
}

// Len returns the number of elements.
func (st *SparseTable[E, M]) Len() int {
	return len(st.doubling)
}

// RangeOp folds [l, r) from two possibly overlapping windows.
func (st *SparseTable[E, M]) RangeOp(l, r int) E {
	checkRange(l, r, st.Len())
	if l == r {
		return st.op.Identity()
	}
	t := log2(r - l)
	return st.op.Op(st.doubling[l][t], st.doubling[r-1<<t][t])
}

// RightOp folds [0, r).
func (st *SparseTable[E, M]) RightOp(r int) E {
	checkPrefix(r, st.Len())
	return st.RangeOp(0, r)
}

// Clone returns a deep copy of st.
func (st *SparseTable[E, M]) Clone() *SparseTable[E, M] {
	doubling := make([][]E, len(st.doubling))
	for i, row := range st.doubling {
		doubling[i] = slices.Clone(row)
	}
	return &SparseTable[E, M]{op: st.op, doubling: doubling}
}

// Layout renders the table by window length.
func (st *SparseTable[E, M]) Layout(format func(E) string) folds.Layout {
	l := folds.Layout{Title: fmt.Sprintf("SparseTable (n=%d)", st.Len())}
	if st.Len() == 0 {
		return l
	}
	column := make([]E, st.Len())
	for j := range st.doubling[0] {
		for i := range column {
			column[i] = st.doubling[i][j]
		}
		kind := folds.AggregateRow
		if j == 0 {
			kind = folds.ElementRow
		}
		folds.AddRow(&l, fmt.Sprintf("2^%d", j), kind, column, format)
	}
	return l
}
