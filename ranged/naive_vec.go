package ranged

import (
	"fmt"
	"slices"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/folds/algebra"
)

// NaiveVec stores a plain copy of a sequence and folds by linear scan.
//
// Build: O(n), RangeOp and RightOp: O(r-l), SetAt: O(1).
// It is the reference implementation the other structures are verified against.
type NaiveVec[E any, M algebra.Monoid[E]] struct {
	op   M
	data []E
}

// BuildNaiveVec creates a NaiveVec from a copy of a.
func BuildNaiveVec[E any, M algebra.Monoid[E]](op M, a []E) *NaiveVec[E, M] {
	return &NaiveVec[E, M]{
		op:   op,
		data: slices.Clone(a),
	}
}

// Len returns the number of elements.
func (nv *NaiveVec[E, M]) Len() int {
	return len(nv.data)
}

// At returns the element at index.
func (nv *NaiveVec[E, M]) At(index int) E {
	checkIndex(index, len(nv.data))
	return nv.data[index]
}

// RangeOp folds [l, r).
func (nv *NaiveVec[E, M]) RangeOp(l, r int) E {
	checkRange(l, r, len(nv.data))
	return algebra.Fold(nv.op, nv.data[l:r])
}

// RightOp folds [0, r).
func (nv *NaiveVec[E, M]) RightOp(r int) E {
	checkPrefix(r, len(nv.data))
	return nv.RangeOp(0, r)
}

// SetAt overwrites the element at index.
func (nv *NaiveVec[E, M]) SetAt(elem E, index int) {
	checkIndex(index, len(nv.data))
	nv.data[index] = elem
}

// PointOpAssign combines the element at index with rhs: a[index] = a[index] ⊕ rhs.
func (nv *NaiveVec[E, M]) PointOpAssign(index int, rhs E) {
	checkIndex(index, len(nv.data))
	nv.data[index] = nv.op.Op(nv.data[index], rhs)
}

// Clone returns a deep copy of nv.
func (nv *NaiveVec[E, M]) Clone() *NaiveVec[E, M] {
	return &NaiveVec[E, M]{op: nv.op, data: slices.Clone(nv.data)}
}

// Layout renders the elements for debugging.
func (nv *NaiveVec[E, M]) Layout(format func(E) string) folds.Layout {
	l := folds.Layout{Title: fmt.Sprintf("NaiveVec (n=%d)", len(nv.data))}
	folds.AddRow(&l, "a", folds.ElementRow, nv.data, format)
	return l
}

var _ folds.DynamicRangeQuery[int] = (*NaiveVec[int, algebra.FuncMonoid[int]])(nil)
