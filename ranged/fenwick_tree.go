package ranged

import (
	"fmt"
	"slices"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/folds/algebra"
)

// FenwickTree is a binary indexed tree.
//
// Slot i (1-based) holds the fold of the range (i - lowbit(i), i], with lowbit(i)
// being the lowest set bit of i. A prefix [0, r) is the fold of at most log n
// slots, found by repeatedly clearing the lowest bit of r.
//
// Build: O(n), RightOp: O(log n).
//
// For point updates the operator has to be commutative, see CommutativeFenwickTree.
// Range folds and assignment need an Abelian group, see InvertibleFenwickTree.
// Without commutativity there is no advantage over an AccumulativeArray.
type FenwickTree[E any, M algebra.Monoid[E]] struct {
	op   M
	data []E // data[0] is unused, len(data) = n+1
}

func emptyFenwickTree[E any, M algebra.Monoid[E]](op M, n int) FenwickTree[E, M] {
	if n < 0 {
		panic(fmt.Errorf("%w: negative size %d", folds.ErrIllegalArguments, n))
	}
	data := make([]E, n+1)
	for i := range data {
		data[i] = op.Identity()
	}
	return FenwickTree[E, M]{op: op, data: data}
}

func buildFenwickTree[E any, M algebra.Monoid[E]](op M, a []E) FenwickTree[E, M] {
	t := emptyFenwickTree[E](op, len(a))
	n := len(a)
	for i, x := range a {
		i++
		// all slots feeding into i are complete by now, as they are < i
		t.data[i] = op.Op(t.data[i], x)
		if j := i + lowbit(i); j <= n {
			t.data[j] = op.Op(t.data[j], t.data[i])
		}
	}
	tracer().Debugf("fenwick tree: built over %d elements", n)
	return t
}

// BuildFenwickTree creates a binary indexed tree over a.
func BuildFenwickTree[E any, M algebra.Monoid[E]](op M, a []E) *FenwickTree[E, M] {
	t := buildFenwickTree[E](op, a)
	return &t
}

// Len returns the number of elements.
func (t *FenwickTree[E, M]) Len() int {
	return len(t.data) - 1
}

// RightOp folds [0, r). Slots are visited right to left and prepended to
// the result, so sequence order is kept for non-commutative operators.
func (t *FenwickTree[E, M]) RightOp(r int) E {
	checkPrefix(r, t.Len())
	res := t.op.Identity()
	for r > 0 {
		res = t.op.Op(t.data[r], res)
		r -= lowbit(r)
	}
	return res
}

// Clone returns a deep copy of t.
func (t *FenwickTree[E, M]) Clone() *FenwickTree[E, M] {
	return &FenwickTree[E, M]{op: t.op, data: slices.Clone(t.data)}
}

// Layout renders the slots and the ranges they cover.
func (t *FenwickTree[E, M]) Layout(format func(E) string) folds.Layout {
	l := folds.Layout{Title: fmt.Sprintf("FenwickTree (n=%d)", t.Len())}
	covers := folds.LayoutRow{Label: "covers", Kind: folds.ElementRow}
	for i := 1; i <= t.Len(); i++ {
		covers.Cells = append(covers.Cells, fmt.Sprintf("[%d,%d)", i-lowbit(i), i))
	}
	l.Rows = append(l.Rows, covers)
	folds.AddRow(&l, "slots", folds.AggregateRow, t.data[1:], format)
	return l
}

// --- Commutative -----------------------------------------------------------

// CommutativeFenwickTree is a FenwickTree over a commutative monoid, which
// enables point operations.
//
// PointOpAssign: O(log n).
type CommutativeFenwickTree[E any, M algebra.CommutativeMonoid[E]] struct {
	FenwickTree[E, M]
}

// NewCommutativeFenwickTree creates a tree of n identity elements.
func NewCommutativeFenwickTree[E any, M algebra.CommutativeMonoid[E]](op M, n int) *CommutativeFenwickTree[E, M] {
	return &CommutativeFenwickTree[E, M]{FenwickTree: emptyFenwickTree[E](op, n)}
}

// BuildCommutativeFenwickTree creates a binary indexed tree over a.
func BuildCommutativeFenwickTree[E any, M algebra.CommutativeMonoid[E]](op M, a []E) *CommutativeFenwickTree[E, M] {
	return &CommutativeFenwickTree[E, M]{FenwickTree: buildFenwickTree[E](op, a)}
}

// PointOpAssign combines the element at index with rhs: a[index] = a[index] ⊕ rhs.
//
// rhs is appended to every slot covering index, i.e. behind elements right of
// index. This is why the operator has to be commutative.
func (t *CommutativeFenwickTree[E, M]) PointOpAssign(index int, rhs E) {
	checkIndex(index, t.Len())
	for i := index + 1; i < len(t.data); i += lowbit(i) {
		t.data[i] = t.op.Op(t.data[i], rhs)
	}
}

// Clone returns a deep copy of t.
func (t *CommutativeFenwickTree[E, M]) Clone() *CommutativeFenwickTree[E, M] {
	return &CommutativeFenwickTree[E, M]{FenwickTree: *t.FenwickTree.Clone()}
}

// --- Invertible ------------------------------------------------------------

// InvertibleFenwickTree is a FenwickTree over an Abelian group, which
// enables range folds and assignment.
//
// RangeOp: O(log n), SetAt: O(log n).
type InvertibleFenwickTree[E any, G algebra.AbelianGroup[E]] struct {
	CommutativeFenwickTree[E, G]
}

// NewInvertibleFenwickTree creates a tree of n identity elements.
func NewInvertibleFenwickTree[E any, G algebra.AbelianGroup[E]](op G, n int) *InvertibleFenwickTree[E, G] {
	return &InvertibleFenwickTree[E, G]{
		CommutativeFenwickTree: CommutativeFenwickTree[E, G]{FenwickTree: emptyFenwickTree[E](op, n)},
	}
}

// BuildInvertibleFenwickTree creates a binary indexed tree over a.
func BuildInvertibleFenwickTree[E any, G algebra.AbelianGroup[E]](op G, a []E) *InvertibleFenwickTree[E, G] {
	return &InvertibleFenwickTree[E, G]{
		CommutativeFenwickTree: CommutativeFenwickTree[E, G]{FenwickTree: buildFenwickTree[E](op, a)},
	}
}

// RangeOp folds [l, r) as RightOp(r) ⊕ inv(RightOp(l)).
func (t *InvertibleFenwickTree[E, G]) RangeOp(l, r int) E {
	checkRange(l, r, t.Len())
	return t.op.Op(t.RightOp(r), t.op.Inverse(t.RightOp(l)))
}

// At returns the element at index.
func (t *InvertibleFenwickTree[E, G]) At(index int) E {
	checkIndex(index, t.Len())
	return t.RangeOp(index, index+1)
}

// SetAt replaces the element at index with elem. The current value is
// cancelled by applying its inverse, then elem is applied.
func (t *InvertibleFenwickTree[E, G]) SetAt(elem E, index int) {
	current := t.At(index)
	t.PointOpAssign(index, t.op.Inverse(current))
	t.PointOpAssign(index, elem)
}

// Clone returns a deep copy of t.
func (t *InvertibleFenwickTree[E, G]) Clone() *InvertibleFenwickTree[E, G] {
	return &InvertibleFenwickTree[E, G]{CommutativeFenwickTree: *t.CommutativeFenwickTree.Clone()}
}

var _ folds.PrefixQuery[int] = (*FenwickTree[int, algebra.FuncMonoid[int]])(nil)
