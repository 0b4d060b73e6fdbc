package ranged

import (
	"fmt"
	"slices"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/folds/algebra"
)

// SqrtConfig configures a SquareRootDecomposition.
type SqrtConfig struct {
	// BlockLen is the number of elements per block. 0 selects ⌈√n⌉.
	BlockLen int
}

func (cfg SqrtConfig) normalized(n int) SqrtConfig {
	if cfg.BlockLen == 0 {
		cfg.BlockLen = 1
		for cfg.BlockLen*cfg.BlockLen < n {
			cfg.BlockLen++
		}
	}
	return cfg
}

func (cfg SqrtConfig) validate() error {
	if cfg.BlockLen < 0 {
		return fmt.Errorf("%w: negative block length %d", folds.ErrInvalidConfig, cfg.BlockLen)
	}
	return nil
}

// SquareRootDecomposition partitions a sequence into blocks of equal length,
// each with a precomputed fold.
//
// Build: O(n), RangeOp, RightOp and SetAt: O(√n) with the default block length.
// Blocks are recomputed on updates rather than patched, so any Monoid will do.
type SquareRootDecomposition[E any, M algebra.Monoid[E]] struct {
	op       M
	blockLen int
	data     []E
	blocks   []E
}

// BuildSquareRootDecomposition creates a decomposition of a with blocks of
// length ⌈√n⌉.
func BuildSquareRootDecomposition[E any, M algebra.Monoid[E]](op M, a []E) *SquareRootDecomposition[E, M] {
	sq, err := BuildSquareRootDecompositionWithConfig[E](op, a, SqrtConfig{})
	assertThat(err == nil, "default configuration is invalid")
	return sq
}

// BuildSquareRootDecompositionWithConfig creates a decomposition of a with
// a configured block length.
func BuildSquareRootDecompositionWithConfig[E any, M algebra.Monoid[E]](op M, a []E,
	cfg SqrtConfig) (*SquareRootDecomposition[E, M], error) {
	//
	if err := cfg.validate(); err != nil {
		tracer().Errorf("square root decomposition: %v", err)
		return nil, err
	}
	cfg = cfg.normalized(len(a))
	sq := &SquareRootDecomposition[E, M]{
		op:       op,
		blockLen: cfg.BlockLen,
		data:     slices.Clone(a),
		blocks:   make([]E, (len(a)+cfg.BlockLen-1)/cfg.BlockLen),
	}
	for b := range sq.blocks {
		sq.blocks[b] = op.Identity()
	}
	for i, x := range sq.data {
		b := i / sq.blockLen
		sq.blocks[b] = op.Op(sq.blocks[b], x)
	}
	tracer().Debugf("square root decomposition: %d elements in %d blocks of length %d",
		len(a), len(sq.blocks), sq.blockLen)
	return sq, nil
}

// Len returns the number of elements.
func (sq *SquareRootDecomposition[E, M]) Len() int {
	return len(sq.data)
}

// BlockLen returns the number of elements per block.
func (sq *SquareRootDecomposition[E, M]) BlockLen() int {
	return sq.blockLen
}

// At returns the element at index.
func (sq *SquareRootDecomposition[E, M]) At(index int) E {
	checkIndex(index, len(sq.data))
	return sq.data[index]
}

// blockRange returns the element range [lo, hi) of block b.
func (sq *SquareRootDecomposition[E, M]) blockRange(b int) (int, int) {
	lo := b * sq.blockLen
	return lo, min(lo+sq.blockLen, len(sq.data))
}

// SetAt overwrites the element and re-folds its block.
func (sq *SquareRootDecomposition[E, M]) SetAt(elem E, index int) {
	checkIndex(index, len(sq.data))
	sq.data[index] = elem
	b := index / sq.blockLen
	lo, hi := sq.blockRange(b)
	sq.blocks[b] = algebra.Fold(sq.op, sq.data[lo:hi])
}

// RangeOp folds [l, r). Blocks completely inside the range contribute their
// precomputed fold, partially covered blocks are folded element by element.
func (sq *SquareRootDecomposition[E, M]) RangeOp(l, r int) E {
	checkRange(l, r, len(sq.data))
	res := sq.op.Identity()
	if l == r {
		return res
	}
	for b := l / sq.blockLen; b <= (r-1)/sq.blockLen; b++ {
		lo, hi := sq.blockRange(b)
		if l <= lo && hi <= r {
			res = sq.op.Op(res, sq.blocks[b])
			continue
		}
		for _, x := range sq.data[max(l, lo):min(r, hi)] {
			res = sq.op.Op(res, x)
		}
	}
	return res
}

// RightOp folds [0, r).
func (sq *SquareRootDecomposition[E, M]) RightOp(r int) E {
	checkPrefix(r, len(sq.data))
	res := sq.op.Identity()
	full := r / sq.blockLen
	for b := range full {
		res = sq.op.Op(res, sq.blocks[b])
	}
	for _, x := range sq.data[full*sq.blockLen : r] {
		res = sq.op.Op(res, x)
	}
	return res
}

// Clone returns a deep copy of sq.
func (sq *SquareRootDecomposition[E, M]) Clone() *SquareRootDecomposition[E, M] {
	return &SquareRootDecomposition[E, M]{
		op:       sq.op,
		blockLen: sq.blockLen,
		data:     slices.Clone(sq.data),
		blocks:   slices.Clone(sq.blocks),
	}
}

// Layout renders elements and block folds.
func (sq *SquareRootDecomposition[E, M]) Layout(format func(E) string) folds.Layout {
	l := folds.Layout{Title: fmt.Sprintf("SquareRootDecomposition (n=%d, block length=%d)",
		len(sq.data), sq.blockLen)}
	folds.AddRow(&l, "blocks", folds.AggregateRow, sq.blocks, format)
	for b := range sq.blocks {
		lo, hi := sq.blockRange(b)
		folds.AddRow(&l, fmt.Sprintf("block %d", b), folds.ElementRow, sq.data[lo:hi], format)
	}
	return l
}

var _ folds.DynamicRangeQuery[int] = (*SquareRootDecomposition[int, algebra.FuncMonoid[int]])(nil)
