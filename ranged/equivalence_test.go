package ranged

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/folds/algebra/typical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./ranged -run TestRandomizedEquivalence -count=1
//   - Fuzz test:
//     go test ./ranged -run '^$' -fuzz FuzzEquivalence -fuzztime=10s

func TestCrossStructureSum(t *testing.T) {
	op := typical.Additive[int]{}
	oracle := BuildNaiveVec(op, pi)
	structures := map[string]folds.RangeQuery[int]{
		"accumulative": BuildInvertibleAccumulativeArray(op, pi),
		"fenwick":      BuildInvertibleFenwickTree(op, pi),
		"segment":      BuildSegmentTree(op, pi),
		"sqrt":         BuildSquareRootDecomposition(op, pi),
	}
	for name, q := range structures {
		require.Equal(t, len(pi), q.Len(), name)
		for i := 0; i <= len(pi); i++ {
			assert.Equal(t, op.Identity(), q.RangeOp(i, i), "%s: empty range at %d", name, i)
			for j := i; j <= len(pi); j++ {
				require.Equal(t, oracle.RangeOp(i, j), q.RangeOp(i, j), "%s: range [%d,%d)", name, i, j)
			}
		}
		assert.Equal(t, 44, q.RangeOp(0, 11), name)
	}
}

func TestCrossStructureMax(t *testing.T) {
	op := typical.IntMax[int]()
	oracle := BuildNaiveVec(op, pi)
	structures := map[string]folds.RangeQuery[int]{
		"segment": BuildSegmentTree(op, pi),
		"sparse":  BuildSparseTable(op, pi),
		"sqrt":    BuildSquareRootDecomposition(op, pi),
	}
	for name, q := range structures {
		for i := 0; i <= len(pi); i++ {
			for j := i; j <= len(pi); j++ {
				require.Equal(t, oracle.RangeOp(i, j), q.RangeOp(i, j), "%s: range [%d,%d)", name, i, j)
			}
		}
		assert.Equal(t, 5, q.RangeOp(2, 5), name)
	}
}

func TestPrefixConsistency(t *testing.T) {
	op := typical.Additive[int]{}
	type prefixRange interface {
		folds.RangeOp[int]
		folds.LeftFixedOp[int]
	}
	structures := map[string]prefixRange{
		"naive":        BuildNaiveVec(op, pi),
		"accumulative": BuildInvertibleAccumulativeArray(op, pi),
		"fenwick":      BuildInvertibleFenwickTree(op, pi),
		"segment":      BuildSegmentTree(op, pi),
		"sqrt":         BuildSquareRootDecomposition(op, pi),
		"sparse":       BuildSparseTable(typical.BitOr[int]{}, pi),
	}
	for name, q := range structures {
		for r := 0; r <= len(pi); r++ {
			require.Equal(t, q.RangeOp(0, r), q.RightOp(r), "%s: prefix %d", name, r)
		}
	}
	assert.Equal(t, 14, structures["segment"].RightOp(5))
}

func TestUpdateConsistency(t *testing.T) {
	op := typical.Additive[int]{}
	dynamic := map[string]folds.DynamicRangeQuery[int]{
		"naive":   BuildNaiveVec(op, pi),
		"fenwick": BuildInvertibleFenwickTree(op, pi),
		"segment": BuildSegmentTree(op, pi),
		"sqrt":    BuildSquareRootDecomposition(op, pi),
	}
	const idx, v = 5, 100
	for name, q := range dynamic {
		before := make(map[[2]int]int)
		for i := 0; i <= len(pi); i++ {
			for j := i; j <= len(pi); j++ {
				before[[2]int{i, j}] = q.RangeOp(i, j)
			}
		}
		q.SetAt(v, idx)
		for i := 0; i <= len(pi); i++ {
			for j := i; j <= len(pi); j++ {
				want := before[[2]int{i, j}]
				if i <= idx && idx < j {
					want += v - pi[idx]
				}
				require.Equal(t, want, q.RangeOp(i, j), "%s: range [%d,%d) after update", name, i, j)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	op := typical.Additive[int]{}
	originals := map[string]folds.DynamicRangeQuery[int]{
		"naive":   BuildNaiveVec(op, pi),
		"fenwick": BuildInvertibleFenwickTree(op, pi),
		"segment": BuildSegmentTree(op, pi),
		"sqrt":    BuildSquareRootDecomposition(op, pi),
	}
	clones := map[string]folds.DynamicRangeQuery[int]{
		"naive":   originals["naive"].(*NaiveVec[int, typical.Additive[int]]).Clone(),
		"fenwick": originals["fenwick"].(*InvertibleFenwickTree[int, typical.Additive[int]]).Clone(),
		"segment": originals["segment"].(*SegmentTree[int, typical.Additive[int]]).Clone(),
		"sqrt":    originals["sqrt"].(*SquareRootDecomposition[int, typical.Additive[int]]).Clone(),
	}
	for name, q := range originals {
		q.SetAt(100, 0)
		assert.Equal(t, 141, q.RangeOp(0, 11), name)
		assert.Equal(t, 44, clones[name].RangeOp(0, 11), "%s: clone must not see updates", name)
	}
	acc := BuildInvertibleAccumulativeArray(op, pi)
	assert.Equal(t, acc.RangeOp(2, 7), acc.Clone().RangeOp(2, 7))
	sparse := BuildSparseTable(typical.IntMax[int](), pi)
	assert.Equal(t, 9, sparse.Clone().RangeOp(0, 11))
}

func TestRandomizedEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(20201017))
	for range 20 {
		runEquivalence(t, rnd, rnd.Intn(70), 50)
	}
}

func FuzzEquivalence(f *testing.F) {
	f.Add(int64(1), uint8(0), uint8(0))
	f.Add(int64(42), uint8(17), uint8(30))
	f.Add(int64(7), uint8(64), uint8(100))
	f.Fuzz(func(t *testing.T, seed int64, n uint8, steps uint8) {
		runEquivalence(t, rand.New(rand.NewSource(seed)), int(n), int(steps))
	})
}

// runEquivalence checks every dynamic structure against a NaiveVec, for a
// commutative group (sum), a semilattice (max) and a plain monoid (strings).
func runEquivalence(t *testing.T, rnd *rand.Rand, n, steps int) {
	t.Helper()
	ints := make([]int, n)
	strs := make([]string, n)
	for i := range ints {
		ints[i] = rnd.Intn(2000) - 1000
		strs[i] = strconv.Itoa(rnd.Intn(100))
	}
	sum, mx, chain := typical.Additive[int]{}, typical.IntMax[int](), typical.StringChain{}
	naiveSum, naiveMax, naiveChain := BuildNaiveVec(sum, ints), BuildNaiveVec(mx, ints), BuildNaiveVec(chain, strs)
	fenwick := BuildInvertibleFenwickTree(sum, ints)
	segSum, segChain := BuildSegmentTree(sum, ints), BuildSegmentTree(chain, strs)
	sqrtMax, sqrtChain := BuildSquareRootDecomposition(mx, ints), BuildSquareRootDecomposition(chain, strs)
	sparse := BuildSparseTable(mx, ints)
	acc := BuildInvertibleAccumulativeArray(sum, ints)

	check := func(l, r int) {
		want := naiveSum.RangeOp(l, r)
		require.Equal(t, want, fenwick.RangeOp(l, r), "fenwick [%d,%d)", l, r)
		require.Equal(t, want, segSum.RangeOp(l, r), "segment [%d,%d)", l, r)
		require.Equal(t, naiveMax.RangeOp(l, r), sqrtMax.RangeOp(l, r), "sqrt max [%d,%d)", l, r)
		require.Equal(t, naiveChain.RangeOp(l, r), segChain.RangeOp(l, r), "segment chain [%d,%d)", l, r)
		require.Equal(t, naiveChain.RangeOp(l, r), sqrtChain.RangeOp(l, r), "sqrt chain [%d,%d)", l, r)
	}
	for l := 0; l <= n; l++ {
		for r := l; r <= n; r++ {
			require.Equal(t, naiveMax.RangeOp(l, r), sparse.RangeOp(l, r), "sparse [%d,%d)", l, r)
			require.Equal(t, naiveSum.RangeOp(l, r), acc.RangeOp(l, r), "accumulative [%d,%d)", l, r)
		}
	}
	if n == 0 {
		check(0, 0)
		return
	}
	for range steps {
		if rnd.Intn(3) == 0 {
			i, x := rnd.Intn(n), rnd.Intn(2000)-1000
			s := strconv.Itoa(x)
			naiveSum.SetAt(x, i)
			naiveMax.SetAt(x, i)
			naiveChain.SetAt(s, i)
			fenwick.SetAt(x, i)
			segSum.SetAt(x, i)
			segChain.SetAt(s, i)
			sqrtMax.SetAt(x, i)
			sqrtChain.SetAt(s, i)
			continue
		}
		l := rnd.Intn(n + 1)
		check(l, l+rnd.Intn(n+1-l))
	}
}
