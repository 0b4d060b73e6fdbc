package ranged

import (
	"strconv"
	"testing"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/folds/algebra/typical"
)

func TestLayouts(t *testing.T) {
	a := []int{3, 1, 4, 1, 5}
	sum := typical.Additive[int]{}
	cases := []struct {
		layout folds.Layout
		rows   int
		width  int
	}{
		{BuildNaiveVec(sum, a).Layout(strconv.Itoa), 1, 5},
		{BuildAccumulativeArray(sum, a).Layout(strconv.Itoa), 1, 6},
		{BuildFenwickTree(sum, a).Layout(strconv.Itoa), 2, 5},
		{BuildSegmentTree(sum, a).Layout(strconv.Itoa), 5, 5},
		{BuildSparseTable(typical.IntMax[int](), a).Layout(strconv.Itoa), 3, 5},
		{BuildSquareRootDecomposition(sum, a).Layout(strconv.Itoa), 3, 3},
	}
	for _, c := range cases {
		t.Logf("%s: %v", c.layout.Title, c.layout.Rows)
		if len(c.layout.Rows) != c.rows {
			t.Errorf("%s: expected %d rows, got %d", c.layout.Title, c.rows, len(c.layout.Rows))
		}
		if c.layout.Width() != c.width {
			t.Errorf("%s: expected width %d, got %d", c.layout.Title, c.width, c.layout.Width())
		}
	}
}

func TestFenwickLayoutCovers(t *testing.T) {
	l := BuildFenwickTree(typical.Additive[int]{}, []int{1, 1, 1, 1, 1, 1}).Layout(strconv.Itoa)
	covers, slots := l.Rows[0].Cells, l.Rows[1].Cells
	want := []string{"[0,1)", "[0,2)", "[2,3)", "[0,4)", "[4,5)", "[4,6)"}
	sums := []string{"1", "2", "1", "4", "1", "2"}
	for i := range want {
		if covers[i] != want[i] || slots[i] != sums[i] {
			t.Errorf("slot %d: expected %s=%s, got %s=%s", i+1, want[i], sums[i], covers[i], slots[i])
		}
	}
}
