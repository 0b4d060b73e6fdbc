package folds

import "fmt"

// Layout is a row-wise rendering of the backing storage of a structure, for
// debugging purposes. Rows are typically levels of a tree or table columns.
type Layout struct {
	Title string
	Rows  []LayoutRow
}

// LayoutRow is a labeled row of cells.
type LayoutRow struct {
	Label string
	Kind  RowKind
	Cells []string
}

// RowKind tells printers what a row holds, e.g. to select a color.
type RowKind int8

// Kinds of layout rows.
const (
	ElementRow   RowKind = iota // raw elements of the sequence
	AggregateRow                // derived aggregates
	UnusedRow                   // padding, identity filled
)

func (k RowKind) String() string {
	switch k {
	case ElementRow:
		return "elements"
	case AggregateRow:
		return "aggregates"
	case UnusedRow:
		return "unused"
	}
	return fmt.Sprintf("RowKind(%d)", int8(k))
}

// AddRow appends a row of cells, formatting each with format.
func AddRow[E any](l *Layout, label string, kind RowKind, cells []E, format func(E) string) {
	row := LayoutRow{
		Label: label,
		Kind:  kind,
		Cells: make([]string, len(cells)),
	}
	for i, c := range cells {
		row.Cells[i] = format(c)
	}
	T().Debugf("layout %q: %s row %q with %d cells", l.Title, kind, label, len(cells))
	l.Rows = append(l.Rows, row)
}

// Width returns the maximum number of cells of any row.
func (l Layout) Width() int {
	w := 0
	for _, row := range l.Rows {
		w = max(w, len(row.Cells))
	}
	return w
}
