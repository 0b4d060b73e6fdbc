package ranged

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/folds/algebra"
)

// SegmentTree2Dot outputs the internal structure of a SegmentTree in Graphviz
// DOT format (for debugging purposes). Each node is labeled with the range it
// covers and its fold, formatted by format. Nodes covering only padding leaves
// are drawn dashed.
func SegmentTree2Dot[E any, M algebra.Monoid[E]](st *SegmentTree[E, M], w io.Writer, format func(E) string) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12,shape=box];\n")
	nodelist, edgelist := "", ""
	leaves := st.leaves()
	for i := 1; i < len(st.data); i++ {
		lo, hi := nodeRange(i, leaves)
		label := fmt.Sprintf("[%d,%d)\\n%s", lo, hi, dotEscape(format(st.data[i])))
		style := ""
		if lo >= st.n {
			style = ",style=dashed"
		} else if i >= leaves {
			style = ",style=filled,fillcolor=lightgrey"
		}
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\"%s];\n", i, label, style)
		if i < leaves {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i, 2*i)
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i, 2*i+1)
		}
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("segment tree DOT: %s", err.Error())
	}
	return err
}

// nodeRange returns the leaf range [lo, hi) covered by node i.
func nodeRange(i, leaves int) (int, int) {
	width := 1
	for i < leaves {
		i *= 2
		width *= 2
	}
	lo := i - leaves
	return lo, lo + width
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
