package forest

import (
	"fmt"
	"io"
)

type nodeids[K comparable] struct {
	idTable map[*vnode[K]]int
	max     int
}

func newtable[K comparable]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*vnode[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *vnode[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *vnode[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Forest2Dot outputs the trees of a forest in Graphviz DOT format
// (for debugging purposes). Tree edges point from parent to child in the
// current orientation; designated roots are drawn filled.
func Forest2Dot[K comparable](f *Forest[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K]()
	nodelist, edgelist := "", ""
	for _, t := range f.trees {
		for o := range t.tour.Range() {
			st := o.Value()
			if !st.enter {
				continue
			}
			ID := ids.alloc(st.v)
			styles := vertexDotStyles(st.v == t.root)
			label := fmt.Sprintf("%v", st.v.id)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
			if st.v.parent != nil {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ids.find(st.v.parent), ID)
			}
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func vertexDotStyles(isroot bool) string {
	s := ",shape=circle"
	if isroot {
		s += ",style=filled,color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
