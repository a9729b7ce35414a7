package Trees

import (
	"fmt"
	"strconv"

	"github.com/emicklei/dot"
	"github.com/g-m-twostay/psolving/Queues"
	"golang.org/x/exp/constraints"
)

type dotItem[K constraints.Ordered] struct {
	n *Node[K]
	v dot.Node
}

// Dot renders the tree rooted at root as a Graphviz digraph. Vertices whose key lies in [x1, x2]
// are filled; edges are labeled L or R. Vertex ids are level order indexes starting at 0.
func Dot[K constraints.Ordered](root *Node[K], x1, x2 K) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("label", fmt.Sprintf("[%v, %v]", x1, x2))
	if root == nil {
		return g.String()
	}
	id := 0
	vertex := func(n *Node[K]) dot.Node {
		v := g.Node(strconv.Itoa(id)).Label(fmt.Sprint(n.Key))
		if inRange(n.Key, x1, x2) {
			v.Attr("style", "filled").Attr("fillcolor", "lightblue")
		}
		id++
		return v
	}
	q := Queues.NewRing[dotItem[K]](16)
	for q.Push(dotItem[K]{root, vertex(root)}); !q.Empty(); {
		top, _ := q.Pop()
		if top.n.Left != nil {
			it := dotItem[K]{top.n.Left, vertex(top.n.Left)}
			g.Edge(top.v, it.v, "L")
			q.Push(it)
		}
		if top.n.Right != nil {
			it := dotItem[K]{top.n.Right, vertex(top.n.Right)}
			g.Edge(top.v, it.v, "R")
			q.Push(it)
		}
	}
	return g.String()
}
