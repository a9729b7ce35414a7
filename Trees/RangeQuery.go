package Trees

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/psolving/Sets"
	"golang.org/x/exp/constraints"
)

// InvalidRangeError is returned by QueryRange when Low isn't less than High.
type InvalidRangeError[K constraints.Ordered] struct {
	Low, High K
}

func (e *InvalidRangeError[K]) Error() string {
	return fmt.Sprintf("invalid range [%v, %v]: low must be less than high", e.Low, e.High)
}

// QueryRange returns the distinct keys of the tree rooted at root that lie in the closed interval
// [x1, x2]. Repeated keys in the tree appear once in the result. x1<x2 must hold, otherwise an
// InvalidRangeError is returned and the tree isn't visited. The tree is only read.
// It's a range tree query: on a balanced tree it visits O(log n + k) vertices, k being the number
// of keys reported. See QueryRangeInto.
func QueryRange[K constraints.Ordered](root *Node[K], x1, x2 K) (*Sets.MapSet[K], error) {
	res := Sets.NewMapSet[K](0)
	if err := QueryRangeInto(root, x1, x2, res); err != nil {
		return nil, err
	}
	return res, nil
}

// QueryRangeInto is QueryRange that puts the keys into dst instead of a new set.
//
// The search paths towards x1 and x2 share a prefix ending at the split vertex. From its left child
// the walk towards x1 reports, at every vertex with key >= x1, the whole right subtree without
// comparing keys, as all of them are in [x1, split key]. The walk towards x2 from the right child is
// symmetric. Only the vertices on the two paths are compared against the bounds.
func QueryRangeInto[K constraints.Ordered](root *Node[K], x1, x2 K, dst Sets.Set[K]) error {
	if !(x1 < x2) { // also rejects NaN bounds
		return &InvalidRangeError[K]{x1, x2}
	}
	split := splitVertex(root, x1, x2)
	if split == nil {
		return nil
	}
	if inRange(split.Key, x1, x2) {
		dst.Put(split.Key)
	}
	st := arraystack.New()
	walkLeft(split.Left, x1, x2, dst, st)
	walkRight(split.Right, x1, x2, dst, st)
	return nil
}

func inRange[K constraints.Ordered](k, x1, x2 K) bool {
	return x1 <= k && k <= x2
}

// splitVertex is the last vertex on both search paths of x1 and x2, nil if there's none.
func splitVertex[K constraints.Ordered](cur *Node[K], x1, x2 K) *Node[K] {
	for cur != nil {
		if x1 < cur.Key && x2 < cur.Key {
			cur = cur.Left
		} else if x1 > cur.Key && x2 > cur.Key {
			cur = cur.Right
		} else {
			break
		}
	}
	return cur
}

// walkLeft follows the search path of x1 starting at cur, a vertex in the left subtree of the split vertex.
func walkLeft[K constraints.Ordered](cur *Node[K], x1, x2 K, dst Sets.Set[K], st *arraystack.Stack) {
	for cur != nil {
		if inRange(cur.Key, x1, x2) {
			dst.Put(cur.Key)
		}
		if cur.Key >= x1 {
			collect(cur.Right, dst, st)
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
}

// walkRight follows the search path of x2 starting at cur, a vertex in the right subtree of the split vertex.
func walkRight[K constraints.Ordered](cur *Node[K], x1, x2 K, dst Sets.Set[K], st *arraystack.Stack) {
	for cur != nil {
		if inRange(cur.Key, x1, x2) {
			dst.Put(cur.Key)
		}
		if cur.Key <= x2 {
			collect(cur.Left, dst, st)
			cur = cur.Right
		} else {
			cur = cur.Left
		}
	}
}

// collect puts every key of the subtree rooted at n into dst, no range check. st must be empty and
// is empty again on return.
func collect[K constraints.Ordered](n *Node[K], dst Sets.Set[K], st *arraystack.Stack) {
	if n == nil {
		return
	}
	for st.Push(n); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*Node[K])
		dst.Put(cur.Key)
		if cur.Left != nil {
			st.Push(cur.Left)
		}
		if cur.Right != nil {
			st.Push(cur.Right)
		}
	}
}
