package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/psolving/Queues"
	"golang.org/x/exp/constraints"
)

// Node is a vertex of a binary search tree. Every key in Left is <= Key and every key in Right
// is >= Key. A node owns its subtrees; there are no parent pointers. The nil *Node is the empty tree.
// Nothing in this package checks or restores balance.
type Node[K constraints.Ordered] struct {
	Key         K
	Left, Right *Node[K]
}

// InOrder calls f on the keys of the tree rooted at n in ascending order until f returns false.
// Iterative, so skewed trees are fine.
func InOrder[K constraints.Ordered](n *Node[K], f func(K) bool) {
	st := arraystack.New()
	for ; n != nil; n = n.Left {
		st.Push(n)
	}
	for top, ok := st.Pop(); ok; top, ok = st.Pop() {
		cur := top.(*Node[K])
		if !f(cur.Key) {
			return
		}
		for n = cur.Right; n != nil; n = n.Left {
			st.Push(n)
		}
	}
}

// Size is the number of vertices of the tree.
func Size[K constraints.Ordered](n *Node[K]) (sz uint) {
	InOrder(n, func(K) bool {
		sz++
		return true
	})
	return
}

// Height is the number of vertices on the longest root to leaf path, 0 for the empty tree.
// Computed level by level.
func Height[K constraints.Ordered](n *Node[K]) (h uint) {
	if n == nil {
		return 0
	}
	q := Queues.NewRing[*Node[K]](16)
	for q.Push(n); !q.Empty(); h++ {
		for range q.Size() {
			cur, _ := q.Pop()
			if cur.Left != nil {
				q.Push(cur.Left)
			}
			if cur.Right != nil {
				q.Push(cur.Right)
			}
		}
	}
	return
}
