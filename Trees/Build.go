package Trees

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// InvalidSliceError is the panic value of From when the given slice isn't sorted.
// Prev is at index At-1 and is greater than Next at index At.
type InvalidSliceError[K constraints.Ordered] struct {
	At         int
	Prev, Next K
}

func (e InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("slice isn't sorted: %v at %d is greater than %v at %d", e.Prev, e.At-1, e.Next, e.At)
}

// span of sorted yet to be built into the subtree at *at.
type span[K constraints.Ordered] struct {
	l, r int // [l, r)
	at   **Node[K]
}

// From builds a height balanced tree holding the keys of sorted, each subtree rooted at the middle
// of its span, so the height is bits.Len(len(sorted)). sorted must be in ascending order; repeated
// keys are allowed. If safe==true, From checks the order and panics with InvalidSliceError if it's
// broken. Otherwise, it is up to the caller to ensure the order, or the tree won't be a search tree.
// All vertices are allocated in one block. Returns nil for an empty slice.
// Time: O(n).
func From[K constraints.Ordered](sorted []K, safe bool) *Node[K] {
	if safe {
		for i := 1; i < len(sorted); i++ {
			if sorted[i] < sorted[i-1] {
				panic(InvalidSliceError[K]{i, sorted[i-1], sorted[i]})
			}
		}
	}
	var root *Node[K]
	if len(sorted) == 0 {
		return root
	}
	nodes := make([]Node[K], len(sorted))
	st := make([]span[K], 0, bits.Len(uint(len(sorted)))+1)
	for st = append(st, span[K]{0, len(sorted), &root}); len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		mid := top.l + (top.r-top.l)>>1
		n := &nodes[mid]
		n.Key = sorted[mid]
		*top.at = n
		if top.l < mid {
			st = append(st, span[K]{top.l, mid, &n.Left})
		}
		if mid+1 < top.r {
			st = append(st, span[K]{mid + 1, top.r, &n.Right})
		}
	}
	return root
}
