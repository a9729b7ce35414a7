package Trees

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/g-m-twostay/psolving/Sets"
	"github.com/google/btree"
)

// countingSet counts every Put, including repeated ones.
type countingSet struct {
	*Sets.MapSet[int]
	puts int
}

func (u *countingSet) Put(k int) bool {
	u.puts++
	return u.MapSet.Put(k)
}

func sorted(s *Sets.MapSet[int]) []int {
	a := s.Slice()
	slices.Sort(a)
	return a
}

func TestQueryRange_Example(t *testing.T) {
	var tree *Node[int]
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree = insert(tree, v)
	}
	res, err := QueryRange(tree, 4, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Eq(Sets.Of(4, 5, 7, 8)) {
		t.Errorf("result is %v, want [4 5 7 8]", sorted(res))
	}
}

func TestQueryRange_Invalid(t *testing.T) {
	tree := From(randSorted(100), true)
	for _, tr := range []*Node[int]{nil, tree} {
		for _, r := range [][2]int{{3, 3}, {5, 1}, {0, -1}} {
			res, err := QueryRange(tr, r[0], r[1])
			var e *InvalidRangeError[int]
			if !errors.As(err, &e) {
				t.Fatalf("range %v gives %v, want InvalidRangeError", r, err)
			}
			if e.Low != r[0] || e.High != r[1] || res != nil {
				t.Errorf("range %v gives %+v and %v", r, e, res)
			}
		}
	}
	fTree := From([]float64{1, 2, 3}, true)
	if _, err := QueryRange(fTree, math.NaN(), 2); err == nil {
		t.Error("NaN bound accepted")
	}
	if _, err := QueryRange(fTree, 1.5, 2.5); err != nil {
		t.Error(err)
	}
}

func TestQueryRange_Edges(t *testing.T) {
	res, err := QueryRange[int](nil, 0, 10)
	if err != nil || res.Size() != 0 {
		t.Errorf("empty tree gives %v, %v", res, err)
	}
	content := randSorted(tAddN)
	tree := From(content, true)
	all := Sets.Of(content...)
	if res, _ = QueryRange(tree, -1, tAddValRange); !res.Eq(all) {
		t.Errorf("covering range misses keys: %d of %d", res.Size(), all.Size())
	}
	if res, _ = QueryRange(tree, content[0], content[len(content)-1]); !res.Eq(all) {
		t.Errorf("range on the extreme keys misses keys: %d of %d", res.Size(), all.Size())
	}
	for _, r := range [][2]int{{-10, -1}, {tAddValRange, tAddValRange + 5}} {
		if res, _ = QueryRange(tree, r[0], r[1]); res.Size() != 0 {
			t.Errorf("range %v outside of the keys gives %v", r, sorted(res))
		}
	}
	gappy := From([]int{10, 20, 30, 40}, true)
	if res, _ = QueryRange(gappy, 21, 29); res.Size() != 0 {
		t.Errorf("range between keys gives %v", sorted(res))
	}
	if res, _ = QueryRange(gappy, 20, 30); !res.Eq(Sets.Of(20, 30)) {
		t.Errorf("bounds on keys give %v", sorted(res))
	}
}

func TestQueryRange_Repeats(t *testing.T) {
	tree := From([]int{1, 2, 2, 2, 2, 3, 5, 5}, true)
	res, _ := QueryRange(tree, 2, 5)
	if !res.Eq(Sets.Of(2, 3, 5)) {
		t.Errorf("result is %v, want [2 3 5]", sorted(res))
	}
	var ins *Node[int]
	for _, v := range []int{4, 2, 4, 6, 4, 2} {
		ins = insert(ins, v)
	}
	res, _ = QueryRange(ins, 3, 4)
	if !res.Eq(Sets.Of(4)) {
		t.Errorf("result is %v, want [4]", sorted(res))
	}
}

// Keys outside of the range are never put, and in range vertices are put exactly once.
func TestQueryRange_Puts(t *testing.T) {
	content := randSorted(tAddN)
	tree := From(content, true)
	for range 200 {
		x1 := rg.Intn(tAddValRange)
		x2 := x1 + 1 + rg.Intn(tAddValRange/8)
		dst := &countingSet{MapSet: Sets.NewMapSet[int](0)}
		if err := QueryRangeInto(tree, x1, x2, dst); err != nil {
			t.Fatal(err)
		}
		want := 0
		for _, k := range content {
			if x1 <= k && k <= x2 {
				want++
			}
		}
		if dst.puts != want {
			t.Fatalf("range [%d, %d]: %d puts, want %d", x1, x2, dst.puts, want)
		}
	}
}

func TestQueryRange_BTree(t *testing.T) {
	oracle := btree.NewOrderedG[int](32)
	var insTree *Node[int]
	content := make([]int, tAddN)
	for i := range content {
		content[i] = rg.Intn(tAddValRange)
		oracle.ReplaceOrInsert(content[i])
		insTree = insert(insTree, content[i])
	}
	slices.Sort(content)
	tree := From(content, true)
	for range 500 {
		x1 := rg.Intn(tAddValRange+20) - 10
		x2 := x1 + 1 + rg.Intn(tAddValRange/4)
		var want []int
		oracle.AscendRange(x1, x2+1, func(k int) bool {
			want = append(want, k)
			return true
		})
		for name, tr := range map[string]*Node[int]{"balanced": tree, "inserted": insTree} {
			res, err := QueryRange(tr, x1, x2)
			if err != nil {
				t.Fatal(err)
			}
			if got := sorted(res); !slices.Equal(got, want) {
				t.Fatalf("%s tree, range [%d, %d]: got %d keys, want %d", name, x1, x2, len(got), len(want))
			}
		}
	}
}

func TestQueryRange_Skewed(t *testing.T) {
	const n = 100000
	nodes := make([]Node[int], n)
	for i := range nodes {
		nodes[i].Key = i
		if i+1 < n {
			nodes[i].Right = &nodes[i+1]
		}
	}
	res, err := QueryRange(&nodes[0], 10, n-10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size() != n-19 {
		t.Errorf("size is %d, want %d", res.Size(), n-19)
	}
	for i := range nodes {
		nodes[i].Left, nodes[i].Right = nil, nil
		if i > 0 {
			nodes[i].Left = &nodes[i-1]
		}
	}
	res, _ = QueryRange(&nodes[n-1], -5, n/2)
	if res.Size() != n/2+1 {
		t.Errorf("size is %d, want %d", res.Size(), n/2+1)
	}
}
