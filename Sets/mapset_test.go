package Sets

import "testing"

func TestMapSet_All(t *testing.T) {
	S := NewMapSet[int](7)
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	if S.Size() != 10 {
		t.Errorf("size is %d, want 10", S.Size())
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if e := S.Take(); !S.Has(e) {
		t.Errorf("took %d which is not in the set", e)
	}
}

func TestMapSet_Eq(t *testing.T) {
	a := Of(1, 2, 2, 3)
	if a.Size() != 3 {
		t.Errorf("size is %d, want 3", a.Size())
	}
	if !a.Eq(Of(3, 2, 1)) {
		t.Error("equal sets compare unequal")
	}
	if a.Eq(Of(1, 2, 4)) {
		t.Error("different sets compare equal")
	}
	if a.Eq(Of(1, 2)) {
		t.Error("sets of different size compare equal")
	}
	var empty MapSet[int]
	if empty.Take() != 0 || empty.Size() != 0 {
		t.Error("empty set not empty")
	}
	n := 0
	a.Range(func(int) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("range didn't stop, visited %d", n)
	}
}
