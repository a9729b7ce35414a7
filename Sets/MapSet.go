package Sets

// MapSet is a Set backed by a builtin map. Use NewMapSet to create it.
type MapSet[E comparable] struct {
	m map[E]struct{}
}

// NewMapSet with room for size elements.
func NewMapSet[E comparable](size uint) *MapSet[E] {
	return &MapSet[E]{m: make(map[E]struct{}, size)}
}

// Of returns a MapSet holding es, duplicates collapsed.
func Of[E comparable](es ...E) *MapSet[E] {
	u := NewMapSet[E](uint(len(es)))
	for _, e := range es {
		u.m[e] = struct{}{}
	}
	return u
}

func (u *MapSet[E]) Put(e E) bool {
	if _, in := u.m[e]; in {
		return false
	}
	u.m[e] = struct{}{}
	return true
}

func (u *MapSet[E]) Has(e E) bool {
	_, in := u.m[e]
	return in
}

func (u *MapSet[E]) Remove(e E) bool {
	if _, in := u.m[e]; in {
		delete(u.m, e)
		return true
	}
	return false
}

func (u *MapSet[E]) Size() uint {
	return uint(len(u.m))
}

// Take returns the zero value if the set is empty.
func (u *MapSet[E]) Take() (e E) {
	for e = range u.m {
		break
	}
	return
}

func (u *MapSet[E]) Range(f func(E) bool) {
	for e := range u.m {
		if !f(e) {
			return
		}
	}
}

// Slice of the elements in no particular order.
func (u *MapSet[E]) Slice() []E {
	s := make([]E, 0, len(u.m))
	for e := range u.m {
		s = append(s, e)
	}
	return s
}

// Eq reports whether o holds exactly the elements of u.
func (u *MapSet[E]) Eq(o Set[E]) bool {
	if o.Size() != u.Size() {
		return false
	}
	eq := true
	o.Range(func(e E) bool {
		_, eq = u.m[e]
		return eq
	})
	return eq
}
