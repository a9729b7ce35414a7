package Multiset

// Counts maps each distinct element of a multiset to its multiplicity. Multiplicities are never 0,
// absent elements are simply not in the map.
type Counts[E comparable] map[E]uint

// Count the multiplicity of each element of s.
func Count[E comparable](s []E) Counts[E] {
	u := make(Counts[E])
	for _, e := range s {
		u[e]++
	}
	return u
}

// Len is the total number of elements, repeats included.
func (u Counts[E]) Len() (n uint) {
	for _, c := range u {
		n += c
	}
	return
}

// Intersect u with o in place: each multiplicity becomes the minimum of the two, elements absent
// from o are removed.
func (u Counts[E]) Intersect(o Counts[E]) {
	for e, c := range u {
		if d := o[e]; d == 0 {
			delete(u, e)
		} else if d < c {
			u[e] = d
		}
	}
}

// Shrink is Intersect against the multiset s without counting all of s: only elements of u are
// tracked, and each stops being counted once it reaches its multiplicity in u.
// Extra space: O(len(u)).
func (u Counts[E]) Shrink(s []E) {
	found := make(map[E]uint, len(u))
	for _, e := range s {
		if c, in := u[e]; in && found[e] < c {
			found[e]++
		}
	}
	for e := range u {
		if f := found[e]; f == 0 {
			delete(u, e)
		} else {
			u[e] = f
		}
	}
}

// Explode u into a slice holding each element as many times as its multiplicity. Order of distinct
// elements is unspecified, repeats are adjacent.
func (u Counts[E]) Explode() []E {
	s := make([]E, 0, u.Len())
	for e, c := range u {
		for range c {
			s = append(s, e)
		}
	}
	return s
}

// Intersect the multisets: each distinct element appears in the result the minimum number of times
// it appears across all of sets. Returns nil when sets is empty.
// Time: O(total size of sets).
func Intersect[E comparable](sets ...[]E) []E {
	if len(sets) == 0 {
		return nil
	}
	runner := Count(sets[0])
	for _, s := range sets[1:] {
		if len(runner) == 0 {
			break
		}
		runner.Shrink(s)
	}
	return runner.Explode()
}
