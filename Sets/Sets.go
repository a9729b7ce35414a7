package Sets

// Set of distinct elements.
type Set[E any] interface {
	// Put e into the set. Returns true if e wasn't in the set before.
	Put(E) bool
	Has(E) bool
	// Remove e from the set. Returns true if e was in the set.
	Remove(E) bool
	Size() uint
	// Take an arbitrary element from the set without removing it.
	Take() E
	// Range calls f on each element in no particular order until f returns false.
	Range(func(E) bool)
}
