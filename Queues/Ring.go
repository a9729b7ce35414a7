package Queues

var _ Queue[int] = (*Ring[int])(nil)

// Ring is a Queue backed by a circular array that grows by 3/2 when full.
// The zero value is an empty queue ready to use.
type Ring[T any] struct {
	sz, head uint
	content  []T
}

// NewRing returns a Ring that holds initCap items before its first resize.
func NewRing[T any](initCap uint) *Ring[T] {
	return &Ring[T]{content: make([]T, initCap)}
}

func (u *Ring[T]) Empty() bool {
	return u.sz == 0
}

func (u *Ring[T]) Size() uint {
	return u.sz
}

// resize moves the content to a new array of newLen, newLen>=u.sz. head is reset to 0.
func (u *Ring[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	n := uint(copy(nc, u.content[u.head:min(u.head+u.sz, uint(len(u.content)))]))
	copy(nc[n:], u.content[:u.sz-n])
	u.content, u.head = nc, 0
}

func (u *Ring[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *Ring[T]) Pop() (item T, e error) {
	if u.sz == 0 {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *Ring[T]) Peek() (item T) {
	if u.sz > 0 {
		item = u.content[u.head]
	}
	return
}
