package Queues

// Queue is a FIFO queue.
// Pop on an empty queue returns the zero value of T and an EmptyQueueError.
// Peek on an empty queue returns the zero value of T.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
