package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns *EmptyQueueError if the queue is empty.
	Pop() (T, error)
	// Peek at the oldest item, the zero value if the queue is empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular array that grows on demand.
type ArrayQueue[T any] interface {
	Queue[T]
	// Shrink the backing array to fit the current items.
	Shrink()
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
